package service

import (
	"math"

	"github.com/aliskhannn/vocab-quiz-bot/internal/domain/entities"
)

// Percentage returns score/total as a whole percentage, rounded half up.
func Percentage(score, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(total) * 100))
}

// ComputeResultTier maps a final score to its feedback tier.
func ComputeResultTier(score, total int) entities.Tier {
	percentage := Percentage(score, total)

	switch {
	case percentage >= 100:
		return entities.TierPerfect
	case percentage >= 80:
		return entities.TierGreat
	case percentage >= 60:
		return entities.TierGood
	case percentage >= 40:
		return entities.TierFair
	default:
		return entities.TierNeedsWork
	}
}

// Summarize builds the final summary for score out of total.
func Summarize(score, total int) entities.Summary {
	return entities.Summary{
		Score:      score,
		Total:      total,
		Percentage: Percentage(score, total),
		Tier:       ComputeResultTier(score, total),
	}
}
