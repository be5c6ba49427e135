package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aliskhannn/vocab-quiz-bot/internal/domain/entities"
)

func TestComputeResultTier(t *testing.T) {
	tests := []struct {
		name  string
		score int
		total int
		want  entities.Tier
	}{
		{name: "all correct", score: 20, total: 20, want: entities.TierPerfect},
		{name: "95 percent", score: 19, total: 20, want: entities.TierGreat},
		{name: "80 percent", score: 16, total: 20, want: entities.TierGreat},
		{name: "75 percent", score: 15, total: 20, want: entities.TierGood},
		{name: "60 percent", score: 12, total: 20, want: entities.TierGood},
		{name: "40 percent", score: 8, total: 20, want: entities.TierFair},
		{name: "35 percent", score: 7, total: 20, want: entities.TierNeedsWork},
		{name: "nothing correct", score: 0, total: 20, want: entities.TierNeedsWork},
		{name: "two of three rounds to good", score: 2, total: 3, want: entities.TierGood},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeResultTier(tt.score, tt.total))
		})
	}
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, 33, Percentage(1, 3))
	assert.Equal(t, 67, Percentage(2, 3))
	assert.Equal(t, 100, Percentage(20, 20))
	assert.Equal(t, 0, Percentage(0, 0))
}

func TestSummarize(t *testing.T) {
	assert.Equal(t, entities.Summary{
		Score:      16,
		Total:      20,
		Percentage: 80,
		Tier:       entities.TierGreat,
	}, Summarize(16, 20))
}
