package entities

// Tier is the feedback bucket for a final percentage.
type Tier string

const (
	TierPerfect   Tier = "perfect"
	TierGreat     Tier = "great"
	TierGood      Tier = "good"
	TierFair      Tier = "fair"
	TierNeedsWork Tier = "needs_work"
)

// Summary is the final result of a finished session.
type Summary struct {
	Score      int  `json:"score"`
	Total      int  `json:"total"`
	Percentage int  `json:"percentage"`
	Tier       Tier `json:"tier"`
}
