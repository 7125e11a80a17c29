package models

// MatchReason is an informational tag explaining why an item suits the session
type MatchReason string

const (
	// MatchReasonPlayerCount means the player count is within the supported range
	MatchReasonPlayerCount MatchReason = "player_count_fit"

	// MatchReasonBestWith means the community considers the player count ideal
	MatchReasonBestWith MatchReason = "best_with_fit"

	// MatchReasonQuick means the game plays in 30 minutes or less
	MatchReasonQuick MatchReason = "quick_play"

	// MatchReasonMedium means the game plays in 31 to 90 minutes
	MatchReasonMedium MatchReason = "medium_play"

	// MatchReasonLong means the game plays in more than 90 minutes
	MatchReasonLong MatchReason = "long_play"

	// MatchReasonCoop means the game is cooperative and the session asked for coop
	MatchReasonCoop MatchReason = "coop_fit"

	// MatchReasonCompetitive means the game is competitive and the session asked for competitive
	MatchReasonCompetitive MatchReason = "competitive_fit"
)

// ScoredItem is an eligible item with its aggregated score
type ScoredItem struct {
	Item         *Item
	Score        int
	MatchReasons []MatchReason
}

// VetoedItem is a filtered item removed by at least one dislike
type VetoedItem struct {
	Item     *Item
	VetoedBy []string
}

// RecommendationResult is the engine's output for one computation
type RecommendationResult struct {
	// TopPick is the recommended item, nil when nothing is eligible
	TopPick *ScoredItem

	// Alternatives are the next best items, at most five
	Alternatives []*ScoredItem

	// Vetoed lists the filtered items removed by dislikes
	Vetoed []*VetoedItem
}

// Ordered returns the top pick followed by the alternatives
func (r *RecommendationResult) Ordered() []*ScoredItem {
	if r.TopPick == nil {
		return nil
	}
	return append([]*ScoredItem{r.TopPick}, r.Alternatives...)
}
