package recommend

import (
	"github.com/KirkDiggler/gamenight/internal/models"
)

const (
	defaultMinPlayers = 1
	defaultMaxPlayers = 99
)

// coopMechanics are the normalized mechanic tags that make a game cooperative
var coopMechanics = map[string]struct{}{
	"cooperative game": {},
	"cooperative":      {},
	"co-op":            {},
	"coop":             {},
	"team-based game":  {},
}

// Filter returns the items admissible under cfg, in their original order.
// Every rule passes when the attribute it checks is unknown, except the player count
// bounds (defaulting to 1..99) and the best-with rule, which excludes items without data.
func Filter(items []*models.Item, cfg models.FilterConfig, ratings models.Ratings) []*models.Item {
	filtered := make([]*models.Item, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		if admits(item, cfg, ratings) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

func admits(item *models.Item, cfg models.FilterConfig, ratings models.Ratings) bool {
	if !fitsPlayerCount(item, cfg.PlayerCount) {
		return false
	}

	if cfg.RequireBestWithPlayerCount && !fitsBestWith(item, cfg.PlayerCount) {
		return false
	}

	if item.PlayTimeMinutes != nil && !cfg.TimeRange.Contains(*item.PlayTimeMinutes) {
		return false
	}

	if !fitsMode(item, cfg.Mode) {
		return false
	}

	if item.MinAge != nil && !cfg.AgeRange.Contains(*item.MinAge) {
		return false
	}

	if item.ComplexityWeight != nil && !cfg.ComplexityRange.Contains(*item.ComplexityWeight) {
		return false
	}

	if item.AverageRating != nil && !cfg.RatingRange.Contains(*item.AverageRating) {
		return false
	}

	if cfg.ExcludeLowRatedThreshold != nil && ratedBelow(item.ID, ratings, *cfg.ExcludeLowRatedThreshold) {
		return false
	}

	return true
}

func fitsPlayerCount(item *models.Item, playerCount int) bool {
	minPlayers, maxPlayers := defaultMinPlayers, defaultMaxPlayers
	if item.MinPlayers != nil {
		minPlayers = *item.MinPlayers
	}
	if item.MaxPlayers != nil {
		maxPlayers = *item.MaxPlayers
	}
	return playerCount >= minPlayers && playerCount <= maxPlayers
}

func fitsBestWith(item *models.Item, playerCount int) bool {
	for _, span := range ParseBestWith(item.BestWith) {
		if span.Contains(playerCount) {
			return true
		}
	}
	return false
}

func fitsMode(item *models.Item, mode models.GameMode) bool {
	switch mode {
	case models.GameModeCoop:
		return isCoop(item)
	case models.GameModeCompetitive:
		return !isCoop(item)
	default:
		return true
	}
}

func isCoop(item *models.Item) bool {
	for _, mechanic := range item.Mechanics {
		if _, ok := coopMechanics[normalize(mechanic)]; ok {
			return true
		}
	}
	return false
}

// ratedBelow reports whether any participant rated the item strictly below threshold
func ratedBelow(itemID string, ratings models.Ratings, threshold float64) bool {
	for _, byItem := range ratings {
		if rating, ok := byItem[itemID]; ok && rating < threshold {
			return true
		}
	}
	return false
}
