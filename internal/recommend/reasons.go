package recommend

import (
	"github.com/KirkDiggler/gamenight/internal/models"
)

const (
	quickPlayMinutes  = 30
	mediumPlayMinutes = 90
)

// matchReasons tags why an item suits the session. The tags never affect scoring.
func matchReasons(item *models.Item, cfg models.FilterConfig) []models.MatchReason {
	reasons := []models.MatchReason{}

	if fitsPlayerCount(item, cfg.PlayerCount) {
		reasons = append(reasons, models.MatchReasonPlayerCount)
	}
	if fitsBestWith(item, cfg.PlayerCount) {
		reasons = append(reasons, models.MatchReasonBestWith)
	}

	if item.PlayTimeMinutes != nil {
		switch minutes := *item.PlayTimeMinutes; {
		case minutes <= quickPlayMinutes:
			reasons = append(reasons, models.MatchReasonQuick)
		case minutes <= mediumPlayMinutes:
			reasons = append(reasons, models.MatchReasonMedium)
		default:
			reasons = append(reasons, models.MatchReasonLong)
		}
	}

	switch {
	case cfg.Mode == models.GameModeCoop && isCoop(item):
		reasons = append(reasons, models.MatchReasonCoop)
	case cfg.Mode == models.GameModeCompetitive && !isCoop(item):
		reasons = append(reasons, models.MatchReasonCompetitive)
	}

	return reasons
}
