package models

// GameMode restricts the kind of games considered
type GameMode string

const (
	// GameModeAny accepts every game
	GameModeAny GameMode = "any"

	// GameModeCoop accepts only cooperative games
	GameModeCoop GameMode = "coop"

	// GameModeCompetitive accepts only non-cooperative games
	GameModeCompetitive GameMode = "competitive"
)

// Range is an inclusive bound. A zero Max means unbounded above.
type Range[T int | float64] struct {
	Min T `validate:"gte=0"`
	Max T `validate:"gte=0"`
}

// Contains reports whether v falls within the range
func (r Range[T]) Contains(v T) bool {
	if v < r.Min {
		return false
	}
	return r.Max == 0 || v <= r.Max
}

// FilterConfig is the session's candidate filter configuration
type FilterConfig struct {
	// PlayerCount is the number of people playing tonight
	PlayerCount int `validate:"gte=1,lte=99"`

	// TimeRange bounds the play time in minutes
	TimeRange Range[int]

	// Mode restricts cooperative or competitive games
	Mode GameMode `validate:"omitempty,oneof=any coop competitive"`

	// RequireBestWithPlayerCount keeps only games whose "best with" includes PlayerCount
	RequireBestWithPlayerCount bool

	// AgeRange bounds the minimum age of the game
	AgeRange Range[int]

	// ComplexityRange bounds the complexity weight
	ComplexityRange Range[float64]

	// RatingRange bounds the community average rating
	RatingRange Range[float64]

	// ExcludeLowRatedThreshold drops items any participant rated strictly below it
	ExcludeLowRatedThreshold *float64 `validate:"omitempty,gte=0"`
}

// DefaultFilterConfig returns a permissive configuration for the given player count
func DefaultFilterConfig(playerCount int) FilterConfig {
	return FilterConfig{
		PlayerCount: playerCount,
		Mode:        GameModeAny,
	}
}
