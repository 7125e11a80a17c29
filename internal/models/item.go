package models

// Item is a candidate board game in a session's pool.
// Optional attributes are nil when the catalog does not know them.
type Item struct {
	// ID is the stable catalog key for the game
	ID string

	// Name is the display name of the game
	Name string

	// MinPlayers is the minimum supported player count
	MinPlayers *int

	// MaxPlayers is the maximum supported player count
	MaxPlayers *int

	// BestWith is the community "best with" poll result, e.g. "4", "3–4" or "2, 4-5"
	BestWith string

	// PlayTimeMinutes is the typical play time
	PlayTimeMinutes *int

	// MinAge is the publisher's minimum age
	MinAge *int

	// ComplexityWeight is the community weight rating (1-5)
	ComplexityWeight *float64

	// AverageRating is the community average rating (1-10)
	AverageRating *float64

	// Mechanics are the catalog mechanic tags
	Mechanics []string
}

// Ptr returns a pointer to v. Handy for the optional Item attributes.
func Ptr[T any](v T) *T {
	return &v
}
