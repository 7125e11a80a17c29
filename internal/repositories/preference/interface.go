package preference

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/gamenight/internal/repositories/preference Repository

import (
	"context"

	"github.com/KirkDiggler/gamenight/internal/models"
)

// Repository defines the interface for preference and rating persistence
type Repository interface {
	// GetPreference retrieves one participant's record for one item
	GetPreference(ctx context.Context, input *GetPreferenceInput) (*models.PreferenceRecord, error)

	// SavePreference persists a preference record, replacing any existing record for the same participant and item
	SavePreference(ctx context.Context, input *SavePreferenceInput) error

	// GetPreferencesForSession retrieves every local preference record of a session
	GetPreferencesForSession(ctx context.Context, input *GetPreferencesForSessionInput) (models.Preferences, error)

	// SaveRating persists a numeric rating
	SaveRating(ctx context.Context, input *SaveRatingInput) error

	// GetRatingsForSession retrieves every numeric rating of a session
	GetRatingsForSession(ctx context.Context, input *GetRatingsForSessionInput) (models.Ratings, error)
}
