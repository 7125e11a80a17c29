package preference

import "github.com/KirkDiggler/gamenight/internal/models"

// GetPreferenceInput contains parameters for retrieving a preference record
type GetPreferenceInput struct {
	SessionID     string
	ParticipantID string
	ItemID        string
}

// SavePreferenceInput contains parameters for saving a preference record
type SavePreferenceInput struct {
	SessionID string
	Record    *models.PreferenceRecord
}

// GetPreferencesForSessionInput contains parameters for retrieving a session's preferences
type GetPreferencesForSessionInput struct {
	SessionID string
}

// SaveRatingInput contains parameters for saving a numeric rating
type SaveRatingInput struct {
	SessionID     string
	ParticipantID string
	ItemID        string
	Rating        float64
}

// GetRatingsForSessionInput contains parameters for retrieving a session's ratings
type GetRatingsForSessionInput struct {
	SessionID string
}

// rating is the stored form of a numeric rating
type rating struct {
	ParticipantID string  `json:"participant_id"`
	ItemID        string  `json:"item_id"`
	Value         float64 `json:"value"`
}
