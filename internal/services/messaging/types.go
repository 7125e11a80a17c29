package messaging

import "math/rand"

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"

	// ToneEncouraging is an encouraging tone
	ToneEncouraging MessageTone = "encouraging"

	// ToneCelebration is a celebratory tone
	ToneCelebration MessageTone = "celebration"
)

// ErrorType names the failures the messaging service has copy for
type ErrorType string

const (
	ErrorTypeNoSession      ErrorType = "no_session"
	ErrorTypeSessionExists  ErrorType = "session_exists"
	ErrorTypeNotJoined      ErrorType = "not_joined"
	ErrorTypeSessionFull    ErrorType = "session_full"
	ErrorTypeUnknownGame    ErrorType = "unknown_game"
	ErrorTypeInvalidFilters ErrorType = "invalid_filters"
	ErrorTypeNothingToLock  ErrorType = "nothing_to_lock"
	ErrorTypeSlotTaken      ErrorType = "slot_taken"
)

// GetJoinMessageInput contains parameters for getting a join message
type GetJoinMessageInput struct {
	// DisplayName is the name of the person joining
	DisplayName string

	// AlreadyJoined indicates the person was already in the game night
	AlreadyJoined bool

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetJoinMessageOutput contains the join message
type GetJoinMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetRecommendationMessageInput describes the recommendation being announced
type GetRecommendationMessageInput struct {
	// TopPickName is the recommended game, empty when nothing is eligible
	TopPickName string

	// Promoted is true when the host pinned the top pick
	Promoted bool

	// VetoedCount is the number of games removed by dislikes
	VetoedCount int

	// CandidateCount is the size of the candidate pool before filtering
	CandidateCount int
}

// GetRecommendationMessageOutput contains the recommendation headline
type GetRecommendationMessageOutput struct {
	Title   string
	Message string
	Tone    MessageTone
}

// GetCommitMessageInput describes a committed recommendation
type GetCommitMessageInput struct {
	// ItemName is the committed game
	ItemName string

	// PreviousCount is how often this group picked with the same setup before
	PreviousCount int
}

// GetCommitMessageOutput contains the commit message
type GetCommitMessageOutput struct {
	Title   string
	Message string
}

// GetErrorMessageInput contains parameters for getting an error message
type GetErrorMessageInput struct {
	// ErrorType is the type of error
	ErrorType ErrorType
}

// GetErrorMessageOutput contains the error message
type GetErrorMessageOutput struct {
	Title   string
	Message string
}

// ServiceConfig contains configuration for the messaging service
type ServiceConfig struct {
	// Rand picks among message variants; a time-seeded source is used when nil
	Rand *rand.Rand
}
