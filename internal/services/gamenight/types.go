package gamenight

import (
	"github.com/rs/zerolog"

	"github.com/KirkDiggler/gamenight/internal/common/clock"
	"github.com/KirkDiggler/gamenight/internal/common/uuid"
	"github.com/KirkDiggler/gamenight/internal/models"
	"github.com/KirkDiggler/gamenight/internal/repositories/catalog"
	"github.com/KirkDiggler/gamenight/internal/repositories/guest"
	"github.com/KirkDiggler/gamenight/internal/repositories/history"
	"github.com/KirkDiggler/gamenight/internal/repositories/participant"
	"github.com/KirkDiggler/gamenight/internal/repositories/preference"
	"github.com/KirkDiggler/gamenight/internal/repositories/session"
	"github.com/KirkDiggler/gamenight/internal/services/guestsync"
)

// Config holds configuration for the game night service
type Config struct {
	// Maximum number of local participants per game night
	MaxParticipants int

	// Repository dependencies
	SessionRepo     session.Repository
	ParticipantRepo participant.Repository
	PreferenceRepo  preference.Repository
	CatalogRepo     catalog.Repository
	GuestRepo       guest.Repository
	HistoryRepo     history.Repository

	// Service dependencies
	GuestSync     guestsync.Service
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
	Logger        zerolog.Logger
}

// CreateSessionInput contains parameters for opening a game night
type CreateSessionInput struct {
	// ChannelID is the Discord channel the game night runs in
	ChannelID string `validate:"required"`

	// OrganizerID is the Discord user ID of the host
	OrganizerID string `validate:"required"`

	// OrganizerName is the host's display name
	OrganizerName string

	// OrganizerUsername is the host's account username
	OrganizerUsername string

	// PlayerCount is the expected number of players, defaulting to 1
	PlayerCount int `validate:"omitempty,gte=1,lte=99"`
}

// CreateSessionOutput contains the new game night
type CreateSessionOutput struct {
	Session   *models.Session
	Organizer *models.Participant
}

// GetSessionByChannelInput contains parameters for finding a channel's game night
type GetSessionByChannelInput struct {
	ChannelID string `validate:"required"`
}

// GetSessionByChannelOutput contains the channel's game night
type GetSessionByChannelOutput struct {
	Session *models.Session
}

// EndSessionInput contains parameters for closing a game night
type EndSessionInput struct {
	SessionID string `validate:"required"`
}

// EndSessionOutput contains the result of closing a game night
type EndSessionOutput struct {
	Success bool
}

// JoinSessionInput contains parameters for joining a game night as a local participant
type JoinSessionInput struct {
	SessionID     string `validate:"required"`
	ParticipantID string `validate:"required"`
	DisplayName   string
	Username      string
}

// JoinSessionOutput contains the result of joining a game night
type JoinSessionOutput struct {
	Participant *models.Participant

	// AlreadyJoined is true when the participant was already in the game night
	AlreadyJoined bool
}

// ListParticipantsInput contains parameters for listing a game night's participants
type ListParticipantsInput struct {
	SessionID string `validate:"required"`
}

// ListParticipantsOutput contains the local participants and named slots
type ListParticipantsOutput struct {
	Participants []*models.Participant
	Slots        []*models.NamedSlot
}

// UpdateFiltersInput contains parameters for replacing the filter configuration
type UpdateFiltersInput struct {
	SessionID string              `validate:"required"`
	Filters   models.FilterConfig `validate:"-"`
}

// UpdateFiltersOutput contains the updated game night
type UpdateFiltersOutput struct {
	Session *models.Session
}

// SetCandidatesInput contains parameters for replacing the candidate pool
type SetCandidatesInput struct {
	SessionID string `validate:"required"`

	// Items are the candidates in catalog order
	Items []*models.Item
}

// SetCandidatesOutput contains the result of replacing the candidate pool
type SetCandidatesOutput struct {
	Count int
}

// UpdatePreferenceInput contains parameters for editing a preference
type UpdatePreferenceInput struct {
	SessionID     string `validate:"required"`
	ParticipantID string `validate:"required"`
	ItemID        string `validate:"required"`
	Edit          models.PreferenceEdit
}

// UpdatePreferenceOutput contains the stored preference record
type UpdatePreferenceOutput struct {
	Record *models.PreferenceRecord
}

// RateItemInput contains parameters for rating a candidate
type RateItemInput struct {
	SessionID     string  `validate:"required"`
	ParticipantID string  `validate:"required"`
	ItemID        string  `validate:"required"`
	Rating        float64 `validate:"gte=0,lte=10"`
}

// RateItemOutput contains the result of rating a candidate
type RateItemOutput struct {
	Success bool
}

// ReserveSlotInput contains parameters for reserving a named slot
type ReserveSlotInput struct {
	SessionID   string `validate:"required"`
	DisplayName string `validate:"required,max=64"`
}

// ReserveSlotOutput contains the reserved slot
type ReserveSlotOutput struct {
	Slot *models.NamedSlot
}

// ClaimSlotInput contains parameters for a remote guest joining a named slot
type ClaimSlotInput struct {
	SessionID     string `validate:"required"`
	SlotID        string `validate:"required"`
	ParticipantID string `validate:"required"`
}

// ClaimSlotOutput contains the claimed slot
type ClaimSlotOutput struct {
	Slot *models.NamedSlot
}

// SubmitGuestSnapshotInput contains a remote guest's latest preferences
type SubmitGuestSnapshotInput struct {
	SessionID string                `validate:"required"`
	Snapshot  *models.GuestSnapshot `validate:"required"`
}

// SubmitGuestSnapshotOutput reports whether the snapshot replaced the stored one
type SubmitGuestSnapshotOutput struct {
	Applied bool
}

// PromoteItemInput contains parameters for promoting a candidate
type PromoteItemInput struct {
	SessionID string `validate:"required"`
	ItemID    string `validate:"required"`
}

// PromoteItemOutput contains the updated game night
type PromoteItemOutput struct {
	Session *models.Session
}

// ClearPromotionInput contains parameters for clearing the promotion
type ClearPromotionInput struct {
	SessionID string `validate:"required"`
}

// ClearPromotionOutput contains the updated game night
type ClearPromotionOutput struct {
	Session *models.Session
}

// GetRecommendationInput contains parameters for computing a recommendation
type GetRecommendationInput struct {
	SessionID string `validate:"required"`
}

// GetRecommendationOutput contains the recommendation and the views behind it
type GetRecommendationOutput struct {
	Session *models.Session

	// Result is the recommendation
	Result *models.RecommendationResult

	// CandidateCount is the size of the candidate pool before filtering
	CandidateCount int

	// Filtered are the candidates that passed the filters, in catalog order
	Filtered []*models.Item

	// Participants are the counted participants after guest reconciliation
	Participants []*models.Participant

	// Aliases maps remote guests folded into local participants
	Aliases map[string]string

	// Merged is true when remote guests took part
	Merged bool

	// GuestSyncError is set when the guest list is a last-good copy
	GuestSyncError string
}

// CommitRecommendationInput contains parameters for committing a recommendation
type CommitRecommendationInput struct {
	SessionID string `validate:"required"`
}

// CommitRecommendationOutput contains the stored commit
type CommitRecommendationOutput struct {
	Commit *models.CommittedRecommendation

	// PreviousCommits are earlier commits made with the same participants, candidates and filters
	PreviousCommits []*models.CommittedRecommendation
}

// GetHistoryInput contains parameters for listing committed recommendations
type GetHistoryInput struct {
	SessionID string `validate:"required"`
	Limit     int    `validate:"gte=0"`
}

// GetHistoryOutput contains committed recommendations, newest first
type GetHistoryOutput struct {
	Commits []*models.CommittedRecommendation
}
