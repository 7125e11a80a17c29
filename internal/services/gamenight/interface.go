package gamenight

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/gamenight/internal/services/gamenight Service

import "context"

// Service defines the interface for game night operations
type Service interface {
	// CreateSession opens a game night in a Discord channel
	CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error)

	// GetSessionByChannel returns the game night running in a channel
	GetSessionByChannel(ctx context.Context, input *GetSessionByChannelInput) (*GetSessionByChannelOutput, error)

	// EndSession closes a game night
	EndSession(ctx context.Context, input *EndSessionInput) (*EndSessionOutput, error)

	// JoinSession adds a local participant to a game night
	JoinSession(ctx context.Context, input *JoinSessionInput) (*JoinSessionOutput, error)

	// ListParticipants returns the local participants and named slots of a game night
	ListParticipants(ctx context.Context, input *ListParticipantsInput) (*ListParticipantsOutput, error)

	// UpdateFilters replaces the filter configuration of a game night
	UpdateFilters(ctx context.Context, input *UpdateFiltersInput) (*UpdateFiltersOutput, error)

	// SetCandidates replaces the candidate pool of a game night
	SetCandidates(ctx context.Context, input *SetCandidatesInput) (*SetCandidatesOutput, error)

	// UpdatePreference edits a participant's preference for one candidate
	UpdatePreference(ctx context.Context, input *UpdatePreferenceInput) (*UpdatePreferenceOutput, error)

	// RateItem records a participant's numeric rating of a candidate
	RateItem(ctx context.Context, input *RateItemInput) (*RateItemOutput, error)

	// ReserveSlot reserves a named seat for a remote guest
	ReserveSlot(ctx context.Context, input *ReserveSlotInput) (*ReserveSlotOutput, error)

	// ClaimSlot joins a remote guest into a reserved seat
	ClaimSlot(ctx context.Context, input *ClaimSlotInput) (*ClaimSlotOutput, error)

	// SubmitGuestSnapshot stores a remote guest's latest preferences
	SubmitGuestSnapshot(ctx context.Context, input *SubmitGuestSnapshotInput) (*SubmitGuestSnapshotOutput, error)

	// PromoteItem pins a candidate to the top of the recommendation
	PromoteItem(ctx context.Context, input *PromoteItemInput) (*PromoteItemOutput, error)

	// ClearPromotion removes the promotion override
	ClearPromotion(ctx context.Context, input *ClearPromotionInput) (*ClearPromotionOutput, error)

	// GetRecommendation computes the current recommendation
	GetRecommendation(ctx context.Context, input *GetRecommendationInput) (*GetRecommendationOutput, error)

	// CommitRecommendation records the current top pick and alternatives
	CommitRecommendation(ctx context.Context, input *CommitRecommendationInput) (*CommitRecommendationOutput, error)

	// GetHistory returns a game night's committed recommendations
	GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error)
}
