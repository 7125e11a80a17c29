package gamenight

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/gamenight/internal/common/clock"
	"github.com/KirkDiggler/gamenight/internal/common/uuid"
	"github.com/KirkDiggler/gamenight/internal/models"
	"github.com/KirkDiggler/gamenight/internal/recommend"
	catalogRepo "github.com/KirkDiggler/gamenight/internal/repositories/catalog"
	guestRepo "github.com/KirkDiggler/gamenight/internal/repositories/guest"
	historyRepo "github.com/KirkDiggler/gamenight/internal/repositories/history"
	participantRepo "github.com/KirkDiggler/gamenight/internal/repositories/participant"
	preferenceRepo "github.com/KirkDiggler/gamenight/internal/repositories/preference"
	sessionRepo "github.com/KirkDiggler/gamenight/internal/repositories/session"
	"github.com/KirkDiggler/gamenight/internal/services/guestsync"
)

// service implements the Service interface
type service struct {
	maxParticipants int
	sessionRepo     sessionRepo.Repository
	participantRepo participantRepo.Repository
	preferenceRepo  preferenceRepo.Repository
	catalogRepo     catalogRepo.Repository
	guestRepo       guestRepo.Repository
	historyRepo     historyRepo.Repository
	guestSync       guestsync.Service
	clock           clock.Clock
	uuidGenerator   uuid.UUID
	validate        *validator.Validate
	logger          zerolog.Logger
}

// New creates a new game night service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.MaxParticipants <= 0 {
		return nil, ErrInvalidMaxParticipants
	}

	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}

	if cfg.ParticipantRepo == nil {
		return nil, ErrNilParticipantRepo
	}

	if cfg.PreferenceRepo == nil {
		return nil, ErrNilPreferenceRepo
	}

	if cfg.CatalogRepo == nil {
		return nil, ErrNilCatalogRepo
	}

	if cfg.GuestRepo == nil {
		return nil, ErrNilGuestRepo
	}

	if cfg.HistoryRepo == nil {
		return nil, ErrNilHistoryRepo
	}

	if cfg.GuestSync == nil {
		return nil, ErrNilGuestSync
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		maxParticipants: cfg.MaxParticipants,
		sessionRepo:     cfg.SessionRepo,
		participantRepo: cfg.ParticipantRepo,
		preferenceRepo:  cfg.PreferenceRepo,
		catalogRepo:     cfg.CatalogRepo,
		guestRepo:       cfg.GuestRepo,
		historyRepo:     cfg.HistoryRepo,
		guestSync:       cfg.GuestSync,
		clock:           cfg.Clock,
		uuidGenerator:   cfg.UUIDGenerator,
		validate:        validator.New(validator.WithRequiredStructEnabled()),
		logger:          cfg.Logger.With().Str("component", "gamenight").Logger(),
	}, nil
}

// validateInput checks an input's struct tags
func (s *service) validateInput(input interface{}) error {
	if err := s.validate.Struct(input); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}

// getSession loads a session, mapping a missing one to ErrSessionNotFound
func (s *service) getSession(ctx context.Context, sessionID string) (*models.Session, error) {
	session, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{
		SessionID: sessionID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return session, nil
}

// saveSession stamps and persists a session
func (s *service) saveSession(ctx context.Context, session *models.Session) error {
	session.UpdatedAt = s.clock.Now()

	if err := s.sessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{
		Session: session,
	}); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

// getParticipant loads a local participant, mapping a missing one to ErrParticipantNotFound
func (s *service) getParticipant(ctx context.Context, sessionID, participantID string) (*models.Participant, error) {
	participant, err := s.participantRepo.GetParticipant(ctx, &participantRepo.GetParticipantInput{
		SessionID:     sessionID,
		ParticipantID: participantID,
	})
	if err != nil {
		if errors.Is(err, participantRepo.ErrParticipantNotFound) {
			return nil, ErrParticipantNotFound
		}
		return nil, fmt.Errorf("failed to get participant: %w", err)
	}

	return participant, nil
}

// requireCandidate checks that an item is in the session's candidate pool
func (s *service) requireCandidate(ctx context.Context, sessionID, itemID string) (*models.Item, error) {
	output, err := s.catalogRepo.GetItems(ctx, &catalogRepo.GetItemsInput{
		SessionID: sessionID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get candidates: %w", err)
	}

	for _, item := range output.Items {
		if item.ID == itemID {
			return item, nil
		}
	}

	return nil, ErrItemNotFound
}

// CreateSession opens a game night in a Discord channel
func (s *service) CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	// Check if a game night already runs in this channel
	existing, err := s.sessionRepo.GetSessionByChannel(ctx, &sessionRepo.GetSessionByChannelInput{
		ChannelID: input.ChannelID,
	})
	if err == nil && existing != nil {
		return nil, ErrSessionAlreadyExists
	}

	if err != nil && !errors.Is(err, sessionRepo.ErrSessionNotFound) {
		return nil, fmt.Errorf("failed to check for existing session: %w", err)
	}

	playerCount := input.PlayerCount
	if playerCount == 0 {
		playerCount = 1
	}

	now := s.clock.Now()
	session := &models.Session{
		ID:          s.uuidGenerator.NewUUID(),
		ChannelID:   input.ChannelID,
		OrganizerID: input.OrganizerID,
		Filters:     models.DefaultFilterConfig(playerCount),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.sessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{
		Session: session,
	}); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	organizer := &models.Participant{
		ID:          input.OrganizerID,
		SessionID:   session.ID,
		DisplayName: input.OrganizerName,
		Username:    input.OrganizerUsername,
		Origin:      models.ParticipantOriginLocal,
		IsOrganizer: true,
	}

	if err := s.participantRepo.SaveParticipant(ctx, &participantRepo.SaveParticipantInput{
		Participant: organizer,
	}); err != nil {
		return nil, fmt.Errorf("failed to save organizer: %w", err)
	}

	s.logger.Info().
		Str("session_id", session.ID).
		Str("channel_id", session.ChannelID).
		Str("organizer_id", organizer.ID).
		Msg("game night created")

	return &CreateSessionOutput{
		Session:   session,
		Organizer: organizer,
	}, nil
}

// GetSessionByChannel returns the game night running in a channel
func (s *service) GetSessionByChannel(ctx context.Context, input *GetSessionByChannelInput) (*GetSessionByChannelOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	session, err := s.sessionRepo.GetSessionByChannel(ctx, &sessionRepo.GetSessionByChannelInput{
		ChannelID: input.ChannelID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session by channel: %w", err)
	}

	return &GetSessionByChannelOutput{
		Session: session,
	}, nil
}

// EndSession closes a game night and stops polling its guests.
// Committed history is kept.
func (s *service) EndSession(ctx context.Context, input *EndSessionInput) (*EndSessionOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	if _, err := s.getSession(ctx, input.SessionID); err != nil {
		return nil, err
	}

	if err := s.sessionRepo.DeleteSession(ctx, &sessionRepo.DeleteSessionInput{
		SessionID: input.SessionID,
	}); err != nil {
		return nil, fmt.Errorf("failed to delete session: %w", err)
	}

	s.guestSync.Stop(input.SessionID)

	s.logger.Info().Str("session_id", input.SessionID).Msg("game night ended")

	return &EndSessionOutput{
		Success: true,
	}, nil
}

// JoinSession adds a local participant to a game night
func (s *service) JoinSession(ctx context.Context, input *JoinSessionInput) (*JoinSessionOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	if _, err := s.getSession(ctx, input.SessionID); err != nil {
		return nil, err
	}

	existing, err := s.getParticipant(ctx, input.SessionID, input.ParticipantID)
	if err == nil {
		return &JoinSessionOutput{
			Participant:   existing,
			AlreadyJoined: true,
		}, nil
	}

	if !errors.Is(err, ErrParticipantNotFound) {
		return nil, err
	}

	participants, err := s.participantRepo.GetParticipantsInSession(ctx, &participantRepo.GetParticipantsInSessionInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get participants: %w", err)
	}

	if len(participants.Participants) >= s.maxParticipants {
		return nil, ErrSessionFull
	}

	participant := &models.Participant{
		ID:          input.ParticipantID,
		SessionID:   input.SessionID,
		DisplayName: input.DisplayName,
		Username:    input.Username,
		Origin:      models.ParticipantOriginLocal,
	}

	if err := s.participantRepo.SaveParticipant(ctx, &participantRepo.SaveParticipantInput{
		Participant: participant,
	}); err != nil {
		return nil, fmt.Errorf("failed to save participant: %w", err)
	}

	return &JoinSessionOutput{
		Participant: participant,
	}, nil
}

// ListParticipants returns the local participants and named slots of a game night
func (s *service) ListParticipants(ctx context.Context, input *ListParticipantsInput) (*ListParticipantsOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	if _, err := s.getSession(ctx, input.SessionID); err != nil {
		return nil, err
	}

	participants, err := s.participantRepo.GetParticipantsInSession(ctx, &participantRepo.GetParticipantsInSessionInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get participants: %w", err)
	}

	slots, err := s.guestRepo.ListSlots(ctx, &guestRepo.ListSlotsInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list slots: %w", err)
	}

	return &ListParticipantsOutput{
		Participants: participants.Participants,
		Slots:        slots.Slots,
	}, nil
}

// UpdateFilters validates and stores a new filter configuration
func (s *service) UpdateFilters(ctx context.Context, input *UpdateFiltersInput) (*UpdateFiltersOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	filters := input.Filters
	if filters.Mode == "" {
		filters.Mode = models.GameModeAny
	}

	if err := s.validateFilters(filters); err != nil {
		return nil, err
	}

	session, err := s.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	session.Filters = filters
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}

	return &UpdateFiltersOutput{
		Session: session,
	}, nil
}

// validateFilters checks field bounds and that bounded ranges are not inverted
func (s *service) validateFilters(filters models.FilterConfig) error {
	if err := s.validate.Struct(filters); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFilters, err)
	}

	switch {
	case filters.TimeRange.Max != 0 && filters.TimeRange.Max < filters.TimeRange.Min:
		return fmt.Errorf("%w: time range is inverted", ErrInvalidFilters)
	case filters.AgeRange.Max != 0 && filters.AgeRange.Max < filters.AgeRange.Min:
		return fmt.Errorf("%w: age range is inverted", ErrInvalidFilters)
	case filters.ComplexityRange.Max != 0 && filters.ComplexityRange.Max < filters.ComplexityRange.Min:
		return fmt.Errorf("%w: complexity range is inverted", ErrInvalidFilters)
	case filters.RatingRange.Max != 0 && filters.RatingRange.Max < filters.RatingRange.Min:
		return fmt.Errorf("%w: rating range is inverted", ErrInvalidFilters)
	}

	return nil
}

// SetCandidates replaces the candidate pool of a game night
func (s *service) SetCandidates(ctx context.Context, input *SetCandidatesInput) (*SetCandidatesOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(input.Items))
	for _, item := range input.Items {
		if item == nil || item.ID == "" {
			return nil, fmt.Errorf("%w: candidate without an ID", ErrInvalidInput)
		}
		if seen[item.ID] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateItem, item.ID)
		}
		seen[item.ID] = true
	}

	if _, err := s.getSession(ctx, input.SessionID); err != nil {
		return nil, err
	}

	if err := s.catalogRepo.SaveItems(ctx, &catalogRepo.SaveItemsInput{
		SessionID: input.SessionID,
		Items:     input.Items,
	}); err != nil {
		return nil, fmt.Errorf("failed to save candidates: %w", err)
	}

	return &SetCandidatesOutput{
		Count: len(input.Items),
	}, nil
}

// UpdatePreference applies an edit to a participant's record for one candidate.
// Dislike and a positive preference never coexist on the stored record.
func (s *service) UpdatePreference(ctx context.Context, input *UpdatePreferenceInput) (*UpdatePreferenceOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	if input.Edit.Rank != nil && *input.Edit.Rank < 1 {
		return nil, fmt.Errorf("%w: rank must be at least 1", ErrInvalidInput)
	}

	if _, err := s.getSession(ctx, input.SessionID); err != nil {
		return nil, err
	}

	if _, err := s.getParticipant(ctx, input.SessionID, input.ParticipantID); err != nil {
		return nil, err
	}

	if _, err := s.requireCandidate(ctx, input.SessionID, input.ItemID); err != nil {
		return nil, err
	}

	record, err := s.preferenceRepo.GetPreference(ctx, &preferenceRepo.GetPreferenceInput{
		SessionID:     input.SessionID,
		ParticipantID: input.ParticipantID,
		ItemID:        input.ItemID,
	})
	if err != nil {
		if !errors.Is(err, preferenceRepo.ErrPreferenceNotFound) {
			return nil, fmt.Errorf("failed to get preference: %w", err)
		}
		record = &models.PreferenceRecord{
			ParticipantID: input.ParticipantID,
			ItemID:        input.ItemID,
		}
	}

	record.Apply(input.Edit, s.clock.Now())

	if err := s.preferenceRepo.SavePreference(ctx, &preferenceRepo.SavePreferenceInput{
		SessionID: input.SessionID,
		Record:    record,
	}); err != nil {
		return nil, fmt.Errorf("failed to save preference: %w", err)
	}

	return &UpdatePreferenceOutput{
		Record: record,
	}, nil
}

// RateItem records a participant's numeric rating of a candidate
func (s *service) RateItem(ctx context.Context, input *RateItemInput) (*RateItemOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	if _, err := s.getSession(ctx, input.SessionID); err != nil {
		return nil, err
	}

	if _, err := s.getParticipant(ctx, input.SessionID, input.ParticipantID); err != nil {
		return nil, err
	}

	if _, err := s.requireCandidate(ctx, input.SessionID, input.ItemID); err != nil {
		return nil, err
	}

	if err := s.preferenceRepo.SaveRating(ctx, &preferenceRepo.SaveRatingInput{
		SessionID:     input.SessionID,
		ParticipantID: input.ParticipantID,
		ItemID:        input.ItemID,
		Rating:        input.Rating,
	}); err != nil {
		return nil, fmt.Errorf("failed to save rating: %w", err)
	}

	return &RateItemOutput{
		Success: true,
	}, nil
}

// ReserveSlot reserves a named seat for a remote guest
func (s *service) ReserveSlot(ctx context.Context, input *ReserveSlotInput) (*ReserveSlotOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	if _, err := s.getSession(ctx, input.SessionID); err != nil {
		return nil, err
	}

	slot := &models.NamedSlot{
		SlotID:              s.uuidGenerator.NewUUID(),
		SessionID:           input.SessionID,
		ReservedDisplayName: input.DisplayName,
	}

	if err := s.guestRepo.ReserveSlot(ctx, &guestRepo.ReserveSlotInput{
		Slot: slot,
	}); err != nil {
		return nil, fmt.Errorf("failed to reserve slot: %w", err)
	}

	return &ReserveSlotOutput{
		Slot: slot,
	}, nil
}

// ClaimSlot joins a remote guest into a reserved seat
func (s *service) ClaimSlot(ctx context.Context, input *ClaimSlotInput) (*ClaimSlotOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	if _, err := s.getSession(ctx, input.SessionID); err != nil {
		return nil, err
	}

	slot, err := s.guestRepo.ClaimSlot(ctx, &guestRepo.ClaimSlotInput{
		SessionID:     input.SessionID,
		SlotID:        input.SlotID,
		ParticipantID: input.ParticipantID,
	})
	if err != nil {
		switch {
		case errors.Is(err, guestRepo.ErrSlotNotFound):
			return nil, ErrSlotNotFound
		case errors.Is(err, guestRepo.ErrSlotAlreadyClaimed):
			return nil, ErrSlotAlreadyClaimed
		}
		return nil, fmt.Errorf("failed to claim slot: %w", err)
	}

	return &ClaimSlotOutput{
		Slot: slot,
	}, nil
}

// SubmitGuestSnapshot stores a remote guest's latest preferences.
// Records are re-keyed to the guest and inherit the snapshot time when unstamped.
func (s *service) SubmitGuestSnapshot(ctx context.Context, input *SubmitGuestSnapshotInput) (*SubmitGuestSnapshotOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	if input.Snapshot.ParticipantID == "" {
		return nil, fmt.Errorf("%w: snapshot without a participant", ErrInvalidInput)
	}

	if _, err := s.getSession(ctx, input.SessionID); err != nil {
		return nil, err
	}

	snapshot := *input.Snapshot
	if snapshot.UpdatedAt.IsZero() {
		snapshot.UpdatedAt = s.clock.Now()
	}

	records := make([]*models.PreferenceRecord, 0, len(snapshot.Preferences))
	for _, record := range snapshot.Preferences {
		if record == nil {
			continue
		}
		stored := *record
		stored.ParticipantID = snapshot.ParticipantID
		if stored.UpdatedAt.IsZero() {
			stored.UpdatedAt = snapshot.UpdatedAt
		}
		records = append(records, &stored)
	}
	snapshot.Preferences = records

	output, err := s.guestRepo.SaveSnapshot(ctx, &guestRepo.SaveSnapshotInput{
		SessionID: input.SessionID,
		Snapshot:  &snapshot,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save guest snapshot: %w", err)
	}

	return &SubmitGuestSnapshotOutput{
		Applied: output.Applied,
	}, nil
}

// PromoteItem pins a candidate to the top of the recommendation.
// The promotion stays set until cleared, even while the candidate is filtered out.
func (s *service) PromoteItem(ctx context.Context, input *PromoteItemInput) (*PromoteItemOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	session, err := s.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if _, err := s.requireCandidate(ctx, input.SessionID, input.ItemID); err != nil {
		return nil, err
	}

	promotion := recommend.NewPromotion(session.PromotedItemID)
	promotion.Promote(input.ItemID)
	session.PromotedItemID = promotion.ItemID()

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}

	return &PromoteItemOutput{
		Session: session,
	}, nil
}

// ClearPromotion removes the promotion override
func (s *service) ClearPromotion(ctx context.Context, input *ClearPromotionInput) (*ClearPromotionOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	session, err := s.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	promotion := recommend.NewPromotion(session.PromotedItemID)
	promotion.Clear()
	session.PromotedItemID = promotion.ItemID()

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}

	return &ClearPromotionOutput{
		Session: session,
	}, nil
}

// sessionState is everything the engine needs for one session
type sessionState struct {
	items        []*models.Item
	participants []*models.Participant
	preferences  models.Preferences
	ratings      models.Ratings
}

// loadState fetches a session's candidates, participants, preferences and ratings concurrently
func (s *service) loadState(ctx context.Context, sessionID string) (*sessionState, error) {
	var snap sessionState

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		output, err := s.catalogRepo.GetItems(gctx, &catalogRepo.GetItemsInput{SessionID: sessionID})
		if err != nil {
			return fmt.Errorf("failed to get candidates: %w", err)
		}
		snap.items = output.Items
		return nil
	})

	g.Go(func() error {
		output, err := s.participantRepo.GetParticipantsInSession(gctx, &participantRepo.GetParticipantsInSessionInput{SessionID: sessionID})
		if err != nil {
			return fmt.Errorf("failed to get participants: %w", err)
		}
		snap.participants = output.Participants
		return nil
	})

	g.Go(func() error {
		preferences, err := s.preferenceRepo.GetPreferencesForSession(gctx, &preferenceRepo.GetPreferencesForSessionInput{SessionID: sessionID})
		if err != nil {
			return fmt.Errorf("failed to get preferences: %w", err)
		}
		snap.preferences = preferences
		return nil
	})

	g.Go(func() error {
		ratings, err := s.preferenceRepo.GetRatingsForSession(gctx, &preferenceRepo.GetRatingsForSessionInput{SessionID: sessionID})
		if err != nil {
			return fmt.Errorf("failed to get ratings: %w", err)
		}
		snap.ratings = ratings
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &snap, nil
}

// guestState returns the latest applied guest state of a session without waiting for a
// fresher one. Only a session that was never synced is fetched in line.
func (s *service) guestState(ctx context.Context, sessionID string) (*guestsync.State, error) {
	state := s.guestSync.State(sessionID)
	if state.Sequence > 0 {
		return state, nil
	}

	refreshed, err := s.guestSync.Refresh(ctx, &guestsync.RefreshInput{
		SessionID: sessionID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to refresh guests: %w", err)
	}
	return refreshed.State, nil
}

// GetRecommendation loads the session state and runs the engine over the latest known
// remote guests. A failed guest sync falls back to the last good guest list and is
// reported, not returned.
func (s *service) GetRecommendation(ctx context.Context, input *GetRecommendationInput) (*GetRecommendationOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	session, err := s.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	snap, err := s.loadState(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	guests, err := s.guestState(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	merged := len(guests.Guests) > 0 || len(guests.Slots) > 0

	computed := recommend.Compute(recommend.SessionContext{
		SessionID: session.ID,
		Merged:    merged,
	}, &recommend.ComputeInput{
		Candidates:   snap.items,
		Filters:      session.Filters,
		Ratings:      snap.ratings,
		Participants: snap.participants,
		Preferences:  snap.preferences,
		Guests:       guests.Guests,
		Slots:        guests.Slots,
		Promotion:    recommend.NewPromotion(session.PromotedItemID),
	})

	s.logger.Debug().
		Str("session_id", session.ID).
		Int("candidates", len(snap.items)).
		Int("eligible", len(computed.Filtered)).
		Int("participants", len(computed.Participants)).
		Int("vetoed", len(computed.Result.Vetoed)).
		Bool("merged", merged).
		Msg("recommendation computed")

	return &GetRecommendationOutput{
		Session:        session,
		Result:         computed.Result,
		CandidateCount: len(snap.items),
		Filtered:       computed.Filtered,
		Participants:   computed.Participants,
		Aliases:        computed.Aliases,
		Merged:         merged,
		GuestSyncError: guests.Err,
	}, nil
}

// CommitRecommendation records the current top pick and alternatives
func (s *service) CommitRecommendation(ctx context.Context, input *CommitRecommendationInput) (*CommitRecommendationOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	recommendation, err := s.GetRecommendation(ctx, &GetRecommendationInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		return nil, err
	}

	result := recommendation.Result
	if result.TopPick == nil {
		return nil, ErrNoTopPick
	}

	participantIDs := make([]string, 0, len(recommendation.Participants))
	for _, participant := range recommendation.Participants {
		participantIDs = append(participantIDs, participant.ID)
	}

	candidateIDs := make([]string, 0, len(recommendation.Filtered))
	for _, item := range recommendation.Filtered {
		candidateIDs = append(candidateIDs, item.ID)
	}

	fp, err := fingerprint(participantIDs, candidateIDs, recommendation.Session.Filters)
	if err != nil {
		return nil, err
	}

	alternatives := make([]models.CommittedItem, 0, len(result.Alternatives))
	for _, alternative := range result.Alternatives {
		alternatives = append(alternatives, committedItem(alternative))
	}

	previous, err := s.historyRepo.GetCommitsByFingerprint(ctx, &historyRepo.GetCommitsByFingerprintInput{
		Fingerprint: fp,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get previous commits: %w", err)
	}

	commit := &models.CommittedRecommendation{
		ID:             s.uuidGenerator.NewUUID(),
		SessionID:      input.SessionID,
		Fingerprint:    fp,
		ParticipantIDs: participantIDs,
		CandidateIDs:   candidateIDs,
		Filters:        recommendation.Session.Filters,
		TopPick:        committedItem(result.TopPick),
		Alternatives:   alternatives,
		CommittedAt:    s.clock.Now(),
	}

	if err := s.historyRepo.AddCommit(ctx, &historyRepo.AddCommitInput{
		Commit: commit,
	}); err != nil {
		return nil, fmt.Errorf("failed to add commit: %w", err)
	}

	s.logger.Info().
		Str("session_id", input.SessionID).
		Str("commit_id", commit.ID).
		Str("item_id", commit.TopPick.ItemID).
		Str("fingerprint", fp).
		Msg("recommendation committed")

	return &CommitRecommendationOutput{
		Commit:          commit,
		PreviousCommits: previous.Commits,
	}, nil
}

// GetHistory returns a game night's committed recommendations, newest first
func (s *service) GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	output, err := s.historyRepo.GetCommitsForSession(ctx, &historyRepo.GetCommitsForSessionInput{
		SessionID: input.SessionID,
		Limit:     input.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get history: %w", err)
	}

	return &GetHistoryOutput{
		Commits: output.Commits,
	}, nil
}

func committedItem(scored *models.ScoredItem) models.CommittedItem {
	return models.CommittedItem{
		ItemID: scored.Item.ID,
		Name:   scored.Item.Name,
		Score:  scored.Score,
	}
}
