package gamenight

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/gamenight/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/gamenight/internal/common/uuid/mocks"
	"github.com/KirkDiggler/gamenight/internal/models"
	catalogRepo "github.com/KirkDiggler/gamenight/internal/repositories/catalog"
	catalogMocks "github.com/KirkDiggler/gamenight/internal/repositories/catalog/mocks"
	guestRepo "github.com/KirkDiggler/gamenight/internal/repositories/guest"
	guestMocks "github.com/KirkDiggler/gamenight/internal/repositories/guest/mocks"
	historyRepo "github.com/KirkDiggler/gamenight/internal/repositories/history"
	historyMocks "github.com/KirkDiggler/gamenight/internal/repositories/history/mocks"
	participantRepo "github.com/KirkDiggler/gamenight/internal/repositories/participant"
	participantMocks "github.com/KirkDiggler/gamenight/internal/repositories/participant/mocks"
	preferenceRepo "github.com/KirkDiggler/gamenight/internal/repositories/preference"
	preferenceMocks "github.com/KirkDiggler/gamenight/internal/repositories/preference/mocks"
	sessionRepo "github.com/KirkDiggler/gamenight/internal/repositories/session"
	sessionMocks "github.com/KirkDiggler/gamenight/internal/repositories/session/mocks"
	"github.com/KirkDiggler/gamenight/internal/services/guestsync"
	guestSyncMocks "github.com/KirkDiggler/gamenight/internal/services/guestsync/mocks"
)

type GamenightServiceTestSuite struct {
	suite.Suite
	mockCtrl            *gomock.Controller
	mockSessionRepo     *sessionMocks.MockRepository
	mockParticipantRepo *participantMocks.MockRepository
	mockPreferenceRepo  *preferenceMocks.MockRepository
	mockCatalogRepo     *catalogMocks.MockRepository
	mockGuestRepo       *guestMocks.MockRepository
	mockHistoryRepo     *historyMocks.MockRepository
	mockGuestSync       *guestSyncMocks.MockService
	mockClock           *mocks.MockClock
	mockUUID            *uuidMocks.MockUUID
	svc                 Service
	ctx                 context.Context

	// Test data
	testTime      time.Time
	testSessionID string
	testChannelID string
	testHostID    string

	// Reusable test fixtures
	expectedSession *models.Session
	testItems       []*models.Item
}

func (s *GamenightServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockSessionRepo = sessionMocks.NewMockRepository(s.mockCtrl)
	s.mockParticipantRepo = participantMocks.NewMockRepository(s.mockCtrl)
	s.mockPreferenceRepo = preferenceMocks.NewMockRepository(s.mockCtrl)
	s.mockCatalogRepo = catalogMocks.NewMockRepository(s.mockCtrl)
	s.mockGuestRepo = guestMocks.NewMockRepository(s.mockCtrl)
	s.mockHistoryRepo = historyMocks.NewMockRepository(s.mockCtrl)
	s.mockGuestSync = guestSyncMocks.NewMockService(s.mockCtrl)
	s.mockClock = mocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)

	s.ctx = context.Background()

	// Initialize test data
	s.testTime = time.Date(2026, 3, 14, 19, 0, 0, 0, time.UTC)
	s.testSessionID = "test-session-id"
	s.testChannelID = "test-channel-id"
	s.testHostID = "host"

	// Set up the clock mock to return our test time
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	s.expectedSession = &models.Session{
		ID:          s.testSessionID,
		ChannelID:   s.testChannelID,
		OrganizerID: s.testHostID,
		Filters:     models.DefaultFilterConfig(2),
		CreatedAt:   s.testTime,
		UpdatedAt:   s.testTime,
	}

	s.testItems = []*models.Item{
		{ID: "azul", Name: "Azul", MinPlayers: models.Ptr(2), MaxPlayers: models.Ptr(4)},
		{ID: "pandemic", Name: "Pandemic", MinPlayers: models.Ptr(2), MaxPlayers: models.Ptr(4), Mechanics: []string{"Cooperative Game"}},
		{ID: "codenames", Name: "Codenames", MinPlayers: models.Ptr(2), MaxPlayers: models.Ptr(8)},
	}

	svc, err := New(&Config{
		MaxParticipants: 3,
		SessionRepo:     s.mockSessionRepo,
		ParticipantRepo: s.mockParticipantRepo,
		PreferenceRepo:  s.mockPreferenceRepo,
		CatalogRepo:     s.mockCatalogRepo,
		GuestRepo:       s.mockGuestRepo,
		HistoryRepo:     s.mockHistoryRepo,
		GuestSync:       s.mockGuestSync,
		Clock:           s.mockClock,
		UUIDGenerator:   s.mockUUID,
		Logger:          zerolog.Nop(),
	})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *GamenightServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestGamenightServiceSuite(t *testing.T) {
	suite.Run(t, new(GamenightServiceTestSuite))
}

// session returns a fresh copy of the fixture so tests can mutate it
func (s *GamenightServiceTestSuite) session() *models.Session {
	session := *s.expectedSession
	return &session
}

func (s *GamenightServiceTestSuite) expectGetSession(session *models.Session) {
	s.mockSessionRepo.EXPECT().
		GetSession(s.ctx, &sessionRepo.GetSessionInput{SessionID: s.testSessionID}).
		Return(session, nil)
}

func (s *GamenightServiceTestSuite) expectParticipant(participantID string) {
	s.mockParticipantRepo.EXPECT().
		GetParticipant(s.ctx, &participantRepo.GetParticipantInput{SessionID: s.testSessionID, ParticipantID: participantID}).
		Return(&models.Participant{ID: participantID, SessionID: s.testSessionID}, nil)
}

func (s *GamenightServiceTestSuite) expectItems() {
	s.mockCatalogRepo.EXPECT().
		GetItems(gomock.Any(), &catalogRepo.GetItemsInput{SessionID: s.testSessionID}).
		Return(&catalogRepo.GetItemsOutput{Items: s.testItems}, nil)
}

func (s *GamenightServiceTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.Equal(ErrNilConfig, err)

	_, err = New(&Config{MaxParticipants: 0})
	s.Equal(ErrInvalidMaxParticipants, err)

	_, err = New(&Config{MaxParticipants: 4})
	s.Equal(ErrNilSessionRepo, err)

	_, err = New(&Config{
		MaxParticipants: 4,
		SessionRepo:     s.mockSessionRepo,
		ParticipantRepo: s.mockParticipantRepo,
		PreferenceRepo:  s.mockPreferenceRepo,
		CatalogRepo:     s.mockCatalogRepo,
		GuestRepo:       s.mockGuestRepo,
		HistoryRepo:     s.mockHistoryRepo,
		Clock:           s.mockClock,
		UUIDGenerator:   s.mockUUID,
	})
	s.Equal(ErrNilGuestSync, err)
}

func (s *GamenightServiceTestSuite) TestCreateSession() {
	s.mockSessionRepo.EXPECT().
		GetSessionByChannel(s.ctx, &sessionRepo.GetSessionByChannelInput{ChannelID: s.testChannelID}).
		Return(nil, sessionRepo.ErrSessionNotFound)
	s.mockUUID.EXPECT().NewUUID().Return(s.testSessionID)
	s.mockSessionRepo.EXPECT().
		SaveSession(s.ctx, &sessionRepo.SaveSessionInput{Session: s.expectedSession}).
		Return(nil)

	expectedOrganizer := &models.Participant{
		ID:          s.testHostID,
		SessionID:   s.testSessionID,
		DisplayName: "Host",
		Username:    "host_user",
		Origin:      models.ParticipantOriginLocal,
		IsOrganizer: true,
	}
	s.mockParticipantRepo.EXPECT().
		SaveParticipant(s.ctx, &participantRepo.SaveParticipantInput{Participant: expectedOrganizer}).
		Return(nil)

	output, err := s.svc.CreateSession(s.ctx, &CreateSessionInput{
		ChannelID:         s.testChannelID,
		OrganizerID:       s.testHostID,
		OrganizerName:     "Host",
		OrganizerUsername: "host_user",
		PlayerCount:       2,
	})
	s.Require().NoError(err)
	s.Equal(s.expectedSession, output.Session)
	s.Equal(expectedOrganizer, output.Organizer)
}

func (s *GamenightServiceTestSuite) TestCreateSessionChannelBusy() {
	s.mockSessionRepo.EXPECT().
		GetSessionByChannel(s.ctx, &sessionRepo.GetSessionByChannelInput{ChannelID: s.testChannelID}).
		Return(s.session(), nil)

	_, err := s.svc.CreateSession(s.ctx, &CreateSessionInput{ChannelID: s.testChannelID, OrganizerID: s.testHostID})
	s.Equal(ErrSessionAlreadyExists, err)
}

func (s *GamenightServiceTestSuite) TestCreateSessionRequiresChannel() {
	_, err := s.svc.CreateSession(s.ctx, &CreateSessionInput{OrganizerID: s.testHostID})
	s.ErrorIs(err, ErrInvalidInput)
}

func (s *GamenightServiceTestSuite) TestCreateSessionRepositoryError() {
	s.mockSessionRepo.EXPECT().
		GetSessionByChannel(s.ctx, gomock.Any()).
		Return(nil, errors.New("redis down"))

	_, err := s.svc.CreateSession(s.ctx, &CreateSessionInput{ChannelID: s.testChannelID, OrganizerID: s.testHostID})
	s.Error(err)
	s.Contains(err.Error(), "redis down")
}

func (s *GamenightServiceTestSuite) TestGetSessionByChannelNotFound() {
	s.mockSessionRepo.EXPECT().
		GetSessionByChannel(s.ctx, &sessionRepo.GetSessionByChannelInput{ChannelID: s.testChannelID}).
		Return(nil, sessionRepo.ErrSessionNotFound)

	_, err := s.svc.GetSessionByChannel(s.ctx, &GetSessionByChannelInput{ChannelID: s.testChannelID})
	s.Equal(ErrSessionNotFound, err)
}

func (s *GamenightServiceTestSuite) TestEndSession() {
	s.expectGetSession(s.session())
	s.mockSessionRepo.EXPECT().
		DeleteSession(s.ctx, &sessionRepo.DeleteSessionInput{SessionID: s.testSessionID}).
		Return(nil)
	s.mockGuestSync.EXPECT().Stop(s.testSessionID)

	output, err := s.svc.EndSession(s.ctx, &EndSessionInput{SessionID: s.testSessionID})
	s.Require().NoError(err)
	s.True(output.Success)
}

func (s *GamenightServiceTestSuite) TestJoinSession() {
	s.expectGetSession(s.session())
	s.mockParticipantRepo.EXPECT().
		GetParticipant(s.ctx, &participantRepo.GetParticipantInput{SessionID: s.testSessionID, ParticipantID: "alice"}).
		Return(nil, participantRepo.ErrParticipantNotFound)
	s.mockParticipantRepo.EXPECT().
		GetParticipantsInSession(s.ctx, &participantRepo.GetParticipantsInSessionInput{SessionID: s.testSessionID}).
		Return(&participantRepo.GetParticipantsInSessionOutput{Participants: []*models.Participant{{ID: s.testHostID}}}, nil)

	expected := &models.Participant{
		ID:          "alice",
		SessionID:   s.testSessionID,
		DisplayName: "Alice",
		Username:    "alice_b",
		Origin:      models.ParticipantOriginLocal,
	}
	s.mockParticipantRepo.EXPECT().
		SaveParticipant(s.ctx, &participantRepo.SaveParticipantInput{Participant: expected}).
		Return(nil)

	output, err := s.svc.JoinSession(s.ctx, &JoinSessionInput{
		SessionID:     s.testSessionID,
		ParticipantID: "alice",
		DisplayName:   "Alice",
		Username:      "alice_b",
	})
	s.Require().NoError(err)
	s.False(output.AlreadyJoined)
	s.Equal(expected, output.Participant)
}

func (s *GamenightServiceTestSuite) TestJoinSessionAlreadyJoined() {
	s.expectGetSession(s.session())
	s.expectParticipant("alice")

	output, err := s.svc.JoinSession(s.ctx, &JoinSessionInput{SessionID: s.testSessionID, ParticipantID: "alice"})
	s.Require().NoError(err)
	s.True(output.AlreadyJoined)
}

func (s *GamenightServiceTestSuite) TestJoinSessionFull() {
	s.expectGetSession(s.session())
	s.mockParticipantRepo.EXPECT().
		GetParticipant(s.ctx, gomock.Any()).
		Return(nil, participantRepo.ErrParticipantNotFound)
	s.mockParticipantRepo.EXPECT().
		GetParticipantsInSession(s.ctx, gomock.Any()).
		Return(&participantRepo.GetParticipantsInSessionOutput{
			Participants: []*models.Participant{{ID: "a"}, {ID: "b"}, {ID: "c"}},
		}, nil)

	_, err := s.svc.JoinSession(s.ctx, &JoinSessionInput{SessionID: s.testSessionID, ParticipantID: "dave"})
	s.Equal(ErrSessionFull, err)
}

func (s *GamenightServiceTestSuite) TestJoinSessionMissingSession() {
	s.mockSessionRepo.EXPECT().
		GetSession(s.ctx, gomock.Any()).
		Return(nil, sessionRepo.ErrSessionNotFound)

	_, err := s.svc.JoinSession(s.ctx, &JoinSessionInput{SessionID: s.testSessionID, ParticipantID: "alice"})
	s.Equal(ErrSessionNotFound, err)
}

func (s *GamenightServiceTestSuite) TestListParticipants() {
	s.expectGetSession(s.session())
	participants := []*models.Participant{{ID: "alice"}, {ID: s.testHostID}}
	slots := []*models.NamedSlot{{SlotID: "slot-1", ReservedDisplayName: "Sam"}}
	s.mockParticipantRepo.EXPECT().
		GetParticipantsInSession(s.ctx, gomock.Any()).
		Return(&participantRepo.GetParticipantsInSessionOutput{Participants: participants}, nil)
	s.mockGuestRepo.EXPECT().
		ListSlots(s.ctx, &guestRepo.ListSlotsInput{SessionID: s.testSessionID}).
		Return(&guestRepo.ListSlotsOutput{Slots: slots}, nil)

	output, err := s.svc.ListParticipants(s.ctx, &ListParticipantsInput{SessionID: s.testSessionID})
	s.Require().NoError(err)
	s.Equal(participants, output.Participants)
	s.Equal(slots, output.Slots)
}

func (s *GamenightServiceTestSuite) TestUpdateFilters() {
	filters := models.FilterConfig{
		PlayerCount:     4,
		TimeRange:       models.Range[int]{Min: 30, Max: 90},
		Mode:            models.GameModeCoop,
		ComplexityRange: models.Range[float64]{Max: 3},
	}

	s.expectGetSession(s.session())
	expected := s.session()
	expected.Filters = filters
	s.mockSessionRepo.EXPECT().
		SaveSession(s.ctx, &sessionRepo.SaveSessionInput{Session: expected}).
		Return(nil)

	output, err := s.svc.UpdateFilters(s.ctx, &UpdateFiltersInput{SessionID: s.testSessionID, Filters: filters})
	s.Require().NoError(err)
	s.Equal(filters, output.Session.Filters)
}

func (s *GamenightServiceTestSuite) TestUpdateFiltersDefaultsMode() {
	s.expectGetSession(s.session())
	s.mockSessionRepo.EXPECT().SaveSession(s.ctx, gomock.Any()).Return(nil)

	output, err := s.svc.UpdateFilters(s.ctx, &UpdateFiltersInput{
		SessionID: s.testSessionID,
		Filters:   models.FilterConfig{PlayerCount: 3},
	})
	s.Require().NoError(err)
	s.Equal(models.GameModeAny, output.Session.Filters.Mode)
}

func (s *GamenightServiceTestSuite) TestUpdateFiltersRejectsInvalid() {
	testCases := []struct {
		name    string
		filters models.FilterConfig
	}{
		{name: "zero players", filters: models.FilterConfig{PlayerCount: 0}},
		{name: "too many players", filters: models.FilterConfig{PlayerCount: 100}},
		{name: "unknown mode", filters: models.FilterConfig{PlayerCount: 2, Mode: "legacy"}},
		{name: "negative time", filters: models.FilterConfig{PlayerCount: 2, TimeRange: models.Range[int]{Min: -5}}},
		{name: "inverted time", filters: models.FilterConfig{PlayerCount: 2, TimeRange: models.Range[int]{Min: 90, Max: 30}}},
		{name: "inverted rating", filters: models.FilterConfig{PlayerCount: 2, RatingRange: models.Range[float64]{Min: 8, Max: 6}}},
		{name: "negative threshold", filters: models.FilterConfig{PlayerCount: 2, ExcludeLowRatedThreshold: models.Ptr(-1.0)}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.svc.UpdateFilters(s.ctx, &UpdateFiltersInput{SessionID: s.testSessionID, Filters: tc.filters})
			s.ErrorIs(err, ErrInvalidFilters)
		})
	}
}

func (s *GamenightServiceTestSuite) TestSetCandidates() {
	s.expectGetSession(s.session())
	s.mockCatalogRepo.EXPECT().
		SaveItems(s.ctx, &catalogRepo.SaveItemsInput{SessionID: s.testSessionID, Items: s.testItems}).
		Return(nil)

	output, err := s.svc.SetCandidates(s.ctx, &SetCandidatesInput{SessionID: s.testSessionID, Items: s.testItems})
	s.Require().NoError(err)
	s.Equal(3, output.Count)
}

func (s *GamenightServiceTestSuite) TestSetCandidatesRejectsDuplicates() {
	_, err := s.svc.SetCandidates(s.ctx, &SetCandidatesInput{
		SessionID: s.testSessionID,
		Items:     []*models.Item{{ID: "azul"}, {ID: "azul"}},
	})
	s.ErrorIs(err, ErrDuplicateItem)
}

func (s *GamenightServiceTestSuite) TestUpdatePreferenceCreatesRecord() {
	s.expectGetSession(s.session())
	s.expectParticipant("alice")
	s.expectItems()
	s.mockPreferenceRepo.EXPECT().
		GetPreference(s.ctx, &preferenceRepo.GetPreferenceInput{SessionID: s.testSessionID, ParticipantID: "alice", ItemID: "azul"}).
		Return(nil, preferenceRepo.ErrPreferenceNotFound)

	expected := &models.PreferenceRecord{
		ParticipantID: "alice",
		ItemID:        "azul",
		Rank:          models.Ptr(1),
		IsTopPick:     true,
		UpdatedAt:     s.testTime,
	}
	s.mockPreferenceRepo.EXPECT().
		SavePreference(s.ctx, &preferenceRepo.SavePreferenceInput{SessionID: s.testSessionID, Record: expected}).
		Return(nil)

	output, err := s.svc.UpdatePreference(s.ctx, &UpdatePreferenceInput{
		SessionID:     s.testSessionID,
		ParticipantID: "alice",
		ItemID:        "azul",
		Edit:          models.PreferenceEdit{Rank: models.Ptr(1), TopPick: models.Ptr(true)},
	})
	s.Require().NoError(err)
	s.Equal(expected, output.Record)
}

func (s *GamenightServiceTestSuite) TestUpdatePreferenceDislikeClearsRank() {
	s.expectGetSession(s.session())
	s.expectParticipant("alice")
	s.expectItems()
	s.mockPreferenceRepo.EXPECT().
		GetPreference(s.ctx, gomock.Any()).
		Return(&models.PreferenceRecord{
			ParticipantID: "alice",
			ItemID:        "azul",
			Rank:          models.Ptr(2),
			IsTopPick:     true,
			UpdatedAt:     s.testTime.Add(-time.Hour),
		}, nil)

	expected := &models.PreferenceRecord{
		ParticipantID: "alice",
		ItemID:        "azul",
		IsDisliked:    true,
		UpdatedAt:     s.testTime,
	}
	s.mockPreferenceRepo.EXPECT().
		SavePreference(s.ctx, &preferenceRepo.SavePreferenceInput{SessionID: s.testSessionID, Record: expected}).
		Return(nil)

	output, err := s.svc.UpdatePreference(s.ctx, &UpdatePreferenceInput{
		SessionID:     s.testSessionID,
		ParticipantID: "alice",
		ItemID:        "azul",
		Edit:          models.PreferenceEdit{Disliked: models.Ptr(true)},
	})
	s.Require().NoError(err)
	s.True(output.Record.IsDisliked)
	s.Nil(output.Record.Rank)
	s.False(output.Record.IsTopPick)
}

func (s *GamenightServiceTestSuite) TestUpdatePreferenceUnknownItem() {
	s.expectGetSession(s.session())
	s.expectParticipant("alice")
	s.expectItems()

	_, err := s.svc.UpdatePreference(s.ctx, &UpdatePreferenceInput{
		SessionID:     s.testSessionID,
		ParticipantID: "alice",
		ItemID:        "gloomhaven",
		Edit:          models.PreferenceEdit{Rank: models.Ptr(1)},
	})
	s.Equal(ErrItemNotFound, err)
}

func (s *GamenightServiceTestSuite) TestUpdatePreferenceUnknownParticipant() {
	s.expectGetSession(s.session())
	s.mockParticipantRepo.EXPECT().
		GetParticipant(s.ctx, gomock.Any()).
		Return(nil, participantRepo.ErrParticipantNotFound)

	_, err := s.svc.UpdatePreference(s.ctx, &UpdatePreferenceInput{
		SessionID:     s.testSessionID,
		ParticipantID: "mallory",
		ItemID:        "azul",
		Edit:          models.PreferenceEdit{Rank: models.Ptr(1)},
	})
	s.Equal(ErrParticipantNotFound, err)
}

func (s *GamenightServiceTestSuite) TestUpdatePreferenceRejectsZeroRank() {
	_, err := s.svc.UpdatePreference(s.ctx, &UpdatePreferenceInput{
		SessionID:     s.testSessionID,
		ParticipantID: "alice",
		ItemID:        "azul",
		Edit:          models.PreferenceEdit{Rank: models.Ptr(0)},
	})
	s.ErrorIs(err, ErrInvalidInput)
}

func (s *GamenightServiceTestSuite) TestRateItem() {
	s.expectGetSession(s.session())
	s.expectParticipant("alice")
	s.expectItems()
	s.mockPreferenceRepo.EXPECT().
		SaveRating(s.ctx, &preferenceRepo.SaveRatingInput{SessionID: s.testSessionID, ParticipantID: "alice", ItemID: "codenames", Rating: 6.5}).
		Return(nil)

	output, err := s.svc.RateItem(s.ctx, &RateItemInput{SessionID: s.testSessionID, ParticipantID: "alice", ItemID: "codenames", Rating: 6.5})
	s.Require().NoError(err)
	s.True(output.Success)
}

func (s *GamenightServiceTestSuite) TestRateItemOutOfRange() {
	_, err := s.svc.RateItem(s.ctx, &RateItemInput{SessionID: s.testSessionID, ParticipantID: "alice", ItemID: "azul", Rating: 11})
	s.ErrorIs(err, ErrInvalidInput)
}

func (s *GamenightServiceTestSuite) TestReserveSlot() {
	s.expectGetSession(s.session())
	s.mockUUID.EXPECT().NewUUID().Return("slot-1")

	expected := &models.NamedSlot{SlotID: "slot-1", SessionID: s.testSessionID, ReservedDisplayName: "Sam"}
	s.mockGuestRepo.EXPECT().
		ReserveSlot(s.ctx, &guestRepo.ReserveSlotInput{Slot: expected}).
		Return(nil)

	output, err := s.svc.ReserveSlot(s.ctx, &ReserveSlotInput{SessionID: s.testSessionID, DisplayName: "Sam"})
	s.Require().NoError(err)
	s.Equal(expected, output.Slot)
}

func (s *GamenightServiceTestSuite) TestClaimSlotMapsErrors() {
	testCases := []struct {
		name     string
		repoErr  error
		expected error
	}{
		{name: "missing slot", repoErr: guestRepo.ErrSlotNotFound, expected: ErrSlotNotFound},
		{name: "taken slot", repoErr: guestRepo.ErrSlotAlreadyClaimed, expected: ErrSlotAlreadyClaimed},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.expectGetSession(s.session())
			s.mockGuestRepo.EXPECT().
				ClaimSlot(s.ctx, &guestRepo.ClaimSlotInput{SessionID: s.testSessionID, SlotID: "slot-1", ParticipantID: "guest-1"}).
				Return(nil, tc.repoErr)

			_, err := s.svc.ClaimSlot(s.ctx, &ClaimSlotInput{SessionID: s.testSessionID, SlotID: "slot-1", ParticipantID: "guest-1"})
			s.Equal(tc.expected, err)
		})
	}
}

func (s *GamenightServiceTestSuite) TestSubmitGuestSnapshotRekeysRecords() {
	s.expectGetSession(s.session())

	expected := &models.GuestSnapshot{
		ParticipantID: "guest-1",
		DisplayName:   "Sam",
		Preferences: []*models.PreferenceRecord{
			{ParticipantID: "guest-1", ItemID: "azul", Rank: models.Ptr(1), UpdatedAt: s.testTime},
		},
		UpdatedAt: s.testTime,
	}
	s.mockGuestRepo.EXPECT().
		SaveSnapshot(s.ctx, &guestRepo.SaveSnapshotInput{SessionID: s.testSessionID, Snapshot: expected}).
		Return(&guestRepo.SaveSnapshotOutput{Applied: true}, nil)

	output, err := s.svc.SubmitGuestSnapshot(s.ctx, &SubmitGuestSnapshotInput{
		SessionID: s.testSessionID,
		Snapshot: &models.GuestSnapshot{
			ParticipantID: "guest-1",
			DisplayName:   "Sam",
			Preferences: []*models.PreferenceRecord{
				{ParticipantID: "someone-else", ItemID: "azul", Rank: models.Ptr(1)},
			},
		},
	})
	s.Require().NoError(err)
	s.True(output.Applied)
}

func (s *GamenightServiceTestSuite) TestPromoteAndClear() {
	s.expectGetSession(s.session())
	s.expectItems()

	promoted := s.session()
	promoted.PromotedItemID = "codenames"
	s.mockSessionRepo.EXPECT().
		SaveSession(s.ctx, &sessionRepo.SaveSessionInput{Session: promoted}).
		Return(nil)

	output, err := s.svc.PromoteItem(s.ctx, &PromoteItemInput{SessionID: s.testSessionID, ItemID: "codenames"})
	s.Require().NoError(err)
	s.Equal("codenames", output.Session.PromotedItemID)

	current := *promoted
	s.expectGetSession(&current)
	s.mockSessionRepo.EXPECT().
		SaveSession(s.ctx, &sessionRepo.SaveSessionInput{Session: s.session()}).
		Return(nil)

	cleared, err := s.svc.ClearPromotion(s.ctx, &ClearPromotionInput{SessionID: s.testSessionID})
	s.Require().NoError(err)
	s.Empty(cleared.Session.PromotedItemID)
}

func (s *GamenightServiceTestSuite) TestPromoteUnknownItem() {
	s.expectGetSession(s.session())
	s.expectItems()

	_, err := s.svc.PromoteItem(s.ctx, &PromoteItemInput{SessionID: s.testSessionID, ItemID: "gloomhaven"})
	s.Equal(ErrItemNotFound, err)
}

// expectState sets up a session with alice and bob where bob top-picks Pandemic and vetoes Codenames
func (s *GamenightServiceTestSuite) expectState(session *models.Session, guestState *guestsync.State) {
	s.expectGetSession(session)
	s.expectItems()
	s.mockParticipantRepo.EXPECT().
		GetParticipantsInSession(gomock.Any(), &participantRepo.GetParticipantsInSessionInput{SessionID: s.testSessionID}).
		Return(&participantRepo.GetParticipantsInSessionOutput{
			Participants: []*models.Participant{
				{ID: "alice", SessionID: s.testSessionID, DisplayName: "Alice"},
				{ID: "bob", SessionID: s.testSessionID, DisplayName: "Bob"},
			},
		}, nil)
	s.mockPreferenceRepo.EXPECT().
		GetPreferencesForSession(gomock.Any(), &preferenceRepo.GetPreferencesForSessionInput{SessionID: s.testSessionID}).
		Return(models.Preferences{
			"alice": {
				{ParticipantID: "alice", ItemID: "azul", Rank: models.Ptr(1)},
				{ParticipantID: "alice", ItemID: "pandemic", Rank: models.Ptr(2)},
			},
			"bob": {
				{ParticipantID: "bob", ItemID: "codenames", IsDisliked: true},
				{ParticipantID: "bob", ItemID: "pandemic", IsTopPick: true},
			},
		}, nil)
	s.mockPreferenceRepo.EXPECT().
		GetRatingsForSession(gomock.Any(), &preferenceRepo.GetRatingsForSessionInput{SessionID: s.testSessionID}).
		Return(models.Ratings{}, nil)
	s.expectGuestState(guestState)
}

// expectGuestState serves an applied guest state as is and fetches one for a session never synced
func (s *GamenightServiceTestSuite) expectGuestState(guestState *guestsync.State) {
	if guestState.Sequence > 0 {
		s.mockGuestSync.EXPECT().State(s.testSessionID).Return(guestState)
		return
	}

	s.mockGuestSync.EXPECT().State(s.testSessionID).Return(&guestsync.State{})
	s.mockGuestSync.EXPECT().
		Refresh(s.ctx, &guestsync.RefreshInput{SessionID: s.testSessionID}).
		Return(&guestsync.RefreshOutput{State: guestState, Applied: true}, nil)
}

func (s *GamenightServiceTestSuite) TestGetRecommendation() {
	s.expectState(s.session(), &guestsync.State{})

	output, err := s.svc.GetRecommendation(s.ctx, &GetRecommendationInput{SessionID: s.testSessionID})
	s.Require().NoError(err)

	// alice: azul 1, pandemic 0; bob: pandemic 0 + top pick bonus 2
	s.Require().NotNil(output.Result.TopPick)
	s.Equal("pandemic", output.Result.TopPick.Item.ID)
	s.Equal(2, output.Result.TopPick.Score)
	s.Require().Len(output.Result.Alternatives, 1)
	s.Equal("azul", output.Result.Alternatives[0].Item.ID)
	s.Equal(1, output.Result.Alternatives[0].Score)
	s.Require().Len(output.Result.Vetoed, 1)
	s.Equal("codenames", output.Result.Vetoed[0].Item.ID)
	s.Equal([]string{"bob"}, output.Result.Vetoed[0].VetoedBy)
	s.Equal(3, output.CandidateCount)
	s.False(output.Merged)
	s.Empty(output.GuestSyncError)
}

func (s *GamenightServiceTestSuite) TestGetRecommendationSurfacesGuestSyncError() {
	guestState := &guestsync.State{
		Guests: []*models.GuestSnapshot{{
			ParticipantID: "guest-1",
			DisplayName:   "alice ",
			Preferences: []*models.PreferenceRecord{
				{ParticipantID: "guest-1", ItemID: "azul", IsTopPick: true, UpdatedAt: s.testTime},
			},
			UpdatedAt: s.testTime,
		}},
		Slots:    []*models.NamedSlot{{SlotID: "slot-1", ReservedDisplayName: "Alice", ClaimedBy: "guest-1"}},
		Sequence: 4,
		Err:      "failed to list guest snapshots: timeout",
	}
	s.expectState(s.session(), guestState)

	output, err := s.svc.GetRecommendation(s.ctx, &GetRecommendationInput{SessionID: s.testSessionID})
	s.Require().NoError(err)
	s.True(output.Merged)
	s.Equal("failed to list guest snapshots: timeout", output.GuestSyncError)
	s.Equal(map[string]string{"guest-1": "alice"}, output.Aliases)
	s.Len(output.Participants, 2)
}

func (s *GamenightServiceTestSuite) TestGetRecommendationDoesNotWaitForFresherGuests() {
	// Refresh is not expected: the applied state is used as is
	s.expectState(s.session(), &guestsync.State{Sequence: 2, RefreshedAt: s.testTime})

	output, err := s.svc.GetRecommendation(s.ctx, &GetRecommendationInput{SessionID: s.testSessionID})
	s.Require().NoError(err)
	s.Equal("pandemic", output.Result.TopPick.Item.ID)
	s.False(output.Merged)
}

func (s *GamenightServiceTestSuite) TestGetRecommendationRefreshErrorForUnsyncedSession() {
	s.expectGetSession(s.session())
	s.expectItems()
	s.mockParticipantRepo.EXPECT().GetParticipantsInSession(gomock.Any(), gomock.Any()).
		Return(&participantRepo.GetParticipantsInSessionOutput{}, nil)
	s.mockPreferenceRepo.EXPECT().GetPreferencesForSession(gomock.Any(), gomock.Any()).
		Return(models.Preferences{}, nil)
	s.mockPreferenceRepo.EXPECT().GetRatingsForSession(gomock.Any(), gomock.Any()).
		Return(models.Ratings{}, nil)
	s.mockGuestSync.EXPECT().State(s.testSessionID).Return(&guestsync.State{})
	s.mockGuestSync.EXPECT().
		Refresh(s.ctx, gomock.Any()).
		Return(nil, guestsync.ErrEmptySessionID)

	_, err := s.svc.GetRecommendation(s.ctx, &GetRecommendationInput{SessionID: s.testSessionID})
	s.ErrorIs(err, guestsync.ErrEmptySessionID)
}

func (s *GamenightServiceTestSuite) TestGetRecommendationPromotion() {
	session := s.session()
	session.PromotedItemID = "azul"
	s.expectState(session, &guestsync.State{})

	output, err := s.svc.GetRecommendation(s.ctx, &GetRecommendationInput{SessionID: s.testSessionID})
	s.Require().NoError(err)
	s.Equal("azul", output.Result.TopPick.Item.ID)
	s.Equal("pandemic", output.Result.Alternatives[0].Item.ID)
}

func (s *GamenightServiceTestSuite) TestCommitRecommendation() {
	s.expectState(s.session(), &guestsync.State{})
	s.mockHistoryRepo.EXPECT().
		GetCommitsByFingerprint(s.ctx, gomock.Any()).
		Return(&historyRepo.GetCommitsOutput{Commits: []*models.CommittedRecommendation{{ID: "earlier"}}}, nil)
	s.mockUUID.EXPECT().NewUUID().Return("commit-1")

	var stored *models.CommittedRecommendation
	s.mockHistoryRepo.EXPECT().
		AddCommit(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *historyRepo.AddCommitInput) error {
			stored = input.Commit
			return nil
		})

	output, err := s.svc.CommitRecommendation(s.ctx, &CommitRecommendationInput{SessionID: s.testSessionID})
	s.Require().NoError(err)
	s.Require().NotNil(stored)
	s.Equal(stored, output.Commit)
	s.Equal("commit-1", stored.ID)
	s.Equal(models.CommittedItem{ItemID: "pandemic", Name: "Pandemic", Score: 2}, stored.TopPick)
	s.Equal([]models.CommittedItem{{ItemID: "azul", Name: "Azul", Score: 1}}, stored.Alternatives)
	s.Equal([]string{"alice", "bob"}, stored.ParticipantIDs)
	s.Equal([]string{"azul", "pandemic", "codenames"}, stored.CandidateIDs)
	s.Equal(s.testTime, stored.CommittedAt)
	s.NotEmpty(stored.Fingerprint)
	s.Len(output.PreviousCommits, 1)
}

func (s *GamenightServiceTestSuite) TestCommitRecommendationWithoutTopPick() {
	session := s.session()
	session.Filters.PlayerCount = 12
	s.expectState(session, &guestsync.State{})

	_, err := s.svc.CommitRecommendation(s.ctx, &CommitRecommendationInput{SessionID: s.testSessionID})
	s.Equal(ErrNoTopPick, err)
}

func (s *GamenightServiceTestSuite) TestGetHistory() {
	commits := []*models.CommittedRecommendation{{ID: "commit-2"}, {ID: "commit-1"}}
	s.mockHistoryRepo.EXPECT().
		GetCommitsForSession(s.ctx, &historyRepo.GetCommitsForSessionInput{SessionID: s.testSessionID, Limit: 5}).
		Return(&historyRepo.GetCommitsOutput{Commits: commits}, nil)

	output, err := s.svc.GetHistory(s.ctx, &GetHistoryInput{SessionID: s.testSessionID, Limit: 5})
	s.Require().NoError(err)
	s.Equal(commits, output.Commits)
}
