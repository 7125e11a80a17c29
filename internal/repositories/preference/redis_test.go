package preference

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/gamenight/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
	now    time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo
	s.now = time.Date(2026, 3, 14, 19, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetPreference() {
	ctx := context.Background()
	record := &models.PreferenceRecord{
		ParticipantID: "alice",
		ItemID:        "azul",
		Rank:          models.Ptr(1),
		IsTopPick:     true,
		UpdatedAt:     s.now,
	}

	s.Require().NoError(s.repo.SavePreference(ctx, &SavePreferenceInput{SessionID: "session-1", Record: record}))

	retrieved, err := s.repo.GetPreference(ctx, &GetPreferenceInput{SessionID: "session-1", ParticipantID: "alice", ItemID: "azul"})
	s.Require().NoError(err)
	s.Equal("azul", retrieved.ItemID)
	s.Require().NotNil(retrieved.Rank)
	s.Equal(1, *retrieved.Rank)
	s.True(retrieved.IsTopPick)
	s.True(s.now.Equal(retrieved.UpdatedAt))

	_, err = s.repo.GetPreference(ctx, &GetPreferenceInput{SessionID: "session-1", ParticipantID: "bob", ItemID: "azul"})
	s.Equal(ErrPreferenceNotFound, err)
}

func (s *RedisRepositoryTestSuite) TestSavePreferenceReplacesRecord() {
	ctx := context.Background()
	s.Require().NoError(s.repo.SavePreference(ctx, &SavePreferenceInput{
		SessionID: "session-1",
		Record:    &models.PreferenceRecord{ParticipantID: "alice", ItemID: "azul", Rank: models.Ptr(2), UpdatedAt: s.now},
	}))
	s.Require().NoError(s.repo.SavePreference(ctx, &SavePreferenceInput{
		SessionID: "session-1",
		Record:    &models.PreferenceRecord{ParticipantID: "alice", ItemID: "azul", IsDisliked: true, UpdatedAt: s.now.Add(time.Minute)},
	}))

	preferences, err := s.repo.GetPreferencesForSession(ctx, &GetPreferencesForSessionInput{SessionID: "session-1"})
	s.Require().NoError(err)
	s.Require().Len(preferences["alice"], 1)
	s.True(preferences["alice"][0].IsDisliked)
	s.Nil(preferences["alice"][0].Rank)
}

func (s *RedisRepositoryTestSuite) TestSaveEmptyPreferenceRemovesRecord() {
	ctx := context.Background()
	s.Require().NoError(s.repo.SavePreference(ctx, &SavePreferenceInput{
		SessionID: "session-1",
		Record:    &models.PreferenceRecord{ParticipantID: "alice", ItemID: "azul", Rank: models.Ptr(2)},
	}))
	s.Require().NoError(s.repo.SavePreference(ctx, &SavePreferenceInput{
		SessionID: "session-1",
		Record:    &models.PreferenceRecord{ParticipantID: "alice", ItemID: "azul"},
	}))

	_, err := s.repo.GetPreference(ctx, &GetPreferenceInput{SessionID: "session-1", ParticipantID: "alice", ItemID: "azul"})
	s.Equal(ErrPreferenceNotFound, err)
}

func (s *RedisRepositoryTestSuite) TestGetPreferencesForSessionGroupsAndSorts() {
	ctx := context.Background()
	records := []*models.PreferenceRecord{
		{ParticipantID: "alice", ItemID: "pandemic", Rank: models.Ptr(2)},
		{ParticipantID: "alice", ItemID: "azul", Rank: models.Ptr(1)},
		{ParticipantID: "bob", ItemID: "codenames", IsTopPick: true},
	}
	for _, record := range records {
		s.Require().NoError(s.repo.SavePreference(ctx, &SavePreferenceInput{SessionID: "session-1", Record: record}))
	}
	s.Require().NoError(s.repo.SavePreference(ctx, &SavePreferenceInput{
		SessionID: "session-2",
		Record:    &models.PreferenceRecord{ParticipantID: "carol", ItemID: "azul", IsDisliked: true},
	}))

	preferences, err := s.repo.GetPreferencesForSession(ctx, &GetPreferencesForSessionInput{SessionID: "session-1"})
	s.Require().NoError(err)
	s.Len(preferences, 2)
	s.Require().Len(preferences["alice"], 2)
	s.Equal("azul", preferences["alice"][0].ItemID)
	s.Equal("pandemic", preferences["alice"][1].ItemID)
	s.Require().Len(preferences["bob"], 1)
	s.NotContains(preferences, "carol")
}

func (s *RedisRepositoryTestSuite) TestRatings() {
	ctx := context.Background()
	s.Require().NoError(s.repo.SaveRating(ctx, &SaveRatingInput{SessionID: "session-1", ParticipantID: "alice", ItemID: "azul", Rating: 7.5}))
	s.Require().NoError(s.repo.SaveRating(ctx, &SaveRatingInput{SessionID: "session-1", ParticipantID: "alice", ItemID: "mystery", Rating: 2}))
	s.Require().NoError(s.repo.SaveRating(ctx, &SaveRatingInput{SessionID: "session-1", ParticipantID: "alice", ItemID: "azul", Rating: 8}))

	ratings, err := s.repo.GetRatingsForSession(ctx, &GetRatingsForSessionInput{SessionID: "session-1"})
	s.Require().NoError(err)
	s.Equal(models.Ratings{
		"alice": {"azul": 8, "mystery": 2},
	}, ratings)

	empty, err := s.repo.GetRatingsForSession(ctx, &GetRatingsForSessionInput{SessionID: "session-2"})
	s.Require().NoError(err)
	s.Empty(empty)
}
