package catalog

import (
	"context"
	"testing"

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
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetItemsPreservesOrder() {
	ctx := context.Background()
	items := []*models.Item{
		{ID: "pandemic", Name: "Pandemic", MinPlayers: models.Ptr(2), MaxPlayers: models.Ptr(4), Mechanics: []string{"Cooperative Game"}},
		{ID: "azul", Name: "Azul", BestWith: "2-4", ComplexityWeight: models.Ptr(1.8)},
		{ID: "codenames", Name: "Codenames", PlayTimeMinutes: models.Ptr(15)},
	}

	s.Require().NoError(s.repo.SaveItems(ctx, &SaveItemsInput{SessionID: "session-1", Items: items}))

	output, err := s.repo.GetItems(ctx, &GetItemsInput{SessionID: "session-1"})
	s.Require().NoError(err)
	s.Equal(items, output.Items)
}

func (s *RedisRepositoryTestSuite) TestSaveItemsReplacesPool() {
	ctx := context.Background()
	s.Require().NoError(s.repo.SaveItems(ctx, &SaveItemsInput{
		SessionID: "session-1",
		Items:     []*models.Item{{ID: "azul", Name: "Azul"}, {ID: "pandemic", Name: "Pandemic"}},
	}))
	s.Require().NoError(s.repo.SaveItems(ctx, &SaveItemsInput{
		SessionID: "session-1",
		Items:     []*models.Item{{ID: "codenames", Name: "Codenames"}},
	}))

	output, err := s.repo.GetItems(ctx, &GetItemsInput{SessionID: "session-1"})
	s.Require().NoError(err)
	s.Require().Len(output.Items, 1)
	s.Equal("codenames", output.Items[0].ID)

	s.Require().NoError(s.repo.SaveItems(ctx, &SaveItemsInput{SessionID: "session-1"}))
	output, err = s.repo.GetItems(ctx, &GetItemsInput{SessionID: "session-1"})
	s.Require().NoError(err)
	s.Empty(output.Items)
}

func (s *RedisRepositoryTestSuite) TestSaveItemsRejectsMissingID() {
	err := s.repo.SaveItems(context.Background(), &SaveItemsInput{
		SessionID: "session-1",
		Items:     []*models.Item{{Name: "Nameless"}},
	})
	s.Error(err)
}
