package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/gamenight/internal/models"
)

const (
	// Key prefix for Redis
	catalogKeyPrefix = "catalog:"
)

// Config holds configuration for the Redis catalog repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using a Redis list per session
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed catalog repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveItems replaces the candidate pool of a session.
// Readers never observe a partially written pool.
func (r *redisRepository) SaveItems(ctx context.Context, input *SaveItemsInput) error {
	if input == nil || input.SessionID == "" {
		return errors.New("input and session ID cannot be empty")
	}

	values := make([]interface{}, 0, len(input.Items))
	for _, item := range input.Items {
		if item == nil || item.ID == "" {
			return errors.New("items must have an ID")
		}

		itemJSON, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("failed to marshal item %s: %w", item.ID, err)
		}
		values = append(values, itemJSON)
	}

	key := fmt.Sprintf("%s%s", catalogKeyPrefix, input.SessionID)

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		if len(values) > 0 {
			pipe.RPush(ctx, key, values...)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save items: %w", err)
	}

	return nil
}

// GetItems retrieves the candidate pool of a session in stored order
func (r *redisRepository) GetItems(ctx context.Context, input *GetItemsInput) (*GetItemsOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	key := fmt.Sprintf("%s%s", catalogKeyPrefix, input.SessionID)
	values, err := r.client.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get items: %w", err)
	}

	items := make([]*models.Item, 0, len(values))
	for i, itemJSON := range values {
		var item models.Item
		if err := json.Unmarshal([]byte(itemJSON), &item); err != nil {
			return nil, fmt.Errorf("failed to unmarshal item at position %d: %w", i, err)
		}
		items = append(items, &item)
	}

	return &GetItemsOutput{
		Items: items,
	}, nil
}
