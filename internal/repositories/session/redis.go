package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/gamenight/internal/models"
)

const (
	// Key prefixes for Redis
	sessionKeyPrefix = "session:"
	channelKeyPrefix = "channel:"
)

// ErrSessionNotFound is returned when a session is not found
var ErrSessionNotFound = errors.New("session not found")

// Config holds configuration for the Redis session repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed session repository
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

// SaveSession persists a session to Redis
func (r *redisRepository) SaveSession(ctx context.Context, input *SaveSessionInput) error {
	if input == nil || input.Session == nil {
		return errors.New("input and session cannot be nil")
	}

	if input.Session.ID == "" {
		return errors.New("session ID cannot be empty")
	}

	sessionJSON, err := json.Marshal(input.Session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	pipe := r.client.Pipeline()

	sessionKey := fmt.Sprintf("%s%s", sessionKeyPrefix, input.Session.ID)
	pipe.Set(ctx, sessionKey, sessionJSON, 0)

	// One session per channel; the newest save claims the channel
	if input.Session.ChannelID != "" {
		channelKey := fmt.Sprintf("%s%s", channelKeyPrefix, input.Session.ChannelID)
		pipe.Set(ctx, channelKey, input.Session.ID, 0)
	}

	if _, err = pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

// GetSession retrieves a session by ID from Redis
func (r *redisRepository) GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	sessionKey := fmt.Sprintf("%s%s", sessionKeyPrefix, input.SessionID)
	sessionJSON, err := r.client.Get(ctx, sessionKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session models.Session
	if err := json.Unmarshal([]byte(sessionJSON), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &session, nil
}

// GetSessionByChannel retrieves the session running in a channel from Redis
func (r *redisRepository) GetSessionByChannel(ctx context.Context, input *GetSessionByChannelInput) (*models.Session, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}

	channelKey := fmt.Sprintf("%s%s", channelKeyPrefix, input.ChannelID)
	sessionID, err := r.client.Get(ctx, channelKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session ID for channel: %w", err)
	}

	return r.GetSession(ctx, &GetSessionInput{
		SessionID: sessionID,
	})
}

// DeleteSession removes a session and its channel mapping from Redis
func (r *redisRepository) DeleteSession(ctx context.Context, input *DeleteSessionInput) error {
	if input == nil || input.SessionID == "" {
		return errors.New("input and session ID cannot be empty")
	}

	session, err := r.GetSession(ctx, &GetSessionInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()

	sessionKey := fmt.Sprintf("%s%s", sessionKeyPrefix, input.SessionID)
	pipe.Del(ctx, sessionKey)

	// Only drop the channel mapping if it still points at this session
	if session.ChannelID != "" {
		channelKey := fmt.Sprintf("%s%s", channelKeyPrefix, session.ChannelID)
		current, err := r.client.Get(ctx, channelKey).Result()
		if err != nil && err != redis.Nil {
			return fmt.Errorf("failed to get session ID for channel: %w", err)
		}
		if current == input.SessionID {
			pipe.Del(ctx, channelKey)
		}
	}

	if _, err = pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}
