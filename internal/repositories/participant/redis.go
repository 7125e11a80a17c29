package participant

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/gamenight/internal/models"
)

const (
	// Key prefixes for Redis
	participantKeyPrefix         = "participant:"
	sessionParticipantsKeyPrefix = "session_participants:"
)

// ErrParticipantNotFound is returned when a participant is not found
var ErrParticipantNotFound = errors.New("participant not found")

// Config holds configuration for the Redis participant repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed participant repository
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

func participantKey(sessionID, participantID string) string {
	return fmt.Sprintf("%s%s:%s", participantKeyPrefix, sessionID, participantID)
}

// SaveParticipant persists a participant to Redis
func (r *redisRepository) SaveParticipant(ctx context.Context, input *SaveParticipantInput) error {
	if input == nil || input.Participant == nil {
		return errors.New("input and participant cannot be nil")
	}

	participant := input.Participant

	if participant.ID == "" || participant.SessionID == "" {
		return errors.New("participant ID and session ID cannot be empty")
	}

	participantJSON, err := json.Marshal(participant)
	if err != nil {
		return fmt.Errorf("failed to marshal participant: %w", err)
	}

	pipe := r.client.Pipeline()

	pipe.Set(ctx, participantKey(participant.SessionID, participant.ID), participantJSON, 0)

	sessionParticipantsKey := fmt.Sprintf("%s%s", sessionParticipantsKeyPrefix, participant.SessionID)
	pipe.SAdd(ctx, sessionParticipantsKey, participant.ID)

	if _, err = pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save participant: %w", err)
	}

	return nil
}

// GetParticipant retrieves a participant of a session from Redis
func (r *redisRepository) GetParticipant(ctx context.Context, input *GetParticipantInput) (*models.Participant, error) {
	if input == nil || input.SessionID == "" || input.ParticipantID == "" {
		return nil, errors.New("input, session ID and participant ID cannot be empty")
	}

	participantJSON, err := r.client.Get(ctx, participantKey(input.SessionID, input.ParticipantID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrParticipantNotFound
		}
		return nil, fmt.Errorf("failed to get participant: %w", err)
	}

	var participant models.Participant
	if err := json.Unmarshal([]byte(participantJSON), &participant); err != nil {
		return nil, fmt.Errorf("failed to unmarshal participant: %w", err)
	}

	return &participant, nil
}

// GetParticipantsInSession retrieves all participants of a session from Redis
func (r *redisRepository) GetParticipantsInSession(ctx context.Context, input *GetParticipantsInSessionInput) (*GetParticipantsInSessionOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	sessionParticipantsKey := fmt.Sprintf("%s%s", sessionParticipantsKeyPrefix, input.SessionID)
	participantIDs, err := r.client.SMembers(ctx, sessionParticipantsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get participant IDs for session: %w", err)
	}

	if len(participantIDs) == 0 {
		return &GetParticipantsInSessionOutput{
			Participants: []*models.Participant{},
		}, nil
	}

	sort.Strings(participantIDs)

	// Fetch all participant records in one round trip
	pipe := r.client.Pipeline()
	commands := make([]*redis.StringCmd, 0, len(participantIDs))
	for _, participantID := range participantIDs {
		commands = append(commands, pipe.Get(ctx, participantKey(input.SessionID, participantID)))
	}

	// redis.Nil from a removed participant is handled per command below
	if _, err = pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get participants: %w", err)
	}

	participants := make([]*models.Participant, 0, len(participantIDs))
	for i, cmd := range commands {
		participantJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get participant %s: %w", participantIDs[i], err)
		}

		var participant models.Participant
		if err := json.Unmarshal([]byte(participantJSON), &participant); err != nil {
			return nil, fmt.Errorf("failed to unmarshal participant %s: %w", participantIDs[i], err)
		}

		participants = append(participants, &participant)
	}

	return &GetParticipantsInSessionOutput{
		Participants: participants,
	}, nil
}

// RemoveParticipant removes a participant from a session in Redis
func (r *redisRepository) RemoveParticipant(ctx context.Context, input *RemoveParticipantInput) error {
	if input == nil || input.SessionID == "" || input.ParticipantID == "" {
		return errors.New("input, session ID and participant ID cannot be empty")
	}

	pipe := r.client.Pipeline()

	pipe.Del(ctx, participantKey(input.SessionID, input.ParticipantID))

	sessionParticipantsKey := fmt.Sprintf("%s%s", sessionParticipantsKeyPrefix, input.SessionID)
	pipe.SRem(ctx, sessionParticipantsKey, input.ParticipantID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to remove participant: %w", err)
	}

	return nil
}
