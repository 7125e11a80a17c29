package preference

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
	preferencesKeyPrefix = "preferences:"
	ratingsKeyPrefix     = "ratings:"
)

// ErrPreferenceNotFound is returned when a participant has no record for an item
var ErrPreferenceNotFound = errors.New("preference not found")

// Config holds configuration for the Redis preference repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis.
// Each session keeps one hash of preference records and one hash of ratings,
// with a field per participant and item.
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed preference repository
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

func field(participantID, itemID string) string {
	return fmt.Sprintf("%s|%s", participantID, itemID)
}

// GetPreference retrieves one participant's record for one item
func (r *redisRepository) GetPreference(ctx context.Context, input *GetPreferenceInput) (*models.PreferenceRecord, error) {
	if input == nil || input.SessionID == "" || input.ParticipantID == "" || input.ItemID == "" {
		return nil, errors.New("input, session ID, participant ID and item ID cannot be empty")
	}

	key := fmt.Sprintf("%s%s", preferencesKeyPrefix, input.SessionID)
	recordJSON, err := r.client.HGet(ctx, key, field(input.ParticipantID, input.ItemID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrPreferenceNotFound
		}
		return nil, fmt.Errorf("failed to get preference: %w", err)
	}

	var record models.PreferenceRecord
	if err := json.Unmarshal([]byte(recordJSON), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal preference: %w", err)
	}

	return &record, nil
}

// SavePreference persists a preference record to Redis.
// An empty record is removed instead of stored.
func (r *redisRepository) SavePreference(ctx context.Context, input *SavePreferenceInput) error {
	if input == nil || input.Record == nil {
		return errors.New("input and record cannot be nil")
	}

	record := input.Record
	if input.SessionID == "" || record.ParticipantID == "" || record.ItemID == "" {
		return errors.New("session ID, participant ID and item ID cannot be empty")
	}

	key := fmt.Sprintf("%s%s", preferencesKeyPrefix, input.SessionID)

	if record.IsEmpty() {
		if err := r.client.HDel(ctx, key, field(record.ParticipantID, record.ItemID)).Err(); err != nil {
			return fmt.Errorf("failed to delete preference: %w", err)
		}
		return nil
	}

	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal preference: %w", err)
	}

	if err := r.client.HSet(ctx, key, field(record.ParticipantID, record.ItemID), recordJSON).Err(); err != nil {
		return fmt.Errorf("failed to save preference: %w", err)
	}

	return nil
}

// GetPreferencesForSession retrieves every local preference record of a session.
// Each participant's records are sorted by item ID.
func (r *redisRepository) GetPreferencesForSession(ctx context.Context, input *GetPreferencesForSessionInput) (models.Preferences, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	key := fmt.Sprintf("%s%s", preferencesKeyPrefix, input.SessionID)
	fields, err := r.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get preferences for session: %w", err)
	}

	preferences := make(models.Preferences)
	for name, recordJSON := range fields {
		var record models.PreferenceRecord
		if err := json.Unmarshal([]byte(recordJSON), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal preference %s: %w", name, err)
		}
		preferences[record.ParticipantID] = append(preferences[record.ParticipantID], &record)
	}

	for _, records := range preferences {
		sort.Slice(records, func(i, j int) bool {
			return records[i].ItemID < records[j].ItemID
		})
	}

	return preferences, nil
}

// SaveRating persists a numeric rating to Redis
func (r *redisRepository) SaveRating(ctx context.Context, input *SaveRatingInput) error {
	if input == nil || input.SessionID == "" || input.ParticipantID == "" || input.ItemID == "" {
		return errors.New("input, session ID, participant ID and item ID cannot be empty")
	}

	ratingJSON, err := json.Marshal(&rating{
		ParticipantID: input.ParticipantID,
		ItemID:        input.ItemID,
		Value:         input.Rating,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal rating: %w", err)
	}

	key := fmt.Sprintf("%s%s", ratingsKeyPrefix, input.SessionID)
	if err := r.client.HSet(ctx, key, field(input.ParticipantID, input.ItemID), ratingJSON).Err(); err != nil {
		return fmt.Errorf("failed to save rating: %w", err)
	}

	return nil
}

// GetRatingsForSession retrieves every numeric rating of a session
func (r *redisRepository) GetRatingsForSession(ctx context.Context, input *GetRatingsForSessionInput) (models.Ratings, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	key := fmt.Sprintf("%s%s", ratingsKeyPrefix, input.SessionID)
	fields, err := r.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get ratings for session: %w", err)
	}

	ratings := make(models.Ratings)
	for name, ratingJSON := range fields {
		var stored rating
		if err := json.Unmarshal([]byte(ratingJSON), &stored); err != nil {
			return nil, fmt.Errorf("failed to unmarshal rating %s: %w", name, err)
		}
		if ratings[stored.ParticipantID] == nil {
			ratings[stored.ParticipantID] = make(map[string]float64)
		}
		ratings[stored.ParticipantID][stored.ItemID] = stored.Value
	}

	return ratings, nil
}
