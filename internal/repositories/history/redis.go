package history

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
	commitKeyPrefix             = "commit:"
	sessionCommitsKeyPrefix     = "session_commits:"
	fingerprintCommitsKeyPrefix = "fingerprint_commits:"
)

// Config holds configuration for the Redis history repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis.
// Commits are indexed by session and by fingerprint in sorted sets scored by commit time.
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed history repository
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

// AddCommit stores a committed recommendation
func (r *redisRepository) AddCommit(ctx context.Context, input *AddCommitInput) error {
	if input == nil || input.Commit == nil {
		return errors.New("input and commit cannot be nil")
	}

	commit := input.Commit
	if commit.ID == "" || commit.SessionID == "" {
		return errors.New("commit ID and session ID cannot be empty")
	}

	commitJSON, err := json.Marshal(commit)
	if err != nil {
		return fmt.Errorf("failed to marshal commit: %w", err)
	}

	member := redis.Z{
		Score:  float64(commit.CommittedAt.UnixMilli()),
		Member: commit.ID,
	}

	pipe := r.client.TxPipeline()

	pipe.Set(ctx, fmt.Sprintf("%s%s", commitKeyPrefix, commit.ID), commitJSON, 0)
	pipe.ZAdd(ctx, fmt.Sprintf("%s%s", sessionCommitsKeyPrefix, commit.SessionID), member)
	if commit.Fingerprint != "" {
		pipe.ZAdd(ctx, fmt.Sprintf("%s%s", fingerprintCommitsKeyPrefix, commit.Fingerprint), member)
	}

	if _, err = pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to add commit: %w", err)
	}

	return nil
}

// GetCommitsForSession retrieves a session's commits, newest first
func (r *redisRepository) GetCommitsForSession(ctx context.Context, input *GetCommitsForSessionInput) (*GetCommitsOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	return r.getCommits(ctx, fmt.Sprintf("%s%s", sessionCommitsKeyPrefix, input.SessionID), input.Limit)
}

// GetCommitsByFingerprint retrieves commits sharing a fingerprint, newest first
func (r *redisRepository) GetCommitsByFingerprint(ctx context.Context, input *GetCommitsByFingerprintInput) (*GetCommitsOutput, error) {
	if input == nil || input.Fingerprint == "" {
		return nil, errors.New("input and fingerprint cannot be empty")
	}

	return r.getCommits(ctx, fmt.Sprintf("%s%s", fingerprintCommitsKeyPrefix, input.Fingerprint), input.Limit)
}

func (r *redisRepository) getCommits(ctx context.Context, indexKey string, limit int) (*GetCommitsOutput, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit - 1)
	}

	commitIDs, err := r.client.ZRevRange(ctx, indexKey, 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get commit IDs: %w", err)
	}

	if len(commitIDs) == 0 {
		return &GetCommitsOutput{
			Commits: []*models.CommittedRecommendation{},
		}, nil
	}

	pipe := r.client.Pipeline()
	commands := make([]*redis.StringCmd, 0, len(commitIDs))
	for _, commitID := range commitIDs {
		commands = append(commands, pipe.Get(ctx, fmt.Sprintf("%s%s", commitKeyPrefix, commitID)))
	}

	if _, err = pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get commits: %w", err)
	}

	commits := make([]*models.CommittedRecommendation, 0, len(commitIDs))
	for i, cmd := range commands {
		commitJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get commit %s: %w", commitIDs[i], err)
		}

		var commit models.CommittedRecommendation
		if err := json.Unmarshal([]byte(commitJSON), &commit); err != nil {
			return nil, fmt.Errorf("failed to unmarshal commit %s: %w", commitIDs[i], err)
		}
		commits = append(commits, &commit)
	}

	return &GetCommitsOutput{
		Commits: commits,
	}, nil
}
