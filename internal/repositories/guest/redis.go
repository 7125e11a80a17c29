package guest

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
	snapshotsKeyPrefix = "guest_snapshots:"
	slotsKeyPrefix     = "guest_slots:"

	// maxTxRetries bounds optimistic transaction retries under contention
	maxTxRetries = 5
)

var (
	// ErrSlotNotFound is returned when a named slot does not exist
	ErrSlotNotFound = errors.New("slot not found")

	// ErrSlotAlreadyClaimed is returned when a different guest already joined the slot
	ErrSlotAlreadyClaimed = errors.New("slot already claimed")

	// ErrTooMuchContention is returned when an optimistic transaction keeps failing
	ErrTooMuchContention = errors.New("too much contention")
)

// Config holds configuration for the Redis guest repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis hashes per session
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed guest repository
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

// watch runs fn in an optimistic transaction on key, retrying when the key changes underneath it
func (r *redisRepository) watch(ctx context.Context, key string, fn func(tx *redis.Tx) error) error {
	for i := 0; i < maxTxRetries; i++ {
		err := r.client.Watch(ctx, fn, key)
		if err == nil {
			return nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return err
	}

	return ErrTooMuchContention
}

// SaveSnapshot stores a guest's snapshot unless the stored one is strictly newer
func (r *redisRepository) SaveSnapshot(ctx context.Context, input *SaveSnapshotInput) (*SaveSnapshotOutput, error) {
	if input == nil || input.Snapshot == nil {
		return nil, errors.New("input and snapshot cannot be nil")
	}

	snapshot := input.Snapshot
	if input.SessionID == "" || snapshot.ParticipantID == "" {
		return nil, errors.New("session ID and participant ID cannot be empty")
	}

	snapshotJSON, err := json.Marshal(snapshot)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	key := fmt.Sprintf("%s%s", snapshotsKeyPrefix, input.SessionID)
	applied := false

	err = r.watch(ctx, key, func(tx *redis.Tx) error {
		applied = false

		storedJSON, err := tx.HGet(ctx, key, snapshot.ParticipantID).Result()
		if err != nil && err != redis.Nil {
			return err
		}

		if err == nil {
			var stored models.GuestSnapshot
			if err := json.Unmarshal([]byte(storedJSON), &stored); err != nil {
				return fmt.Errorf("failed to unmarshal stored snapshot: %w", err)
			}
			if stored.UpdatedAt.After(snapshot.UpdatedAt) {
				return nil
			}
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, key, snapshot.ParticipantID, snapshotJSON)
			return nil
		})
		if err == nil {
			applied = true
		}
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save snapshot: %w", err)
	}

	return &SaveSnapshotOutput{
		Applied: applied,
	}, nil
}

// ListSnapshots retrieves the latest snapshot of every guest in a session
func (r *redisRepository) ListSnapshots(ctx context.Context, input *ListSnapshotsInput) (*ListSnapshotsOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	key := fmt.Sprintf("%s%s", snapshotsKeyPrefix, input.SessionID)
	fields, err := r.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}

	snapshots := make([]*models.GuestSnapshot, 0, len(fields))
	for participantID, snapshotJSON := range fields {
		var snapshot models.GuestSnapshot
		if err := json.Unmarshal([]byte(snapshotJSON), &snapshot); err != nil {
			return nil, fmt.Errorf("failed to unmarshal snapshot for %s: %w", participantID, err)
		}
		snapshots = append(snapshots, &snapshot)
	}

	sort.Slice(snapshots, func(i, j int) bool {
		return snapshots[i].ParticipantID < snapshots[j].ParticipantID
	})

	return &ListSnapshotsOutput{
		Snapshots: snapshots,
	}, nil
}

// ReserveSlot stores a named slot
func (r *redisRepository) ReserveSlot(ctx context.Context, input *ReserveSlotInput) error {
	if input == nil || input.Slot == nil {
		return errors.New("input and slot cannot be nil")
	}

	slot := input.Slot
	if slot.SessionID == "" || slot.SlotID == "" {
		return errors.New("session ID and slot ID cannot be empty")
	}

	slotJSON, err := json.Marshal(slot)
	if err != nil {
		return fmt.Errorf("failed to marshal slot: %w", err)
	}

	key := fmt.Sprintf("%s%s", slotsKeyPrefix, slot.SessionID)
	if err := r.client.HSet(ctx, key, slot.SlotID, slotJSON).Err(); err != nil {
		return fmt.Errorf("failed to reserve slot: %w", err)
	}

	return nil
}

// ClaimSlot marks a slot as joined by a remote guest.
// Claiming a slot the same guest already holds is a no-op.
func (r *redisRepository) ClaimSlot(ctx context.Context, input *ClaimSlotInput) (*models.NamedSlot, error) {
	if input == nil || input.SessionID == "" || input.SlotID == "" || input.ParticipantID == "" {
		return nil, errors.New("input, session ID, slot ID and participant ID cannot be empty")
	}

	key := fmt.Sprintf("%s%s", slotsKeyPrefix, input.SessionID)
	var claimed *models.NamedSlot

	err := r.watch(ctx, key, func(tx *redis.Tx) error {
		slotJSON, err := tx.HGet(ctx, key, input.SlotID).Result()
		if err != nil {
			if err == redis.Nil {
				return ErrSlotNotFound
			}
			return err
		}

		var slot models.NamedSlot
		if err := json.Unmarshal([]byte(slotJSON), &slot); err != nil {
			return fmt.Errorf("failed to unmarshal slot: %w", err)
		}

		if slot.IsActive() {
			if slot.ClaimedBy != input.ParticipantID {
				return ErrSlotAlreadyClaimed
			}
			claimed = &slot
			return nil
		}

		slot.ClaimedBy = input.ParticipantID
		updatedJSON, err := json.Marshal(&slot)
		if err != nil {
			return fmt.Errorf("failed to marshal slot: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, key, input.SlotID, updatedJSON)
			return nil
		})
		if err == nil {
			claimed = &slot
		}
		return err
	})
	if err != nil {
		if errors.Is(err, ErrSlotNotFound) || errors.Is(err, ErrSlotAlreadyClaimed) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to claim slot: %w", err)
	}

	return claimed, nil
}

// ListSlots retrieves every named slot of a session
func (r *redisRepository) ListSlots(ctx context.Context, input *ListSlotsInput) (*ListSlotsOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	key := fmt.Sprintf("%s%s", slotsKeyPrefix, input.SessionID)
	fields, err := r.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list slots: %w", err)
	}

	slots := make([]*models.NamedSlot, 0, len(fields))
	for slotID, slotJSON := range fields {
		var slot models.NamedSlot
		if err := json.Unmarshal([]byte(slotJSON), &slot); err != nil {
			return nil, fmt.Errorf("failed to unmarshal slot %s: %w", slotID, err)
		}
		slots = append(slots, &slot)
	}

	sort.Slice(slots, func(i, j int) bool {
		return slots[i].SlotID < slots[j].SlotID
	})

	return &ListSlotsOutput{
		Slots: slots,
	}, nil
}
