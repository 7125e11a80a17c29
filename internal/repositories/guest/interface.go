package guest

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/gamenight/internal/repositories/guest Repository

import (
	"context"

	"github.com/KirkDiggler/gamenight/internal/models"
)

// Repository defines the interface for remote guest state: preference snapshots and named slots
type Repository interface {
	// SaveSnapshot stores a guest's snapshot unless a newer one is already stored
	SaveSnapshot(ctx context.Context, input *SaveSnapshotInput) (*SaveSnapshotOutput, error)

	// ListSnapshots retrieves the latest snapshot of every guest in a session
	ListSnapshots(ctx context.Context, input *ListSnapshotsInput) (*ListSnapshotsOutput, error)

	// ReserveSlot stores a named slot
	ReserveSlot(ctx context.Context, input *ReserveSlotInput) error

	// ClaimSlot marks a slot as joined by a remote guest
	ClaimSlot(ctx context.Context, input *ClaimSlotInput) (*models.NamedSlot, error)

	// ListSlots retrieves every named slot of a session
	ListSlots(ctx context.Context, input *ListSlotsInput) (*ListSlotsOutput, error)
}
