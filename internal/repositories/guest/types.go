package guest

import "github.com/KirkDiggler/gamenight/internal/models"

// SaveSnapshotInput contains parameters for saving a guest snapshot
type SaveSnapshotInput struct {
	SessionID string
	Snapshot  *models.GuestSnapshot
}

// SaveSnapshotOutput reports whether the snapshot replaced the stored one
type SaveSnapshotOutput struct {
	Applied bool
}

// ListSnapshotsInput contains parameters for listing guest snapshots
type ListSnapshotsInput struct {
	SessionID string
}

// ListSnapshotsOutput contains guest snapshots sorted by participant ID
type ListSnapshotsOutput struct {
	Snapshots []*models.GuestSnapshot
}

// ReserveSlotInput contains parameters for reserving a named slot
type ReserveSlotInput struct {
	Slot *models.NamedSlot
}

// ClaimSlotInput contains parameters for claiming a named slot
type ClaimSlotInput struct {
	SessionID     string
	SlotID        string
	ParticipantID string
}

// ListSlotsInput contains parameters for listing named slots
type ListSlotsInput struct {
	SessionID string
}

// ListSlotsOutput contains named slots sorted by slot ID
type ListSlotsOutput struct {
	Slots []*models.NamedSlot
}
