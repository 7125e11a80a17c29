package models

import (
	"time"
)

// NamedSlot is a seat the host reserved for a specific person who may join remotely
type NamedSlot struct {
	// SlotID is the unique identifier for the slot
	SlotID string

	// SessionID is the session the slot belongs to
	SessionID string

	// ReservedDisplayName is the name the host expects the guest to use
	ReservedDisplayName string

	// ClaimedBy is the participant ID of the remote guest who joined the slot
	ClaimedBy string
}

// IsActive reports whether a guest has joined the slot
func (s *NamedSlot) IsActive() bool {
	return s.ClaimedBy != ""
}

// GuestSnapshot is the latest known preference state of a remote guest.
// A newer snapshot replaces an older one for the same participant.
type GuestSnapshot struct {
	// ParticipantID is the remote guest's participant ID
	ParticipantID string

	// DisplayName is the name the guest joined with
	DisplayName string

	// Ready is shown in the UI only; it does not affect scoring
	Ready bool

	// Preferences are the guest's preference records
	Preferences []*PreferenceRecord

	// UpdatedAt is when the snapshot was taken
	UpdatedAt time.Time
}
