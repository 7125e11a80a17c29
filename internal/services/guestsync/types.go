package guestsync

import (
	"time"

	"github.com/KirkDiggler/gamenight/internal/models"
)

// State is the guest state of a session as last applied
type State struct {
	// Guests are the latest known guest snapshots
	Guests []*models.GuestSnapshot

	// Slots are the session's named slots
	Slots []*models.NamedSlot

	// Sequence is the sequence number of the last applied refresh, zero before the first
	Sequence uint64

	// Err describes the last refresh failure, empty after a successful refresh
	Err string

	// RefreshedAt is when the guest list was last fetched successfully
	RefreshedAt time.Time
}

// Stale reports whether the guest list is a last-good copy kept after a failure
func (s *State) Stale() bool {
	return s.Err != ""
}

// RefreshInput contains parameters for refreshing a session's guest state
type RefreshInput struct {
	SessionID string
}

// RefreshOutput contains the state after the refresh was applied
type RefreshOutput struct {
	State *State

	// Applied is false when a newer refresh had already been applied
	Applied bool
}
