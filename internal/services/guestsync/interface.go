package guestsync

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/gamenight/internal/services/guestsync Service

import (
	"context"

	"github.com/KirkDiggler/gamenight/internal/repositories/guest"
)

// Source provides the remote guest state of a session
type Source interface {
	ListSnapshots(ctx context.Context, input *guest.ListSnapshotsInput) (*guest.ListSnapshotsOutput, error)
	ListSlots(ctx context.Context, input *guest.ListSlotsInput) (*guest.ListSlotsOutput, error)
}

// Service keeps a last-good copy of each session's remote guest state
type Service interface {
	// Refresh fetches the guest state of a session now and returns the resulting state.
	// A failed fetch is reported in the state, not as an error.
	Refresh(ctx context.Context, input *RefreshInput) (*RefreshOutput, error)

	// State returns the last applied guest state of a session without fetching
	State(sessionID string) *State

	// Start polls a session in the background until ctx is cancelled or Stop is called.
	// Starting an already polled session does nothing.
	Start(ctx context.Context, sessionID string)

	// Stop ends background polling of a session and forgets its guest state
	Stop(sessionID string)
}
