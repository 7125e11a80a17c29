package guestsync

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/gamenight/internal/common/clock"
	"github.com/KirkDiggler/gamenight/internal/models"
	"github.com/KirkDiggler/gamenight/internal/repositories/guest"
)

// Config holds configuration for the guest sync service
type Config struct {
	// Source provides remote guest snapshots and slots
	Source Source

	// Clock stamps successful refreshes
	Clock clock.Clock

	// Interval is the background poll interval
	Interval time.Duration

	// Logger receives refresh failures
	Logger zerolog.Logger
}

// session holds the sync state of one session
type session struct {
	state  State
	issued uint64

	// generation identifies the current poller so a finished one does not clear its successor
	generation uint64
	cancel     context.CancelFunc
}

// service implements the Service interface
type service struct {
	source   Source
	clock    clock.Clock
	interval time.Duration
	logger   zerolog.Logger

	mu       sync.Mutex
	sessions map[string]*session

	// generations numbers pollers across the service, so a session restarted after Stop
	// never reuses the generation of a poller still winding down
	generations uint64
}

// New creates a new guest sync service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Source == nil {
		return nil, ErrNilSource
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.Interval <= 0 {
		return nil, ErrInvalidInterval
	}

	return &service{
		source:   cfg.Source,
		clock:    cfg.Clock,
		interval: cfg.Interval,
		logger:   cfg.Logger.With().Str("component", "guestsync").Logger(),
		sessions: make(map[string]*session),
	}, nil
}

// sessionLocked returns the session entry, creating it if needed. Callers hold mu.
func (s *service) sessionLocked(sessionID string) *session {
	entry, ok := s.sessions[sessionID]
	if !ok {
		entry = &session{}
		s.sessions[sessionID] = entry
	}
	return entry
}

// begin issues the next sequence number for a refresh of the session.
// It issues nothing once ctx is done, so a stopped poller cannot bring a session back.
func (s *service) begin(ctx context.Context, sessionID string) (uint64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ctx.Err() != nil {
		return 0, false
	}

	entry := s.sessionLocked(sessionID)
	entry.issued++
	return entry.issued, true
}

// fetched is the result of one fetch of a session's guest state
type fetched struct {
	guests []*models.GuestSnapshot
	slots  []*models.NamedSlot
	err    error
}

// apply records a fetch result unless a refresh issued later was already applied
// or the session was stopped meanwhile. A failed fetch keeps the previous guests and slots.
func (s *service) apply(sessionID string, seq uint64, result fetched) (State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[sessionID]
	if !ok {
		return State{}, false
	}
	if seq <= entry.state.Sequence {
		return entry.state, false
	}

	entry.state.Sequence = seq
	if result.err != nil {
		entry.state.Err = result.err.Error()
		return entry.state, true
	}

	entry.state.Guests = result.guests
	entry.state.Slots = result.slots
	entry.state.Err = ""
	entry.state.RefreshedAt = s.clock.Now()

	return entry.state, true
}

func (s *service) fetch(ctx context.Context, sessionID string) fetched {
	var result fetched

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		output, err := s.source.ListSnapshots(gctx, &guest.ListSnapshotsInput{SessionID: sessionID})
		if err != nil {
			return fmt.Errorf("failed to list guest snapshots: %w", err)
		}
		result.guests = output.Snapshots
		return nil
	})

	g.Go(func() error {
		output, err := s.source.ListSlots(gctx, &guest.ListSlotsInput{SessionID: sessionID})
		if err != nil {
			return fmt.Errorf("failed to list slots: %w", err)
		}
		result.slots = output.Slots
		return nil
	})

	result.err = g.Wait()
	return result
}

// Refresh fetches the guest state of a session and applies it
func (s *service) Refresh(ctx context.Context, input *RefreshInput) (*RefreshOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrEmptySessionID
	}

	seq, ok := s.begin(ctx, input.SessionID)
	if !ok {
		return &RefreshOutput{
			State:   s.State(input.SessionID),
			Applied: false,
		}, nil
	}

	result := s.fetch(ctx, input.SessionID)

	// A cancelled refresh says nothing about the guests
	if ctx.Err() != nil {
		s.logger.Debug().
			Str("session_id", input.SessionID).
			Uint64("sequence", seq).
			Msg("guest refresh cancelled")

		return &RefreshOutput{
			State:   s.State(input.SessionID),
			Applied: false,
		}, nil
	}

	if result.err != nil {
		s.logger.Warn().
			Err(result.err).
			Str("session_id", input.SessionID).
			Uint64("sequence", seq).
			Msg("guest refresh failed, keeping last good guest list")
	}

	state, applied := s.apply(input.SessionID, seq, result)
	if !applied {
		s.logger.Debug().
			Str("session_id", input.SessionID).
			Uint64("sequence", seq).
			Uint64("applied_sequence", state.Sequence).
			Msg("dropped out of order guest refresh")
	}

	return &RefreshOutput{
		State:   &state,
		Applied: applied,
	}, nil
}

// State returns the last applied guest state of a session
func (s *service) State(sessionID string) *State {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[sessionID]
	if !ok {
		return &State{}
	}

	state := entry.state
	return &state
}

// Start polls a session in the background
func (s *service) Start(ctx context.Context, sessionID string) {
	s.mu.Lock()
	entry := s.sessionLocked(sessionID)
	if entry.cancel != nil {
		s.mu.Unlock()
		return
	}
	pollCtx, cancel := context.WithCancel(ctx)
	entry.cancel = cancel
	s.generations++
	entry.generation = s.generations
	generation := entry.generation
	s.mu.Unlock()

	go s.poll(pollCtx, sessionID, generation)
}

// Stop ends background polling of a session and forgets its guest state
func (s *service) Stop(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[sessionID]
	if !ok {
		return
	}

	if entry.cancel != nil {
		entry.cancel()
	}
	delete(s.sessions, sessionID)
}

func (s *service) poll(ctx context.Context, sessionID string, generation uint64) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	defer s.finish(sessionID, generation)

	s.logger.Info().Str("session_id", sessionID).Dur("interval", s.interval).Msg("guest polling started")

	for {
		if _, err := s.Refresh(ctx, &RefreshInput{SessionID: sessionID}); err != nil {
			s.logger.Error().Err(err).Str("session_id", sessionID).Msg("guest refresh rejected")
		}

		select {
		case <-ctx.Done():
			s.logger.Info().Str("session_id", sessionID).Msg("guest polling stopped")
			return
		case <-ticker.C:
		}
	}
}

// finish releases the poller slot of a session if it still belongs to generation
func (s *service) finish(sessionID string, generation uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[sessionID]
	if !ok || entry.generation != generation || entry.cancel == nil {
		return
	}

	entry.cancel()
	entry.cancel = nil
}
