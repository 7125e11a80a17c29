package session

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/gamenight/internal/repositories/session Repository

import (
	"context"

	"github.com/KirkDiggler/gamenight/internal/models"
)

// Repository defines the interface for session data persistence
type Repository interface {
	// SaveSession persists a session
	SaveSession(ctx context.Context, input *SaveSessionInput) error

	// GetSession retrieves a session by ID
	GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error)

	// GetSessionByChannel retrieves the session running in a channel
	GetSessionByChannel(ctx context.Context, input *GetSessionByChannelInput) (*models.Session, error)

	// DeleteSession removes a session
	DeleteSession(ctx context.Context, input *DeleteSessionInput) error
}
