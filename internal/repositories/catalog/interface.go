package catalog

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/gamenight/internal/repositories/catalog Repository

import (
	"context"
)

// Repository defines the interface for a session's candidate pool
type Repository interface {
	// SaveItems replaces the candidate pool of a session
	SaveItems(ctx context.Context, input *SaveItemsInput) error

	// GetItems retrieves the candidate pool of a session in stored order
	GetItems(ctx context.Context, input *GetItemsInput) (*GetItemsOutput, error)
}
