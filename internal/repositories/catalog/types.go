package catalog

import "github.com/KirkDiggler/gamenight/internal/models"

// SaveItemsInput contains parameters for replacing a session's candidate pool
type SaveItemsInput struct {
	SessionID string
	Items     []*models.Item
}

// GetItemsInput contains parameters for retrieving a session's candidate pool
type GetItemsInput struct {
	SessionID string
}

// GetItemsOutput contains the candidate pool in stored order
type GetItemsOutput struct {
	Items []*models.Item
}
