package participant

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/gamenight/internal/repositories/participant Repository

import (
	"context"

	"github.com/KirkDiggler/gamenight/internal/models"
)

// Repository defines the interface for participant data persistence
type Repository interface {
	// SaveParticipant persists a participant
	SaveParticipant(ctx context.Context, input *SaveParticipantInput) error

	// GetParticipant retrieves a participant of a session
	GetParticipant(ctx context.Context, input *GetParticipantInput) (*models.Participant, error)

	// GetParticipantsInSession retrieves all participants of a session
	GetParticipantsInSession(ctx context.Context, input *GetParticipantsInSessionInput) (*GetParticipantsInSessionOutput, error)

	// RemoveParticipant removes a participant from a session
	RemoveParticipant(ctx context.Context, input *RemoveParticipantInput) error
}
