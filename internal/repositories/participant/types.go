package participant

import "github.com/KirkDiggler/gamenight/internal/models"

// SaveParticipantInput contains parameters for saving a participant
type SaveParticipantInput struct {
	Participant *models.Participant
}

// GetParticipantInput contains parameters for retrieving a participant
type GetParticipantInput struct {
	SessionID     string
	ParticipantID string
}

// GetParticipantsInSessionInput contains parameters for retrieving a session's participants
type GetParticipantsInSessionInput struct {
	SessionID string
}

// GetParticipantsInSessionOutput contains the participants of a session, sorted by ID
type GetParticipantsInSessionOutput struct {
	Participants []*models.Participant
}

// RemoveParticipantInput contains parameters for removing a participant
type RemoveParticipantInput struct {
	SessionID     string
	ParticipantID string
}
