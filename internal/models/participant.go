package models

// ParticipantOrigin describes how a participant joined a session
type ParticipantOrigin string

const (
	// ParticipantOriginLocal is a participant recorded on the host's device
	ParticipantOriginLocal ParticipantOrigin = "local"

	// ParticipantOriginRemoteGuest is a participant who joined through session sync
	ParticipantOriginRemoteGuest ParticipantOrigin = "remote_guest"
)

// Participant is a voter in a game night session
type Participant struct {
	// ID is the unique identifier for the participant
	ID string

	// SessionID is the session the participant belongs to
	SessionID string

	// DisplayName is the name shown in the session
	DisplayName string

	// Username is the account name, used when DisplayName is empty
	Username string

	// Origin is where the participant came from
	Origin ParticipantOrigin

	// IsOrganizer marks the host of the session
	IsOrganizer bool
}

// MatchName returns the name used for identity reconciliation
func (p *Participant) MatchName() string {
	if p.DisplayName != "" {
		return p.DisplayName
	}
	return p.Username
}
