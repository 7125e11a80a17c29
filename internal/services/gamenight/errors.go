package gamenight

// GamenightError is a custom error type for game night errors
type GamenightError string

// Error implements the error interface
func (e GamenightError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrSessionNotFound        GamenightError = "no game night found"
	ErrSessionAlreadyExists   GamenightError = "a game night is already running in this channel"
	ErrParticipantNotFound    GamenightError = "participant not in this game night"
	ErrSessionFull            GamenightError = "game night is at maximum capacity"
	ErrItemNotFound           GamenightError = "game is not in the candidate pool"
	ErrDuplicateItem          GamenightError = "candidate pool lists a game twice"
	ErrInvalidFilters         GamenightError = "invalid filters"
	ErrInvalidInput           GamenightError = "invalid input"
	ErrSlotNotFound           GamenightError = "slot not found"
	ErrSlotAlreadyClaimed     GamenightError = "slot already claimed"
	ErrNoTopPick              GamenightError = "no eligible game to commit"
	ErrNilConfig              GamenightError = "config cannot be nil"
	ErrNilSessionRepo         GamenightError = "session repository cannot be nil"
	ErrNilParticipantRepo     GamenightError = "participant repository cannot be nil"
	ErrNilPreferenceRepo      GamenightError = "preference repository cannot be nil"
	ErrNilCatalogRepo         GamenightError = "catalog repository cannot be nil"
	ErrNilGuestRepo           GamenightError = "guest repository cannot be nil"
	ErrNilHistoryRepo         GamenightError = "history repository cannot be nil"
	ErrNilGuestSync           GamenightError = "guest sync cannot be nil"
	ErrNilClock               GamenightError = "clock cannot be nil"
	ErrNilUUIDGenerator       GamenightError = "UUID generator cannot be nil"
	ErrInvalidMaxParticipants GamenightError = "max participants must be positive"
)
