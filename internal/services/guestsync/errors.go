package guestsync

// GuestSyncError is a custom error type for guest sync errors
type GuestSyncError string

// Error implements the error interface
func (e GuestSyncError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig       GuestSyncError = "config cannot be nil"
	ErrNilSource       GuestSyncError = "guest source cannot be nil"
	ErrNilClock        GuestSyncError = "clock cannot be nil"
	ErrInvalidInterval GuestSyncError = "poll interval must be positive"
	ErrEmptySessionID  GuestSyncError = "session ID cannot be empty"
)
