package session

// SessionError is a custom error type for session storage errors
type SessionError string

// Error implements the error interface
func (e SessionError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrSessionNotFound SessionError = "no session exists for this guild"
	ErrSessionActive   SessionError = "a session is already active for this guild"
	ErrNilSession      SessionError = "session cannot be nil"
	ErrMissingGuildID  SessionError = "guild ID is required"
)
