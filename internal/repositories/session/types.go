package session

import (
	"github.com/KirkDiggler/imitation/internal/models"
)

// CreateInput contains parameters for registering a session
type CreateInput struct {
	// Session is the session to register, keyed by its GuildID
	Session *models.Session
}

// GetByGuildInput contains parameters for looking up a guild's session
type GetByGuildInput struct {
	// GuildID is the Discord guild to look up
	GuildID string
}

// ListActiveInput contains parameters for listing active sessions
type ListActiveInput struct{}

// RemoveInput contains parameters for removing a guild's session
type RemoveInput struct {
	// GuildID is the Discord guild whose session is removed
	GuildID string
}
