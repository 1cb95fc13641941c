package session

import (
	"context"

	"github.com/KirkDiggler/imitation/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/imitation/internal/repositories/session Repository

// Repository defines the interface for session storage
type Repository interface {
	// Create registers a session for its guild. It fails if the guild
	// already has an active session; an inactive one is replaced.
	Create(ctx context.Context, input *CreateInput) error

	// GetByGuild retrieves the session for a guild
	GetByGuild(ctx context.Context, input *GetByGuildInput) (*models.Session, error)

	// ListActive returns a snapshot of all currently active sessions
	ListActive(ctx context.Context, input *ListActiveInput) ([]*models.Session, error)

	// Remove deletes the session for a guild regardless of state
	Remove(ctx context.Context, input *RemoveInput) error
}
