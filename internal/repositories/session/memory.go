package session

import (
	"context"
	"sync"

	"github.com/KirkDiggler/imitation/internal/models"
)

// memoryRepository implements the Repository interface with an in-process
// map. Game state deliberately lives only for the lifetime of the process;
// there is nothing to persist across restarts.
type memoryRepository struct {
	mu       sync.RWMutex
	sessions map[string]*models.Session
}

// NewMemory creates a new in-memory session repository
func NewMemory() *memoryRepository {
	return &memoryRepository{
		sessions: make(map[string]*models.Session),
	}
}

// Create registers a session for its guild
func (r *memoryRepository) Create(ctx context.Context, input *CreateInput) error {
	if input == nil || input.Session == nil {
		return ErrNilSession
	}

	if input.Session.GuildID == "" {
		return ErrMissingGuildID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Never silently replace a running game
	if existing, ok := r.sessions[input.Session.GuildID]; ok {
		existing.Lock()
		active := existing.Active
		existing.Unlock()

		if active {
			return ErrSessionActive
		}
	}

	r.sessions[input.Session.GuildID] = input.Session

	return nil
}

// GetByGuild retrieves the session for a guild
func (r *memoryRepository) GetByGuild(ctx context.Context, input *GetByGuildInput) (*models.Session, error) {
	if input == nil || input.GuildID == "" {
		return nil, ErrMissingGuildID
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	sess, ok := r.sessions[input.GuildID]
	if !ok {
		return nil, ErrSessionNotFound
	}

	return sess, nil
}

// ListActive returns a snapshot of all currently active sessions
func (r *memoryRepository) ListActive(ctx context.Context, input *ListActiveInput) ([]*models.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var active []*models.Session
	for _, sess := range r.sessions {
		sess.Lock()
		if sess.Active {
			active = append(active, sess)
		}
		sess.Unlock()
	}

	return active, nil
}

// Remove deletes the session for a guild regardless of state
func (r *memoryRepository) Remove(ctx context.Context, input *RemoveInput) error {
	if input == nil || input.GuildID == "" {
		return ErrMissingGuildID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[input.GuildID]; !ok {
		return ErrSessionNotFound
	}

	delete(r.sessions, input.GuildID)

	return nil
}
