package game

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_messenger.go github.com/KirkDiggler/imitation/internal/services/game Messenger

// Service defines the interface for game operations
type Service interface {
	// StartSession creates a new session for a guild
	StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error)

	// Join registers a player into the next open role slot
	Join(ctx context.Context, input *JoinInput) (*JoinOutput, error)

	// Begin starts the game: draws the concealment coin and notifies players
	Begin(ctx context.Context, input *BeginInput) (*BeginOutput, error)

	// Ask runs one round: fans the question out to both contestants
	Ask(ctx context.Context, input *AskInput) (*AskOutput, error)

	// Guess resolves the game and reveals the simulated contestant
	Guess(ctx context.Context, input *GuessInput) (*GuessOutput, error)

	// RelayReply forwards a human contestant's private reply to the channel
	RelayReply(ctx context.Context, input *RelayReplyInput) (*RelayReplyOutput, error)

	// Reset removes a guild's session regardless of state
	Reset(ctx context.Context, input *ResetInput) (*ResetOutput, error)

	// Drain blocks until all in-flight answer posts have finished
	Drain()
}

// Messenger is the outbound transport the game emits messages through.
// Both sends are best-effort; the service logs and swallows failures.
type Messenger interface {
	// SendChannelMessage posts text to a channel
	SendChannelMessage(ctx context.Context, channelID, content string) error

	// SendDirectMessage sends text privately to a user
	SendDirectMessage(ctx context.Context, userID, content string) error
}
