package game

import (
	"time"

	"github.com/KirkDiggler/imitation/internal/coin"
	"github.com/KirkDiggler/imitation/internal/common/clock"
	"github.com/KirkDiggler/imitation/internal/common/uuid"
	"github.com/KirkDiggler/imitation/internal/models"
	sessionRepo "github.com/KirkDiggler/imitation/internal/repositories/session"
	"github.com/KirkDiggler/imitation/internal/services/responder"
)

// Default delay windows. The jitter keeps answer latency from revealing
// which contestant is simulated.
const (
	DefaultMinAnswerDelay = 1200 * time.Millisecond
	DefaultMaxAnswerDelay = 3500 * time.Millisecond
	DefaultMinRelayDelay  = 800 * time.Millisecond
	DefaultMaxRelayDelay  = 2200 * time.Millisecond

	// DefaultCommandPrefix is used in instruction text when none is set
	DefaultCommandPrefix = "!"
)

// Config holds configuration for the game service
type Config struct {
	// Repository dependencies
	SessionRepo sessionRepo.Repository

	// Service dependencies
	Responder     responder.Service
	Messenger     Messenger
	Coin          coin.Flipper
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// CommandPrefix is embedded in instruction messages so players see
	// the syntax the transport actually accepts
	CommandPrefix string

	// Delay window for simulated answers
	MinAnswerDelay time.Duration
	MaxAnswerDelay time.Duration

	// Delay window for relayed human answers
	MinRelayDelay time.Duration
	MaxRelayDelay time.Duration
}

// StartSessionInput contains parameters for creating a session
type StartSessionInput struct {
	// GuildID is the Discord guild the session is bound to
	GuildID string

	// ChannelID is the channel public game output goes to
	ChannelID string

	// CreatorID is the Discord user ID of the player creating the session
	CreatorID string
}

// StartSessionOutput contains the result of creating a session
type StartSessionOutput struct {
	// SessionID is the unique identifier for the created session
	SessionID string
}

// JoinInput contains parameters for registering a player
type JoinInput struct {
	// GuildID is the Discord guild of the session
	GuildID string

	// PlayerID is the Discord user ID of the joining player
	PlayerID string

	// PlayerName is the display name of the joining player
	PlayerName string
}

// JoinOutput contains the result of registering a player
type JoinOutput struct {
	// Role is the slot the player was assigned
	Role models.Role
}

// BeginInput contains parameters for starting the game
type BeginInput struct {
	// GuildID is the Discord guild of the session
	GuildID string

	// PlayerID is the Discord user ID of the requester
	PlayerID string
}

// BeginOutput contains the result of starting the game
type BeginOutput struct {
	// Success indicates the game started
	Success bool
}

// AskInput contains parameters for asking a round question
type AskInput struct {
	// GuildID is the Discord guild of the session
	GuildID string

	// PlayerID is the Discord user ID of the requester
	PlayerID string

	// Question is the question text
	Question string
}

// AskOutput contains the result of asking a question
type AskOutput struct {
	// Round is the round number this question opened
	Round int
}

// GuessInput contains parameters for the final guess
type GuessInput struct {
	// GuildID is the Discord guild of the session
	GuildID string

	// PlayerID is the Discord user ID of the requester
	PlayerID string

	// Choice is the guessed contestant letter, case-insensitive
	Choice string
}

// GuessOutput contains the result of the final guess
type GuessOutput struct {
	// Correct indicates whether the guess matched the simulated contestant
	Correct bool

	// SimulatedLabel is the letter of the contestant that was simulated,
	// revealed regardless of correctness
	SimulatedLabel string
}

// RelayReplyInput contains a private reply received from some identity
type RelayReplyInput struct {
	// PlayerID is the Discord user ID the reply came from
	PlayerID string

	// Text is the reply text
	Text string
}

// RelayReplyOutput contains the result of a relay attempt
type RelayReplyOutput struct {
	// Relayed indicates the reply matched a human contestant in an
	// active session and will be posted
	Relayed bool

	// Label is the contestant letter the reply was attributed to
	Label string
}

// ResetInput contains parameters for removing a session
type ResetInput struct {
	// GuildID is the Discord guild whose session is removed
	GuildID string
}

// ResetOutput contains the result of removing a session
type ResetOutput struct {
	// Success indicates the session was removed
	Success bool
}
