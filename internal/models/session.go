package models

import (
	"sync"
	"time"
)

// Session represents one imitation game bound to a guild and channel.
//
// All field mutations after creation must happen while holding the
// embedded mutex; command handlers run concurrently and answer posts
// are in flight while new commands arrive.
type Session struct {
	// Mutex serializes state transitions on this session
	sync.Mutex

	// ID is the unique identifier for this session
	ID string

	// GuildID is the Discord server/guild this session belongs to
	GuildID string

	// ChannelID is the channel where public game output is posted
	ChannelID string

	// Interrogator, ContestantA and ContestantB are nil until a player
	// joins the slot
	Interrogator *Player
	ContestantA  *Player
	ContestantB  *Player

	// Active is true from a successful begin until the guess resolves
	Active bool

	// RoundNum counts questions asked while active
	RoundNum int

	// CreatedAt is when the session was created
	CreatedAt time.Time

	// UpdatedAt is when the session was last updated
	UpdatedAt time.Time
}

// HasPlayer reports whether the identity already occupies a slot
func (s *Session) HasPlayer(playerID string) bool {
	for _, p := range []*Player{s.Interrogator, s.ContestantA, s.ContestantB} {
		if p != nil && p.ID == playerID {
			return true
		}
	}
	return false
}

// Full reports whether all three slots are occupied
func (s *Session) Full() bool {
	return s.Interrogator != nil && s.ContestantA != nil && s.ContestantB != nil
}

// SimulatedLabel returns the letter of the simulated contestant, or empty
// if the game has not begun
func (s *Session) SimulatedLabel() string {
	if s.ContestantA != nil && s.ContestantA.IsSimulated {
		return "A"
	}
	if s.ContestantB != nil && s.ContestantB.IsSimulated {
		return "B"
	}
	return ""
}
