package discord

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/imitation/internal/services/game"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantName string
		wantArgs string
		wantOK   bool
	}{
		{
			name:     "bare command",
			content:  "!join",
			wantName: "join",
			wantOK:   true,
		},
		{
			name:     "command with args",
			content:  "!ask what is your favorite food?",
			wantName: "ask",
			wantArgs: "what is your favorite food?",
			wantOK:   true,
		},
		{
			name:     "uppercase command is normalized",
			content:  "!GUESS B",
			wantName: "guess",
			wantArgs: "B",
			wantOK:   true,
		},
		{
			name:     "surrounding whitespace",
			content:  "  !guess  a  ",
			wantName: "guess",
			wantArgs: "a",
			wantOK:   true,
		},
		{
			name:    "plain chatter",
			content: "hello everyone",
			wantOK:  false,
		},
		{
			name:    "prefix only",
			content: "!",
			wantOK:  false,
		},
		{
			name:    "empty message",
			content: "",
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, args, ok := parseCommand("!", tt.content)
			assert.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				return
			}
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestParseCommandCustomPrefix(t *testing.T) {
	name, args, ok := parseCommand("?", "?ask anything")
	assert.True(t, ok)
	assert.Equal(t, "ask", name)
	assert.Equal(t, "anything", args)

	_, _, ok = parseCommand("?", "!ask anything")
	assert.False(t, ok)
}

func TestErrorMessageCoversTaxonomy(t *testing.T) {
	b := &Bot{prefix: "!"}

	tests := []struct {
		err  error
		want string
	}{
		{game.ErrNoSession, "No session yet. Start with `!startgame`."},
		{game.ErrSessionActive, "A game is already active."},
		{game.ErrGameInProgress, "Game already in progress."},
		{game.ErrAlreadyJoined, "You're already registered."},
		{game.ErrSessionFull, "This session already has 3 players."},
		{game.ErrNotEnoughPlayers, "Need exactly 3 players (`!join`) before `!begin`."},
		{game.ErrGameNotActive, "Game not active. Use `!begin`."},
		{game.ErrNotInterrogator, "Only the Interrogator can do that."},
		{game.ErrInvalidChoice, "Use `!guess A` or `!guess B`."},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, b.errorMessage(tt.err))
	}

	// Unmapped errors still render something actionable
	assert.Contains(t, b.errorMessage(game.GameError("boom")), "boom")
}
