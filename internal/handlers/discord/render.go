package discord

import (
	"errors"
	"fmt"

	"github.com/KirkDiggler/imitation/internal/services/game"
)

// errorMessage converts a game service rejection into the reply players
// see in the channel. Nothing here is fatal; every rejection is just a
// hint about what to do instead.
func (b *Bot) errorMessage(err error) string {
	switch {
	case errors.Is(err, game.ErrNoSession):
		return fmt.Sprintf("No session yet. Start with `%sstartgame`.", b.prefix)
	case errors.Is(err, game.ErrSessionActive):
		return "A game is already active."
	case errors.Is(err, game.ErrGameInProgress):
		return "Game already in progress."
	case errors.Is(err, game.ErrAlreadyJoined):
		return "You're already registered."
	case errors.Is(err, game.ErrSessionFull):
		return "This session already has 3 players."
	case errors.Is(err, game.ErrNotEnoughPlayers):
		return fmt.Sprintf("Need exactly 3 players (`%sjoin`) before `%sbegin`.", b.prefix, b.prefix)
	case errors.Is(err, game.ErrGameNotActive):
		return fmt.Sprintf("Game not active. Use `%sbegin`.", b.prefix)
	case errors.Is(err, game.ErrNotInterrogator):
		return "Only the Interrogator can do that."
	case errors.Is(err, game.ErrInvalidChoice):
		return fmt.Sprintf("Use `%sguess A` or `%sguess B`.", b.prefix, b.prefix)
	default:
		return fmt.Sprintf("Something went wrong: %v", err)
	}
}
