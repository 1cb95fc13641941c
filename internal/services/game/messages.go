package game

import (
	"fmt"

	"github.com/KirkDiggler/imitation/internal/models"
)

// formatAnswer renders a contestant answer for the shared channel. Both
// simulated and relayed human answers go through this so the transcript
// gives nothing away.
func formatAnswer(label, text string) string {
	return fmt.Sprintf("**Contestant %s:** %s", label, text)
}

// joinedMessage is the DM confirming a player's assigned role
func (s *service) joinedMessage(role models.Role) string {
	return fmt.Sprintf("You joined as **%s**. Wait for `%sbegin`.", role.Display(), s.config.CommandPrefix)
}

// interrogatorInstructions describes the interrogator's protocol without
// hinting at which contestant is simulated
func (s *service) interrogatorInstructions() string {
	p := s.config.CommandPrefix
	return fmt.Sprintf("You are the **Interrogator**. Ask in-channel with `%sask <question>`. "+
		"When ready, guess with `%sguess A` or `%sguess B`.", p, p, p)
}

// contestantInstructions describes a contestant's protocol. Simulated and
// human contestants receive the same wording.
func (s *service) contestantInstructions(label string) string {
	return fmt.Sprintf("You are **Contestant %s**. Reply ONLY here in DM with `%sreply <text>`.",
		label, s.config.CommandPrefix)
}
