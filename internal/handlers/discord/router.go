package discord

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/imitation/internal/services/game"
)

// parseCommand splits "<prefix><name> <args>" into its parts. ok is false
// for anything that is not a command invocation.
func parseCommand(prefix, content string) (name, args string, ok bool) {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, prefix) {
		return "", "", false
	}

	rest := strings.TrimPrefix(content, prefix)
	if rest == "" {
		return "", "", false
	}

	parts := strings.SplitN(rest, " ", 2)
	name = strings.ToLower(parts[0])
	if len(parts) > 1 {
		args = strings.TrimSpace(parts[1])
	}

	return name, args, true
}

// handleGuildCommand dispatches a channel command to the game service and
// renders the outcome back into the channel
func (b *Bot) handleGuildCommand(m *discordgo.MessageCreate) {
	name, args, ok := parseCommand(b.prefix, m.Content)
	if !ok {
		return
	}

	ctx := context.Background()

	switch name {
	case "ping":
		b.reply(m, "pong")

	case "startgame", "start":
		_, err := b.gameService.StartSession(ctx, &game.StartSessionInput{
			GuildID:   m.GuildID,
			ChannelID: m.ChannelID,
			CreatorID: m.Author.ID,
		})
		if err != nil {
			b.reply(m, b.errorMessage(err))
			return
		}
		b.reply(m, fmt.Sprintf("🎮 New Imitation Game session created! Players, type `%sjoin` to enter (need 3 players).", b.prefix))

	case "join":
		out, err := b.gameService.Join(ctx, &game.JoinInput{
			GuildID:    m.GuildID,
			PlayerID:   m.Author.ID,
			PlayerName: displayName(m),
		})
		if err != nil {
			b.reply(m, b.errorMessage(err))
			return
		}
		b.reply(m, fmt.Sprintf("%s joined as **%s**. When all 3 have joined, run `%sbegin`.",
			m.Author.Mention(), out.Role.Display(), b.prefix))

	case "begin":
		_, err := b.gameService.Begin(ctx, &game.BeginInput{
			GuildID:  m.GuildID,
			PlayerID: m.Author.ID,
		})
		if err != nil {
			b.reply(m, b.errorMessage(err))
			return
		}
		b.reply(m, fmt.Sprintf("Game started! Interrogator uses `%sask <question>`. "+
			"Contestants answer by **DMing** the bot with `%sreply <text>`.", b.prefix, b.prefix))

	case "ask":
		if args == "" {
			b.reply(m, fmt.Sprintf("Usage: `%sask <question>`", b.prefix))
			return
		}
		out, err := b.gameService.Ask(ctx, &game.AskInput{
			GuildID:  m.GuildID,
			PlayerID: m.Author.ID,
			Question: args,
		})
		if err != nil {
			b.reply(m, b.errorMessage(err))
			return
		}
		b.reply(m, fmt.Sprintf("**Round %d** — question sent to contestants.", out.Round))

	case "guess":
		out, err := b.gameService.Guess(ctx, &game.GuessInput{
			GuildID:  m.GuildID,
			PlayerID: m.Author.ID,
			Choice:   args,
		})
		if err != nil {
			b.reply(m, b.errorMessage(err))
			return
		}
		outcome := "❌ Incorrect."
		if out.Correct {
			outcome = "✅ Correct!"
		}
		b.reply(m, fmt.Sprintf("%s The simulated respondent was Contestant %s.", outcome, out.SimulatedLabel))

	case "reset":
		_, err := b.gameService.Reset(ctx, &game.ResetInput{
			GuildID: m.GuildID,
		})
		if err != nil {
			b.reply(m, b.errorMessage(err))
			return
		}
		b.reply(m, fmt.Sprintf("Session reset. Start a new one with `%sstartgame`.", b.prefix))

	default:
		b.reply(m, fmt.Sprintf("Unknown command `%s%s`. Try `%sstartgame`, `%sjoin`, `%sbegin`, `%sask` or `%sguess`.",
			b.prefix, name, b.prefix, b.prefix, b.prefix, b.prefix, b.prefix))
	}
}

// handleDirectMessage forwards a contestant's private reply into their
// game. Anything that is not a reply command is silently ignored.
func (b *Bot) handleDirectMessage(m *discordgo.MessageCreate) {
	content := strings.TrimSpace(m.Content)
	replyPrefix := b.prefix + "reply "
	if !strings.HasPrefix(strings.ToLower(content), strings.ToLower(replyPrefix)) {
		return
	}

	text := strings.TrimSpace(content[len(replyPrefix):])
	if text == "" {
		return
	}

	out, err := b.gameService.RelayReply(context.Background(), &game.RelayReplyInput{
		PlayerID: m.Author.ID,
		Text:     text,
	})
	if err != nil {
		log.Printf("Failed to relay reply from %s: %v", m.Author.ID, err)
		return
	}

	if out.Relayed {
		log.Printf("Relayed reply from %s as Contestant %s", m.Author.ID, out.Label)
	}
}
