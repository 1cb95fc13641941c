package discord

import (
	"errors"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/imitation/internal/services/game"
)

// Bot represents the Discord bot instance
type Bot struct {
	session     *discordgo.Session
	gameService game.Service
	prefix      string
}

// Config holds the configuration for the bot
type Config struct {
	// Discord session, shared with the outbound messenger
	Session *discordgo.Session

	// CommandPrefix for chat commands, e.g. "!"
	CommandPrefix string

	// Game service
	GameService game.Service
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Session == nil {
		return nil, errors.New("session cannot be nil")
	}

	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}

	prefix := cfg.CommandPrefix
	if prefix == "" {
		prefix = "!"
	}

	bot := &Bot{
		session:     cfg.Session,
		gameService: cfg.GameService,
		prefix:      prefix,
	}

	// Reading chat commands and DM replies requires the message content
	// intent on top of the message events themselves
	cfg.Session.Identify.Intents = discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentMessageContent

	cfg.Session.AddHandler(bot.handleMessageCreate)

	return bot, nil
}

// Start opens the websocket connection to Discord
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	log.Println("Bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop gracefully shuts down the Discord connection
func (b *Bot) Stop() error {
	// Let in-flight answer posts land before the connection drops
	b.gameService.Drain()

	return b.session.Close()
}

// handleMessageCreate routes inbound messages: DMs go to the reply
// relay, guild messages to the command dispatcher
func (b *Bot) handleMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	if m.GuildID == "" {
		b.handleDirectMessage(m)
		return
	}

	b.handleGuildCommand(m)
}

// reply answers the invoking message in its channel, best-effort
func (b *Bot) reply(m *discordgo.MessageCreate, content string) {
	if _, err := b.session.ChannelMessageSendReply(m.ChannelID, content, m.Reference()); err != nil {
		log.Printf("Failed to reply in channel %s: %v", m.ChannelID, err)
	}
}

// displayName picks the most specific name Discord gives us
func displayName(m *discordgo.MessageCreate) string {
	if m.Member != nil && m.Member.Nick != "" {
		return m.Member.Nick
	}
	if m.Author.GlobalName != "" {
		return m.Author.GlobalName
	}
	return m.Author.Username
}
