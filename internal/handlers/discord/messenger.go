package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// messenger implements game.Messenger over a discordgo session
type messenger struct {
	session *discordgo.Session
}

// NewMessenger creates the outbound transport the game service emits
// channel posts and DMs through
func NewMessenger(session *discordgo.Session) (*messenger, error) {
	if session == nil {
		return nil, errors.New("session cannot be nil")
	}

	return &messenger{
		session: session,
	}, nil
}

// SendChannelMessage posts text to a channel
func (m *messenger) SendChannelMessage(ctx context.Context, channelID, content string) error {
	if _, err := m.session.ChannelMessageSend(channelID, content); err != nil {
		return fmt.Errorf("failed to send channel message: %w", err)
	}

	return nil
}

// SendDirectMessage sends text privately to a user
func (m *messenger) SendDirectMessage(ctx context.Context, userID, content string) error {
	channel, err := m.session.UserChannelCreate(userID)
	if err != nil {
		return fmt.Errorf("failed to open DM channel with %s: %w", userID, err)
	}

	if _, err := m.session.ChannelMessageSend(channel.ID, content); err != nil {
		return fmt.Errorf("failed to send direct message to %s: %w", userID, err)
	}

	return nil
}
