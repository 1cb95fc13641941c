package game

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/KirkDiggler/imitation/internal/coin"
	"github.com/KirkDiggler/imitation/internal/common/clock"
	"github.com/KirkDiggler/imitation/internal/common/uuid"
	"github.com/KirkDiggler/imitation/internal/models"
	sessionRepo "github.com/KirkDiggler/imitation/internal/repositories/session"
	"github.com/KirkDiggler/imitation/internal/services/responder"
)

// service implements the Service interface
type service struct {
	config      *Config
	sessionRepo sessionRepo.Repository
	responder   responder.Service
	messenger   Messenger
	coin        coin.Flipper
	clock       clock.Clock
	uuidGen     uuid.UUID

	// inflight tracks spawned answer posts so shutdown can drain them.
	// Resolution never cancels them; a post that lands after the guess
	// still appears in the channel.
	inflight sync.WaitGroup
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}

	if cfg.Responder == nil {
		return nil, ErrNilResponder
	}

	if cfg.Messenger == nil {
		return nil, ErrNilMessenger
	}

	if cfg.Coin == nil {
		return nil, ErrNilCoin
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	if cfg.CommandPrefix == "" {
		cfg.CommandPrefix = DefaultCommandPrefix
	}

	if cfg.MinAnswerDelay == 0 && cfg.MaxAnswerDelay == 0 {
		cfg.MinAnswerDelay = DefaultMinAnswerDelay
		cfg.MaxAnswerDelay = DefaultMaxAnswerDelay
	}

	if cfg.MinRelayDelay == 0 && cfg.MaxRelayDelay == 0 {
		cfg.MinRelayDelay = DefaultMinRelayDelay
		cfg.MaxRelayDelay = DefaultMaxRelayDelay
	}

	return &service{
		config:      cfg,
		sessionRepo: cfg.SessionRepo,
		responder:   cfg.Responder,
		messenger:   cfg.Messenger,
		coin:        cfg.Coin,
		clock:       cfg.Clock,
		uuidGen:     cfg.UUIDGenerator,
	}, nil
}

// StartSession creates a new session for a guild
func (s *service) StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error) {
	if input == nil || input.GuildID == "" || input.ChannelID == "" {
		return nil, errors.New("guild ID and channel ID are required")
	}

	now := s.clock.Now()
	sess := &models.Session{
		ID:        s.uuidGen.NewUUID(),
		GuildID:   input.GuildID,
		ChannelID: input.ChannelID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.sessionRepo.Create(ctx, &sessionRepo.CreateInput{
		Session: sess,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionActive) {
			return nil, ErrSessionActive
		}
		return nil, err
	}

	log.Printf("Created session %s for guild %s (requested by %s)", sess.ID, input.GuildID, input.CreatorID)

	return &StartSessionOutput{
		SessionID: sess.ID,
	}, nil
}

// Join registers a player into the next open role slot
func (s *service) Join(ctx context.Context, input *JoinInput) (*JoinOutput, error) {
	if input == nil || input.GuildID == "" || input.PlayerID == "" {
		return nil, errors.New("guild ID and player ID are required")
	}

	sess, err := s.getSession(ctx, input.GuildID)
	if err != nil {
		return nil, err
	}

	sess.Lock()

	if sess.Active {
		sess.Unlock()
		return nil, ErrGameInProgress
	}

	if sess.HasPlayer(input.PlayerID) {
		sess.Unlock()
		return nil, ErrAlreadyJoined
	}

	player := &models.Player{
		ID:   input.PlayerID,
		Name: input.PlayerName,
	}

	// Fixed assignment order: interrogator, then contestant A, then B
	switch {
	case sess.Interrogator == nil:
		player.Role = models.RoleInterrogator
		sess.Interrogator = player
	case sess.ContestantA == nil:
		player.Role = models.RoleContestantA
		sess.ContestantA = player
	case sess.ContestantB == nil:
		player.Role = models.RoleContestantB
		sess.ContestantB = player
	default:
		sess.Unlock()
		return nil, ErrSessionFull
	}

	sess.UpdatedAt = s.clock.Now()
	sess.Unlock()

	// Best-effort; the channel announcement covers an undeliverable DM
	if err := s.messenger.SendDirectMessage(ctx, input.PlayerID, s.joinedMessage(player.Role)); err != nil {
		log.Printf("Failed to DM join confirmation to %s: %v", input.PlayerID, err)
	}

	return &JoinOutput{
		Role: player.Role,
	}, nil
}

// Begin starts the game: draws the concealment coin and notifies players
func (s *service) Begin(ctx context.Context, input *BeginInput) (*BeginOutput, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("guild ID is required")
	}

	sess, err := s.getSession(ctx, input.GuildID)
	if err != nil {
		return nil, err
	}

	sess.Lock()

	if sess.Active {
		sess.Unlock()
		return nil, ErrGameInProgress
	}

	if !sess.Full() {
		sess.Unlock()
		return nil, ErrNotEnoughPlayers
	}

	// The single concealment draw for this game; never re-rolled
	simulatedA := s.coin.Flip()
	sess.ContestantA.IsSimulated = simulatedA
	sess.ContestantB.IsSimulated = !simulatedA

	sess.Active = true
	sess.RoundNum = 0
	sess.UpdatedAt = s.clock.Now()

	instructions := []struct {
		playerID string
		text     string
	}{
		{sess.Interrogator.ID, s.interrogatorInstructions()},
		{sess.ContestantA.ID, s.contestantInstructions("A")},
		{sess.ContestantB.ID, s.contestantInstructions("B")},
	}

	sessionID := sess.ID
	sess.Unlock()

	log.Printf("Session %s began (requested by %s)", sessionID, input.PlayerID)

	// One DM failing must not block the others
	for _, dm := range instructions {
		if err := s.messenger.SendDirectMessage(ctx, dm.playerID, dm.text); err != nil {
			log.Printf("Failed to DM instructions to %s: %v", dm.playerID, err)
		}
	}

	return &BeginOutput{
		Success: true,
	}, nil
}

// Ask runs one round: fans the question out to both contestants
func (s *service) Ask(ctx context.Context, input *AskInput) (*AskOutput, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("guild ID is required")
	}

	sess, err := s.getSession(ctx, input.GuildID)
	if err != nil {
		return nil, err
	}

	sess.Lock()

	if !sess.Active {
		sess.Unlock()
		return nil, ErrGameNotActive
	}

	if sess.Interrogator.ID != input.PlayerID {
		sess.Unlock()
		return nil, ErrNotInterrogator
	}

	sess.RoundNum++
	round := sess.RoundNum
	sess.UpdatedAt = s.clock.Now()

	channelID := sess.ChannelID
	contestants := []*models.Player{sess.ContestantA, sess.ContestantB}
	sess.Unlock()

	// Fan out without waiting; answers arrive in whatever order they land
	for _, p := range contestants {
		s.inflight.Add(1)
		if p.IsSimulated {
			go s.postSimulatedAnswer(channelID, p.Role.Label(), input.Question, round)
		} else {
			go s.sendQuestionToHuman(p.ID, input.Question, round)
		}
	}

	return &AskOutput{
		Round: round,
	}, nil
}

// Guess resolves the game and reveals the simulated contestant
func (s *service) Guess(ctx context.Context, input *GuessInput) (*GuessOutput, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("guild ID is required")
	}

	sess, err := s.getSession(ctx, input.GuildID)
	if err != nil {
		return nil, err
	}

	sess.Lock()

	if !sess.Active {
		sess.Unlock()
		return nil, ErrGameNotActive
	}

	if sess.Interrogator.ID != input.PlayerID {
		sess.Unlock()
		return nil, ErrNotInterrogator
	}

	choice := strings.ToUpper(strings.TrimSpace(input.Choice))
	if choice != "A" && choice != "B" {
		sess.Unlock()
		return nil, ErrInvalidChoice
	}

	correct := (choice == "A" && sess.ContestantA.IsSimulated) ||
		(choice == "B" && sess.ContestantB.IsSimulated)
	simulated := sess.SimulatedLabel()

	// Terminal state; a new game needs a fresh registration cycle
	sess.Active = false
	sess.UpdatedAt = s.clock.Now()

	sessionID := sess.ID
	sess.Unlock()

	log.Printf("Session %s resolved: guess=%s simulated=%s correct=%t", sessionID, choice, simulated, correct)

	return &GuessOutput{
		Correct:        correct,
		SimulatedLabel: simulated,
	}, nil
}

// RelayReply forwards a human contestant's private reply to the channel.
// A reply from anyone outside an active game is a silent no-op.
func (s *service) RelayReply(ctx context.Context, input *RelayReplyInput) (*RelayReplyOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("player ID is required")
	}

	sessions, err := s.sessionRepo.ListActive(ctx, &sessionRepo.ListActiveInput{})
	if err != nil {
		return nil, err
	}

	for _, sess := range sessions {
		sess.Lock()

		var label string
		// Re-check Active: the session may have resolved since the scan
		if sess.Active {
			if sess.ContestantA != nil && sess.ContestantA.ID == input.PlayerID && !sess.ContestantA.IsSimulated {
				label = "A"
			}
			if sess.ContestantB != nil && sess.ContestantB.ID == input.PlayerID && !sess.ContestantB.IsSimulated {
				label = "B"
			}
		}
		channelID := sess.ChannelID

		sess.Unlock()

		if label != "" {
			// At most one relay per inbound reply
			s.inflight.Add(1)
			go s.postRelayedAnswer(channelID, label, input.Text)

			return &RelayReplyOutput{
				Relayed: true,
				Label:   label,
			}, nil
		}
	}

	return &RelayReplyOutput{
		Relayed: false,
	}, nil
}

// Reset removes a guild's session regardless of state
func (s *service) Reset(ctx context.Context, input *ResetInput) (*ResetOutput, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("guild ID is required")
	}

	err := s.sessionRepo.Remove(ctx, &sessionRepo.RemoveInput{
		GuildID: input.GuildID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrNoSession
		}
		return nil, err
	}

	return &ResetOutput{
		Success: true,
	}, nil
}

// Drain blocks until all in-flight answer posts have finished
func (s *service) Drain() {
	s.inflight.Wait()
}

// getSession resolves a guild's session, translating repository errors
func (s *service) getSession(ctx context.Context, guildID string) (*models.Session, error) {
	sess, err := s.sessionRepo.GetByGuild(ctx, &sessionRepo.GetByGuildInput{
		GuildID: guildID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrNoSession
		}
		return nil, err
	}

	return sess, nil
}

// postSimulatedAnswer generates an answer and posts it to the channel
// after a jittered delay, so latency does not give the contestant away
func (s *service) postSimulatedAnswer(channelID, label, question string, round int) {
	defer s.inflight.Done()

	ctx := context.Background()

	time.Sleep(s.coin.Delay(s.config.MinAnswerDelay, s.config.MaxAnswerDelay))

	reply, err := s.responder.GenerateReply(ctx, &responder.GenerateReplyInput{
		Question: question,
		Round:    round,
	})
	if err != nil {
		log.Printf("Failed to generate answer for contestant %s: %v", label, err)
		return
	}

	if err := s.messenger.SendChannelMessage(ctx, channelID, formatAnswer(label, reply.Reply)); err != nil {
		log.Printf("Failed to post answer for contestant %s: %v", label, err)
	}
}

// sendQuestionToHuman delivers the round question to the human contestant
// privately; the round never blocks waiting for their reply
func (s *service) sendQuestionToHuman(playerID, question string, round int) {
	defer s.inflight.Done()

	ctx := context.Background()

	msg := fmt.Sprintf("**Round %d Question:** %s\nReply here with `%sreply your answer`.",
		round, question, s.config.CommandPrefix)

	if err := s.messenger.SendDirectMessage(ctx, playerID, msg); err != nil {
		log.Printf("Failed to DM round %d question to %s: %v", round, playerID, err)
	}
}

// postRelayedAnswer posts a human answer to the channel after a short
// natural-feeling delay
func (s *service) postRelayedAnswer(channelID, label, text string) {
	defer s.inflight.Done()

	ctx := context.Background()

	time.Sleep(s.coin.Delay(s.config.MinRelayDelay, s.config.MaxRelayDelay))

	if err := s.messenger.SendChannelMessage(ctx, channelID, formatAnswer(label, text)); err != nil {
		log.Printf("Failed to relay answer for contestant %s: %v", label, err)
	}
}
