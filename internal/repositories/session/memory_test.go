package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/imitation/internal/models"
)

type MemoryRepositoryTestSuite struct {
	suite.Suite
	repo    Repository
	ctx     context.Context
	testNow time.Time
}

func (s *MemoryRepositoryTestSuite) SetupTest() {
	s.repo = NewMemory()
	s.ctx = context.Background()
	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func TestMemoryRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(MemoryRepositoryTestSuite))
}

func (s *MemoryRepositoryTestSuite) newSession(guildID string, active bool) *models.Session {
	return &models.Session{
		ID:        "session-" + guildID,
		GuildID:   guildID,
		ChannelID: "channel-" + guildID,
		Active:    active,
		CreatedAt: s.testNow,
		UpdatedAt: s.testNow,
	}
}

func (s *MemoryRepositoryTestSuite) TestCreateAndGetByGuild() {
	sess := s.newSession("guild-1", false)

	err := s.repo.Create(s.ctx, &CreateInput{Session: sess})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetByGuild(s.ctx, &GetByGuildInput{GuildID: "guild-1"})
	s.Require().NoError(err)
	s.Equal(sess, retrieved)
}

func (s *MemoryRepositoryTestSuite) TestGetByGuildNotFound() {
	_, err := s.repo.GetByGuild(s.ctx, &GetByGuildInput{GuildID: "missing"})
	s.ErrorIs(err, ErrSessionNotFound)
}

func (s *MemoryRepositoryTestSuite) TestCreateRejectsActiveSession() {
	err := s.repo.Create(s.ctx, &CreateInput{Session: s.newSession("guild-1", true)})
	s.Require().NoError(err)

	err = s.repo.Create(s.ctx, &CreateInput{Session: s.newSession("guild-1", false)})
	s.ErrorIs(err, ErrSessionActive)
}

func (s *MemoryRepositoryTestSuite) TestCreateReplacesInactiveSession() {
	err := s.repo.Create(s.ctx, &CreateInput{Session: s.newSession("guild-1", false)})
	s.Require().NoError(err)

	replacement := s.newSession("guild-1", false)
	replacement.ID = "replacement-id"

	err = s.repo.Create(s.ctx, &CreateInput{Session: replacement})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetByGuild(s.ctx, &GetByGuildInput{GuildID: "guild-1"})
	s.Require().NoError(err)
	s.Equal("replacement-id", retrieved.ID)
}

func (s *MemoryRepositoryTestSuite) TestCreateValidatesInput() {
	s.ErrorIs(s.repo.Create(s.ctx, nil), ErrNilSession)
	s.ErrorIs(s.repo.Create(s.ctx, &CreateInput{}), ErrNilSession)
	s.ErrorIs(s.repo.Create(s.ctx, &CreateInput{Session: &models.Session{}}), ErrMissingGuildID)
}

func (s *MemoryRepositoryTestSuite) TestListActive() {
	s.Require().NoError(s.repo.Create(s.ctx, &CreateInput{Session: s.newSession("guild-1", true)}))
	s.Require().NoError(s.repo.Create(s.ctx, &CreateInput{Session: s.newSession("guild-2", false)}))
	s.Require().NoError(s.repo.Create(s.ctx, &CreateInput{Session: s.newSession("guild-3", true)}))

	active, err := s.repo.ListActive(s.ctx, &ListActiveInput{})
	s.Require().NoError(err)
	s.Len(active, 2)

	guilds := make(map[string]bool)
	for _, sess := range active {
		guilds[sess.GuildID] = true
	}
	s.True(guilds["guild-1"])
	s.True(guilds["guild-3"])
}

func (s *MemoryRepositoryTestSuite) TestRemove() {
	s.Require().NoError(s.repo.Create(s.ctx, &CreateInput{Session: s.newSession("guild-1", true)}))

	err := s.repo.Remove(s.ctx, &RemoveInput{GuildID: "guild-1"})
	s.Require().NoError(err)

	_, err = s.repo.GetByGuild(s.ctx, &GetByGuildInput{GuildID: "guild-1"})
	s.ErrorIs(err, ErrSessionNotFound)
}

func (s *MemoryRepositoryTestSuite) TestRemoveNotFound() {
	err := s.repo.Remove(s.ctx, &RemoveInput{GuildID: "missing"})
	s.ErrorIs(err, ErrSessionNotFound)
}
