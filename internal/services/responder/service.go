package responder

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// Canned sentence fragments for the stub. The goal is answers vague enough
// to pass for a distracted human, not answers that are actually good.
var (
	starters = []string{
		"Honestly,",
		"From experience,",
		"I think",
		"In my view,",
		"Probably",
		"Tough one,",
	}

	fillers = []string{
		"it depends on context.",
		"I'd go with pizza.",
		"sunset at the beach.",
		"quality over quantity.",
		"because it's practical.",
		"since it's reliable.",
		"I could be wrong though.",
	}
)

// service implements the Service interface with canned lines
type service struct {
	rand *rand.Rand
}

// New creates a new stub responder
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &service{
		rand: rand.New(rand.NewSource(seed)),
	}, nil
}

// GenerateReply produces an answer to a question
func (s *service) GenerateReply(ctx context.Context, input *GenerateReplyInput) (*GenerateReplyOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	starter := starters[s.rand.Intn(len(starters))]
	filler := fillers[s.rand.Intn(len(fillers))]

	return &GenerateReplyOutput{
		Reply: fmt.Sprintf("%s %s", starter, filler),
	}, nil
}
