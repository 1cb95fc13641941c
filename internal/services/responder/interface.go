package responder

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/imitation/internal/services/responder Service

// Service is the interface for the simulated respondent. Implementations
// turn an interrogator's question into an answer; the canned-line stub in
// this package can be swapped for a model-backed implementation without
// touching the game service.
type Service interface {
	// GenerateReply produces an answer to a question
	GenerateReply(ctx context.Context, input *GenerateReplyInput) (*GenerateReplyOutput, error)
}
