package responder

// Config holds configuration for the stub responder
type Config struct {
	// Optional seed for testing
	Seed int64
}

// GenerateReplyInput contains parameters for generating a reply
type GenerateReplyInput struct {
	// Question is the interrogator's question text
	Question string

	// Round is the round the question belongs to
	Round int
}

// GenerateReplyOutput contains the generated reply
type GenerateReplyOutput struct {
	// Reply is the answer text to post on the contestant's behalf
	Reply string
}
