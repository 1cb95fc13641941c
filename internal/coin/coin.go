package coin

import (
	"math/rand"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_coin.go github.com/KirkDiggler/imitation/internal/coin Flipper

// Flipper provides the randomness the game depends on: the concealment
// coin flip and the jittered delays that keep answer timing from leaking
// which contestant is simulated.
type Flipper interface {
	// Flip returns true or false with equal probability
	Flip() bool

	// Delay returns a random duration in [min, max)
	Delay(min, max time.Duration) time.Duration
}

// Config for the coin flipper
type Config struct {
	// Optional seed for testing
	Seed int64
}

// RandomFlipper implements Flipper with a seedable rand source
type RandomFlipper struct {
	random *rand.Rand
}

// New creates a new coin flipper
func New(cfg *Config) *RandomFlipper {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)
	random := rand.New(source)

	return &RandomFlipper{
		random: random,
	}
}

// Flip returns a uniformly random boolean
func (f *RandomFlipper) Flip() bool {
	return f.random.Intn(2) == 0
}

// Delay returns a random duration in [min, max). If the window is empty
// it returns min.
func (f *RandomFlipper) Delay(min, max time.Duration) time.Duration {
	if max <= min {
		return min
	}
	return min + time.Duration(f.random.Int63n(int64(max-min)))
}
