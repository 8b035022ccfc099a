package draw

import (
	"github.com/valyala/fastrand"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_picker.go github.com/KirkDiggler/fitna/internal/draw Picker

// Picker chooses an index uniformly at random
type Picker interface {
	// Pick returns a value in [0, n). n must be positive.
	Pick(n int) int
}

// Randomizer provides card picking backed by fastrand
type Randomizer struct{}

// Config for the randomizer
type Config struct{}

// New creates a new randomizer
func New(cfg *Config) *Randomizer {
	return &Randomizer{}
}

// Pick returns a uniformly random index in [0, n)
func (r *Randomizer) Pick(n int) int {
	if n <= 1 {
		return 0
	}
	return int(fastrand.Uint32n(uint32(n)))
}
