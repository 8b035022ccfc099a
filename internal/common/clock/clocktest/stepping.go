// Package clocktest provides deterministic clocks for tests.
package clocktest

import (
	"sync"
	"time"

	"github.com/KirkDiggler/fitna/internal/common/clock"
)

var _ clock.Clock = (*Stepping)(nil)

// Stepping moves forward by a fixed step on every reading. Join order is
// derived from timestamps, so tests that create players back to back use it
// to keep that order deterministic.
type Stepping struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

func NewStepping(start time.Time, step time.Duration) *Stepping {
	return &Stepping{now: start.UTC(), step: step}
}

func (c *Stepping) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(c.step)
	return c.now
}
