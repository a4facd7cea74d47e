package state

import (
	"sync/atomic"

	"github.com/google/uuid"
)

// Clock is a Lamport clock paired with a unique site ID. Shape IDs are
// minted from the pair, which keeps concurrent inserts from different boards
// collision-free without coordination.
type Clock struct {
	site    string
	counter atomic.Uint64
}

// NewClock returns a clock with a fresh random site identity.
func NewClock() *Clock {
	return &Clock{site: uuid.NewString()}
}

// Site returns this session's site ID.
func (c *Clock) Site() string {
	return c.site
}

// Tick advances the clock and returns the new timestamp.
func (c *Clock) Tick() uint64 {
	return c.counter.Add(1)
}

// Witness folds a remotely observed timestamp into the clock so that later
// local ticks order after everything this board has seen.
func (c *Clock) Witness(remote uint64) {
	for {
		cur := c.counter.Load()
		if remote <= cur || c.counter.CompareAndSwap(cur, remote) {
			return
		}
	}
}
