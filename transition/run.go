package transition

import (
	"math"
	"sync/atomic"

	"github.com/google/uuid"
)

// A Run identifies one Forward or Backward request. Gen increases by one
// for every request made against a Transition.
type Run struct {
	Gen       uint64
	ID        uuid.UUID
	Direction Direction
	Animation Animation
}

// runs tracks the latest run token. A nil latest means idle.
type runs struct {
	gen    atomic.Uint64
	latest atomic.Pointer[Run]
}

// mint records a new run as latest. Older runs notice on their next tick.
func (r *runs) mint(a Animation, d Direction) *Run {
	run := &Run{
		Gen:       r.gen.Add(1),
		ID:        uuid.New(),
		Direction: d,
		Animation: a,
	}
	r.latest.Store(run)
	return run
}

func (r *runs) current() *Run {
	return r.latest.Load()
}

// finish clears latest if it is still run.
func (r *runs) finish(run *Run) bool {
	return r.latest.CompareAndSwap(run, nil)
}

// cell holds the published value. It has one writer and any number of readers.
type cell struct {
	bits atomic.Uint64
}

func (c *cell) load() float64 {
	return math.Float64frombits(c.bits.Load())
}

func (c *cell) store(v float64) {
	c.bits.Store(math.Float64bits(v))
}
