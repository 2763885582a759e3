// Package transition animates a single value between two endpoints.
//
// A Transition owns a background scheduler that plays Forward and Backward
// requests one at a time, in the order they were made. Each request mints a
// new run token; a run that notices a newer token on its next tick stops
// publishing and the scheduler moves on. Read never blocks.
//
//	tr := transition.New(ctx, []transition.Phase{transition.From(0), transition.To(100)},
//		transition.WithRedraw(streamer.Redraw))
//	defer tr.Close()
//	tr.Forward(transition.Linear(transition.EaseInOut, 400*time.Millisecond))
package transition

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"time"
)

// DefaultTick is the interval between frames of a run.
const DefaultTick = time.Millisecond

// Transition is the handle to an animated value.
type Transition struct {
	start, end float64
	tick       time.Duration

	value cell
	runs  runs
	queue *queue

	// accepted requests that have not finished playing
	pending atomic.Int64

	redraw func()
	logger *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

// Option configures a Transition.
type Option func(*Transition)

// WithRedraw sets the callback invoked once for every published frame. It is
// called from the scheduler goroutine and must not block.
func WithRedraw(fn func()) Option {
	return func(t *Transition) {
		if fn != nil {
			t.redraw = fn
		}
	}
}

// WithLogger sets the logger used by the scheduler.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Transition) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithTickInterval overrides DefaultTick.
func WithTickInterval(d time.Duration) Option {
	return func(t *Transition) {
		if d > 0 {
			t.tick = d
		}
	}
}

// New derives the endpoints from phases and starts the scheduler. The
// scheduler stops when ctx is done or Close is called.
func New(ctx context.Context, phases []Phase, opts ...Option) *Transition {
	t := &Transition{
		tick:   DefaultTick,
		queue:  newQueue(),
		redraw: func() {},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.logger = t.logger.With("component", "transition")
	t.start, t.end = endpoints(phases)
	t.value.store(t.start)

	ctx, t.cancel = context.WithCancel(ctx)
	go t.loop(ctx)
	return t
}

// Read returns the most recently published value.
func (t *Transition) Read() float64 {
	return t.value.load()
}

// Start returns the value the transition starts from.
func (t *Transition) Start() float64 {
	return t.start
}

// End returns the value the transition ends at.
func (t *Transition) End() float64 {
	return t.end
}

// Idle reports whether no run is pending or playing.
func (t *Transition) Idle() bool {
	return t.pending.Load() == 0 && t.runs.current() == nil
}

// Latest returns the most recent run token, if any.
func (t *Transition) Latest() (Run, bool) {
	run := t.runs.current()
	if run == nil {
		return Run{}, false
	}
	return *run, true
}

// Forward plays a towards the end value. It supersedes any run in flight.
// Requests made after the scheduler has stopped are dropped.
func (t *Transition) Forward(a Animation) {
	t.submit(a, Forward)
}

// Backward plays a towards the start value. It supersedes any run in flight.
// Requests made after the scheduler has stopped are dropped.
func (t *Transition) Backward(a Animation) {
	t.submit(a, Backward)
}

// TryForward is Forward for callers that want to know whether the request
// was accepted. It never blocks.
func (t *Transition) TryForward(a Animation) error {
	if err := a.Validate(); err != nil {
		return err
	}
	return t.submit(a, Forward)
}

// TryBackward is Backward for callers that want to know whether the request
// was accepted. It never blocks.
func (t *Transition) TryBackward(a Animation) error {
	if err := a.Validate(); err != nil {
		return err
	}
	return t.submit(a, Backward)
}

// Play submits a in direction d through the strict path.
func (t *Transition) Play(a Animation, d Direction) error {
	if d == Backward {
		return t.TryBackward(a)
	}
	return t.TryForward(a)
}

// submit mints the run token and queues the request in one step, so queue
// order always matches token order.
func (t *Transition) submit(a Animation, d Direction) error {
	t.pending.Add(1)
	ok := t.queue.push(func() request {
		return request{animation: a, direction: d, run: t.runs.mint(a, d)}
	})
	if !ok {
		t.pending.Add(-1)
		t.logger.Debug("request dropped", "direction", d, "animation", a)
		return ErrSchedulerUnavailable
	}
	return nil
}

// Close stops the scheduler and waits for it to exit.
func (t *Transition) Close() {
	t.cancel()
	<-t.done
}
