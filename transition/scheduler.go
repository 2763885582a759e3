package transition

import (
	"context"
	"sync"
	"time"
)

type request struct {
	animation Animation
	direction Direction
	run       *Run
}

// queue is an unbounded FIFO of requests with a single consumer.
type queue struct {
	mu     sync.Mutex
	items  []request
	closed bool
	wake   chan struct{}
}

func newQueue() *queue {
	return &queue{wake: make(chan struct{}, 1)}
}

// push appends the request built by mk. mk runs under the queue lock, so
// requests are queued in the order they were built. push never blocks and
// reports false, without calling mk, once the queue has been closed.
func (q *queue) push(mk func() request) bool {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return false
	}
	q.items = append(q.items, mk())
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}
	return true
}

// pop blocks until a request is available or ctx is done.
func (q *queue) pop(ctx context.Context) (request, bool) {
	for {
		q.mu.Lock()
		if len(q.items) > 0 {
			r := q.items[0]
			q.items[0] = request{}
			q.items = q.items[1:]
			q.mu.Unlock()
			return r, true
		}
		q.mu.Unlock()

		select {
		case <-ctx.Done():
			return request{}, false
		case <-q.wake:
		}
	}
}

// close rejects further pushes and returns the number of requests dropped.
func (q *queue) close() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	dropped := len(q.items)
	q.closed = true
	q.items = nil
	return dropped
}

// loop drains the queue one request at a time until ctx is done.
func (t *Transition) loop(ctx context.Context) {
	defer close(t.done)
	defer func() {
		t.pending.Add(-int64(t.queue.close()))
	}()

	t.logger.Debug("scheduler started", "tick", t.tick)
	for {
		req, ok := t.queue.pop(ctx)
		if !ok {
			t.logger.Debug("scheduler stopped")
			return
		}
		t.play(ctx, req)
		t.pending.Add(-1)
	}
}

// stepFunc returns the value to publish after elapsed time, or false when
// the frame publishes nothing.
type stepFunc func(elapsed time.Duration) (float64, bool)

func (t *Transition) stepper(a Animation, d Direction) stepFunc {
	origin, delta := t.start, t.end-t.start
	if d == Backward {
		origin, delta = t.end, t.start-t.end
	}

	switch a.Kind {
	case KindLinear, KindCubic, KindSine:
		curve, ok := CurveFor(a.Kind, a.Easing)
		if !ok {
			curve, _ = CurveFor(a.Kind, EaseInOut)
		}
		duration := a.Duration.Seconds()
		return func(elapsed time.Duration) (float64, bool) {
			return Tween(curve, elapsed.Seconds(), origin, delta, duration), true
		}
	case KindSpring:
		s := newSpringStepper(a.Easing, t.tick, a.Duration, origin, origin+delta)
		return func(elapsed time.Duration) (float64, bool) {
			return s.step(elapsed), true
		}
	default:
		// Bounce does not interpolate yet.
		return func(time.Duration) (float64, bool) {
			return 0, false
		}
	}
}

// play runs one request's tick loop. It returns when the run completes, when
// a newer run has superseded it, or when ctx is done.
func (t *Transition) play(ctx context.Context, req request) {
	a := req.animation
	if a.Duration < t.tick {
		a.Duration = t.tick
	}
	step := t.stepper(a, req.direction)
	logger := t.logger.With("run", req.run.ID, "gen", req.run.Gen, "direction", req.direction, "animation", a)
	logger.Debug("run started")

	ticker := time.NewTicker(t.tick)
	defer ticker.Stop()

	active := t.runs.current()
	var frames int64
	for {
		latest := t.runs.current()
		if active != nil && active != latest {
			logger.Debug("run superseded", "frames", frames)
			return
		}
		active = latest

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
		frames++

		elapsed := time.Duration(frames) * t.tick
		if v, ok := step(elapsed); ok {
			t.value.store(v)
			t.redraw()
		}

		if elapsed >= a.Duration {
			if t.runs.finish(active) {
				logger.Debug("run completed", "frames", frames, "value", t.value.load())
			} else {
				logger.Debug("run completed behind a newer run", "frames", frames)
			}
			return
		}
	}
}
