package tracker

import (
	"time"

	"github.com/bilalayas/takipcim/internal/ports"
)

// Accumulator counts whole seconds by ticks: every accepted tick adds exactly one.
type Accumulator struct {
	running bool
	seconds int
	tokens  tokens
}

// Start resets the count to zero and begins a new tick stream.
func (a *Accumulator) Start() Subscription {
	a.seconds = 0
	a.running = true
	return a.tokens.issue()
}

// Pause freezes the count and ends the tick stream.
func (a *Accumulator) Pause() {
	a.running = false
	a.tokens.cancel()
}

// Resume continues counting. Resuming a running accumulator keeps its stream.
func (a *Accumulator) Resume() Subscription {
	if a.running {
		return a.tokens.current()
	}
	a.running = true
	return a.tokens.issue()
}

// Resubscribe replaces the tick stream of a running accumulator.
func (a *Accumulator) Resubscribe() Subscription {
	if !a.running {
		return NoSubscription
	}
	return a.tokens.issue()
}

// Stop freezes the count and returns it without clearing it.
func (a *Accumulator) Stop() int {
	a.Pause()
	return a.seconds
}

// Reset zeroes the count.
func (a *Accumulator) Reset() {
	a.Pause()
	a.seconds = 0
}

// Tick adds one second if sub is the live stream.
func (a *Accumulator) Tick(sub Subscription) bool {
	if !a.running || !a.tokens.valid(sub) {
		return false
	}
	a.seconds++
	return true
}

func (a *Accumulator) Running() bool              { return a.running }
func (a *Accumulator) Seconds() int               { return a.seconds }
func (a *Accumulator) Subscription() Subscription { return a.tokens.current() }

// WallClock measures elapsed time as the difference between now and a start
// instant, so ticks only trigger evaluation and never carry time themselves.
type WallClock struct {
	clock     ports.Clock
	startedAt time.Time
	tokens    tokens
}

func NewWallClock(clock ports.Clock) *WallClock {
	return &WallClock{clock: clock}
}

// Start records now as the start instant and begins a new tick stream.
func (w *WallClock) Start() Subscription {
	w.startedAt = w.clock.Now()
	return w.tokens.issue()
}

// Elapsed returns floor(now - start) in seconds, or 0 when not started.
func (w *WallClock) Elapsed() int {
	if w.startedAt.IsZero() {
		return 0
	}
	d := w.clock.Now().Sub(w.startedAt)
	if d < 0 {
		return 0
	}
	return int(d / time.Second)
}

// Resubscribe replaces the tick stream without touching the start instant.
func (w *WallClock) Resubscribe() Subscription {
	if w.startedAt.IsZero() {
		return NoSubscription
	}
	return w.tokens.issue()
}

func (w *WallClock) Reset() {
	w.startedAt = time.Time{}
	w.tokens.cancel()
}

// Tick reports whether sub is the live stream of a started clock.
func (w *WallClock) Tick(sub Subscription) bool {
	return !w.startedAt.IsZero() && w.tokens.valid(sub)
}

func (w *WallClock) StartedAt() time.Time       { return w.startedAt }
func (w *WallClock) Subscription() Subscription { return w.tokens.current() }
