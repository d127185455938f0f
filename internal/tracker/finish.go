package tracker

import (
	"math"
	"time"

	"github.com/bilalayas/takipcim/internal/domain"
)

const (
	DefaultHoldStep  = 0.01
	HoldTickInterval = 30 * time.Millisecond
)

// HoldStepFor returns the per-tick progress step that completes a hold in d.
func HoldStepFor(d time.Duration) float64 {
	if d <= HoldTickInterval {
		return 1
	}
	return float64(HoldTickInterval) / float64(d)
}

// Finish is the two-click plus hold gesture. The first activation arms it,
// a second activation ends the session, a full hold ends it and marks the task done.
type Finish struct {
	holdTicks int
	holding   bool
	needed    int
	state     domain.FinishState
	tokens    tokens
}

// NewFinish builds the gesture with a per-tick hold step in (0,1].
func NewFinish(step float64) *Finish {
	if step <= 0 || step > 1 {
		step = DefaultHoldStep
	}
	return &Finish{
		// counting whole ticks keeps float drift from delaying completion by a tick
		needed: int(math.Ceil(1/step - 1e-9)),
		state:  domain.FinishIdle,
	}
}

// Activate handles a click. From Idle it arms; from Confirming it asks for a
// session commit and cancels any hold in progress.
func (f *Finish) Activate() domain.FinishOutcome {
	if f.state == domain.FinishIdle {
		f.state = domain.FinishConfirming
		return domain.FinishPending
	}
	f.clearHold()
	return domain.FinishEndSession
}

// PressHold starts the hold. Pressing while already holding keeps the current hold.
func (f *Finish) PressHold() (Subscription, error) {
	if f.state != domain.FinishConfirming {
		return NoSubscription, domain.ErrFinishNotArmed
	}
	if f.holding {
		return f.tokens.current(), nil
	}
	f.holding = true
	f.holdTicks = 0
	return f.tokens.issue(), nil
}

// HoldTick advances the hold. It returns FinishMarkComplete exactly once,
// on the tick that reaches full progress.
func (f *Finish) HoldTick(sub Subscription) domain.FinishOutcome {
	if !f.holding || !f.tokens.valid(sub) {
		return domain.FinishPending
	}
	f.holdTicks++
	if f.holdTicks < f.needed {
		return domain.FinishPending
	}
	f.holding = false
	f.tokens.cancel()
	return domain.FinishMarkComplete
}

// ReleaseHold cancels an unfinished hold. The gesture stays armed.
func (f *Finish) ReleaseHold() {
	f.clearHold()
}

// Blur disarms the gesture unless a hold is in progress.
func (f *Finish) Blur() bool {
	if f.state != domain.FinishConfirming || f.holding {
		return false
	}
	f.state = domain.FinishIdle
	f.clearHold()
	return true
}

// Done returns to Idle after a successful commit.
func (f *Finish) Done() {
	f.state = domain.FinishIdle
	f.clearHold()
}

// Rearm returns to Confirming after a failed commit so the user can retry.
func (f *Finish) Rearm() {
	f.state = domain.FinishConfirming
	f.clearHold()
}

func (f *Finish) Reset() { f.Done() }

func (f *Finish) clearHold() {
	f.holding = false
	f.holdTicks = 0
	f.tokens.cancel()
}

func (f *Finish) Subscription() Subscription { return f.tokens.current() }

func (f *Finish) Snapshot() domain.FinishSnapshot {
	progress := 0.0
	if f.needed > 0 {
		progress = min(1, float64(f.holdTicks)/float64(f.needed))
	}
	return domain.FinishSnapshot{
		Holding:  f.holding,
		Progress: progress,
		State:    f.state,
	}
}
