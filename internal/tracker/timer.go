package tracker

import "github.com/bilalayas/takipcim/internal/domain"

// Timer is the work timer: Idle -> Running <-> Paused -> Stopped -> Idle.
// The task bound at Start stays bound until Reset.
type Timer struct {
	acc   Accumulator
	state domain.TimerState
	task  domain.TaskRef
}

func NewTimer() *Timer {
	return &Timer{state: domain.TimerIdle}
}

// Start binds task and starts counting from zero. Only legal from Idle.
func (t *Timer) Start(task domain.TaskRef) (Subscription, error) {
	if t.state != domain.TimerIdle {
		return NoSubscription, domain.ErrTaskAlreadyBound
	}
	if task.ID == "" {
		return NoSubscription, domain.ErrNoTaskSelected
	}
	t.task = task
	t.state = domain.TimerRunning
	return t.acc.Start(), nil
}

// Pause is a no-op when already paused.
func (t *Timer) Pause() error {
	switch t.state {
	case domain.TimerRunning:
		t.acc.Pause()
		t.state = domain.TimerPaused
		return nil
	case domain.TimerPaused:
		return nil
	case domain.TimerStopped:
		return domain.ErrTimerStopped
	default:
		return domain.ErrTimerIdle
	}
}

// Resume is a no-op when already running and returns the live stream.
func (t *Timer) Resume() (Subscription, error) {
	switch t.state {
	case domain.TimerPaused:
		t.state = domain.TimerRunning
		return t.acc.Resume(), nil
	case domain.TimerRunning:
		return t.acc.Subscription(), nil
	case domain.TimerStopped:
		return NoSubscription, domain.ErrTimerStopped
	default:
		return NoSubscription, domain.ErrTimerIdle
	}
}

// Stop freezes the timer and returns the elapsed seconds. The value stays
// readable until Reset. Stopping a stopped timer returns the same value.
func (t *Timer) Stop() (int, error) {
	if t.state == domain.TimerIdle {
		return 0, domain.ErrTimerIdle
	}
	t.state = domain.TimerStopped
	return t.acc.Stop(), nil
}

// Reset zeroes the timer and clears the binding. Always legal.
func (t *Timer) Reset() {
	t.acc.Reset()
	t.state = domain.TimerIdle
	t.task = domain.TaskRef{}
}

func (t *Timer) Tick(sub Subscription) bool { return t.acc.Tick(sub) }
func (t *Timer) Resubscribe() Subscription  { return t.acc.Resubscribe() }
func (t *Timer) Subscription() Subscription { return t.acc.Subscription() }
func (t *Timer) State() domain.TimerState   { return t.state }
func (t *Timer) Task() domain.TaskRef       { return t.task }

func (t *Timer) Snapshot() domain.TimerSnapshot {
	return domain.TimerSnapshot{
		BoundTaskID:    t.task.ID,
		BoundTaskName:  t.task.Name,
		ElapsedSeconds: t.acc.Seconds(),
		Running:        t.acc.Running(),
		State:          t.state,
	}
}
