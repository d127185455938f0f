package domain

import "time"

// TimerState is the work timer's lifecycle state
type TimerState string

const (
	TimerIdle    TimerState = "idle"
	TimerPaused  TimerState = "paused"
	TimerRunning TimerState = "running"
	TimerStopped TimerState = "stopped" // frozen, waiting for commit
)

// TimerSnapshot is the read model of the work timer.
type TimerSnapshot struct {
	BoundTaskID    string
	BoundTaskName  string
	ElapsedSeconds int
	Running        bool
	State          TimerState
}

// Bound reports whether a task is attached to the timer.
func (s TimerSnapshot) Bound() bool {
	return s.BoundTaskID != ""
}

// Task returns the bound task reference.
func (s TimerSnapshot) Task() TaskRef {
	return TaskRef{ID: s.BoundTaskID, Name: s.BoundTaskName}
}

// BreakState is either working or on a break
type BreakState string

const (
	BreakOff BreakState = "work"
	BreakOn  BreakState = "on_break"
)

// BreakSnapshot is the read model of the break timer.
// ElapsedSeconds is computed from the wall clock at the time the snapshot was taken.
type BreakSnapshot struct {
	ElapsedSeconds int
	LimitSeconds   *int // nil for an open-ended break
	StartedAt      time.Time
	State          BreakState
}

// OnBreak reports whether a break is in progress.
func (s BreakSnapshot) OnBreak() bool {
	return s.State == BreakOn
}

// Remaining returns the seconds left on a time-boxed break.
// ok is false for open-ended breaks or when not on a break.
func (s BreakSnapshot) Remaining() (seconds int, ok bool) {
	if !s.OnBreak() || s.LimitSeconds == nil {
		return 0, false
	}
	return max(0, *s.LimitSeconds-s.ElapsedSeconds), true
}

// FinishState is the state of the finish confirmation gesture
type FinishState string

const (
	FinishIdle       FinishState = "idle"
	FinishConfirming FinishState = "confirming"
)

// FinishOutcome tells the caller what a finish gesture resolved to
type FinishOutcome int

const (
	FinishPending      FinishOutcome = iota // nothing to commit yet
	FinishEndSession                        // commit the work session only
	FinishMarkComplete                      // commit the work session and mark the task done
)

func (o FinishOutcome) String() string {
	switch o {
	case FinishEndSession:
		return "end_session"
	case FinishMarkComplete:
		return "mark_complete"
	default:
		return "pending"
	}
}

// FinishSnapshot is the read model of the finish gesture.
type FinishSnapshot struct {
	Holding  bool
	Progress float64 // hold progress in [0,1]
	State    FinishState
}
