package tracker

import (
	"github.com/bilalayas/takipcim/internal/domain"
	"github.com/bilalayas/takipcim/internal/ports"
)

// Break tracks one break at a time. Elapsed time comes from the wall clock.
type Break struct {
	limit *int // seconds
	on    bool
	task  domain.TaskRef
	wall  *WallClock
}

func NewBreak(clock ports.Clock) *Break {
	return &Break{wall: NewWallClock(clock)}
}

// Start begins a break, optionally limited to limitSeconds, attributed to task.
func (b *Break) Start(limitSeconds *int, task domain.TaskRef) (Subscription, error) {
	if b.on {
		return NoSubscription, domain.ErrAlreadyOnBreak
	}
	b.on = true
	b.task = task
	b.limit = nil
	if limitSeconds != nil {
		limit := *limitSeconds
		b.limit = &limit
	}
	return b.wall.Start(), nil
}

// Expired reports whether a limited break has reached its limit.
func (b *Break) Expired() bool {
	return b.on && b.limit != nil && b.wall.Elapsed() >= *b.limit
}

// Attribution is the task the break session is recorded against.
func (b *Break) Attribution() domain.TaskRef {
	if b.task.ID == "" {
		return domain.TaskRef{ID: domain.BreakTaskID, Name: domain.BreakTaskName}
	}
	return domain.TaskRef{ID: b.task.ID, Name: domain.BreakTaskName}
}

func (b *Break) Reset() {
	b.on = false
	b.limit = nil
	b.task = domain.TaskRef{}
	b.wall.Reset()
}

func (b *Break) Elapsed() int               { return b.wall.Elapsed() }
func (b *Break) On() bool                   { return b.on }
func (b *Break) Resubscribe() Subscription  { return b.wall.Resubscribe() }
func (b *Break) Subscription() Subscription { return b.wall.Subscription() }
func (b *Break) Tick(sub Subscription) bool { return b.on && b.wall.Tick(sub) }

func (b *Break) Snapshot() domain.BreakSnapshot {
	if !b.on {
		return domain.BreakSnapshot{State: domain.BreakOff}
	}
	snap := domain.BreakSnapshot{
		ElapsedSeconds: b.wall.Elapsed(),
		StartedAt:      b.wall.StartedAt(),
		State:          domain.BreakOn,
	}
	if b.limit != nil {
		limit := *b.limit
		snap.LimitSeconds = &limit
	}
	return snap
}
