package tracker

import (
	"context"
	"errors"
	"fmt"

	"github.com/bilalayas/takipcim/internal/domain"
	"github.com/bilalayas/takipcim/internal/logging"
	"github.com/bilalayas/takipcim/internal/ports"
)

// Options tunes a Tracker
type Options struct {
	HoldStep float64 // progress per HoldTickInterval; DefaultHoldStep when zero
}

// Tracker orchestrates the work timer, the break timer and the finish gesture,
// and turns elapsed time into ledger sessions.
//
// A Tracker belongs to a single event loop and is not safe for concurrent use.
type Tracker struct {
	brk          *Break
	clock        ports.Clock
	committing   bool
	finish       *Finish
	ledger       ports.Ledger
	selected     domain.TaskRef
	tasks        ports.TaskDirectory
	timer        *Timer
	workAppended bool // the stopped interval is already in the ledger
}

// New creates a Tracker
func New(ledger ports.Ledger, tasks ports.TaskDirectory, clock ports.Clock, opts Options) *Tracker {
	return &Tracker{
		brk:    NewBreak(clock),
		clock:  clock,
		finish: NewFinish(opts.HoldStep),
		ledger: ledger,
		tasks:  tasks,
		timer:  NewTimer(),
	}
}

// Timer returns the work timer read model
func (t *Tracker) Timer() domain.TimerSnapshot { return t.timer.Snapshot() }

// Break returns the break read model
func (t *Tracker) Break() domain.BreakSnapshot { return t.brk.Snapshot() }

// Finish returns the finish gesture read model
func (t *Tracker) Finish() domain.FinishSnapshot { return t.finish.Snapshot() }

func (t *Tracker) WorkSubscription() Subscription  { return t.timer.Subscription() }
func (t *Tracker) BreakSubscription() Subscription { return t.brk.Subscription() }
func (t *Tracker) HoldSubscription() Subscription  { return t.finish.Subscription() }

// Resubscribe replaces the work and break tick streams. A new event loop taking
// over the tracker calls it so that ticks scheduled by the old loop go stale.
func (t *Tracker) Resubscribe() (work, brk Subscription) {
	t.finish.ReleaseHold()
	return t.timer.Resubscribe(), t.brk.Resubscribe()
}

// SelectedTask returns the bound task while one is bound, otherwise the selection
func (t *Tracker) SelectedTask() (domain.TaskRef, bool) {
	if task := t.timer.Task(); task.ID != "" {
		return task, true
	}
	return t.selected, t.selected.ID != ""
}

// Select chooses the task the next Start will bind
func (t *Tracker) Select(ctx context.Context, taskID string) error {
	if t.timer.State() != domain.TimerIdle {
		return domain.ErrTaskAlreadyBound
	}
	task, err := t.tasks.GetTask(ctx, taskID)
	if err != nil {
		return fmt.Errorf("failed to select task: %w", err)
	}
	t.selected = task.Ref()
	logging.Logger.Debug("Task selected", "task_id", task.ID, "name", task.Name)
	return nil
}

// Start binds a task and starts the work timer. An empty taskID starts the selected task.
func (t *Tracker) Start(ctx context.Context, taskID string) (Subscription, error) {
	if t.brk.On() {
		return NoSubscription, domain.ErrOnBreak
	}
	if t.timer.State() != domain.TimerIdle {
		return NoSubscription, domain.ErrTaskAlreadyBound
	}
	if taskID == "" {
		taskID = t.selected.ID
	}
	if taskID == "" {
		return NoSubscription, domain.ErrNoTaskSelected
	}

	task, err := t.tasks.GetTask(ctx, taskID)
	if err != nil {
		return NoSubscription, fmt.Errorf("failed to start timer: %w", err)
	}

	sub, err := t.timer.Start(task.Ref())
	if err != nil {
		return NoSubscription, err
	}
	t.selected = task.Ref()
	t.finish.Reset()

	logging.Logger.Info("Work timer started", "task_id", task.ID, "name", task.Name)
	return sub, nil
}

func (t *Tracker) Pause() error {
	return t.timer.Pause()
}

func (t *Tracker) Resume() (Subscription, error) {
	return t.timer.Resume()
}

// TogglePause pauses a running timer or resumes a paused one
func (t *Tracker) TogglePause() (Subscription, error) {
	if t.timer.State() == domain.TimerRunning {
		return NoSubscription, t.timer.Pause()
	}
	return t.timer.Resume()
}

// Stop freezes the work timer. The interval is committed by the finish gesture or a break.
func (t *Tracker) Stop() (int, error) {
	return t.timer.Stop()
}

// Reset discards the current work interval without recording it
func (t *Tracker) Reset() {
	if d := t.timer.Snapshot().ElapsedSeconds; d > 0 && !t.workAppended {
		logging.Logger.Info("Discarding uncommitted work", "task_id", t.timer.Task().ID, "seconds", d)
	}
	t.timer.Reset()
	t.finish.Reset()
	t.workAppended = false
}

// WorkTick applies one second to the work timer if sub is its live stream
func (t *Tracker) WorkTick(sub Subscription) bool {
	return t.timer.Tick(sub)
}

// StartBreak commits any work in progress and starts a break.
// limitMinutes nil means an open-ended break.
func (t *Tracker) StartBreak(ctx context.Context, limitMinutes *int) (Subscription, error) {
	if t.committing {
		return NoSubscription, domain.ErrCommitInProgress
	}
	if t.brk.On() {
		return NoSubscription, domain.ErrAlreadyOnBreak
	}
	var limitSeconds *int
	if limitMinutes != nil {
		if *limitMinutes <= 0 {
			return NoSubscription, domain.ErrInvalidBreakLimit
		}
		seconds := *limitMinutes * 60
		limitSeconds = &seconds
	}

	task, _ := t.SelectedTask()
	if t.timer.State() != domain.TimerIdle {
		if err := t.commitWork(ctx, false); err != nil {
			return NoSubscription, err
		}
	}
	t.finish.Reset()

	sub, err := t.brk.Start(limitSeconds, task)
	if err != nil {
		return NoSubscription, err
	}
	logging.Logger.Info("Break started", "task_id", task.ID, "limit_seconds", limitSeconds)
	return sub, nil
}

// EndBreak records the break and returns to work mode. No-op when not on a break.
func (t *Tracker) EndBreak(ctx context.Context) error {
	if !t.brk.On() {
		return nil
	}
	if t.committing {
		return domain.ErrCommitInProgress
	}
	t.committing = true
	defer func() { t.committing = false }()

	if elapsed := t.brk.Elapsed(); elapsed > 0 {
		session := domain.NewSession(t.brk.Attribution(), domain.SessionBreak, elapsed, t.clock.Now())
		if err := t.ledger.Append(ctx, session); err != nil {
			logging.Logger.Error("Failed to record break", "error", err, "seconds", elapsed)
			return fmt.Errorf("failed to record break: %w", err)
		}
		logging.Logger.Info("Break recorded", "task_id", session.TaskID, "seconds", elapsed)
	}
	t.brk.Reset()
	return nil
}

// BreakTick evaluates break expiry. It returns true when the tick ended the break.
func (t *Tracker) BreakTick(ctx context.Context, sub Subscription) (bool, error) {
	if !t.brk.Tick(sub) || !t.brk.Expired() {
		return false, nil
	}
	logging.Logger.Debug("Break limit reached")
	if err := t.EndBreak(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// ActivateFinish handles a click on finish. The first click arms the gesture,
// the second commits the work session without marking the task done.
func (t *Tracker) ActivateFinish(ctx context.Context) (domain.FinishOutcome, error) {
	if t.committing {
		return domain.FinishPending, domain.ErrCommitInProgress
	}
	if t.timer.State() == domain.TimerIdle {
		return domain.FinishPending, domain.ErrTimerIdle
	}

	outcome := t.finish.Activate()
	if outcome != domain.FinishEndSession {
		return outcome, nil
	}
	return t.completeFinish(ctx, outcome)
}

// PressHold starts (or keeps alive) the hold-to-complete gesture
func (t *Tracker) PressHold() (Subscription, error) {
	if t.timer.State() == domain.TimerIdle {
		return NoSubscription, domain.ErrTimerIdle
	}
	return t.finish.PressHold()
}

// HoldTick advances the hold; on the completing tick the session is committed
// and the task is marked done for today.
func (t *Tracker) HoldTick(ctx context.Context, sub Subscription) (domain.FinishOutcome, error) {
	if t.committing {
		return domain.FinishPending, domain.ErrCommitInProgress
	}
	outcome := t.finish.HoldTick(sub)
	if outcome != domain.FinishMarkComplete {
		return outcome, nil
	}
	return t.completeFinish(ctx, outcome)
}

func (t *Tracker) ReleaseHold() { t.finish.ReleaseHold() }

// BlurFinish disarms the finish gesture when no hold is in progress
func (t *Tracker) BlurFinish() bool { return t.finish.Blur() }

func (t *Tracker) completeFinish(ctx context.Context, outcome domain.FinishOutcome) (domain.FinishOutcome, error) {
	if err := t.commitWork(ctx, outcome == domain.FinishMarkComplete); err != nil {
		t.finish.Rearm()
		return domain.FinishPending, err
	}
	t.finish.Done()
	t.selected = domain.TaskRef{}
	return outcome, nil
}

// commitWork stops the timer, appends the work session and optionally marks
// the task complete, and only then resets. On failure the timer stays stopped
// with its duration so the commit can be retried.
func (t *Tracker) commitWork(ctx context.Context, complete bool) error {
	if t.committing {
		return domain.ErrCommitInProgress
	}
	t.committing = true
	defer func() { t.committing = false }()

	seconds, err := t.timer.Stop()
	if err != nil {
		return err
	}
	task := t.timer.Task()
	now := t.clock.Now()

	if seconds > 0 && !t.workAppended {
		session := domain.NewSession(task, domain.SessionWork, seconds, now)
		if err := t.ledger.Append(ctx, session); err != nil {
			logging.Logger.Error("Failed to record work", "error", err, "task_id", task.ID, "seconds", seconds)
			return fmt.Errorf("failed to record work session: %w", err)
		}
		t.workAppended = true
		logging.Logger.Info("Work recorded", "task_id", task.ID, "seconds", seconds)
	}

	if complete {
		date := domain.DateOf(now)
		if err := t.ledger.SetCompletion(ctx, task.ID, date, true); err != nil {
			logging.Logger.Error("Failed to mark task complete", "error", err, "task_id", task.ID, "date", date)
			return fmt.Errorf("failed to mark task complete: %w", err)
		}
		logging.Logger.Info("Task completed", "task_id", task.ID, "date", date)
	}

	t.timer.Reset()
	t.workAppended = false
	return nil
}

// IsTransitionError reports whether err is a rejected state transition rather than a failure
func IsTransitionError(err error) bool {
	return errors.Is(err, domain.ErrIllegalTransition) ||
		errors.Is(err, domain.ErrNoTaskSelected) ||
		errors.Is(err, domain.ErrInvalidBreakLimit)
}
