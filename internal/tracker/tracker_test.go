package tracker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bilalayas/takipcim/internal/adapters/clock"
	"github.com/bilalayas/takipcim/internal/domain"
	portsmocks "github.com/bilalayas/takipcim/internal/ports/mocks"
)

const today = "2026-10-17"

type fixture struct {
	clock  *clock.Manual
	ledger *portsmocks.MockLedger
	tasks  *portsmocks.MockTaskDirectory
	tr     *Tracker
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		clock:  clock.NewManual(time.Date(2026, 10, 17, 9, 0, 0, 0, time.Local)),
		ledger: portsmocks.NewMockLedger(t),
		tasks:  portsmocks.NewMockTaskDirectory(t),
	}
	f.tr = New(f.ledger, f.tasks, f.clock, Options{})
	return f
}

func (f *fixture) knowTask(ref domain.TaskRef) {
	f.tasks.EXPECT().GetTask(mock.Anything, ref.ID).
		Return(&domain.Task{ID: ref.ID, Name: ref.Name}, nil).Maybe()
}

// work starts ref and delivers n one-second ticks
func (f *fixture) work(t *testing.T, ref domain.TaskRef, n int) Subscription {
	t.Helper()
	f.knowTask(ref)
	sub, err := f.tr.Start(context.Background(), ref.ID)
	require.NoError(t, err)
	for range n {
		f.clock.Advance(time.Second)
		require.True(t, f.tr.WorkTick(sub))
	}
	return sub
}

// expectAppend records every appended session
func (f *fixture) expectAppend() *[]domain.Session {
	var appended []domain.Session
	f.ledger.EXPECT().Append(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, s domain.Session) error {
			appended = append(appended, s)
			return nil
		})
	return &appended
}

func TestStartUsesSelection(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.knowTask(taskA)

	_, err := f.tr.Start(ctx, "")
	assert.ErrorIs(t, err, domain.ErrNoTaskSelected)

	require.NoError(t, f.tr.Select(ctx, taskA.ID))
	sel, ok := f.tr.SelectedTask()
	require.True(t, ok)
	assert.Equal(t, taskA, sel)

	_, err = f.tr.Start(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, taskA, f.tr.Timer().Task())
}

func TestSelectWhileBoundIsRejected(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.work(t, taskA, 2)

	err := f.tr.Select(ctx, taskB.ID)
	assert.ErrorIs(t, err, domain.ErrTaskAlreadyBound)

	_, err = f.tr.Start(ctx, taskB.ID)
	assert.ErrorIs(t, err, domain.ErrTaskAlreadyBound)

	sel, _ := f.tr.SelectedTask()
	assert.Equal(t, taskA, sel)
}

func TestSelectUnknownTask(t *testing.T) {
	f := newFixture(t)
	f.tasks.EXPECT().GetTask(mock.Anything, "missing").Return(nil, domain.ErrTaskNotFound)

	err := f.tr.Select(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
	_, ok := f.tr.SelectedTask()
	assert.False(t, ok)
}

func TestPauseResumeIsTimeNeutral(t *testing.T) {
	f := newFixture(t)
	sub := f.work(t, taskA, 3)

	require.NoError(t, f.tr.Pause())
	require.NoError(t, f.tr.Pause())
	f.clock.Advance(10 * time.Second)
	assert.False(t, f.tr.WorkTick(sub))

	sub, err := f.tr.Resume()
	require.NoError(t, err)
	for range 4 {
		assert.True(t, f.tr.WorkTick(sub))
	}

	_, err = f.tr.TogglePause()
	require.NoError(t, err)
	assert.Equal(t, domain.TimerPaused, f.tr.Timer().State)
	sub, err = f.tr.TogglePause()
	require.NoError(t, err)
	assert.True(t, f.tr.WorkTick(sub))

	assert.Equal(t, 8, f.tr.Timer().ElapsedSeconds)
}

func TestStopThenResetWithoutTicksAppendsNothing(t *testing.T) {
	f := newFixture(t)
	f.work(t, taskA, 0)

	d, err := f.tr.Stop()
	require.NoError(t, err)
	assert.Equal(t, 0, d)

	f.tr.Reset()
	assert.Equal(t, 0, f.tr.Timer().ElapsedSeconds)
	assert.Equal(t, domain.TimerIdle, f.tr.Timer().State)
	f.ledger.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestResetFromIdleIsNoop(t *testing.T) {
	f := newFixture(t)
	before := f.tr.Timer()

	f.tr.Reset()

	assert.Equal(t, before, f.tr.Timer())
}

func TestStartBreakCommitsWork(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	appended := f.expectAppend()
	f.work(t, taskA, 42)

	_, err := f.tr.StartBreak(ctx, nil)
	require.NoError(t, err)

	require.Len(t, *appended, 1)
	s := (*appended)[0]
	assert.Equal(t, domain.SessionWork, s.Type)
	assert.Equal(t, 42, s.Duration)
	assert.Equal(t, taskA.ID, s.TaskID)
	assert.Equal(t, taskA.Name, s.TaskName)
	assert.Equal(t, today, s.Date)

	timer := f.tr.Timer()
	assert.Equal(t, 0, timer.ElapsedSeconds)
	assert.Equal(t, domain.TimerIdle, timer.State)
	assert.True(t, f.tr.Break().OnBreak())
}

func TestStartBreakFromPausedAndStopped(t *testing.T) {
	for _, stop := range []bool{false, true} {
		f := newFixture(t)
		appended := f.expectAppend()
		f.work(t, taskA, 5)
		if stop {
			_, err := f.tr.Stop()
			require.NoError(t, err)
		} else {
			require.NoError(t, f.tr.Pause())
		}

		_, err := f.tr.StartBreak(context.Background(), nil)
		require.NoError(t, err)
		require.Len(t, *appended, 1)
		assert.Equal(t, 5, (*appended)[0].Duration)
	}
}

func TestStartBreakValidation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	zero := 0
	_, err := f.tr.StartBreak(ctx, &zero)
	assert.ErrorIs(t, err, domain.ErrInvalidBreakLimit)

	_, err = f.tr.StartBreak(ctx, nil)
	require.NoError(t, err)

	_, err = f.tr.StartBreak(ctx, nil)
	assert.ErrorIs(t, err, domain.ErrAlreadyOnBreak)

	f.knowTask(taskA)
	_, err = f.tr.Start(ctx, taskA.ID)
	assert.ErrorIs(t, err, domain.ErrOnBreak)
}

func TestBreakExpiryRecordsElapsedNotLimit(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	appended := f.expectAppend()
	f.work(t, taskA, 10)

	limit := 1
	sub, err := f.tr.StartBreak(ctx, &limit)
	require.NoError(t, err)
	require.Len(t, *appended, 1)

	f.clock.Advance(59 * time.Second)
	ended, err := f.tr.BreakTick(ctx, sub)
	require.NoError(t, err)
	assert.False(t, ended)

	// the tick arrives late and overshoots the limit
	f.clock.Advance(1500 * time.Millisecond)
	ended, err = f.tr.BreakTick(ctx, sub)
	require.NoError(t, err)
	assert.True(t, ended)

	require.Len(t, *appended, 2)
	s := (*appended)[1]
	assert.Equal(t, domain.SessionBreak, s.Type)
	assert.Equal(t, 60, s.Duration)
	assert.Equal(t, taskA.ID, s.TaskID)
	assert.Equal(t, domain.BreakTaskName, s.TaskName)

	assert.False(t, f.tr.Break().OnBreak())

	f.clock.Advance(time.Minute)
	ended, err = f.tr.BreakTick(ctx, sub)
	require.NoError(t, err)
	assert.False(t, ended)
	assert.Len(t, *appended, 2)
}

func TestBreakExpiryWithoutTaskUsesSentinel(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	appended := f.expectAppend()

	limit := 5
	sub, err := f.tr.StartBreak(ctx, &limit)
	require.NoError(t, err)

	f.clock.Advance(5 * time.Minute)
	ended, err := f.tr.BreakTick(ctx, sub)
	require.NoError(t, err)
	require.True(t, ended)

	require.Len(t, *appended, 1)
	assert.Equal(t, domain.BreakTaskID, (*appended)[0].TaskID)
	assert.Equal(t, domain.BreakTaskName, (*appended)[0].TaskName)
	assert.Equal(t, 300, (*appended)[0].Duration)
}

func TestBreakAttributedToSelectedTask(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	appended := f.expectAppend()
	f.knowTask(taskB)
	require.NoError(t, f.tr.Select(ctx, taskB.ID))

	_, err := f.tr.StartBreak(ctx, nil)
	require.NoError(t, err)
	f.clock.Advance(90 * time.Second)
	require.NoError(t, f.tr.EndBreak(ctx))

	require.Len(t, *appended, 1)
	assert.Equal(t, taskB.ID, (*appended)[0].TaskID)
	assert.Equal(t, 90, (*appended)[0].Duration)
}

func TestEndBreak(t *testing.T) {
	ctx := context.Background()

	t.Run("not on break is a noop", func(t *testing.T) {
		f := newFixture(t)
		require.NoError(t, f.tr.EndBreak(ctx))
	})

	t.Run("zero elapsed appends nothing", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.tr.StartBreak(ctx, nil)
		require.NoError(t, err)
		require.NoError(t, f.tr.EndBreak(ctx))
		assert.False(t, f.tr.Break().OnBreak())
	})

	t.Run("ledger failure keeps the break", func(t *testing.T) {
		f := newFixture(t)
		f.ledger.EXPECT().Append(mock.Anything, mock.Anything).Return(errors.New("disk full")).Once()
		_, err := f.tr.StartBreak(ctx, nil)
		require.NoError(t, err)
		f.clock.Advance(30 * time.Second)

		require.Error(t, f.tr.EndBreak(ctx))
		assert.True(t, f.tr.Break().OnBreak())
		assert.Equal(t, 30, f.tr.Break().ElapsedSeconds)

		f.ledger.EXPECT().Append(mock.Anything, mock.Anything).Return(nil).Once()
		require.NoError(t, f.tr.EndBreak(ctx))
		assert.False(t, f.tr.Break().OnBreak())
	})
}

func TestFirstFinishClickNeverCommits(t *testing.T) {
	f := newFixture(t)
	f.work(t, taskA, 12)

	outcome, err := f.tr.ActivateFinish(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.FinishPending, outcome)
	assert.Equal(t, domain.FinishConfirming, f.tr.Finish().State)
	assert.Equal(t, domain.TimerRunning, f.tr.Timer().State)
}

func TestSecondFinishClickEndsSession(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	appended := f.expectAppend()
	f.work(t, taskA, 12)

	_, err := f.tr.ActivateFinish(ctx)
	require.NoError(t, err)
	outcome, err := f.tr.ActivateFinish(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.FinishEndSession, outcome)

	require.Len(t, *appended, 1)
	assert.Equal(t, 12, (*appended)[0].Duration)
	f.ledger.AssertNotCalled(t, "SetCompletion", mock.Anything, mock.Anything, mock.Anything, mock.Anything)

	assert.Equal(t, domain.TimerIdle, f.tr.Timer().State)
	assert.Equal(t, domain.FinishIdle, f.tr.Finish().State)
	_, ok := f.tr.SelectedTask()
	assert.False(t, ok)
}

func TestHoldMarksComplete(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	appended := f.expectAppend()
	f.ledger.EXPECT().SetCompletion(mock.Anything, taskA.ID, today, true).Return(nil).Once()
	f.work(t, taskA, 20)

	_, err := f.tr.ActivateFinish(ctx)
	require.NoError(t, err)
	hold, err := f.tr.PressHold()
	require.NoError(t, err)

	for range 99 {
		outcome, err := f.tr.HoldTick(ctx, hold)
		require.NoError(t, err)
		require.Equal(t, domain.FinishPending, outcome)
	}
	assert.Empty(t, *appended)

	outcome, err := f.tr.HoldTick(ctx, hold)
	require.NoError(t, err)
	assert.Equal(t, domain.FinishMarkComplete, outcome)

	for range 5 {
		outcome, err = f.tr.HoldTick(ctx, hold)
		require.NoError(t, err)
		assert.Equal(t, domain.FinishPending, outcome)
	}

	require.Len(t, *appended, 1)
	assert.Equal(t, 20, (*appended)[0].Duration)
	assert.Equal(t, domain.TimerIdle, f.tr.Timer().State)
	assert.Equal(t, domain.FinishIdle, f.tr.Finish().State)
}

func TestReleasingHoldEarlyCommitsNothing(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.work(t, taskA, 20)

	_, err := f.tr.ActivateFinish(ctx)
	require.NoError(t, err)
	hold, err := f.tr.PressHold()
	require.NoError(t, err)
	for range 60 {
		_, err := f.tr.HoldTick(ctx, hold)
		require.NoError(t, err)
	}

	f.tr.ReleaseHold()

	fin := f.tr.Finish()
	assert.Equal(t, domain.FinishConfirming, fin.State)
	assert.Equal(t, 0.0, fin.Progress)
	outcome, err := f.tr.HoldTick(ctx, hold)
	require.NoError(t, err)
	assert.Equal(t, domain.FinishPending, outcome)
	assert.Equal(t, domain.TimerRunning, f.tr.Timer().State)
}

func TestFinishNeedsBoundTimer(t *testing.T) {
	f := newFixture(t)

	_, err := f.tr.ActivateFinish(context.Background())
	assert.ErrorIs(t, err, domain.ErrTimerIdle)
	_, err = f.tr.PressHold()
	assert.ErrorIs(t, err, domain.ErrTimerIdle)

	f.work(t, taskA, 1)
	_, err = f.tr.PressHold()
	assert.ErrorIs(t, err, domain.ErrFinishNotArmed)
}

func TestBlurFinish(t *testing.T) {
	f := newFixture(t)
	f.work(t, taskA, 1)
	_, err := f.tr.ActivateFinish(context.Background())
	require.NoError(t, err)

	assert.True(t, f.tr.BlurFinish())
	assert.Equal(t, domain.FinishIdle, f.tr.Finish().State)
}

func TestLedgerFailureKeepsStoppedDuration(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.work(t, taskA, 15)
	f.ledger.EXPECT().Append(mock.Anything, mock.Anything).Return(errors.New("database is locked")).Once()

	_, err := f.tr.ActivateFinish(ctx)
	require.NoError(t, err)
	_, err = f.tr.ActivateFinish(ctx)
	require.Error(t, err)

	timer := f.tr.Timer()
	assert.Equal(t, domain.TimerStopped, timer.State)
	assert.Equal(t, 15, timer.ElapsedSeconds)
	assert.Equal(t, taskA, timer.Task())
	assert.Equal(t, domain.FinishConfirming, f.tr.Finish().State)

	appended := f.expectAppend()
	outcome, err := f.tr.ActivateFinish(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.FinishEndSession, outcome)
	require.Len(t, *appended, 1)
	assert.Equal(t, 15, (*appended)[0].Duration)
	assert.Equal(t, domain.TimerIdle, f.tr.Timer().State)
}

func TestCompletionFailureDoesNotAppendTwice(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.work(t, taskA, 15)
	f.ledger.EXPECT().Append(mock.Anything, mock.Anything).Return(nil).Once()
	f.ledger.EXPECT().SetCompletion(mock.Anything, taskA.ID, today, true).Return(errors.New("boom")).Once()

	_, err := f.tr.ActivateFinish(ctx)
	require.NoError(t, err)
	hold, err := f.tr.PressHold()
	require.NoError(t, err)
	var outcome domain.FinishOutcome
	for outcome == domain.FinishPending && err == nil {
		outcome, err = f.tr.HoldTick(ctx, hold)
	}
	require.Error(t, err)
	assert.Equal(t, domain.TimerStopped, f.tr.Timer().State)
	assert.Equal(t, domain.FinishConfirming, f.tr.Finish().State)

	f.ledger.EXPECT().SetCompletion(mock.Anything, taskA.ID, today, true).Return(nil).Once()
	hold, err = f.tr.PressHold()
	require.NoError(t, err)
	outcome = domain.FinishPending
	for outcome == domain.FinishPending {
		outcome, err = f.tr.HoldTick(ctx, hold)
		require.NoError(t, err)
	}
	assert.Equal(t, domain.FinishMarkComplete, outcome)
	assert.Equal(t, domain.TimerIdle, f.tr.Timer().State)
}

func TestReentrantCommitIsRejected(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.work(t, taskA, 3)

	var nestedFinish, nestedBreak error
	f.ledger.EXPECT().Append(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, domain.Session) error {
			_, nestedFinish = f.tr.ActivateFinish(ctx)
			_, nestedBreak = f.tr.StartBreak(ctx, nil)
			return nil
		}).Once()

	_, err := f.tr.ActivateFinish(ctx)
	require.NoError(t, err)
	_, err = f.tr.ActivateFinish(ctx)
	require.NoError(t, err)

	assert.ErrorIs(t, nestedFinish, domain.ErrCommitInProgress)
	assert.ErrorIs(t, nestedBreak, domain.ErrCommitInProgress)
	assert.False(t, f.tr.Break().OnBreak())
	assert.Equal(t, domain.TimerIdle, f.tr.Timer().State)
}

func TestResubscribeInvalidatesOldStreams(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	old := f.work(t, taskA, 1)

	work, brk := f.tr.Resubscribe()
	assert.Equal(t, NoSubscription, brk)
	assert.False(t, f.tr.WorkTick(old))
	assert.True(t, f.tr.WorkTick(work))
	assert.Equal(t, work, f.tr.WorkSubscription())
	assert.Equal(t, 2, f.tr.Timer().ElapsedSeconds)

	f.expectAppend()
	oldBreak, err := f.tr.StartBreak(ctx, nil)
	require.NoError(t, err)
	_, brk = f.tr.Resubscribe()
	assert.NotEqual(t, oldBreak, brk)
	assert.Equal(t, brk, f.tr.BreakSubscription())
}

func TestIsTransitionError(t *testing.T) {
	assert.True(t, IsTransitionError(domain.ErrTimerIdle))
	assert.True(t, IsTransitionError(domain.ErrNoTaskSelected))
	assert.False(t, IsTransitionError(errors.New("disk full")))
}
