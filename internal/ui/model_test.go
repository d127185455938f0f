package ui

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bilalayas/takipcim/internal/adapters/clock"
	"github.com/bilalayas/takipcim/internal/adapters/storage"
	"github.com/bilalayas/takipcim/internal/config"
	"github.com/bilalayas/takipcim/internal/domain"
	"github.com/bilalayas/takipcim/internal/ports"
	portsmocks "github.com/bilalayas/takipcim/internal/ports/mocks"
	"github.com/bilalayas/takipcim/internal/services"
	"github.com/bilalayas/takipcim/internal/tracker"
)

const today = "2026-10-17"

type modelFixture struct {
	clock       *clock.Manual
	model       *Model
	repo        *storage.SQLiteRepository
	taskService *services.TaskService
	tracker     *tracker.Tracker
}

func newModelFixture(t *testing.T, settings *config.Settings) *modelFixture {
	t.Helper()

	repo, err := storage.NewSQLiteRepository(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	clk := clock.NewManual(time.Date(2026, 10, 17, 9, 0, 0, 0, time.Local))
	// two hold ticks complete the gesture
	tr := tracker.New(repo, repo, clk, tracker.Options{HoldStep: 0.5})
	taskService := services.NewTaskService(repo, repo, clk)
	summaryService := services.NewSummaryService(repo, repo, repo, clk)

	m := NewModel(tr, taskService, summaryService, settings, Options{
		SettingsPath: filepath.Join(t.TempDir(), "settings.json"),
	})
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	return &modelFixture{
		clock:       clk,
		model:       m,
		repo:        repo,
		taskService: taskService,
		tracker:     tr,
	}
}

func (f *modelFixture) planTask(t *testing.T, name string) *domain.Task {
	t.Helper()
	task, err := f.taskService.CreateTask(context.Background(), services.CreateTaskParams{Name: name, Date: today})
	require.NoError(t, err)
	return task
}

func (f *modelFixture) selectTask(t *testing.T, name string) *domain.Task {
	t.Helper()
	task := f.planTask(t, name)
	require.NoError(t, f.tracker.Select(context.Background(), task.ID))
	return task
}

func (f *modelFixture) press(k string) tea.Cmd {
	var msg tea.KeyMsg
	switch k {
	case " ":
		msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		msg = tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	_, cmd := f.model.Update(msg)
	return cmd
}

func (f *modelFixture) send(msg tea.Msg) tea.Cmd {
	_, cmd := f.model.Update(msg)
	return cmd
}

func (f *modelFixture) workTicks(n int) {
	for range n {
		f.send(workTickMsg{sub: f.tracker.WorkSubscription()})
	}
}

func (f *modelFixture) sessions(t *testing.T, sessionType domain.SessionType) []domain.Session {
	t.Helper()
	sessions, err := f.repo.ListSessions(context.Background(), ports.SessionFilter{Type: sessionType})
	require.NoError(t, err)
	return sessions
}

func TestModel_StartAndTick(t *testing.T) {
	f := newModelFixture(t, nil)
	f.selectTask(t, "Write report")

	cmd := f.press("s")
	require.NotNil(t, cmd)
	assert.Equal(t, domain.TimerRunning, f.tracker.Timer().State)

	f.workTicks(3)
	assert.Equal(t, 3, f.tracker.Timer().ElapsedSeconds)
	assert.Contains(t, f.model.View(), "Write report")
	assert.Contains(t, f.model.View(), "03")
}

func TestModel_PauseDropsStaleTicks(t *testing.T) {
	f := newModelFixture(t, nil)
	f.selectTask(t, "Write report")
	f.press("s")
	f.workTicks(2)

	stale := f.tracker.WorkSubscription()
	assert.Nil(t, f.press(" "))
	assert.Equal(t, domain.TimerPaused, f.tracker.Timer().State)

	assert.Nil(t, f.send(workTickMsg{sub: stale}))
	assert.Equal(t, 2, f.tracker.Timer().ElapsedSeconds)

	require.NotNil(t, f.press(" "))
	f.send(workTickMsg{sub: stale})
	assert.Equal(t, 2, f.tracker.Timer().ElapsedSeconds)

	f.workTicks(1)
	assert.Equal(t, 3, f.tracker.Timer().ElapsedSeconds)
}

func TestModel_FinishTwiceRecordsSession(t *testing.T) {
	f := newModelFixture(t, nil)
	task := f.selectTask(t, "Write report")
	f.press("s")
	f.workTicks(5)

	f.press("f")
	assert.Equal(t, domain.FinishConfirming, f.tracker.Finish().State)
	assert.Contains(t, f.model.View(), "Finish armed")

	f.press("f")
	assert.Equal(t, domain.TimerIdle, f.tracker.Timer().State)

	sessions := f.sessions(t, domain.SessionWork)
	require.Len(t, sessions, 1)
	assert.Equal(t, task.ID, sessions[0].TaskID)
	assert.Equal(t, 5, sessions[0].Duration)

	done, err := f.repo.GetCompletion(context.Background(), task.ID, today)
	require.NoError(t, err)
	assert.False(t, done)
}

func TestModel_OtherKeyDisarmsFinish(t *testing.T) {
	f := newModelFixture(t, nil)
	f.selectTask(t, "Write report")
	f.press("s")
	f.workTicks(1)

	f.press("f")
	f.press(" ")
	assert.Equal(t, domain.FinishIdle, f.tracker.Finish().State)

	f.press("f")
	assert.Empty(t, f.sessions(t, domain.SessionWork))
}

func TestModel_HoldMarksTaskDone(t *testing.T) {
	f := newModelFixture(t, nil)
	task := f.selectTask(t, "Write report")
	f.press("s")
	f.workTicks(4)

	f.press("f")
	require.NotNil(t, f.press("c"))
	require.True(t, f.tracker.Finish().Holding)

	sub := f.tracker.HoldSubscription()
	require.NotNil(t, f.send(holdTickMsg{sub: sub}))
	f.send(holdTickMsg{sub: sub})
	f.send(holdTickMsg{sub: sub})

	sessions := f.sessions(t, domain.SessionWork)
	require.Len(t, sessions, 1)
	assert.Equal(t, 4, sessions[0].Duration)

	done, err := f.repo.GetCompletion(context.Background(), task.ID, today)
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, domain.TimerIdle, f.tracker.Timer().State)
}

func TestModel_HoldReleasesAfterGrace(t *testing.T) {
	f := newModelFixture(t, nil)
	f.selectTask(t, "Write report")
	f.press("s")
	f.workTicks(1)
	f.press("f")

	f.press("c")
	first := f.model.holdSeq
	f.press("c") // key repeat
	require.True(t, f.tracker.Finish().Holding)

	f.send(holdReleaseMsg{seq: first})
	assert.True(t, f.tracker.Finish().Holding, "an older press must not release a live hold")

	f.send(holdReleaseMsg{seq: f.model.holdSeq})
	assert.False(t, f.tracker.Finish().Holding)
	assert.Equal(t, domain.FinishConfirming, f.tracker.Finish().State)
}

func TestModel_HoldGraceOutlastsKeyRepeatDelay(t *testing.T) {
	f := newModelFixture(t, nil)

	assert.Equal(t, DefaultHoldReleaseGrace, f.model.holdGrace)
	assert.Greater(t, f.model.holdGrace, 660*time.Millisecond)

	m := NewModel(f.tracker, f.taskService, nil, nil, Options{HoldReleaseGrace: 250 * time.Millisecond})
	assert.Equal(t, 250*time.Millisecond, m.holdGrace)
}

func TestModel_HoldBeforeArmingShowsError(t *testing.T) {
	f := newModelFixture(t, nil)
	f.selectTask(t, "Write report")
	f.press("s")

	f.press("c")
	assert.ErrorIs(t, f.model.errorManager.GetError(), domain.ErrFinishNotArmed)
}

func TestModel_BreakWithDefaultLength(t *testing.T) {
	ask := false
	f := newModelFixture(t, &config.Settings{AskBreakTimer: &ask})
	task := f.selectTask(t, "Write report")
	f.press("s")
	f.workTicks(7)

	require.NotNil(t, f.press("b"))
	require.True(t, f.tracker.Break().OnBreak())

	work := f.sessions(t, domain.SessionWork)
	require.Len(t, work, 1)
	assert.Equal(t, 7, work[0].Duration)

	f.clock.Advance(5 * time.Minute)
	f.send(breakTickMsg{sub: f.tracker.BreakSubscription()})

	assert.False(t, f.tracker.Break().OnBreak())
	breaks := f.sessions(t, domain.SessionBreak)
	require.Len(t, breaks, 1)
	assert.Equal(t, 300, breaks[0].Duration)
	assert.Equal(t, task.ID, breaks[0].TaskID)
	assert.Equal(t, domain.BreakTaskName, breaks[0].TaskName)
}

func TestModel_BreakAsksForLength(t *testing.T) {
	f := newModelFixture(t, nil)

	f.press("b")
	assert.Equal(t, stateBreakForm, f.model.state)
	assert.False(t, f.tracker.Break().OnBreak())

	f.press("esc")
	assert.Equal(t, stateTimer, f.model.state)
	assert.False(t, f.tracker.Break().OnBreak())
}

func TestModel_DisableBreakDialogPersists(t *testing.T) {
	f := newModelFixture(t, nil)

	require.NoError(t, f.model.disableBreakDialog())

	saved, err := config.LoadSettingsFrom(f.model.settingsPath)
	require.NoError(t, err)
	assert.False(t, saved.GetAskBreakTimer())
	assert.False(t, f.model.settings.GetAskBreakTimer())
}

func TestModel_QuitRefusesUnrecordedWork(t *testing.T) {
	f := newModelFixture(t, nil)
	f.selectTask(t, "Write report")
	f.press("s")
	f.workTicks(1)

	f.press("q")
	assert.ErrorIs(t, f.model.errorManager.GetError(), ErrUncommittedWork)
	assert.Equal(t, domain.TimerRunning, f.tracker.Timer().State)

	assert.NotNil(t, f.press("ctrl+c"))
}

func TestModel_StartWithoutSelectionOpensPicker(t *testing.T) {
	f := newModelFixture(t, nil)
	task := f.planTask(t, "Write report")

	cmd := f.press("s")
	require.NotNil(t, cmd)
	msg := cmd()
	require.IsType(t, tasksMsg{}, msg)

	f.send(msg)
	assert.Equal(t, stateTaskPicker, f.model.state)

	f.press("enter")
	assert.Equal(t, stateTimer, f.model.state)
	assert.Equal(t, domain.TimerRunning, f.tracker.Timer().State)
	assert.Equal(t, task.ID, f.tracker.Timer().BoundTaskID)
}

func TestModel_FreeWorkStartsTimer(t *testing.T) {
	f := newModelFixture(t, nil)

	require.NotNil(t, f.press("F"))

	snap := f.tracker.Timer()
	assert.Equal(t, domain.TimerRunning, snap.State)
	assert.Equal(t, domain.FreeWorkTaskName, snap.BoundTaskName)
}

func TestModel_InitResubscribes(t *testing.T) {
	f := newModelFixture(t, nil)
	f.selectTask(t, "Write report")
	f.press("s")
	f.workTicks(1)
	old := f.tracker.WorkSubscription()

	// a second loop taking over the same tracker
	other := NewModel(f.tracker, f.taskService, f.model.summaryService, nil, Options{})
	require.NotNil(t, other.Init())

	f.send(workTickMsg{sub: old})
	assert.Equal(t, 1, f.tracker.Timer().ElapsedSeconds)

	other.Update(workTickMsg{sub: f.tracker.WorkSubscription()})
	assert.Equal(t, 2, f.tracker.Timer().ElapsedSeconds)
}

func TestModel_SummaryMessage(t *testing.T) {
	f := newModelFixture(t, nil)

	f.send(summaryMsg{summary: domain.DaySummary{WorkSeconds: 3661, BreakSeconds: 300, CompletedTasks: 1, PlannedTasks: 3}})

	view := f.model.View()
	assert.Contains(t, view, "work 01:01:01")
	assert.Contains(t, view, "break 05:00")
	assert.Contains(t, view, "done 1/3")
}

// runCmd executes cmd and any batched commands it expands to
func runCmd(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	if batch, ok := cmd().(tea.BatchMsg); ok {
		for _, c := range batch {
			runCmd(c)
		}
	}
}

func TestModel_FinishPlaysAlert(t *testing.T) {
	f := newModelFixture(t, nil)
	notifier := portsmocks.NewMockNotifier(t)
	notifier.EXPECT().Notify(domain.AlertFinished).Return(nil).Once()
	f.model.notifier = notifier

	f.selectTask(t, "Write report")
	f.press("s")
	f.workTicks(2)
	f.press("f")

	runCmd(f.press("f"))
}

func TestModel_BreakExpiryPlaysAlert(t *testing.T) {
	ask := false
	f := newModelFixture(t, &config.Settings{AskBreakTimer: &ask})
	notifier := portsmocks.NewMockNotifier(t)
	notifier.EXPECT().Notify(domain.AlertBreakOver).Return(errors.New("no speaker")).Once()
	f.model.notifier = notifier

	f.press("b")
	f.clock.Advance(5 * time.Minute)

	runCmd(f.send(breakTickMsg{sub: f.tracker.BreakSubscription()}))
	assert.Contains(t, f.model.View(), "Break is over")
}

func TestModel_NotificationsOff(t *testing.T) {
	off := false
	f := newModelFixture(t, &config.Settings{Notifications: &off})
	// no expectations: any Notify call fails the test
	f.model.notifier = portsmocks.NewMockNotifier(t)

	f.selectTask(t, "Write report")
	f.press("s")
	f.workTicks(2)
	f.press("f")

	runCmd(f.press("f"))
	assert.Len(t, f.sessions(t, domain.SessionWork), 1)
}
