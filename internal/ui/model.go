package ui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bilalayas/takipcim/internal/config"
	"github.com/bilalayas/takipcim/internal/domain"
	"github.com/bilalayas/takipcim/internal/logging"
	"github.com/bilalayas/takipcim/internal/ports"
	"github.com/bilalayas/takipcim/internal/services"
	"github.com/bilalayas/takipcim/internal/theme"
	"github.com/bilalayas/takipcim/internal/tracker"
)

// ErrUncommittedWork is returned when quitting would drop a session that was never recorded
var ErrUncommittedWork = errors.New("the current session is not recorded yet: finish or reset it first, or force quit")

type uiState int

const (
	stateTimer uiState = iota
	stateBreakForm
	stateHelp
	stateTaskForm
	stateTaskPicker
)

// Options tunes the TUI
type Options struct {
	DevMode          bool           // show build info in headers
	HoldReleaseGrace time.Duration  // DefaultHoldReleaseGrace when zero
	Notifier         ports.Notifier // nil plays nothing
	SettingsPath     string         // where "don't ask again" is persisted
}

// Model is the Bubble Tea model of the timer screen and its dialogs.
// All tracker calls happen on the Update goroutine.
type Model struct {
	breakForm      *Dialog
	devMode        bool
	errorManager   *ErrorManager
	height         int
	help           help.Model
	helpScreen     *Dialog
	holdGrace      time.Duration
	holdProgress   progress.Model
	holdSeq        int
	keys           KeyMap
	notice         string
	notifier       ports.Notifier
	settings       *config.Settings
	settingsPath   string
	startAfterPick bool
	state          uiState
	summary        domain.DaySummary
	summaryService *services.SummaryService
	taskForm       *Dialog
	taskPicker     *Dialog
	taskService    *services.TaskService
	tracker        *tracker.Tracker
	width          int
}

// NewModel creates the TUI over an existing tracker
func NewModel(
	tr *tracker.Tracker,
	taskService *services.TaskService,
	summaryService *services.SummaryService,
	settings *config.Settings,
	opts Options,
) *Model {
	grace := opts.HoldReleaseGrace
	if grace <= 0 {
		grace = DefaultHoldReleaseGrace
	}
	if settings == nil {
		settings = &config.Settings{}
	}

	return &Model{
		devMode:      opts.DevMode,
		errorManager: NewErrorManager(settings.GetErrorClearDelay()),
		help:         help.New(),
		holdGrace:    grace,
		holdProgress: progress.New(
			progress.WithGradient(string(theme.ColorHoldStart), string(theme.ColorHoldEnd)),
			progress.WithoutPercentage(),
		),
		keys:           NewKeyMap(settings.Keys),
		notifier:       opts.Notifier,
		settings:       settings,
		settingsPath:   opts.SettingsPath,
		state:          stateTimer,
		summaryService: summaryService,
		taskService:    taskService,
		tracker:        tr,
	}
}

// Init takes over the tracker's tick streams and loads today's summary.
func (m *Model) Init() tea.Cmd {
	work, brk := m.tracker.Resubscribe()

	cmds := []tea.Cmd{m.refreshSummary()}
	if work != tracker.NoSubscription {
		cmds = append(cmds, scheduleWorkTick(work))
	}
	if brk != tracker.NoSubscription {
		cmds = append(cmds, scheduleBreakTick(brk))
	}
	return tea.Batch(cmds...)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// tracker and bookkeeping messages are handled whatever dialog is open
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.holdProgress.Width = max(min(msg.Width-4, 40), 10)
		return m, m.forwardToDialog(msg)

	case workTickMsg:
		if m.tracker.WorkTick(msg.sub) {
			return m, scheduleWorkTick(msg.sub)
		}
		return m, nil

	case breakTickMsg:
		return m, m.handleBreakTick(msg)

	case holdTickMsg:
		return m, m.handleHoldTick(msg)

	case holdReleaseMsg:
		if msg.seq == m.holdSeq && m.tracker.Finish().Holding {
			logging.Logger.Debug("Hold released")
			m.tracker.ReleaseHold()
		}
		return m, nil

	case clearErrorMsg:
		m.errorManager.HandleClear(msg)
		return m, nil

	case summaryMsg:
		if msg.err != nil {
			logging.Logger.Warn("Failed to load summary", "error", msg.err)
			return m, m.errorManager.SetError(msg.err)
		}
		m.summary = msg.summary
		return m, nil

	case tasksMsg:
		if msg.err != nil {
			m.startAfterPick = false
			return m, m.errorManager.SetError(msg.err)
		}
		return m, m.openDialog(stateTaskPicker, "Pick a task", NewTaskPicker(m.taskService, msg.tasks, m.keys))
	}

	switch m.state {
	case stateBreakForm:
		return m.updateBreakForm(msg)
	case stateHelp:
		return m.updateHelp(msg)
	case stateTaskForm:
		return m.updateTaskForm(msg)
	case stateTaskPicker:
		return m.updateTaskPicker(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(keyMsg)
	}
	return m, nil
}

func (m *Model) handleBreakTick(msg breakTickMsg) tea.Cmd {
	ended, err := m.tracker.BreakTick(context.Background(), msg.sub)
	if err != nil {
		// the break stays on and expiry is retried on the next tick
		var cmd tea.Cmd
		if !m.errorManager.HasError() {
			cmd = m.errorManager.SetError(err)
		}
		return tea.Batch(cmd, scheduleBreakTick(msg.sub))
	}
	if ended {
		m.notice = "Break is over, back to work"
		return tea.Batch(m.refreshSummary(), m.alert(domain.AlertBreakOver))
	}
	if m.tracker.BreakSubscription() == msg.sub {
		return scheduleBreakTick(msg.sub)
	}
	return nil
}

func (m *Model) handleHoldTick(msg holdTickMsg) tea.Cmd {
	outcome, err := m.tracker.HoldTick(context.Background(), msg.sub)
	if err != nil {
		return m.errorManager.SetError(err)
	}
	if outcome == domain.FinishMarkComplete {
		m.notice = "Session recorded and task marked done"
		return tea.Batch(m.refreshSummary(), m.alert(domain.AlertFinished))
	}
	if m.tracker.Finish().Holding && m.tracker.HoldSubscription() == msg.sub {
		return scheduleHoldTick(msg.sub)
	}
	return nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := context.Background()
	keys := m.keys
	m.notice = ""

	// any key other than the finish gesture moves focus away from it
	if !key.Matches(msg, keys.Finish.Finish.Binding, keys.Finish.Hold.Binding, keys.Application.Help.Binding) {
		if m.tracker.BlurFinish() {
			logging.Logger.Debug("Finish disarmed")
		}
	}

	switch {
	case key.Matches(msg, keys.Application.ForceQuit.Binding):
		if snap := m.tracker.Timer(); snap.ElapsedSeconds > 0 {
			logging.Logger.Warn("Force quit with unrecorded work", "task_id", snap.BoundTaskID, "seconds", snap.ElapsedSeconds)
		}
		return m, tea.Quit

	case key.Matches(msg, keys.Application.Quit.Binding):
		if m.tracker.Timer().State != domain.TimerIdle {
			return m, m.errorManager.SetError(ErrUncommittedWork)
		}
		if err := m.tracker.EndBreak(ctx); err != nil {
			return m, m.errorManager.SetError(err)
		}
		return m, tea.Quit

	case key.Matches(msg, keys.Application.Help.Binding):
		return m, m.openDialog(stateHelp, "Keyboard shortcuts", NewHelpScreen(keys))

	case key.Matches(msg, keys.Timer.Start.Binding):
		return m, m.start(ctx)

	case key.Matches(msg, keys.Timer.Pause.Binding):
		sub, err := m.tracker.TogglePause()
		if err != nil {
			return m, m.errorManager.SetError(err)
		}
		if sub != tracker.NoSubscription {
			return m, scheduleWorkTick(sub)
		}
		return m, nil

	case key.Matches(msg, keys.Timer.Stop.Binding):
		if _, err := m.tracker.Stop(); err != nil {
			return m, m.errorManager.SetError(err)
		}
		return m, nil

	case key.Matches(msg, keys.Timer.Reset.Binding):
		m.tracker.Reset()
		return m, nil

	case key.Matches(msg, keys.Finish.Finish.Binding):
		outcome, err := m.tracker.ActivateFinish(ctx)
		if err != nil {
			return m, m.errorManager.SetError(err)
		}
		if outcome == domain.FinishEndSession {
			m.notice = "Session recorded"
			return m, tea.Batch(m.refreshSummary(), m.alert(domain.AlertFinished))
		}
		return m, nil

	case key.Matches(msg, keys.Finish.Hold.Binding):
		return m, m.pressHold()

	case key.Matches(msg, keys.Finish.Blur.Binding):
		m.errorManager.ClearError()
		return m, nil

	case key.Matches(msg, keys.Break.Break.Binding):
		if m.tracker.Break().OnBreak() {
			return m, m.errorManager.SetError(domain.ErrAlreadyOnBreak)
		}
		if m.settings.GetAskBreakTimer() {
			form := NewBreakForm(m.settings.GetBreakPresets(), m.settings.GetDefaultBreakMinutes())
			return m, m.openDialog(stateBreakForm, "Take a break", form)
		}
		minutes := m.settings.GetDefaultBreakMinutes()
		return m, m.startBreak(&minutes)

	case key.Matches(msg, keys.Break.EndBreak.Binding):
		if err := m.tracker.EndBreak(ctx); err != nil {
			return m, m.errorManager.SetError(err)
		}
		return m, m.refreshSummary()

	case key.Matches(msg, keys.Tasks.Tasks.Binding):
		return m, m.loadTasks()

	case key.Matches(msg, keys.Tasks.NewTask.Binding):
		start, end := m.settings.GetPlanningHours()
		return m, m.openDialog(stateTaskForm, "New task for today", NewTaskForm(m.taskService, start, end))

	case key.Matches(msg, keys.Tasks.FreeWork.Binding):
		return m, m.startFreeWork(ctx)
	}

	return m, nil
}

// start starts the selected task, or opens the task picker when nothing is selected
func (m *Model) start(ctx context.Context) tea.Cmd {
	sub, err := m.tracker.Start(ctx, "")
	if errors.Is(err, domain.ErrNoTaskSelected) {
		m.startAfterPick = true
		return m.loadTasks()
	}
	if err != nil {
		return m.errorManager.SetError(err)
	}
	return scheduleWorkTick(sub)
}

func (m *Model) startFreeWork(ctx context.Context) tea.Cmd {
	task, err := m.taskService.FreeWork(ctx)
	if err != nil {
		return m.errorManager.SetError(err)
	}
	sub, err := m.tracker.Start(ctx, task.ID)
	if err != nil {
		return m.errorManager.SetError(err)
	}
	return tea.Batch(scheduleWorkTick(sub), m.refreshSummary())
}

// pressHold starts the hold on the first press and keeps it alive on key repeats
func (m *Model) pressHold() tea.Cmd {
	var tick tea.Cmd
	if !m.tracker.Finish().Holding {
		sub, err := m.tracker.PressHold()
		if err != nil {
			return m.errorManager.SetError(err)
		}
		tick = scheduleHoldTick(sub)
	}
	m.holdSeq++
	return tea.Batch(tick, scheduleHoldRelease(m.holdGrace, m.holdSeq))
}

func (m *Model) startBreak(limitMinutes *int) tea.Cmd {
	sub, err := m.tracker.StartBreak(context.Background(), limitMinutes)
	if err != nil {
		return m.errorManager.SetError(err)
	}
	return tea.Batch(scheduleBreakTick(sub), m.refreshSummary())
}

// alert plays the cue off the Update goroutine, sound players block
func (m *Model) alert(a domain.Alert) tea.Cmd {
	if m.notifier == nil || !m.settings.GetNotifications() {
		return nil
	}
	notifier := m.notifier
	return func() tea.Msg {
		if err := notifier.Notify(a); err != nil {
			logging.Logger.Warn("Failed to play alert", "alert", a, "error", err)
		}
		return nil
	}
}

func (m *Model) refreshSummary() tea.Cmd {
	summaryService := m.summaryService
	return func() tea.Msg {
		summaryService.Invalidate()
		summary, err := summaryService.Today(context.Background())
		if err != nil {
			return summaryMsg{err: fmt.Errorf("failed to load today's summary: %w", err)}
		}
		return summaryMsg{summary: summary}
	}
}

func (m *Model) loadTasks() tea.Cmd {
	taskService := m.taskService
	return func() tea.Msg {
		tasks, err := taskService.ListTasks(context.Background(), taskService.Today())
		if err != nil {
			return tasksMsg{err: err}
		}
		return tasksMsg{tasks: tasks}
	}
}

// openDialog wraps content in a Dialog, sizes it and switches to state
func (m *Model) openDialog(state uiState, title string, content tea.Model) tea.Cmd {
	dialog := NewDialog(title, content, m.devMode)
	switch state {
	case stateBreakForm:
		m.breakForm = dialog
	case stateHelp:
		m.helpScreen = dialog
	case stateTaskForm:
		m.taskForm = dialog
	case stateTaskPicker:
		m.taskPicker = dialog
	}
	m.state = state

	initCmd := dialog.Init()
	_, sizeCmd := dialog.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	return tea.Batch(initCmd, sizeCmd)
}

func (m *Model) activeDialog() *Dialog {
	switch m.state {
	case stateBreakForm:
		return m.breakForm
	case stateHelp:
		return m.helpScreen
	case stateTaskForm:
		return m.taskForm
	case stateTaskPicker:
		return m.taskPicker
	}
	return nil
}

func (m *Model) forwardToDialog(msg tea.Msg) tea.Cmd {
	dialog := m.activeDialog()
	if dialog == nil {
		return nil
	}
	_, cmd := dialog.Update(msg)
	return cmd
}

func (m *Model) updateBreakForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.forwardToDialog(msg)
	form, ok := m.breakForm.Content().(*BreakForm)
	if !ok || !form.Completed {
		return m, cmd
	}

	m.breakForm = nil
	m.state = stateTimer
	result := form.Result()
	if result.Cancelled {
		return m, nil
	}

	var cmds []tea.Cmd
	if result.DontAskAgain {
		if err := m.disableBreakDialog(); err != nil {
			cmds = append(cmds, m.errorManager.SetError(err))
		}
	}
	cmds = append(cmds, m.startBreak(result.LimitMinutes))
	return m, tea.Batch(cmds...)
}

// disableBreakDialog persists ask_break_timer=false
func (m *Model) disableBreakDialog() error {
	ask := false
	m.settings.AskBreakTimer = &ask
	if m.settingsPath == "" {
		return nil
	}
	if err := config.SaveSettingsTo(m.settingsPath, m.settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	logging.Logger.Info("Break dialog disabled")
	return nil
}

func (m *Model) updateHelp(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.forwardToDialog(msg)
	if screen, ok := m.helpScreen.Content().(*HelpScreen); ok && screen.Completed {
		m.helpScreen = nil
		m.state = stateTimer
		return m, nil
	}
	return m, cmd
}

func (m *Model) updateTaskForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.forwardToDialog(msg)
	form, ok := m.taskForm.Content().(*TaskForm)
	if !ok || !form.Completed {
		return m, cmd
	}

	m.taskForm = nil
	m.state = stateTimer
	result := form.Result()
	if result.Cancelled {
		return m, nil
	}
	if result.Error != nil {
		return m, m.errorManager.SetError(result.Error)
	}

	// a freshly planned task becomes the selection unless something is already bound
	if m.tracker.Timer().State == domain.TimerIdle {
		if err := m.tracker.Select(context.Background(), result.Task.ID); err != nil {
			return m, tea.Batch(m.errorManager.SetError(err), m.refreshSummary())
		}
	}
	return m, m.refreshSummary()
}

func (m *Model) updateTaskPicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.forwardToDialog(msg)
	picker, ok := m.taskPicker.Content().(*TaskPicker)
	if !ok || !picker.Completed {
		return m, cmd
	}

	m.taskPicker = nil
	m.state = stateTimer
	startAfterPick := m.startAfterPick
	m.startAfterPick = false

	result := picker.Result()
	// completion flags may have been toggled in the picker
	cmds := []tea.Cmd{m.refreshSummary()}
	if result.Cancelled || result.Task == nil {
		return m, tea.Batch(cmds...)
	}

	ctx := context.Background()
	if err := m.tracker.Select(ctx, result.Task.ID); err != nil {
		return m, tea.Batch(append(cmds, m.errorManager.SetError(err))...)
	}
	if startAfterPick {
		cmds = append(cmds, m.start(ctx))
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) View() string {
	if dialog := m.activeDialog(); dialog != nil {
		return dialog.View()
	}
	return m.timerView()
}
