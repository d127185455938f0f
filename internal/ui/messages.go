package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bilalayas/takipcim/internal/domain"
	"github.com/bilalayas/takipcim/internal/services"
	"github.com/bilalayas/takipcim/internal/tracker"
)

// Tick messages carry the subscription they were scheduled for.
// The tracker ignores ticks whose subscription is no longer live.
type (
	workTickMsg  struct{ sub tracker.Subscription }
	breakTickMsg struct{ sub tracker.Subscription }
	holdTickMsg  struct{ sub tracker.Subscription }
)

// holdReleaseMsg fires HoldReleaseGrace after a hold key press; seq identifies the press
type holdReleaseMsg struct {
	seq int
}

// summaryMsg carries a refreshed summary of today
type summaryMsg struct {
	err     error
	summary domain.DaySummary
}

// tasksMsg carries today's tasks for the task picker
type tasksMsg struct {
	err   error
	tasks []services.DayTask
}

// DefaultHoldReleaseGrace is how long after the last hold key repeat the hold counts as released.
// Terminals report no key-up events, so holding a key is seen as a stream of repeats.
// It outlasts the usual initial key-repeat delay (660ms on X11) so the first repeat keeps the hold.
const DefaultHoldReleaseGrace = 700 * time.Millisecond

func scheduleWorkTick(sub tracker.Subscription) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return workTickMsg{sub: sub} })
}

func scheduleBreakTick(sub tracker.Subscription) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return breakTickMsg{sub: sub} })
}

func scheduleHoldTick(sub tracker.Subscription) tea.Cmd {
	return tea.Tick(tracker.HoldTickInterval, func(time.Time) tea.Msg { return holdTickMsg{sub: sub} })
}

func scheduleHoldRelease(grace time.Duration, seq int) tea.Cmd {
	return tea.Tick(grace, func(time.Time) tea.Msg { return holdReleaseMsg{seq: seq} })
}
