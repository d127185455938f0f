package ui

import (
	"fmt"
	"strings"

	"github.com/bilalayas/takipcim/internal/domain"
	"github.com/bilalayas/takipcim/internal/theme"
)

// State badges
const (
	badgeBreak   = "☕ break"
	badgeIdle    = "○ idle"
	badgePaused  = "❚❚ paused"
	badgeRunning = "● running"
	badgeStopped = "■ stopped"
)

func (m *Model) timerView() string {
	var b strings.Builder
	b.WriteString(renderHeader(m.devMode, "") + "\n")

	brk := m.tracker.Break()
	if brk.OnBreak() {
		b.WriteString(m.breakSection(brk))
	} else {
		b.WriteString(m.workSection())
	}

	b.WriteString("\n" + theme.SummaryStyle.Render(renderSummary(liveSummary(m.summary, brk))) + "\n\n")

	// bottom section: error, then notice, then key help
	switch {
	case m.errorManager.HasError():
		b.WriteString(theme.ErrorStyle.Render(formatErrorForDisplay(m.errorManager.GetError(), m.width)))
	case m.notice != "":
		b.WriteString(theme.NormalStyle.Render(m.notice))
	default:
		b.WriteString(m.help.View(m.keys))
	}
	return b.String()
}

func (m *Model) workSection() string {
	snap := m.tracker.Timer()

	title := theme.MutedStyle.Render("No task selected")
	if task, ok := m.tracker.SelectedTask(); ok {
		title = theme.TaskNameStyle.Render(task.Name)
	}

	var b strings.Builder
	b.WriteString(renderTimerBadge(snap.State) + "  " + title + "\n")
	b.WriteString(theme.ClockStyle.Render(domain.FormatElapsed(snap.ElapsedSeconds)) + "\n")

	if snap.State == domain.TimerIdle {
		if tip := m.idleTip(); !tip.IsZero() {
			b.WriteString(RenderTip(tip) + "\n")
		}
		return b.String()
	}

	finish := m.tracker.Finish()
	if finish.State == domain.FinishConfirming {
		b.WriteString(theme.ConfirmStyle.Render(fmt.Sprintf("Finish armed: %s again to record, hold %s to also mark done",
			m.keys.Finish.Finish.Binding.Help().Key, m.keys.Finish.Hold.Binding.Help().Key)) + "\n")
		if finish.Holding {
			b.WriteString(m.holdProgress.ViewAs(finish.Progress) + "\n")
		}
	}
	return b.String()
}

// idleTip suggests the next step when the clock is idle
func (m *Model) idleTip() Tip {
	if _, ok := m.tracker.SelectedTask(); ok {
		return newTip("press %s to start", m.keys.Timer.Start.Binding.Help().Key)
	}
	return m.keys.Tasks.Tasks.Tip
}

func (m *Model) breakSection(brk domain.BreakSnapshot) string {
	var b strings.Builder
	b.WriteString(theme.BreakBadgeStyle.Render(badgeBreak) + "\n")
	b.WriteString(theme.ClockStyle.BorderForeground(theme.ColorBreak).Render(domain.FormatElapsed(brk.ElapsedSeconds)) + "\n")

	if remaining, ok := brk.Remaining(); ok {
		b.WriteString(theme.NormalStyle.Render(domain.FormatElapsed(remaining)+" left") + "\n")
	} else {
		b.WriteString(theme.MutedStyle.Render("open-ended break") + "\n")
	}
	b.WriteString(RenderTip(newTip("press %s to get back to work", m.keys.Break.EndBreak.Binding.Help().Key)) + "\n")
	return b.String()
}

func renderTimerBadge(state domain.TimerState) string {
	switch state {
	case domain.TimerRunning:
		return theme.RunningBadgeStyle.Render(badgeRunning)
	case domain.TimerPaused:
		return theme.PausedBadgeStyle.Render(badgePaused)
	case domain.TimerStopped:
		return theme.StoppedBadgeStyle.Render(badgeStopped)
	default:
		return theme.IdleBadgeStyle.Render(badgeIdle)
	}
}

// liveSummary adds the running break to the committed totals
func liveSummary(s domain.DaySummary, brk domain.BreakSnapshot) domain.DaySummary {
	if brk.OnBreak() {
		s.BreakSeconds += brk.ElapsedSeconds
	}
	return s
}

// renderSummary renders today's totals on one line
func renderSummary(s domain.DaySummary) string {
	parts := []string{
		"Today",
		"work " + formatTotal(s.WorkSeconds),
		"break " + formatTotal(s.BreakSeconds),
		fmt.Sprintf("done %d/%d", s.CompletedTasks, s.PlannedTasks),
	}
	return strings.Join(parts, " • ")
}

func formatTotal(seconds int) string {
	if seconds == 0 {
		return "0"
	}
	return domain.FormatElapsed(seconds)
}
