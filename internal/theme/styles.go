package theme

import "github.com/charmbracelet/lipgloss"

// Main UI styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)
)

// Timer styles
var (
	ClockStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHighlight).
			Padding(1, 4).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted)

	TaskNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	SummaryStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	ConfirmStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorConfirm)
)

// Timer state badge styles, keyed by the state they render
var (
	BreakBadgeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorBreak)

	IdleBadgeStyle = lipgloss.NewStyle().
			Foreground(ColorIdle)

	PausedBadgeStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorPaused)

	RunningBadgeStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorRunning)

	StoppedBadgeStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorStopped)
)

// Task picker styles
var (
	DoneTaskStyle = lipgloss.NewStyle().
			Foreground(ColorDone).
			Strikethrough(true)

	TaskHourStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)
)

// Dialog header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	TaglineStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Help screen styles
var (
	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpGroupStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHelpGroup).
			MarginTop(1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true).
			Width(20)
)

// Tip styles
var (
	TipKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true)

	TipTextStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)
)

// Error styles
var (
	ErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true)
)
