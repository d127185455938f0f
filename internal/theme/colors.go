package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles
)

// Timer state colors
const (
	ColorBreak   Color = "39"  // Blue - on break
	ColorIdle    Color = "8"   // Gray - nothing bound
	ColorPaused  Color = "3"   // Yellow - paused
	ColorRunning Color = "2"   // Green - running
	ColorStopped Color = "208" // Orange - waiting for commit
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
	ColorVersion   Color = "240" // Dark gray
)

// Accent colors
const (
	ColorConfirm   Color = "226" // Yellow - finish armed
	ColorDone      Color = "46"  // Bright green - completed tasks
	ColorHelpGroup Color = "141" // Purple
	ColorHoldEnd   Color = "46"
	ColorHoldStart Color = "226"
)
