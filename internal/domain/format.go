package domain

import "fmt"

// FormatElapsed renders a second count the way the timer displays it:
//   - hours > 0:   "HH:MM:SS"
//   - minutes > 0: "MM:SS"
//   - otherwise:   "SS"
//
// Negative input is treated as zero.
func FormatElapsed(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60

	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	if m > 0 {
		return fmt.Sprintf("%02d:%02d", m, s)
	}
	return fmt.Sprintf("%02d", s)
}
