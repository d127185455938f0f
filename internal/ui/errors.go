package ui

import (
	"strings"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	errorPrefix    = "Error: "
	maxErrorLines  = 2
	minErrorWidth  = 10
	truncationMark = "..."
)

// clearErrorMsg asks the model to drop the error it set under seq
type clearErrorMsg struct {
	seq int
}

// ErrorManager holds the error shown in the footer and clears it after a delay.
// A newer error restarts the delay.
type ErrorManager struct {
	currentError    error
	errorClearDelay time.Duration
	seq             int
}

// NewErrorManager creates an ErrorManager. A zero delay keeps errors until cleared.
func NewErrorManager(errorClearDelay time.Duration) *ErrorManager {
	return &ErrorManager{errorClearDelay: errorClearDelay}
}

// SetError shows err and returns the command that will clear it
func (em *ErrorManager) SetError(err error) tea.Cmd {
	em.currentError = err
	em.seq++
	if em.errorClearDelay <= 0 {
		return nil
	}
	seq := em.seq
	return tea.Tick(em.errorClearDelay, func(time.Time) tea.Msg {
		return clearErrorMsg{seq: seq}
	})
}

// HandleClear clears the error if msg belongs to the error still on screen
func (em *ErrorManager) HandleClear(msg clearErrorMsg) {
	if msg.seq == em.seq {
		em.currentError = nil
	}
}

func (em *ErrorManager) ClearError() {
	em.currentError = nil
}

func (em *ErrorManager) GetError() error {
	return em.currentError
}

func (em *ErrorManager) HasError() bool {
	return em.currentError != nil
}

// formatErrorForDisplay word-wraps an error to at most maxErrorLines lines of
// maxWidth runes, counting the "Error: " prefix on the first line, and ends
// with "..." when text had to be dropped.
func formatErrorForDisplay(err error, maxWidth int) string {
	if err == nil {
		return ""
	}
	words := strings.Fields(err.Error())
	if len(words) == 0 {
		return errorPrefix + "unknown error"
	}

	width := max(maxWidth, minErrorWidth)
	widthFor := func(line int) int {
		if line == 0 {
			return max(width-utf8.RuneCountInString(errorPrefix), minErrorWidth)
		}
		return width
	}

	var lines []string
	var current []string
	currentLen := 0
	truncated := false
	for i, word := range words {
		wordLen := utf8.RuneCountInString(word)
		if len(current) > 0 && currentLen+1+wordLen > widthFor(len(lines)) {
			lines = append(lines, strings.Join(current, " "))
			current, currentLen = nil, 0
			if len(lines) == maxErrorLines {
				truncated = i < len(words)
				break
			}
		}
		if len(current) > 0 {
			currentLen++
		}
		current = append(current, word)
		currentLen += wordLen
	}
	if len(current) > 0 {
		lines = append(lines, strings.Join(current, " "))
	}

	if truncated {
		last := []rune(lines[len(lines)-1])
		room := widthFor(len(lines)-1) - utf8.RuneCountInString(truncationMark)
		if room > 0 && len(last) > room {
			last = last[:room]
		}
		lines[len(lines)-1] = string(last) + truncationMark
	}

	return errorPrefix + strings.Join(lines, "\n")
}
