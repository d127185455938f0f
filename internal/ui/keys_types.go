package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/bilalayas/takipcim/internal/theme"
)

// Tip holds a tip format string and the keys to highlight
type Tip struct {
	Format string
	Keys   []string
}

// newTip builds a tip. Format uses %s placeholders for keys,
// e.g. newTip("press %s to pause", "space").
func newTip(format string, keys ...string) Tip {
	return Tip{Format: format, Keys: keys}
}

// IsZero reports whether the tip is empty
func (t Tip) IsZero() bool {
	return t.Format == ""
}

// String returns the tip as plain text
func (t Tip) String() string {
	args := make([]any, len(t.Keys))
	for i, k := range t.Keys {
		args[i] = k
	}
	return fmt.Sprintf(t.Format, args...)
}

// RenderTip formats a tip with highlighted keys and gray text
func RenderTip(tip Tip) string {
	parts := strings.Split(tip.Format, "%s")
	var b strings.Builder
	b.WriteString(theme.TipTextStyle.Render("ℹ  tip: "))
	for i, part := range parts {
		b.WriteString(theme.TipTextStyle.Render(part))
		if i < len(tip.Keys) {
			b.WriteString(theme.TipKeyStyle.Render(tip.Keys[i]))
		}
	}
	return b.String()
}

// KeyWithTip wraps a key.Binding with an optional tip
type KeyWithTip struct {
	Binding key.Binding
	Tip     Tip // zero when the key has no tip
}

// normalizeKey maps names users write in settings.json to what bubbletea reports
func normalizeKey(k string) string {
	if k == "space" {
		return " "
	}
	return k
}

// displayKey is the inverse of normalizeKey for help text
func displayKey(k string) string {
	if k == " " {
		return "space"
	}
	return k
}
