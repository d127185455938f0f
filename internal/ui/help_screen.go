package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bilalayas/takipcim/internal/theme"
)

// HelpScreen lists keyboard shortcuts by group in a scrollable viewport
type HelpScreen struct {
	Completed   bool
	content     string
	initialized bool
	keys        KeyMap
	viewport    viewport.Model
}

// NewHelpScreen creates a help screen for keys
func NewHelpScreen(keys KeyMap) *HelpScreen {
	return &HelpScreen{
		content:  buildHelpContent(keys),
		keys:     keys,
		viewport: viewport.New(0, 0),
	}
}

func renderShortcut(keys, description string) string {
	return theme.HelpKeyStyle.Render(keys) + theme.HelpDescStyle.Render(description) + "\n"
}

func buildHelpContent(keys KeyMap) string {
	var b strings.Builder
	for i, group := range keys.FullHelp() {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(theme.HelpGroupStyle.Render(helpGroups[i]) + "\n")
		for _, binding := range group {
			help := binding.Help()
			b.WriteString(renderShortcut(help.Key, help.Desc))
		}
	}

	b.WriteString("\n" + theme.HelpGroupStyle.Render("Timer states") + "\n")
	b.WriteString(renderShortcut(badgeRunning, "clock is running"))
	b.WriteString(renderShortcut(badgePaused, "clock is paused, time is not counted"))
	b.WriteString(renderShortcut(badgeStopped, "clock is frozen, finish to record it"))
	b.WriteString(renderShortcut(badgeBreak, "on a break"))

	if tips := keys.Tips(); len(tips) > 0 {
		b.WriteString("\n" + theme.HelpGroupStyle.Render("Tips") + "\n")
		for _, tip := range tips {
			b.WriteString(RenderTip(tip) + "\n")
		}
	}
	return b.String()
}

func (h *HelpScreen) Init() tea.Cmd {
	h.viewport.KeyMap.Up.SetKeys("up", "k")
	h.viewport.KeyMap.Down.SetKeys("down", "j")
	return nil
}

func (h *HelpScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// header 4 lines, footer 2 lines
		h.viewport.Width = msg.Width
		h.viewport.Height = max(msg.Height-6, 5)
		h.viewport.SetContent(h.content)
		h.initialized = true
		return h, nil

	case tea.KeyMsg:
		if msg.String() == "esc" || key.Matches(msg, h.keys.Application.Quit.Binding, h.keys.Application.Help.Binding) {
			h.Completed = true
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.viewport, cmd = h.viewport.Update(msg)
	return h, cmd
}

func (h *HelpScreen) View() string {
	if !h.initialized {
		return "Loading help..."
	}
	footer := theme.HelpStyle.Render("Press esc, q or ? to close • ↑↓/jk/PgUp/PgDn to scroll")
	return h.viewport.View() + "\n\n" + footer
}
