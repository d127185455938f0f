package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bilalayas/takipcim/internal/theme"
	"github.com/bilalayas/takipcim/internal/version"
)

// Dialog wraps a form and prepends the application header with a title.
// Forms are always shown through a Dialog so headers look the same everywhere.
type Dialog struct {
	content tea.Model
	devMode bool
	title   string
}

// NewDialog wraps content under title
func NewDialog(title string, content tea.Model, devMode bool) *Dialog {
	return &Dialog{
		content: content,
		devMode: devMode,
		title:   title,
	}
}

func (d *Dialog) Init() tea.Cmd {
	return d.content.Init()
}

func (d *Dialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := d.content.Update(msg)
	d.content = updated
	return d, cmd
}

func (d *Dialog) View() string {
	return renderHeader(d.devMode, d.title) + "\n" + d.content.View()
}

// Content returns the wrapped model, e.g. to read a form result once it completed
func (d *Dialog) Content() tea.Model {
	return d.content
}

// renderHeader renders the app name (with build info in dev mode), the tagline
// and an optional subtitle.
func renderHeader(devMode bool, subtitle string) string {
	header := theme.AppNameStyle.Render("takipcim")
	if devMode {
		commit := version.Commit
		if len(commit) > 7 {
			commit = commit[:7]
		}
		header += theme.VersionStyle.Render(fmt.Sprintf(" %s | %s | %s | %s",
			version.Version, commit, version.Date, version.GoVersion))
	}
	header += "\n" + theme.TaglineStyle.Render(version.Tagline)
	if subtitle != "" {
		header += "\n\n" + theme.SubtitleStyle.Render(subtitle)
	}
	return header + "\n"
}
