package ui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/bilalayas/takipcim/internal/config"
)

const (
	breakChoiceCustom    = -1
	breakChoiceOpenEnded = 0
)

// BreakFormResult is what the break dialog resolved to
type BreakFormResult struct {
	Cancelled    bool
	DontAskAgain bool
	LimitMinutes *int // nil for an open-ended break
}

// BreakForm asks how long the break should be
type BreakForm struct {
	Completed bool
	choice    int
	custom    string
	form      *huh.Form
	result    BreakFormResult
}

// NewBreakForm offers presets, a custom length and an open-ended break.
// defaultMinutes is preselected when it is one of the presets.
func NewBreakForm(presets []int, defaultMinutes int) *BreakForm {
	bf := &BreakForm{choice: breakChoiceOpenEnded}

	options := make([]huh.Option[int], 0, len(presets)+2)
	for _, p := range presets {
		options = append(options, huh.NewOption(fmt.Sprintf("%d minutes", p), p))
		if p == defaultMinutes {
			bf.choice = p
		}
	}
	options = append(options,
		huh.NewOption("Custom...", breakChoiceCustom),
		huh.NewOption("No limit", breakChoiceOpenEnded),
	)

	bf.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Break length").
				Options(options...).
				Value(&bf.choice),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Minutes").
				Placeholder(strconv.Itoa(defaultMinutes)).
				Value(&bf.custom).
				Validate(validateBreakMinutes),
		).WithHideFunc(func() bool { return bf.choice != breakChoiceCustom }),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Don't ask again?").
				Description(fmt.Sprintf("Breaks will then last %d minutes (default_break_minutes)", defaultMinutes)).
				Affirmative("Yes").
				Negative("No").
				Value(&bf.result.DontAskAgain),
		),
	)
	return bf
}

func validateBreakMinutes(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 || n > config.MaxBreakMinutes {
		return fmt.Errorf("enter a number of minutes between 1 and %d", config.MaxBreakMinutes)
	}
	return nil
}

func (bf *BreakForm) Init() tea.Cmd {
	return bf.form.Init()
}

func (bf *BreakForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			bf.result.Cancelled = true
			bf.Completed = true
			return bf, nil
		}
	}

	form, cmd := bf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		bf.form = f
	}

	if bf.form.State == huh.StateCompleted {
		bf.Completed = true
		bf.result.LimitMinutes = bf.limit()
		return bf, nil
	}
	return bf, cmd
}

func (bf *BreakForm) limit() *int {
	switch bf.choice {
	case breakChoiceOpenEnded:
		return nil
	case breakChoiceCustom:
		n, _ := strconv.Atoi(strings.TrimSpace(bf.custom))
		return &n
	default:
		n := bf.choice
		return &n
	}
}

func (bf *BreakForm) View() string {
	return bf.form.View()
}

// Result returns the form result
func (bf *BreakForm) Result() BreakFormResult {
	return bf.result
}
