package ui

import (
	"context"
	"fmt"
	"slices"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bilalayas/takipcim/internal/domain"
	"github.com/bilalayas/takipcim/internal/logging"
	"github.com/bilalayas/takipcim/internal/services"
	"github.com/bilalayas/takipcim/internal/theme"
)

// taskItem is a list row for one of today's tasks
type taskItem struct {
	services.DayTask
}

func (i taskItem) FilterValue() string { return i.Task.Name }

func (i taskItem) Title() string {
	title := i.Task.Name
	if i.Task.StartHour != nil {
		title = theme.TaskHourStyle.Render(fmt.Sprintf("%02d:00 ", *i.Task.StartHour)) + title
	}
	if i.Completed {
		return theme.DoneTaskStyle.Render("✓ ") + title
	}
	return title
}

func (i taskItem) Description() string {
	desc := i.Task.Category
	if i.Task.PlannedMinutes != nil {
		planned := domain.FormatElapsed(*i.Task.PlannedMinutes * 60)
		if desc != "" {
			desc += " • "
		}
		desc += "planned " + planned
	}
	return desc
}

// TaskPickerResult is the task the user picked, if any
type TaskPickerResult struct {
	Cancelled bool
	Error     error
	Task      *domain.Task
}

// TaskPicker lists today's tasks, ordered by start hour
type TaskPicker struct {
	Completed   bool
	keys        KeyMap
	list        list.Model
	result      TaskPickerResult
	taskService *services.TaskService
}

// NewTaskPicker builds the picker over tasks
func NewTaskPicker(taskService *services.TaskService, tasks []services.DayTask, keys KeyMap) *TaskPicker {
	ordered := slices.Clone(tasks)
	slices.SortStableFunc(ordered, func(a, b services.DayTask) int {
		return compareStartHour(a.Task.StartHour, b.Task.StartHour)
	})

	items := make([]list.Item, len(ordered))
	for i, t := range ordered {
		items[i] = taskItem{DayTask: t}
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Today's tasks"
	l.SetShowHelp(true)
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Tasks.ToggleDone.Binding}
	}
	l.DisableQuitKeybindings()

	return &TaskPicker{
		keys:        keys,
		list:        l,
		taskService: taskService,
	}
}

// compareStartHour orders tasks with a start hour first
func compareStartHour(a, b *int) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	default:
		return *a - *b
	}
}

func (p *TaskPicker) Init() tea.Cmd {
	return nil
}

func (p *TaskPicker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.list.SetSize(msg.Width, max(msg.Height-6, 5))
		return p, nil

	case tea.KeyMsg:
		if p.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case msg.String() == "esc" || key.Matches(msg, p.keys.Application.Quit.Binding):
			p.result.Cancelled = true
			p.Completed = true
			return p, nil
		case msg.String() == "enter":
			if item, ok := p.list.SelectedItem().(taskItem); ok {
				task := item.Task
				p.result.Task = &task
			} else {
				p.result.Cancelled = true
			}
			p.Completed = true
			return p, nil
		case key.Matches(msg, p.keys.Tasks.ToggleDone.Binding):
			return p, p.toggleDone()
		}
	}

	var cmd tea.Cmd
	p.list, cmd = p.list.Update(msg)
	return p, cmd
}

func (p *TaskPicker) toggleDone() tea.Cmd {
	item, ok := p.list.SelectedItem().(taskItem)
	if !ok {
		return nil
	}
	done, err := p.taskService.ToggleCompletion(context.Background(), item.Task.ID, p.taskService.Today())
	if err != nil {
		logging.Logger.Error("Failed to toggle completion", "task_id", item.Task.ID, "error", err)
		return p.list.NewStatusMessage(theme.ErrorStyle.Render(err.Error()))
	}
	item.Completed = done
	return p.list.SetItem(p.list.GlobalIndex(), item)
}

func (p *TaskPicker) View() string {
	if len(p.list.Items()) == 0 {
		return theme.MutedStyle.Render("Nothing planned for today. Press esc, then "+
			p.keys.Tasks.NewTask.Binding.Help().Key+" to plan a task or "+
			p.keys.Tasks.FreeWork.Binding.Help().Key+" for free work.") + "\n"
	}
	return p.list.View()
}

// Result returns the picker result
func (p *TaskPicker) Result() TaskPickerResult {
	return p.result
}
