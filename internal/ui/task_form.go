package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/bilalayas/takipcim/internal/domain"
	"github.com/bilalayas/takipcim/internal/logging"
	"github.com/bilalayas/takipcim/internal/services"
)

const noStartHour = -1

// TaskFormResult contains the result of the create task dialog
type TaskFormResult struct {
	Cancelled bool
	Error     error
	Task      *domain.Task
}

// TaskForm plans a new task for today
type TaskForm struct {
	Completed   bool
	category    string
	form        *huh.Form
	name        string
	plannedMins string
	result      TaskFormResult
	startHour   int
	taskService *services.TaskService
}

// NewTaskForm creates the form. Start hours are offered within [hourStart, hourEnd).
func NewTaskForm(taskService *services.TaskService, hourStart, hourEnd int) *TaskForm {
	tf := &TaskForm{
		startHour:   noStartHour,
		taskService: taskService,
	}

	hours := []huh.Option[int]{huh.NewOption("Any time", noStartHour)}
	for h := hourStart; h < hourEnd; h++ {
		hours = append(hours, huh.NewOption(fmt.Sprintf("%02d:00", h), h))
	}

	tf.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Task name").
				Value(&tf.name).
				CharLimit(120).
				Validate(tf.validateName),
			huh.NewInput().
				Title("Category").
				Description("Optional").
				Value(&tf.category).
				CharLimit(60),
			huh.NewInput().
				Title("Planned minutes").
				Description("Optional").
				Value(&tf.plannedMins).
				Validate(validateOptionalMinutes),
			huh.NewSelect[int]().
				Title("Start hour").
				Options(hours...).
				Value(&tf.startHour),
		),
	)
	return tf
}

func (tf *TaskForm) validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.ErrInvalidTaskName
	}
	exists, err := tf.taskService.Exists(context.Background(), name)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: %s", domain.ErrTaskExists, name)
	}
	return nil
}

func validateOptionalMinutes(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if n, err := strconv.Atoi(s); err != nil || n <= 0 {
		return fmt.Errorf("planned minutes must be a positive number")
	}
	return nil
}

func (tf *TaskForm) Init() tea.Cmd {
	return tf.form.Init()
}

func (tf *TaskForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			tf.result.Cancelled = true
			tf.Completed = true
			return tf, nil
		}
	}

	form, cmd := tf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		tf.form = f
	}

	if tf.form.State == huh.StateCompleted {
		tf.Completed = true
		task, err := tf.createTask()
		if err != nil {
			logging.Logger.Error("Failed to create task", "error", err)
			tf.result.Error = err
		}
		tf.result.Task = task
		return tf, nil
	}
	return tf, cmd
}

func (tf *TaskForm) View() string {
	return tf.form.View()
}

// Result returns the form result
func (tf *TaskForm) Result() TaskFormResult {
	return tf.result
}

func (tf *TaskForm) createTask() (*domain.Task, error) {
	params := services.CreateTaskParams{
		Category: strings.TrimSpace(tf.category),
		Date:     tf.taskService.Today(),
		Name:     strings.TrimSpace(tf.name),
	}
	if s := strings.TrimSpace(tf.plannedMins); s != "" {
		n, _ := strconv.Atoi(s)
		params.PlannedMinutes = &n
	}
	if tf.startHour != noStartHour {
		h := tf.startHour
		params.StartHour = &h
	}
	return tf.taskService.CreateTask(context.Background(), params)
}
