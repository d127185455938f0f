package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/bilalayas/takipcim/internal/domain"
	"github.com/bilalayas/takipcim/internal/logging"
	"github.com/bilalayas/takipcim/internal/ports"
)

// TaskService manages the task directory and per-day completion flags
type TaskService struct {
	clock       ports.Clock
	completions ports.CompletionStore
	repo        ports.TaskRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(
	repo ports.TaskRepository,
	completions ports.CompletionStore,
	clock ports.Clock,
) *TaskService {
	return &TaskService{
		clock:       clock,
		completions: completions,
		repo:        repo,
	}
}

// Today returns the current calendar date
func (s *TaskService) Today() string {
	return domain.DateOf(s.clock.Now())
}

// CreateTask validates and stores a new task. Names are unique ignoring case.
func (s *TaskService) CreateTask(ctx context.Context, params CreateTaskParams) (*domain.Task, error) {
	name := strings.TrimSpace(params.Name)
	if name == "" {
		return nil, domain.ErrInvalidTaskName
	}
	if params.StartHour != nil && (*params.StartHour < 0 || *params.StartHour > 23) {
		return nil, fmt.Errorf("start hour %d is not between 0 and 23", *params.StartHour)
	}
	if params.PlannedMinutes != nil && *params.PlannedMinutes <= 0 {
		return nil, fmt.Errorf("planned minutes must be positive, got %d", *params.PlannedMinutes)
	}
	if params.Date != "" {
		if err := validateDate(params.Date); err != nil {
			return nil, err
		}
	}

	exists, err := s.Exists(ctx, name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: %s", domain.ErrTaskExists, name)
	}

	task := domain.Task{
		Category:       strings.TrimSpace(params.Category),
		ID:             uuid.New().String(),
		Name:           name,
		PlannedMinutes: params.PlannedMinutes,
		StartHour:      params.StartHour,
	}
	if params.Date != "" {
		task.Dates = []string{params.Date}
	}

	logging.Logger.Info("Creating task", "id", task.ID, "name", task.Name, "date", params.Date)
	if err := s.repo.AddTask(ctx, task); err != nil {
		logging.Logger.Error("Failed to create task", "name", task.Name, "error", err)
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return &task, nil
}

// Exists reports whether a task with this name exists, ignoring case
func (s *TaskService) Exists(ctx context.Context, name string) (bool, error) {
	_, err := s.repo.FindTaskByName(ctx, name)
	if errors.Is(err, domain.ErrTaskNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check task name: %w", err)
	}
	return true, nil
}

// ResolveTask finds a task by ID, falling back to its name
func (s *TaskService) ResolveTask(ctx context.Context, idOrName string) (*domain.Task, error) {
	task, err := s.repo.GetTask(ctx, idOrName)
	if err == nil {
		return task, nil
	}
	if !errors.Is(err, domain.ErrTaskNotFound) {
		return nil, err
	}
	return s.repo.FindTaskByName(ctx, idOrName)
}

// ListTasks returns the tasks planned on date with their completion flags.
// An empty date lists every task, with flags for today.
func (s *TaskService) ListTasks(ctx context.Context, date string) ([]DayTask, error) {
	tasks, err := s.repo.ListTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	flagDate := date
	if flagDate == "" {
		flagDate = s.Today()
	}

	var result []DayTask
	for _, task := range tasks {
		if date != "" && !task.PlannedOn(date) {
			continue
		}
		done, err := s.completions.GetCompletion(ctx, task.ID, flagDate)
		if err != nil {
			return nil, fmt.Errorf("failed to read completion: %w", err)
		}
		result = append(result, DayTask{Completed: done, Task: task})
	}
	return result, nil
}

// PlanTask schedules a task on date
func (s *TaskService) PlanTask(ctx context.Context, id, date string) error {
	if err := validateDate(date); err != nil {
		return err
	}
	logging.Logger.Info("Planning task", "id", id, "date", date)
	if err := s.repo.AddTaskDate(ctx, id, date); err != nil {
		return fmt.Errorf("failed to plan task: %w", err)
	}
	return nil
}

// DeleteTask removes a task from the directory. Its recorded sessions are kept.
func (s *TaskService) DeleteTask(ctx context.Context, id string) error {
	logging.Logger.Info("Deleting task", "id", id)
	if err := s.repo.DeleteTask(ctx, id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// FreeWork returns the catch-all "Free work" task, creating it and planning it for today as needed
func (s *TaskService) FreeWork(ctx context.Context) (*domain.Task, error) {
	today := s.Today()

	task, err := s.repo.FindTaskByName(ctx, domain.FreeWorkTaskName)
	if errors.Is(err, domain.ErrTaskNotFound) {
		return s.CreateTask(ctx, CreateTaskParams{Name: domain.FreeWorkTaskName, Date: today})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find free work task: %w", err)
	}

	if !task.PlannedOn(today) {
		if err := s.repo.AddTaskDate(ctx, task.ID, today); err != nil {
			return nil, fmt.Errorf("failed to plan free work task: %w", err)
		}
		task.Dates = append(task.Dates, today)
	}
	return task, nil
}

// ToggleCompletion flips the completion flag of a task on date and returns the new value
func (s *TaskService) ToggleCompletion(ctx context.Context, id, date string) (bool, error) {
	if err := validateDate(date); err != nil {
		return false, err
	}
	done, err := s.completions.GetCompletion(ctx, id, date)
	if err != nil {
		return false, fmt.Errorf("failed to read completion: %w", err)
	}
	if err := s.completions.SetCompletion(ctx, id, date, !done); err != nil {
		return false, fmt.Errorf("failed to update completion: %w", err)
	}
	logging.Logger.Info("Completion toggled", "id", id, "date", date, "completed", !done)
	return !done, nil
}
