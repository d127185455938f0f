package ports

import (
	"context"

	"github.com/bilalayas/takipcim/internal/domain"
)

// TaskDirectory is the read-only task lookup used by the tracker
type TaskDirectory interface {
	GetTask(ctx context.Context, id string) (*domain.Task, error)
}

// TaskLister lists and searches tasks
type TaskLister interface {
	FindTaskByName(ctx context.Context, name string) (*domain.Task, error)
	ListTasks(ctx context.Context) ([]domain.Task, error)
}

// TaskWriter creates, schedules and deletes tasks
type TaskWriter interface {
	AddTask(ctx context.Context, task domain.Task) error
	AddTaskDate(ctx context.Context, id, date string) error
	DeleteTask(ctx context.Context, id string) error
}

// TaskRepository is the composite task interface
type TaskRepository interface {
	TaskDirectory
	TaskLister
	TaskWriter
}
