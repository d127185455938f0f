package cmd

import (
	"context"
	"fmt"

	"github.com/bilalayas/takipcim/internal/logging"
)

// TasksDoneCmd toggles a task's completion flag for a day
type TasksDoneCmd struct {
	Date string `help:"Day of the completion (YYYY-MM-DD, 'today' for today)" default:"today"`
	Task string `arg:"" help:"Task id or name"`
}

// Run executes the done command
func (t *TasksDoneCmd) Run(cli *CLI) error {
	ctx := context.Background()
	date := resolveDate(cli.Container, t.Date)
	logging.Logger.Debug("Executing tasks done command", "task", t.Task, "date", date)

	task, err := cli.Container.TaskService.ResolveTask(ctx, t.Task)
	if err != nil {
		return fmt.Errorf("task '%s': %w", t.Task, err)
	}

	done, err := cli.Container.TaskService.ToggleCompletion(ctx, task.ID, date)
	if err != nil {
		return err
	}
	cli.Container.SummaryService.Invalidate()

	if done {
		fmt.Printf("Task '%s' marked done on %s\n", task.Name, date)
	} else {
		fmt.Printf("Task '%s' marked not done on %s\n", task.Name, date)
	}
	return nil
}
