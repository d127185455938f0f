package cmd

import (
	"context"
	"fmt"

	"github.com/bilalayas/takipcim/internal/domain"
	"github.com/bilalayas/takipcim/internal/logging"
)

// TasksDelCmd deletes a task
type TasksDelCmd struct {
	Force bool   `help:"Delete without confirmation" short:"f"`
	Task  string `arg:"" help:"Task id or name"`
}

// Run executes the del command
func (t *TasksDelCmd) Run(cli *CLI) error {
	ctx := context.Background()
	logging.Logger.Info("Executing tasks del command", "task", t.Task, "force", t.Force)

	task, err := cli.Container.TaskService.ResolveTask(ctx, t.Task)
	if err != nil {
		return fmt.Errorf("task '%s': %w", t.Task, err)
	}

	if !t.Force && !t.confirmDeletion(task) {
		return nil
	}

	if err := cli.Container.TaskService.DeleteTask(ctx, task.ID); err != nil {
		return err
	}
	cli.Container.SummaryService.Invalidate()

	fmt.Printf("Task '%s' deleted\n", task.Name)
	return nil
}

func (t *TasksDelCmd) confirmDeletion(task *domain.Task) bool {
	fmt.Printf("WARNING: This will delete task '%s'\n", task.Name)
	if len(task.Dates) > 0 {
		fmt.Printf("  - Remove it from %d planned day(s)\n", len(task.Dates))
	}
	fmt.Println("  - Recorded sessions are kept")
	fmt.Print("\nContinue? (y/N): ")

	var response string
	fmt.Scanln(&response)
	if response != "y" && response != "Y" {
		logging.Logger.Info("User cancelled task deletion", "task", task.ID)
		fmt.Println("Cancelled")
		return false
	}
	return true
}
