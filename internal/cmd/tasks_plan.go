package cmd

import (
	"context"
	"fmt"

	"github.com/bilalayas/takipcim/internal/logging"
)

// TasksPlanCmd plans an existing task on a day
type TasksPlanCmd struct {
	Date string `help:"Day to plan the task on (YYYY-MM-DD, 'today' for today)" default:"today"`
	Task string `arg:"" help:"Task id or name"`
}

// Run executes the plan command
func (t *TasksPlanCmd) Run(cli *CLI) error {
	ctx := context.Background()
	date := resolveDate(cli.Container, t.Date)
	logging.Logger.Debug("Executing tasks plan command", "task", t.Task, "date", date)

	task, err := cli.Container.TaskService.ResolveTask(ctx, t.Task)
	if err != nil {
		return fmt.Errorf("task '%s': %w", t.Task, err)
	}

	if task.PlannedOn(date) {
		fmt.Printf("Task '%s' is already planned on %s\n", task.Name, date)
		return nil
	}
	if err := cli.Container.TaskService.PlanTask(ctx, task.ID, date); err != nil {
		return err
	}

	fmt.Printf("Task '%s' planned on %s\n", task.Name, date)
	return nil
}
