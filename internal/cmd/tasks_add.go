package cmd

import (
	"context"
	"fmt"

	"github.com/bilalayas/takipcim/internal/logging"
	"github.com/bilalayas/takipcim/internal/services"
)

// TasksAddCmd adds a new task
type TasksAddCmd struct {
	Category  string `help:"Free-form category" short:"c"`
	Date      string `help:"Plan the task on this day (YYYY-MM-DD, 'today' for today)" default:"today"`
	Minutes   int    `help:"Planned minutes (0 = no estimate)" short:"m"`
	Name      string `arg:"" help:"Task name (unique, case-insensitive)"`
	StartHour int    `help:"Hour of the day the task starts (0-23, -1 = unscheduled)" default:"-1" name:"start-hour"`
}

// Run executes the add command
func (t *TasksAddCmd) Run(cli *CLI) error {
	logging.Logger.Debug("Executing tasks add command", "name", t.Name, "date", t.Date)

	params := services.CreateTaskParams{
		Category: t.Category,
		Date:     resolveDate(cli.Container, t.Date),
		Name:     t.Name,
	}
	if t.Minutes != 0 {
		params.PlannedMinutes = &t.Minutes
	}
	if t.StartHour >= 0 {
		params.StartHour = &t.StartHour
	}

	task, err := cli.Container.TaskService.CreateTask(context.Background(), params)
	if err != nil {
		return fmt.Errorf("failed to add task: %w", err)
	}

	if params.Date != "" {
		fmt.Printf("Task '%s' added and planned on %s (id %s)\n", task.Name, params.Date, task.ID)
	} else {
		fmt.Printf("Task '%s' added (id %s)\n", task.Name, task.ID)
	}
	return nil
}

// resolveDate maps "today" to the container clock's date; "" stays unplanned
func resolveDate(c *Container, date string) string {
	if date == "today" {
		return c.TaskService.Today()
	}
	return date
}
