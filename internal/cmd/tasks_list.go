package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"text/tabwriter"

	"github.com/bilalayas/takipcim/internal/logging"
	"github.com/bilalayas/takipcim/internal/services"
)

// TasksListCmd lists tasks planned on a day
type TasksListCmd struct {
	All    bool   `help:"List every task regardless of its plan" short:"a"`
	Date   string `help:"Day to list (YYYY-MM-DD, 'today' for today)" default:"today"`
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// taskListEntry is the JSON form of one listed task
type taskListEntry struct {
	Category       string   `json:"category,omitempty"`
	Completed      bool     `json:"completed"`
	Dates          []string `json:"dates"`
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	PlannedMinutes *int     `json:"planned_minutes,omitempty"`
	StartHour      *int     `json:"start_hour,omitempty"`
}

// Run executes the list command
func (t *TasksListCmd) Run(cli *CLI) error {
	date := resolveDate(cli.Container, t.Date)
	if t.All {
		date = ""
	}
	logging.Logger.Debug("Executing tasks list command", "date", date, "format", t.Format)

	tasks, err := cli.Container.TaskService.ListTasks(context.Background(), date)
	if err != nil {
		return err
	}
	sortDayTasks(tasks)

	if t.Format == "json" {
		return t.outputJSON(tasks)
	}
	t.outputTable(date, tasks)
	return nil
}

func (t *TasksListCmd) outputJSON(tasks []services.DayTask) error {
	entries := make([]taskListEntry, 0, len(tasks))
	for _, dt := range tasks {
		entries = append(entries, taskListEntry{
			Category:       dt.Task.Category,
			Completed:      dt.Completed,
			Dates:          dt.Task.Dates,
			ID:             dt.Task.ID,
			Name:           dt.Task.Name,
			PlannedMinutes: dt.Task.PlannedMinutes,
			StartHour:      dt.Task.StartHour,
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func (t *TasksListCmd) outputTable(date string, tasks []services.DayTask) {
	if date != "" {
		fmt.Printf("Tasks for %s\n\n", date)
	}
	if len(tasks) == 0 {
		fmt.Println("No tasks found. Use 'takipcim tasks add <name>' to create one.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DONE\tHOUR\tNAME\tCATEGORY\tPLANNED\tID")
	for _, dt := range tasks {
		done := " "
		if dt.Completed {
			done = "✓"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			done,
			formatHour(dt.Task.StartHour),
			dt.Task.Name,
			orDash(dt.Task.Category),
			formatMinutes(dt.Task.PlannedMinutes),
			dt.Task.ID)
	}
	w.Flush()
}

// sortDayTasks orders scheduled tasks by start hour, then the rest by name
func sortDayTasks(tasks []services.DayTask) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i].Task, tasks[j].Task
		switch {
		case a.StartHour != nil && b.StartHour != nil && *a.StartHour != *b.StartHour:
			return *a.StartHour < *b.StartHour
		case a.StartHour != nil && b.StartHour == nil:
			return true
		case a.StartHour == nil && b.StartHour != nil:
			return false
		}
		return a.Name < b.Name
	})
}

func formatHour(h *int) string {
	if h == nil {
		return "-"
	}
	return fmt.Sprintf("%02d:00", *h)
}

func formatMinutes(m *int) string {
	if m == nil {
		return "-"
	}
	return strconv.Itoa(*m) + "m"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
