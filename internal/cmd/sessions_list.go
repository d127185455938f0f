package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/bilalayas/takipcim/internal/domain"
	"github.com/bilalayas/takipcim/internal/logging"
	"github.com/bilalayas/takipcim/internal/ports"
)

// SessionsListCmd lists recorded sessions
type SessionsListCmd struct {
	All    bool   `help:"List sessions of every day" short:"a"`
	Date   string `help:"Day to list (YYYY-MM-DD, 'today' for today)" default:"today"`
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Task   string `help:"Only sessions of this task (id or name)"`
	Type   string `help:"Only sessions of this type" enum:"all,work,break" default:"all"`
}

// sessionListEntry is the JSON form of one listed session
type sessionListEntry struct {
	Date      string `json:"date"`
	Duration  int    `json:"duration"`
	ID        string `json:"id"`
	TaskID    string `json:"task_id"`
	TaskName  string `json:"task_name"`
	Timestamp string `json:"timestamp"`
	Type      string `json:"type"`
}

// Run executes the list command
func (s *SessionsListCmd) Run(cli *CLI) error {
	ctx := context.Background()

	filter, err := s.filter(ctx, cli.Container)
	if err != nil {
		return err
	}
	logging.Logger.Debug("Executing sessions list command",
		"date", filter.Date,
		"task", filter.TaskID,
		"type", filter.Type)

	sessions, err := cli.Container.SummaryService.Sessions(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}

	if s.Format == "json" {
		return s.outputJSON(sessions)
	}
	s.outputTable(sessions)
	return nil
}

func (s *SessionsListCmd) filter(ctx context.Context, c *Container) (ports.SessionFilter, error) {
	var filter ports.SessionFilter
	if !s.All {
		filter.Date = resolveDate(c, s.Date)
	}
	if s.Type != "all" {
		filter.Type = domain.SessionType(s.Type)
	}
	if s.Task != "" {
		// break sessions without a task are recorded against a sentinel id
		if s.Task == domain.BreakTaskID {
			filter.TaskID = domain.BreakTaskID
			return filter, nil
		}
		task, err := c.TaskService.ResolveTask(ctx, s.Task)
		if err != nil {
			return filter, fmt.Errorf("task '%s': %w", s.Task, err)
		}
		filter.TaskID = task.ID
	}
	return filter, nil
}

func (s *SessionsListCmd) outputJSON(sessions []domain.Session) error {
	entries := make([]sessionListEntry, 0, len(sessions))
	for _, sess := range sessions {
		entries = append(entries, sessionListEntry{
			Date:      sess.Date,
			Duration:  sess.Duration,
			ID:        sess.ID,
			TaskID:    sess.TaskID,
			TaskName:  sess.TaskName,
			Timestamp: sess.Timestamp.Format(time.RFC3339),
			Type:      string(sess.Type),
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func (s *SessionsListCmd) outputTable(sessions []domain.Session) {
	if len(sessions) == 0 {
		fmt.Println("No sessions recorded.")
		return
	}

	var work, brk int
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tTIME\tTYPE\tTASK\tDURATION")
	for _, sess := range sessions {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			sess.Date,
			sess.Timestamp.Local().Format("15:04"),
			sess.Type,
			sess.TaskName,
			domain.FormatElapsed(sess.Duration))
		if sess.Type == domain.SessionBreak {
			brk += sess.Duration
		} else {
			work += sess.Duration
		}
	}
	w.Flush()

	fmt.Printf("\n%d session(s), work %s, break %s\n",
		len(sessions), domain.FormatElapsed(work), domain.FormatElapsed(brk))
}
