package cmd

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bilalayas/takipcim/internal/adapters/lock"
	adapterstorage "github.com/bilalayas/takipcim/internal/adapters/storage"
	"github.com/bilalayas/takipcim/internal/config"
	"github.com/bilalayas/takipcim/internal/domain"
	"github.com/bilalayas/takipcim/internal/services"
)

// seedSessions records a work and a break session today and a work session on another day
func seedSessions(t *testing.T) domain.Task {
	t.Helper()

	repo, err := adapterstorage.NewSQLiteRepository(config.GetDBPath())
	require.NoError(t, err)
	defer repo.Close()

	ctx := context.Background()
	now := time.Now()
	task := domain.Task{ID: "task-1", Name: "Write report", Dates: []string{domain.DateOf(now)}}
	require.NoError(t, repo.AddTask(ctx, task))

	require.NoError(t, repo.Append(ctx, domain.NewSession(task.Ref(), domain.SessionWork, 1500, now)))
	require.NoError(t, repo.Append(ctx, domain.NewSession(
		domain.TaskRef{ID: domain.BreakTaskID, Name: domain.BreakTaskName}, domain.SessionBreak, 300, now)))
	require.NoError(t, repo.Append(ctx, domain.NewSession(task.Ref(), domain.SessionWork, 60,
		time.Date(2020, 1, 1, 10, 0, 0, 0, time.Local))))
	return task
}

func TestSessionsList_Filters(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantCount int
		wantType  string
	}{
		{name: "today", args: nil, wantCount: 2},
		{name: "every day", args: []string{"--all"}, wantCount: 3},
		{name: "given day", args: []string{"--date", "2020-01-01"}, wantCount: 1},
		{name: "work only", args: []string{"--type", "work"}, wantCount: 1, wantType: "work"},
		{name: "break only", args: []string{"--type", "break"}, wantCount: 1, wantType: "break"},
		{name: "by task name", args: []string{"--all", "--task", "write report"}, wantCount: 2, wantType: "work"},
		{name: "break sentinel", args: []string{"--task", "break"}, wantCount: 1, wantType: "break"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			newTestHome(t)
			seedSessions(t)

			args := append([]string{"sessions", "list", "--format", "json"}, tt.args...)
			var sessions []sessionListEntry
			assertValidJSON(t, runCommand(t, args...), &sessions)

			require.Len(t, sessions, tt.wantCount)
			if tt.wantType != "" {
				for _, s := range sessions {
					assert.Equal(t, tt.wantType, s.Type)
				}
			}
		})
	}
}

func TestSessionsList_Table(t *testing.T) {
	newTestHome(t)
	seedSessions(t)

	result := runCommand(t, "sessions", "list")

	assertSuccess(t, result)
	assert.Contains(t, result.Stdout, "Write report")
	assert.Contains(t, result.Stdout, "25:00")
	assert.Contains(t, result.Stdout, "2 session(s), work 25:00, break 05:00")
}

func TestSessionsList_Empty(t *testing.T) {
	newTestHome(t)

	result := runCommand(t, "sessions", "list")

	assertSuccess(t, result)
	assert.Contains(t, result.Stdout, "No sessions recorded.")
}

func TestSessionsExport_ToFile(t *testing.T) {
	home := newTestHome(t)
	seedSessions(t)
	out := filepath.Join(home, "export.json")

	result := runCommand(t, "sessions", "export", "--output", out)
	assertSuccess(t, result)
	assert.Contains(t, result.Stdout, "Data exported to")

	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	var data services.ExportData
	require.NoError(t, json.Unmarshal(raw, &data))
	assert.Len(t, data.Tasks, 1)
	assert.Len(t, data.Sessions, 3)
	assert.NotNil(t, data.Settings)
}

func TestSessionsClear_RequiresConfirmation(t *testing.T) {
	newTestHome(t)
	seedSessions(t)

	result := runCommand(t, "sessions", "clear")
	assert.ErrorContains(t, result.Err, "--yes")

	var sessions []sessionListEntry
	assertValidJSON(t, runCommand(t, "sessions", "list", "--all", "--format", "json"), &sessions)
	assert.Len(t, sessions, 3)
}

func TestSessionsClear_Yes(t *testing.T) {
	newTestHome(t)
	seedSessions(t)

	assertSuccess(t, runCommand(t, "sessions", "clear", "--yes"))

	var sessions []sessionListEntry
	assertValidJSON(t, runCommand(t, "sessions", "list", "--all", "--format", "json"), &sessions)
	assert.Empty(t, sessions)

	var tasks []taskListEntry
	assertValidJSON(t, runCommand(t, "tasks", "list", "--all", "--format", "json"), &tasks)
	assert.Empty(t, tasks)
}

func TestSessionsClear_RefusedWhileTrackerRuns(t *testing.T) {
	newTestHome(t)
	seedSessions(t)
	trackerLock, err := acquireTrackerLock()
	require.NoError(t, err)
	defer trackerLock.Release()

	result := runCommand(t, "sessions", "clear", "--yes")

	assert.ErrorIs(t, result.Err, lock.ErrLocked)
}
