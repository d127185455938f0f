package services

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bilalayas/takipcim/internal/adapters/clock"
	"github.com/bilalayas/takipcim/internal/adapters/storage"
)

const today = "2026-10-17"

func newTestClock() *clock.Manual {
	return clock.NewManual(time.Date(2026, 10, 17, 14, 30, 0, 0, time.Local))
}

func newTestRepository(t *testing.T) *storage.SQLiteRepository {
	t.Helper()
	repo, err := storage.NewSQLiteRepository(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func intPtr(v int) *int { return &v }

func mustCreate(t *testing.T, s *TaskService, name, date string) string {
	t.Helper()
	task, err := s.CreateTask(context.Background(), CreateTaskParams{Name: name, Date: date})
	require.NoError(t, err)
	return task.ID
}
