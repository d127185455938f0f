package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bilalayas/takipcim/internal/domain"
	portsmocks "github.com/bilalayas/takipcim/internal/ports/mocks"
)

func TestCreateTask(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)
	service := NewTaskService(repo, repo, newTestClock())

	task, err := service.CreateTask(ctx, CreateTaskParams{
		Category:       " study ",
		Date:           today,
		Name:           "  Linear algebra ",
		PlannedMinutes: intPtr(50),
		StartHour:      intPtr(10),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, task.ID)
	assert.Equal(t, "Linear algebra", task.Name)
	assert.Equal(t, "study", task.Category)
	assert.Equal(t, []string{today}, task.Dates)

	stored, err := repo.GetTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, *task, *stored)
}

func TestCreateTask_Validation(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)
	service := NewTaskService(repo, repo, newTestClock())
	mustCreate(t, service, "Linear algebra", "")

	tests := []struct {
		name    string
		params  CreateTaskParams
		wantErr error
		wantMsg string
	}{
		{name: "empty name", params: CreateTaskParams{Name: "   "}, wantErr: domain.ErrInvalidTaskName},
		{name: "duplicate ignoring case", params: CreateTaskParams{Name: "LINEAR ALGEBRA"}, wantErr: domain.ErrTaskExists},
		{name: "bad start hour", params: CreateTaskParams{Name: "x", StartHour: intPtr(24)}, wantMsg: "start hour"},
		{name: "bad planned minutes", params: CreateTaskParams{Name: "x", PlannedMinutes: intPtr(0)}, wantMsg: "planned minutes"},
		{name: "bad date", params: CreateTaskParams{Name: "x", Date: "17/10/2026"}, wantMsg: "invalid date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.CreateTask(ctx, tt.params)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestListTasks(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)
	service := NewTaskService(repo, repo, newTestClock())

	a := mustCreate(t, service, "Planned today", today)
	mustCreate(t, service, "Planned tomorrow", "2026-10-18")
	mustCreate(t, service, "Unplanned", "")
	require.NoError(t, repo.SetCompletion(ctx, a, today, true))

	day, err := service.ListTasks(ctx, today)
	require.NoError(t, err)
	require.Len(t, day, 1)
	assert.Equal(t, "Planned today", day[0].Task.Name)
	assert.True(t, day[0].Completed)

	all, err := service.ListTasks(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestPlanAndDeleteTask(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)
	service := NewTaskService(repo, repo, newTestClock())
	id := mustCreate(t, service, "Write", "")

	require.NoError(t, service.PlanTask(ctx, id, "2026-10-20"))
	assert.Error(t, service.PlanTask(ctx, id, "tomorrow"))
	assert.ErrorIs(t, service.PlanTask(ctx, "missing", "2026-10-20"), domain.ErrTaskNotFound)

	day, err := service.ListTasks(ctx, "2026-10-20")
	require.NoError(t, err)
	require.Len(t, day, 1)

	require.NoError(t, service.DeleteTask(ctx, id))
	assert.ErrorIs(t, service.DeleteTask(ctx, id), domain.ErrTaskNotFound)
}

func TestResolveTask(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)
	service := NewTaskService(repo, repo, newTestClock())
	id := mustCreate(t, service, "Write thesis", "")

	byID, err := service.ResolveTask(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Write thesis", byID.Name)

	byName, err := service.ResolveTask(ctx, "write THESIS")
	require.NoError(t, err)
	assert.Equal(t, id, byName.ID)

	_, err = service.ResolveTask(ctx, "nothing")
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestFreeWork(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)
	clk := newTestClock()
	service := NewTaskService(repo, repo, clk)

	first, err := service.FreeWork(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.FreeWorkTaskName, first.Name)
	assert.Equal(t, []string{today}, first.Dates)

	again, err := service.FreeWork(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)

	clk.Advance(24 * time.Hour)
	next, err := service.FreeWork(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.ID, next.ID)
	assert.Equal(t, []string{today, "2026-10-18"}, next.Dates)

	tasks, err := repo.ListTasks(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}

func TestToggleCompletion(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)
	service := NewTaskService(repo, repo, newTestClock())
	id := mustCreate(t, service, "Write", today)

	done, err := service.ToggleCompletion(ctx, id, today)
	require.NoError(t, err)
	assert.True(t, done)

	done, err = service.ToggleCompletion(ctx, id, today)
	require.NoError(t, err)
	assert.False(t, done)
}

func TestToggleCompletion_StoreError(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)
	completions := portsmocks.NewMockLedger(t)
	service := NewTaskService(repo, completions, newTestClock())

	completions.EXPECT().GetCompletion(mock.Anything, "t1", today).Return(false, nil)
	completions.EXPECT().SetCompletion(mock.Anything, "t1", today, true).Return(errors.New("readonly database"))

	_, err := service.ToggleCompletion(ctx, "t1", today)
	assert.ErrorContains(t, err, "failed to update completion")
}
