package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/bilalayas/takipcim/internal/config"
	"github.com/bilalayas/takipcim/internal/domain"
	"github.com/bilalayas/takipcim/internal/logging"
	"github.com/bilalayas/takipcim/internal/ports"
)

// DataService exports and clears all stored data
type DataService struct {
	clock ports.Clock
	repo  ports.Repository
}

// NewDataService creates a new DataService
func NewDataService(repo ports.Repository, clock ports.Clock) *DataService {
	return &DataService{
		clock: clock,
		repo:  repo,
	}
}

// Collect loads tasks, sessions and completions concurrently
func (s *DataService) Collect(ctx context.Context, settings *config.Settings) (*ExportData, error) {
	var (
		completions map[string]bool
		sessions    []domain.Session
		tasks       []domain.Task
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		tasks, err = s.repo.ListTasks(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		sessions, err = s.repo.ListSessions(gctx, ports.SessionFilter{})
		return err
	})
	g.Go(func() error {
		var err error
		completions, err = s.repo.ListCompletions(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load data: %w", err)
	}

	data := &ExportData{
		Completions: completions,
		ExportedAt:  s.clock.Now(),
		Sessions:    make([]ExportSession, 0, len(sessions)),
		Settings:    settings,
		Tasks:       make([]ExportTask, 0, len(tasks)),
	}
	for _, t := range tasks {
		dates := t.Dates
		if dates == nil {
			dates = []string{}
		}
		data.Tasks = append(data.Tasks, ExportTask{
			Category:       t.Category,
			Dates:          dates,
			ID:             t.ID,
			Name:           t.Name,
			PlannedMinutes: t.PlannedMinutes,
			StartHour:      t.StartHour,
		})
	}
	for _, session := range sessions {
		data.Sessions = append(data.Sessions, ExportSession{
			Date:      session.Date,
			Duration:  session.Duration,
			ID:        session.ID,
			TaskID:    session.TaskID,
			TaskName:  session.TaskName,
			Timestamp: session.Timestamp,
			Type:      string(session.Type),
		})
	}
	return data, nil
}

// Export writes all data as indented JSON
func (s *DataService) Export(ctx context.Context, w io.Writer, settings *config.Settings) error {
	data, err := s.Collect(ctx, settings)
	if err != nil {
		return err
	}

	logging.Logger.Info("Exporting data",
		"tasks", len(data.Tasks),
		"sessions", len(data.Sessions),
		"completions", len(data.Completions))

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("failed to encode export: %w", err)
	}
	return nil
}

// Clear removes every task, session and completion
func (s *DataService) Clear(ctx context.Context) error {
	logging.Logger.Warn("Clearing all data")
	if err := s.repo.ClearAll(ctx); err != nil {
		return fmt.Errorf("failed to clear data: %w", err)
	}
	return nil
}
