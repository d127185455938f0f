package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bilalayas/takipcim/internal/domain"
	"github.com/bilalayas/takipcim/internal/logging"
	"github.com/bilalayas/takipcim/internal/ports"
)

const (
	// summaryCacheTTL bounds how stale the status line may get without an Invalidate
	summaryCacheTTL = 60 * time.Second
)

// SummaryService aggregates one day of sessions and completions, with caching
type SummaryService struct {
	cache       *domain.DaySummary
	cacheMu     sync.RWMutex
	clock       ports.Clock
	completions ports.CompletionReader
	lastRefresh time.Time
	sessions    ports.SessionReader
	tasks       ports.TaskLister
}

// NewSummaryService creates a new SummaryService
func NewSummaryService(
	sessions ports.SessionReader,
	tasks ports.TaskLister,
	completions ports.CompletionReader,
	clock ports.Clock,
) *SummaryService {
	return &SummaryService{
		clock:       clock,
		completions: completions,
		sessions:    sessions,
		tasks:       tasks,
	}
}

// Today returns today's summary (cached)
func (s *SummaryService) Today(ctx context.Context) (domain.DaySummary, error) {
	today := domain.DateOf(s.clock.Now())

	s.cacheMu.RLock()
	cacheValid := s.cache != nil && s.cache.Date == today && s.clock.Now().Sub(s.lastRefresh) < summaryCacheTTL
	if cacheValid {
		summary := *s.cache
		s.cacheMu.RUnlock()
		return summary, nil
	}
	s.cacheMu.RUnlock()

	summary, err := s.ForDate(ctx, today)
	if err != nil {
		return domain.DaySummary{}, err
	}

	s.cacheMu.Lock()
	s.cache = &summary
	s.lastRefresh = s.clock.Now()
	s.cacheMu.Unlock()

	return summary, nil
}

// Invalidate drops the cached summary, e.g. after a session was committed
func (s *SummaryService) Invalidate() {
	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()
	s.cache = nil
}

// Sessions lists recorded sessions matching filter
func (s *SummaryService) Sessions(ctx context.Context, filter ports.SessionFilter) ([]domain.Session, error) {
	sessions, err := s.sessions.ListSessions(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to load sessions: %w", err)
	}
	return sessions, nil
}

// ForDate computes the summary for date without caching
func (s *SummaryService) ForDate(ctx context.Context, date string) (domain.DaySummary, error) {
	logging.Logger.Debug("Computing day summary", "date", date)

	summary := domain.DaySummary{Date: date}

	sessions, err := s.sessions.ListSessions(ctx, ports.SessionFilter{Date: date})
	if err != nil {
		return summary, fmt.Errorf("failed to load sessions: %w", err)
	}
	for _, session := range sessions {
		switch session.Type {
		case domain.SessionWork:
			summary.WorkSeconds += session.Duration
		case domain.SessionBreak:
			summary.BreakSeconds += session.Duration
		}
	}

	tasks, err := s.tasks.ListTasks(ctx)
	if err != nil {
		return summary, fmt.Errorf("failed to load tasks: %w", err)
	}
	completions, err := s.completions.ListCompletions(ctx)
	if err != nil {
		return summary, fmt.Errorf("failed to load completions: %w", err)
	}
	for _, task := range tasks {
		if !task.PlannedOn(date) {
			continue
		}
		summary.PlannedTasks++
		if completions[domain.CompletionKey(task.ID, date)] {
			summary.CompletedTasks++
		}
	}

	logging.Logger.Debug("Day summary computed",
		"date", date,
		"work_seconds", summary.WorkSeconds,
		"break_seconds", summary.BreakSeconds,
		"planned", summary.PlannedTasks,
		"completed", summary.CompletedTasks)

	return summary, nil
}
