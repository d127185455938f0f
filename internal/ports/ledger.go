package ports

import (
	"context"

	"github.com/bilalayas/takipcim/internal/domain"
)

// SessionAppender appends committed sessions
type SessionAppender interface {
	Append(ctx context.Context, session domain.Session) error
}

// CompletionStore reads and writes per-day completion flags.
// Flags are keyed by domain.CompletionKey(taskID, date).
type CompletionStore interface {
	GetCompletion(ctx context.Context, taskID, date string) (bool, error)
	SetCompletion(ctx context.Context, taskID, date string, completed bool) error
}

// Ledger is everything the tracker writes to
type Ledger interface {
	CompletionStore
	SessionAppender
}

// SessionFilter narrows ListSessions results. Zero values match everything.
type SessionFilter struct {
	Date   string
	TaskID string
	Type   domain.SessionType
}

// SessionReader reads committed sessions
type SessionReader interface {
	ListSessions(ctx context.Context, filter SessionFilter) ([]domain.Session, error)
}

// CompletionReader lists all completion flags by key
type CompletionReader interface {
	ListCompletions(ctx context.Context) (map[string]bool, error)
}
