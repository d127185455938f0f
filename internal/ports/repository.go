package ports

import "context"

// Repository is the composite storage interface implemented by the SQLite adapter
type Repository interface {
	CompletionReader
	Ledger
	SessionReader
	TaskRepository
	ClearAll(ctx context.Context) error
	Close() error
}
