package storage

import "time"

// TaskModel is the GORM model for tasks table
type TaskModel struct {
	Category       string `gorm:"not null;default:''"`
	CreatedAt      time.Time
	ID             string `gorm:"primaryKey"`
	Name           string `gorm:"not null;index:idx_task_name"`
	PlannedMinutes *int   `gorm:"default:null"`
	StartHour      *int   `gorm:"default:null;check:start_hour IS NULL OR (start_hour BETWEEN 0 AND 23)"`
	UpdatedAt      time.Time
}

// TableName specifies the table name for GORM
func (TaskModel) TableName() string { return "tasks" }

// TaskDateModel schedules a task on a calendar date
type TaskDateModel struct {
	CreatedAt time.Time
	Date      string `gorm:"primaryKey"`
	TaskID    string `gorm:"primaryKey"`
}

// TableName specifies the table name for GORM
func (TaskDateModel) TableName() string { return "task_dates" }

// SessionModel is the GORM model for the append-only session ledger
type SessionModel struct {
	CreatedAt time.Time
	Date      string    `gorm:"not null;index:idx_session_date"`
	Duration  int       `gorm:"not null;check:duration > 0"`
	ID        string    `gorm:"primaryKey"`
	TaskID    string    `gorm:"not null;index:idx_session_task"`
	TaskName  string    `gorm:"not null;default:''"`
	Timestamp time.Time `gorm:"not null"`
	Type      string    `gorm:"not null;check:type IN ('work','break')"`
}

// TableName specifies the table name for GORM
func (SessionModel) TableName() string { return "sessions" }

// CompletionModel stores one completion flag per task and day
type CompletionModel struct {
	Completed     bool   `gorm:"not null;default:false"`
	CompletionKey string `gorm:"primaryKey"`
	CreatedAt     time.Time
	Date          string `gorm:"not null"`
	TaskID        string `gorm:"not null;index:idx_completion_task"`
	UpdatedAt     time.Time
}

// TableName specifies the table name for GORM
func (CompletionModel) TableName() string { return "completions" }
