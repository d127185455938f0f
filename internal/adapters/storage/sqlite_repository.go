package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/bilalayas/takipcim/internal/domain"
	"github.com/bilalayas/takipcim/internal/logging"
	"github.com/bilalayas/takipcim/internal/ports"
)

const defaultRetries = 3

// SQLiteRepository implements ports.Repository using GORM
type SQLiteRepository struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.Repository = (*SQLiteRepository)(nil)

// gormLogger routes GORM output through the application logger
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		logging.Logger.Error("gorm query error", "error", err, "duration", elapsed, "sql", sql, "rows", rows)
	case elapsed > 200*time.Millisecond:
		logging.Logger.Warn("slow query", "duration", elapsed, "sql", sql, "rows", rows)
	default:
		logging.Logger.Debug("gorm query", "duration", elapsed, "sql", sql, "rows", rows)
	}
}

func newGormLogger() logger.Interface {
	if logging.Enabled() {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteRepository opens (and migrates) the database at dbPath
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if strings.HasPrefix(dbPath, "~") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(homeDir, dbPath[1:])
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	// Pragmas go in the DSN so that every pooled connection gets them
	dsn := "file:" + dbPath + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL&_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:      newGormLogger(),
		NowFunc:     func() time.Time { return time.Now().UTC() },
		PrepareStmt: false,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := migrate(db); err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	logging.Logger.Debug("Database opened", "path", dbPath)
	return &SQLiteRepository{db: db}, nil
}

// NewSQLiteRepositoryForPath opens state.db inside a TAKIPCIM_HOME directory
func NewSQLiteRepositoryForPath(homePath string) (*SQLiteRepository, error) {
	return NewSQLiteRepository(filepath.Join(homePath, "state.db"))
}

func migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&TaskModel{}, &SessionModel{}); err != nil {
		if !strings.Contains(err.Error(), "already exists") {
			return fmt.Errorf("failed to migrate schema: %w", err)
		}
	}

	migrator := db.Migrator()

	if !migrator.HasTable(&TaskDateModel{}) {
		if err := db.Exec(`
			CREATE TABLE IF NOT EXISTS task_dates (
				task_id TEXT NOT NULL,
				date TEXT NOT NULL,
				created_at DATETIME,
				PRIMARY KEY (task_id, date),
				FOREIGN KEY (task_id) REFERENCES tasks(id) ON UPDATE CASCADE ON DELETE CASCADE
			)
		`).Error; err != nil {
			return fmt.Errorf("failed to create task_dates table: %w", err)
		}
	}

	// Completions outlive their task, like sessions do
	if !migrator.HasTable(&CompletionModel{}) {
		if err := db.Exec(`
			CREATE TABLE IF NOT EXISTS completions (
				completion_key TEXT PRIMARY KEY,
				task_id TEXT NOT NULL,
				date TEXT NOT NULL,
				completed INTEGER NOT NULL DEFAULT 0,
				created_at DATETIME,
				updated_at DATETIME
			)
		`).Error; err != nil {
			return fmt.Errorf("failed to create completions table: %w", err)
		}
		if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_completion_task ON completions(task_id)`).Error; err != nil {
			return fmt.Errorf("failed to create completions index: %w", err)
		}
	}

	return nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// GetTask implements TaskDirectory.GetTask
func (r *SQLiteRepository) GetTask(ctx context.Context, id string) (*domain.Task, error) {
	var task domain.Task
	err := withRetry(func() error {
		var model TaskModel
		if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: %s", domain.ErrTaskNotFound, id)
			}
			return fmt.Errorf("failed to load task: %w", err)
		}

		dates, err := r.taskDates(ctx, id)
		if err != nil {
			return err
		}
		task = taskModelToDomain(model, dates)
		return nil
	}, defaultRetries)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// FindTaskByName implements TaskLister.FindTaskByName (case-insensitive)
func (r *SQLiteRepository) FindTaskByName(ctx context.Context, name string) (*domain.Task, error) {
	tasks, err := r.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	for i := range tasks {
		if domain.SameName(tasks[i].Name, name) {
			return &tasks[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrTaskNotFound, name)
}

// ListTasks implements TaskLister.ListTasks, oldest first
func (r *SQLiteRepository) ListTasks(ctx context.Context) ([]domain.Task, error) {
	var result []domain.Task
	err := withRetry(func() error {
		var models []TaskModel
		if err := r.db.WithContext(ctx).Order("created_at ASC, name ASC").Find(&models).Error; err != nil {
			return fmt.Errorf("failed to list tasks: %w", err)
		}

		var dateModels []TaskDateModel
		if err := r.db.WithContext(ctx).Order("date ASC").Find(&dateModels).Error; err != nil {
			return fmt.Errorf("failed to list task dates: %w", err)
		}
		datesByTask := make(map[string][]string)
		for _, d := range dateModels {
			datesByTask[d.TaskID] = append(datesByTask[d.TaskID], d.Date)
		}

		result = make([]domain.Task, 0, len(models))
		for _, m := range models {
			result = append(result, taskModelToDomain(m, datesByTask[m.ID]))
		}
		return nil
	}, defaultRetries)
	return result, err
}

// AddTask implements TaskWriter.AddTask
func (r *SQLiteRepository) AddTask(ctx context.Context, task domain.Task) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			model := domainToTaskModel(task)
			if err := tx.Create(&model).Error; err != nil {
				return fmt.Errorf("failed to create task: %w", err)
			}
			for _, date := range task.Dates {
				if err := addDate(tx, task.ID, date); err != nil {
					return err
				}
			}
			return nil
		})
	}, defaultRetries)
}

// AddTaskDate implements TaskWriter.AddTaskDate. Scheduling the same date twice is a no-op.
func (r *SQLiteRepository) AddTaskDate(ctx context.Context, id, date string) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var count int64
			if err := tx.Model(&TaskModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
				return fmt.Errorf("failed to load task: %w", err)
			}
			if count == 0 {
				return fmt.Errorf("%w: %s", domain.ErrTaskNotFound, id)
			}
			return addDate(tx, id, date)
		})
	}, defaultRetries)
}

func addDate(tx *gorm.DB, taskID, date string) error {
	err := tx.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&TaskDateModel{TaskID: taskID, Date: date}).Error
	if err != nil {
		return fmt.Errorf("failed to schedule task on %s: %w", date, err)
	}
	return nil
}

// DeleteTask implements TaskWriter.DeleteTask. Sessions and completions are kept.
func (r *SQLiteRepository) DeleteTask(ctx context.Context, id string) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("task_id = ?", id).Delete(&TaskDateModel{}).Error; err != nil {
				return fmt.Errorf("failed to delete task dates: %w", err)
			}
			result := tx.Where("id = ?", id).Delete(&TaskModel{})
			if result.Error != nil {
				return fmt.Errorf("failed to delete task: %w", result.Error)
			}
			if result.RowsAffected == 0 {
				return fmt.Errorf("%w: %s", domain.ErrTaskNotFound, id)
			}
			return nil
		})
	}, defaultRetries)
}

func (r *SQLiteRepository) taskDates(ctx context.Context, id string) ([]string, error) {
	var dates []string
	err := r.db.WithContext(ctx).Model(&TaskDateModel{}).
		Where("task_id = ?", id).
		Order("date ASC").
		Pluck("date", &dates).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load task dates: %w", err)
	}
	return dates, nil
}

// Append implements SessionAppender.Append
func (r *SQLiteRepository) Append(ctx context.Context, session domain.Session) error {
	if session.Duration <= 0 {
		return fmt.Errorf("refusing to append session with duration %d", session.Duration)
	}
	return withRetry(func() error {
		model := domainToSessionModel(session)
		if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
			return fmt.Errorf("failed to append session: %w", err)
		}
		logging.Logger.Debug("Session appended",
			"id", session.ID,
			"task_id", session.TaskID,
			"type", session.Type,
			"duration", session.Duration)
		return nil
	}, defaultRetries)
}

// ListSessions implements SessionReader.ListSessions in timestamp order
func (r *SQLiteRepository) ListSessions(ctx context.Context, filter ports.SessionFilter) ([]domain.Session, error) {
	var result []domain.Session
	err := withRetry(func() error {
		query := r.db.WithContext(ctx).Model(&SessionModel{})
		if filter.Date != "" {
			query = query.Where("date = ?", filter.Date)
		}
		if filter.TaskID != "" {
			query = query.Where("task_id = ?", filter.TaskID)
		}
		if filter.Type != "" {
			query = query.Where("type = ?", string(filter.Type))
		}

		var models []SessionModel
		if err := query.Order("timestamp ASC").Find(&models).Error; err != nil {
			return fmt.Errorf("failed to list sessions: %w", err)
		}

		result = make([]domain.Session, 0, len(models))
		for _, m := range models {
			result = append(result, sessionModelToDomain(m))
		}
		return nil
	}, defaultRetries)
	return result, err
}

// GetCompletion implements CompletionStore.GetCompletion. A missing flag reads as false.
func (r *SQLiteRepository) GetCompletion(ctx context.Context, taskID, date string) (bool, error) {
	var completed bool
	err := withRetry(func() error {
		var model CompletionModel
		err := r.db.WithContext(ctx).Where("completion_key = ?", domain.CompletionKey(taskID, date)).First(&model).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			completed = false
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to load completion: %w", err)
		}
		completed = model.Completed
		return nil
	}, defaultRetries)
	return completed, err
}

// SetCompletion implements CompletionStore.SetCompletion as an upsert
func (r *SQLiteRepository) SetCompletion(ctx context.Context, taskID, date string, completed bool) error {
	return withRetry(func() error {
		model := CompletionModel{
			Completed:     completed,
			CompletionKey: domain.CompletionKey(taskID, date),
			Date:          date,
			TaskID:        taskID,
		}
		err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "completion_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"completed", "updated_at"}),
		}).Create(&model).Error
		if err != nil {
			return fmt.Errorf("failed to set completion: %w", err)
		}
		return nil
	}, defaultRetries)
}

// ListCompletions implements CompletionReader.ListCompletions
func (r *SQLiteRepository) ListCompletions(ctx context.Context) (map[string]bool, error) {
	result := make(map[string]bool)
	err := withRetry(func() error {
		var models []CompletionModel
		if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
			return fmt.Errorf("failed to list completions: %w", err)
		}
		clear(result)
		for _, m := range models {
			result[m.CompletionKey] = m.Completed
		}
		return nil
	}, defaultRetries)
	return result, err
}

// ClearAll removes every task, session and completion
func (r *SQLiteRepository) ClearAll(ctx context.Context) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			for _, table := range []string{"task_dates", "completions", "sessions", "tasks"} {
				if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
					return fmt.Errorf("failed to clear %s: %w", table, err)
				}
			}
			return nil
		})
	}, defaultRetries)
}

// withRetry retries operations on SQLITE_BUSY with exponential backoff
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			logging.Logger.Warn("Database busy, retrying", "attempt", i+1, "error", err)
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}
