package domain

import (
	"time"

	"github.com/google/uuid"
)

// SessionType distinguishes work time from break time
type SessionType string

const (
	SessionBreak SessionType = "break"
	SessionWork  SessionType = "work"
)

// Break sessions recorded without a bound task are attributed to this sentinel.
const (
	BreakTaskID   = "break"
	BreakTaskName = "Break"
)

// DateLayout is the calendar date format used for session dates and completion keys.
const DateLayout = "2006-01-02"

// Session is an immutable record of time spent on a task on a given date.
type Session struct {
	Date      string
	Duration  int // seconds, always > 0 once persisted
	ID        string
	TaskID    string
	TaskName  string
	Timestamp time.Time
	Type      SessionType
}

// NewSession builds a session dated on the local calendar day of at.
func NewSession(ref TaskRef, sessionType SessionType, duration int, at time.Time) Session {
	return Session{
		Date:      DateOf(at),
		Duration:  duration,
		ID:        uuid.New().String(),
		TaskID:    ref.ID,
		TaskName:  ref.Name,
		Timestamp: at,
		Type:      sessionType,
	}
}

// DateOf formats t as a calendar date in t's own location.
func DateOf(t time.Time) string {
	return t.Format(DateLayout)
}

// CompletionKey derives the key shared by every surface that reads or writes completion flags.
func CompletionKey(taskID, date string) string {
	return taskID + "_" + date
}

// DaySummary aggregates one calendar day for the status line
type DaySummary struct {
	BreakSeconds   int
	CompletedTasks int
	Date           string
	PlannedTasks   int
	WorkSeconds    int
}
