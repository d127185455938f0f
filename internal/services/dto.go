package services

import (
	"time"

	"github.com/bilalayas/takipcim/internal/config"
	"github.com/bilalayas/takipcim/internal/domain"
)

// CreateTaskParams contains parameters for creating a new task
type CreateTaskParams struct {
	Category       string
	Date           string // optional YYYY-MM-DD to plan the task on
	Name           string
	PlannedMinutes *int
	StartHour      *int
}

// DayTask is a task as seen on one calendar day
type DayTask struct {
	Completed bool
	Task      domain.Task
}

// ExportData is the JSON document written by sessions export
type ExportData struct {
	Completions map[string]bool  `json:"completions"`
	ExportedAt  time.Time        `json:"exported_at"`
	Sessions    []ExportSession  `json:"sessions"`
	Settings    *config.Settings `json:"settings"`
	Tasks       []ExportTask     `json:"tasks"`
}

// ExportSession is the export form of domain.Session
type ExportSession struct {
	Date      string    `json:"date"`
	Duration  int       `json:"duration"`
	ID        string    `json:"id"`
	TaskID    string    `json:"task_id"`
	TaskName  string    `json:"task_name"`
	Timestamp time.Time `json:"timestamp"`
	Type      string    `json:"type"`
}

// ExportTask is the export form of domain.Task
type ExportTask struct {
	Category       string   `json:"category,omitempty"`
	Dates          []string `json:"dates"`
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	PlannedMinutes *int     `json:"planned_minutes,omitempty"`
	StartHour      *int     `json:"start_hour,omitempty"`
}
