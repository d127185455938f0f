package domain

import (
	"slices"
	"strings"
)

// FreeWorkTaskName is the catch-all task used when the user starts working without planning.
const FreeWorkTaskName = "Free work"

// Task is a user-defined unit of work scheduled on zero or more calendar dates.
type Task struct {
	Category       string
	Dates          []string // YYYY-MM-DD
	ID             string
	Name           string
	PlannedMinutes *int
	StartHour      *int // 0-23
}

// TaskRef is the identity of a task as captured by the timer.
// The name is a copy taken at bind time and is not refreshed on rename.
type TaskRef struct {
	ID   string
	Name string
}

// Ref returns the task's identity.
func (t Task) Ref() TaskRef {
	return TaskRef{ID: t.ID, Name: t.Name}
}

// PlannedOn reports whether the task is scheduled on the given date.
func (t Task) PlannedOn(date string) bool {
	return slices.Contains(t.Dates, date)
}

// SameName compares task names the way duplicate detection does (case-insensitive, trimmed).
func SameName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
