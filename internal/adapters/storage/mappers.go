package storage

import (
	"github.com/bilalayas/takipcim/internal/domain"
)

// taskModelToDomain converts a TaskModel (GORM) and its scheduled dates to domain.Task
func taskModelToDomain(m TaskModel, dates []string) domain.Task {
	return domain.Task{
		Category:       m.Category,
		Dates:          dates,
		ID:             m.ID,
		Name:           m.Name,
		PlannedMinutes: m.PlannedMinutes,
		StartHour:      m.StartHour,
	}
}

// domainToTaskModel converts a domain.Task to TaskModel (GORM). Dates are stored separately.
func domainToTaskModel(t domain.Task) TaskModel {
	return TaskModel{
		Category:       t.Category,
		ID:             t.ID,
		Name:           t.Name,
		PlannedMinutes: t.PlannedMinutes,
		StartHour:      t.StartHour,
	}
}

// sessionModelToDomain converts a SessionModel (GORM) to domain.Session
func sessionModelToDomain(m SessionModel) domain.Session {
	return domain.Session{
		Date:      m.Date,
		Duration:  m.Duration,
		ID:        m.ID,
		TaskID:    m.TaskID,
		TaskName:  m.TaskName,
		Timestamp: m.Timestamp.Local(),
		Type:      domain.SessionType(m.Type),
	}
}

// domainToSessionModel converts a domain.Session to SessionModel (GORM)
func domainToSessionModel(s domain.Session) SessionModel {
	return SessionModel{
		Date:      s.Date,
		Duration:  s.Duration,
		ID:        s.ID,
		TaskID:    s.TaskID,
		TaskName:  s.TaskName,
		Timestamp: s.Timestamp,
		Type:      string(s.Type),
	}
}
