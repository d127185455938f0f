package ports

import "github.com/bilalayas/takipcim/internal/domain"

// Notifier plays an audible cue for an alert
type Notifier interface {
	Notify(alert domain.Alert) error
}
