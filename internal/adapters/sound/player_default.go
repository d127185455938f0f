//go:build !darwin && !linux && !windows

package sound

import "github.com/bilalayas/takipcim/internal/domain"

// commandsFor has nothing to offer; the bell is used
func commandsFor(domain.Alert) []soundCommand {
	return nil
}
