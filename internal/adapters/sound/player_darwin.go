//go:build darwin

package sound

import "github.com/bilalayas/takipcim/internal/domain"

// commandsFor picks system sounds played with afplay
func commandsFor(alert domain.Alert) []soundCommand {
	var files []string
	switch alert {
	case domain.AlertBreakOver:
		files = []string{"/System/Library/Sounds/Submarine.aiff", "/System/Library/Sounds/Ping.aiff"}
	case domain.AlertFinished:
		files = []string{"/System/Library/Sounds/Glass.aiff", "/System/Library/Sounds/Tink.aiff"}
	default:
		files = []string{"/System/Library/Sounds/Glass.aiff"}
	}

	commands := make([]soundCommand, 0, len(files))
	for _, f := range files {
		commands = append(commands, soundCommand{cmd: "afplay", args: []string{f}})
	}
	return commands
}
