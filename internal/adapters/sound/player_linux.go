//go:build linux

package sound

import "github.com/bilalayas/takipcim/internal/domain"

const freedesktopSounds = "/usr/share/sounds/freedesktop/stereo/"

// commandsFor tries PulseAudio first, then ALSA
func commandsFor(alert domain.Alert) []soundCommand {
	name := "bell"
	switch alert {
	case domain.AlertBreakOver:
		name = "alarm-clock-elapsed"
	case domain.AlertFinished:
		name = "complete"
	}

	return []soundCommand{
		{cmd: "paplay", args: []string{freedesktopSounds + name + ".oga"}},
		{cmd: "aplay", args: []string{freedesktopSounds + name + ".wav"}},
		{cmd: "paplay", args: []string{freedesktopSounds + "bell.oga"}},
	}
}
