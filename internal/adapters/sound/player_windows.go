//go:build windows

package sound

import "github.com/bilalayas/takipcim/internal/domain"

// commandsFor plays system sounds through PowerShell
func commandsFor(alert domain.Alert) []soundCommand {
	primary := "[System.Media.SystemSounds]::Beep.Play()"
	switch alert {
	case domain.AlertBreakOver:
		primary = "[System.Media.SystemSounds]::Exclamation.Play()"
	case domain.AlertFinished:
		primary = "[System.Media.SystemSounds]::Asterisk.Play()"
	}

	return []soundCommand{
		{cmd: "powershell", args: []string{"-c", primary}},
		{cmd: "powershell", args: []string{"-c", "[System.Media.SystemSounds]::Beep.Play()"}},
	}
}
