package sound

import (
	"io"
	"os"
	"os/exec"

	"github.com/bilalayas/takipcim/internal/domain"
	"github.com/bilalayas/takipcim/internal/logging"
)

// soundCommand is one way of playing a sound on the current platform
type soundCommand struct {
	args []string
	cmd  string
}

// Player implements ports.Notifier with the platform's sound player,
// ringing the terminal bell when none is available.
type Player struct {
	bell   io.Writer
	lookup func(alert domain.Alert) []soundCommand
	run    func(c soundCommand) error
}

// NewPlayer creates a player that falls back to a bell on stdout
func NewPlayer() *Player {
	return &Player{
		bell:   os.Stdout,
		lookup: commandsFor,
		run:    runCommand,
	}
}

// Notify plays the sound for alert
func (p *Player) Notify(alert domain.Alert) error {
	for _, c := range p.lookup(alert) {
		err := p.run(c)
		if err == nil {
			return nil
		}
		logging.Logger.Debug("Sound command failed", "cmd", c.cmd, "error", err)
	}
	return ringBell(p.bell)
}

func runCommand(c soundCommand) error {
	return exec.Command(c.cmd, c.args...).Run()
}

// Bell implements ports.Notifier by ringing the terminal bell on w.
// SSH sessions use it so the cue reaches the remote terminal.
type Bell struct {
	w io.Writer
}

// NewBell creates a bell writing to w
func NewBell(w io.Writer) *Bell {
	return &Bell{w: w}
}

// Notify rings the bell whatever the alert
func (b *Bell) Notify(domain.Alert) error {
	return ringBell(b.w)
}

func ringBell(w io.Writer) error {
	_, err := io.WriteString(w, "\a")
	return err
}
