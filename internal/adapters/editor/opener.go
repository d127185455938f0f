package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/bilalayas/takipcim/internal/logging"
)

// EnvEditor overrides $VISUAL and $EDITOR for takipcim only
const EnvEditor = "TAKIPCIM_EDITOR"

// Opener implements ports.EditorOpener with a terminal editor in the foreground
type Opener struct {
	lookPath func(file string) (string, error)
	run      func(cmd *exec.Cmd) error
}

// NewOpener creates a new editor opener
func NewOpener() *Opener {
	return &Opener{
		lookPath: exec.LookPath,
		run:      (*exec.Cmd).Run,
	}
}

// Open edits path and waits for the editor to exit.
// Priority: cliEditor → $TAKIPCIM_EDITOR → $VISUAL → $EDITOR → platform defaults
func (o *Opener) Open(path string, cliEditor string) error {
	if path == "" {
		return fmt.Errorf("no path provided")
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("path does not exist: %w", err)
	}

	editor, args := o.findEditor(cliEditor)
	if editor == "" {
		return fmt.Errorf("no suitable editor found. Set --editor flag, $%s, $VISUAL, or $EDITOR", EnvEditor)
	}

	logging.Logger.Info("Opening editor", "editor", editor, "path", path)

	cmd := exec.Command(editor, append(args, path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := o.run(cmd); err != nil {
		return fmt.Errorf("editor %s failed: %w", editor, err)
	}
	return nil
}

// findEditor returns the editor binary and its leading arguments.
// Values like "code --wait" are split on spaces.
func (o *Opener) findEditor(cliEditor string) (string, []string) {
	for _, candidate := range []string{
		cliEditor,
		os.Getenv(EnvEditor),
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
	} {
		if fields := strings.Fields(candidate); len(fields) > 0 {
			return fields[0], fields[1:]
		}
	}

	for _, editor := range defaultEditors {
		if _, err := o.lookPath(editor); err == nil {
			return editor, nil
		}
	}
	return "", nil
}
