package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/bilalayas/takipcim/internal/config"
	"github.com/bilalayas/takipcim/internal/logging"
)

// SessionsExportCmd writes every task, session and completion as JSON
type SessionsExportCmd struct {
	Output string `help:"Write to this file instead of stdout" short:"o" type:"path"`
}

// Run executes the export command
func (s *SessionsExportCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing sessions export command", "output", s.Output)

	settings := cli.settings
	if settings == nil {
		settings = &config.Settings{}
	}

	var w io.Writer = os.Stdout
	if s.Output != "" {
		f, err := os.Create(s.Output)
		if err != nil {
			return fmt.Errorf("failed to create export file: %w", err)
		}
		defer f.Close()
		w = f
	}

	if err := cli.Container.DataService.Export(context.Background(), w, settings); err != nil {
		return err
	}

	if s.Output != "" {
		fmt.Printf("Data exported to %s\n", s.Output)
	}
	return nil
}
