package cmd

import (
	"context"
	"fmt"

	"github.com/bilalayas/takipcim/internal/logging"
)

// SessionsClearCmd deletes all stored data
type SessionsClearCmd struct {
	Yes bool `help:"Confirm deletion of all data" short:"y"`
}

// Run executes the clear command
func (s *SessionsClearCmd) Run(cli *CLI) error {
	if !s.Yes {
		return fmt.Errorf("this deletes every task, session and completion; re-run with --yes to confirm")
	}

	// a running tracker would commit into the emptied database
	trackerLock, err := acquireTrackerLock()
	if err != nil {
		return err
	}
	defer trackerLock.Release()

	logging.Logger.Info("Executing sessions clear command")
	if err := cli.Container.DataService.Clear(context.Background()); err != nil {
		return err
	}
	cli.Container.SummaryService.Invalidate()

	fmt.Println("All tasks, sessions and completions deleted")
	return nil
}
