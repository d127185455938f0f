package cmd

import (
	"context"
	"path/filepath"

	"github.com/bilalayas/takipcim/internal/config"
	"github.com/bilalayas/takipcim/internal/logging"
	"github.com/bilalayas/takipcim/internal/server"
)

// ServeCmd serves the TUI over SSH to keys in authorized_keys
type ServeCmd struct {
	AuthorizedKeys string `help:"authorized_keys file (default: $TAKIPCIM_HOME/ssh/authorized_keys)" name:"authorized-keys" type:"path"`
	Host           string `help:"Address to listen on" default:"localhost"`
	Port           string `help:"Port to listen on" default:"23234"`
}

// Run starts the SSH server
func (s *ServeCmd) Run(cli *CLI) error {
	settings, err := cli.validSettings()
	if err != nil {
		return err
	}

	// the served tracker is the single live tracker for this home
	trackerLock, err := acquireTrackerLock()
	if err != nil {
		return err
	}
	defer trackerLock.Release()

	sshDir := config.GetSSHDir()
	authorizedKeys := s.AuthorizedKeys
	if authorizedKeys == "" {
		authorizedKeys = filepath.Join(sshDir, "authorized_keys")
	}

	logging.Logger.Info("Executing serve command",
		"host", s.Host,
		"port", s.Port,
		"authorized_keys", authorizedKeys)

	srv, err := server.NewServer(server.Config{
		AuthorizedKeysPath: authorizedKeys,
		Host:               s.Host,
		HostKeyPath:        filepath.Join(sshDir, "id_ed25519"),
		Port:               s.Port,
		SettingsPath:       config.GetSettingsPath(),
	},
		cli.Container.NewTracker(settings),
		cli.Container.TaskService,
		cli.Container.SummaryService,
		settings,
	)
	if err != nil {
		return err
	}

	return srv.Start(context.Background())
}
