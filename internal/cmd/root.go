package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bilalayas/takipcim/internal/adapters/lock"
	"github.com/bilalayas/takipcim/internal/adapters/sound"
	"github.com/bilalayas/takipcim/internal/config"
	"github.com/bilalayas/takipcim/internal/logging"
	"github.com/bilalayas/takipcim/internal/ui"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Run      RunCmd      `cmd:"" help:"Start the takipcim TUI (default)" default:"1"`
	Serve    ServeCmd    `cmd:"serve" help:"Serve the TUI over SSH"`
	Sessions SessionsCmd `cmd:"sessions" help:"Inspect recorded sessions (list, export, clear)"`
	Settings SettingsCmd `cmd:"settings" help:"Manage settings (show, example, set, keys)"`
	Tasks    TasksCmd    `cmd:"tasks" help:"Manage tasks (add, list, plan, done, del)"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// CLI flags > env vars > settings.json > defaults
	if c.settings != nil {
		if c.MaxLogFiles == config.DefaultMaxLogFiles {
			if _, hasEnv := os.LookupEnv(logging.EnvMaxLogFiles); !hasEnv {
				c.MaxLogFiles = c.settings.GetMaxLogFiles()
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv(logging.EnvDebug); !hasEnv {
				c.Debug = c.settings.GetDebug()
			}
		}
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	if c.Debug || c.DebugFile != "" {
		os.Setenv(logging.EnvDebug, "1")
		if logFilePath != "" {
			os.Setenv(logging.EnvDebugFile, logFilePath)
		}
	}
	if c.MaxLogFiles != config.DefaultMaxLogFiles {
		os.Setenv(logging.EnvMaxLogFiles, fmt.Sprintf("%d", c.MaxLogFiles))
	}

	// the GORM logger writes through logging.Logger, so the container comes second
	container, err := NewContainer(config.GetDBPath())
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}

// validSettings returns the loaded settings after checking them
func (c *CLI) validSettings() (*config.Settings, error) {
	settings := c.settings
	if settings == nil {
		settings = &config.Settings{}
	}
	if err := settings.Validate(ui.GetValidKeyNames()); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}
	return settings, nil
}

// acquireTrackerLock takes the single-tracker lock for the home directory
func acquireTrackerLock() (*lock.FileLock, error) {
	trackerLock, err := lock.Acquire(config.GetLockPath())
	if err != nil {
		if errors.Is(err, lock.ErrLocked) {
			return nil, fmt.Errorf("%w: close the other takipcim first", err)
		}
		return nil, err
	}
	return trackerLock, nil
}

// RunCmd starts the TUI application
type RunCmd struct {
	Dev              bool `help:"Enable development mode (shows version info in dialogs)"`
	HoldReleaseGrace int  `help:"Milliseconds without key repeat before a hold counts as released" default:"700"`
}

// Run executes the TUI
func (r *RunCmd) Run(cli *CLI) error {
	settings, err := cli.validSettings()
	if err != nil {
		return err
	}

	trackerLock, err := acquireTrackerLock()
	if err != nil {
		return err
	}
	defer trackerLock.Release()

	logging.Logger.Info("Starting takipcim TUI",
		"hold", settings.GetHoldDuration(),
		"ask_break_timer", settings.GetAskBreakTimer())

	tr := cli.Container.NewTracker(settings)
	model := ui.NewModel(tr, cli.Container.TaskService, cli.Container.SummaryService, settings, ui.Options{
		DevMode:          r.Dev,
		HoldReleaseGrace: millis(r.HoldReleaseGrace),
		Notifier:         sound.NewPlayer(),
		SettingsPath:     config.GetSettingsPath(),
	})

	p := tea.NewProgram(model, tea.WithAltScreen())

	logging.Logger.Info("Starting TUI program")
	if _, err := p.Run(); err != nil {
		logging.Logger.Error("TUI program error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	logging.Logger.Info("TUI program exited normally")
	return nil
}
