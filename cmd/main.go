package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/bilalayas/takipcim/internal/cmd"
	"github.com/bilalayas/takipcim/internal/config"
	"github.com/bilalayas/takipcim/internal/version"
)

func main() {
	// Load settings from $TAKIPCIM_HOME/settings.json
	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load settings: %v\n", err)
		settings = &config.Settings{}
	}

	// Container is created in CLI.AfterApply() after logging is initialized
	var cli cmd.CLI
	cli.SetSettings(settings)
	ctx := kong.Parse(&cli,
		kong.Name("takipcim"),
		kong.Description(version.Tagline),
		kong.Vars{
			"version": version.Info(),
		},
		kong.UsageOnError(),
		kong.Bind(&cli),
	)

	err = ctx.Run()
	cli.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
