package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/bilalayas/takipcim/internal/config"
	"github.com/bilalayas/takipcim/internal/logging"
	"github.com/bilalayas/takipcim/internal/ui"
)

// SettingsCmd manages settings
type SettingsCmd struct {
	Edit    SettingsEditCmd    `cmd:"edit" help:"Open settings.json in an editor"`
	Example SettingsExampleCmd `cmd:"example" help:"Show settings file location and an example"`
	Keys    SettingsKeysCmd    `cmd:"keys" help:"List or change key bindings"`
	Set     SettingsSetCmd     `cmd:"set" help:"Change a setting in settings.json"`
	Show    SettingsShowCmd    `cmd:"show" help:"Show effective settings" default:"1"`
}

// SettingsShowCmd displays the effective value of every setting
type SettingsShowCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// SettingsExampleCmd displays an example settings.json
type SettingsExampleCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// SettingsEditCmd opens settings.json in an editor and checks the result
type SettingsEditCmd struct {
	Editor string `help:"Editor to use (overrides $TAKIPCIM_EDITOR, $VISUAL, $EDITOR)"`
}

// SettingsSetCmd changes one setting
type SettingsSetCmd struct {
	Name  string `arg:"" help:"Setting name as in settings.json (e.g., hold_seconds, break_presets)"`
	Value string `arg:"" help:"New value (lists are comma-separated: 5,10,30)"`
}

// effectiveSettings maps every setting to the value in use, defaults included
func effectiveSettings(s *config.Settings) map[string]any {
	start, end := s.GetPlanningHours()
	return map[string]any{
		"ask_break_timer":       s.GetAskBreakTimer(),
		"break_presets":         s.GetBreakPresets(),
		"debug":                 s.GetDebug(),
		"default_break_minutes": s.GetDefaultBreakMinutes(),
		"error_clear_delay":     int(s.GetErrorClearDelay().Seconds()),
		"hold_seconds":          int(s.GetHoldDuration().Seconds()),
		"max_log_files":         s.GetMaxLogFiles(),
		"notifications":         s.GetNotifications(),
		"planning_hour_end":     end,
		"planning_hour_start":   start,
	}
}

// Run executes the show command
func (s *SettingsShowCmd) Run(cli *CLI) error {
	settings := cli.settings
	if settings == nil {
		settings = &config.Settings{}
	}
	values := effectiveSettings(settings)

	if s.Format == "json" {
		return printJSON(map[string]any{
			"settings_file": config.GetSettingsPath(),
			"settings":      values,
		})
	}

	fmt.Printf("Settings file: %s\n\n", config.GetSettingsPath())
	printTable(values)
	if len(settings.Keys) > 0 {
		fmt.Printf("\n%d custom key binding(s), see 'takipcim settings keys'\n", len(settings.Keys))
	}
	return nil
}

// Run executes the example command
func (s *SettingsExampleCmd) Run(cli *CLI) error {
	example := config.GetSettingsExample()

	if s.Format == "json" {
		return printJSON(example)
	}

	fmt.Printf("Settings file: %s\n\n", config.GetSettingsPath())
	fmt.Println("Example settings.json:")
	fmt.Println()
	printTable(example)

	fmt.Println()
	fmt.Println("Create or edit this file to configure takipcim.")
	fmt.Println("All settings are optional and have sensible defaults.")
	return nil
}

// Run executes the set command
func (s *SettingsSetCmd) Run(cli *CLI) error {
	logging.Logger.Debug("Setting value", "name", s.Name, "value", s.Value)

	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	if err := settings.Set(s.Name, s.Value); err != nil {
		return err
	}
	if err := settings.Validate(ui.GetValidKeyNames()); err != nil {
		return fmt.Errorf("invalid value: %w", err)
	}

	if err := config.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	fmt.Printf("Setting '%s' set to %s\n", s.Name, s.Value)
	return nil
}

// Run executes the edit command
func (s *SettingsEditCmd) Run(cli *CLI) error {
	path := config.GetSettingsPath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := config.SaveSettingsTo(path, &config.Settings{}); err != nil {
			return err
		}
		logging.Logger.Info("Created empty settings file", "path", path)
	}

	if err := cli.Container.Editor.Open(path, s.Editor); err != nil {
		return err
	}

	settings, err := config.LoadSettingsFrom(path)
	if err != nil {
		return err
	}
	if err := settings.Validate(ui.GetValidKeyNames()); err != nil {
		return fmt.Errorf("settings.json saved but invalid, run 'takipcim settings edit' again: %w", err)
	}

	fmt.Println("Settings saved and valid")
	return nil
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// printTable prints name/value pairs sorted by name
func printTable(values map[string]any) {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, name := range names {
		fmt.Fprintf(w, "%s\t%s\n", name, formatValue(values[name]))
	}
	w.Flush()
}

func formatValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool, int:
		return fmt.Sprintf("%v", v)
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(data)
	}
}
