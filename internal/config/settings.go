package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"time"
)

// Defaults applied when a setting is absent from settings.json
const (
	DefaultAskBreakTimer     = true
	DefaultBreakMinutes      = 5
	DefaultErrorClearDelay   = 10
	DefaultHoldSeconds       = 3
	DefaultMaxLogFiles       = 1000
	DefaultNotifications     = true
	DefaultPlanningHourEnd   = 20
	DefaultPlanningHourStart = 8
	MaxHoldSeconds           = 30
	MaxBreakMinutes          = 24 * 60
)

// DefaultBreakPresets are the break lengths offered by the break dialog, in minutes
var DefaultBreakPresets = []int{5, 10, 30}

// KeyBindingValue supports "a" or ["up", "k"] in JSON
type KeyBindingValue []string

// UnmarshalJSON implements custom unmarshaling for KeyBindingValue
func (kv *KeyBindingValue) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*kv = arr
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	if str != "" {
		*kv = []string{str}
	}
	return nil
}

// MarshalJSON implements custom marshaling for KeyBindingValue
func (kv KeyBindingValue) MarshalJSON() ([]byte, error) {
	if len(kv) == 1 {
		return json.Marshal(kv[0])
	}
	return json.Marshal([]string(kv))
}

// KeyBindingsConfig maps binding names (e.g. "finish", "break") to key sequences.
type KeyBindingsConfig map[string]KeyBindingValue

// Validate checks for unknown names, empty keys and keys bound twice.
// validNames comes from ui.GetValidKeyNames().
func (k KeyBindingsConfig) Validate(validNames []string) error {
	if k == nil {
		return nil
	}

	keyToAction := make(map[string]string)

	// sorted so the reported conflict is stable
	names := make([]string, 0, len(k))
	for name := range k {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		if !slices.Contains(validNames, name) {
			return fmt.Errorf("unknown key binding '%s'", name)
		}
		for _, key := range k[name] {
			if key == "" {
				return fmt.Errorf("key binding for '%s' contains empty value", name)
			}
			if existing, found := keyToAction[key]; found {
				return fmt.Errorf("key '%s' is assigned to both '%s' and '%s'", key, existing, name)
			}
			keyToAction[key] = name
		}
	}

	return nil
}

// IntArray supports both JSON arrays and comma-separated strings ("5, 10, 30")
type IntArray []int

// UnmarshalJSON implements custom unmarshaling for IntArray
func (ia *IntArray) UnmarshalJSON(data []byte) error {
	var arr []int
	if err := json.Unmarshal(data, &arr); err == nil {
		*ia = arr
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := parseIntList(str)
	if err != nil {
		return err
	}
	*ia = parsed
	return nil
}

// parseIntList splits a comma-separated string of integers
func parseIntList(s string) ([]int, error) {
	result := []int{}
	for _, p := range strings.Split(s, ",") {
		trimmed := strings.TrimSpace(p)
		if trimmed == "" {
			continue
		}
		n, err := strconv.Atoi(trimmed)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", trimmed)
		}
		result = append(result, n)
	}
	return result, nil
}

// Settings represents the structure of $TAKIPCIM_HOME/settings.json.
// Pointer fields are unset when nil and fall back to their defaults.
type Settings struct {
	AskBreakTimer       *bool             `json:"ask_break_timer,omitempty"`
	BreakPresets        IntArray          `json:"break_presets,omitempty"`
	Debug               *bool             `json:"debug,omitempty"`
	DefaultBreakMinutes *int              `json:"default_break_minutes,omitempty"`
	ErrorClearDelay     *int              `json:"error_clear_delay,omitempty"`
	HoldSeconds         *int              `json:"hold_seconds,omitempty"`
	Keys                KeyBindingsConfig `json:"keys,omitempty"`
	MaxLogFiles         *int              `json:"max_log_files,omitempty"`
	Notifications       *bool             `json:"notifications,omitempty"`
	PlanningHourEnd     *int              `json:"planning_hour_end,omitempty"`
	PlanningHourStart   *int              `json:"planning_hour_start,omitempty"`
}

func (s *Settings) GetAskBreakTimer() bool {
	if s == nil || s.AskBreakTimer == nil {
		return DefaultAskBreakTimer
	}
	return *s.AskBreakTimer
}

func (s *Settings) GetBreakPresets() []int {
	if s == nil || len(s.BreakPresets) == 0 {
		return slices.Clone(DefaultBreakPresets)
	}
	return slices.Clone([]int(s.BreakPresets))
}

func (s *Settings) GetDebug() bool {
	return s != nil && s.Debug != nil && *s.Debug
}

func (s *Settings) GetDefaultBreakMinutes() int {
	if s == nil || s.DefaultBreakMinutes == nil {
		return DefaultBreakMinutes
	}
	return *s.DefaultBreakMinutes
}

// GetErrorClearDelay returns how long errors stay on screen; zero keeps them until dismissed
func (s *Settings) GetErrorClearDelay() time.Duration {
	if s == nil || s.ErrorClearDelay == nil {
		return DefaultErrorClearDelay * time.Second
	}
	return time.Duration(*s.ErrorClearDelay) * time.Second
}

func (s *Settings) GetHoldDuration() time.Duration {
	if s == nil || s.HoldSeconds == nil {
		return DefaultHoldSeconds * time.Second
	}
	return time.Duration(*s.HoldSeconds) * time.Second
}

func (s *Settings) GetMaxLogFiles() int {
	if s == nil || s.MaxLogFiles == nil {
		return DefaultMaxLogFiles
	}
	return *s.MaxLogFiles
}

// GetNotifications reports whether break ends and recorded sessions play a sound
func (s *Settings) GetNotifications() bool {
	if s == nil || s.Notifications == nil {
		return DefaultNotifications
	}
	return *s.Notifications
}

// GetPlanningHours returns the [start, end) hours shown in the day plan
func (s *Settings) GetPlanningHours() (start, end int) {
	start, end = DefaultPlanningHourStart, DefaultPlanningHourEnd
	if s == nil {
		return start, end
	}
	if s.PlanningHourStart != nil {
		start = *s.PlanningHourStart
	}
	if s.PlanningHourEnd != nil {
		end = *s.PlanningHourEnd
	}
	return start, end
}

// Validate checks value ranges and key bindings
func (s *Settings) Validate(validKeyNames []string) error {
	var errs []error

	for _, p := range s.GetBreakPresets() {
		if p <= 0 || p > MaxBreakMinutes {
			errs = append(errs, fmt.Errorf("break_presets: %d is not between 1 and %d", p, MaxBreakMinutes))
		}
	}
	if m := s.GetDefaultBreakMinutes(); m <= 0 || m > MaxBreakMinutes {
		errs = append(errs, fmt.Errorf("default_break_minutes: %d is not between 1 and %d", m, MaxBreakMinutes))
	}
	if s.ErrorClearDelay != nil && *s.ErrorClearDelay < 0 {
		errs = append(errs, errors.New("error_clear_delay cannot be negative"))
	}
	if h := s.GetHoldDuration(); h < time.Second || h > MaxHoldSeconds*time.Second {
		errs = append(errs, fmt.Errorf("hold_seconds: %v is not between 1s and %ds", h, MaxHoldSeconds))
	}
	if s.MaxLogFiles != nil && *s.MaxLogFiles < 0 {
		errs = append(errs, errors.New("max_log_files cannot be negative"))
	}
	start, end := s.GetPlanningHours()
	if start < 0 || end > 24 || start >= end {
		errs = append(errs, fmt.Errorf("planning hours %d-%d must satisfy 0 <= start < end <= 24", start, end))
	}
	if err := s.Keys.Validate(validKeyNames); err != nil {
		errs = append(errs, fmt.Errorf("keys: %w", err))
	}

	return errors.Join(errs...)
}

// Set assigns a scalar or list setting from its string form, addressed by its JSON name
func (s *Settings) Set(name, value string) error {
	v := reflect.ValueOf(s).Elem()
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if strings.Split(field.Tag.Get("json"), ",")[0] != name {
			continue
		}

		target := v.Field(i)
		switch {
		case field.Type.Kind() == reflect.Ptr && field.Type.Elem().Kind() == reflect.Bool:
			b, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("%s expects true or false: %w", name, err)
			}
			target.Set(reflect.ValueOf(&b))
		case field.Type.Kind() == reflect.Ptr && field.Type.Elem().Kind() == reflect.Int:
			n, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("%s expects a number: %w", name, err)
			}
			target.Set(reflect.ValueOf(&n))
		case field.Type == reflect.TypeOf(IntArray{}):
			list, err := parseIntList(value)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			target.Set(reflect.ValueOf(IntArray(list)))
		default:
			return fmt.Errorf("%s cannot be set from the command line, edit settings.json", name)
		}
		return nil
	}

	return fmt.Errorf("unknown setting '%s'", name)
}

// LoadSettings loads settings from $TAKIPCIM_HOME/settings.json.
// Returns empty Settings if the file doesn't exist (not an error).
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(GetSettingsPath())
}

// LoadSettingsFrom loads settings from path
func LoadSettingsFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}
	return &settings, nil
}

// SaveSettings saves settings to $TAKIPCIM_HOME/settings.json
func SaveSettings(settings *Settings) error {
	return SaveSettingsTo(GetSettingsPath(), settings)
}

// SaveSettingsTo saves settings to path, creating its directory
func SaveSettingsTo(path string, settings *Settings) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
