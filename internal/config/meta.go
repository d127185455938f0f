package config

import (
	"reflect"
	"strings"
)

// GetSettingsExample uses reflection to generate example settings.
// It stays in sync when new fields are added to Settings.
func GetSettingsExample() map[string]any {
	t := reflect.TypeOf(Settings{})
	example := make(map[string]any)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" {
			continue
		}
		jsonName := strings.Split(jsonTag, ",")[0]
		example[jsonName] = generateExampleValue(field.Type, jsonName)
	}

	return example
}

// generateExampleValue creates example values based on type and field name
func generateExampleValue(t reflect.Type, fieldName string) any {
	if t.Name() == "KeyBindingsConfig" {
		return map[string]any{
			"finish": "f",
			"help":   []string{"?", "h"},
		}
	}

	if t.Kind() == reflect.Ptr {
		switch t.Elem().Kind() {
		case reflect.Bool:
			return fieldName == "ask_break_timer" || fieldName == "notifications"
		case reflect.Int:
			switch fieldName {
			case "default_break_minutes":
				return DefaultBreakMinutes
			case "error_clear_delay":
				return DefaultErrorClearDelay
			case "hold_seconds":
				return DefaultHoldSeconds
			case "max_log_files":
				return DefaultMaxLogFiles
			case "planning_hour_end":
				return DefaultPlanningHourEnd
			case "planning_hour_start":
				return DefaultPlanningHourStart
			}
			return 0
		}
	}

	if t.Kind() == reflect.Slice && t.Elem().Kind() == reflect.Int {
		if fieldName == "break_presets" {
			return DefaultBreakPresets
		}
		return []int{1, 2}
	}

	return nil
}
