package ui

import (
	"sort"
	"sync"
)

// Help groups, in the order the help screen shows them
const (
	groupTimer       = "Timer"
	groupFinish      = "Finish"
	groupBreak       = "Break"
	groupTasks       = "Tasks"
	groupApplication = "Application"
)

var helpGroups = []string{groupTimer, groupFinish, groupBreak, groupTasks, groupApplication}

// KeyDefinition defines the metadata for a configurable key binding.
// All key bindings are defined here as the single source of truth.
type KeyDefinition struct {
	Defaults  []string
	Group     string
	Help      string
	Name      string
	TipFormat string
}

// AllKeyDefinitions contains all configurable key bindings.
// Names are the keys accepted under "keys" in settings.json.
var AllKeyDefinitions = []KeyDefinition{
	// Timer keys
	{Name: "pause", Group: groupTimer, Defaults: []string{" "}, Help: "pause / resume"},
	{Name: "reset", Group: groupTimer, Defaults: []string{"ctrl+r"}, Help: "discard the current interval", TipFormat: "press %s to throw away time you did not mean to track"},
	{Name: "start", Group: groupTimer, Defaults: []string{"s"}, Help: "start the selected task"},
	{Name: "stop", Group: groupTimer, Defaults: []string{"x"}, Help: "stop the clock (commit with finish)", TipFormat: "press %s to freeze the clock before you finish"},

	// Finish keys
	{Name: "blur", Group: groupFinish, Defaults: []string{"esc"}, Help: "disarm finish"},
	{Name: "finish", Group: groupFinish, Defaults: []string{"f"}, Help: "arm finish / end session", TipFormat: "press %s twice to record the session"},
	{Name: "hold", Group: groupFinish, Defaults: []string{"c"}, Help: "hold to end and mark done", TipFormat: "once finish is armed, hold %s to record the session and mark the task done"},

	// Break keys
	{Name: "break", Group: groupBreak, Defaults: []string{"b"}, Help: "take a break", TipFormat: "press %s to take a break, running work is recorded first"},
	{Name: "end_break", Group: groupBreak, Defaults: []string{"w"}, Help: "back to work"},

	// Task keys
	{Name: "free_work", Group: groupTasks, Defaults: []string{"F"}, Help: "start free work", TipFormat: "press %s to track time without planning a task"},
	{Name: "new_task", Group: groupTasks, Defaults: []string{"n"}, Help: "plan a new task for today", TipFormat: "press %s to plan a task for today"},
	{Name: "tasks", Group: groupTasks, Defaults: []string{"t"}, Help: "pick one of today's tasks", TipFormat: "press %s to pick what to work on"},
	{Name: "toggle_done", Group: groupTasks, Defaults: []string{"d"}, Help: "toggle done (task list)"},

	// Application keys
	{Name: "force_quit", Group: groupApplication, Defaults: []string{"ctrl+c"}, Help: "force quit (running work is lost)"},
	{Name: "help", Group: groupApplication, Defaults: []string{"?"}, Help: "show keyboard shortcuts", TipFormat: "press %s to see all shortcuts"},
	{Name: "quit", Group: groupApplication, Defaults: []string{"q"}, Help: "exit application"},
}

var (
	defaultBindingsCache map[string][]string
	defaultBindingsOnce  sync.Once

	keyDefinitionsMap     map[string]KeyDefinition
	keyDefinitionsMapOnce sync.Once

	validKeyNames     []string
	validKeyNamesOnce sync.Once
)

// GetDefaultKeyBindings returns the default key bindings as a map.
// The result is cached after the first call.
func GetDefaultKeyBindings() map[string][]string {
	defaultBindingsOnce.Do(func() {
		defaultBindingsCache = make(map[string][]string, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			defaultBindingsCache[def.Name] = def.Defaults
		}
	})
	return defaultBindingsCache
}

// GetKeyDefinition returns the definition for a key by name, or nil
func GetKeyDefinition(name string) *KeyDefinition {
	keyDefinitionsMapOnce.Do(func() {
		keyDefinitionsMap = make(map[string]KeyDefinition, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			keyDefinitionsMap[def.Name] = def
		}
	})
	if def, ok := keyDefinitionsMap[name]; ok {
		return &def
	}
	return nil
}

// GetValidKeyNames returns all valid key binding names in sorted order.
func GetValidKeyNames() []string {
	validKeyNamesOnce.Do(func() {
		validKeyNames = make([]string, len(AllKeyDefinitions))
		for i, def := range AllKeyDefinitions {
			validKeyNames[i] = def.Name
		}
		sort.Strings(validKeyNames)
	})
	return validKeyNames
}

// definitionsInGroup returns the definitions of group in registry order
func definitionsInGroup(group string) []KeyDefinition {
	var defs []KeyDefinition
	for _, def := range AllKeyDefinitions {
		if def.Group == group {
			defs = append(defs, def)
		}
	}
	return defs
}
