package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/bilalayas/takipcim/internal/config"
)

// TimerKeys control the work timer
type TimerKeys struct {
	Pause KeyWithTip
	Reset KeyWithTip
	Start KeyWithTip
	Stop  KeyWithTip
}

// FinishKeys drive the two-click plus hold finish gesture
type FinishKeys struct {
	Blur   KeyWithTip
	Finish KeyWithTip
	Hold   KeyWithTip
}

// BreakKeys start and end breaks
type BreakKeys struct {
	Break    KeyWithTip
	EndBreak KeyWithTip
}

// TaskKeys select and plan tasks
type TaskKeys struct {
	FreeWork   KeyWithTip
	NewTask    KeyWithTip
	Tasks      KeyWithTip
	ToggleDone KeyWithTip
}

// ApplicationKeys defines key bindings for application-level actions
type ApplicationKeys struct {
	ForceQuit KeyWithTip
	Help      KeyWithTip
	Quit      KeyWithTip
}

// KeyMap contains all keyboard shortcuts organized by context
type KeyMap struct {
	Application ApplicationKeys
	Break       BreakKeys
	Finish      FinishKeys
	Tasks       TaskKeys
	Timer       TimerKeys
}

// NewKeyMap creates a KeyMap, applying customKeys over the defaults.
// A nil customKeys uses default bindings.
func NewKeyMap(customKeys config.KeyBindingsConfig) KeyMap {
	defaults := GetDefaultKeyBindings()
	return KeyMap{
		Application: ApplicationKeys{
			ForceQuit: buildBinding("force_quit", defaults, customKeys),
			Help:      buildBinding("help", defaults, customKeys),
			Quit:      buildBinding("quit", defaults, customKeys),
		},
		Break: BreakKeys{
			Break:    buildBinding("break", defaults, customKeys),
			EndBreak: buildBinding("end_break", defaults, customKeys),
		},
		Finish: FinishKeys{
			Blur:   buildBinding("blur", defaults, customKeys),
			Finish: buildBinding("finish", defaults, customKeys),
			Hold:   buildBinding("hold", defaults, customKeys),
		},
		Tasks: TaskKeys{
			FreeWork:   buildBinding("free_work", defaults, customKeys),
			NewTask:    buildBinding("new_task", defaults, customKeys),
			Tasks:      buildBinding("tasks", defaults, customKeys),
			ToggleDone: buildBinding("toggle_done", defaults, customKeys),
		},
		Timer: TimerKeys{
			Pause: buildBinding("pause", defaults, customKeys),
			Reset: buildBinding("reset", defaults, customKeys),
			Start: buildBinding("start", defaults, customKeys),
			Stop:  buildBinding("stop", defaults, customKeys),
		},
	}
}

// buildBinding creates a KeyWithTip from the key definition, using custom keys if provided.
func buildBinding(name string, defaults map[string][]string, customKeys config.KeyBindingsConfig) KeyWithTip {
	def := GetKeyDefinition(name)
	if def == nil {
		panic("unknown key definition: " + name)
	}

	keys := defaults[name]
	if custom, ok := customKeys[name]; ok && len(custom) > 0 {
		keys = make([]string, len(custom))
		for i, k := range custom {
			keys[i] = normalizeKey(k)
		}
	}

	shown := make([]string, len(keys))
	for i, k := range keys {
		shown[i] = displayKey(k)
	}

	result := KeyWithTip{
		Binding: key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(strings.Join(shown, "/"), def.Help),
		),
	}
	if def.TipFormat != "" && len(shown) > 0 {
		result.Tip = newTip(def.TipFormat, shown[0])
	}
	return result
}

// byName returns the binding registered under name
func (k KeyMap) byName(name string) (KeyWithTip, bool) {
	all := map[string]KeyWithTip{
		"blur":        k.Finish.Blur,
		"break":       k.Break.Break,
		"end_break":   k.Break.EndBreak,
		"finish":      k.Finish.Finish,
		"force_quit":  k.Application.ForceQuit,
		"free_work":   k.Tasks.FreeWork,
		"help":        k.Application.Help,
		"hold":        k.Finish.Hold,
		"new_task":    k.Tasks.NewTask,
		"pause":       k.Timer.Pause,
		"quit":        k.Application.Quit,
		"reset":       k.Timer.Reset,
		"start":       k.Timer.Start,
		"stop":        k.Timer.Stop,
		"tasks":       k.Tasks.Tasks,
		"toggle_done": k.Tasks.ToggleDone,
	}
	b, ok := all[name]
	return b, ok
}

// Tips returns the tips of every binding, in registry order
func (k KeyMap) Tips() []Tip {
	var result []Tip
	for _, def := range AllKeyDefinitions {
		if b, ok := k.byName(def.Name); ok && !b.Tip.IsZero() {
			result = append(result, b.Tip)
		}
	}
	return result
}

// ShortHelp returns the bindings shown in the bottom bar (help.KeyMap)
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Timer.Start.Binding,
		k.Timer.Pause.Binding,
		k.Finish.Finish.Binding,
		k.Finish.Hold.Binding,
		k.Break.Break.Binding,
		k.Tasks.Tasks.Binding,
		k.Application.Help.Binding,
		k.Application.Quit.Binding,
	}
}

// FullHelp returns every binding grouped as on the help screen (help.KeyMap)
func (k KeyMap) FullHelp() [][]key.Binding {
	var groups [][]key.Binding
	for _, group := range helpGroups {
		var column []key.Binding
		for _, def := range definitionsInGroup(group) {
			if b, ok := k.byName(def.Name); ok {
				column = append(column, b.Binding)
			}
		}
		groups = append(groups, column)
	}
	return groups
}
