// Package input maps key events to tab shortcuts and dispatches them to the
// tool orchestrator.
package input

import (
	"context"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/PowerPlatformToolBox/desktop-app/internal/infrastructure/config"
	"github.com/PowerPlatformToolBox/desktop-app/internal/logging"
)

// Action represents what happens when a shortcut is triggered.
type Action string

// Tab actions.
const (
	ActionNone        Action = ""
	ActionNextTab     Action = "next_tab"
	ActionPreviousTab Action = "previous_tab"
	ActionCloseTab    Action = "close_tab"
	ActionTogglePin   Action = "toggle_pin"
)

// KeyEvent is a key press with its modifiers, as reported by the shell
// window. String renders it in the "ctrl+shift+tab" notation key bindings use.
type KeyEvent struct {
	Key   string
	Ctrl  bool
	Alt   bool
	Shift bool
}

// String returns the normalised key combination.
func (e KeyEvent) String() string {
	parts := make([]string, 0, 4)
	if e.Ctrl {
		parts = append(parts, "ctrl")
	}
	if e.Alt {
		parts = append(parts, "alt")
	}
	if e.Shift {
		parts = append(parts, "shift")
	}
	return strings.Join(append(parts, strings.ToLower(e.Key)), "+")
}

// ParseKeyEvent parses "ctrl+shift+tab" style notation. Modifier order and
// case are ignored.
func ParseKeyEvent(s string) (KeyEvent, bool) {
	var ev KeyEvent
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), "+")
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if i == len(parts)-1 {
			ev.Key = p
			break
		}
		switch p {
		case "ctrl", "control":
			ev.Ctrl = true
		case "alt":
			ev.Alt = true
		case "shift":
			ev.Shift = true
		default:
			return KeyEvent{}, false
		}
	}
	return ev, ev.Key != ""
}

// normalize rewrites a configured key so it compares equal to KeyEvent.String.
func normalize(keys []string) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if ev, ok := ParseKeyEvent(k); ok {
			out = append(out, ev.String())
		}
	}
	return out
}

// ShortcutSet holds the tab key bindings.
type ShortcutSet struct {
	NextTab     key.Binding
	PreviousTab key.Binding
	CloseTab    key.Binding
	TogglePin   key.Binding
}

// NewShortcutSet builds bindings from the shortcuts config section.
func NewShortcutSet(ctx context.Context, cfg config.ShortcutsConfig) *ShortcutSet {
	s := &ShortcutSet{
		NextTab:     binding(cfg.NextTab, "next tool"),
		PreviousTab: binding(cfg.PreviousTab, "previous tool"),
		CloseTab:    binding(cfg.CloseTab, "close tool"),
		TogglePin:   binding(cfg.TogglePin, "pin/unpin tool"),
	}
	logging.FromContext(ctx).Debug().
		Strs("next_tab", s.NextTab.Keys()).
		Strs("previous_tab", s.PreviousTab.Keys()).
		Strs("close_tab", s.CloseTab.Keys()).
		Msg("shortcuts built")
	return s
}

func binding(keys []string, desc string) key.Binding {
	keys = normalize(keys)
	if len(keys) == 0 {
		return key.NewBinding(key.WithDisabled())
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), desc),
	)
}

// Lookup returns the action bound to ev.
func (s *ShortcutSet) Lookup(ev KeyEvent) Action {
	switch {
	case key.Matches(ev, s.NextTab):
		return ActionNextTab
	case key.Matches(ev, s.PreviousTab):
		return ActionPreviousTab
	case key.Matches(ev, s.CloseTab):
		return ActionCloseTab
	case key.Matches(ev, s.TogglePin):
		return ActionTogglePin
	default:
		return ActionNone
	}
}

// ShortHelp implements help.KeyMap.
func (s *ShortcutSet) ShortHelp() []key.Binding {
	return slices.DeleteFunc([]key.Binding{s.NextTab, s.PreviousTab, s.CloseTab, s.TogglePin}, func(b key.Binding) bool {
		return !b.Enabled()
	})
}

// FullHelp implements help.KeyMap.
func (s *ShortcutSet) FullHelp() [][]key.Binding {
	return [][]key.Binding{s.ShortHelp()}
}
