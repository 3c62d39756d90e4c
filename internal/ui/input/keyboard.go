package input

import (
	"context"
	"sync"

	"github.com/PowerPlatformToolBox/desktop-app/internal/domain/entity"
	"github.com/PowerPlatformToolBox/desktop-app/internal/logging"
)

// TabNavigator is the orchestrator surface shortcuts drive.
type TabNavigator interface {
	SwitchNext(ctx context.Context) error
	SwitchPrevious(ctx context.Context) error
	CloseActive(ctx context.Context) error
	ActiveInstanceID() entity.InstanceID
	TogglePinTab(ctx context.Context, id entity.InstanceID) (bool, error)
}

// KeyboardHandler routes key events to the orchestrator.
type KeyboardHandler struct {
	mu        sync.RWMutex
	shortcuts *ShortcutSet
	nav       TabNavigator
}

// NewKeyboardHandler creates a new keyboard handler.
func NewKeyboardHandler(shortcuts *ShortcutSet, nav TabNavigator) *KeyboardHandler {
	return &KeyboardHandler{shortcuts: shortcuts, nav: nav}
}

// SetShortcuts swaps the bindings, e.g. after a config reload.
func (h *KeyboardHandler) SetShortcuts(shortcuts *ShortcutSet) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.shortcuts = shortcuts
}

// HandleKey runs the action bound to ev. It reports whether ev was consumed.
func (h *KeyboardHandler) HandleKey(ctx context.Context, ev KeyEvent) (bool, error) {
	h.mu.RLock()
	action := h.shortcuts.Lookup(ev)
	h.mu.RUnlock()
	if action == ActionNone {
		return false, nil
	}

	log := logging.FromContext(ctx)
	log.Debug().Stringer("key", ev).Str("action", string(action)).Msg("shortcut triggered")

	var err error
	switch action {
	case ActionNextTab:
		err = h.nav.SwitchNext(ctx)
	case ActionPreviousTab:
		err = h.nav.SwitchPrevious(ctx)
	case ActionCloseTab:
		err = h.nav.CloseActive(ctx)
	case ActionTogglePin:
		if id := h.nav.ActiveInstanceID(); id != "" {
			_, err = h.nav.TogglePinTab(ctx, id)
		}
	}
	if err != nil {
		log.Error().Err(err).Str("action", string(action)).Msg("shortcut failed")
	}
	return true, err
}
