// Package controller provides controllers that bridge domain state and UI widgets.
package controller

import (
	"context"
	"errors"

	"github.com/PowerPlatformToolBox/desktop-app/internal/application/port"
	"github.com/PowerPlatformToolBox/desktop-app/internal/domain/decoration"
	"github.com/PowerPlatformToolBox/desktop-app/internal/domain/entity"
	"github.com/PowerPlatformToolBox/desktop-app/internal/logging"
	"github.com/PowerPlatformToolBox/desktop-app/internal/ui/component"
)

// TabActions are the orchestrator operations triggered from the tab strip.
type TabActions interface {
	SwitchToTool(ctx context.Context, id entity.InstanceID) error
	CloseTool(ctx context.Context, id entity.InstanceID) error
	TogglePinTab(ctx context.Context, id entity.InstanceID) (bool, error)
}

// TabController renders orchestrator state onto a TabStrip. It implements
// port.ShellView and never calls back into the orchestrator from a view
// method.
type TabController struct {
	strip *component.TabStrip
}

var _ port.ShellView = (*TabController)(nil)

// NewTabController creates a controller rendering onto strip.
func NewTabController(strip *component.TabStrip) *TabController {
	return &TabController{strip: strip}
}

// Strip returns the rendered strip.
func (tc *TabController) Strip() *component.TabStrip {
	return tc.strip
}

// AddTab appends a tab node.
func (tc *TabController) AddTab(ctx context.Context, tab port.TabModel) {
	tc.strip.Add(tab.InstanceID, tab.Label)
	if tab.Pinned {
		tc.strip.AddClass(tab.InstanceID, component.ClassPinned)
	}
	logging.FromContext(ctx).Debug().
		Str("instance_id", string(tab.InstanceID)).
		Str("label", tab.Label).
		Msg("tab added")
}

// RemoveTab deletes a tab node.
func (tc *TabController) RemoveTab(_ context.Context, id entity.InstanceID) {
	tc.strip.Remove(id)
}

// ActivateTab marks id as the only active tab and clears tier styling from
// every tab; the orchestrator decorates the active one afterwards.
func (tc *TabController) ActivateTab(_ context.Context, id entity.InstanceID) {
	tc.strip.RemoveClassesWhere(func(class string) bool {
		return class == component.ClassActive || decoration.IsTierClass(class)
	})
	tc.strip.AddClass(id, component.ClassActive)
	tc.strip.SetStatus("")
	tc.strip.SetHomeVisible(false)
}

// SetPinned toggles the pinned class.
func (tc *TabController) SetPinned(_ context.Context, id entity.InstanceID, pinned bool) {
	if pinned {
		tc.strip.AddClass(id, component.ClassPinned)
		return
	}
	tc.strip.RemoveClass(id, component.ClassPinned)
}

// SetLabel updates a tab label.
func (tc *TabController) SetLabel(_ context.Context, id entity.InstanceID, label string) {
	tc.strip.SetLabel(id, label)
}

// Decorate replaces the tier class of id and the footer status.
func (tc *TabController) Decorate(_ context.Context, id entity.InstanceID, d port.ViewDecoration) {
	node, ok := tc.strip.Node(id)
	if !ok {
		return
	}
	for _, class := range node.Classes {
		if decoration.IsTierClass(class) {
			tc.strip.RemoveClass(id, class)
		}
	}
	if d.Class != "" {
		tc.strip.AddClass(id, d.Class)
	}
	tc.strip.SetStatus(d.Status)
}

// ShowHome shows the home view with no active tab.
func (tc *TabController) ShowHome(context.Context) {
	tc.strip.RemoveClassesWhere(func(class string) bool {
		return class == component.ClassActive || decoration.IsTierClass(class)
	})
	tc.strip.SetStatus("")
	tc.strip.SetHomeVisible(true)
}

// Bind routes strip gestures to actions until the returned func is called.
// Gestures run on the emitting goroutine.
func (tc *TabController) Bind(ctx context.Context, actions TabActions) (unbind func()) {
	ctx = logging.WithComponent(ctx, "tabs")
	return tc.strip.Subscribe(func(ev component.TabEvent) {
		log := logging.FromContext(ctx).With().
			Str("instance_id", string(ev.InstanceID)).
			Stringer("action", ev.Action).
			Logger()

		var err error
		switch ev.Action {
		case component.TabClicked:
			err = actions.SwitchToTool(ctx, ev.InstanceID)
		case component.TabCloseClicked:
			err = actions.CloseTool(ctx, ev.InstanceID)
		case component.TabPinClicked:
			_, err = actions.TogglePinTab(ctx, ev.InstanceID)
		default:
			log.Warn().Msg("unknown tab action")
			return
		}
		if err != nil && !errors.Is(err, entity.ErrNotFound) {
			log.Error().Err(err).Msg("tab action failed")
		}
	})
}
