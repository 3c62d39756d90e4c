package port

import (
	"context"

	"github.com/PowerPlatformToolBox/desktop-app/internal/domain/entity"
)

// TabModel is what the view needs to render a tab.
type TabModel struct {
	InstanceID entity.InstanceID
	Label      string
	Pinned     bool
}

// ViewDecoration is the environment styling and status of the active instance.
type ViewDecoration struct {
	// Class is the tier class, empty to clear.
	Class  string
	Status string
}

// ShellView is the tab strip, panel and footer the orchestrator drives.
type ShellView interface {
	AddTab(ctx context.Context, tab TabModel)
	RemoveTab(ctx context.Context, id entity.InstanceID)
	// ActivateTab marks exactly one tab active and clears tier classes on all tabs.
	ActivateTab(ctx context.Context, id entity.InstanceID)
	SetPinned(ctx context.Context, id entity.InstanceID, pinned bool)
	SetLabel(ctx context.Context, id entity.InstanceID, label string)
	// Decorate applies tier styling to the active tab, panel and footer.
	Decorate(ctx context.Context, id entity.InstanceID, d ViewDecoration)
	// ShowHome returns to the home view with no active tab.
	ShowHome(ctx context.Context)
}
