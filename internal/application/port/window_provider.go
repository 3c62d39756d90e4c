package port

import (
	"context"

	"github.com/PowerPlatformToolBox/desktop-app/internal/domain/entity"
)

// WindowProvider materialises and manages the isolated surface of each tool
// instance. Rendering of the tool content is owned by the implementation.
type WindowProvider interface {
	// LaunchToolWindow creates the surface for an instance. It returns false
	// when the host could not materialise it.
	LaunchToolWindow(
		ctx context.Context,
		instanceID entity.InstanceID,
		tool *entity.Tool,
		primary entity.ConnectionID,
		secondary entity.ConnectionID,
	) (bool, error)

	// SwitchToolWindow brings the instance surface to the front.
	SwitchToolWindow(ctx context.Context, instanceID entity.InstanceID) error

	// CloseToolWindow destroys the instance surface.
	CloseToolWindow(ctx context.Context, instanceID entity.InstanceID) error

	// UpdateToolInstanceConnection rebinds the instance surface to another
	// primary connection.
	UpdateToolInstanceConnection(ctx context.Context, instanceID entity.InstanceID, connectionID entity.ConnectionID) error
}
