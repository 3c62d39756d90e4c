package port

import (
	"context"

	"github.com/PowerPlatformToolBox/desktop-app/internal/domain/entity"
)

// ToolCatalog resolves installed tool metadata.
type ToolCatalog interface {
	// GetTool returns the tool, or nil if it is not installed.
	GetTool(ctx context.Context, id entity.ToolID) (*entity.Tool, error)
}
