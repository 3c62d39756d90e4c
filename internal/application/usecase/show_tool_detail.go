package usecase

import (
	"context"
	"fmt"

	"github.com/PowerPlatformToolBox/desktop-app/internal/application/port"
	"github.com/PowerPlatformToolBox/desktop-app/internal/domain/entity"
)

// ShowToolDetail shows a tool's metadata. Choosing launch starts a new
// instance; the install action is returned for the caller to handle.
func (uc *ManageToolsUseCase) ShowToolDetail(
	ctx context.Context,
	presenter port.ToolDetailPresenter,
	toolID entity.ToolID,
) (port.ToolDetailAction, error) {
	tool, err := uc.deps.Catalog.GetTool(ctx, toolID)
	if err != nil {
		return "", fmt.Errorf("get tool %s: %w", toolID, err)
	}
	if tool == nil {
		uc.notify(ctx, TitleToolNotFound, fmt.Sprintf("Tool %q is not installed.", toolID), port.NotificationError)
		return "", fmt.Errorf("tool %s: %w", toolID, entity.ErrNotFound)
	}

	action, err := presenter.ShowToolDetail(ctx, tool)
	if err != nil {
		return "", err
	}
	if action == port.ToolDetailLaunch {
		if _, err := uc.LaunchTool(ctx, toolID); err != nil {
			return action, err
		}
	}
	return action, nil
}
