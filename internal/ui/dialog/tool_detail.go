package dialog

import (
	"context"

	"github.com/PowerPlatformToolBox/desktop-app/internal/application/port"
	"github.com/PowerPlatformToolBox/desktop-app/internal/domain/entity"
	"github.com/PowerPlatformToolBox/desktop-app/internal/ui/modal"
)

// ToolDetailFlow implements port.ToolDetailPresenter.
type ToolDetailFlow struct {
	flow  *modal.Flow[port.ToolDetailAction]
	sizes Sizes
}

// NewToolDetailFlow creates the tool detail dialog flow.
func NewToolDetailFlow(bridge *modal.Bridge, sizes Sizes) *ToolDetailFlow {
	return &ToolDetailFlow{
		flow:  modal.NewFlow[port.ToolDetailAction](bridge, string(KindToolDetail), modal.EventSelect, modal.EventInstall),
		sizes: sizes,
	}
}

// Channels exposes the flow's channel set.
func (f *ToolDetailFlow) Channels() modal.ChannelSet {
	return f.flow.Channels()
}

// ShowToolDetail shows the tool metadata and returns the chosen action.
func (f *ToolDetailFlow) ShowToolDetail(ctx context.Context, tool *entity.Tool) (port.ToolDetailAction, error) {
	html, err := modal.RenderPage("tool_detail", f.flow.Channels(), tool.Name, tool)
	if err != nil {
		return "", err
	}
	return f.flow.Run(ctx, f.sizes.options(KindToolDetail, html),
		func(ctx context.Context, run *modal.Run[port.ToolDetailAction], ev modal.Event, _ modal.Message) {
			switch ev {
			case modal.EventSelect:
				run.Resolve(ctx, port.ToolDetailLaunch)
			case modal.EventInstall:
				run.Resolve(ctx, port.ToolDetailInstall)
			}
		})
}

var (
	_ port.ConnectionPicker      = (*ConnectionSelectionFlow)(nil)
	_ port.MultiConnectionPicker = (*MultiConnectionSelectionFlow)(nil)
	_ port.ConnectionCreator     = (*AddConnectionFlow)(nil)
	_ port.ConsentPrompter       = (*CSPConsentFlow)(nil)
	_ port.ToolDetailPresenter   = (*ToolDetailFlow)(nil)
)
