package dialog

import (
	"context"

	"github.com/PowerPlatformToolBox/desktop-app/internal/domain/entity"
	"github.com/PowerPlatformToolBox/desktop-app/internal/logging"
	"github.com/PowerPlatformToolBox/desktop-app/internal/ui/modal"
)

// CSPConsentFlow implements port.ConsentPrompter.
type CSPConsentFlow struct {
	flow  *modal.Flow[bool]
	sizes Sizes
}

// NewCSPConsentFlow creates the consent dialog flow.
func NewCSPConsentFlow(bridge *modal.Bridge, sizes Sizes) *CSPConsentFlow {
	return &CSPConsentFlow{
		flow:  modal.NewFlow[bool](bridge, string(KindCSPConsent), modal.EventAccept, modal.EventDecline),
		sizes: sizes,
	}
}

// Channels exposes the flow's channel set.
func (f *CSPConsentFlow) Channels() modal.ChannelSet {
	return f.flow.Channels()
}

type consentPage struct {
	ToolName   string
	Exceptions []entity.CSPException
}

// PromptConsent lists the tool's exceptions and returns the user's decision.
// Closing the dialog fails with a cancellation error.
func (f *CSPConsentFlow) PromptConsent(ctx context.Context, tool *entity.Tool) (bool, error) {
	page := consentPage{ToolName: tool.Name, Exceptions: tool.CSPExceptions}
	html, err := modal.RenderPage("csp_consent", f.flow.Channels(), "Permission request", page)
	if err != nil {
		return false, err
	}
	ctx = logging.WithToolID(ctx, string(tool.ID))
	return f.flow.Run(ctx, f.sizes.options(KindCSPConsent, html),
		func(ctx context.Context, run *modal.Run[bool], ev modal.Event, _ modal.Message) {
			switch ev {
			case modal.EventAccept:
				logging.FromContext(ctx).Info().Msg("CSP exceptions accepted")
				run.Resolve(ctx, true)
			case modal.EventDecline:
				logging.FromContext(ctx).Info().Msg("CSP exceptions declined")
				run.Resolve(ctx, false)
			}
		})
}
