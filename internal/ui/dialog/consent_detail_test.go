package dialog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PowerPlatformToolBox/desktop-app/internal/application/port"
	"github.com/PowerPlatformToolBox/desktop-app/internal/domain/entity"
	"github.com/PowerPlatformToolBox/desktop-app/internal/ui/dialog"
	"github.com/PowerPlatformToolBox/desktop-app/internal/ui/modal"
)

func cspTool() *entity.Tool {
	return &entity.Tool{
		ID:   "maps",
		Name: "Map Viewer",
		CSPExceptions: []entity.CSPException{
			{Directive: "connect-src", Sources: []string{"https://tiles.example.com"}, Reason: "map tiles"},
		},
	}
}

func TestCSPConsentFlow_AcceptAndDecline(t *testing.T) {
	ctx := testContext()
	host, bridge := newBridge(t)
	flow := dialog.NewCSPConsentFlow(bridge, dialog.DefaultSizes())
	ch := flow.Channels()

	done := async(func() (bool, error) { return flow.PromptConsent(ctx, cspTool()) })
	opts := host.WaitShown(t)
	assert.Contains(t, opts.HTML, "https://tiles.example.com")
	host.Emit(ch.Channel(modal.EventAccept), nil)
	r := wait(t, done)
	require.NoError(t, r.err)
	assert.True(t, r.value)

	done = async(func() (bool, error) { return flow.PromptConsent(ctx, cspTool()) })
	host.WaitShown(t)
	host.Emit(ch.Channel(modal.EventDecline), nil)
	r = wait(t, done)
	require.NoError(t, r.err)
	assert.False(t, r.value)
}

func TestCSPConsentFlow_CloseCancels(t *testing.T) {
	ctx := testContext()
	host, bridge := newBridge(t)
	flow := dialog.NewCSPConsentFlow(bridge, dialog.DefaultSizes())

	done := async(func() (bool, error) { return flow.PromptConsent(ctx, cspTool()) })
	host.WaitShown(t)
	host.UserClose()

	assert.ErrorIs(t, wait(t, done).err, entity.ErrUserCancelled)
}

func TestToolDetailFlow_Actions(t *testing.T) {
	ctx := testContext()
	host, bridge := newBridge(t)
	flow := dialog.NewToolDetailFlow(bridge, dialog.Sizes{dialog.KindToolDetail: {Width: 100, Height: 80}})
	ch := flow.Channels()
	tool := &entity.Tool{ID: "t", Name: "Data Explorer", Version: "1.2.0", Author: "Contoso"}

	done := async(func() (port.ToolDetailAction, error) { return flow.ShowToolDetail(ctx, tool) })
	opts := host.WaitShown(t)
	assert.Equal(t, 100, opts.Width)
	assert.Contains(t, opts.HTML, "Data Explorer")
	host.Emit(ch.Channel(modal.EventInstall), nil)
	r := wait(t, done)
	require.NoError(t, r.err)
	assert.Equal(t, port.ToolDetailInstall, r.value)

	done = async(func() (port.ToolDetailAction, error) { return flow.ShowToolDetail(ctx, tool) })
	host.WaitShown(t)
	host.Emit(ch.Channel(modal.EventSelect), nil)
	r = wait(t, done)
	require.NoError(t, r.err)
	assert.Equal(t, port.ToolDetailLaunch, r.value)
}
