package usecase_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/PowerPlatformToolBox/desktop-app/internal/application/port"
	portmocks "github.com/PowerPlatformToolBox/desktop-app/internal/application/port/mocks"
	"github.com/PowerPlatformToolBox/desktop-app/internal/application/usecase"
	"github.com/PowerPlatformToolBox/desktop-app/internal/domain/entity"
)

var errDialogClosed = fmt.Errorf("dialog closed: %w", entity.ErrUserCancelled)

func TestManageTools_LaunchSingleConnection(t *testing.T) {
	f := newToolsFixture(t)

	inst := f.launchSingle(t, singleTool(), "c1")

	assert.Equal(t, entity.InstanceID("inst-1"), inst.InstanceID)
	assert.Equal(t, []string{"ToolName"}, f.view.labels())
	assert.Equal(t, inst.InstanceID, f.view.activeID())
	assert.Equal(t, inst.InstanceID, f.uc.ActiveInstanceID())

	d, ok := f.view.decoration(inst.InstanceID)
	require.True(t, ok)
	assert.Equal(t, "ToolName is connected to: C1 (Dev)", d.Status)
	assert.Equal(t, "env-border-dev", d.Class)

	snap := f.lastSaved()
	require.NotNil(t, snap)
	require.Len(t, snap.OpenTools, 1)
	assert.Equal(t, entity.ConnectionID("c1"), snap.OpenTools[0].ConnectionID)
	assert.Equal(t, inst.InstanceID, snap.ActiveInstanceID)
}

func TestManageTools_LaunchCancelledCreatesNothing(t *testing.T) {
	ctx := testContext()
	f := newToolsFixture(t)
	tool := singleTool()

	f.catalog.EXPECT().GetTool(mock.Anything, tool.ID).Return(tool, nil)
	f.picker.EXPECT().PickConnection(mock.Anything, entity.ConnectionID("")).Return("", errDialogClosed)

	inst, err := f.uc.LaunchTool(ctx, tool.ID)

	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrUserCancelled)
	assert.Nil(t, inst)
	assert.Equal(t, 0, f.uc.Count())
	assert.Empty(t, f.view.labels())
	f.windows.AssertNotCalled(t, "LaunchToolWindow", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)

	notes := f.notifications()
	require.Len(t, notes, 1)
	assert.Equal(t, usecase.TitleLaunchCancelled, notes[0].Title)
	assert.Equal(t, port.NotificationInfo, notes[0].Type)
}

func TestManageTools_LaunchDualConnectionDecoratesSplit(t *testing.T) {
	ctx := testContext()
	f := newToolsFixture(t)
	tool := dualTool()

	f.catalog.EXPECT().GetTool(mock.Anything, tool.ID).Return(tool, nil)
	f.multi.EXPECT().PickConnections(mock.Anything, tool).
		Return(port.ConnectionPair{Primary: "c1", Secondary: "c2"}, nil)
	f.windows.EXPECT().LaunchToolWindow(mock.Anything, entity.InstanceID("inst-1"), tool, entity.ConnectionID("c1"), entity.ConnectionID("c2")).
		Return(true, nil)

	inst, err := f.uc.LaunchTool(ctx, tool.ID)
	require.NoError(t, err)

	d, ok := f.view.decoration(inst.InstanceID)
	require.True(t, ok)
	assert.Equal(t, "env-split-dev-production", d.Class)
	assert.Equal(t, "Compare is connected to: C1 (Dev) and C2 (Production)", d.Status)
	f.picker.AssertNotCalled(t, "PickConnection", mock.Anything, mock.Anything)
}

func TestManageTools_SameToolTwiceGetsNumberedLabel(t *testing.T) {
	f := newToolsFixture(t)
	tool := singleTool()

	first := f.launchSingle(t, tool, "c1")
	second := f.launchSingle(t, tool, "c3")

	assert.NotEqual(t, first.InstanceID, second.InstanceID)
	assert.Equal(t, []string{"ToolName", "ToolName (2)"}, f.view.labels())
	assert.Equal(t, 2, second.DisplayNumber)
	assert.Equal(t, second.InstanceID, f.view.activeID())
}

func TestManageTools_DisplayNumberReusesFreedSlot(t *testing.T) {
	ctx := testContext()
	f := newToolsFixture(t)
	tool := singleTool()
	f.windows.EXPECT().CloseToolWindow(mock.Anything, mock.Anything).Return(nil)

	first := f.launchSingle(t, tool, "c1")
	f.launchSingle(t, tool, "c1")
	require.NoError(t, f.uc.CloseTool(ctx, first.InstanceID))
	third := f.launchSingle(t, tool, "c1")

	assert.Equal(t, 1, third.DisplayNumber)
	assert.Equal(t, []string{"ToolName (2)", "ToolName"}, f.view.labels())
}

func TestManageTools_ToolNotFound(t *testing.T) {
	ctx := testContext()
	f := newToolsFixture(t)

	f.catalog.EXPECT().GetTool(mock.Anything, entity.ToolID("missing")).Return(nil, nil)

	_, err := f.uc.LaunchTool(ctx, "missing")

	assert.ErrorIs(t, err, entity.ErrNotFound)
	notes := f.notifications()
	require.Len(t, notes, 1)
	assert.Equal(t, usecase.TitleToolNotFound, notes[0].Title)
	assert.Equal(t, port.NotificationError, notes[0].Type)
	f.picker.AssertNotCalled(t, "PickConnection", mock.Anything, mock.Anything)
}

func TestManageTools_WindowProviderFailure(t *testing.T) {
	tests := []struct {
		name string
		ok   bool
		err  error
	}{
		{name: "refused", ok: false},
		{name: "error", ok: false, err: errors.New("renderer crashed")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testContext()
			f := newToolsFixture(t)
			tool := singleTool()

			f.catalog.EXPECT().GetTool(mock.Anything, tool.ID).Return(tool, nil)
			f.picker.EXPECT().PickConnection(mock.Anything, mock.Anything).Return("c1", nil)
			f.windows.EXPECT().LaunchToolWindow(mock.Anything, mock.Anything, tool, entity.ConnectionID("c1"), entity.ConnectionID("")).
				Return(tt.ok, tt.err)

			_, err := f.uc.LaunchTool(ctx, tool.ID)

			require.Error(t, err)
			assert.Equal(t, 0, f.uc.Count())
			assert.Empty(t, f.view.labels())
			notes := f.notifications()
			require.Len(t, notes, 1)
			assert.Equal(t, usecase.TitleLaunchFailed, notes[0].Title)
		})
	}
}

func TestManageTools_UnauthenticatedBindingIsNotUsable(t *testing.T) {
	ctx := testContext()
	f := newToolsFixture(t)
	tool := singleTool()

	conns := testConnections()
	conns[0].Authenticated = false
	f.store.ExpectedCalls = nil
	f.store.EXPECT().GetAll(mock.Anything).Return(conns, nil)
	f.catalog.EXPECT().GetTool(mock.Anything, tool.ID).Return(tool, nil)
	f.picker.EXPECT().PickConnection(mock.Anything, mock.Anything).Return("c1", nil)

	_, err := f.uc.LaunchTool(ctx, tool.ID)

	assert.ErrorIs(t, err, entity.ErrOperationFailed)
	assert.Equal(t, 0, f.uc.Count())
}

func TestManageTools_ConsentDeclinedAbortsLaunch(t *testing.T) {
	ctx := testContext()
	f := newToolsFixture(t)
	tool := singleTool()
	tool.CSPExceptions = []entity.CSPException{{Directive: "connect-src", Sources: []string{"https://api.example.com"}}}

	f.catalog.EXPECT().GetTool(mock.Anything, tool.ID).Return(tool, nil)
	f.picker.EXPECT().PickConnection(mock.Anything, mock.Anything).Return("c1", nil)
	f.consentRepo.EXPECT().Get(mock.Anything, tool.ID).Return(nil, nil)
	f.prompter.EXPECT().PromptConsent(mock.Anything, tool).Return(false, nil)

	_, err := f.uc.LaunchTool(ctx, tool.ID)

	assert.ErrorIs(t, err, entity.ErrConsentDeclined)
	assert.Equal(t, 0, f.uc.Count())
	notes := f.notifications()
	require.Len(t, notes, 1)
	assert.Equal(t, usecase.TitleLaunchDeclined, notes[0].Title)
	f.consentRepo.AssertNotCalled(t, "Set", mock.Anything, mock.Anything)
}

func TestManageTools_ConsentAcceptedIsPersisted(t *testing.T) {
	f := newToolsFixture(t)
	tool := singleTool()
	tool.CSPExceptions = []entity.CSPException{{Directive: "connect-src", Sources: []string{"https://api.example.com"}}}

	f.consentRepo.EXPECT().Get(mock.Anything, tool.ID).Return(nil, nil)
	f.prompter.EXPECT().PromptConsent(mock.Anything, tool).Return(true, nil)
	f.consentRepo.EXPECT().Set(mock.Anything, mock.MatchedBy(func(c *entity.CSPConsent) bool {
		return c.ToolID == tool.ID && c.Fingerprint == entity.FingerprintCSP(tool.CSPExceptions)
	})).Return(nil)

	f.launchSingle(t, tool, "c1")
	assert.Equal(t, 1, f.uc.Count())
}

func TestManageTools_StoredConsentSkipsPrompt(t *testing.T) {
	f := newToolsFixture(t)
	tool := singleTool()
	tool.CSPExceptions = []entity.CSPException{{Directive: "img-src", Sources: []string{"https://cdn.example.com"}}}

	f.consentRepo.EXPECT().Get(mock.Anything, tool.ID).Return(&entity.CSPConsent{
		ToolID:      tool.ID,
		Fingerprint: entity.FingerprintCSP(tool.CSPExceptions),
	}, nil)

	f.launchSingle(t, tool, "c1")
	f.prompter.AssertNotCalled(t, "PromptConsent", mock.Anything, mock.Anything)
}

func TestManageTools_ClosePinnedIsRefused(t *testing.T) {
	ctx := testContext()
	f := newToolsFixture(t)
	inst := f.launchSingle(t, singleTool(), "c1")

	pinned, err := f.uc.TogglePinTab(ctx, inst.InstanceID)
	require.NoError(t, err)
	require.True(t, pinned)

	err = f.uc.CloseTool(ctx, inst.InstanceID)

	require.NoError(t, err)
	assert.Equal(t, 1, f.uc.Count())
	notes := f.notifications()
	require.NotEmpty(t, notes)
	last := notes[len(notes)-1]
	assert.Equal(t, usecase.TitleToolPinned, last.Title)
	assert.Equal(t, port.NotificationWarning, last.Type)
	f.windows.AssertNotCalled(t, "CloseToolWindow", mock.Anything, mock.Anything)
}

func TestManageTools_CloseActiveActivatesMostRecent(t *testing.T) {
	ctx := testContext()
	f := newToolsFixture(t)
	f.windows.EXPECT().CloseToolWindow(mock.Anything, mock.Anything).Return(nil)

	a := f.launchSingle(t, singleTool(), "c1")
	b := f.launchSingle(t, singleTool(), "c1")
	c := f.launchSingle(t, singleTool(), "c1")
	require.NoError(t, f.uc.SwitchToTool(ctx, b.InstanceID))

	require.NoError(t, f.uc.CloseTool(ctx, b.InstanceID))
	assert.Equal(t, c.InstanceID, f.uc.ActiveInstanceID())
	assert.Equal(t, c.InstanceID, f.view.activeID())

	require.NoError(t, f.uc.CloseTool(ctx, a.InstanceID))
	assert.Equal(t, c.InstanceID, f.uc.ActiveInstanceID(), "closing an inactive tool keeps the active one")

	require.NoError(t, f.uc.CloseTool(ctx, c.InstanceID))
	assert.Equal(t, entity.InstanceID(""), f.uc.ActiveInstanceID())
	assert.Equal(t, 1, f.view.homeShown)
	assert.Empty(t, f.lastSaved().OpenTools)
	assert.Empty(t, f.lastSaved().ActiveInstanceID)
}

func TestManageTools_SwitchUnknownIsNoop(t *testing.T) {
	ctx := testContext()
	f := newToolsFixture(t)
	inst := f.launchSingle(t, singleTool(), "c1")

	require.NoError(t, f.uc.SwitchToTool(ctx, "nope"))
	assert.Equal(t, inst.InstanceID, f.uc.ActiveInstanceID())
}

func TestManageTools_SwitchNextWrapsAround(t *testing.T) {
	ctx := testContext()
	f := newToolsFixture(t)

	a := f.launchSingle(t, singleTool(), "c1")
	b := f.launchSingle(t, singleTool(), "c1")
	c := f.launchSingle(t, singleTool(), "c1")
	require.NoError(t, f.uc.SwitchToTool(ctx, b.InstanceID))

	require.NoError(t, f.uc.SwitchNext(ctx))
	assert.Equal(t, c.InstanceID, f.uc.ActiveInstanceID())

	require.NoError(t, f.uc.SwitchNext(ctx))
	assert.Equal(t, a.InstanceID, f.uc.ActiveInstanceID())

	require.NoError(t, f.uc.SwitchPrevious(ctx))
	assert.Equal(t, c.InstanceID, f.uc.ActiveInstanceID())
	assert.Equal(t, c.InstanceID, f.view.activeID())
}

func TestManageTools_AtMostOneActiveTab(t *testing.T) {
	ctx := testContext()
	f := newToolsFixture(t)
	f.windows.EXPECT().CloseToolWindow(mock.Anything, mock.Anything).Return(nil)

	var ids []entity.InstanceID
	for range 4 {
		ids = append(ids, f.launchSingle(t, singleTool(), "c1").InstanceID)
		assert.Equal(t, f.uc.ActiveInstanceID(), f.view.activeID())
	}
	require.NoError(t, f.uc.SwitchToTool(ctx, ids[1]))
	assert.Equal(t, f.uc.ActiveInstanceID(), f.view.activeID())
	require.NoError(t, f.uc.CloseActive(ctx))
	assert.Equal(t, f.uc.ActiveInstanceID(), f.view.activeID())
	require.NoError(t, f.uc.SwitchPrevious(ctx))
	assert.Equal(t, f.uc.ActiveInstanceID(), f.view.activeID())
}

func TestManageTools_SetToolConnectionRedecoratesActiveOnly(t *testing.T) {
	ctx := testContext()
	f := newToolsFixture(t)
	f.windows.EXPECT().UpdateToolInstanceConnection(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.store.EXPECT().Get(mock.Anything, entity.ConnectionID("c2")).Return(testConnections()[1], nil)

	inactive := f.launchSingle(t, singleTool(), "c1")
	active := f.launchSingle(t, singleTool(), "c1")

	require.NoError(t, f.uc.SetToolConnection(ctx, active.InstanceID, "c2"))
	d, ok := f.view.decoration(active.InstanceID)
	require.True(t, ok)
	assert.Equal(t, "env-border-production", d.Class)
	assert.Equal(t, "ToolName (2) is connected to: C2 (Production)", d.Status)

	require.NoError(t, f.uc.SetToolConnection(ctx, inactive.InstanceID, "c2"))
	_, ok = f.view.decoration(inactive.InstanceID)
	assert.False(t, ok, "inactive instances are not decorated")

	for _, inst := range f.uc.Instances() {
		assert.Equal(t, entity.ConnectionID("c2"), inst.PrimaryConnectionID)
	}
	assert.Equal(t, entity.ConnectionID("c2"), f.lastSaved().OpenTools[0].ConnectionID)
}

func TestManageTools_SetToolConnectionUnknownConnection(t *testing.T) {
	ctx := testContext()
	f := newToolsFixture(t)
	inst := f.launchSingle(t, singleTool(), "c1")
	f.store.EXPECT().Get(mock.Anything, entity.ConnectionID("gone")).Return(nil, nil)

	err := f.uc.SetToolConnection(ctx, inst.InstanceID, "gone")

	assert.ErrorIs(t, err, entity.ErrNotFound)
	assert.Equal(t, entity.ConnectionID("c1"), f.uc.Instances()[0].PrimaryConnectionID)
	f.windows.AssertNotCalled(t, "UpdateToolInstanceConnection", mock.Anything, mock.Anything, mock.Anything)
}

func TestManageTools_ChangeToolConnectionHighlightsCurrent(t *testing.T) {
	ctx := testContext()
	f := newToolsFixture(t)
	inst := f.launchSingle(t, singleTool(), "c1")

	f.picker.EXPECT().PickConnection(mock.Anything, entity.ConnectionID("c1")).Return("c3", nil)
	f.store.EXPECT().Get(mock.Anything, entity.ConnectionID("c3")).Return(testConnections()[2], nil)
	f.windows.EXPECT().UpdateToolInstanceConnection(mock.Anything, inst.InstanceID, entity.ConnectionID("c3")).Return(nil)

	require.NoError(t, f.uc.ChangeToolConnection(ctx, inst.InstanceID))
	assert.Equal(t, entity.ConnectionID("c3"), f.uc.Instances()[0].PrimaryConnectionID)
}

func TestManageTools_CloseAllIncludesPinned(t *testing.T) {
	ctx := testContext()
	f := newToolsFixture(t)
	f.windows.EXPECT().CloseToolWindow(mock.Anything, mock.Anything).Return(nil).Times(2)

	a := f.launchSingle(t, singleTool(), "c1")
	f.launchSingle(t, singleTool(), "c1")
	_, err := f.uc.TogglePinTab(ctx, a.InstanceID)
	require.NoError(t, err)

	require.NoError(t, f.uc.CloseAllTools(ctx))

	assert.Equal(t, 0, f.uc.Count())
	assert.Empty(t, f.view.labels())
	assert.Empty(t, f.lastSaved().OpenTools)
}

func TestManageTools_ShutdownKeepsSavedSession(t *testing.T) {
	ctx := testContext()
	f := newToolsFixture(t)
	f.windows.EXPECT().CloseToolWindow(mock.Anything, mock.Anything).Return(nil)

	f.launchSingle(t, singleTool(), "c1")
	require.NoError(t, f.uc.Shutdown(ctx))

	assert.Equal(t, 0, f.uc.Count())
	require.Len(t, f.lastSaved().OpenTools, 1)
}

func TestManageTools_ShowToolDetailLaunch(t *testing.T) {
	ctx := testContext()
	f := newToolsFixture(t)
	tool := singleTool()
	presenter := portmocks.NewMockToolDetailPresenter(t)
	presenter.EXPECT().ShowToolDetail(mock.Anything, tool).Return(port.ToolDetailLaunch, nil)

	f.catalog.EXPECT().GetTool(mock.Anything, tool.ID).Return(tool, nil)
	f.picker.EXPECT().PickConnection(mock.Anything, mock.Anything).Return("c1", nil)
	f.windows.EXPECT().LaunchToolWindow(mock.Anything, mock.Anything, tool, entity.ConnectionID("c1"), entity.ConnectionID("")).
		Return(true, nil)

	action, err := f.uc.ShowToolDetail(ctx, presenter, tool.ID)
	require.NoError(t, err)
	assert.Equal(t, port.ToolDetailLaunch, action)
	assert.Equal(t, 1, f.uc.Count())
}
