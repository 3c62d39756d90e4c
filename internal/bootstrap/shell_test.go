package bootstrap_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/PowerPlatformToolBox/desktop-app/internal/application/port"
	portmocks "github.com/PowerPlatformToolBox/desktop-app/internal/application/port/mocks"
	"github.com/PowerPlatformToolBox/desktop-app/internal/application/usecase"
	"github.com/PowerPlatformToolBox/desktop-app/internal/bootstrap"
	"github.com/PowerPlatformToolBox/desktop-app/internal/domain/entity"
	"github.com/PowerPlatformToolBox/desktop-app/internal/infrastructure/config"
	"github.com/PowerPlatformToolBox/desktop-app/internal/infrastructure/persistence/sqlite"
	"github.com/PowerPlatformToolBox/desktop-app/internal/logging"
	"github.com/PowerPlatformToolBox/desktop-app/internal/ui/component"
	"github.com/PowerPlatformToolBox/desktop-app/internal/ui/dialog"
	"github.com/PowerPlatformToolBox/desktop-app/internal/ui/input"
	"github.com/PowerPlatformToolBox/desktop-app/internal/ui/modal/modaltest"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func sequentialIDs(prefix string) entity.IDGenerator {
	var mu sync.Mutex
	n := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

func testConnections() []*entity.Connection {
	return []*entity.Connection{
		{ID: "c1", Name: "C1", Environment: entity.EnvironmentDev, Authenticated: true},
		{ID: "c2", Name: "C2", Environment: entity.EnvironmentProduction, Authenticated: true},
	}
}

func testTool() *entity.Tool {
	return &entity.Tool{ID: "tool-a", Name: "ToolName", Version: "1.0.0"}
}

type harness struct {
	dir      string
	modal    *modaltest.Host
	windows  *portmocks.MockWindowProvider
	store    *portmocks.MockConnectionStore
	notifier *portmocks.MockNotifier
	catalog  *portmocks.MockToolCatalog

	mu            sync.Mutex
	notifications []port.Notification
}

func newHarness(t *testing.T, dir string) *harness {
	t.Helper()
	h := &harness{
		dir:      dir,
		modal:    modaltest.NewHost(),
		windows:  portmocks.NewMockWindowProvider(t),
		store:    portmocks.NewMockConnectionStore(t),
		notifier: portmocks.NewMockNotifier(t),
		catalog:  portmocks.NewMockToolCatalog(t),
	}
	h.store.EXPECT().GetAll(mock.Anything).Return(testConnections(), nil).Maybe()
	h.notifier.EXPECT().Show(mock.Anything, mock.Anything).
		Run(func(_ context.Context, n port.Notification) {
			h.mu.Lock()
			defer h.mu.Unlock()
			h.notifications = append(h.notifications, n)
		}).Maybe()
	return h
}

func (h *harness) host() bootstrap.Host {
	return bootstrap.Host{
		Windows:     h.windows,
		Connections: h.store,
		Modal:       h.modal,
		Notifier:    h.notifier,
		Catalog:     h.catalog,
	}
}

func (h *harness) titles() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, 0, len(h.notifications))
	for _, n := range h.notifications {
		out = append(out, n.Title)
	}
	return out
}

func (h *harness) newShell(t *testing.T, prefix string) *bootstrap.Shell {
	t.Helper()
	shell, err := bootstrap.NewShell(testContext(), h.host(), bootstrap.Options{
		Config:      config.NewManagerForDir(h.dir),
		Database:    sqlite.NewLazyDB(filepath.Join(h.dir, "pptb.sqlite")),
		IDGenerator: sequentialIDs(prefix),
	})
	require.NoError(t, err)
	return shell
}

// channelOf finds the channel identifier of event in a rendered dialog page.
func channelOf(t *testing.T, html string, kind dialog.Kind, event string) string {
	t.Helper()
	re := regexp.MustCompile(regexp.QuoteMeta(string(kind)+":"+event+":") + `[0-9a-f]+`)
	ch := re.FindString(html)
	require.NotEmpty(t, ch, "no %s channel in dialog page", event)
	return ch
}

type launchResult struct {
	inst *entity.OpenToolInstance
	err  error
}

func launchAsync(ctx context.Context, shell *bootstrap.Shell, id entity.ToolID) <-chan launchResult {
	out := make(chan launchResult, 1)
	go func() {
		inst, err := shell.LaunchTool(ctx, id)
		out <- launchResult{inst: inst, err: err}
	}()
	return out
}

func waitLaunch(t *testing.T, ch <-chan launchResult) launchResult {
	t.Helper()
	select {
	case r := <-ch:
		return r
	case <-time.After(2 * time.Second):
		t.Fatal("launch did not finish")
		return launchResult{}
	}
}

func TestNewShell_RequiresHostCollaborators(t *testing.T) {
	_, err := bootstrap.NewShell(testContext(), bootstrap.Host{}, bootstrap.Options{
		Config: config.NewManagerForDir(t.TempDir()),
	})

	require.ErrorIs(t, err, entity.ErrValidation)
	assert.ErrorContains(t, err, "window provider")
	assert.ErrorContains(t, err, "tool catalog")
}

func TestShell_LaunchThroughDialogAndRestoreOnNextStart(t *testing.T) {
	ctx := testContext()
	dir := t.TempDir()
	h := newHarness(t, dir)
	tool := testTool()

	h.catalog.EXPECT().GetTool(mock.Anything, tool.ID).Return(tool, nil)
	h.store.EXPECT().Get(mock.Anything, entity.ConnectionID("c1")).Return(testConnections()[0], nil)
	h.store.EXPECT().Authenticate(mock.Anything, entity.ConnectionID("c1")).Return(nil).Once()
	h.store.EXPECT().SetActive(mock.Anything, entity.ConnectionID("c1")).Return(nil).Once()
	h.windows.EXPECT().LaunchToolWindow(mock.Anything, entity.InstanceID("first-1"), tool, entity.ConnectionID("c1"), entity.ConnectionID("")).
		Return(true, nil).Once()
	h.windows.EXPECT().SwitchToolWindow(mock.Anything, mock.Anything).Return(nil)
	h.windows.EXPECT().CloseToolWindow(mock.Anything, mock.Anything).Return(nil)

	shell := h.newShell(t, "first")
	out, err := shell.Start(ctx)
	require.NoError(t, err)
	assert.Empty(t, out.Restored, "a fresh profile has nothing to restore")

	done := launchAsync(ctx, shell, tool.ID)
	opts := h.modal.WaitShown(t)
	assert.Equal(t, dialog.DefaultSizes()[dialog.KindSelectConnection].Width, opts.Width)

	h.modal.Emit(channelOf(t, opts.HTML, dialog.KindSelectConnection, "select"), map[string]string{"connectionId": "c1"})

	r := waitLaunch(t, done)
	require.NoError(t, r.err)
	assert.Equal(t, "ToolName", r.inst.Label())

	strip := shell.Tabs()
	require.Equal(t, []entity.InstanceID{"first-1"}, strip.Order())
	node, _ := strip.Node("first-1")
	assert.True(t, node.HasClass(component.ClassActive))
	assert.True(t, node.HasClass("env-border-dev"))
	assert.Equal(t, "ToolName is connected to: C1 (Dev)", strip.Status())

	require.NoError(t, shell.Close(ctx))
	assert.Zero(t, strip.Count())

	// Second start relaunches the instance without any dialog.
	h.store.EXPECT().RefreshToken(mock.Anything, entity.ConnectionID("c1")).Return(nil).Once()
	h.windows.EXPECT().LaunchToolWindow(mock.Anything, entity.InstanceID("second-1"), tool, entity.ConnectionID("c1"), entity.ConnectionID("")).
		Return(true, nil).Once()

	restarted := h.newShell(t, "second")
	t.Cleanup(func() { _ = restarted.Close(ctx) })
	out, err = restarted.Start(ctx)
	require.NoError(t, err)
	assert.Equal(t, []entity.InstanceID{"second-1"}, out.Restored)
	assert.Equal(t, entity.InstanceID("second-1"), out.ActiveID)
	assert.Equal(t, []entity.InstanceID{"second-1"}, restarted.Tabs().Order())
	assert.Len(t, h.modal.Shown(), 1, "restore shows no dialog")
}

func TestShell_ClosingDialogCancelsLaunch(t *testing.T) {
	ctx := testContext()
	h := newHarness(t, t.TempDir())
	tool := testTool()
	h.catalog.EXPECT().GetTool(mock.Anything, tool.ID).Return(tool, nil)

	shell := h.newShell(t, "id")
	t.Cleanup(func() { _ = shell.Close(ctx) })

	done := launchAsync(ctx, shell, tool.ID)
	h.modal.WaitShown(t)
	h.modal.UserClose()

	r := waitLaunch(t, done)
	require.ErrorIs(t, r.err, entity.ErrUserCancelled)
	assert.Nil(t, r.inst)
	assert.Zero(t, shell.Tabs().Count())
	assert.True(t, shell.Tabs().HomeVisible())
	assert.Equal(t, []string{usecase.TitleLaunchCancelled}, h.titles())
	h.windows.AssertNotCalled(t, "LaunchToolWindow", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestShell_StartWithAutoRestoreDisabled(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[session]\nauto_restore = false\n"), 0o600))
	h := newHarness(t, dir)

	shell := h.newShell(t, "id")
	t.Cleanup(func() { _ = shell.Close(testContext()) })

	out, err := shell.Start(testContext())
	require.NoError(t, err)
	assert.Nil(t, out)
	assert.False(t, shell.Config().Session.AutoRestore)
}

func TestShell_HandleKeyWithoutToolsIsConsumed(t *testing.T) {
	h := newHarness(t, t.TempDir())
	shell := h.newShell(t, "id")
	t.Cleanup(func() { _ = shell.Close(testContext()) })

	handled, err := shell.HandleKey(testContext(), input.KeyEvent{Key: "tab", Ctrl: true})
	require.NoError(t, err)
	assert.True(t, handled)

	handled, err = shell.HandleKey(testContext(), input.KeyEvent{Key: "x"})
	require.NoError(t, err)
	assert.False(t, handled)
}

func TestDialogSizes_MergesConfiguredKinds(t *testing.T) {
	sizes := bootstrap.DialogSizes(config.ModalConfig{Sizes: map[string]config.ModalSize{
		"select-connection": {Width: 700, Height: 500},
		"csp-consent":       {Width: 0, Height: 300},
		"unknown":           {Width: 100, Height: 100},
	}})

	assert.Equal(t, dialog.Size{Width: 700, Height: 500}, sizes[dialog.KindSelectConnection])
	assert.Equal(t, dialog.DefaultSizes()[dialog.KindCSPConsent], sizes[dialog.KindCSPConsent])
	assert.NotContains(t, sizes, dialog.Kind("unknown"))
}
