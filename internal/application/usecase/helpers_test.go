package usecase_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/PowerPlatformToolBox/desktop-app/internal/application/port"
	portmocks "github.com/PowerPlatformToolBox/desktop-app/internal/application/port/mocks"
	"github.com/PowerPlatformToolBox/desktop-app/internal/application/usecase"
	"github.com/PowerPlatformToolBox/desktop-app/internal/domain/entity"
	repomocks "github.com/PowerPlatformToolBox/desktop-app/internal/domain/repository/mocks"
	"github.com/PowerPlatformToolBox/desktop-app/internal/logging"
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

// fakeView records what the orchestrator renders.
type fakeView struct {
	mu          sync.Mutex
	tabs        []port.TabModel
	active      entity.InstanceID
	decorations map[entity.InstanceID]port.ViewDecoration
	homeShown   int
}

func newFakeView() *fakeView {
	return &fakeView{decorations: make(map[entity.InstanceID]port.ViewDecoration)}
}

func (v *fakeView) AddTab(_ context.Context, tab port.TabModel) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.tabs = append(v.tabs, tab)
}

func (v *fakeView) RemoveTab(_ context.Context, id entity.InstanceID) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i, tab := range v.tabs {
		if tab.InstanceID == id {
			v.tabs = append(v.tabs[:i], v.tabs[i+1:]...)
			break
		}
	}
	if v.active == id {
		v.active = ""
	}
	delete(v.decorations, id)
}

func (v *fakeView) ActivateTab(_ context.Context, id entity.InstanceID) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.active = id
	v.decorations = make(map[entity.InstanceID]port.ViewDecoration)
}

func (v *fakeView) SetPinned(_ context.Context, id entity.InstanceID, pinned bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i := range v.tabs {
		if v.tabs[i].InstanceID == id {
			v.tabs[i].Pinned = pinned
		}
	}
}

func (v *fakeView) SetLabel(_ context.Context, id entity.InstanceID, label string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i := range v.tabs {
		if v.tabs[i].InstanceID == id {
			v.tabs[i].Label = label
		}
	}
}

func (v *fakeView) Decorate(_ context.Context, id entity.InstanceID, d port.ViewDecoration) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.decorations[id] = d
}

func (v *fakeView) ShowHome(context.Context) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.active = ""
	v.homeShown++
}

func (v *fakeView) labels() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]string, 0, len(v.tabs))
	for _, tab := range v.tabs {
		out = append(out, tab.Label)
	}
	return out
}

func (v *fakeView) activeID() entity.InstanceID {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.active
}

func (v *fakeView) decoration(id entity.InstanceID) (port.ViewDecoration, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	d, ok := v.decorations[id]
	return d, ok
}

func testConnections() []*entity.Connection {
	return []*entity.Connection{
		{ID: "c1", Name: "C1", Environment: entity.EnvironmentDev, Authenticated: true},
		{ID: "c2", Name: "C2", Environment: entity.EnvironmentProduction, Authenticated: true},
		{ID: "c3", Name: "C3", Environment: entity.EnvironmentDev, Authenticated: true},
	}
}

func singleTool() *entity.Tool {
	return &entity.Tool{ID: "tool-a", Name: "ToolName", Version: "1.0.0"}
}

func dualTool() *entity.Tool {
	return &entity.Tool{ID: "tool-dual", Name: "Compare", MultiConnection: entity.MultiConnectionRequired}
}

type toolsFixture struct {
	uc          *usecase.ManageToolsUseCase
	catalog     *portmocks.MockToolCatalog
	store       *portmocks.MockConnectionStore
	windows     *portmocks.MockWindowProvider
	notifier    *portmocks.MockNotifier
	picker      *portmocks.MockConnectionPicker
	multi       *portmocks.MockMultiConnectionPicker
	prompter    *portmocks.MockConsentPrompter
	consentRepo *repomocks.MockConsentRepository
	sessionRepo *repomocks.MockSessionStateRepository
	session     *usecase.SaveSessionUseCase
	consent     *usecase.ManageConsentUseCase
	view        *fakeView

	mu    sync.Mutex
	saved *entity.SessionSnapshot
	shown []port.Notification
}

func newToolsFixture(t *testing.T) *toolsFixture {
	t.Helper()
	f := &toolsFixture{
		catalog:     portmocks.NewMockToolCatalog(t),
		store:       portmocks.NewMockConnectionStore(t),
		windows:     portmocks.NewMockWindowProvider(t),
		notifier:    portmocks.NewMockNotifier(t),
		picker:      portmocks.NewMockConnectionPicker(t),
		multi:       portmocks.NewMockMultiConnectionPicker(t),
		prompter:    portmocks.NewMockConsentPrompter(t),
		consentRepo: repomocks.NewMockConsentRepository(t),
		sessionRepo: repomocks.NewMockSessionStateRepository(t),
		view:        newFakeView(),
	}
	f.session = usecase.NewSaveSessionUseCase(f.sessionRepo)
	f.consent = usecase.NewManageConsentUseCase(f.consentRepo, f.prompter)
	f.uc = usecase.NewManageToolsUseCase(usecase.ManageToolsDeps{
		Catalog:     f.catalog,
		Connections: f.store,
		Windows:     f.windows,
		View:        f.view,
		Notifier:    f.notifier,
		Picker:      f.picker,
		MultiPicker: f.multi,
		Consent:     f.consent,
		Session:     f.session,
		IDGenerator: sequentialIDs("inst"),
	})

	f.store.EXPECT().GetAll(mock.Anything).Return(testConnections(), nil).Maybe()
	f.windows.EXPECT().SwitchToolWindow(mock.Anything, mock.Anything).Return(nil).Maybe()
	f.sessionRepo.EXPECT().SaveSnapshot(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, snap *entity.SessionSnapshot) error {
			f.mu.Lock()
			defer f.mu.Unlock()
			f.saved = snap
			return nil
		}).Maybe()
	f.notifier.EXPECT().Show(mock.Anything, mock.Anything).
		Run(func(_ context.Context, n port.Notification) {
			f.mu.Lock()
			defer f.mu.Unlock()
			f.shown = append(f.shown, n)
		}).Return().Maybe()
	return f
}

func (f *toolsFixture) lastSaved() *entity.SessionSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.saved
}

func (f *toolsFixture) notifications() []port.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]port.Notification(nil), f.shown...)
}

// launchSingle launches tool bound to conn with every collaborator succeeding.
func (f *toolsFixture) launchSingle(t *testing.T, tool *entity.Tool, conn entity.ConnectionID) *entity.OpenToolInstance {
	t.Helper()
	f.catalog.EXPECT().GetTool(mock.Anything, tool.ID).Return(tool, nil).Once()
	f.picker.EXPECT().PickConnection(mock.Anything, entity.ConnectionID("")).Return(conn, nil).Once()
	f.windows.EXPECT().LaunchToolWindow(mock.Anything, mock.Anything, tool, conn, entity.ConnectionID("")).
		Return(true, nil).Once()
	inst, err := f.uc.LaunchTool(testContext(), tool.ID)
	if err != nil {
		t.Fatalf("launch %s: %v", tool.ID, err)
	}
	return inst
}
