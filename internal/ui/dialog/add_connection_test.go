package dialog_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/PowerPlatformToolBox/desktop-app/internal/application/port"
	portmocks "github.com/PowerPlatformToolBox/desktop-app/internal/application/port/mocks"
	"github.com/PowerPlatformToolBox/desktop-app/internal/domain/entity"
	"github.com/PowerPlatformToolBox/desktop-app/internal/ui/dialog"
	"github.com/PowerPlatformToolBox/desktop-app/internal/ui/modal"
)

func TestConnectionForm_Validate(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	valid := dialog.ConnectionForm{
		Name:        " Contoso Dev ",
		URL:         "https://contoso-dev.crm.dynamics.com/",
		Environment: "dev",
		AuthType:    "interactive",
	}

	tests := []struct {
		name   string
		mutate func(f *dialog.ConnectionForm)
		field  string
	}{
		{name: "valid", mutate: func(*dialog.ConnectionForm) {}},
		{name: "missing name", mutate: func(f *dialog.ConnectionForm) { f.Name = "  " }, field: "name"},
		{name: "missing url", mutate: func(f *dialog.ConnectionForm) { f.URL = "" }, field: "url"},
		{name: "relative url", mutate: func(f *dialog.ConnectionForm) { f.URL = "contoso" }, field: "url"},
		{name: "unknown environment", mutate: func(f *dialog.ConnectionForm) { f.Environment = "staging" }, field: "environment"},
		{name: "unknown auth", mutate: func(f *dialog.ConnectionForm) { f.AuthType = "kerberos" }, field: "authType"},
		{name: "client secret needs client id", mutate: func(f *dialog.ConnectionForm) {
			f.AuthType = string(entity.AuthTypeClientSecret)
			f.TenantID = "tenant"
		}, field: "clientId"},
		{name: "username password needs username", mutate: func(f *dialog.ConnectionForm) {
			f.AuthType = string(entity.AuthTypeUsernamePassword)
		}, field: "username"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := valid
			tt.mutate(&form)
			conn, err := form.Validate(now)
			if tt.field == "" {
				require.NoError(t, err)
				assert.Equal(t, "Contoso Dev", conn.Name)
				assert.Equal(t, "https://contoso-dev.crm.dynamics.com", conn.URL)
				assert.Equal(t, entity.EnvironmentDev, conn.Environment)
				assert.Equal(t, now, conn.CreatedAt)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, entity.ErrValidation)
			var fe *dialog.FieldError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tt.field, fe.Field)
		})
	}
}

func TestAddConnectionFlow_ValidationStaysInline(t *testing.T) {
	ctx := testContext()
	host, bridge := newBridge(t)
	store := portmocks.NewMockConnectionStore(t)
	notifier := portmocks.NewMockNotifier(t)
	flow := dialog.NewAddConnectionFlow(bridge, store, notifier, dialog.DefaultSizes())
	ch := flow.Channels()

	done := async(func() (*entity.Connection, error) { return flow.CreateConnection(ctx) })
	opts := host.WaitShown(t)
	assert.Contains(t, opts.HTML, "Production")

	host.Emit(ch.Channel(modal.EventSubmit), map[string]string{"name": "", "url": "https://x.example.com"})
	fb := lastSent[map[string]any](t, host, ch.Channel(modal.EventFeedback))
	assert.Equal(t, "name", fb["field"])
	assert.Len(t, host.SentOn(ch.Channel(modal.EventReady)), 1)

	host.UserClose()
	assert.ErrorIs(t, wait(t, done).err, entity.ErrUserCancelled)
	store.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestAddConnectionFlow_TestThenSubmit(t *testing.T) {
	ctx := testContext()
	host, bridge := newBridge(t)
	store := portmocks.NewMockConnectionStore(t)
	notifier := portmocks.NewMockNotifier(t)
	flow := dialog.NewAddConnectionFlow(bridge, store, notifier, dialog.DefaultSizes())
	ch := flow.Channels()

	form := map[string]string{
		"name":        "Fabrikam UAT",
		"url":         "https://fabrikam-uat.crm.dynamics.com",
		"environment": "UAT",
		"authType":    "interactive",
	}
	store.EXPECT().Test(mock.Anything, mock.AnythingOfType("*entity.Connection")).
		Return(port.ConnectionTestResult{Success: true}, nil)
	store.EXPECT().Add(mock.Anything, mock.AnythingOfType("*entity.Connection")).
		RunAndReturn(func(_ context.Context, c *entity.Connection) (*entity.Connection, error) {
			saved := *c
			saved.ID = "c9"
			return &saved, nil
		})

	done := async(func() (*entity.Connection, error) { return flow.CreateConnection(ctx) })
	host.WaitShown(t)

	host.Emit(ch.Channel(modal.EventTest), form)
	fb := lastSent[map[string]any](t, host, ch.Channel(modal.EventFeedback))
	assert.Equal(t, true, fb["success"])
	assert.Equal(t, 0, host.Closes())

	host.Emit(ch.Channel(modal.EventSubmit), form)
	r := wait(t, done)
	require.NoError(t, r.err)
	assert.Equal(t, entity.ConnectionID("c9"), r.value.ID)
	assert.Equal(t, entity.EnvironmentUAT, r.value.Environment)
}
