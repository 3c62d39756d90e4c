package dialog_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/PowerPlatformToolBox/desktop-app/internal/application/port"
	portmocks "github.com/PowerPlatformToolBox/desktop-app/internal/application/port/mocks"
	"github.com/PowerPlatformToolBox/desktop-app/internal/domain/entity"
	"github.com/PowerPlatformToolBox/desktop-app/internal/ui/dialog"
	"github.com/PowerPlatformToolBox/desktop-app/internal/ui/modal"
)

type authReply struct {
	Success      bool   `json:"success"`
	ConnectionID string `json:"connectionId"`
	ListType     string `json:"listType"`
	Error        string `json:"error"`
}

func dualTool(mode entity.MultiConnectionMode) *entity.Tool {
	return &entity.Tool{ID: "compare", Name: "Solution Compare", MultiConnection: mode}
}

func expectConnection(store *portmocks.MockConnectionStore, id entity.ConnectionID) {
	conn := entity.FindConnection(testConnections(), id)
	store.EXPECT().Get(mock.Anything, id).Return(conn, nil).Maybe()
}

func TestMultiConnectionSelectionFlow_ConfirmEnabledOnlyWhenBothAuthenticated(t *testing.T) {
	ctx := testContext()
	host, bridge := newBridge(t)
	store := portmocks.NewMockConnectionStore(t)
	notifier := portmocks.NewMockNotifier(t)
	flow := dialog.NewMultiConnectionSelectionFlow(bridge, store, notifier, dialog.DefaultSizes())
	ch := flow.Channels()

	expectConnection(store, "c1")
	expectConnection(store, "c2")
	store.EXPECT().GetAll(mock.Anything).Return(testConnections(), nil)
	store.EXPECT().Authenticate(mock.Anything, entity.ConnectionID("c1")).Return(nil)
	store.EXPECT().Authenticate(mock.Anything, entity.ConnectionID("c2")).Return(nil)

	done := async(func() (port.ConnectionPair, error) {
		return flow.PickConnections(ctx, dualTool(entity.MultiConnectionRequired))
	})
	host.WaitShown(t)

	host.Emit(ch.Channel(modal.EventPopulate), nil)
	state := lastSent[dialog.SelectionState](t, host, ch.Channel(modal.EventState))
	assert.False(t, state.ConfirmEnabled)
	assert.True(t, state.SecondaryRequired)

	host.Emit(ch.Channel(modal.EventAuthenticate), map[string]string{"connectionId": "c1", "listType": "primary"})
	reply := lastSent[authReply](t, host, ch.Channel(modal.EventAuthResult))
	assert.True(t, reply.Success)
	assert.Equal(t, "primary", reply.ListType)

	state = lastSent[dialog.SelectionState](t, host, ch.Channel(modal.EventState))
	assert.False(t, state.ConfirmEnabled, "secondary is required")
	assert.Equal(t, []entity.ConnectionID{"c1"}, state.Disabled[entity.SlotSecondary])
	assert.Empty(t, state.Disabled[entity.SlotPrimary])

	host.Emit(ch.Channel(modal.EventAuthenticate), map[string]string{"connectionId": "c2", "listType": "secondary"})
	state = lastSent[dialog.SelectionState](t, host, ch.Channel(modal.EventState))
	assert.True(t, state.ConfirmEnabled)

	host.Emit(ch.Channel(modal.EventConfirm), map[string]string{
		"action":                "confirm",
		"primaryConnectionId":   "c1",
		"secondaryConnectionId": "c2",
	})

	r := wait(t, done)
	require.NoError(t, r.err)
	assert.Equal(t, port.ConnectionPair{Primary: "c1", Secondary: "c2"}, r.value)
}

func TestMultiConnectionSelectionFlow_SameConnectionRejectedInOtherList(t *testing.T) {
	ctx := testContext()
	host, bridge := newBridge(t)
	store := portmocks.NewMockConnectionStore(t)
	notifier := portmocks.NewMockNotifier(t)
	flow := dialog.NewMultiConnectionSelectionFlow(bridge, store, notifier, dialog.DefaultSizes())
	ch := flow.Channels()

	expectConnection(store, "c1")
	store.EXPECT().Authenticate(mock.Anything, entity.ConnectionID("c1")).Return(nil).Once()

	done := async(func() (port.ConnectionPair, error) {
		return flow.PickConnections(ctx, dualTool(entity.MultiConnectionRequired))
	})
	host.WaitShown(t)

	host.Emit(ch.Channel(modal.EventAuthenticate), map[string]string{"connectionId": "c1", "listType": "primary"})
	host.Emit(ch.Channel(modal.EventAuthenticate), map[string]string{"connectionId": "c1", "listType": "secondary"})

	reply := lastSent[authReply](t, host, ch.Channel(modal.EventAuthResult))
	assert.False(t, reply.Success)
	assert.Equal(t, "secondary", reply.ListType)
	assert.NotEmpty(t, reply.Error)

	host.UserClose()
	assert.ErrorIs(t, wait(t, done).err, entity.ErrUserCancelled)
}

func TestMultiConnectionSelectionFlow_SlotFailureIsContained(t *testing.T) {
	ctx := testContext()
	host, bridge := newBridge(t)
	store := portmocks.NewMockConnectionStore(t)
	notifier := portmocks.NewMockNotifier(t)
	flow := dialog.NewMultiConnectionSelectionFlow(bridge, store, notifier, dialog.DefaultSizes())
	ch := flow.Channels()

	expectConnection(store, "c1")
	expectConnection(store, "c2")
	store.EXPECT().Authenticate(mock.Anything, entity.ConnectionID("c1")).Return(nil)
	store.EXPECT().Authenticate(mock.Anything, entity.ConnectionID("c2")).Return(errors.New("mfa required"))
	notifier.EXPECT().Show(mock.Anything, mock.MatchedBy(func(n port.Notification) bool {
		return n.Type == port.NotificationError
	})).Return()

	done := async(func() (port.ConnectionPair, error) {
		return flow.PickConnections(ctx, dualTool(entity.MultiConnectionRequired))
	})
	host.WaitShown(t)

	host.Emit(ch.Channel(modal.EventAuthenticate), map[string]string{"connectionId": "c1", "listType": "primary"})
	host.Emit(ch.Channel(modal.EventAuthenticate), map[string]string{"connectionId": "c2", "listType": "secondary"})

	reply := lastSent[authReply](t, host, ch.Channel(modal.EventAuthResult))
	assert.False(t, reply.Success)
	assert.Equal(t, "mfa required", reply.Error)

	state := lastSent[dialog.SelectionState](t, host, ch.Channel(modal.EventState))
	assert.Equal(t, entity.SlotAuthenticated, state.Primary.State)
	assert.Equal(t, entity.SlotFailed, state.Secondary.State)
	assert.False(t, state.ConfirmEnabled)
	assert.Equal(t, 0, host.Closes())

	host.UserClose()
	assert.ErrorIs(t, wait(t, done).err, entity.ErrUserCancelled)
}

func TestMultiConnectionSelectionFlow_OptionalSecondary(t *testing.T) {
	ctx := testContext()
	host, bridge := newBridge(t)
	store := portmocks.NewMockConnectionStore(t)
	notifier := portmocks.NewMockNotifier(t)
	flow := dialog.NewMultiConnectionSelectionFlow(bridge, store, notifier, dialog.DefaultSizes())
	ch := flow.Channels()

	expectConnection(store, "c1")
	store.EXPECT().Authenticate(mock.Anything, entity.ConnectionID("c1")).Return(nil)

	done := async(func() (port.ConnectionPair, error) {
		return flow.PickConnections(ctx, dualTool(entity.MultiConnectionOptional))
	})
	host.WaitShown(t)

	host.Emit(ch.Channel(modal.EventAuthenticate), map[string]string{"connectionId": "c1", "listType": "primary"})
	state := lastSent[dialog.SelectionState](t, host, ch.Channel(modal.EventState))
	assert.True(t, state.ConfirmEnabled)

	host.Emit(ch.Channel(modal.EventConfirm), map[string]any{"action": "confirm", "primaryConnectionId": "c1", "secondaryConnectionId": nil})

	r := wait(t, done)
	require.NoError(t, r.err)
	assert.Equal(t, port.ConnectionPair{Primary: "c1"}, r.value)
}

func TestMultiConnectionSelectionFlow_DisconnectDisablesConfirm(t *testing.T) {
	ctx := testContext()
	host, bridge := newBridge(t)
	store := portmocks.NewMockConnectionStore(t)
	notifier := portmocks.NewMockNotifier(t)
	flow := dialog.NewMultiConnectionSelectionFlow(bridge, store, notifier, dialog.DefaultSizes())
	ch := flow.Channels()

	expectConnection(store, "c1")
	store.EXPECT().Authenticate(mock.Anything, entity.ConnectionID("c1")).Return(nil)

	done := async(func() (port.ConnectionPair, error) {
		return flow.PickConnections(ctx, dualTool(entity.MultiConnectionOptional))
	})
	host.WaitShown(t)

	host.Emit(ch.Channel(modal.EventAuthenticate), map[string]string{"connectionId": "c1", "listType": "primary"})
	require.True(t, lastSent[dialog.SelectionState](t, host, ch.Channel(modal.EventState)).ConfirmEnabled)

	host.Emit(ch.Channel(modal.EventDisconnect), map[string]string{"listType": "primary"})
	state := lastSent[dialog.SelectionState](t, host, ch.Channel(modal.EventState))
	assert.False(t, state.ConfirmEnabled)
	assert.Equal(t, entity.SlotUnauthenticated, state.Primary.State)

	// Confirming an incomplete selection is refused inline.
	host.Emit(ch.Channel(modal.EventConfirm), map[string]string{"action": "confirm", "primaryConnectionId": "c1"})
	assert.Equal(t, 0, host.Closes())
	assert.NotEmpty(t, host.SentOn(ch.Channel(modal.EventFeedback)))

	host.UserClose()
	assert.ErrorIs(t, wait(t, done).err, entity.ErrUserCancelled)
}
