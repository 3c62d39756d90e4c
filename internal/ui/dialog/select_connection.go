package dialog

import (
	"context"
	"fmt"
	"time"

	"github.com/PowerPlatformToolBox/desktop-app/internal/application/port"
	"github.com/PowerPlatformToolBox/desktop-app/internal/domain/entity"
	"github.com/PowerPlatformToolBox/desktop-app/internal/logging"
	"github.com/PowerPlatformToolBox/desktop-app/internal/ui/modal"
)

// ConnectionSelectionFlow implements port.ConnectionPicker. The dialog lists
// every connection; picking one authenticates and activates it.
type ConnectionSelectionFlow struct {
	flow     *modal.Flow[entity.ConnectionID]
	store    port.ConnectionStore
	notifier port.Notifier
	sizes    Sizes
	now      func() time.Time
}

// NewConnectionSelectionFlow creates the single connection picker.
func NewConnectionSelectionFlow(
	bridge *modal.Bridge,
	store port.ConnectionStore,
	notifier port.Notifier,
	sizes Sizes,
) *ConnectionSelectionFlow {
	return &ConnectionSelectionFlow{
		flow: modal.NewFlow[entity.ConnectionID](bridge, string(KindSelectConnection),
			modal.EventPopulate, modal.EventSelect, modal.EventReady, modal.EventFeedback),
		store:    store,
		notifier: notifier,
		sizes:    sizes,
		now:      time.Now,
	}
}

// Channels exposes the flow's channel set.
func (f *ConnectionSelectionFlow) Channels() modal.ChannelSet {
	return f.flow.Channels()
}

type selectRequest struct {
	ConnectionID entity.ConnectionID `json:"connectionId"`
}

// PickConnection opens the dialog with highlight marked active and blocks
// until a connection is authenticated or the dialog is closed.
func (f *ConnectionSelectionFlow) PickConnection(ctx context.Context, highlight entity.ConnectionID) (entity.ConnectionID, error) {
	html, err := modal.RenderPage("select_connection", f.flow.Channels(), "Select a connection", nil)
	if err != nil {
		return "", err
	}
	return f.flow.Run(ctx, f.sizes.options(KindSelectConnection, html),
		func(ctx context.Context, run *modal.Run[entity.ConnectionID], ev modal.Event, msg modal.Message) {
			switch ev {
			case modal.EventPopulate:
				f.populate(ctx, run, msg, highlight)
			case modal.EventSelect:
				f.selectConnection(ctx, run, msg)
			}
		})
}

func (f *ConnectionSelectionFlow) populate(
	ctx context.Context,
	run *modal.Run[entity.ConnectionID],
	msg modal.Message,
	highlight entity.ConnectionID,
) {
	log := logging.FromContext(ctx)

	var q ConnectionQuery
	if err := msg.Decode(&q); err != nil {
		log.Debug().Err(err).Msg("ignoring malformed populate query")
	}
	conns, err := f.store.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list connections")
		_ = run.Send(ctx, modal.EventFeedback, feedback{Message: "Failed to load connections"})
		return
	}
	rows := q.Apply(conns)
	resp := populateResponse{Connections: viewsOf(rows, highlight, f.now()), Total: len(conns)}
	if err := run.Send(ctx, modal.EventPopulate, resp); err != nil {
		log.Warn().Err(err).Msg("failed to send connection list")
	}
}

func (f *ConnectionSelectionFlow) selectConnection(ctx context.Context, run *modal.Run[entity.ConnectionID], msg modal.Message) {
	log := logging.FromContext(ctx)

	var req selectRequest
	if err := msg.Decode(&req); err != nil {
		log.Debug().Err(err).Msg("malformed select message")
	}
	// An empty id only asks the dialog to reset its busy state.
	if req.ConnectionID == "" {
		_ = run.Send(ctx, modal.EventReady, nil)
		return
	}

	connLog := log.With().Str("connection_id", string(req.ConnectionID)).Logger()
	log = &connLog
	conn, err := f.store.Get(ctx, req.ConnectionID)
	if err != nil || conn == nil {
		if err == nil {
			err = fmt.Errorf("connection %s: %w", req.ConnectionID, entity.ErrNotFound)
		}
		log.Warn().Err(err).Msg("selected connection is unavailable")
		f.fail(ctx, run, "Connection Not Found", err)
		return
	}

	if err := f.store.Authenticate(ctx, conn.ID); err != nil {
		log.Warn().Err(err).Msg("connection authentication failed")
		f.fail(ctx, run, "Authentication Failed", err)
		return
	}
	// The dialog may have been closed while authenticating.
	if !run.Pending() {
		log.Debug().Msg("dropping authentication result for a settled dialog")
		return
	}
	if err := f.store.SetActive(ctx, conn.ID); err != nil {
		log.Warn().Err(err).Msg("failed to activate connection")
		f.fail(ctx, run, "Connection Activation Failed", err)
		return
	}

	log.Info().Msg("connection selected")
	run.Resolve(ctx, conn.ID)
}

// fail keeps the dialog open for a retry and reports err both inline and
// as a notification.
func (f *ConnectionSelectionFlow) fail(ctx context.Context, run *modal.Run[entity.ConnectionID], title string, err error) {
	if !run.Pending() {
		return
	}
	_ = run.Send(ctx, modal.EventFeedback, feedback{Message: err.Error()})
	_ = run.Send(ctx, modal.EventReady, nil)
	f.notifier.Show(ctx, port.Notification{Title: title, Body: err.Error(), Type: port.NotificationError})
}
