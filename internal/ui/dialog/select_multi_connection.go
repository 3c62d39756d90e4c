package dialog

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/PowerPlatformToolBox/desktop-app/internal/application/port"
	"github.com/PowerPlatformToolBox/desktop-app/internal/domain/entity"
	"github.com/PowerPlatformToolBox/desktop-app/internal/logging"
	"github.com/PowerPlatformToolBox/desktop-app/internal/ui/modal"
)

// MultiConnectionSelectionFlow implements port.MultiConnectionPicker. Each
// list authenticates independently; a connection held by one list is
// disabled in the other.
type MultiConnectionSelectionFlow struct {
	flow     *modal.Flow[port.ConnectionPair]
	store    port.ConnectionStore
	notifier port.Notifier
	sizes    Sizes
	now      func() time.Time
}

// NewMultiConnectionSelectionFlow creates the primary/secondary picker.
func NewMultiConnectionSelectionFlow(
	bridge *modal.Bridge,
	store port.ConnectionStore,
	notifier port.Notifier,
	sizes Sizes,
) *MultiConnectionSelectionFlow {
	return &MultiConnectionSelectionFlow{
		flow: modal.NewFlow[port.ConnectionPair](bridge, string(KindSelectMultiConnection),
			modal.EventPopulate, modal.EventAuthenticate, modal.EventAuthResult, modal.EventDisconnect,
			modal.EventState, modal.EventConfirm, modal.EventFeedback),
		store:    store,
		notifier: notifier,
		sizes:    sizes,
		now:      time.Now,
	}
}

// Channels exposes the flow's channel set.
func (f *MultiConnectionSelectionFlow) Channels() modal.ChannelSet {
	return f.flow.Channels()
}

type authenticateRequest struct {
	ConnectionID entity.ConnectionID `json:"connectionId"`
	ListType     entity.SlotKind     `json:"listType"`
}

type authResult struct {
	Success      bool                `json:"success"`
	ConnectionID entity.ConnectionID `json:"connectionId"`
	ListType     entity.SlotKind     `json:"listType"`
	Error        string              `json:"error,omitempty"`
}

type confirmRequest struct {
	Action                string              `json:"action"`
	PrimaryConnectionID   entity.ConnectionID `json:"primaryConnectionId"`
	SecondaryConnectionID entity.ConnectionID `json:"secondaryConnectionId"`
}

// SelectionState is pushed to the dialog after every change.
type SelectionState struct {
	Primary           entity.Slot                              `json:"primary"`
	Secondary         entity.Slot                              `json:"secondary"`
	Disabled          map[entity.SlotKind][]entity.ConnectionID `json:"disabled"`
	ConfirmEnabled    bool                                     `json:"confirmEnabled"`
	SecondaryRequired bool                                     `json:"secondaryRequired"`
}

// multiSession is the per-dialog state. Handlers can run on different
// goroutines, so the selection is guarded.
type multiSession struct {
	mu  sync.Mutex
	sel *entity.DualSelection
}

func (s *multiSession) snapshot() SelectionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	disabled := map[entity.SlotKind][]entity.ConnectionID{
		entity.SlotPrimary:   {},
		entity.SlotSecondary: {},
	}
	if id := s.sel.Secondary.ConnectionID; s.sel.Disabled(entity.SlotPrimary, id) {
		disabled[entity.SlotPrimary] = append(disabled[entity.SlotPrimary], id)
	}
	if id := s.sel.Primary.ConnectionID; s.sel.Disabled(entity.SlotSecondary, id) {
		disabled[entity.SlotSecondary] = append(disabled[entity.SlotSecondary], id)
	}
	return SelectionState{
		Primary:           s.sel.Primary,
		Secondary:         s.sel.Secondary,
		Disabled:          disabled,
		ConfirmEnabled:    s.sel.CanConfirm(),
		SecondaryRequired: s.sel.SecondaryRequired,
	}
}

// PickConnections opens the dual dialog for tool and blocks until the user
// confirms an authenticated pair or closes the dialog.
func (f *MultiConnectionSelectionFlow) PickConnections(ctx context.Context, tool *entity.Tool) (port.ConnectionPair, error) {
	session := &multiSession{sel: entity.NewDualSelection(tool.SecondaryRequired())}
	data := struct{ SecondaryRequired bool }{SecondaryRequired: tool.SecondaryRequired()}
	html, err := modal.RenderPage("select_multi_connection", f.flow.Channels(), "Select connections for "+tool.Name, data)
	if err != nil {
		return port.ConnectionPair{}, err
	}

	ctx = logging.WithToolID(ctx, string(tool.ID))
	return f.flow.Run(ctx, f.sizes.options(KindSelectMultiConnection, html),
		func(ctx context.Context, run *modal.Run[port.ConnectionPair], ev modal.Event, msg modal.Message) {
			switch ev {
			case modal.EventPopulate:
				f.populate(ctx, run, session, msg)
			case modal.EventAuthenticate:
				f.authenticate(ctx, run, session, msg)
			case modal.EventDisconnect:
				f.disconnect(ctx, run, session, msg)
			case modal.EventConfirm:
				f.confirm(ctx, run, session, msg)
			}
		})
}

func (f *MultiConnectionSelectionFlow) populate(
	ctx context.Context,
	run *modal.Run[port.ConnectionPair],
	session *multiSession,
	msg modal.Message,
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
	_ = run.Send(ctx, modal.EventPopulate, populateResponse{Connections: viewsOf(rows, "", f.now()), Total: len(conns)})
	f.pushState(ctx, run, session)
}

func (f *MultiConnectionSelectionFlow) authenticate(
	ctx context.Context,
	run *modal.Run[port.ConnectionPair],
	session *multiSession,
	msg modal.Message,
) {
	var req authenticateRequest
	if err := msg.Decode(&req); err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("malformed authenticate message")
	}
	log := logging.FromContext(ctx).With().
		Str("connection_id", string(req.ConnectionID)).
		Str("list_type", string(req.ListType)).
		Logger()

	session.mu.Lock()
	err := session.sel.BeginAuthentication(req.ListType, req.ConnectionID)
	session.mu.Unlock()
	if err != nil {
		log.Debug().Err(err).Msg("authentication request rejected")
		_ = run.Send(ctx, modal.EventAuthResult, authResult{
			ConnectionID: req.ConnectionID,
			ListType:     req.ListType,
			Error:        err.Error(),
		})
		return
	}
	f.pushState(ctx, run, session)

	authErr := f.authenticateConnection(ctx, req.ConnectionID)

	session.mu.Lock()
	applied := session.sel.CompleteAuthentication(req.ListType, req.ConnectionID, authErr)
	session.mu.Unlock()
	if !applied || !run.Pending() {
		log.Debug().Msg("dropping stale authentication result")
		return
	}

	result := authResult{Success: authErr == nil, ConnectionID: req.ConnectionID, ListType: req.ListType}
	if authErr != nil {
		log.Warn().Err(authErr).Msg("connection authentication failed")
		result.Error = authErr.Error()
		f.notifier.Show(ctx, port.Notification{
			Title: "Authentication Failed",
			Body:  authErr.Error(),
			Type:  port.NotificationError,
		})
	} else {
		log.Info().Msg("connection authenticated")
	}
	_ = run.Send(ctx, modal.EventAuthResult, result)
	f.pushState(ctx, run, session)
}

func (f *MultiConnectionSelectionFlow) authenticateConnection(ctx context.Context, id entity.ConnectionID) error {
	conn, err := f.store.Get(ctx, id)
	if err != nil {
		return err
	}
	if conn == nil {
		return fmt.Errorf("connection %s: %w", id, entity.ErrNotFound)
	}
	return f.store.Authenticate(ctx, id)
}

func (f *MultiConnectionSelectionFlow) disconnect(
	ctx context.Context,
	run *modal.Run[port.ConnectionPair],
	session *multiSession,
	msg modal.Message,
) {
	var req authenticateRequest
	if err := msg.Decode(&req); err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("malformed disconnect message")
	}
	session.mu.Lock()
	session.sel.Reset(req.ListType)
	session.mu.Unlock()
	f.pushState(ctx, run, session)
}

func (f *MultiConnectionSelectionFlow) confirm(
	ctx context.Context,
	run *modal.Run[port.ConnectionPair],
	session *multiSession,
	msg modal.Message,
) {
	log := logging.FromContext(ctx)

	var req confirmRequest
	if err := msg.Decode(&req); err != nil {
		log.Debug().Err(err).Msg("malformed confirm message")
	}

	session.mu.Lock()
	primary, secondary, err := session.sel.Result()
	session.mu.Unlock()
	if err == nil && (req.PrimaryConnectionID != primary || req.SecondaryConnectionID != secondary) {
		err = fmt.Errorf("%w: confirmed connections do not match the authenticated ones", entity.ErrValidation)
	}
	if err != nil {
		log.Debug().Err(err).Msg("confirm rejected")
		_ = run.Send(ctx, modal.EventFeedback, feedback{Message: err.Error()})
		f.pushState(ctx, run, session)
		return
	}

	log.Info().
		Str("primary", string(primary)).
		Str("secondary", string(secondary)).
		Msg("connections confirmed")
	run.Resolve(ctx, port.ConnectionPair{Primary: primary, Secondary: secondary})
}

func (f *MultiConnectionSelectionFlow) pushState(ctx context.Context, run *modal.Run[port.ConnectionPair], session *multiSession) {
	if err := run.Send(ctx, modal.EventState, session.snapshot()); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to send selection state")
	}
}
