package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/PowerPlatformToolBox/desktop-app/internal/application/port"
	"github.com/PowerPlatformToolBox/desktop-app/internal/domain/entity"
	"github.com/PowerPlatformToolBox/desktop-app/internal/logging"
)

// ManageConnectionsUseCase adds and removes backend connections.
type ManageConnectionsUseCase struct {
	store    port.ConnectionStore
	creator  port.ConnectionCreator
	notifier port.Notifier
	// inUse reports whether an open instance is bound to a connection.
	inUse func(entity.ConnectionID) bool
}

// NewManageConnectionsUseCase creates a new connection management use case.
// inUse may be nil.
func NewManageConnectionsUseCase(
	store port.ConnectionStore,
	creator port.ConnectionCreator,
	notifier port.Notifier,
	inUse func(entity.ConnectionID) bool,
) *ManageConnectionsUseCase {
	return &ManageConnectionsUseCase{
		store:    store,
		creator:  creator,
		notifier: notifier,
		inUse:    inUse,
	}
}

// AddConnection opens the add-connection dialog and returns the saved
// connection. Cancelling is not reported to the user.
func (uc *ManageConnectionsUseCase) AddConnection(ctx context.Context) (*entity.Connection, error) {
	conn, err := uc.creator.CreateConnection(ctx)
	if err != nil {
		if errors.Is(err, entity.ErrUserCancelled) {
			logging.FromContext(ctx).Debug().Msg("add connection cancelled")
		}
		return nil, err
	}
	uc.notifier.Show(ctx, port.Notification{
		Title: "Connection Added",
		Body:  conn.DisplayName(),
		Type:  port.NotificationSuccess,
	})
	return conn, nil
}

// DeleteConnection removes a connection that no open instance is bound to.
func (uc *ManageConnectionsUseCase) DeleteConnection(ctx context.Context, id entity.ConnectionID) error {
	log := logging.FromContext(ctx).With().Str("connection_id", string(id)).Logger()

	if uc.inUse != nil && uc.inUse(id) {
		log.Info().Msg("refusing to delete a connection in use")
		uc.notifier.Show(ctx, port.Notification{
			Title: "Connection In Use",
			Body:  "Close the tools using this connection before deleting it.",
			Type:  port.NotificationWarning,
		})
		return fmt.Errorf("%w: connection %s is bound to an open tool", entity.ErrValidation, id)
	}
	if err := uc.store.Delete(ctx, id); err != nil {
		uc.notifier.Show(ctx, port.Notification{Title: "Delete Connection Failed", Body: err.Error(), Type: port.NotificationError})
		return fmt.Errorf("delete connection %s: %w", id, err)
	}
	log.Info().Msg("connection deleted")
	return nil
}
