package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/PowerPlatformToolBox/desktop-app/internal/domain/entity"
	"github.com/PowerPlatformToolBox/desktop-app/internal/domain/repository"
	"github.com/PowerPlatformToolBox/desktop-app/internal/logging"
)

// SessionStorageKey is the local storage key holding the open-tools snapshot.
const SessionStorageKey = "openToolsSession"

type sessionStateRepo struct {
	db      *sql.DB
	queries *queries
}

// NewSessionStateRepository creates a new session state repository.
func NewSessionStateRepository(db *sql.DB) repository.SessionStateRepository {
	return &sessionStateRepo{
		db:      db,
		queries: newQueries(db),
	}
}

// SaveSnapshot replaces the stored snapshot.
func (r *sessionStateRepo) SaveSnapshot(ctx context.Context, snap *entity.SessionSnapshot) error {
	log := logging.FromContext(ctx)
	if snap == nil {
		return errors.New("session snapshot cannot be nil")
	}

	snapJSON, err := json.Marshal(snap)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal session snapshot")
		return err
	}

	log.Debug().
		Int("open_tools", len(snap.OpenTools)).
		Str("active_instance_id", string(snap.ActiveInstanceID)).
		Msg("saving session snapshot")

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin snapshot transaction: %w", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(); rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
			log.Debug().Err(rollbackErr).Msg("snapshot rollback reported non-terminal error")
		}
	}()

	savedAt := snap.SavedAt
	if savedAt.IsZero() {
		savedAt = time.Now()
	}
	if err := r.queries.withTx(tx).upsertLocalStorage(ctx, SessionStorageKey, string(snapJSON), savedAt); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit snapshot transaction: %w", err)
	}
	return nil
}

// GetSnapshot returns the stored snapshot, or nil if none exists. A
// corrupted snapshot is logged and treated as absent.
func (r *sessionStateRepo) GetSnapshot(ctx context.Context) (*entity.SessionSnapshot, error) {
	value, ok, err := r.queries.getLocalStorage(ctx, SessionStorageKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var snap entity.SessionSnapshot
	if err := json.Unmarshal([]byte(value), &snap); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("ignoring corrupted session snapshot")
		return nil, nil
	}
	return &snap, nil
}

// DeleteSnapshot removes the stored snapshot.
func (r *sessionStateRepo) DeleteSnapshot(ctx context.Context) error {
	logging.FromContext(ctx).Debug().Msg("deleting session snapshot")
	return r.queries.deleteLocalStorage(ctx, SessionStorageKey)
}
