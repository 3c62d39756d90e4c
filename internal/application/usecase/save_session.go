package usecase

import (
	"context"
	"fmt"

	"github.com/PowerPlatformToolBox/desktop-app/internal/domain/entity"
	"github.com/PowerPlatformToolBox/desktop-app/internal/domain/repository"
	"github.com/PowerPlatformToolBox/desktop-app/internal/logging"
)

// SaveSessionUseCase persists the open-tools snapshot.
type SaveSessionUseCase struct {
	repo repository.SessionStateRepository
}

// NewSaveSessionUseCase creates a new session save use case.
func NewSaveSessionUseCase(repo repository.SessionStateRepository) *SaveSessionUseCase {
	return &SaveSessionUseCase{repo: repo}
}

// Save replaces the stored snapshot.
func (uc *SaveSessionUseCase) Save(ctx context.Context, snap *entity.SessionSnapshot) error {
	if snap == nil {
		return fmt.Errorf("snapshot is required")
	}
	if err := uc.repo.SaveSnapshot(ctx, snap); err != nil {
		return fmt.Errorf("save session snapshot: %w", err)
	}
	logging.FromContext(ctx).Debug().
		Int("open_tools", len(snap.OpenTools)).
		Str("active_instance_id", string(snap.ActiveInstanceID)).
		Msg("session saved")
	return nil
}

// Load returns the stored snapshot, or nil if none exists. Snapshots from a
// newer schema version are ignored.
func (uc *SaveSessionUseCase) Load(ctx context.Context) (*entity.SessionSnapshot, error) {
	snap, err := uc.repo.GetSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("load session snapshot: %w", err)
	}
	if snap == nil {
		return nil, nil
	}
	if snap.Version > entity.SessionSnapshotVersion {
		logging.FromContext(ctx).Warn().
			Int("version", snap.Version).
			Int("supported", entity.SessionSnapshotVersion).
			Msg("ignoring session snapshot from a newer version")
		return nil, nil
	}
	return snap, nil
}

// Clear removes the stored snapshot.
func (uc *SaveSessionUseCase) Clear(ctx context.Context) error {
	if err := uc.repo.DeleteSnapshot(ctx); err != nil {
		return fmt.Errorf("clear session snapshot: %w", err)
	}
	logging.FromContext(ctx).Info().Msg("session cleared")
	return nil
}
