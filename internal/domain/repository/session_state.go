package repository

import (
	"context"

	"github.com/PowerPlatformToolBox/desktop-app/internal/domain/entity"
)

// SessionStateRepository persists the single open-tools session snapshot.
type SessionStateRepository interface {
	// SaveSnapshot replaces the stored snapshot.
	SaveSnapshot(ctx context.Context, snap *entity.SessionSnapshot) error

	// GetSnapshot returns the stored snapshot, or nil if none exists.
	GetSnapshot(ctx context.Context) (*entity.SessionSnapshot, error)

	// DeleteSnapshot removes the stored snapshot.
	DeleteSnapshot(ctx context.Context) error
}
