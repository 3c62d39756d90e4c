package repository

import (
	"context"

	"github.com/PowerPlatformToolBox/desktop-app/internal/domain/entity"
)

// ConsentRepository persists CSP consent decisions per tool.
type ConsentRepository interface {
	// Get returns the consent for a tool, or nil if none was granted.
	Get(ctx context.Context, toolID entity.ToolID) (*entity.CSPConsent, error)

	// Set saves or replaces a consent record.
	Set(ctx context.Context, consent *entity.CSPConsent) error

	// Delete revokes the consent for a tool.
	Delete(ctx context.Context, toolID entity.ToolID) error

	// GetAll lists every stored consent.
	GetAll(ctx context.Context) ([]*entity.CSPConsent, error)
}
