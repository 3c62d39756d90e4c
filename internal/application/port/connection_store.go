package port

import (
	"context"

	"github.com/PowerPlatformToolBox/desktop-app/internal/domain/entity"
)

// ConnectionTestResult is the outcome of a connectivity test.
type ConnectionTestResult struct {
	Success bool
	Error   string
}

// ConnectionStore is the external store of backend connections. Token
// acquisition is owned by the implementation.
type ConnectionStore interface {
	// GetAll lists every configured connection.
	GetAll(ctx context.Context) ([]*entity.Connection, error)

	// Get returns a connection by id, or nil if it does not exist.
	Get(ctx context.Context, id entity.ConnectionID) (*entity.Connection, error)

	// SetActive marks a connection as the active one.
	SetActive(ctx context.Context, id entity.ConnectionID) error

	// Authenticate acquires a token for the connection.
	Authenticate(ctx context.Context, id entity.ConnectionID) error

	// RefreshToken renews the connection token.
	RefreshToken(ctx context.Context, id entity.ConnectionID) error

	// Test checks that a connection definition can reach the backend.
	Test(ctx context.Context, conn *entity.Connection) (ConnectionTestResult, error)

	// Add stores a new connection and returns it with its assigned id.
	Add(ctx context.Context, conn *entity.Connection) (*entity.Connection, error)

	// Delete removes a connection.
	Delete(ctx context.Context, id entity.ConnectionID) error
}
