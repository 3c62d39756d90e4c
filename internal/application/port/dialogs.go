package port

import (
	"context"

	"github.com/PowerPlatformToolBox/desktop-app/internal/domain/entity"
)

// ConnectionPair is the result of the dual connection dialog.
type ConnectionPair struct {
	Primary entity.ConnectionID
	// Secondary is empty when the tool accepts an optional secondary.
	Secondary entity.ConnectionID
}

// ConnectionPicker asks the user for a single authenticated connection.
type ConnectionPicker interface {
	// PickConnection resolves with the chosen id or fails with
	// entity.ErrUserCancelled when the dialog is closed.
	PickConnection(ctx context.Context, highlight entity.ConnectionID) (entity.ConnectionID, error)
}

// MultiConnectionPicker asks for a primary and secondary connection.
type MultiConnectionPicker interface {
	PickConnections(ctx context.Context, tool *entity.Tool) (ConnectionPair, error)
}

// ConsentPrompter asks the user to accept a tool's CSP exceptions.
type ConsentPrompter interface {
	// PromptConsent returns true on accept and false on decline.
	PromptConsent(ctx context.Context, tool *entity.Tool) (bool, error)
}

// ConnectionCreator collects a new connection definition from the user.
type ConnectionCreator interface {
	CreateConnection(ctx context.Context) (*entity.Connection, error)
}

// ToolDetailAction is what the user chose in the tool detail dialog.
type ToolDetailAction string

const (
	ToolDetailInstall ToolDetailAction = "install"
	ToolDetailLaunch  ToolDetailAction = "launch"
)

// ToolDetailPresenter shows tool metadata and returns the chosen action.
type ToolDetailPresenter interface {
	ShowToolDetail(ctx context.Context, tool *entity.Tool) (ToolDetailAction, error)
}
