package port

import (
	"context"
	"encoding/json"
)

// ModalEventKind distinguishes the two inbound modal event channels.
type ModalEventKind string

const (
	// ModalWindowMessage carries a {channel, data} message from the dialog.
	ModalWindowMessage ModalEventKind = "MODAL_WINDOW_MESSAGE"
	// ModalWindowClosed fires once when a dialog closes for any reason.
	ModalWindowClosed ModalEventKind = "MODAL_WINDOW_CLOSED"
)

// ModalWindowOptions describes a dialog surface to open.
type ModalWindowOptions struct {
	ID     string
	HTML   string
	Width  int
	Height int
}

// ModalPayload is a message exchanged with a dialog.
type ModalPayload struct {
	Channel string          `json:"channel"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// ModalEvent is an inbound event from the modal host.
type ModalEvent struct {
	Kind ModalEventKind
	// ID is set for closed events.
	ID      string
	Payload ModalPayload
}

// ModalHost owns the transient dialog surface. At most one dialog is open.
type ModalHost interface {
	ShowModalWindow(ctx context.Context, opts ModalWindowOptions) error
	CloseModalWindow(ctx context.Context) error
	SendModalMessage(ctx context.Context, payload ModalPayload) error

	// Subscribe registers a listener for every inbound event and returns a
	// function removing it.
	Subscribe(listener func(ModalEvent)) (unsubscribe func())
}
