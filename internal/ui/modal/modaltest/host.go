// Package modaltest provides an in-memory modal host for tests.
package modaltest

import (
	"context"
	"encoding/json"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/PowerPlatformToolBox/desktop-app/internal/application/port"
)

// Host is a port.ModalHost that records calls and lets tests emit events.
// Closing a window emits the closed event synchronously, like a host that
// reports closes on the calling thread.
type Host struct {
	mu        sync.Mutex
	listeners map[int]func(port.ModalEvent)
	nextID    int
	openID    string
	shown     []port.ModalWindowOptions
	sent      []port.ModalPayload
	closes    int

	// ShowErr is returned by ShowModalWindow when set.
	ShowErr error

	shownCh chan port.ModalWindowOptions
}

// NewHost creates an empty host.
func NewHost() *Host {
	return &Host{
		listeners: make(map[int]func(port.ModalEvent)),
		shownCh:   make(chan port.ModalWindowOptions, 32),
	}
}

func (h *Host) ShowModalWindow(_ context.Context, opts port.ModalWindowOptions) error {
	h.mu.Lock()
	if h.ShowErr != nil {
		err := h.ShowErr
		h.mu.Unlock()
		return err
	}
	h.openID = opts.ID
	h.shown = append(h.shown, opts)
	h.mu.Unlock()
	h.shownCh <- opts
	return nil
}

func (h *Host) CloseModalWindow(_ context.Context) error {
	h.mu.Lock()
	id := h.openID
	h.openID = ""
	h.closes++
	h.mu.Unlock()
	if id != "" {
		h.emit(port.ModalEvent{Kind: port.ModalWindowClosed, ID: id})
	}
	return nil
}

func (h *Host) SendModalMessage(_ context.Context, payload port.ModalPayload) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sent = append(h.sent, payload)
	return nil
}

func (h *Host) Subscribe(listener func(port.ModalEvent)) func() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.nextID++
	id := h.nextID
	h.listeners[id] = listener
	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.listeners, id)
	}
}

// WaitShown blocks until the next dialog is shown.
func (h *Host) WaitShown(t testing.TB) port.ModalWindowOptions {
	t.Helper()
	select {
	case opts := <-h.shownCh:
		return opts
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a modal window")
		return port.ModalWindowOptions{}
	}
}

// Emit delivers a message from the dialog on channel.
func (h *Host) Emit(channel string, data any) {
	var raw json.RawMessage
	if data != nil {
		b, err := json.Marshal(data)
		if err != nil {
			panic(err)
		}
		raw = b
	}
	h.emit(port.ModalEvent{
		Kind:    port.ModalWindowMessage,
		Payload: port.ModalPayload{Channel: channel, Data: raw},
	})
}

// EmitClosed reports that the dialog with id closed.
func (h *Host) EmitClosed(id string) {
	h.emit(port.ModalEvent{Kind: port.ModalWindowClosed, ID: id})
}

// UserClose simulates the window chrome close button.
func (h *Host) UserClose() {
	h.mu.Lock()
	id := h.openID
	h.openID = ""
	h.mu.Unlock()
	h.EmitClosed(id)
}

// OpenID returns the id of the open dialog, or "".
func (h *Host) OpenID() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.openID
}

// Shown returns every shown dialog in order.
func (h *Host) Shown() []port.ModalWindowOptions {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]port.ModalWindowOptions(nil), h.shown...)
}

// Sent returns every message sent to dialogs in order.
func (h *Host) Sent() []port.ModalPayload {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]port.ModalPayload(nil), h.sent...)
}

// SentOn returns the messages sent on channel.
func (h *Host) SentOn(channel string) []port.ModalPayload {
	var out []port.ModalPayload
	for _, p := range h.Sent() {
		if p.Channel == channel {
			out = append(out, p)
		}
	}
	return out
}

// Closes returns the number of CloseModalWindow calls.
func (h *Host) Closes() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.closes
}

// ListenerCount returns the number of subscribed listeners.
func (h *Host) ListenerCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.listeners)
}

func (h *Host) emit(ev port.ModalEvent) {
	h.mu.Lock()
	ids := make([]int, 0, len(h.listeners))
	for id := range h.listeners {
		ids = append(ids, id)
	}
	listeners := make([]func(port.ModalEvent), 0, len(ids))
	slices.Sort(ids)
	for _, id := range ids {
		listeners = append(listeners, h.listeners[id])
	}
	h.mu.Unlock()
	for _, l := range listeners {
		l(ev)
	}
}
