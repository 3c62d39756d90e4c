// Package modal turns the host's fire-and-forget dialog surface into
// awaitable, single-flight request/response flows.
package modal

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/PowerPlatformToolBox/desktop-app/internal/application/port"
	"github.com/PowerPlatformToolBox/desktop-app/internal/logging"
)

// Message is an inbound {channel, data} message from a dialog.
type Message struct {
	Channel string
	Data    json.RawMessage
}

// Decode unmarshals the message data into v. Empty data leaves v untouched.
func (m Message) Decode(v any) error {
	if len(m.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(m.Data, v); err != nil {
		return fmt.Errorf("decode %s message: %w", m.Channel, err)
	}
	return nil
}

// MessageHandler receives every inbound message; it must filter by channel.
type MessageHandler func(msg Message)

// ClosedHandler receives the id of any dialog that closed.
type ClosedHandler func(id string)

// Subscription removes a bridge listener.
type Subscription struct {
	once   sync.Once
	cancel func()
}

// Unsubscribe removes the listener. Safe to call more than once.
func (s *Subscription) Unsubscribe() {
	if s == nil {
		return
	}
	s.once.Do(s.cancel)
}

type listener[H any] struct {
	id      uint64
	handler H
}

// Bridge is the bidirectional message primitive between the orchestrator
// and the dialog surface. Listeners are shared by every flow; isolation
// comes from per-flow channel sets.
type Bridge struct {
	host port.ModalHost
	ctx  context.Context

	mu       sync.RWMutex
	nextID   uint64
	messages []listener[MessageHandler]
	closed   []listener[ClosedHandler]

	detach func()
}

// NewBridge subscribes to the host's event channels.
func NewBridge(ctx context.Context, host port.ModalHost) *Bridge {
	b := &Bridge{
		host: host,
		ctx:  logging.WithComponent(ctx, "modal-bridge"),
	}
	b.detach = host.Subscribe(b.dispatch)
	return b
}

// Show opens a dialog surface.
func (b *Bridge) Show(ctx context.Context, opts port.ModalWindowOptions) error {
	logging.FromContext(ctx).Debug().
		Str("dialog", opts.ID).
		Int("width", opts.Width).
		Int("height", opts.Height).
		Msg("showing modal window")
	if err := b.host.ShowModalWindow(ctx, opts); err != nil {
		return fmt.Errorf("show modal window %s: %w", opts.ID, err)
	}
	return nil
}

// Send pushes a message into the open dialog. data is JSON encoded.
func (b *Bridge) Send(ctx context.Context, channel string, data any) error {
	payload := port.ModalPayload{Channel: channel}
	if data != nil {
		raw, err := json.Marshal(data)
		if err != nil {
			return fmt.Errorf("encode %s payload: %w", channel, err)
		}
		payload.Data = raw
	}
	if err := b.host.SendModalMessage(ctx, payload); err != nil {
		return fmt.Errorf("send modal message on %s: %w", channel, err)
	}
	return nil
}

// Close closes the open dialog.
func (b *Bridge) Close(ctx context.Context) error {
	if err := b.host.CloseModalWindow(ctx); err != nil {
		return fmt.Errorf("close modal window: %w", err)
	}
	return nil
}

// OnMessage registers a handler for every inbound message.
func (b *Bridge) OnMessage(h MessageHandler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	id := b.nextID
	b.messages = append(b.messages, listener[MessageHandler]{id: id, handler: h})
	return &Subscription{cancel: func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.messages = removeListener(b.messages, id)
	}}
}

// OnClosed registers a handler for dialog close events.
func (b *Bridge) OnClosed(h ClosedHandler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	id := b.nextID
	b.closed = append(b.closed, listener[ClosedHandler]{id: id, handler: h})
	return &Subscription{cancel: func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.closed = removeListener(b.closed, id)
	}}
}

// ListenerCount returns the number of registered listeners.
func (b *Bridge) ListenerCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.messages) + len(b.closed)
}

// Dispose detaches the bridge from the host.
func (b *Bridge) Dispose() {
	if b.detach != nil {
		b.detach()
		b.detach = nil
	}
}

// dispatch fans a host event out to listeners in registration order.
// Handlers run on the emitting goroutine, so emission order is kept.
func (b *Bridge) dispatch(ev port.ModalEvent) {
	switch ev.Kind {
	case port.ModalWindowMessage:
		b.mu.RLock()
		handlers := make([]MessageHandler, 0, len(b.messages))
		for _, l := range b.messages {
			handlers = append(handlers, l.handler)
		}
		b.mu.RUnlock()

		msg := Message{Channel: ev.Payload.Channel, Data: ev.Payload.Data}
		for _, h := range handlers {
			h(msg)
		}
	case port.ModalWindowClosed:
		b.mu.RLock()
		handlers := make([]ClosedHandler, 0, len(b.closed))
		for _, l := range b.closed {
			handlers = append(handlers, l.handler)
		}
		b.mu.RUnlock()

		logging.FromContext(b.ctx).Debug().Str("dialog", ev.ID).Msg("modal window closed")
		for _, h := range handlers {
			h(ev.ID)
		}
	default:
		logging.FromContext(b.ctx).Warn().Str("kind", string(ev.Kind)).Msg("ignoring unknown modal event")
	}
}

func removeListener[H any](list []listener[H], id uint64) []listener[H] {
	for i, l := range list {
		if l.id == id {
			return append(list[:i:i], list[i+1:]...)
		}
	}
	return list
}
