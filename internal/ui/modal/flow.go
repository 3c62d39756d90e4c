package modal

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/PowerPlatformToolBox/desktop-app/internal/application/port"
	"github.com/PowerPlatformToolBox/desktop-app/internal/domain/entity"
	"github.com/PowerPlatformToolBox/desktop-app/internal/logging"
)

var (
	// ErrFlowBusy is returned when a flow is asked to open while it is pending.
	ErrFlowBusy = errors.New("dialog already open")
	// ErrUserCancelled is returned when the dialog closes without a decision.
	ErrUserCancelled = fmt.Errorf("dialog closed: %w", entity.ErrUserCancelled)
)

// State tags the lifecycle of a flow run.
type State int

const (
	StateIdle State = iota
	StatePending
	StateResolved
	StateRejected
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePending:
		return "pending"
	case StateResolved:
		return "resolved"
	case StateRejected:
		return "rejected"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

type outcome[T any] struct {
	value T
	err   error
}

// Handler reacts to a message on one of the flow's channels.
type Handler[T any] func(ctx context.Context, run *Run[T], ev Event, msg Message)

// Flow wraps the bridge with a single-flight contract: Run opens the dialog
// and blocks until it resolves with a T or fails. Settling is guarded by a
// state tag; a close event is honoured only while the run is Pending.
type Flow[T any] struct {
	bridge   *Bridge
	kind     string
	channels ChannelSet

	mu         sync.Mutex
	state      State
	generation uint64
}

// NewFlow creates a flow of the given dialog kind carrying events.
func NewFlow[T any](bridge *Bridge, kind string, events ...Event) *Flow[T] {
	return &Flow[T]{
		bridge:   bridge,
		kind:     kind,
		channels: NewChannelSet(kind, events...),
	}
}

// Channels returns the flow's channel set.
func (f *Flow[T]) Channels() ChannelSet {
	return f.channels
}

// Kind returns the dialog kind.
func (f *Flow[T]) Kind() string {
	return f.kind
}

// State returns the state of the latest run.
func (f *Flow[T]) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Run opens the dialog and waits for it to settle. The dialog id is derived
// from the flow kind and the run number, so a late close event of an earlier
// run can never cancel a later one.
func (f *Flow[T]) Run(ctx context.Context, opts port.ModalWindowOptions, handler Handler[T]) (T, error) {
	var zero T

	f.mu.Lock()
	if f.state == StatePending {
		f.mu.Unlock()
		return zero, ErrFlowBusy
	}
	f.generation++
	gen := f.generation
	f.state = StatePending
	f.mu.Unlock()

	opts.ID = fmt.Sprintf("%s-%d", f.kind, gen)
	ctx = logging.WithDialog(ctx, opts.ID)
	log := logging.FromContext(ctx)
	run := &Run[T]{flow: f, gen: gen, dialogID: opts.ID, done: make(chan outcome[T], 1)}

	msgSub := f.bridge.OnMessage(func(msg Message) {
		ev, ok := f.channels.EventOf(msg.Channel)
		if !ok || !f.isPending(gen) {
			return
		}
		handler(ctx, run, ev, msg)
	})
	defer msgSub.Unsubscribe()

	closedSub := f.bridge.OnClosed(func(id string) {
		if id != opts.ID {
			return
		}
		if f.settle(gen, StateClosed) {
			log.Debug().Msg("dialog closed without a decision")
			run.done <- outcome[T]{err: ErrUserCancelled}
		}
	})
	defer closedSub.Unsubscribe()

	if err := f.bridge.Show(ctx, opts); err != nil {
		if f.settle(gen, StateRejected) {
			run.done <- outcome[T]{err: fmt.Errorf("%w: %w", entity.ErrOperationFailed, err)}
		}
	}

	select {
	case out := <-run.done:
		return out.value, out.err
	case <-ctx.Done():
		if f.settle(gen, StateRejected) {
			run.closeDialog(ctx)
			run.done <- outcome[T]{err: ctx.Err()}
		}
		out := <-run.done
		return out.value, out.err
	}
}

func (f *Flow[T]) isPending(gen uint64) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.generation == gen && f.state == StatePending
}

// settle moves a pending run to its final state. Exactly one caller wins
// and becomes responsible for delivering the outcome.
func (f *Flow[T]) settle(gen uint64, state State) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.generation != gen || f.state != StatePending {
		return false
	}
	f.state = state
	return true
}

// Run is the handle of one open dialog, given to message handlers.
type Run[T any] struct {
	flow     *Flow[T]
	gen      uint64
	dialogID string
	done     chan outcome[T]
}

// DialogID returns the id of the open dialog.
func (r *Run[T]) DialogID() string {
	return r.dialogID
}

// Pending reports whether the run is still waiting for a decision.
func (r *Run[T]) Pending() bool {
	return r.flow.isPending(r.gen)
}

// Resolve settles the run with v and closes the dialog. The state moves to
// Resolved before the close, so the resulting close event is a no-op.
// It returns false when the run had already settled.
func (r *Run[T]) Resolve(ctx context.Context, v T) bool {
	if !r.flow.settle(r.gen, StateResolved) {
		return false
	}
	r.closeDialog(ctx)
	r.done <- outcome[T]{value: v}
	return true
}

// Reject settles the run with err and closes the dialog.
func (r *Run[T]) Reject(ctx context.Context, err error) bool {
	if !r.flow.settle(r.gen, StateRejected) {
		return false
	}
	r.closeDialog(ctx)
	r.done <- outcome[T]{err: err}
	return true
}

// Send pushes data on the channel of ev while the run is pending.
func (r *Run[T]) Send(ctx context.Context, ev Event, data any) error {
	if !r.Pending() {
		return nil
	}
	channel := r.flow.channels.Channel(ev)
	if channel == "" {
		return fmt.Errorf("flow %s has no %s channel", r.flow.kind, ev)
	}
	return r.flow.bridge.Send(ctx, channel, data)
}

func (r *Run[T]) closeDialog(ctx context.Context) {
	if err := r.flow.bridge.Close(context.WithoutCancel(ctx)); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to close dialog")
	}
}
