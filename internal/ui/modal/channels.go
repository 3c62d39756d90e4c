package modal

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Event is a logical message kind exchanged with a dialog.
type Event string

const (
	EventSubmit       Event = "submit"
	EventReady        Event = "ready"
	EventPopulate     Event = "populate"
	EventSelect       Event = "select"
	EventTest         Event = "test"
	EventFeedback     Event = "feedback"
	EventInstall      Event = "install"
	EventAccept       Event = "accept"
	EventDecline      Event = "decline"
	EventAuthenticate Event = "authenticate"
	EventAuthResult   Event = "authResult"
	EventDisconnect   Event = "disconnect"
	EventConfirm      Event = "confirm"
	EventState        Event = "state"
)

// ChannelSet maps logical events to channel identifiers that are unique to
// one flow instance, so global bridge listeners of different flows never
// react to each other's traffic.
type ChannelSet struct {
	kind     string
	channels map[Event]string
	events   map[string]Event
}

// NewChannelSet mints channel identifiers of the form kind:event:nonce.
func NewChannelSet(kind string, events ...Event) ChannelSet {
	nonce := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	set := ChannelSet{
		kind:     kind,
		channels: make(map[Event]string, len(events)),
		events:   make(map[string]Event, len(events)),
	}
	for _, ev := range events {
		ch := fmt.Sprintf("%s:%s:%s", kind, ev, nonce)
		set.channels[ev] = ch
		set.events[ch] = ev
	}
	return set
}

// Kind returns the dialog kind the set was minted for.
func (c ChannelSet) Kind() string {
	return c.kind
}

// Channel returns the identifier for ev, or "" if the set does not carry it.
func (c ChannelSet) Channel(ev Event) string {
	return c.channels[ev]
}

// EventOf maps a channel identifier back to its event.
func (c ChannelSet) EventOf(channel string) (Event, bool) {
	ev, ok := c.events[channel]
	return ev, ok
}

// Owns reports whether channel belongs to this set.
func (c ChannelSet) Owns(channel string) bool {
	_, ok := c.events[channel]
	return ok
}

// Map returns event name to channel identifier, as handed to dialog pages.
func (c ChannelSet) Map() map[string]string {
	out := make(map[string]string, len(c.channels))
	for ev, ch := range c.channels {
		out[string(ev)] = ch
	}
	return out
}
