// Package component provides the view models rendered by the shell window.
package component

import (
	"slices"
	"sync"

	"github.com/PowerPlatformToolBox/desktop-app/internal/domain/entity"
)

// CSS classes applied to tab nodes.
const (
	ClassTab    = "tool-tab"
	ClassActive = "active"
	ClassPinned = "pinned"
)

// TabAction is a user gesture on a tab.
type TabAction int

const (
	// TabClicked selects a tab.
	TabClicked TabAction = iota
	// TabCloseClicked asks to close a tab.
	TabCloseClicked
	// TabPinClicked toggles the pin of a tab.
	TabPinClicked
)

// String returns the action name used in logs.
func (a TabAction) String() string {
	switch a {
	case TabClicked:
		return "click"
	case TabCloseClicked:
		return "close"
	case TabPinClicked:
		return "pin"
	default:
		return "unknown"
	}
}

// TabEvent is delivered to strip subscribers.
type TabEvent struct {
	Action     TabAction
	InstanceID entity.InstanceID
}

// TabNode is a snapshot of one rendered tab.
type TabNode struct {
	InstanceID entity.InstanceID
	Label      string
	Classes    []string
}

// HasClass reports whether the node carries class.
func (n TabNode) HasClass(class string) bool {
	return slices.Contains(n.Classes, class)
}

type tabNode struct {
	id      entity.InstanceID
	label   string
	classes map[string]struct{}
}

func (n *tabNode) snapshot() TabNode {
	classes := make([]string, 0, len(n.classes))
	for c := range n.classes {
		classes = append(classes, c)
	}
	slices.Sort(classes)
	return TabNode{InstanceID: n.id, Label: n.label, Classes: classes}
}

// TabStrip is the ordered row of tool tabs plus the footer status line and
// the home view toggle. Node order is visual only and may diverge from the
// registry after a drag reorder.
type TabStrip struct {
	mu     sync.RWMutex
	nodes  []*tabNode
	status string
	home   bool

	subMu  sync.Mutex
	nextID int
	subs   map[int]func(TabEvent)
}

// NewTabStrip creates an empty strip showing the home view.
func NewTabStrip() *TabStrip {
	return &TabStrip{
		home: true,
		subs: make(map[int]func(TabEvent)),
	}
}

// Add appends a tab node. Duplicate ids are ignored.
func (s *TabStrip) Add(id entity.InstanceID, label string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(id) >= 0 {
		return
	}
	s.nodes = append(s.nodes, &tabNode{
		id:      id,
		label:   label,
		classes: map[string]struct{}{ClassTab: {}},
	})
}

// Remove deletes a tab node.
func (s *TabStrip) Remove(id entity.InstanceID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(id); i >= 0 {
		s.nodes = slices.Delete(s.nodes, i, i+1)
	}
}

// SetLabel updates the label of a tab node.
func (s *TabStrip) SetLabel(id entity.InstanceID, label string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(id); i >= 0 {
		s.nodes[i].label = label
	}
}

// AddClass adds class to a tab node.
func (s *TabStrip) AddClass(id entity.InstanceID, class string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(id); i >= 0 {
		s.nodes[i].classes[class] = struct{}{}
	}
}

// RemoveClass removes class from a tab node.
func (s *TabStrip) RemoveClass(id entity.InstanceID, class string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(id); i >= 0 {
		delete(s.nodes[i].classes, class)
	}
}

// RemoveClassesWhere removes every class matching pred from every node.
func (s *TabStrip) RemoveClassesWhere(pred func(class string) bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, n := range s.nodes {
		for c := range n.classes {
			if pred(c) {
				delete(n.classes, c)
			}
		}
	}
}

// Drop moves dragged next to target: after it when dragged started to its
// left, before it otherwise. Dropping on itself or an unknown node is a no-op.
func (s *TabStrip) Drop(dragged, target entity.InstanceID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	from, to := s.indexOf(dragged), s.indexOf(target)
	if from < 0 || to < 0 || from == to {
		return false
	}
	node := s.nodes[from]
	s.nodes = slices.Delete(s.nodes, from, from+1)
	// Removing dragged shifted target left when dragged was before it,
	// so inserting at the same index lands after target.
	s.nodes = slices.Insert(s.nodes, to, node)
	return true
}

// Node returns a snapshot of one tab node.
func (s *TabStrip) Node(id entity.InstanceID) (TabNode, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		return s.nodes[i].snapshot(), true
	}
	return TabNode{}, false
}

// Nodes returns snapshots of every tab node in visual order.
func (s *TabStrip) Nodes() []TabNode {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]TabNode, 0, len(s.nodes))
	for _, n := range s.nodes {
		out = append(out, n.snapshot())
	}
	return out
}

// Order returns tab ids in visual order.
func (s *TabStrip) Order() []entity.InstanceID {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.InstanceID, 0, len(s.nodes))
	for _, n := range s.nodes {
		out = append(out, n.id)
	}
	return out
}

// Count returns the number of tab nodes.
func (s *TabStrip) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.nodes)
}

// SetStatus replaces the footer status text.
func (s *TabStrip) SetStatus(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = text
}

// Status returns the footer status text.
func (s *TabStrip) Status() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// SetHomeVisible toggles the home view.
func (s *TabStrip) SetHomeVisible(visible bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.home = visible
}

// HomeVisible reports whether the home view is shown.
func (s *TabStrip) HomeVisible() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.home
}

// Subscribe registers fn for user gestures. The returned func removes it.
func (s *TabStrip) Subscribe(fn func(TabEvent)) (unsubscribe func()) {
	s.subMu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.subMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subMu.Lock()
			delete(s.subs, id)
			s.subMu.Unlock()
		})
	}
}

// Emit delivers a user gesture to subscribers in subscription order.
// Gestures on unknown tabs are dropped.
func (s *TabStrip) Emit(ev TabEvent) {
	if _, ok := s.Node(ev.InstanceID); !ok {
		return
	}

	s.subMu.Lock()
	ids := make([]int, 0, len(s.subs))
	for id := range s.subs {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	handlers := make([]func(TabEvent), 0, len(ids))
	for _, id := range ids {
		handlers = append(handlers, s.subs[id])
	}
	s.subMu.Unlock()

	for _, h := range handlers {
		h(ev)
	}
}

// SubscriberCount returns the number of live subscriptions.
func (s *TabStrip) SubscriberCount() int {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	return len(s.subs)
}

func (s *TabStrip) indexOf(id entity.InstanceID) int {
	for i, n := range s.nodes {
		if n.id == id {
			return i
		}
	}
	return -1
}
