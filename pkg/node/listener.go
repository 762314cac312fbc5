package node

import (
	"fmt"
	"sync"

	"github.com/atkphpframework/atk/pkg/record"
)

// Action identifies a record lifecycle operation on a node.
type Action string

const (
	ActionAdd    Action = "add"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Listener observes record lifecycle actions. PreAction runs before the
// action is carried out and can veto it by returning an error; PostAction
// runs after and is purely informational.
type Listener interface {
	PreAction(action Action, rec record.Record) error
	PostAction(action Action, rec record.Record)
}

type listenerRegistry struct {
	mu        sync.RWMutex
	listeners []Listener
}

// AddListener registers a lifecycle listener. Listeners run in registration
// order.
func (n *Node) AddListener(l Listener) {
	if l == nil {
		return
	}
	n.listeners.mu.Lock()
	defer n.listeners.mu.Unlock()
	n.listeners.listeners = append(n.listeners.listeners, l)
}

// NotifyPre runs every listener's PreAction in registration order. The first
// error aborts the chain and is returned wrapped with the action name.
func (n *Node) NotifyPre(action Action, rec record.Record) error {
	for _, l := range n.snapshotListeners() {
		if err := l.PreAction(action, rec); err != nil {
			return fmt.Errorf("node %s: pre-%s listener: %w", n.name, action, err)
		}
	}
	return nil
}

// NotifyPost runs every listener's PostAction in registration order.
func (n *Node) NotifyPost(action Action, rec record.Record) {
	for _, l := range n.snapshotListeners() {
		l.PostAction(action, rec)
	}
}

func (n *Node) snapshotListeners() []Listener {
	n.listeners.mu.RLock()
	defer n.listeners.mu.RUnlock()
	out := make([]Listener, len(n.listeners.listeners))
	copy(out, n.listeners.listeners)
	return out
}
