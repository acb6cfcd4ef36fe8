// Package stores holds the client-side state layer: observable stores with
// actions that mutate state and subscribers that react to changes. Each
// store owns its slice of state; server-backed state is always replaced from
// fresh server responses, never patched locally.
package stores

import "sync"

// notifier implements the subscribe/notify part of a store. Stores embed it
// and call notify after every state change.
type notifier struct {
	subMu sync.Mutex
	subs  map[int]func()
	next  int
}

// Subscribe registers fn to run after every state change. The returned
// function removes the subscription.
func (n *notifier) Subscribe(fn func()) (unsubscribe func()) {
	n.subMu.Lock()
	defer n.subMu.Unlock()

	if n.subs == nil {
		n.subs = make(map[int]func())
	}
	id := n.next
	n.next++
	n.subs[id] = fn

	return func() {
		n.subMu.Lock()
		defer n.subMu.Unlock()
		delete(n.subs, id)
	}
}

// notify runs all subscribers. Callers must not hold their state lock, so a
// subscriber can read the store synchronously.
func (n *notifier) notify() {
	n.subMu.Lock()
	fns := make([]func(), 0, len(n.subs))
	for _, fn := range n.subs {
		fns = append(fns, fn)
	}
	n.subMu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// TokenProvider supplies the current session token to stores that must not
// issue authenticated calls without one. The auth store implements it.
type TokenProvider interface {
	Token() string
}
