// Package connectivity tracks whether the backend's upstream dependencies are
// reachable and notifies subscribers on transitions. The monitor itself does
// no I/O; the Prober feeds it observations.
package connectivity

import "sync"

// Monitor holds the current online flag and a subscriber list. Callbacks fire
// only on actual state transitions, outside the lock, so a subscriber may
// call back into the monitor without deadlocking.
type Monitor struct {
	mu     sync.Mutex
	online bool
	subs   map[int]func(bool)
	nextID int
}

// NewMonitor creates a monitor with the given initial state.
func NewMonitor(initialOnline bool) *Monitor {
	return &Monitor{
		online: initialOnline,
		subs:   make(map[int]func(bool)),
	}
}

// Online reports the last observed connectivity state.
func (m *Monitor) Online() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.online
}

// SetOnline records an observation. Subscribers are notified only when the
// state actually changed.
func (m *Monitor) SetOnline(online bool) {
	m.mu.Lock()
	if m.online == online {
		m.mu.Unlock()
		return
	}
	m.online = online
	callbacks := make([]func(bool), 0, len(m.subs))
	for _, fn := range m.subs {
		callbacks = append(callbacks, fn)
	}
	m.mu.Unlock()

	for _, fn := range callbacks {
		fn(online)
	}
}

// Subscribe registers a transition callback and returns its unsubscribe
// function. Unsubscribing twice is harmless.
func (m *Monitor) Subscribe(fn func(online bool)) (unsubscribe func()) {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.subs[id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.subs, id)
		m.mu.Unlock()
	}
}
