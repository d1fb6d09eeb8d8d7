// Package connectivity tracks online/offline transitions and exposes a
// single boolean to consumers.
package connectivity

import "sync"

// Observer flips its flag on each reported transition. There is no
// debouncing and no reconnection probing, so a request can still fail
// while IsOnline reports true (captive portals and the like).
type Observer struct {
	mu     sync.RWMutex
	online bool
}

// New seeds the observer with the connectivity state known at startup.
func New(online bool) *Observer {
	return &Observer{online: online}
}

func (o *Observer) IsOnline() bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.online
}

// Set records a transition event.
func (o *Observer) Set(online bool) {
	o.mu.Lock()
	o.online = online
	o.mu.Unlock()
}
