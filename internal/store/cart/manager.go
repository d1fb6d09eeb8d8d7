package cart

import (
	"io"
	"log"
	"sync"

	"storefront/internal/domain"
	"storefront/internal/kv"
)

// Manager hands out one Store per identity so sequential mutations from
// the same identity always apply against the latest in-memory state.
type Manager struct {
	storage kv.Storage
	logger  *log.Logger

	mu     sync.Mutex
	stores map[string]*Store
}

func NewManager(storage kv.Storage, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Manager{
		storage: storage,
		logger:  logger,
		stores:  make(map[string]*Store),
	}
}

// For returns the store bound to user, or the shared anonymous store
// when user is nil.
func (m *Manager) For(user *domain.User) *Store {
	uid := ""
	if user != nil {
		uid = user.UID
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	store, ok := m.stores[uid]
	if !ok {
		store = New(m.storage, m.logger, uid)
		m.stores[uid] = store
	}
	return store
}
