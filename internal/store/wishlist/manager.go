package wishlist

import (
	"io"
	"log"
	"sync"

	"storefront/internal/domain"
	"storefront/internal/kv"
)

// Manager hands out one Store per identity, mirroring the cart manager.
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
