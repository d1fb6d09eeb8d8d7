// Package cart owns the shopping cart state: in-memory line items,
// write-through persistence to the storage slots, and per-user
// partitioning of those slots.
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"sync"

	"storefront/internal/domain"
	"storefront/internal/kv"
)

// Store holds the cart for one identity. All mutations lock the store
// and apply a reducer to the latest committed state, then mirror the
// full cart to storage: the global slot always, the user slot when a
// user is bound. The two writes are not atomic; a crash in between can
// leave the slots divergent, which is accepted for a shopping cart.
type Store struct {
	storage kv.Storage
	logger  *log.Logger
	uid     string

	mu         sync.Mutex
	cart       domain.Cart
	loaded     bool
	fromGlobal bool
}

func New(storage kv.Storage, logger *log.Logger, uid string) *Store {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Store{storage: storage, logger: logger, uid: uid}
}

// Loading reports whether the initial storage read has not completed.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.loaded
}

// Cart returns the current cart, running the initial load first if
// needed.
func (s *Store) Cart(ctx context.Context) domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)
	return s.snapshot()
}

// Add merges item into the cart. An existing line with the same id
// gains item.Quantity and keeps its stored fields.
func (s *Store) Add(ctx context.Context, item domain.CartItem) error {
	if item.Quantity < 1 {
		return errors.New("quantity must be positive")
	}
	if item.Price < 0 {
		return errors.New("price must be non-negative")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)
	s.cart.Items = addItem(s.cart.Items, item)
	s.persist(ctx)
	return nil
}

// UpdateQuantity replaces the quantity of the matching line item.
// Quantities below 1 are rejected; removal goes through Remove.
func (s *Store) UpdateQuantity(ctx context.Context, id, quantity int) error {
	if quantity < 1 {
		return errors.New("quantity must be positive")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)
	s.cart.Items = setQuantity(s.cart.Items, id, quantity)
	s.persist(ctx)
	return nil
}

// Remove deletes the matching line item; a missing id is a no-op.
func (s *Store) Remove(ctx context.Context, id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)
	s.cart.Items = removeItem(s.cart.Items, id)
	s.persist(ctx)
}

// Clear resets the cart to an empty item sequence.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)
	s.cart.Items = nil
	s.persist(ctx)
}

// MergeAnonymous adopts the global (anonymous) slot for this user on
// their first sign-in: it runs only while the user slot does not exist
// yet. Once a user slot exists it is authoritative — the global slot
// mirrors the signed-in cart's own writes, so folding it back on a
// later sign-in would double every line quantity. Anonymous stores are
// a no-op.
func (s *Store) MergeAnonymous(ctx context.Context) {
	if s.uid == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	// The initial load already picked up the anonymous items when it
	// fell back to the global slot; persisting claims the user slot.
	if s.fromGlobal {
		s.fromGlobal = false
		s.persist(ctx)
	}
}

// ensureLoaded runs the partition-preference read once: the user slot
// when a user is bound and the slot exists, else the global slot, else
// an empty cart. Callers must hold s.mu.
func (s *Store) ensureLoaded(ctx context.Context) {
	if s.loaded {
		return
	}
	s.loaded = true

	if s.uid != "" {
		if ok := s.readSlot(ctx, kv.UserKey(kv.CartSlot, s.uid)); ok {
			return
		}
	}
	if ok := s.readSlot(ctx, kv.CartSlot); ok && s.uid != "" {
		s.fromGlobal = true
	}
}

func (s *Store) readSlot(ctx context.Context, key string) bool {
	data, err := s.storage.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Printf("cart store: load %s: %v", key, err)
		}
		return false
	}
	var cart domain.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		s.logger.Printf("cart store: decode %s: %v", key, err)
		return false
	}
	s.cart = cart
	return true
}

// persist mirrors the cart to storage. Failures are logged and the
// in-memory state kept as the last good value. Callers must hold s.mu.
func (s *Store) persist(ctx context.Context) {
	data, err := json.Marshal(s.cart)
	if err != nil {
		s.logger.Printf("cart store: encode cart: %v", err)
		return
	}
	if err := s.storage.Set(ctx, kv.CartSlot, data); err != nil {
		s.logger.Printf("cart store: save %s: %v", kv.CartSlot, err)
	}
	if s.uid != "" {
		key := kv.UserKey(kv.CartSlot, s.uid)
		if err := s.storage.Set(ctx, key, data); err != nil {
			s.logger.Printf("cart store: save %s: %v", key, err)
		}
	}
}

func (s *Store) snapshot() domain.Cart {
	items := make([]domain.CartItem, len(s.cart.Items))
	copy(items, s.cart.Items)
	return domain.Cart{Items: items}
}
