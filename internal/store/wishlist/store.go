// Package wishlist owns the saved-product list. Entries are full
// product snapshots, so displayed data may go stale relative to the
// catalog. Persistence and partitioning follow the cart store.
package wishlist

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

type Store struct {
	storage kv.Storage
	logger  *log.Logger
	uid     string

	mu       sync.Mutex
	products []domain.Product
	loaded   bool
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

// Products returns the current wishlist in insertion order.
func (s *Store) Products(ctx context.Context) []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Add inserts the product snapshot unless its id is already present;
// duplicate adds are silently ignored.
func (s *Store) Add(ctx context.Context, product domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)
	for _, existing := range s.products {
		if existing.ID == product.ID {
			return
		}
	}
	s.products = append(s.products, product)
	s.persist(ctx)
}

// Remove deletes by product id; a missing id is a no-op.
func (s *Store) Remove(ctx context.Context, id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)
	kept := make([]domain.Product, 0, len(s.products))
	for _, existing := range s.products {
		if existing.ID != id {
			kept = append(kept, existing)
		}
	}
	s.products = kept
	s.persist(ctx)
}

// Contains reports membership by product id.
func (s *Store) Contains(ctx context.Context, id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)
	for _, existing := range s.products {
		if existing.ID == id {
			return true
		}
	}
	return false
}

func (s *Store) ensureLoaded(ctx context.Context) {
	if s.loaded {
		return
	}
	s.loaded = true

	if s.uid != "" {
		if ok := s.readSlot(ctx, kv.UserKey(kv.WishlistSlot, s.uid)); ok {
			return
		}
	}
	s.readSlot(ctx, kv.WishlistSlot)
}

func (s *Store) readSlot(ctx context.Context, key string) bool {
	data, err := s.storage.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Printf("wishlist store: load %s: %v", key, err)
		}
		return false
	}
	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		s.logger.Printf("wishlist store: decode %s: %v", key, err)
		return false
	}
	s.products = products
	return true
}

func (s *Store) persist(ctx context.Context) {
	products := s.products
	if products == nil {
		products = []domain.Product{}
	}
	data, err := json.Marshal(products)
	if err != nil {
		s.logger.Printf("wishlist store: encode wishlist: %v", err)
		return
	}
	if err := s.storage.Set(ctx, kv.WishlistSlot, data); err != nil {
		s.logger.Printf("wishlist store: save %s: %v", kv.WishlistSlot, err)
	}
	if s.uid != "" {
		key := kv.UserKey(kv.WishlistSlot, s.uid)
		if err := s.storage.Set(ctx, key, data); err != nil {
			s.logger.Printf("wishlist store: save %s: %v", key, err)
		}
	}
}
