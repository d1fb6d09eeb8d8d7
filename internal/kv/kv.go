// Package kv is the string-key/JSON-value storage the state stores
// persist into. Values survive indefinitely until deleted; keys are
// shared, unsynchronized resources across clients (last writer wins).
package kv

import "context"

// Slot names for the persisted state layout.
const (
	CartSlot     = "cart"
	WishlistSlot = "wishlist"
)

type Storage interface {
	// Get returns the stored value or domain.ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// UserKey returns the user-scoped variant of a storage slot.
func UserKey(slot, uid string) string {
	return slot + "_" + uid
}
