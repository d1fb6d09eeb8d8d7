package cart

import "storefront/internal/domain"

// Reducers are pure: they take the latest committed items and return a
// fresh slice, so rapid sequential mutations can never act on a stale
// snapshot.

// addItem merges item into items. An existing line with the same id
// keeps its stored fields and gains item.Quantity; otherwise item is
// appended.
func addItem(items []domain.CartItem, item domain.CartItem) []domain.CartItem {
	out := make([]domain.CartItem, len(items))
	copy(out, items)
	for i, existing := range out {
		if existing.ID == item.ID {
			out[i].Quantity = existing.Quantity + item.Quantity
			return out
		}
	}
	return append(out, item)
}

// setQuantity replaces the quantity of the matching line item. A
// missing id leaves items unchanged.
func setQuantity(items []domain.CartItem, id, quantity int) []domain.CartItem {
	out := make([]domain.CartItem, len(items))
	copy(out, items)
	for i, existing := range out {
		if existing.ID == id {
			out[i].Quantity = quantity
		}
	}
	return out
}

func removeItem(items []domain.CartItem, id int) []domain.CartItem {
	out := make([]domain.CartItem, 0, len(items))
	for _, existing := range items {
		if existing.ID != id {
			out = append(out, existing)
		}
	}
	return out
}
