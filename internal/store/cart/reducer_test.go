package cart

import (
	"reflect"
	"testing"

	"storefront/internal/domain"
)

func TestAddItemAccumulatesQuantity(t *testing.T) {
	items := addItem(nil, domain.CartItem{ID: 1, Title: "Mug", Price: 12.99, Quantity: 2})
	items = addItem(items, domain.CartItem{ID: 1, Title: "Renamed", Price: 1, Quantity: 3})

	if len(items) != 1 {
		t.Fatalf("expected single line item, got %d", len(items))
	}
	if items[0].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", items[0].Quantity)
	}
	// The stored fields win over the duplicate add's payload.
	if items[0].Title != "Mug" || items[0].Price != 12.99 {
		t.Fatalf("expected original fields retained, got %+v", items[0])
	}
}

func TestAddItemAppendsNewLines(t *testing.T) {
	items := addItem(nil, domain.CartItem{ID: 1, Quantity: 1})
	items = addItem(items, domain.CartItem{ID: 2, Quantity: 1})
	if len(items) != 2 || items[0].ID != 1 || items[1].ID != 2 {
		t.Fatalf("expected insertion order preserved, got %+v", items)
	}
}

func TestAddItemDoesNotMutateInput(t *testing.T) {
	original := []domain.CartItem{{ID: 1, Quantity: 2}}
	_ = addItem(original, domain.CartItem{ID: 1, Quantity: 3})
	if original[0].Quantity != 2 {
		t.Fatalf("input slice mutated: %+v", original)
	}
}

func TestSetQuantityMissingIDIsNoop(t *testing.T) {
	items := []domain.CartItem{{ID: 1, Quantity: 2}}
	got := setQuantity(items, 999, 7)
	if !reflect.DeepEqual(got, items) {
		t.Fatalf("expected unchanged items, got %+v", got)
	}
}

func TestRemoveItemMissingIDIsNoop(t *testing.T) {
	items := []domain.CartItem{{ID: 1, Quantity: 2}, {ID: 2, Quantity: 1}}
	got := removeItem(items, 999)
	if !reflect.DeepEqual(got, items) {
		t.Fatalf("expected unchanged items, got %+v", got)
	}
	got = removeItem(items, 1)
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("unexpected items after remove: %+v", got)
	}
}
