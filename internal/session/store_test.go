package session

import (
	"testing"

	"github.com/angelmondragon/storefront/internal/catalog"
	"github.com/shopspring/decimal"
)

func TestStoreUserIsNilBeforeLogin(t *testing.T) {
	store := NewStore()
	if store.User() != nil {
		t.Fatalf("expected nil user before login")
	}
	if store.CartCount() != 0 {
		t.Fatalf("expected empty default cart")
	}
}

func TestStoreSetUserStoresCopy(t *testing.T) {
	store := NewStore()
	original := &catalog.User{ID: 1, Email: "demo@example.com"}
	store.SetUser(original)

	original.Email = "mutated@example.com"
	if got := store.User().Email; got != "demo@example.com" {
		t.Fatalf("store leaked caller mutation: %q", got)
	}

	got := store.User()
	got.ID = 99
	if store.User().ID != 1 {
		t.Fatalf("store leaked reader mutation")
	}
}

func TestStoreReplaceCartIsWholesale(t *testing.T) {
	store := NewStore()
	first := []catalog.CartItem{
		{ID: 1, Product: catalog.Product{ID: 10, Name: "Laptop", Price: decimal.RequireFromString("999.99")}, Quantity: 1},
		{ID: 2, Product: catalog.Product{ID: 11, Name: "Mouse", Price: decimal.RequireFromString("25.99")}, Quantity: 2},
	}
	store.ReplaceCart(first)
	if store.CartCount() != 2 {
		t.Fatalf("expected 2 items, got %d", store.CartCount())
	}

	second := []catalog.CartItem{
		{ID: 3, Product: catalog.Product{ID: 12, Name: "Keyboard", Price: decimal.RequireFromString("75.99")}, Quantity: 1},
	}
	store.ReplaceCart(second)

	cart := store.Cart()
	if len(cart) != 1 || cart[0].ID != 3 {
		t.Fatalf("replacement merged instead of swapping: %+v", cart)
	}

	store.ReplaceCart(nil)
	if store.CartCount() != 0 {
		t.Fatalf("replacing with nil should empty the cart")
	}
}

func TestStoreCartReturnsSnapshot(t *testing.T) {
	store := NewStore()
	store.ReplaceCart([]catalog.CartItem{{ID: 1, Quantity: 1}})

	snapshot := store.Cart()
	snapshot[0].Quantity = 50
	if store.Cart()[0].Quantity != 1 {
		t.Fatalf("snapshot mutation reached the store")
	}
}
