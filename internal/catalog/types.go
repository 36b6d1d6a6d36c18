// Package catalog holds the client-side views of the commerce API's
// resources. They mirror the wire shapes exactly; the client never mutates
// them, only replaces whole collections with freshly fetched ones.
package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

// User is the session identity returned by demo login.
type User struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
}

// Product is a catalog listing. Category and Description may be absent.
type Product struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category,omitempty"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
}

// CartItem is one line of the session cart with its product embedded.
type CartItem struct {
	ID       int     `json:"id"`
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// OrderItem captures a purchased line. UnitPriceCents is fixed at order
// creation and may differ from the product's current price.
type OrderItem struct {
	Product        Product `json:"product"`
	Quantity       int     `json:"quantity"`
	UnitPriceCents int64   `json:"unit_price_cents"`
}

// Order is a completed purchase, read-only to the client.
type Order struct {
	ID         int         `json:"id"`
	CreatedAt  time.Time   `json:"created_at"`
	Status     string      `json:"status"`
	Items      []OrderItem `json:"items"`
	TotalCents int64       `json:"total_cents"`
}

// CheckoutResult is the payload returned by a successful checkout.
type CheckoutResult struct {
	Message    string          `json:"message"`
	Total      decimal.Decimal `json:"total"`
	OrderID    int             `json:"order_id"`
	TotalCents int64           `json:"total_cents"`
}

// CartTotal sums price × quantity over the items.
func CartTotal(items []CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}
