// Package render maps current state to display fragments. Every function is
// pure: state in, replacement fragment out. Monetary values are formatted
// for display, never mutated.
package render

import (
	"fmt"
	"strings"

	"github.com/angelmondragon/storefront/internal/catalog"
	"github.com/angelmondragon/storefront/pkg/money"
)

const (
	EmptyProducts = "No products available"
	EmptyCart     = "Your cart is empty"
	EmptyOrders   = "No orders yet"

	defaultCategory    = "General"
	defaultDescription = "No description available"

	orderTimestampLayout = "01/02/2006 at 3:04:05 PM"
)

// Products renders one card per product, or the empty-state message.
func Products(products []catalog.Product) string {
	if len(products) == 0 {
		return EmptyProducts
	}

	var b strings.Builder
	for i, p := range products {
		if i > 0 {
			b.WriteString("\n")
		}
		category := p.Category
		if category == "" {
			category = defaultCategory
		}
		description := p.Description
		if description == "" {
			description = defaultDescription
		}

		fmt.Fprintf(&b, "[%s] %s\n", category, p.Name)
		fmt.Fprintf(&b, "  %s\n", description)
		fmt.Fprintf(&b, "  %s\n", money.FormatUSD(p.Price))
		if p.Stock > 0 {
			fmt.Fprintf(&b, "  %d in stock\n", p.Stock)
			fmt.Fprintf(&b, "  (add %d) Add to Cart\n", p.ID)
		} else {
			b.WriteString("  Out of stock\n")
			b.WriteString("  [unavailable] Out of Stock\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// Cart renders one row per item plus the cart-wide total and a checkout
// control, or the empty-state message.
func Cart(items []catalog.CartItem) string {
	if len(items) == 0 {
		return EmptyCart
	}

	var b strings.Builder
	for _, item := range items {
		line := money.LineTotal(item.Product.Price, item.Quantity)
		fmt.Fprintf(&b, "%s\n", item.Product.Name)
		fmt.Fprintf(&b, "  %s x %d = %s\n", money.FormatUSD(item.Product.Price), item.Quantity, money.FormatUSD(line))
		fmt.Fprintf(&b, "  (remove %d) Remove\n", item.ID)
	}
	fmt.Fprintf(&b, "Total: %s\n", money.FormatUSD(catalog.CartTotal(items)))
	b.WriteString("(checkout) Proceed to Checkout")
	return b.String()
}

// Orders renders one card per past order, or the empty-state message. Line
// and order totals come from integer cents, divided out for display.
func Orders(orders []catalog.Order) string {
	if len(orders) == 0 {
		return EmptyOrders
	}

	var b strings.Builder
	for i, order := range orders {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "Order #%d  [%s]\n", order.ID, order.Status)
		fmt.Fprintf(&b, "  %s\n", order.CreatedAt.Format(orderTimestampLayout))
		for _, item := range order.Items {
			line := money.CentsLineTotal(item.UnitPriceCents, item.Quantity)
			fmt.Fprintf(&b, "  %s x %d  %s\n", item.Product.Name, item.Quantity, money.FormatUSD(line))
		}
		fmt.Fprintf(&b, "  Total: %s\n", money.FormatUSD(money.FromCents(order.TotalCents)))
	}
	return strings.TrimRight(b.String(), "\n")
}
