package controllers

import (
	"time"

	"github.com/angelmondragon/storefront/internal/shop"
)

// Wire shapes for the commerce API. These mirror the integration contract
// the storefront client consumes, so field names and types are fixed.

type userDTO struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
}

type productDTO struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Category    *string `json:"category"`
	Description *string `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
}

type cartItemDTO struct {
	ID       int        `json:"id"`
	Product  productDTO `json:"product"`
	Quantity int        `json:"quantity"`
}

type orderItemDTO struct {
	Product        productDTO `json:"product"`
	Quantity       int        `json:"quantity"`
	UnitPriceCents int64      `json:"unit_price_cents"`
}

type orderDTO struct {
	ID         int            `json:"id"`
	CreatedAt  time.Time      `json:"created_at"`
	Status     string         `json:"status"`
	Items      []orderItemDTO `json:"items"`
	TotalCents int64          `json:"total_cents"`
}

func toProductDTO(p shop.Product) productDTO {
	return productDTO{
		ID:          p.ID,
		Name:        p.Name,
		Category:    p.Category,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
	}
}

func toProductDTOs(products []shop.Product) []productDTO {
	out := make([]productDTO, 0, len(products))
	for _, p := range products {
		out = append(out, toProductDTO(p))
	}
	return out
}

func toCartItemDTOs(items []shop.CartItem) []cartItemDTO {
	out := make([]cartItemDTO, 0, len(items))
	for _, item := range items {
		out = append(out, cartItemDTO{
			ID:       item.ID,
			Product:  toProductDTO(item.Product),
			Quantity: item.Quantity,
		})
	}
	return out
}

func toOrderDTO(order shop.Order) orderDTO {
	items := make([]orderItemDTO, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, orderItemDTO{
			Product:        toProductDTO(item.Product),
			Quantity:       item.Quantity,
			UnitPriceCents: item.UnitPriceCents,
		})
	}
	return orderDTO{
		ID:         order.ID,
		CreatedAt:  order.CreatedAt,
		Status:     order.Status,
		Items:      items,
		TotalCents: order.TotalCents,
	}
}

func toOrderDTOs(orders []shop.Order) []orderDTO {
	out := make([]orderDTO, 0, len(orders))
	for _, order := range orders {
		out = append(out, toOrderDTO(order))
	}
	return out
}
