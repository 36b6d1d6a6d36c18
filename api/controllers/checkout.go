package controllers

import (
	"net/http"

	"github.com/angelmondragon/storefront/api/responses"
	"github.com/angelmondragon/storefront/internal/shop"
	"github.com/angelmondragon/storefront/pkg/logger"
)

type checkoutResponse struct {
	Message    string  `json:"message"`
	Total      float64 `json:"total"`
	OrderID    int     `json:"order_id"`
	TotalCents int64   `json:"total_cents"`
}

// Checkout converts the user's cart into an order.
func Checkout(svc shop.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := userIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		summary, err := svc.Checkout(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteJSON(w, http.StatusOK, checkoutResponse{
			Message:    "Checkout successful",
			Total:      summary.Total.InexactFloat64(),
			OrderID:    summary.OrderID,
			TotalCents: summary.TotalCents,
		})
	}
}
