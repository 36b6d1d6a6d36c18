package controllers

import (
	"net/http"

	"github.com/angelmondragon/storefront/api/responses"
)

// Health reports liveness.
func Health() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		responses.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

// Root describes the API for anyone poking at the base URL.
func Root() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		responses.WriteJSON(w, http.StatusOK, map[string]any{
			"message": "Demo Commerce API",
			"version": "1.0.0",
			"endpoints": map[string]string{
				"health":     "/health",
				"demo_login": "/demo/login",
				"products":   "/products/",
				"cart":       "/users/{userId}/cart",
				"checkout":   "/users/{userId}/checkout",
				"orders":     "/users/{userId}/orders",
			},
		})
	}
}
