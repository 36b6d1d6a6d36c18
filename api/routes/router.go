package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/storefront/api/controllers"
	"github.com/angelmondragon/storefront/api/middleware"
	"github.com/angelmondragon/storefront/internal/shop"
	"github.com/angelmondragon/storefront/pkg/logger"
)

// NewRouter assembles the demo commerce API.
func NewRouter(svc shop.Service, logg *logger.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID(logg),
		middleware.CORS(),
		middleware.Logging(logg),
		middleware.Recoverer(logg),
	)

	r.Get("/", controllers.Root())
	r.Get("/health", controllers.Health())

	r.Post("/demo/login", controllers.DemoLogin(svc, logg))
	r.Post("/users/", controllers.CreateUser(svc, logg))

	r.Route("/products", func(r chi.Router) {
		r.Get("/", controllers.ListProducts(svc, logg))
		r.Get("/{productId}", controllers.GetProduct(svc, logg))
	})

	r.Route("/users/{userId}", func(r chi.Router) {
		r.Get("/cart", controllers.GetCart(svc, logg))
		r.Post("/cart", controllers.AddToCart(svc, logg))
		r.Delete("/cart/{itemId}", controllers.RemoveFromCart(svc, logg))
		r.Post("/checkout", controllers.Checkout(svc, logg))
		r.Get("/orders", controllers.ListOrders(svc, logg))
		r.Get("/orders/{orderId}", controllers.GetOrder(svc, logg))
	})

	return r
}
