// Package storefront orchestrates the client: the bootstrap sequence, the
// cart and checkout actions, and the wiring between gateway, state store,
// view router, render pipeline and notifier.
//
// The consistency model is deliberate: after every successful mutating call
// the cart is refetched in full and replaces the stored copy wholesale. On
// failure the store is left at its last known-good value and the failure is
// surfaced as a notification; nothing is fatal to the process.
package storefront

import (
	"context"
	"fmt"
	"time"

	"github.com/angelmondragon/storefront/internal/catalog"
	"github.com/angelmondragon/storefront/internal/notify"
	"github.com/angelmondragon/storefront/internal/render"
	"github.com/angelmondragon/storefront/internal/session"
	"github.com/angelmondragon/storefront/internal/views"
	pkgerrors "github.com/angelmondragon/storefront/pkg/errors"
	"github.com/angelmondragon/storefront/pkg/logger"
	"github.com/angelmondragon/storefront/pkg/money"
)

// Gateway is the commerce API surface the app consumes.
type Gateway interface {
	Login(ctx context.Context, email string) (*catalog.User, error)
	ListProducts(ctx context.Context) ([]catalog.Product, error)
	GetCart(ctx context.Context, userID int) ([]catalog.CartItem, error)
	AddToCart(ctx context.Context, userID, productID, quantity int) error
	RemoveFromCart(ctx context.Context, userID, itemID int) error
	Checkout(ctx context.Context, userID int) (*catalog.CheckoutResult, error)
	ListOrders(ctx context.Context, userID int) ([]catalog.Order, error)
}

// ConfirmationPolicy gates checkout behind an affirmative answer from the
// user before any network call is made.
type ConfirmationPolicy interface {
	Confirm(ctx context.Context, prompt string) bool
}

// ConfirmFunc adapts a function to ConfirmationPolicy.
type ConfirmFunc func(ctx context.Context, prompt string) bool

func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) bool {
	return f(ctx, prompt)
}

// Surface is the display the app renders into. It mirrors the fixed
// document contract: a user badge, a cart-count badge, one region per
// section, tab selectors and a notification slot.
type Surface interface {
	views.Surface
	notify.Sink
	SetUserEmail(email string)
	SetCartCount(count int)
	RenderProducts(fragment string)
	RenderCart(fragment string)
	RenderOrders(fragment string)
}

// Params wires an App.
type Params struct {
	Gateway       Gateway
	Store         *session.Store
	Surface       Surface
	Notifier      *notify.Notifier
	Logger        *logger.Logger
	Confirm       ConfirmationPolicy
	DemoEmail     string
	RedirectDelay time.Duration
}

type App struct {
	gw            Gateway
	store         *session.Store
	surface       Surface
	notifier      *notify.Notifier
	logg          *logger.Logger
	confirm       ConfirmationPolicy
	router        *views.Router
	demoEmail     string
	redirectDelay time.Duration
}

const defaultRedirectDelay = 1500 * time.Millisecond

// New builds the app and its router. The router's side effects close over
// the app so tab entry re-renders the stored cart or reloads orders.
func New(params Params) (*App, error) {
	if params.Gateway == nil {
		return nil, fmt.Errorf("gateway required")
	}
	if params.Store == nil {
		return nil, fmt.Errorf("state store required")
	}
	if params.Surface == nil {
		return nil, fmt.Errorf("surface required")
	}
	if params.Notifier == nil {
		return nil, fmt.Errorf("notifier required")
	}
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if params.Confirm == nil {
		return nil, fmt.Errorf("confirmation policy required")
	}
	if params.DemoEmail == "" {
		return nil, fmt.Errorf("demo email required")
	}
	if params.RedirectDelay <= 0 {
		params.RedirectDelay = defaultRedirectDelay
	}

	app := &App{
		gw:            params.Gateway,
		store:         params.Store,
		surface:       params.Surface,
		notifier:      params.Notifier,
		logg:          params.Logger,
		confirm:       params.Confirm,
		demoEmail:     params.DemoEmail,
		redirectDelay: params.RedirectDelay,
	}

	app.router = views.NewRouter(params.Surface, views.Hooks{
		ReloadOrders:  func(ctx context.Context) { app.LoadOrders(ctx) },
		RedisplayCart: func(ctx context.Context) { app.displayCart() },
	})

	return app, nil
}

// Router exposes the tab state machine for the hosting surface.
func (a *App) Router() *views.Router {
	return a.router
}

// Initialize runs the bootstrap sequence in strict order: login, then
// products, then cart, each step awaiting the previous. On any failure the
// remaining steps are skipped and a single generic notification is
// surfaced; the session user stays nil and later actions fail their
// precondition instead of crashing.
func (a *App) Initialize(ctx context.Context) error {
	ctx = a.logg.WithAction(ctx, "initialize")

	user, err := a.gw.Login(ctx, a.demoEmail)
	if err != nil {
		a.failInitialize(ctx, err)
		return err
	}
	a.store.SetUser(user)
	a.surface.SetUserEmail(user.Email)
	ctx = a.logg.WithUserID(ctx, user.ID)

	if err := a.fetchAndRenderProducts(ctx); err != nil {
		a.failInitialize(ctx, err)
		return err
	}

	if err := a.fetchAndRenderCart(ctx); err != nil {
		a.failInitialize(ctx, err)
		return err
	}

	a.logg.Info(ctx, "storefront ready")
	return nil
}

func (a *App) failInitialize(ctx context.Context, err error) {
	a.logg.Error(ctx, "initialization failed", err)
	a.notifier.Error("Failed to initialize app")
}

// LoadProducts refreshes the catalog and re-renders the products section.
func (a *App) LoadProducts(ctx context.Context) {
	ctx = a.logg.WithAction(ctx, "load_products")
	if err := a.fetchAndRenderProducts(ctx); err != nil {
		a.logg.Error(ctx, "loading products failed", err)
		a.notifier.Error("Failed to load products")
	}
}

func (a *App) fetchAndRenderProducts(ctx context.Context) error {
	products, err := a.gw.ListProducts(ctx)
	if err != nil {
		return err
	}
	a.surface.RenderProducts(render.Products(products))
	return nil
}

// LoadCart refetches the cart, replaces the stored copy wholesale and
// re-renders it.
func (a *App) LoadCart(ctx context.Context) {
	ctx = a.logg.WithAction(ctx, "load_cart")
	if err := a.fetchAndRenderCart(ctx); err != nil {
		a.logg.Error(ctx, "loading cart failed", err)
	}
}

func (a *App) fetchAndRenderCart(ctx context.Context) error {
	user, err := a.requireUser()
	if err != nil {
		return err
	}
	items, err := a.gw.GetCart(ctx, user.ID)
	if err != nil {
		return err
	}
	a.store.ReplaceCart(items)
	a.surface.SetCartCount(a.store.CartCount())
	a.displayCart()
	return nil
}

func (a *App) displayCart() {
	a.surface.RenderCart(render.Cart(a.store.Cart()))
}

// AddToCart adds one unit of the product, then refetches the full cart. On
// failure the stored cart still reflects the last successful fetch.
func (a *App) AddToCart(ctx context.Context, productID int) {
	ctx = a.logg.WithAction(ctx, "add_to_cart")

	user, err := a.requireUser()
	if err != nil {
		a.logg.Warn(ctx, "add to cart without session user")
		a.notifier.Error("Failed to add to cart")
		return
	}

	if err := a.gw.AddToCart(ctx, user.ID, productID, 1); err != nil {
		a.logg.Error(ctx, "add to cart failed", err)
		a.notifier.Error("Failed to add to cart")
		return
	}

	a.notifier.Success("Added to cart!")
	if err := a.fetchAndRenderCart(ctx); err != nil {
		a.logg.Error(ctx, "cart refresh after add failed", err)
	}
}

// RemoveFromCart deletes one cart line, then refetches the full cart.
func (a *App) RemoveFromCart(ctx context.Context, itemID int) {
	ctx = a.logg.WithAction(ctx, "remove_from_cart")

	user, err := a.requireUser()
	if err != nil {
		a.logg.Warn(ctx, "remove from cart without session user")
		a.notifier.Error("Failed to remove item")
		return
	}

	if err := a.gw.RemoveFromCart(ctx, user.ID, itemID); err != nil {
		a.logg.Error(ctx, "remove from cart failed", err)
		a.notifier.Error("Failed to remove item")
		return
	}

	a.notifier.Success("Item removed from cart")
	if err := a.fetchAndRenderCart(ctx); err != nil {
		a.logg.Error(ctx, "cart refresh after remove failed", err)
	}
}

// Checkout converts the cart into an order. An empty cart short-circuits
// before any network call; the confirmation policy must approve before the
// call is issued. On success the cart (now empty server-side) and the
// catalog (stock changed) are refetched, and after a short delay the view
// switches to the orders tab.
func (a *App) Checkout(ctx context.Context) {
	ctx = a.logg.WithAction(ctx, "checkout")

	if a.store.CartCount() == 0 {
		a.notifier.Error("Cart is empty")
		return
	}

	user, err := a.requireUser()
	if err != nil {
		a.logg.Warn(ctx, "checkout without session user")
		a.notifier.Error("Checkout failed")
		return
	}

	if !a.confirm.Confirm(ctx, "Proceed with checkout?") {
		a.logg.Info(ctx, "checkout declined")
		return
	}

	result, err := a.gw.Checkout(ctx, user.ID)
	if err != nil {
		a.logg.Error(ctx, "checkout failed", err)
		a.notifier.Error("Checkout failed")
		return
	}

	if err := a.fetchAndRenderCart(ctx); err != nil {
		a.logg.Error(ctx, "cart refresh after checkout failed", err)
	}
	if err := a.fetchAndRenderProducts(ctx); err != nil {
		a.logg.Error(ctx, "catalog refresh after checkout failed", err)
	}

	a.notifier.Success(fmt.Sprintf("Order completed! Total: %s", money.FormatUSD(result.Total)))
	a.logg.Info(a.logg.WithField(ctx, "order_id", result.OrderID), "checkout complete")

	redirectCtx := context.WithoutCancel(ctx)
	time.AfterFunc(a.redirectDelay, func() {
		a.router.Show(redirectCtx, views.TabOrders, "ordersBtn")
	})
}

// LoadOrders reloads the user's orders and re-renders the orders section.
func (a *App) LoadOrders(ctx context.Context) {
	ctx = a.logg.WithAction(ctx, "load_orders")

	user, err := a.requireUser()
	if err != nil {
		a.logg.Warn(ctx, "orders view without session user")
		a.notifier.Error("Failed to load orders")
		return
	}

	orders, err := a.gw.ListOrders(ctx, user.ID)
	if err != nil {
		a.logg.Error(ctx, "loading orders failed", err)
		a.notifier.Error("Failed to load orders")
		return
	}
	a.surface.RenderOrders(render.Orders(orders))
}

// ShowTab drives the view router. The trigger names the control that caused
// the transition.
func (a *App) ShowTab(ctx context.Context, tab views.Tab, trigger string) {
	a.router.Show(a.logg.WithTab(ctx, string(tab)), tab, trigger)
}

func (a *App) requireUser() (*catalog.User, error) {
	user := a.store.User()
	if user == nil {
		return nil, pkgerrors.New(pkgerrors.CodePrecondition, "no session user")
	}
	return user, nil
}
