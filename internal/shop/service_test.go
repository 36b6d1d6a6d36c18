package shop

import (
	"context"
	"fmt"
	"testing"

	pkgerrors "github.com/angelmondragon/storefront/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var memoryDBCounter int

func setupShopTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	memoryDBCounter++
	dsn := fmt.Sprintf("file:shoptest%d?mode=memory&cache=shared", memoryDBCounter)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, Migrate(db))
	require.NoError(t, SeedCatalog(context.Background(), db))
	return db
}

func newShopService(t *testing.T) Service {
	t.Helper()
	svc, err := NewService(setupShopTestDB(t))
	require.NoError(t, err)
	return svc
}

func TestDemoLoginCreatesUserAndCartOnce(t *testing.T) {
	svc := newShopService(t)
	ctx := context.Background()

	user, created, err := svc.DemoLogin(ctx, "demo@example.com")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "demo", user.Name)
	assert.Equal(t, "Demo demo", user.FullName)

	again, created, err := svc.DemoLogin(ctx, "demo@example.com")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, user.ID, again.ID)

	items, err := svc.CartItems(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestSeedCatalogIsIdempotent(t *testing.T) {
	db := setupShopTestDB(t)
	require.NoError(t, SeedCatalog(context.Background(), db))

	svc, err := NewService(db)
	require.NoError(t, err)
	products, err := svc.ListProducts(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 3)
	assert.Equal(t, "Laptop", products[0].Name)
	assert.Equal(t, int64(99999), products[0].PriceCents)
}

func TestAddToCartChecksStock(t *testing.T) {
	svc := newShopService(t)
	ctx := context.Background()

	user, _, err := svc.DemoLogin(ctx, "demo@example.com")
	require.NoError(t, err)

	products, err := svc.ListProducts(ctx)
	require.NoError(t, err)
	laptop := products[0]

	item, err := svc.AddToCart(ctx, user.ID, laptop.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, item.Quantity)
	assert.Equal(t, "Laptop", item.Product.Name)

	_, err = svc.AddToCart(ctx, user.ID, laptop.ID, laptop.Stock+1)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.CodeOf(err))

	_, err = svc.AddToCart(ctx, user.ID, 9999, 1)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.CodeOf(err))
}

func TestRemoveFromCart(t *testing.T) {
	svc := newShopService(t)
	ctx := context.Background()

	user, _, err := svc.DemoLogin(ctx, "demo@example.com")
	require.NoError(t, err)
	products, err := svc.ListProducts(ctx)
	require.NoError(t, err)

	item, err := svc.AddToCart(ctx, user.ID, products[1].ID, 1)
	require.NoError(t, err)

	require.NoError(t, svc.RemoveFromCart(ctx, user.ID, item.ID))

	items, err := svc.CartItems(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, items)

	err = svc.RemoveFromCart(ctx, user.ID, item.ID)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.CodeOf(err))
}

func TestCheckoutCreatesOrderAndClearsCart(t *testing.T) {
	svc := newShopService(t)
	ctx := context.Background()

	user, _, err := svc.DemoLogin(ctx, "demo@example.com")
	require.NoError(t, err)
	products, err := svc.ListProducts(ctx)
	require.NoError(t, err)
	mouse := products[1]

	_, err = svc.AddToCart(ctx, user.ID, mouse.ID, 2)
	require.NoError(t, err)

	summary, err := svc.Checkout(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(5198), summary.TotalCents)
	assert.Equal(t, "51.98", summary.Total.StringFixed(2))

	items, err := svc.CartItems(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, items, "checkout must clear the cart")

	refreshed, err := svc.GetProduct(ctx, mouse.ID)
	require.NoError(t, err)
	assert.Equal(t, mouse.Stock-2, refreshed.Stock, "checkout must decrement stock")

	orders, err := svc.ListOrders(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "completed", orders[0].Status)
	require.Len(t, orders[0].Items, 1)
	assert.Equal(t, int64(2599), orders[0].Items[0].UnitPriceCents)
	assert.Equal(t, "Mouse", orders[0].Items[0].Product.Name)
}

func TestOrderItemPriceSurvivesCatalogChanges(t *testing.T) {
	db := setupShopTestDB(t)
	svc, err := NewService(db)
	require.NoError(t, err)
	ctx := context.Background()

	user, _, err := svc.DemoLogin(ctx, "demo@example.com")
	require.NoError(t, err)
	products, err := svc.ListProducts(ctx)
	require.NoError(t, err)
	keyboard := products[2]

	_, err = svc.AddToCart(ctx, user.ID, keyboard.ID, 1)
	require.NoError(t, err)
	summary, err := svc.Checkout(ctx, user.ID)
	require.NoError(t, err)

	// Reprice the product after the sale.
	require.NoError(t, db.Model(&Product{}).Where("id = ?", keyboard.ID).
		Updates(map[string]any{"price": 1.00, "price_cents": 100}).Error)

	order, err := svc.GetOrder(ctx, user.ID, summary.OrderID)
	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	assert.Equal(t, int64(7599), order.Items[0].UnitPriceCents)
	assert.Equal(t, int64(7599), order.TotalCents)
}

func TestCheckoutInsufficientStock(t *testing.T) {
	db := setupShopTestDB(t)
	svc, err := NewService(db)
	require.NoError(t, err)
	ctx := context.Background()

	user, _, err := svc.DemoLogin(ctx, "demo@example.com")
	require.NoError(t, err)
	products, err := svc.ListProducts(ctx)
	require.NoError(t, err)
	laptop := products[0]

	_, err = svc.AddToCart(ctx, user.ID, laptop.ID, laptop.Stock)
	require.NoError(t, err)

	// Stock drains between add and checkout.
	require.NoError(t, db.Model(&Product{}).Where("id = ?", laptop.ID).Update("stock", 0).Error)

	_, err = svc.Checkout(ctx, user.ID)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.CodeOf(err))

	items, err := svc.CartItems(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, items, 1, "failed checkout must leave the cart intact")
}

func TestCartAndOrdersForUnknownUser(t *testing.T) {
	svc := newShopService(t)
	ctx := context.Background()

	_, err := svc.CartItems(ctx, 404)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.CodeOf(err))

	_, err = svc.ListOrders(ctx, 404)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.CodeOf(err))
}
