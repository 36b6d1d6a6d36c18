package shop

import (
	"context"
	"errors"
	"fmt"
	"strings"

	pkgerrors "github.com/angelmondragon/storefront/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Service exposes the demo shop operations backing the commerce API.
type Service interface {
	DemoLogin(ctx context.Context, email string) (*User, bool, error)
	CreateUser(ctx context.Context, name, email string) (*User, error)
	ListProducts(ctx context.Context) ([]Product, error)
	GetProduct(ctx context.Context, productID int) (*Product, error)
	CartItems(ctx context.Context, userID int) ([]CartItem, error)
	AddToCart(ctx context.Context, userID, productID, quantity int) (*CartItem, error)
	RemoveFromCart(ctx context.Context, userID, itemID int) error
	Checkout(ctx context.Context, userID int) (*CheckoutSummary, error)
	ListOrders(ctx context.Context, userID int) ([]Order, error)
	GetOrder(ctx context.Context, userID, orderID int) (*Order, error)
}

// CheckoutSummary is the result of converting a cart into an order.
type CheckoutSummary struct {
	OrderID    int
	Total      decimal.Decimal
	TotalCents int64
}

type service struct {
	db *gorm.DB
}

// NewService builds the shop service on the shared connection.
func NewService(db *gorm.DB) (Service, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection required")
	}
	return &service{db: db}, nil
}

// DemoLogin fetches the user for the email, creating it (with an empty
// cart) on first sight. The bool reports whether a new user was created.
func (s *service) DemoLogin(ctx context.Context, email string) (*User, bool, error) {
	var user User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err == nil {
		return &user, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	name := email
	if at := strings.Index(email, "@"); at > 0 {
		name = email[:at]
	}
	user = User{
		Name:         name,
		Email:        email,
		FullName:     "Demo " + name,
		PasswordHash: "demo_hash",
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		return tx.Create(&ShoppingCart{UserID: user.ID}).Error
	})
	if err != nil {
		return nil, false, err
	}
	return &user, true, nil
}

// CreateUser registers a plain (non-demo) user with an empty cart.
func (s *service) CreateUser(ctx context.Context, name, email string) (*User, error) {
	user := User{Name: name, Email: email, PasswordHash: "dummy"}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		return tx.Create(&ShoppingCart{UserID: user.ID}).Error
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *service) ListProducts(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := s.db.WithContext(ctx).Order("id").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *service) GetProduct(ctx context.Context, productID int) (*Product, error) {
	var product Product
	err := s.db.WithContext(ctx).First(&product, productID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Product not found")
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *service) cartForUser(ctx context.Context, tx *gorm.DB, userID int) (*ShoppingCart, error) {
	var cart ShoppingCart
	err := tx.WithContext(ctx).Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Cart not found")
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (s *service) CartItems(ctx context.Context, userID int) ([]CartItem, error) {
	cart, err := s.cartForUser(ctx, s.db, userID)
	if err != nil {
		return nil, err
	}
	var items []CartItem
	err = s.db.WithContext(ctx).Preload("Product").Where("cart_id = ?", cart.ID).Order("id").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// AddToCart appends a cart line after checking the product exists and has
// enough stock for the requested quantity.
func (s *service) AddToCart(ctx context.Context, userID, productID, quantity int) (*CartItem, error) {
	cart, err := s.cartForUser(ctx, s.db, userID)
	if err != nil {
		return nil, err
	}

	var product Product
	err = s.db.WithContext(ctx).First(&product, productID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && product.Stock < quantity) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Product not available")
	}
	if err != nil {
		return nil, err
	}

	item := CartItem{CartID: cart.ID, ProductID: productID, Quantity: quantity}
	if err := s.db.WithContext(ctx).Create(&item).Error; err != nil {
		return nil, err
	}
	item.Product = product
	return &item, nil
}

func (s *service) RemoveFromCart(ctx context.Context, userID, itemID int) error {
	cart, err := s.cartForUser(ctx, s.db, userID)
	if err != nil {
		return err
	}

	result := s.db.WithContext(ctx).Where("id = ? AND cart_id = ?", itemID, cart.ID).Delete(&CartItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "Item not found")
	}
	return nil
}

// Checkout validates stock, creates the order with unit prices frozen in
// cents, decrements stock and clears the cart, all in one transaction.
func (s *service) Checkout(ctx context.Context, userID int) (*CheckoutSummary, error) {
	var summary CheckoutSummary

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cart, err := s.cartForUser(ctx, tx, userID)
		if err != nil {
			return err
		}

		var items []CartItem
		if err := tx.Preload("Product").Where("cart_id = ?", cart.ID).Find(&items).Error; err != nil {
			return err
		}

		total := decimal.Zero
		var totalCents int64
		for _, item := range items {
			if item.Product.Stock < item.Quantity {
				return pkgerrors.New(pkgerrors.CodeValidation, "Insufficient stock")
			}
			qty := decimal.NewFromInt(int64(item.Quantity))
			total = total.Add(decimal.NewFromFloat(item.Product.Price).Mul(qty))
			totalCents += item.Product.PriceCents * int64(item.Quantity)
		}

		order := Order{UserID: userID, Status: "completed", TotalCents: totalCents}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for _, item := range items {
			orderItem := OrderItem{
				OrderID:        order.ID,
				ProductID:      item.ProductID,
				Quantity:       item.Quantity,
				UnitPriceCents: item.Product.PriceCents,
			}
			if err := tx.Create(&orderItem).Error; err != nil {
				return err
			}
			err := tx.Model(&Product{}).Where("id = ?", item.ProductID).
				Update("stock", gorm.Expr("stock - ?", item.Quantity)).Error
			if err != nil {
				return err
			}
		}

		if err := tx.Where("cart_id = ?", cart.ID).Delete(&CartItem{}).Error; err != nil {
			return err
		}

		summary = CheckoutSummary{OrderID: order.ID, Total: total, TotalCents: totalCents}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

func (s *service) ListOrders(ctx context.Context, userID int) ([]Order, error) {
	var user User
	err := s.db.WithContext(ctx).First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "User not found")
	}
	if err != nil {
		return nil, err
	}

	var orders []Order
	err = s.db.WithContext(ctx).
		Preload("Items.Product").
		Where("user_id = ?", userID).
		Order("id").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *service) GetOrder(ctx context.Context, userID, orderID int) (*Order, error) {
	var order Order
	err := s.db.WithContext(ctx).
		Preload("Items.Product").
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Order not found")
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}
