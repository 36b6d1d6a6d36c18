package shop

import "time"

// User is a demo shopper identity. Demo logins create one on first sight.
type User struct {
	ID           int       `gorm:"column:id;primaryKey;autoIncrement"`
	Name         string    `gorm:"column:name;not null"`
	Email        string    `gorm:"column:email;uniqueIndex;not null"`
	FullName     string    `gorm:"column:full_name"`
	PasswordHash string    `gorm:"column:password_hash;not null"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
}

// Product is a catalog listing. Price is the display amount; PriceCents is
// the authoritative integer amount used for order math.
type Product struct {
	ID          int     `gorm:"column:id;primaryKey;autoIncrement"`
	SKU         string  `gorm:"column:sku;uniqueIndex;not null"`
	Name        string  `gorm:"column:name;not null"`
	Category    *string `gorm:"column:category"`
	Description *string `gorm:"column:description"`
	Price       float64 `gorm:"column:price;not null"`
	PriceCents  int64   `gorm:"column:price_cents;not null"`
	Stock       int     `gorm:"column:stock;not null;default:0"`
}

// ShoppingCart holds a user's open cart. One per user, created at login.
type ShoppingCart struct {
	ID     int        `gorm:"column:id;primaryKey;autoIncrement"`
	UserID int        `gorm:"column:user_id;uniqueIndex;not null"`
	Items  []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}

type CartItem struct {
	ID        int     `gorm:"column:id;primaryKey;autoIncrement"`
	CartID    int     `gorm:"column:cart_id;not null"`
	ProductID int     `gorm:"column:product_id;not null"`
	Quantity  int     `gorm:"column:quantity;not null"`
	Product   Product `gorm:"foreignKey:ProductID"`
}

// Order is an immutable purchase record created at checkout.
type Order struct {
	ID         int         `gorm:"column:id;primaryKey;autoIncrement"`
	UserID     int         `gorm:"column:user_id;index;not null"`
	Status     string      `gorm:"column:status;not null"`
	TotalCents int64       `gorm:"column:total_cents;not null"`
	Items      []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time   `gorm:"column:created_at;autoCreateTime"`
}

// OrderItem captures a purchased line with the unit price frozen at
// checkout time.
type OrderItem struct {
	ID             int     `gorm:"column:id;primaryKey;autoIncrement"`
	OrderID        int     `gorm:"column:order_id;index;not null"`
	ProductID      int     `gorm:"column:product_id;not null"`
	Quantity       int     `gorm:"column:quantity;not null"`
	UnitPriceCents int64   `gorm:"column:unit_price_cents;not null"`
	Product        Product `gorm:"foreignKey:ProductID"`
}
