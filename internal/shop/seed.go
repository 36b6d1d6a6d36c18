package shop

import (
	"context"

	"gorm.io/gorm"
)

func stringPtr(s string) *string { return &s }

var demoCatalog = []Product{
	{Name: "Laptop", Price: 999.99, PriceCents: 99999, Stock: 10, SKU: "LAP-001", Category: stringPtr("Electronics")},
	{Name: "Mouse", Price: 25.99, PriceCents: 2599, Stock: 50, SKU: "MOUSE-001", Category: stringPtr("Accessories")},
	{Name: "Keyboard", Price: 75.99, PriceCents: 7599, Stock: 30, SKU: "KEY-001", Category: stringPtr("Accessories")},
}

// Migrate creates the demo shop tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&User{}, &Product{}, &ShoppingCart{}, &CartItem{}, &Order{}, &OrderItem{})
}

// SeedCatalog inserts the demo products if the catalog is empty.
func SeedCatalog(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	products := make([]Product, len(demoCatalog))
	copy(products, demoCatalog)
	return db.WithContext(ctx).Create(&products).Error
}
