package model

import "time"

// CartItemModel mirrors the 'cart_items' table. The composite unique index
// on (user_id, product_id) guarantees at most one line per product per user
// and backs the repository's upsert merge.
type CartItemModel struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"not null;uniqueIndex:idx_cart_user_product"`
	ProductID uint `gorm:"not null;uniqueIndex:idx_cart_user_product"`
	Quantity  int  `gorm:"not null;default:1"`
	CreatedAt time.Time

	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}
