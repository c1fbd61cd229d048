package model

import "time"

// OrderModel mirrors the 'orders' table. Items holds the JSON-serialized
// snapshot of the purchased lines; it is written once at checkout and never
// updated.
type OrderModel struct {
	ID        uint    `gorm:"primaryKey"`
	UserID    uint    `gorm:"not null;index"`
	Total     float64 `gorm:"not null"`
	Status    string  `gorm:"type:varchar(20);not null;default:pending"`
	Items     string  `gorm:"type:text;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
