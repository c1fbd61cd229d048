package model

import "time"

// ProductModel mirrors the 'products' table. The boolean and numeric columns
// carry no column defaults: GORM omits zero-valued fields that have a default
// tag on insert, which would turn an inactive product active.
type ProductModel struct {
	ID          uint    `gorm:"primaryKey"`
	Name        string  `gorm:"type:varchar(100);not null"`
	Description string  `gorm:"type:text"`
	Price       float64 `gorm:"not null"`
	Stock       int     `gorm:"not null"`
	Image       string  `gorm:"type:varchar(200)"`
	Category    string  `gorm:"type:varchar(50);index"`
	IsActive    bool    `gorm:"not null"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
