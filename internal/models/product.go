// internal/models/product.go
package models

import "time"

type Product struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:200;not null;index"`
	Description string    `json:"description" gorm:"type:text"`
	Price       float64   `json:"price" gorm:"type:decimal(10,2);not null"`
	SKU         string    `json:"sku" gorm:"size:50;uniqueIndex;not null"`
	CategoryID  uint      `json:"category_id" gorm:"not null;index"`
	Platform    string    `json:"platform" gorm:"size:50;not null"` // Amazon, Walmart, etc.
	IsActive    bool      `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relationships
	Category  Category   `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Inventory *Inventory `json:"inventory,omitempty" gorm:"foreignKey:ProductID"`
	Sales     []Sale     `json:"sales,omitempty" gorm:"foreignKey:ProductID"`
}
