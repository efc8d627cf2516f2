// internal/models/sale.go
package models

import "time"

type Sale struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	ProductID   uint      `json:"product_id" gorm:"not null;index"`
	Quantity    int       `json:"quantity" gorm:"not null"`
	UnitPrice   float64   `json:"unit_price" gorm:"type:decimal(10,2);not null"`
	TotalAmount float64   `json:"total_amount" gorm:"type:decimal(12,2);not null"` // quantity * unit_price, fixed at creation
	SaleDate    time.Time `json:"sale_date" gorm:"not null;index"`
	Platform    string    `json:"platform" gorm:"size:50;not null"`
	OrderID     string    `json:"order_id,omitempty" gorm:"size:100;index"`
	CreatedAt   time.Time `json:"created_at"`

	// Relationships
	Product Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}
