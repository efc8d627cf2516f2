// internal/models/inventory.go
package models

import "time"

type Inventory struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	ProductID         uint      `json:"product_id" gorm:"uniqueIndex;not null"`
	Quantity          int       `json:"quantity" gorm:"not null;default:0"`
	LowStockThreshold int       `json:"low_stock_threshold" gorm:"default:10"`
	LastUpdated       time.Time `json:"last_updated" gorm:"autoUpdateTime"`

	// Derived, never persisted: quantity at or below the threshold.
	IsLowStock bool `json:"is_low_stock" gorm:"-"`

	// Relationships
	Product Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

// ComputeLowStock refreshes the derived IsLowStock flag from the stored columns.
func (i *Inventory) ComputeLowStock() {
	i.IsLowStock = i.Quantity <= i.LowStockThreshold
}
