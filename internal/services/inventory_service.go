// internal/services/inventory_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/MRafay620/ecommerce-api/internal/apperrors"
	"github.com/MRafay620/ecommerce-api/internal/models"
	"github.com/MRafay620/ecommerce-api/internal/utils"
)

// InventoryService tracks on-hand stock per product.
type InventoryService struct {
	db *gorm.DB
}

type UpdateInventoryRequest struct {
	Quantity          *int `json:"quantity" validate:"required,gte=0"`
	LowStockThreshold *int `json:"low_stock_threshold,omitempty" validate:"omitempty,gte=0"`
}

func NewInventoryService(db *gorm.DB) *InventoryService {
	return &InventoryService{db: db}
}

func (s *InventoryService) ListInventory(lowStockOnly bool) ([]models.Inventory, error) {
	query := s.db.Model(&models.Inventory{}).
		Preload("Product").Preload("Product.Category")

	if lowStockOnly {
		query = query.Where("quantity <= low_stock_threshold")
	}

	var inventories []models.Inventory
	if err := query.Order("product_id").Find(&inventories).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch inventory: %w", err)
	}

	for i := range inventories {
		inventories[i].ComputeLowStock()
	}

	return inventories, nil
}

// UpdateInventory overwrites the stored quantity (it is not an increment) and
// optionally the threshold.
func (s *InventoryService) UpdateInventory(productID uint, req *UpdateInventoryRequest) (*models.Inventory, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.Validation("Invalid inventory payload", utils.GetValidationErrors(err))
	}

	var inventory models.Inventory
	if err := s.db.Where("product_id = ?", productID).First(&inventory).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Inventory not found")
		}
		return nil, fmt.Errorf("failed to fetch inventory: %w", err)
	}

	inventory.Quantity = *req.Quantity
	if req.LowStockThreshold != nil {
		inventory.LowStockThreshold = *req.LowStockThreshold
	}

	if err := s.db.Save(&inventory).Error; err != nil {
		return nil, fmt.Errorf("failed to update inventory: %w", err)
	}

	if err := s.db.Preload("Product").Preload("Product.Category").
		First(&inventory, inventory.ID).Error; err != nil {
		return nil, fmt.Errorf("failed to reload inventory: %w", err)
	}

	inventory.ComputeLowStock()
	return &inventory, nil
}
