// internal/services/sales_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/MRafay620/ecommerce-api/internal/apperrors"
	"github.com/MRafay620/ecommerce-api/internal/database"
	"github.com/MRafay620/ecommerce-api/internal/models"
	"github.com/MRafay620/ecommerce-api/internal/utils"
)

// SalesService appends sale records and keeps inventory in step.
type SalesService struct {
	db *gorm.DB
}

type CreateSaleRequest struct {
	ProductID uint      `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,gt=0"`
	UnitPrice *float64  `json:"unit_price" validate:"required,gte=0"`
	SaleDate  time.Time `json:"sale_date" validate:"required"`
	Platform  string    `json:"platform" validate:"required,min=1,max=50"`
	OrderID   string    `json:"order_id,omitempty"`
}

// SaleFilter narrows ListSales; nil fields match everything.
type SaleFilter struct {
	StartDate  *time.Time
	EndDate    *time.Time
	ProductID  *uint
	CategoryID *uint
	Platform   *string
	Limit      int
	Offset     int
}

func NewSalesService(db *gorm.DB) *SalesService {
	return &SalesService{db: db}
}

// CreateSale inserts the sale and decrements the product's stock in a single
// transaction. The decrement runs as one SQL statement with a floor of zero:
// oversell is permitted, stock never goes negative, and concurrent sales
// cannot under-clamp each other.
func (s *SalesService) CreateSale(req *CreateSaleRequest) (*models.Sale, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.Validation("Invalid sale payload", utils.GetValidationErrors(err))
	}

	// UnitPrice is a pointer so a free giveaway (price zero) still passes
	// the required check.
	unitPrice := *req.UnitPrice

	sale := &models.Sale{
		ProductID:   req.ProductID,
		Quantity:    req.Quantity,
		UnitPrice:   unitPrice,
		TotalAmount: float64(req.Quantity) * unitPrice,
		SaleDate:    req.SaleDate.UTC(),
		Platform:    req.Platform,
		OrderID:     req.OrderID,
	}

	err := database.WithTransaction(s.db, func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, req.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("Product not found")
			}
			return fmt.Errorf("failed to check product: %w", err)
		}

		if err := tx.Create(sale).Error; err != nil {
			return fmt.Errorf("failed to create sale: %w", err)
		}

		// Atomic decrement-with-floor; a missing inventory row is skipped,
		// matching the create-sale contract.
		err := tx.Model(&models.Inventory{}).
			Where("product_id = ?", req.ProductID).
			Updates(map[string]interface{}{
				"quantity":     gorm.Expr("CASE WHEN quantity >= ? THEN quantity - ? ELSE 0 END", req.Quantity, req.Quantity),
				"last_updated": time.Now().UTC(),
			}).Error
		if err != nil {
			return fmt.Errorf("failed to update inventory: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.db.Preload("Product").Preload("Product.Category").
		First(sale, sale.ID).Error; err != nil {
		return nil, fmt.Errorf("failed to reload sale: %w", err)
	}

	return sale, nil
}

func (s *SalesService) ListSales(filter SaleFilter) ([]models.Sale, error) {
	query := s.db.Model(&models.Sale{}).
		Preload("Product").Preload("Product.Category")

	if filter.StartDate != nil {
		query = query.Where("sales.sale_date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("sales.sale_date <= ?", *filter.EndDate)
	}
	if filter.ProductID != nil {
		query = query.Where("sales.product_id = ?", *filter.ProductID)
	}
	if filter.CategoryID != nil {
		query = query.Joins("JOIN products ON products.id = sales.product_id").
			Where("products.category_id = ?", *filter.CategoryID)
	}
	if filter.Platform != nil {
		query = query.Where("sales.platform = ?", *filter.Platform)
	}

	// The HTTP layer rejects out-of-range limits; this backstop covers
	// direct callers. An unset limit falls back to the default, anything
	// above the cap is clamped.
	limit := filter.Limit
	switch {
	case limit < 1:
		limit = utils.DefaultLimit
	case limit > utils.MaxLimit:
		limit = utils.MaxLimit
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	var sales []models.Sale
	if err := query.Order("sales.sale_date DESC").
		Limit(limit).Offset(offset).
		Find(&sales).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch sales: %w", err)
	}

	return sales, nil
}
