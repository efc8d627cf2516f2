// internal/services/catalog_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/MRafay620/ecommerce-api/internal/apperrors"
	"github.com/MRafay620/ecommerce-api/internal/database"
	"github.com/MRafay620/ecommerce-api/internal/models"
	"github.com/MRafay620/ecommerce-api/internal/utils"
)

const (
	defaultInitialStock      = 0
	defaultLowStockThreshold = 10
)

// CatalogService manages categories and products.
type CatalogService struct {
	db *gorm.DB
}

type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description"`
}

type CreateProductRequest struct {
	Name              string  `json:"name" validate:"required,min=1,max=200"`
	Description       string  `json:"description"`
	Price             float64 `json:"price" validate:"required,gt=0"`
	SKU               string  `json:"sku" validate:"required,min=1,max=50"`
	CategoryID        uint    `json:"category_id" validate:"required"`
	Platform          string  `json:"platform" validate:"required,min=1,max=50"`
	InitialStock      *int    `json:"initial_stock,omitempty" validate:"omitempty,gte=0"`
	LowStockThreshold *int    `json:"low_stock_threshold,omitempty" validate:"omitempty,gte=0"`
}

// ProductFilter narrows ListProducts; nil fields match everything.
type ProductFilter struct {
	CategoryID *uint
	Platform   *string
	IsActive   *bool
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

func (s *CatalogService) CreateCategory(req *CreateCategoryRequest) (*models.Category, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.Validation("Invalid category payload", utils.GetValidationErrors(err))
	}

	var existing models.Category
	err := s.db.Where("name = ?", req.Name).First(&existing).Error
	if err == nil {
		return nil, apperrors.Conflict("Category name already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check category name: %w", err)
	}

	category := &models.Category{
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.db.Create(category).Error; err != nil {
		// Unique index backstop for concurrent creates.
		if database.IsUniqueViolation(err) {
			return nil, apperrors.Conflict("Category name already exists")
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return category, nil
}

func (s *CatalogService) ListCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Order("id").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}
	return categories, nil
}

// CreateProduct creates the product and its inventory row in one transaction,
// so a failed inventory write never leaves an orphaned product behind.
func (s *CatalogService) CreateProduct(req *CreateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.Validation("Invalid product payload", utils.GetValidationErrors(err))
	}

	var category models.Category
	if err := s.db.First(&category, req.CategoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Category not found")
		}
		return nil, fmt.Errorf("failed to check category: %w", err)
	}

	var existing models.Product
	err := s.db.Where("sku = ?", req.SKU).First(&existing).Error
	if err == nil {
		return nil, apperrors.Conflict("SKU already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check SKU: %w", err)
	}

	initialStock := defaultInitialStock
	if req.InitialStock != nil {
		initialStock = *req.InitialStock
	}
	lowStockThreshold := defaultLowStockThreshold
	if req.LowStockThreshold != nil {
		lowStockThreshold = *req.LowStockThreshold
	}

	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		SKU:         req.SKU,
		CategoryID:  req.CategoryID,
		Platform:    req.Platform,
		IsActive:    true,
	}

	err = database.WithTransaction(s.db, func(tx *gorm.DB) error {
		if err := tx.Create(product).Error; err != nil {
			if database.IsUniqueViolation(err) {
				return apperrors.Conflict("SKU already exists")
			}
			return fmt.Errorf("failed to create product: %w", err)
		}

		inventory := &models.Inventory{
			ProductID:         product.ID,
			Quantity:          initialStock,
			LowStockThreshold: lowStockThreshold,
		}
		if err := tx.Create(inventory).Error; err != nil {
			return fmt.Errorf("failed to create inventory: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.db.Preload("Category").Preload("Inventory").First(product, product.ID).Error; err != nil {
		return nil, fmt.Errorf("failed to reload product: %w", err)
	}

	return product, nil
}

func (s *CatalogService) ListProducts(filter ProductFilter) ([]models.Product, error) {
	query := s.db.Model(&models.Product{}).Preload("Category")

	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.Platform != nil {
		query = query.Where("platform = ?", *filter.Platform)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}

	var products []models.Product
	if err := query.Order("id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	return products, nil
}

func (s *CatalogService) GetProduct(id uint) (*models.Product, error) {
	var product models.Product
	if err := s.db.Preload("Category").First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Product not found")
		}
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}
	return &product, nil
}
