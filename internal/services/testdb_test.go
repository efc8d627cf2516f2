// internal/services/testdb_test.go
package services_test

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/MRafay620/ecommerce-api/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.Inventory{},
		&models.Sale{},
	))

	return db
}

func floatPtr(v float64) *float64 { return &v }

func seedCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()

	category := &models.Category{Name: name, Description: name + " items"}
	require.NoError(t, db.Create(category).Error)
	return category
}

func seedProduct(t *testing.T, db *gorm.DB, categoryID uint, sku, platform string, price float64, stock, threshold int) *models.Product {
	t.Helper()

	product := &models.Product{
		Name:       "Product " + sku,
		Price:      price,
		SKU:        sku,
		CategoryID: categoryID,
		Platform:   platform,
		IsActive:   true,
	}
	require.NoError(t, db.Create(product).Error)

	inventory := &models.Inventory{
		ProductID:         product.ID,
		Quantity:          stock,
		LowStockThreshold: threshold,
	}
	require.NoError(t, db.Create(inventory).Error)

	return product
}

func seedSale(t *testing.T, db *gorm.DB, productID uint, quantity int, unitPrice float64, saleDate time.Time, platform string) *models.Sale {
	t.Helper()

	sale := &models.Sale{
		ProductID:   productID,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		TotalAmount: float64(quantity) * unitPrice,
		SaleDate:    saleDate.UTC(),
		Platform:    platform,
	}
	require.NoError(t, db.Create(sale).Error)
	return sale
}
