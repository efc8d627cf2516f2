// internal/services/catalog_service_test.go
package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MRafay620/ecommerce-api/internal/apperrors"
	"github.com/MRafay620/ecommerce-api/internal/models"
	"github.com/MRafay620/ecommerce-api/internal/services"
)

func intPtr(v int) *int { return &v }

func TestCreateCategory(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewCatalogService(db)

	category, err := svc.CreateCategory(&services.CreateCategoryRequest{
		Name:        "Electronics",
		Description: "Electronic devices",
	})
	require.NoError(t, err)
	assert.NotZero(t, category.ID)
	assert.Equal(t, "Electronics", category.Name)

	// Duplicate name is a conflict and leaves the first row alone.
	_, err = svc.CreateCategory(&services.CreateCategoryRequest{Name: "Electronics"})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))

	var count int64
	require.NoError(t, db.Model(&models.Category{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCreateCategory_Validation(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewCatalogService(db)

	_, err := svc.CreateCategory(&services.CreateCategoryRequest{Name: ""})
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeValidation, apperrors.CodeOf(err))
}

func TestCreateProduct_CreatesInventoryRow(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewCatalogService(db)
	category := seedCategory(t, db, "Electronics")

	product, err := svc.CreateProduct(&services.CreateProductRequest{
		Name:              "Wireless Mouse",
		Price:             29.99,
		SKU:               "MOU-001",
		CategoryID:        category.ID,
		Platform:          "Amazon",
		InitialStock:      intPtr(25),
		LowStockThreshold: intPtr(5),
	})
	require.NoError(t, err)
	assert.True(t, product.IsActive)
	assert.Equal(t, category.ID, product.Category.ID)

	var inventory models.Inventory
	require.NoError(t, db.Where("product_id = ?", product.ID).First(&inventory).Error)
	assert.Equal(t, 25, inventory.Quantity)
	assert.Equal(t, 5, inventory.LowStockThreshold)
}

func TestCreateProduct_InventoryDefaults(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewCatalogService(db)
	category := seedCategory(t, db, "Books")

	product, err := svc.CreateProduct(&services.CreateProductRequest{
		Name:       "Paperback",
		Price:      9.99,
		SKU:        "BOO-001",
		CategoryID: category.ID,
		Platform:   "Walmart",
	})
	require.NoError(t, err)

	var inventory models.Inventory
	require.NoError(t, db.Where("product_id = ?", product.ID).First(&inventory).Error)
	assert.Equal(t, 0, inventory.Quantity)
	assert.Equal(t, 10, inventory.LowStockThreshold)
}

func TestCreateProduct_MissingCategory(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewCatalogService(db)

	_, err := svc.CreateProduct(&services.CreateProductRequest{
		Name:       "Orphan",
		Price:      1.99,
		SKU:        "ORP-001",
		CategoryID: 999,
		Platform:   "Amazon",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestCreateProduct_DuplicateSKU(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewCatalogService(db)
	category := seedCategory(t, db, "Electronics")

	first, err := svc.CreateProduct(&services.CreateProductRequest{
		Name:       "First",
		Price:      10.0,
		SKU:        "X-1",
		CategoryID: category.ID,
		Platform:   "Amazon",
	})
	require.NoError(t, err)

	_, err = svc.CreateProduct(&services.CreateProductRequest{
		Name:       "Second",
		Price:      20.0,
		SKU:        "X-1",
		CategoryID: category.ID,
		Platform:   "Walmart",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))

	// The first product is unaffected.
	var reloaded models.Product
	require.NoError(t, db.First(&reloaded, first.ID).Error)
	assert.Equal(t, "First", reloaded.Name)

	var count int64
	require.NoError(t, db.Model(&models.Product{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestListProducts_Filters(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewCatalogService(db)
	electronics := seedCategory(t, db, "Electronics")
	books := seedCategory(t, db, "Books")

	seedProduct(t, db, electronics.ID, "E-1", "Amazon", 10, 5, 10)
	seedProduct(t, db, electronics.ID, "E-2", "Walmart", 20, 5, 10)
	seedProduct(t, db, books.ID, "B-1", "Amazon", 30, 5, 10)

	inactive := seedProduct(t, db, electronics.ID, "E-3", "Amazon", 40, 5, 10)
	require.NoError(t, db.Model(inactive).Update("is_active", false).Error)

	all, err := svc.ListProducts(services.ProductFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 4)

	amazon := "Amazon"
	active := true
	filtered, err := svc.ListProducts(services.ProductFilter{
		CategoryID: &electronics.ID,
		Platform:   &amazon,
		IsActive:   &active,
	})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "E-1", filtered[0].SKU)
	assert.Equal(t, "Electronics", filtered[0].Category.Name)
}

func TestGetProduct(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewCatalogService(db)
	category := seedCategory(t, db, "Electronics")
	product := seedProduct(t, db, category.ID, "E-1", "Amazon", 10, 5, 10)

	found, err := svc.GetProduct(product.ID)
	require.NoError(t, err)
	assert.Equal(t, product.SKU, found.SKU)
	assert.Equal(t, "Electronics", found.Category.Name)

	_, err = svc.GetProduct(999)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}
