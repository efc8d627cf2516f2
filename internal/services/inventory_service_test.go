// internal/services/inventory_service_test.go
package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MRafay620/ecommerce-api/internal/apperrors"
	"github.com/MRafay620/ecommerce-api/internal/services"
)

func TestListInventory_LowStockFlag(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewInventoryService(db)
	category := seedCategory(t, db, "Electronics")

	low := seedProduct(t, db, category.ID, "LOW-1", "Amazon", 10, 5, 10)
	ok := seedProduct(t, db, category.ID, "OK-1", "Amazon", 10, 15, 10)

	inventories, err := svc.ListInventory(false)
	require.NoError(t, err)
	require.Len(t, inventories, 2)

	byProduct := map[uint]bool{}
	for _, inv := range inventories {
		byProduct[inv.ProductID] = inv.IsLowStock
		assert.NotZero(t, inv.Product.ID, "product should be embedded")
	}
	assert.True(t, byProduct[low.ID])  // 5 <= 10
	assert.False(t, byProduct[ok.ID]) // 15 > 10
}

func TestListInventory_LowStockOnly(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewInventoryService(db)
	category := seedCategory(t, db, "Electronics")

	low := seedProduct(t, db, category.ID, "LOW-1", "Amazon", 10, 3, 10)
	seedProduct(t, db, category.ID, "OK-1", "Amazon", 10, 50, 10)
	// Exactly at the threshold still counts as low.
	atThreshold := seedProduct(t, db, category.ID, "EDGE-1", "Amazon", 10, 10, 10)

	inventories, err := svc.ListInventory(true)
	require.NoError(t, err)
	require.Len(t, inventories, 2)

	ids := []uint{inventories[0].ProductID, inventories[1].ProductID}
	assert.Contains(t, ids, low.ID)
	assert.Contains(t, ids, atThreshold.ID)
	for _, inv := range inventories {
		assert.True(t, inv.IsLowStock)
	}
}

func TestUpdateInventory_OverwritesQuantity(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewInventoryService(db)
	category := seedCategory(t, db, "Electronics")
	product := seedProduct(t, db, category.ID, "SKU-1", "Amazon", 10, 40, 10)

	// Quantity is replaced, not incremented; threshold untouched when omitted.
	updated, err := svc.UpdateInventory(product.ID, &services.UpdateInventoryRequest{
		Quantity: intPtr(7),
	})
	require.NoError(t, err)
	assert.Equal(t, 7, updated.Quantity)
	assert.Equal(t, 10, updated.LowStockThreshold)
	assert.True(t, updated.IsLowStock)
	assert.Equal(t, product.ID, updated.Product.ID)

	updated, err = svc.UpdateInventory(product.ID, &services.UpdateInventoryRequest{
		Quantity:          intPtr(100),
		LowStockThreshold: intPtr(20),
	})
	require.NoError(t, err)
	assert.Equal(t, 100, updated.Quantity)
	assert.Equal(t, 20, updated.LowStockThreshold)
	assert.False(t, updated.IsLowStock)
}

func TestUpdateInventory_NotFound(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewInventoryService(db)

	_, err := svc.UpdateInventory(999, &services.UpdateInventoryRequest{Quantity: intPtr(1)})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestUpdateInventory_RejectsNegativeQuantity(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewInventoryService(db)
	category := seedCategory(t, db, "Electronics")
	product := seedProduct(t, db, category.ID, "SKU-1", "Amazon", 10, 40, 10)

	_, err := svc.UpdateInventory(product.ID, &services.UpdateInventoryRequest{
		Quantity: intPtr(-5),
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeValidation, apperrors.CodeOf(err))
}
