// internal/handlers/inventory.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/MRafay620/ecommerce-api/internal/services"
	"github.com/MRafay620/ecommerce-api/internal/utils"
)

type InventoryHandler struct {
	inventoryService *services.InventoryService
}

func NewInventoryHandler(inventoryService *services.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// GET /inventory
func (h *InventoryHandler) ListInventory(c *gin.Context) {
	lowStockOnly, err := utils.GetBoolQuery(c, "low_stock_only")
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	inventories, err := h.inventoryService.ListInventory(lowStockOnly != nil && *lowStockOnly)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, inventories)
}

// PUT /inventory/:product_id
func (h *InventoryHandler) UpdateInventory(c *gin.Context) {
	productID, ok := utils.GetUintParam(c, "product_id")
	if !ok {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	var req services.UpdateInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	inventory, err := h.inventoryService.UpdateInventory(productID, &req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, inventory)
}
