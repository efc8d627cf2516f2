// internal/handlers/product.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/MRafay620/ecommerce-api/internal/services"
	"github.com/MRafay620/ecommerce-api/internal/utils"
)

type ProductHandler struct {
	catalogService *services.CatalogService
}

func NewProductHandler(catalogService *services.CatalogService) *ProductHandler {
	return &ProductHandler{catalogService: catalogService}
}

// POST /products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req services.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	product, err := h.catalogService.CreateProduct(&req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.CreatedResponse(c, product)
}

// GET /products
func (h *ProductHandler) ListProducts(c *gin.Context) {
	categoryID, err := utils.GetUintQuery(c, "category_id")
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	isActive, err := utils.GetBoolQuery(c, "is_active")
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	filter := services.ProductFilter{
		CategoryID: categoryID,
		Platform:   utils.GetStringQuery(c, "platform"),
		IsActive:   isActive,
	}

	products, err := h.catalogService.ListProducts(filter)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, products)
}

// GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := utils.GetUintParam(c, "id")
	if !ok {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	product, err := h.catalogService.GetProduct(id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, product)
}
