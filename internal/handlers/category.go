// internal/handlers/category.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/MRafay620/ecommerce-api/internal/services"
	"github.com/MRafay620/ecommerce-api/internal/utils"
)

type CategoryHandler struct {
	catalogService *services.CatalogService
}

func NewCategoryHandler(catalogService *services.CatalogService) *CategoryHandler {
	return &CategoryHandler{catalogService: catalogService}
}

// POST /categories
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req services.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	category, err := h.catalogService.CreateCategory(&req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.CreatedResponse(c, category)
}

// GET /categories
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalogService.ListCategories()
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, categories)
}
