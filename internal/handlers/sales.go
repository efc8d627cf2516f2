// internal/handlers/sales.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/MRafay620/ecommerce-api/internal/services"
	"github.com/MRafay620/ecommerce-api/internal/utils"
)

type SalesHandler struct {
	salesService *services.SalesService
}

func NewSalesHandler(salesService *services.SalesService) *SalesHandler {
	return &SalesHandler{salesService: salesService}
}

// POST /sales
func (h *SalesHandler) CreateSale(c *gin.Context) {
	var req services.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	sale, err := h.salesService.CreateSale(&req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.CreatedResponse(c, sale)
}

// GET /sales
func (h *SalesHandler) ListSales(c *gin.Context) {
	limit, offset, err := utils.GetLimitOffset(c)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	startDate, err := utils.GetTimeQuery(c, "start_date")
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	endDate, err := utils.GetTimeQuery(c, "end_date")
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	productID, err := utils.GetUintQuery(c, "product_id")
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	categoryID, err := utils.GetUintQuery(c, "category_id")
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	filter := services.SaleFilter{
		StartDate:  startDate,
		EndDate:    endDate,
		ProductID:  productID,
		CategoryID: categoryID,
		Platform:   utils.GetStringQuery(c, "platform"),
		Limit:      limit,
		Offset:     offset,
	}

	sales, err := h.salesService.ListSales(filter)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, sales)
}
