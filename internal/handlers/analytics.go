// internal/handlers/analytics.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/MRafay620/ecommerce-api/internal/services"
	"github.com/MRafay620/ecommerce-api/internal/utils"
)

type AnalyticsHandler struct {
	analyticsService *services.AnalyticsService
}

func NewAnalyticsHandler(analyticsService *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// GET /analytics/revenue/:period
func (h *AnalyticsHandler) GetRevenue(c *gin.Context) {
	period, err := services.ParsePeriod(c.Param("period"))
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
	categoryID, err := utils.GetUintQuery(c, "category_id")
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	query := services.RevenueQuery{
		StartDate:  startDate,
		EndDate:    endDate,
		CategoryID: categoryID,
		Platform:   utils.GetStringQuery(c, "platform"),
	}

	summaries, err := h.analyticsService.RevenueByPeriod(period, query)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, summaries)
}
