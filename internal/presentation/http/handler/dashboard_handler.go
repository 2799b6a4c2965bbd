package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/swipelite/swipelite-api/internal/application/service"
	"github.com/swipelite/swipelite-api/internal/presentation/http/dto/response"
)

// DashboardHandler handles dashboard HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Stats handles getting the dashboard aggregate
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.dashboardService.GetStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dashboard stats retrieved successfully", stats)
}

// Insights handles getting AI business insights
func (h *DashboardHandler) Insights(c *gin.Context) {
	insights, err := h.dashboardService.GetInsights(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Insights retrieved successfully", insights)
}
