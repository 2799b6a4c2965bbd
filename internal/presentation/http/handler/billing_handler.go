package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/swipelite/swipelite-api/internal/application/service"
	"github.com/swipelite/swipelite-api/internal/presentation/http/dto/response"
)

// BillingHandler handles the free-text billing parse endpoint
type BillingHandler struct {
	parseService *service.ParseService
}

// NewBillingHandler creates a new billing handler
func NewBillingHandler(parseService *service.ParseService) *BillingHandler {
	return &BillingHandler{parseService: parseService}
}

// Parse handles parsing informal billing text into an invoice draft
func (h *BillingHandler) Parse(c *gin.Context) {
	var req struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.parseService.ParseBillingText(c.Request.Context(), req.Text)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Billing text parsed successfully", result)
}
