package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/swipelite/swipelite-api/internal/application/service"
	"github.com/swipelite/swipelite-api/internal/presentation/http/dto/response"
)

// PrinterHandler handles thermal printer HTTP requests
type PrinterHandler struct {
	printerService *service.PrinterService
}

// NewPrinterHandler creates a new printer handler
func NewPrinterHandler(printerService *service.PrinterService) *PrinterHandler {
	return &PrinterHandler{printerService: printerService}
}

// Status handles getting the printer connection status
func (h *PrinterHandler) Status(c *gin.Context) {
	response.OK(c, "Printer status retrieved successfully", h.printerService.GetStatus(c.Request.Context()))
}

// Test handles sending a test page to the printer
func (h *PrinterHandler) Test(c *gin.Context) {
	if err := h.printerService.TestPrint(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Test page sent to printer", nil)
}
