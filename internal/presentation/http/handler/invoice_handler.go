package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/swipelite/swipelite-api/internal/application/service"
	"github.com/swipelite/swipelite-api/internal/domain/entity"
	"github.com/swipelite/swipelite-api/internal/domain/enum"
	"github.com/swipelite/swipelite-api/internal/domain/repository"
	"github.com/swipelite/swipelite-api/internal/presentation/http/dto/response"
	"github.com/swipelite/swipelite-api/pkg/pagination"
	"github.com/swipelite/swipelite-api/pkg/pdf"
	"github.com/swipelite/swipelite-api/pkg/tally"
)

// InvoiceHandler handles invoice HTTP requests, including the export and
// print channels
type InvoiceHandler struct {
	invoiceService  *service.InvoiceService
	documentService *service.DocumentService
	printerService  *service.PrinterService
	profileRepo     repository.ProfileRepository
	customerRepo    repository.CustomerRepository
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(
	invoiceService *service.InvoiceService,
	documentService *service.DocumentService,
	printerService *service.PrinterService,
	profileRepo repository.ProfileRepository,
	customerRepo repository.CustomerRepository,
) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService:  invoiceService,
		documentService: documentService,
		printerService:  printerService,
		profileRepo:     profileRepo,
		customerRepo:    customerRepo,
	}
}

// invoiceItemReq mirrors one invoice line in requests.
type invoiceItemReq struct {
	ProductID     *uuid.UUID        `json:"product_id"`
	Name          string            `json:"name"`
	Quantity      int               `json:"quantity"`
	Price         float64           `json:"price"`
	DynamicValues map[string]string `json:"dynamic_values"`
}

func toItemInputs(reqs []invoiceItemReq) []service.InvoiceItemInput {
	items := make([]service.InvoiceItemInput, 0, len(reqs))
	for _, r := range reqs {
		item := service.InvoiceItemInput{
			Name:          r.Name,
			Quantity:      r.Quantity,
			Price:         r.Price,
			DynamicValues: r.DynamicValues,
		}
		if r.ProductID != nil {
			item.ProductID = *r.ProductID
		}
		items = append(items, item)
	}
	return items
}

// List handles listing invoices newest first
func (h *InvoiceHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))
	search := c.Query("search")

	var status *enum.InvoiceStatus
	if raw := c.Query("status"); raw != "" {
		parsed, ok := enum.ParseInvoiceStatus(raw)
		if !ok {
			response.BadRequest(c, "Invalid status filter")
			return
		}
		status = &parsed
	}

	params := &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	}

	result, err := h.invoiceService.ListInvoices(c.Request.Context(), params, search, status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Invoices retrieved successfully", result)
}

// Create handles creating an invoice
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req struct {
		CustomerID      uuid.UUID         `json:"customer_id"`
		Items           []invoiceItemReq  `json:"items"`
		Date            *time.Time        `json:"date"`
		TemplateID      *uuid.UUID        `json:"template_id"`
		CustomFieldData map[string]string `json:"custom_field_data"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.CreateInvoiceInput{
		CustomerID:      req.CustomerID,
		Items:           toItemInputs(req.Items),
		Date:            req.Date,
		CustomFieldData: req.CustomFieldData,
	}
	if req.TemplateID != nil {
		input.TemplateID = *req.TemplateID
	}

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Invoice created successfully", invoice)
}

// Get handles getting a single invoice
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	invoice, err := h.invoiceService.GetInvoice(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice retrieved successfully", invoice)
}

// Update handles updating an invoice
func (h *InvoiceHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	var req struct {
		CustomerID      *uuid.UUID         `json:"customer_id"`
		Items           *[]invoiceItemReq  `json:"items"`
		Date            *time.Time         `json:"date"`
		TemplateID      *uuid.UUID         `json:"template_id"`
		CustomFieldData *map[string]string `json:"custom_field_data"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateInvoiceInput{
		ID:              id,
		CustomerID:      req.CustomerID,
		Date:            req.Date,
		TemplateID:      req.TemplateID,
		CustomFieldData: req.CustomFieldData,
	}
	if req.Items != nil {
		items := toItemInputs(*req.Items)
		input.Items = &items
	}

	invoice, err := h.invoiceService.UpdateInvoice(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice updated successfully", invoice)
}

// SetStatus handles changing the payment status
func (h *InvoiceHandler) SetStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	status, ok := enum.ParseInvoiceStatus(req.Status)
	if !ok {
		response.BadRequest(c, "Invalid invoice status")
		return
	}

	invoice, err := h.invoiceService.SetInvoiceStatus(c.Request.Context(), id, status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice status updated", invoice)
}

// Delete handles deleting an invoice
func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	if err := h.invoiceService.DeleteInvoice(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// ExportTally handles downloading the Tally XML voucher for an invoice
func (h *InvoiceHandler) ExportTally(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	invoice, err := h.invoiceService.GetInvoice(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	profile, err := h.profileRepo.GetByID(c.Request.Context(), invoice.ProfileID)
	if err != nil {
		response.Error(c, err)
		return
	}

	var customer *entity.Customer
	if invoice.CustomerID != nil {
		customer, err = h.customerRepo.GetByID(c.Request.Context(), *invoice.CustomerID)
		if err != nil {
			response.Error(c, err)
			return
		}
	}

	data, err := tally.Generate(invoice, profile, customer)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+tally.Filename(invoice.InvoiceNumber)+`"`)
	c.Data(200, tally.ContentType, data)
}

// ExportPDF handles downloading the rendered PDF for an invoice
func (h *InvoiceHandler) ExportPDF(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	doc, err := h.documentService.AssembleByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	data, err := pdf.Render(doc)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+pdf.Filename(doc.InvoiceNumber)+`"`)
	c.Data(200, pdf.ContentType, data)
}

// Print handles sending an invoice to the thermal printer
func (h *InvoiceHandler) Print(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	doc, err := h.documentService.AssembleByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.printerService.PrintDocument(c.Request.Context(), doc); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice sent to printer", nil)
}

// Preview handles assembling a document for an unsaved draft
func (h *InvoiceHandler) Preview(c *gin.Context) {
	var req struct {
		CustomerID      *uuid.UUID        `json:"customer_id"`
		Items           []invoiceItemReq  `json:"items"`
		Date            *time.Time        `json:"date"`
		TemplateID      *uuid.UUID        `json:"template_id"`
		CustomFieldData map[string]string `json:"custom_field_data"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.PreviewInput{
		Items:           toItemInputs(req.Items),
		Date:            req.Date,
		CustomFieldData: req.CustomFieldData,
	}
	if req.CustomerID != nil {
		input.CustomerID = *req.CustomerID
	}
	if req.TemplateID != nil {
		input.TemplateID = *req.TemplateID
	}

	doc, err := h.documentService.AssemblePreview(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Preview assembled successfully", doc)
}
