package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/swipelite/swipelite-api/internal/application/service"
	"github.com/swipelite/swipelite-api/internal/domain/entity"
	"github.com/swipelite/swipelite-api/internal/domain/enum"
	"github.com/swipelite/swipelite-api/internal/presentation/http/dto/response"
)

// TemplateHandler handles invoice template HTTP requests
type TemplateHandler struct {
	templateService *service.TemplateService
}

// NewTemplateHandler creates a new template handler
func NewTemplateHandler(templateService *service.TemplateService) *TemplateHandler {
	return &TemplateHandler{templateService: templateService}
}

// customFieldReq mirrors a template custom field slot in requests. The id is
// optional; missing ids are assigned server-side.
type customFieldReq struct {
	ID           *uuid.UUID         `json:"id"`
	Label        string             `json:"label" binding:"required"`
	DefaultValue string             `json:"default_value"`
	IsEditable   bool               `json:"is_editable"`
	Position     enum.FieldPosition `json:"position"`
}

func toCustomFields(reqs []customFieldReq) []entity.CustomField {
	fields := make([]entity.CustomField, 0, len(reqs))
	for _, r := range reqs {
		field := entity.CustomField{
			Label:        r.Label,
			DefaultValue: r.DefaultValue,
			IsEditable:   r.IsEditable,
			Position:     r.Position,
		}
		if r.ID != nil {
			field.ID = *r.ID
		}
		fields = append(fields, field)
	}
	return fields
}

// List handles listing all invoice templates
func (h *TemplateHandler) List(c *gin.Context) {
	templates, err := h.templateService.ListTemplates(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Templates retrieved successfully", templates)
}

// Create handles creating a template
func (h *TemplateHandler) Create(c *gin.Context) {
	var req struct {
		Name         string           `json:"name" binding:"required"`
		BaseStyle    enum.BaseStyle   `json:"base_style"`
		PaperFormat  enum.PaperFormat `json:"paper_format"`
		AccentColor  string           `json:"accent_color"`
		CustomFields []customFieldReq `json:"custom_fields"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	template, err := h.templateService.CreateTemplate(c.Request.Context(), &service.CreateTemplateInput{
		Name:         req.Name,
		BaseStyle:    req.BaseStyle,
		PaperFormat:  req.PaperFormat,
		AccentColor:  req.AccentColor,
		CustomFields: toCustomFields(req.CustomFields),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Template created successfully", template)
}

// Get handles getting a single template
func (h *TemplateHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid template ID")
		return
	}

	template, err := h.templateService.GetTemplate(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Template retrieved successfully", template)
}

// GetDefault handles getting the default template
func (h *TemplateHandler) GetDefault(c *gin.Context) {
	template, err := h.templateService.GetDefaultTemplate(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Default template retrieved successfully", template)
}

// SetDefault handles marking a template as default
func (h *TemplateHandler) SetDefault(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid template ID")
		return
	}

	template, err := h.templateService.SetDefaultTemplate(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Template set as default", template)
}

// Update handles updating a template
func (h *TemplateHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid template ID")
		return
	}

	var req struct {
		Name         *string           `json:"name"`
		BaseStyle    *enum.BaseStyle   `json:"base_style"`
		PaperFormat  *enum.PaperFormat `json:"paper_format"`
		AccentColor  *string           `json:"accent_color"`
		CustomFields *[]customFieldReq `json:"custom_fields"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateTemplateInput{
		ID:          id,
		Name:        req.Name,
		BaseStyle:   req.BaseStyle,
		PaperFormat: req.PaperFormat,
		AccentColor: req.AccentColor,
	}
	if req.CustomFields != nil {
		fields := toCustomFields(*req.CustomFields)
		input.CustomFields = &fields
	}

	template, err := h.templateService.UpdateTemplate(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Template updated successfully", template)
}

// Delete handles deleting a template
func (h *TemplateHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid template ID")
		return
	}

	if err := h.templateService.DeleteTemplate(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
