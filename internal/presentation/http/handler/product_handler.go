package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/swipelite/swipelite-api/internal/application/service"
	"github.com/swipelite/swipelite-api/internal/domain/entity"
	"github.com/swipelite/swipelite-api/internal/presentation/http/dto/response"
	"github.com/swipelite/swipelite-api/pkg/pagination"
)

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	productService *service.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// dynamicFieldReq mirrors the per-product field definition in requests.
type dynamicFieldReq struct {
	Label        string `json:"label" binding:"required"`
	DefaultValue string `json:"default_value"`
	IsDynamic    bool   `json:"is_dynamic"`
}

func toDynamicFields(reqs []dynamicFieldReq) []entity.ProductDynamicField {
	fields := make([]entity.ProductDynamicField, 0, len(reqs))
	for _, r := range reqs {
		fields = append(fields, entity.ProductDynamicField{
			Label:        r.Label,
			DefaultValue: r.DefaultValue,
			IsDynamic:    r.IsDynamic,
		})
	}
	return fields
}

// List handles listing products
func (h *ProductHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))
	search := c.Query("search")

	params := &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	}

	result, err := h.productService.ListProducts(c.Request.Context(), params, search)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Products retrieved successfully", result)
}

// Create handles creating a product
func (h *ProductHandler) Create(c *gin.Context) {
	var req struct {
		Name          string            `json:"name" binding:"required"`
		Price         float64           `json:"price"`
		SKU           string            `json:"sku"`
		Stock         int               `json:"stock"`
		Category      string            `json:"category"`
		DynamicFields []dynamicFieldReq `json:"dynamic_fields"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), &service.CreateProductInput{
		Name:          req.Name,
		Price:         req.Price,
		SKU:           req.SKU,
		Stock:         req.Stock,
		Category:      req.Category,
		DynamicFields: toDynamicFields(req.DynamicFields),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Product created successfully", product)
}

// Get handles getting a single product
func (h *ProductHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	product, err := h.productService.GetProduct(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product retrieved successfully", product)
}

// Update handles updating a product
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	var req struct {
		Name          *string            `json:"name"`
		Price         *float64           `json:"price"`
		SKU           *string            `json:"sku"`
		Stock         *int               `json:"stock"`
		Category      *string            `json:"category"`
		DynamicFields *[]dynamicFieldReq `json:"dynamic_fields"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateProductInput{
		ID:       id,
		Name:     req.Name,
		Price:    req.Price,
		SKU:      req.SKU,
		Stock:    req.Stock,
		Category: req.Category,
	}
	if req.DynamicFields != nil {
		fields := toDynamicFields(*req.DynamicFields)
		input.DynamicFields = &fields
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product updated successfully", product)
}

// Delete handles deleting a product
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
