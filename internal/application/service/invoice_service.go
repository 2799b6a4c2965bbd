package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/swipelite/swipelite-api/internal/domain/entity"
	"github.com/swipelite/swipelite-api/internal/domain/enum"
	"github.com/swipelite/swipelite-api/internal/domain/repository"
	"github.com/swipelite/swipelite-api/pkg/apperror"
	"github.com/swipelite/swipelite-api/pkg/pagination"
)

// InvoiceService handles invoice composition and lifecycle
type InvoiceService struct {
	invoiceRepo  repository.InvoiceRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	profiles     *ProfileService
	templates    *TemplateService
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(
	invoiceRepo repository.InvoiceRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	profiles *ProfileService,
	templates *TemplateService,
) *InvoiceService {
	return &InvoiceService{
		invoiceRepo:  invoiceRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		profiles:     profiles,
		templates:    templates,
	}
}

// InvoiceItemInput represents one invoice line in a create or update request.
// When ProductID is set, name and price are snapshot from the catalog and the
// item's fixed field values are copied in. Without a ProductID the line is
// free-form and uses the given name and price as-is.
type InvoiceItemInput struct {
	ProductID     uuid.UUID
	Name          string
	Quantity      int
	Price         float64
	DynamicValues map[string]string
}

// BuildLineItem converts an item input into a stored line item. Catalog
// lookups happen here so later product edits never alter saved invoices.
func (s *InvoiceService) BuildLineItem(ctx context.Context, input InvoiceItemInput) (entity.LineItem, error) {
	item := entity.LineItem{
		Quantity: input.Quantity,
		TaxRate:  entity.FlatTaxRatePercent,
	}
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	if input.ProductID == uuid.Nil {
		if input.Name == "" {
			return entity.LineItem{}, apperror.NewBadRequestError("Invoice item needs a product or a name")
		}
		item.Name = input.Name
		item.Price = input.Price
		item.DynamicValues = input.DynamicValues
		return item, nil
	}

	product, err := s.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		return entity.LineItem{}, err
	}
	if product == nil {
		return entity.LineItem{}, apperror.NewNotFoundError("Product")
	}

	item.ProductID = product.ID
	item.Name = product.Name
	item.Price = product.Price

	// Fixed field values come from the catalog; per-sale values for dynamic
	// labels are taken from the request.
	values := product.FixedFieldValues()
	for _, label := range product.DynamicFieldLabels() {
		v, ok := input.DynamicValues[label]
		if !ok || v == "" {
			continue
		}
		if values == nil {
			values = make(map[string]string)
		}
		values[label] = v
	}
	if len(values) > 0 {
		item.DynamicValues = values
	}

	return item, nil
}

// CreateInvoiceInput represents the create invoice input
type CreateInvoiceInput struct {
	CustomerID      uuid.UUID
	Items           []InvoiceItemInput
	Date            *time.Time
	TemplateID      uuid.UUID
	CustomFieldData map[string]string
}

// CreateInvoice composes and stores a new invoice. A customer and at least
// one item are required. Totals are always computed here, never taken from
// the request.
func (s *InvoiceService) CreateInvoice(ctx context.Context, input *CreateInvoiceInput) (*entity.Invoice, error) {
	if input.CustomerID == uuid.Nil {
		return nil, apperror.NewBadRequestError("Select a customer before saving the invoice")
	}
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("Add at least one item before saving the invoice")
	}

	customer, err := s.customerRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	profile, err := s.profiles.GetActiveProfile(ctx)
	if err != nil {
		return nil, err
	}

	templateID := input.TemplateID
	if templateID == uuid.Nil {
		tpl, err := s.templates.GetDefaultTemplate(ctx)
		if err != nil {
			return nil, err
		}
		templateID = tpl.ID
	} else {
		if _, err := s.templates.GetTemplate(ctx, templateID); err != nil {
			return nil, err
		}
	}

	items := make([]entity.LineItem, 0, len(input.Items))
	for _, in := range input.Items {
		item, err := s.BuildLineItem(ctx, in)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	date := time.Now().UTC()
	if input.Date != nil {
		date = input.Date.UTC()
	}

	totals := ComputeTotals(items)
	customerID := input.CustomerID
	invoice := &entity.Invoice{
		InvoiceNumber:   NextInvoiceNumber(),
		Date:            date,
		CustomerID:      &customerID,
		Items:           items,
		Subtotal:        totals.Subtotal,
		TaxTotal:        totals.TaxTotal,
		GrandTotal:      totals.GrandTotal,
		Status:          enum.InvoiceStatusUnpaid,
		ProfileID:       profile.ID,
		TemplateID:      templateID,
		CustomFieldData: input.CustomFieldData,
	}

	if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
		return nil, err
	}

	return invoice, nil
}

// GetInvoice retrieves an invoice by ID
func (s *InvoiceService) GetInvoice(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	return invoice, nil
}

// ListInvoices lists invoices newest first, optionally filtered by a
// case-insensitive substring match on invoice number, and optionally by status
func (s *InvoiceService) ListInvoices(ctx context.Context, params *pagination.PaginationParams, search string, status *enum.InvoiceStatus) (*pagination.PaginatedResult[entity.Invoice], error) {
	invoices, err := s.invoiceRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	if search != "" || status != nil {
		needle := strings.ToLower(search)
		filtered := make([]entity.Invoice, 0, len(invoices))
		for _, inv := range invoices {
			if search != "" && !strings.Contains(strings.ToLower(inv.InvoiceNumber), needle) {
				continue
			}
			if status != nil && inv.Status != *status {
				continue
			}
			filtered = append(filtered, inv)
		}
		invoices = filtered
	}

	return pagination.Slice(invoices, params), nil
}

// UpdateInvoiceInput represents the update invoice input. Replacing Items
// recomputes the totals.
type UpdateInvoiceInput struct {
	ID              uuid.UUID
	CustomerID      *uuid.UUID
	Items           *[]InvoiceItemInput
	Date            *time.Time
	TemplateID      *uuid.UUID
	CustomFieldData *map[string]string
}

// UpdateInvoice updates an invoice
func (s *InvoiceService) UpdateInvoice(ctx context.Context, input *UpdateInvoiceInput) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}

	if input.CustomerID != nil {
		if *input.CustomerID == uuid.Nil {
			return nil, apperror.NewBadRequestError("Select a customer before saving the invoice")
		}
		customer, err := s.customerRepo.GetByID(ctx, *input.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, apperror.NewNotFoundError("Customer")
		}
		invoice.CustomerID = input.CustomerID
	}

	if input.Items != nil {
		if len(*input.Items) == 0 {
			return nil, apperror.NewBadRequestError("Add at least one item before saving the invoice")
		}
		items := make([]entity.LineItem, 0, len(*input.Items))
		for _, in := range *input.Items {
			item, err := s.BuildLineItem(ctx, in)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		invoice.Items = items

		totals := ComputeTotals(items)
		invoice.Subtotal = totals.Subtotal
		invoice.TaxTotal = totals.TaxTotal
		invoice.GrandTotal = totals.GrandTotal
	}

	if input.Date != nil {
		invoice.Date = input.Date.UTC()
	}
	if input.TemplateID != nil {
		if _, err := s.templates.GetTemplate(ctx, *input.TemplateID); err != nil {
			return nil, err
		}
		invoice.TemplateID = *input.TemplateID
	}
	if input.CustomFieldData != nil {
		invoice.CustomFieldData = *input.CustomFieldData
	}

	if err := s.invoiceRepo.Update(ctx, invoice); err != nil {
		return nil, err
	}

	return invoice, nil
}

// SetInvoiceStatus changes the payment status of an invoice
func (s *InvoiceService) SetInvoiceStatus(ctx context.Context, id uuid.UUID, status enum.InvoiceStatus) (*entity.Invoice, error) {
	if !status.Valid() {
		return nil, apperror.NewBadRequestError("Invalid invoice status")
	}

	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}

	invoice.Status = status
	if err := s.invoiceRepo.Update(ctx, invoice); err != nil {
		return nil, err
	}

	return invoice, nil
}

// DeleteInvoice deletes an invoice
func (s *InvoiceService) DeleteInvoice(ctx context.Context, id uuid.UUID) error {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if invoice == nil {
		return apperror.NewNotFoundError("Invoice")
	}

	return s.invoiceRepo.Delete(ctx, id)
}

// NextInvoiceNumber generates a display number from the current timestamp.
// Numbers are not checked for uniqueness; collisions are tolerated the same
// way duplicate manual numbering would be.
func NextInvoiceNumber() string {
	ms := time.Now().UnixMilli()
	return fmt.Sprintf("INV-%06d", ms%1000000)
}
