package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/swipelite/swipelite-api/internal/domain/entity"
	"github.com/swipelite/swipelite-api/internal/domain/repository"
)

// DocumentService assembles the renderable document for an invoice. Every
// output channel (JSON preview, PDF, thermal print, Tally export) consumes
// the same assembled structure.
type DocumentService struct {
	profileRepo  repository.ProfileRepository
	customerRepo repository.CustomerRepository
	templateRepo repository.TemplateRepository
	profiles     *ProfileService
	templates    *TemplateService
	invoices     *InvoiceService
}

// NewDocumentService creates a new document service
func NewDocumentService(
	profileRepo repository.ProfileRepository,
	customerRepo repository.CustomerRepository,
	templateRepo repository.TemplateRepository,
	profiles *ProfileService,
	templates *TemplateService,
	invoices *InvoiceService,
) *DocumentService {
	return &DocumentService{
		profileRepo:  profileRepo,
		customerRepo: customerRepo,
		templateRepo: templateRepo,
		profiles:     profiles,
		templates:    templates,
		invoices:     invoices,
	}
}

// Assemble builds the document for a stored invoice. A deleted or unset
// customer yields a missing-customer block, never an error. A deleted profile
// or template falls back to the active profile and default template so old
// invoices stay printable.
func (s *DocumentService) Assemble(ctx context.Context, invoice *entity.Invoice) (*entity.InvoiceDocument, error) {
	profile, err := s.resolveProfile(ctx, invoice.ProfileID)
	if err != nil {
		return nil, err
	}

	template, err := s.resolveTemplate(ctx, invoice.TemplateID)
	if err != nil {
		return nil, err
	}

	customerBlock := entity.CustomerBlock{Missing: true}
	if invoice.CustomerID != nil {
		customer, err := s.customerRepo.GetByID(ctx, *invoice.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer != nil {
			customerBlock = entity.CustomerBlock{
				Name:    customer.Name,
				Phone:   customer.Phone,
				Address: customer.Address,
				GSTIN:   customer.GSTIN,
			}
		}
	}

	lines := make([]entity.DocumentLine, 0, len(invoice.Items))
	for _, item := range invoice.Items {
		lines = append(lines, entity.DocumentLine{
			Name:          item.Name,
			Quantity:      item.Quantity,
			Price:         item.Price,
			Amount:        item.Amount(),
			DynamicValues: item.DynamicValues,
		})
	}

	return &entity.InvoiceDocument{
		InvoiceNumber: invoice.InvoiceNumber,
		Date:          invoice.Date,
		Seller: entity.SellerBlock{
			Name:    profile.Name,
			Address: profile.Address,
			GSTIN:   profile.GSTIN,
			Phone:   profile.Phone,
			Email:   profile.Email,
		},
		Customer: customerBlock,
		Slots:    ResolveSlots(template, invoice.CustomFieldData),
		Lines:    lines,
		Totals: entity.Totals{
			Subtotal:   invoice.Subtotal,
			TaxTotal:   invoice.TaxTotal,
			GrandTotal: invoice.GrandTotal,
		},
		BaseStyle:   template.BaseStyle,
		PaperFormat: template.PaperFormat,
		AccentColor: template.AccentColor,
	}, nil
}

// AssembleByID assembles the document for the invoice with the given id
func (s *DocumentService) AssembleByID(ctx context.Context, id uuid.UUID) (*entity.InvoiceDocument, error) {
	invoice, err := s.invoices.GetInvoice(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.Assemble(ctx, invoice)
}

// PreviewInput describes a draft invoice to render without persisting it.
// The customer may be absent, which is the normal state while composing.
type PreviewInput struct {
	CustomerID      uuid.UUID
	Items           []InvoiceItemInput
	Date            *time.Time
	TemplateID      uuid.UUID
	CustomFieldData map[string]string
}

// AssemblePreview builds a document from an unsaved draft. Unlike invoice
// creation, no customer or item count guard applies here.
func (s *DocumentService) AssemblePreview(ctx context.Context, input *PreviewInput) (*entity.InvoiceDocument, error) {
	items := make([]entity.LineItem, 0, len(input.Items))
	for _, in := range input.Items {
		item, err := s.invoices.BuildLineItem(ctx, in)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	totals := ComputeTotals(items)
	date := time.Now().UTC()
	if input.Date != nil {
		date = input.Date.UTC()
	}

	invoice := &entity.Invoice{
		InvoiceNumber:   NextInvoiceNumber(),
		Date:            date,
		Items:           items,
		Subtotal:        totals.Subtotal,
		TaxTotal:        totals.TaxTotal,
		GrandTotal:      totals.GrandTotal,
		TemplateID:      input.TemplateID,
		CustomFieldData: input.CustomFieldData,
	}
	if input.CustomerID != uuid.Nil {
		customerID := input.CustomerID
		invoice.CustomerID = &customerID
	}

	profile, err := s.profiles.GetActiveProfile(ctx)
	if err != nil {
		return nil, err
	}
	invoice.ProfileID = profile.ID

	return s.Assemble(ctx, invoice)
}

func (s *DocumentService) resolveProfile(ctx context.Context, id uuid.UUID) (*entity.BusinessProfile, error) {
	if id != uuid.Nil {
		profile, err := s.profileRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if profile != nil {
			return profile, nil
		}
	}
	return s.profiles.GetActiveProfile(ctx)
}

func (s *DocumentService) resolveTemplate(ctx context.Context, id uuid.UUID) (*entity.InvoiceTemplate, error) {
	if id != uuid.Nil {
		template, err := s.templateRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if template != nil {
			return template, nil
		}
	}
	return s.templates.GetDefaultTemplate(ctx)
}
