package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/swipelite/swipelite-api/internal/domain/entity"
	"github.com/swipelite/swipelite-api/pkg/apperror"
	"github.com/swipelite/swipelite-api/pkg/gemini"
)

// ParseService turns free-form billing text into a structured invoice draft
// by calling the language model and matching the result against the catalog
// and customer list
type ParseService struct {
	gemini    *gemini.Client
	products  *ProductService
	customers *CustomerService
}

// NewParseService creates a new parse service
func NewParseService(client *gemini.Client, products *ProductService, customers *CustomerService) *ParseService {
	return &ParseService{gemini: client, products: products, customers: customers}
}

// ParsedLine is one suggested invoice line. When the mentioned product exists
// in the catalog, ProductID is set and the catalog price wins over the parsed
// one; otherwise the line is free-form with the parsed name and price.
type ParsedLine struct {
	ProductID *uuid.UUID `json:"product_id,omitempty"`
	Name      string     `json:"name"`
	Quantity  int        `json:"quantity"`
	Price     float64    `json:"price"`
	Matched   bool       `json:"matched"`
}

// ParseResult is the structured draft extracted from free text.
type ParseResult struct {
	Customer     *entity.Customer `json:"customer,omitempty"`
	CustomerName string           `json:"customer_name,omitempty"`
	Phone        string           `json:"phone,omitempty"`
	Items        []ParsedLine     `json:"items"`
}

// ParseBillingText parses informal billing text such as "2 coffee and one
// honey for John". Model failures surface as a user-visible error, never as a
// silently empty draft.
func (s *ParseService) ParseBillingText(ctx context.Context, text string) (*ParseResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, apperror.NewBadRequestError("Billing text is required")
	}
	if !s.gemini.Configured() {
		return nil, apperror.NewBadRequestError("AI parsing is not configured; set a Gemini API key")
	}

	bill, err := s.gemini.ParseBillingText(ctx, text)
	if err != nil {
		if errors.Is(err, gemini.ErrNotConfigured) {
			return nil, apperror.NewBadRequestError("AI parsing is not configured; set a Gemini API key")
		}
		log.Printf("WARN: billing parse failed: %v", err)
		return nil, apperror.NewBadGatewayError("Could not understand the billing text, please try rephrasing")
	}

	result := &ParseResult{
		CustomerName: bill.CustomerName,
		Phone:        bill.Phone,
		Items:        make([]ParsedLine, 0, len(bill.Items)),
	}

	if bill.CustomerName != "" {
		customer, err := s.customers.FindCustomerByName(ctx, bill.CustomerName)
		if err != nil {
			return nil, err
		}
		result.Customer = customer
	}

	for _, item := range bill.Items {
		line := ParsedLine{
			Name:     item.Name,
			Quantity: int(item.Quantity),
			Price:    item.Price,
		}
		if line.Quantity < 1 {
			line.Quantity = 1
		}

		product, err := s.products.FindProductByName(ctx, item.Name)
		if err != nil {
			return nil, err
		}
		if product != nil {
			id := product.ID
			line.ProductID = &id
			line.Name = product.Name
			line.Price = product.Price
			line.Matched = true
		}

		result.Items = append(result.Items, line)
	}

	return result, nil
}
