package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/swipelite/swipelite-api/internal/domain/enum"
)

// FlatTaxRatePercent is the single flat GST rate applied to every invoice.
// Line items carry their own TaxRate field but the aggregate computation
// intentionally ignores it; see LineItem.TaxRate.
const FlatTaxRatePercent = 18

// LineItem is one product entry on an invoice. Name and price are snapshots
// copied from the product at add-time and independently editable thereafter;
// deleting or editing the product never touches saved line items.
type LineItem struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"`
	// TaxRate is stored per item but not used in the aggregate: totals apply
	// the flat 18% rate. Kept for data compatibility, not multi-rate tax.
	TaxRate       float64           `json:"tax_rate"`
	DynamicValues map[string]string `json:"dynamic_values,omitempty"`
}

// Amount returns price x quantity for this line.
func (li *LineItem) Amount() float64 {
	return li.Price * float64(li.Quantity)
}

// Invoice represents a finalized (or re-edited) sale
type Invoice struct {
	ID              uuid.UUID          `json:"id"`
	InvoiceNumber   string             `json:"invoice_number"`
	Date            time.Time          `json:"date"`
	CustomerID      *uuid.UUID         `json:"customer_id,omitempty"`
	Items           []LineItem         `json:"items"`
	Subtotal        float64            `json:"subtotal"`
	TaxTotal        float64            `json:"tax_total"`
	GrandTotal      float64            `json:"grand_total"`
	Status          enum.InvoiceStatus `json:"status"`
	ProfileID       uuid.UUID          `json:"profile_id"`
	TemplateID      uuid.UUID          `json:"template_id"`
	CustomFieldData map[string]string  `json:"custom_field_data,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

// Totals holds the computed money aggregate of a set of line items.
type Totals struct {
	Subtotal   float64 `json:"subtotal"`
	TaxTotal   float64 `json:"tax_total"`
	GrandTotal float64 `json:"grand_total"`
}
