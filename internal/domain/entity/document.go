package entity

import (
	"time"

	"github.com/swipelite/swipelite-api/internal/domain/enum"
)

// MissingValuePlaceholder is rendered for editable custom fields that were
// left blank at billing time.
const MissingValuePlaceholder = "—"

// SellerBlock holds the business profile details printed at the top of the
// invoice sheet.
type SellerBlock struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	GSTIN   string `json:"gstin"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// CustomerBlock holds the bill-to details. Missing marks the legitimate
// transient state of an invoice composed before a customer is selected;
// renderers show a "no customer selected" notice instead of failing.
type CustomerBlock struct {
	Missing bool   `json:"missing"`
	Name    string `json:"name,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	GSTIN   string `json:"gstin,omitempty"`
}

// ResolvedField is a template custom field with its value resolved for one
// invoice: the submitted value for editable fields (or the placeholder when
// blank), the default value verbatim for fixed fields.
type ResolvedField struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// ResolvedSlots partitions a template's resolved custom fields by placement
// region, preserving the template's declaration order within each region.
type ResolvedSlots struct {
	Header     []ResolvedField `json:"header"`
	Footer     []ResolvedField `json:"footer"`
	AboveItems []ResolvedField `json:"above_items"`
	BelowItems []ResolvedField `json:"below_items"`
}

// DocumentLine is a priced line on the assembled document.
type DocumentLine struct {
	Name          string            `json:"name"`
	Quantity      int               `json:"quantity"`
	Price         float64           `json:"price"`
	Amount        float64           `json:"amount"`
	DynamicValues map[string]string `json:"dynamic_values,omitempty"`
}

// InvoiceDocument is a value object, not a stored entity: the single
// renderable structure consumed by every presentation channel (JSON preview,
// PDF rasterization, thermal printing and Tally export) so that all channels
// show the same data.
type InvoiceDocument struct {
	InvoiceNumber string           `json:"invoice_number"`
	Date          time.Time        `json:"date"`
	Seller        SellerBlock      `json:"seller"`
	Customer      CustomerBlock    `json:"customer"`
	Slots         ResolvedSlots    `json:"slots"`
	Lines         []DocumentLine   `json:"lines"`
	Totals        Totals           `json:"totals"`
	BaseStyle     enum.BaseStyle   `json:"base_style"`
	PaperFormat   enum.PaperFormat `json:"paper_format"`
	AccentColor   string           `json:"accent_color"`
}
