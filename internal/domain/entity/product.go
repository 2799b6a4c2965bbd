package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product represents a product in the inventory
type Product struct {
	ID            uuid.UUID             `json:"id"`
	Name          string                `json:"name"`
	Price         float64               `json:"price"`
	SKU           string                `json:"sku"`
	Stock         int                   `json:"stock"`
	Category      string                `json:"category"`
	DynamicFields []ProductDynamicField `json:"dynamic_fields,omitempty"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

// ProductDynamicField is a per-product attribute attached to line items at
// billing time. A dynamic field must be filled in during the sale (e.g. a
// serial number); a fixed field carries the same default value on every sale.
type ProductDynamicField struct {
	Label        string `json:"label"`
	DefaultValue string `json:"default_value"`
	IsDynamic    bool   `json:"is_dynamic"`
}

// FixedFieldValues returns the label->value map of the product's non-dynamic
// fields. These are copied onto a line item the moment the product is added
// to a sale; editing the product later does not touch saved line items.
func (p *Product) FixedFieldValues() map[string]string {
	var values map[string]string
	for _, f := range p.DynamicFields {
		if f.IsDynamic {
			continue
		}
		if values == nil {
			values = make(map[string]string)
		}
		values[f.Label] = f.DefaultValue
	}
	return values
}

// DynamicFieldLabels returns the labels of fields that must be supplied per sale.
func (p *Product) DynamicFieldLabels() []string {
	var labels []string
	for _, f := range p.DynamicFields {
		if f.IsDynamic {
			labels = append(labels, f.Label)
		}
	}
	return labels
}
