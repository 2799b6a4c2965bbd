package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/swipelite/swipelite-api/internal/domain/enum"
)

// BuiltinTemplateID is the reserved identity of the built-in "Standard Tally"
// template. The built-in template cannot be edited or deleted, only selected
// as the active default.
var BuiltinTemplateID = uuid.MustParse("00000000-0000-0000-0000-000000000001")

// InvoiceTemplate describes how an invoice sheet is laid out: base visual
// style, paper format, accent color and an ordered list of custom field slots.
type InvoiceTemplate struct {
	ID           uuid.UUID        `json:"id"`
	Name         string           `json:"name"`
	BaseStyle    enum.BaseStyle   `json:"base_style"`
	PaperFormat  enum.PaperFormat `json:"paper_format"`
	AccentColor  string           `json:"accent_color"`
	CustomFields []CustomField    `json:"custom_fields"`
	IsDefault    bool             `json:"is_default"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// IsBuiltin reports whether this is the protected built-in template.
func (t *InvoiceTemplate) IsBuiltin() bool {
	return t.ID == BuiltinTemplateID
}

// EditableFields returns the template's fields whose values are supplied per
// invoice at billing time, in declaration order.
func (t *InvoiceTemplate) EditableFields() []CustomField {
	var fields []CustomField
	for _, f := range t.CustomFields {
		if f.IsEditable {
			fields = append(fields, f)
		}
	}
	return fields
}

// CustomField is a named, positioned slot on an invoice template. An editable
// field takes its value per invoice; a non-editable field always renders its
// default value.
type CustomField struct {
	ID           uuid.UUID          `json:"id"`
	Label        string             `json:"label"`
	DefaultValue string             `json:"default_value"`
	IsEditable   bool               `json:"is_editable"`
	Position     enum.FieldPosition `json:"position"`
}
