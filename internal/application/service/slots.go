package service

import (
	"github.com/swipelite/swipelite-api/internal/domain/entity"
	"github.com/swipelite/swipelite-api/internal/domain/enum"
)

// ResolveSlots maps a template's custom fields into positioned, printable
// values. Editable fields take the submitted per-invoice value when one is
// present and non-empty, otherwise the missing-value placeholder. Non-editable
// fields always render their template default, even when empty.
func ResolveSlots(tpl *entity.InvoiceTemplate, submitted map[string]string) entity.ResolvedSlots {
	var slots entity.ResolvedSlots
	if tpl == nil {
		return slots
	}

	for _, field := range tpl.CustomFields {
		resolved := entity.ResolvedField{
			ID:    field.ID.String(),
			Label: field.Label,
			Value: resolveFieldValue(field, submitted),
		}
		switch field.Position {
		case enum.FieldPositionHeader:
			slots.Header = append(slots.Header, resolved)
		case enum.FieldPositionFooter:
			slots.Footer = append(slots.Footer, resolved)
		case enum.FieldPositionAboveItems:
			slots.AboveItems = append(slots.AboveItems, resolved)
		case enum.FieldPositionBelowItems:
			slots.BelowItems = append(slots.BelowItems, resolved)
		}
	}
	return slots
}

func resolveFieldValue(field entity.CustomField, submitted map[string]string) string {
	if !field.IsEditable {
		return field.DefaultValue
	}
	if v, ok := submitted[field.ID.String()]; ok && v != "" {
		return v
	}
	return entity.MissingValuePlaceholder
}
