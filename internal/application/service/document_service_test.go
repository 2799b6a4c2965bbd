package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swipelite/swipelite-api/internal/domain/entity"
	"github.com/swipelite/swipelite-api/internal/domain/enum"
)

func TestAssembleStoredInvoice(t *testing.T) {
	env := newTestEnv(t)
	customerID, coffeeID, _ := seededIDs(t, env)

	invoice, err := env.invoices.CreateInvoice(env.ctx, &CreateInvoiceInput{
		CustomerID: customerID,
		Items:      []InvoiceItemInput{{ProductID: coffeeID, Quantity: 2}},
	})
	require.NoError(t, err)

	doc, err := env.documents.AssembleByID(env.ctx, invoice.ID)
	require.NoError(t, err)

	assert.Equal(t, invoice.InvoiceNumber, doc.InvoiceNumber)
	assert.Equal(t, "Main Business Hub", doc.Seller.Name)
	assert.False(t, doc.Customer.Missing)
	assert.Equal(t, "John Doe", doc.Customer.Name)
	require.Len(t, doc.Lines, 1)
	assert.Equal(t, 900.0, doc.Lines[0].Amount)
	assert.Equal(t, 900.0, doc.Totals.Subtotal)
	assert.Equal(t, enum.BaseStyleTally, doc.BaseStyle)
}

func TestAssembleWithDeletedCustomer(t *testing.T) {
	env := newTestEnv(t)
	customerID, coffeeID, _ := seededIDs(t, env)

	invoice, err := env.invoices.CreateInvoice(env.ctx, &CreateInvoiceInput{
		CustomerID: customerID,
		Items:      []InvoiceItemInput{{ProductID: coffeeID, Quantity: 1}},
	})
	require.NoError(t, err)

	require.NoError(t, env.customers.DeleteCustomer(env.ctx, customerID))

	doc, err := env.documents.AssembleByID(env.ctx, invoice.ID)
	require.NoError(t, err)
	assert.True(t, doc.Customer.Missing)
}

func TestAssemblePreviewWithoutCustomer(t *testing.T) {
	env := newTestEnv(t)
	_, coffeeID, _ := seededIDs(t, env)

	doc, err := env.documents.AssemblePreview(env.ctx, &PreviewInput{
		Items: []InvoiceItemInput{{ProductID: coffeeID, Quantity: 1}},
	})
	require.NoError(t, err)

	assert.True(t, doc.Customer.Missing)
	assert.Equal(t, 450.0, doc.Totals.Subtotal)
	assert.Equal(t, 531.0, doc.Totals.GrandTotal)
}

func TestAssembleResolvesTemplateSlots(t *testing.T) {
	env := newTestEnv(t)
	customerID, coffeeID, _ := seededIDs(t, env)

	tpl, err := env.templates.CreateTemplate(env.ctx, &CreateTemplateInput{
		Name: "With Slots",
		CustomFields: []entity.CustomField{
			{Label: "PO Number", IsEditable: true, Position: enum.FieldPositionHeader},
			{Label: "Terms", DefaultValue: "Net 30", Position: enum.FieldPositionFooter},
		},
	})
	require.NoError(t, err)

	poFieldID := tpl.CustomFields[0].ID
	invoice, err := env.invoices.CreateInvoice(env.ctx, &CreateInvoiceInput{
		CustomerID:      customerID,
		Items:           []InvoiceItemInput{{ProductID: coffeeID, Quantity: 1}},
		TemplateID:      tpl.ID,
		CustomFieldData: map[string]string{poFieldID.String(): "PO-1001"},
	})
	require.NoError(t, err)

	doc, err := env.documents.AssembleByID(env.ctx, invoice.ID)
	require.NoError(t, err)

	require.Len(t, doc.Slots.Header, 1)
	assert.Equal(t, "PO-1001", doc.Slots.Header[0].Value)
	require.Len(t, doc.Slots.Footer, 1)
	assert.Equal(t, "Net 30", doc.Slots.Footer[0].Value)
}

func TestAssembleWithDeletedTemplateFallsBack(t *testing.T) {
	env := newTestEnv(t)
	customerID, coffeeID, _ := seededIDs(t, env)

	tpl, err := env.templates.CreateTemplate(env.ctx, &CreateTemplateInput{Name: "Doomed"})
	require.NoError(t, err)

	invoice, err := env.invoices.CreateInvoice(env.ctx, &CreateInvoiceInput{
		CustomerID: customerID,
		Items:      []InvoiceItemInput{{ProductID: coffeeID, Quantity: 1}},
		TemplateID: tpl.ID,
	})
	require.NoError(t, err)

	require.NoError(t, env.templates.DeleteTemplate(env.ctx, tpl.ID))

	doc, err := env.documents.AssembleByID(env.ctx, invoice.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.BaseStyleTally, doc.BaseStyle)
}
