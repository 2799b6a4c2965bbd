package service

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swipelite/swipelite-api/internal/domain/entity"
	"github.com/swipelite/swipelite-api/internal/domain/enum"
	"github.com/swipelite/swipelite-api/pkg/apperror"
	"github.com/swipelite/swipelite-api/pkg/pagination"
)

func seededIDs(t *testing.T, env *testEnv) (customerID, coffeeID, honeyID uuid.UUID) {
	t.Helper()

	customers, err := env.customers.ListCustomers(env.ctx, pagination.DefaultPagination(), "")
	require.NoError(t, err)
	require.NotEmpty(t, customers.Items)

	products, err := env.products.ListProducts(env.ctx, pagination.DefaultPagination(), "")
	require.NoError(t, err)
	require.Len(t, products.Items, 2)

	return customers.Items[0].ID, products.Items[0].ID, products.Items[1].ID
}

func TestCreateInvoiceComputesTotalsServerSide(t *testing.T) {
	env := newTestEnv(t)
	customerID, coffeeID, honeyID := seededIDs(t, env)

	invoice, err := env.invoices.CreateInvoice(env.ctx, &CreateInvoiceInput{
		CustomerID: customerID,
		Items: []InvoiceItemInput{
			{ProductID: coffeeID, Quantity: 2},
			{ProductID: honeyID, Quantity: 1},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 1220.0, invoice.Subtotal)
	assert.Equal(t, 219.6, invoice.TaxTotal)
	assert.Equal(t, 1439.6, invoice.GrandTotal)
	assert.Equal(t, enum.InvoiceStatusUnpaid, invoice.Status)
	assert.True(t, strings.HasPrefix(invoice.InvoiceNumber, "INV-"))
	assert.Equal(t, entity.BuiltinTemplateID, invoice.TemplateID)
}

func TestCreateInvoiceRequiresCustomer(t *testing.T) {
	env := newTestEnv(t)
	_, coffeeID, _ := seededIDs(t, env)

	_, err := env.invoices.CreateInvoice(env.ctx, &CreateInvoiceInput{
		Items: []InvoiceItemInput{{ProductID: coffeeID, Quantity: 1}},
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestCreateInvoiceRequiresItems(t *testing.T) {
	env := newTestEnv(t)
	customerID, _, _ := seededIDs(t, env)

	_, err := env.invoices.CreateInvoice(env.ctx, &CreateInvoiceInput{
		CustomerID: customerID,
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestLineItemSnapshotsSurviveProductEdits(t *testing.T) {
	env := newTestEnv(t)
	customerID, coffeeID, _ := seededIDs(t, env)

	invoice, err := env.invoices.CreateInvoice(env.ctx, &CreateInvoiceInput{
		CustomerID: customerID,
		Items:      []InvoiceItemInput{{ProductID: coffeeID, Quantity: 1}},
	})
	require.NoError(t, err)
	require.Equal(t, "Premium Coffee Beans", invoice.Items[0].Name)
	require.Equal(t, 450.0, invoice.Items[0].Price)

	newName := "House Blend"
	newPrice := 999.0
	_, err = env.products.UpdateProduct(env.ctx, &UpdateProductInput{
		ID:    coffeeID,
		Name:  &newName,
		Price: &newPrice,
	})
	require.NoError(t, err)

	saved, err := env.invoices.GetInvoice(env.ctx, invoice.ID)
	require.NoError(t, err)
	assert.Equal(t, "Premium Coffee Beans", saved.Items[0].Name)
	assert.Equal(t, 450.0, saved.Items[0].Price)
	assert.Equal(t, 450.0, saved.Subtotal)
}

func TestLineItemSnapshotsSurviveProductDeletion(t *testing.T) {
	env := newTestEnv(t)
	customerID, coffeeID, _ := seededIDs(t, env)

	invoice, err := env.invoices.CreateInvoice(env.ctx, &CreateInvoiceInput{
		CustomerID: customerID,
		Items:      []InvoiceItemInput{{ProductID: coffeeID, Quantity: 1}},
	})
	require.NoError(t, err)

	require.NoError(t, env.products.DeleteProduct(env.ctx, coffeeID))

	saved, err := env.invoices.GetInvoice(env.ctx, invoice.ID)
	require.NoError(t, err)
	assert.Equal(t, "Premium Coffee Beans", saved.Items[0].Name)
}

func TestBuildLineItemCopiesFixedFieldValues(t *testing.T) {
	env := newTestEnv(t)

	product, err := env.products.CreateProduct(env.ctx, &CreateProductInput{
		Name:  "Saree",
		Price: 1500,
		DynamicFields: []entity.ProductDynamicField{
			{Label: "Fabric", DefaultValue: "Silk", IsDynamic: false},
			{Label: "Color", IsDynamic: true},
		},
	})
	require.NoError(t, err)

	item, err := env.invoices.BuildLineItem(env.ctx, InvoiceItemInput{
		ProductID:     product.ID,
		Quantity:      1,
		DynamicValues: map[string]string{"Color": "Red"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Silk", item.DynamicValues["Fabric"])
	assert.Equal(t, "Red", item.DynamicValues["Color"])
}

func TestLineItemFixedValuesSurviveFieldTurningDynamic(t *testing.T) {
	env := newTestEnv(t)
	customerID, _, _ := seededIDs(t, env)

	product, err := env.products.CreateProduct(env.ctx, &CreateProductInput{
		Name:  "Saree",
		Price: 1500,
		DynamicFields: []entity.ProductDynamicField{
			{Label: "Fabric", DefaultValue: "Silk", IsDynamic: false},
		},
	})
	require.NoError(t, err)

	invoice, err := env.invoices.CreateInvoice(env.ctx, &CreateInvoiceInput{
		CustomerID: customerID,
		Items:      []InvoiceItemInput{{ProductID: product.ID, Quantity: 1}},
	})
	require.NoError(t, err)
	require.Equal(t, "Silk", invoice.Items[0].DynamicValues["Fabric"])

	// Making the field per-sale afterwards must not touch saved invoices.
	fields := []entity.ProductDynamicField{
		{Label: "Fabric", IsDynamic: true},
	}
	_, err = env.products.UpdateProduct(env.ctx, &UpdateProductInput{
		ID:            product.ID,
		DynamicFields: &fields,
	})
	require.NoError(t, err)

	saved, err := env.invoices.GetInvoice(env.ctx, invoice.ID)
	require.NoError(t, err)
	assert.Equal(t, "Silk", saved.Items[0].DynamicValues["Fabric"])
}

func TestUpdateInvoiceItemsRecomputesTotals(t *testing.T) {
	env := newTestEnv(t)
	customerID, coffeeID, honeyID := seededIDs(t, env)

	invoice, err := env.invoices.CreateInvoice(env.ctx, &CreateInvoiceInput{
		CustomerID: customerID,
		Items:      []InvoiceItemInput{{ProductID: coffeeID, Quantity: 1}},
	})
	require.NoError(t, err)

	items := []InvoiceItemInput{{ProductID: honeyID, Quantity: 2}}
	updated, err := env.invoices.UpdateInvoice(env.ctx, &UpdateInvoiceInput{
		ID:    invoice.ID,
		Items: &items,
	})
	require.NoError(t, err)

	assert.Equal(t, 640.0, updated.Subtotal)
	assert.Equal(t, 115.2, updated.TaxTotal)
	assert.Equal(t, 755.2, updated.GrandTotal)
}

func TestSetInvoiceStatus(t *testing.T) {
	env := newTestEnv(t)
	customerID, coffeeID, _ := seededIDs(t, env)

	invoice, err := env.invoices.CreateInvoice(env.ctx, &CreateInvoiceInput{
		CustomerID: customerID,
		Items:      []InvoiceItemInput{{ProductID: coffeeID, Quantity: 1}},
	})
	require.NoError(t, err)

	updated, err := env.invoices.SetInvoiceStatus(env.ctx, invoice.ID, enum.InvoiceStatusPaid)
	require.NoError(t, err)
	assert.Equal(t, enum.InvoiceStatusPaid, updated.Status)
}

func TestListInvoicesNewestFirst(t *testing.T) {
	env := newTestEnv(t)
	customerID, coffeeID, _ := seededIDs(t, env)

	first, err := env.invoices.CreateInvoice(env.ctx, &CreateInvoiceInput{
		CustomerID: customerID,
		Items:      []InvoiceItemInput{{ProductID: coffeeID, Quantity: 1}},
	})
	require.NoError(t, err)
	second, err := env.invoices.CreateInvoice(env.ctx, &CreateInvoiceInput{
		CustomerID: customerID,
		Items:      []InvoiceItemInput{{ProductID: coffeeID, Quantity: 2}},
	})
	require.NoError(t, err)

	result, err := env.invoices.ListInvoices(env.ctx, pagination.DefaultPagination(), "", nil)
	require.NoError(t, err)
	require.Len(t, result.Items, 2)
	assert.Equal(t, second.ID, result.Items[0].ID)
	assert.Equal(t, first.ID, result.Items[1].ID)
}

func TestFreeFormLineItem(t *testing.T) {
	env := newTestEnv(t)
	customerID, _, _ := seededIDs(t, env)

	invoice, err := env.invoices.CreateInvoice(env.ctx, &CreateInvoiceInput{
		CustomerID: customerID,
		Items: []InvoiceItemInput{
			{Name: "Gift Wrapping", Quantity: 1, Price: 50},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Gift Wrapping", invoice.Items[0].Name)
	assert.Equal(t, 50.0, invoice.Subtotal)
}
