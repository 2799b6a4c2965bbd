package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swipelite/swipelite-api/internal/domain/entity"
	"github.com/swipelite/swipelite-api/pkg/apperror"
	"github.com/swipelite/swipelite-api/pkg/printer"
)

func testDocument() *entity.InvoiceDocument {
	return &entity.InvoiceDocument{
		InvoiceNumber: "INV-123456",
		Date:          time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Seller:        entity.SellerBlock{Name: "Main Business Hub", GSTIN: "06AAAAA0000A1Z5"},
		Customer:      entity.CustomerBlock{Name: "John Doe"},
		Lines: []entity.DocumentLine{
			{Name: "Premium Coffee Beans", Quantity: 2, Price: 450, Amount: 900},
		},
		Totals: entity.Totals{Subtotal: 900, TaxTotal: 162, GrandTotal: 1062},
	}
}

func TestFormatDocument(t *testing.T) {
	out := FormatDocument(testDocument())

	require.NotEmpty(t, out)
	assert.True(t, bytes.Contains(out, []byte("Main Business Hub")))
	assert.True(t, bytes.Contains(out, []byte("INV-123456")))
	assert.True(t, bytes.Contains(out, []byte("15/03/2024")))
	assert.True(t, bytes.Contains(out, []byte("2x Premium Coffee Beans")))
	assert.True(t, bytes.Contains(out, []byte("1062.00")))
	assert.True(t, bytes.Contains(out, []byte("GST (18%)")))
}

func TestFormatDocumentMissingCustomer(t *testing.T) {
	doc := testDocument()
	doc.Customer = entity.CustomerBlock{Missing: true}

	out := FormatDocument(doc)

	assert.True(t, bytes.Contains(out, []byte("Customer: -")))
	assert.False(t, bytes.Contains(out, []byte("John Doe")))
}

func TestPrintWithoutPrinterRejected(t *testing.T) {
	svc := NewPrinterService(printer.NewNullPrinter())
	ctx := context.Background()

	assert.False(t, svc.GetStatus(ctx).Connected)

	err := svc.PrintDocument(ctx, testDocument())
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)

	err = svc.TestPrint(ctx)
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}
