package pdf

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swipelite/swipelite-api/internal/domain/entity"
	"github.com/swipelite/swipelite-api/internal/domain/enum"
)

func sampleDocument() *entity.InvoiceDocument {
	return &entity.InvoiceDocument{
		InvoiceNumber: "INV-123456",
		Date:          time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Seller: entity.SellerBlock{
			Name:    "Main Business Hub",
			Address: "Sector 44, Gurgaon",
			GSTIN:   "06AAAAA0000A1Z5",
		},
		Customer: entity.CustomerBlock{
			Name:  "John Doe",
			Phone: "9876543210",
		},
		Lines: []entity.DocumentLine{
			{Name: "Premium Coffee Beans", Quantity: 2, Price: 450, Amount: 900},
		},
		Totals: entity.Totals{
			Subtotal:   900,
			TaxTotal:   162,
			GrandTotal: 1062,
		},
		BaseStyle:   enum.BaseStyleTally,
		PaperFormat: enum.PaperFormatA4,
		AccentColor: "#4f46e5",
	}
}

func TestRenderProducesPDF(t *testing.T) {
	out, err := Render(sampleDocument())
	require.NoError(t, err)

	require.NotEmpty(t, out)
	assert.True(t, strings.HasPrefix(string(out), "%PDF-"))
}

func TestRenderMissingCustomer(t *testing.T) {
	doc := sampleDocument()
	doc.Customer = entity.CustomerBlock{Missing: true}

	out, err := Render(doc)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestRenderThermalFormat(t *testing.T) {
	doc := sampleDocument()
	doc.PaperFormat = enum.PaperFormatThermal

	out, err := Render(doc)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "%PDF-"))
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "Invoice_INV-123456.pdf", Filename("INV-123456"))
}
