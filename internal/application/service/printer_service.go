package service

import (
	"context"
	"sort"
	"strconv"
	"time"

	"github.com/swipelite/swipelite-api/internal/domain/entity"
	"github.com/swipelite/swipelite-api/pkg/apperror"
	"github.com/swipelite/swipelite-api/pkg/printer"
)

// PrinterService renders assembled invoice documents as ESC/POS jobs and
// sends them to the configured thermal printer
type PrinterService struct {
	printer printer.Printer
}

// NewPrinterService creates a new printer service
func NewPrinterService(p printer.Printer) *PrinterService {
	return &PrinterService{printer: p}
}

// PrinterStatus reports the configured printer connection state.
type PrinterStatus struct {
	Connected bool `json:"connected"`
}

// GetStatus returns the printer connection state
func (s *PrinterService) GetStatus(ctx context.Context) *PrinterStatus {
	return &PrinterStatus{Connected: s.printer.IsConnected()}
}

// PrintDocument renders the document to ESC/POS and sends it to the printer
func (s *PrinterService) PrintDocument(ctx context.Context, doc *entity.InvoiceDocument) error {
	if !s.printer.IsConnected() {
		return apperror.NewBadRequestError("No printer connected")
	}
	if err := s.printer.Print(FormatDocument(doc)); err != nil {
		return apperror.NewBadGatewayError("Print job failed: " + err.Error())
	}
	return nil
}

// TestPrint sends a short alignment page to verify connectivity
func (s *PrinterService) TestPrint(ctx context.Context) error {
	if !s.printer.IsConnected() {
		return apperror.NewBadRequestError("No printer connected")
	}

	page := printer.NewDocument(0).
		SetAlign(printer.AlignCenter).
		SetBold(true).
		Text("PRINTER TEST").
		SetBold(false).
		Text(time.Now().Format("02/01/2006 15:04")).
		Separator('-').
		SetAlign(printer.AlignLeft).
		Text("Left").
		SetAlign(printer.AlignCenter).
		Text("Center").
		SetAlign(printer.AlignRight).
		Text("Right").
		FeedLines(3).
		Cut()

	if err := s.printer.Print(page.Bytes()); err != nil {
		return apperror.NewBadGatewayError("Print job failed: " + err.Error())
	}
	return nil
}

// FormatDocument renders an assembled invoice document as an ESC/POS byte
// stream for 80mm thermal paper.
func FormatDocument(doc *entity.InvoiceDocument) []byte {
	d := printer.NewDocument(0)

	d.SetAlign(printer.AlignCenter).
		SetFontSize(printer.FontDouble).
		SetBold(true).
		Text(doc.Seller.Name).
		SetBold(false).
		SetFontSize(printer.FontNormal)
	if doc.Seller.Address != "" {
		d.Text(doc.Seller.Address)
	}
	if doc.Seller.GSTIN != "" {
		d.Text("GSTIN: " + doc.Seller.GSTIN)
	}
	if doc.Seller.Phone != "" {
		d.Text("Ph: " + doc.Seller.Phone)
	}
	for _, f := range doc.Slots.Header {
		d.Text(f.Label + ": " + f.Value)
	}

	d.Separator('=').
		SetAlign(printer.AlignLeft).
		KeyValue("Invoice", doc.InvoiceNumber).
		KeyValue("Date", doc.Date.Format("02/01/2006"))

	if doc.Customer.Missing {
		d.Text("Customer: -")
	} else {
		d.KeyValue("Customer", doc.Customer.Name)
		if doc.Customer.Phone != "" {
			d.KeyValue("Phone", doc.Customer.Phone)
		}
	}

	for _, f := range doc.Slots.AboveItems {
		d.Text(f.Label + ": " + f.Value)
	}

	d.Separator('-')
	for _, line := range doc.Lines {
		d.ItemLine(line.Quantity, line.Name, money(line.Amount))
		for _, v := range sortedPairs(line.DynamicValues) {
			d.Text("  " + v)
		}
	}
	d.Separator('-')

	d.KeyValue("Subtotal", money(doc.Totals.Subtotal)).
		KeyValue("GST ("+strconv.Itoa(entity.FlatTaxRatePercent)+"%)", money(doc.Totals.TaxTotal)).
		SetBold(true).
		KeyValue("TOTAL", money(doc.Totals.GrandTotal)).
		SetBold(false)

	for _, f := range doc.Slots.BelowItems {
		d.Text(f.Label + ": " + f.Value)
	}

	d.Separator('=').
		SetAlign(printer.AlignCenter)
	for _, f := range doc.Slots.Footer {
		d.Text(f.Label + ": " + f.Value)
	}
	d.Text("Thank you for your business!").
		FeedLines(4).
		Cut()

	return d.Bytes()
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// sortedPairs renders a dynamic value map as "label: value" lines in a
// stable order.
func sortedPairs(values map[string]string) []string {
	if len(values) == 0 {
		return nil
	}
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+": "+values[k])
	}
	return pairs
}
