// Package pdf rasterizes an assembled invoice document with gofpdf. The page
// layout mirrors the on-screen preview sheet so the printout matches what the
// shopkeeper saw while billing.
package pdf

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"

	"github.com/jung-kurt/gofpdf"
	"github.com/swipelite/swipelite-api/internal/domain/entity"
	"github.com/swipelite/swipelite-api/internal/domain/enum"
)

// ContentType is the MIME type of an exported PDF.
const ContentType = "application/pdf"

// Filename returns the download name for an invoice PDF.
func Filename(invoiceNumber string) string {
	return "Invoice_" + invoiceNumber + ".pdf"
}

// thermalSize is an 80mm receipt roll rendered on an A4-length page.
var thermalSize = gofpdf.SizeType{Wd: 80, Ht: 297}

// newPage returns a pdf sized for the document's paper format.
func newPage(format enum.PaperFormat) *gofpdf.Fpdf {
	switch format {
	case enum.PaperFormatA5:
		return gofpdf.New("P", "mm", "A5", "")
	case enum.PaperFormatLegal:
		return gofpdf.New("P", "mm", "Legal", "")
	case enum.PaperFormatLetter:
		return gofpdf.New("P", "mm", "Letter", "")
	case enum.PaperFormatThermal:
		return gofpdf.NewCustom(&gofpdf.InitType{UnitStr: "mm", Size: thermalSize})
	default:
		return gofpdf.New("P", "mm", "A4", "")
	}
}

// Render produces the PDF bytes for an assembled invoice document.
func Render(doc *entity.InvoiceDocument) ([]byte, error) {
	pdf := newPage(doc.PaperFormat)
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 20

	r, g, b := hexToRGB(doc.AccentColor)

	// Seller header
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(r, g, b)
	pdf.CellFormat(contentW, 8, doc.Seller.Name, "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 9)
	pdf.MultiCell(contentW, 4.5, doc.Seller.Address, "", "L", false)
	for _, f := range doc.Slots.Header {
		pdf.CellFormat(contentW, 4.5, f.Label+": "+f.Value, "", 1, "L", false, 0, "")
	}
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(contentW, 4.5, "GSTIN: "+doc.Seller.GSTIN, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 4.5, "Ph: "+doc.Seller.Phone+" | "+doc.Seller.Email, "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(contentW, 7, "TAX INVOICE", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW/2, 5, "Invoice No: "+doc.InvoiceNumber, "", 0, "L", false, 0, "")
	pdf.CellFormat(contentW/2, 5, "Date: "+doc.Date.Format("02/01/2006"), "", 1, "R", false, 0, "")
	pdf.Ln(2)

	// Bill-to block
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(contentW, 5, "BILL TO:", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	if doc.Customer.Missing {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.CellFormat(contentW, 5, "No customer selected", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
	} else {
		pdf.CellFormat(contentW, 5, doc.Customer.Name, "", 1, "L", false, 0, "")
		if doc.Customer.Address != "" {
			pdf.MultiCell(contentW, 4.5, doc.Customer.Address, "", "L", false)
		}
		if doc.Customer.Phone != "" {
			pdf.CellFormat(contentW, 4.5, "Ph: "+doc.Customer.Phone, "", 1, "L", false, 0, "")
		}
	}
	pdf.Ln(2)

	for _, f := range doc.Slots.AboveItems {
		pdf.CellFormat(contentW, 4.5, f.Label+": "+f.Value, "", 1, "L", false, 0, "")
	}
	pdf.Ln(1)

	renderItemsTable(pdf, doc, contentW)

	for _, f := range doc.Slots.BelowItems {
		pdf.CellFormat(contentW, 4.5, f.Label+": "+f.Value, "", 1, "L", false, 0, "")
	}
	for _, f := range doc.Slots.Footer {
		pdf.CellFormat(contentW, 4.5, f.Label+": "+f.Value, "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "I", 7)
	pdf.MultiCell(contentW, 3.5, "Declaration: We declare that this invoice shows the actual price of the goods described and that all particulars are true and correct.", "", "L", false)
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(contentW, 5, "For "+doc.Seller.Name, "", 1, "R", false, 0, "")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 4, "Authorised Signatory", "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf render failed: %w", err)
	}
	return buf.Bytes(), nil
}

func renderItemsTable(pdf *gofpdf.Fpdf, doc *entity.InvoiceDocument, contentW float64) {
	slW := contentW * 0.07
	descW := contentW * 0.45
	qtyW := contentW * 0.12
	rateW := contentW * 0.18
	amtW := contentW - slW - descW - qtyW - rateW

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(slW, 6, "SL", "1", 0, "C", true, 0, "")
	pdf.CellFormat(descW, 6, "DESCRIPTION OF GOODS", "1", 0, "L", true, 0, "")
	pdf.CellFormat(qtyW, 6, "QTY", "1", 0, "C", true, 0, "")
	pdf.CellFormat(rateW, 6, "RATE", "1", 0, "R", true, 0, "")
	pdf.CellFormat(amtW, 6, "AMOUNT", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	for i, line := range doc.Lines {
		desc := line.Name
		for _, label := range sortedKeys(line.DynamicValues) {
			desc += "\n" + label + ": " + line.DynamicValues[label]
		}
		rows := 1 + len(line.DynamicValues)
		h := float64(rows) * 4.5

		x, y := pdf.GetXY()
		pdf.CellFormat(slW, h, strconv.Itoa(i+1), "1", 0, "C", false, 0, "")
		pdf.MultiCell(descW, h/float64(rows), desc, "1", "L", false)
		pdf.SetXY(x+slW+descW, y)
		pdf.CellFormat(qtyW, h, strconv.Itoa(line.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(rateW, h, money(line.Price), "1", 0, "R", false, 0, "")
		pdf.CellFormat(amtW, h, money(line.Amount), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 8)
	labelW := slW + descW + qtyW + rateW
	pdf.CellFormat(labelW, 6, "Subtotal", "1", 0, "R", false, 0, "")
	pdf.CellFormat(amtW, 6, money(doc.Totals.Subtotal), "1", 1, "R", false, 0, "")
	pdf.CellFormat(labelW, 6, fmt.Sprintf("Tax (GST %d%%)", entity.FlatTaxRatePercent), "1", 0, "R", false, 0, "")
	pdf.CellFormat(amtW, 6, money(doc.Totals.TaxTotal), "1", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(labelW, 7, "GRAND TOTAL", "1", 0, "R", false, 0, "")
	pdf.CellFormat(amtW, 7, money(doc.Totals.GrandTotal), "1", 1, "R", false, 0, "")
	pdf.Ln(2)
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// hexToRGB parses a "#rrggbb" accent color, falling back to near-black.
func hexToRGB(hex string) (int, int, int) {
	if len(hex) == 7 && hex[0] == '#' {
		if v, err := strconv.ParseUint(hex[1:], 16, 32); err == nil {
			return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff)
		}
	}
	return 17, 24, 39
}
