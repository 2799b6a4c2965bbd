// Package tally generates Tally import vouchers for finalized invoices.
// One invoice maps to a single "Sales" accounting voucher with three ledger
// entries: the party (or "Cash") debit and the sales/GST credits. The schema
// is fixed; the accounting system is trusted to reject anything it dislikes.
package tally

import (
	"encoding/xml"
	"strconv"

	"github.com/swipelite/swipelite-api/internal/domain/entity"
)

// ContentType is the MIME type of an exported voucher file.
const ContentType = "text/xml"

// CashLedgerName is the party ledger used for walk-in sales without a
// customer record.
const CashLedgerName = "Cash"

type envelope struct {
	XMLName xml.Name `xml:"ENVELOPE"`
	Header  header   `xml:"HEADER"`
	Body    body     `xml:"BODY"`
}

type header struct {
	TallyRequest string `xml:"TALLYREQUEST"`
}

type body struct {
	ImportData importData `xml:"IMPORTDATA"`
}

type importData struct {
	RequestDesc requestDesc `xml:"REQUESTDESC"`
	RequestData requestData `xml:"REQUESTDATA"`
}

type requestDesc struct {
	ReportName string `xml:"REPORTNAME"`
}

type requestData struct {
	TallyMessage tallyMessage `xml:"TALLYMESSAGE"`
}

type tallyMessage struct {
	XMLNSUDF string  `xml:"xmlns:UDF,attr"`
	Voucher  voucher `xml:"VOUCHER"`
}

type voucher struct {
	VchType         string        `xml:"VCHTYPE,attr"`
	Action          string        `xml:"ACTION,attr"`
	ObjView         string        `xml:"OBJVIEW,attr"`
	Date            string        `xml:"DATE"`
	VoucherNumber   string        `xml:"VOUCHERNUMBER"`
	PartyLedgerName string        `xml:"PARTYLEDGERNAME"`
	PersistedView   string        `xml:"PERSISTEDVIEW"`
	LedgerEntries   []ledgerEntry `xml:"ALLLEDGERENTRIES.LIST"`
}

type ledgerEntry struct {
	LedgerName       string `xml:"LEDGERNAME"`
	IsDeemedPositive string `xml:"ISDEEMEDPOSITIVE"`
	Amount           string `xml:"AMOUNT"`
}

// Generate renders the voucher XML for an invoice. A nil customer books the
// sale against the "Cash" ledger.
func Generate(invoice *entity.Invoice, profile *entity.BusinessProfile, customer *entity.Customer) ([]byte, error) {
	party := CashLedgerName
	if customer != nil && customer.Name != "" {
		party = customer.Name
	}

	env := envelope{
		Header: header{TallyRequest: "Import Data"},
		Body: body{
			ImportData: importData{
				RequestDesc: requestDesc{ReportName: "Vouchers"},
				RequestData: requestData{
					TallyMessage: tallyMessage{
						XMLNSUDF: "TallyUDF",
						Voucher: voucher{
							VchType:         "Sales",
							Action:          "Create",
							ObjView:         "Accounting Voucher View",
							Date:            invoice.Date.Format("20060102"),
							VoucherNumber:   invoice.InvoiceNumber,
							PartyLedgerName: party,
							PersistedView:   "Accounting Voucher View",
							LedgerEntries: []ledgerEntry{
								{LedgerName: party, IsDeemedPositive: "Yes", Amount: formatAmount(-invoice.GrandTotal)},
								{LedgerName: "Sales Account", IsDeemedPositive: "No", Amount: formatAmount(invoice.Subtotal)},
								{LedgerName: "GST Output", IsDeemedPositive: "No", Amount: formatAmount(invoice.TaxTotal)},
							},
						},
					},
				},
			},
		},
	}

	out, err := xml.MarshalIndent(env, "", " ")
	if err != nil {
		return nil, err
	}
	return append([]byte("<?xml version=\"1.0\"?>\n"), out...), nil
}

// Filename returns the download name for an invoice's voucher file.
func Filename(invoiceNumber string) string {
	return invoiceNumber + "_Tally.xml"
}

// formatAmount renders a money value the way Tally expects: no exponent, no
// trailing zeros (1180 not 1180.00, 219.6 not 219.60).
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
