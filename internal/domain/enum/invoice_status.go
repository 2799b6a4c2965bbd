package enum

import "encoding/json"

// InvoiceStatus represents the payment status of an invoice
type InvoiceStatus int

const (
	InvoiceStatusUnpaid  InvoiceStatus = 0
	InvoiceStatusPaid    InvoiceStatus = 1
	InvoiceStatusOverdue InvoiceStatus = 2
)

func (s InvoiceStatus) String() string {
	if !s.Valid() {
		return "UNKNOWN"
	}
	return [...]string{"UNPAID", "PAID", "OVERDUE"}[s]
}

// Valid reports whether the status is one of the known values.
func (s InvoiceStatus) Valid() bool {
	return s >= InvoiceStatusUnpaid && s <= InvoiceStatusOverdue
}

func (s InvoiceStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *InvoiceStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = InvoiceStatus(i)
		return nil
	}
	switch str {
	case "UNPAID":
		*s = InvoiceStatusUnpaid
	case "PAID":
		*s = InvoiceStatusPaid
	case "OVERDUE":
		*s = InvoiceStatusOverdue
	}
	return nil
}

// ParseInvoiceStatus converts a string into an InvoiceStatus.
// Unknown values return UNPAID and ok=false.
func ParseInvoiceStatus(str string) (InvoiceStatus, bool) {
	switch str {
	case "UNPAID":
		return InvoiceStatusUnpaid, true
	case "PAID":
		return InvoiceStatusPaid, true
	case "OVERDUE":
		return InvoiceStatusOverdue, true
	}
	return InvoiceStatusUnpaid, false
}
