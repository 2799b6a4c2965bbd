package enum

import "encoding/json"

// PaperFormat represents the physical page size an invoice is rendered for
type PaperFormat int

const (
	PaperFormatA4      PaperFormat = 0
	PaperFormatA5      PaperFormat = 1
	PaperFormatLegal   PaperFormat = 2
	PaperFormatLetter  PaperFormat = 3
	PaperFormatThermal PaperFormat = 4
)

func (f PaperFormat) String() string {
	return [...]string{"A4", "A5", "LEGAL", "LETTER", "THERMAL"}[f]
}

// IsThermal reports whether the format targets a thermal receipt printer.
func (f PaperFormat) IsThermal() bool {
	return f == PaperFormatThermal
}

func (f PaperFormat) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

func (f *PaperFormat) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*f = PaperFormat(i)
		return nil
	}
	switch str {
	case "A4":
		*f = PaperFormatA4
	case "A5":
		*f = PaperFormatA5
	case "LEGAL":
		*f = PaperFormatLegal
	case "LETTER":
		*f = PaperFormatLetter
	case "THERMAL":
		*f = PaperFormatThermal
	}
	return nil
}
