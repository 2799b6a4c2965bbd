package enum

import "encoding/json"

// FieldPosition represents where a template custom field is placed on the
// rendered invoice sheet
type FieldPosition int

const (
	FieldPositionHeader     FieldPosition = 0
	FieldPositionFooter     FieldPosition = 1
	FieldPositionAboveItems FieldPosition = 2
	FieldPositionBelowItems FieldPosition = 3
)

func (p FieldPosition) String() string {
	return [...]string{"HEADER", "FOOTER", "ABOVE_ITEMS", "BELOW_ITEMS"}[p]
}

func (p FieldPosition) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *FieldPosition) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*p = FieldPosition(i)
		return nil
	}
	switch str {
	case "HEADER":
		*p = FieldPositionHeader
	case "FOOTER":
		*p = FieldPositionFooter
	case "ABOVE_ITEMS":
		*p = FieldPositionAboveItems
	case "BELOW_ITEMS":
		*p = FieldPositionBelowItems
	}
	return nil
}
