package enum

import "encoding/json"

// BaseStyle represents the base visual style of an invoice template
type BaseStyle int

const (
	BaseStyleTally   BaseStyle = 0
	BaseStyleModern  BaseStyle = 1
	BaseStyleMinimal BaseStyle = 2
)

func (s BaseStyle) String() string {
	return [...]string{"TALLY", "MODERN", "MINIMAL"}[s]
}

func (s BaseStyle) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *BaseStyle) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = BaseStyle(i)
		return nil
	}
	switch str {
	case "TALLY":
		*s = BaseStyleTally
	case "MODERN":
		*s = BaseStyleModern
	case "MINIMAL":
		*s = BaseStyleMinimal
	}
	return nil
}
