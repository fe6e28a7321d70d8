package handlerutil

import (
	"encoding/json"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"
)

// Amount is a decimal written to JSON as a number.
type Amount decimal.Decimal

func NewAmount(d decimal.Decimal) Amount {
	return Amount(d)
}

func (a Amount) Decimal() decimal.Decimal {
	return decimal.Decimal(a)
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(decimal.Decimal(a).String()), nil
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}
	*a = Amount(d)
	return nil
}

func (Amount) Schema(huma.Registry) *huma.Schema {
	return &huma.Schema{Type: huma.TypeNumber, Format: "double"}
}

// FlexAmount accepts a JSON number or a numeric string and keeps the text as
// sent, so the service decides what a bad value means.
type FlexAmount struct {
	raw     string
	present bool
}

// FlexAmountOf is the value a client sending text would produce.
func FlexAmountOf(text string) FlexAmount {
	return FlexAmount{raw: text, present: true}
}

// Text returns nil when the field was absent or null.
func (f FlexAmount) Text() *string {
	if !f.present {
		return nil
	}
	raw := f.raw
	return &raw
}

func (f *FlexAmount) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = FlexAmount{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		*f = FlexAmount{raw: text, present: true}
		return nil
	}
	*f = FlexAmount{raw: string(data), present: true}
	return nil
}

func (f FlexAmount) MarshalJSON() ([]byte, error) {
	if !f.present {
		return []byte("null"), nil
	}
	return json.Marshal(f.raw)
}

// Schema is left untyped so any JSON value reaches UnmarshalJSON.
func (FlexAmount) Schema(huma.Registry) *huma.Schema {
	return &huma.Schema{Description: "Amount as a JSON number or numeric string"}
}
