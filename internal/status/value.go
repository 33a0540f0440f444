package status

import (
	"encoding/json"
	"strconv"
)

// Kind discriminates the two domains a wsrep status value can have.
type Kind int

const (
	KindNumeric Kind = iota
	KindText
)

// Value is a single status variable value, tagged as numeric or text once at
// parse time. Numeric values order and format as float64; text values compare
// only by exact equality and have no ordering.
type Value struct {
	kind Kind
	num  float64
	text string
}

func Numeric(f float64) Value { return Value{kind: KindNumeric, num: f} }
func Text(s string) Value     { return Value{kind: KindText, text: s} }

// Parse resolves the numeric-vs-text tag for a raw status string. Anything
// strconv accepts as a float is numeric; everything else is text verbatim.
func Parse(raw string) Value {
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return Numeric(f)
	}
	return Text(raw)
}

func (v Value) Kind() Kind      { return v.kind }
func (v Value) IsNumeric() bool { return v.kind == KindNumeric }

// Float returns the numeric value, or 0 for text values.
func (v Value) Float() float64 {
	if v.kind == KindNumeric {
		return v.num
	}
	return 0
}

// String renders numbers in their shortest form ("2", "1.5") and text as-is.
func (v Value) String() string {
	if v.kind == KindNumeric {
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	}
	return v.text
}

// Equal reports exact equality. Values of different kinds are never equal.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	if v.kind == KindNumeric {
		return v.num == o.num
	}
	return v.text == o.text
}

// MarshalJSON keeps the tag on the wire: numeric values serialize as JSON
// numbers, text values as JSON strings. This is what lets the persisted
// snapshot round-trip exactly.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.kind == KindNumeric {
		return json.Marshal(v.num)
	}
	return json.Marshal(v.text)
}

func (v *Value) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = Text(s)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*v = Numeric(f)
	return nil
}
