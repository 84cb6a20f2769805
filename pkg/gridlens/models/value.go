// Package models defines data structures for workbook structure inference.
package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// ValueKind discriminates the type of a normalized cell value.
type ValueKind int

const (
	// KindAbsent marks a cell with no value. Absent is not zero: aggregation
	// excludes absent cells from counts.
	KindAbsent ValueKind = iota
	// KindNumber marks a numeric cell.
	KindNumber
	// KindText marks a textual cell.
	KindText
)

// Value is a typed cell value: absent, numeric, or text.
type Value struct {
	Kind   ValueKind
	Number float64
	Text   string
}

// AbsentValue returns the absent cell value.
func AbsentValue() Value {
	return Value{}
}

// NumberValue returns a numeric cell value.
func NumberValue(f float64) Value {
	return Value{Kind: KindNumber, Number: f}
}

// TextValue returns a textual cell value.
func TextValue(s string) Value {
	return Value{Kind: KindText, Text: s}
}

// IsAbsent reports whether the value is absent.
func (v Value) IsAbsent() bool {
	return v.Kind == KindAbsent
}

// IsNumber reports whether the value is numeric.
func (v Value) IsNumber() bool {
	return v.Kind == KindNumber
}

// String renders the value the way it would appear in a delimited export:
// numbers in minimal decimal notation, text verbatim, absent as "".
func (v Value) String() string {
	switch v.Kind {
	case KindNumber:
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	case KindText:
		return v.Text
	default:
		return ""
	}
}

// MarshalJSON encodes absent as null, numbers as JSON numbers, text as strings.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindNumber:
		return json.Marshal(v.Number)
	case KindText:
		return json.Marshal(v.Text)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON decodes null, numbers, and strings into the matching kind.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch t := raw.(type) {
	case nil:
		*v = AbsentValue()
	case float64:
		*v = NumberValue(t)
	default:
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = TextValue(s)
	}
	return nil
}

// ParseValue coerces raw cell text into a typed value. Blank (or
// whitespace-only) text becomes absent. Text that parses as a decimal number
// becomes numeric; a single decimal comma with no decimal point is accepted
// as well, since the source spreadsheets use comma-decimal locales.
// Everything else stays text, with surrounding whitespace trimmed.
func ParseValue(s string) Value {
	t := strings.TrimSpace(s)
	if t == "" {
		return AbsentValue()
	}
	if f, err := strconv.ParseFloat(t, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return NumberValue(f)
	}
	if strings.Count(t, ",") == 1 && !strings.Contains(t, ".") {
		if f, err := strconv.ParseFloat(strings.Replace(t, ",", ".", 1), 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return NumberValue(f)
		}
	}
	return TextValue(t)
}
