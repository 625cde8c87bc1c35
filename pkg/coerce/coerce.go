// Package coerce decodes loosely typed JSON form values.
//
// Front-end forms send every field as whatever the browser had at hand:
// strings, numbers, booleans or null. Text keeps the value as text and
// remembers absence, Number turns anything numeric-looking into a decimal
// and everything else into zero.
package coerce

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
)

// Text is a JSON scalar rendered as text. The zero value is "absent" and
// maps to SQL NULL through Ptr.
type Text struct {
	v    *string
	kind gjson.Type
}

// TextOf returns a present Text holding s.
func TextOf(s string) Text { return Text{v: &s, kind: gjson.String} }

func (t *Text) UnmarshalJSON(b []byte) error {
	r := gjson.ParseBytes(b)
	t.kind = r.Type
	switch r.Type {
	case gjson.Null:
		t.v = nil
	case gjson.String:
		s := r.Str
		t.v = &s
	default:
		// numbers, booleans and nested values keep their JSON spelling
		s := strings.TrimSpace(r.Raw)
		t.v = &s
	}
	return nil
}

func (t Text) MarshalJSON() ([]byte, error) {
	if t.v == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*t.v)
}

// Ptr returns nil when the value was absent or null.
func (t Text) Ptr() *string {
	if t.v == nil {
		return nil
	}
	s := *t.v
	return &s
}

func (t Text) String() string {
	if t.v == nil {
		return ""
	}
	return *t.v
}

// Present reports whether the field was sent with a non-null value.
func (t Text) Present() bool { return t.v != nil }

// Truthy is false for absent, null, false, "" and numeric zero, the values
// a form treats as "not filled in".
func (t Text) Truthy() bool {
	if t.v == nil {
		return false
	}
	switch t.kind {
	case gjson.False:
		return false
	case gjson.Number:
		d, err := decimal.NewFromString(*t.v)
		return err != nil || !d.IsZero()
	case gjson.String:
		return *t.v != ""
	}
	return true
}

// Or returns t unless it is falsy, in which case it returns alt.
func (t Text) Or(alt Text) Text {
	if !t.Truthy() {
		return alt
	}
	return t
}

// Number is a JSON value coerced to a decimal. Missing, null, boolean and
// non-numeric values all decode to zero.
type Number struct{ d decimal.Decimal }

// NumberOf parses s the same way a JSON string value is parsed.
func NumberOf(s string) Number { return Number{d: parseDecimal(s)} }

func (n *Number) UnmarshalJSON(b []byte) error {
	r := gjson.ParseBytes(b)
	switch r.Type {
	case gjson.Number:
		n.d = parseDecimal(r.Raw)
	case gjson.String:
		n.d = parseDecimal(r.Str)
	default:
		n.d = decimal.Zero
	}
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) { return []byte(n.d.String()), nil }

func (n Number) Decimal() decimal.Decimal { return n.d }

// Int truncates toward zero. Values outside the int64 range give 0.
func (n Number) Int() int64 {
	bi := n.d.BigInt()
	if !bi.IsInt64() {
		return 0
	}
	return bi.Int64()
}

// Limits on accepted numbers. Anything beyond them is treated as
// non-numeric, so a short exponent cannot expand into a huge integer.
const (
	maxExponent = 30
	maxDigits   = 40
)

func parseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	if exp := d.Exponent(); exp > maxExponent || exp < -maxExponent || d.NumDigits() > maxDigits {
		return decimal.Zero
	}
	return d
}
