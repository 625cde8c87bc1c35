package coerce

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type form struct {
	Name   Text   `json:"name"`
	Code   Text   `json:"code"`
	Amount Number `json:"amount"`
	Period Number `json:"period"`
}

func decode(t *testing.T, raw string) form {
	t.Helper()
	var f form
	require.NoError(t, json.Unmarshal([]byte(raw), &f))
	return f
}

func TestText_Decode(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		want    *string
		present bool
	}{
		{"string", `{"name":"Alice"}`, strPtr("Alice"), true},
		{"empty string", `{"name":""}`, strPtr(""), true},
		{"number", `{"name":42.50}`, strPtr("42.50"), true},
		{"bool", `{"name":true}`, strPtr("true"), true},
		{"null", `{"name":null}`, nil, false},
		{"missing", `{}`, nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := decode(t, tc.raw)
			assert.Equal(t, tc.want, f.Name.Ptr())
			assert.Equal(t, tc.present, f.Name.Present())
		})
	}
}

func TestText_PtrIsACopy(t *testing.T) {
	txt := TextOf("a")
	p := txt.Ptr()
	*p = "b"
	assert.Equal(t, "a", txt.String())
}

func TestText_Or(t *testing.T) {
	assert.Equal(t, "m", TextOf("m").Or(TextOf("c")).String())
	assert.Equal(t, "c", TextOf("").Or(TextOf("c")).String())
	assert.Equal(t, "c", Text{}.Or(TextOf("c")).String())
	assert.Nil(t, Text{}.Or(Text{}).Ptr())
	assert.Equal(t, "c", decode(t, `{"name":0}`).Name.Or(TextOf("c")).String())
}

func TestText_Truthy(t *testing.T) {
	cases := map[string]bool{
		`{}`:                false,
		`{"name":null}`:     false,
		`{"name":""}`:       false,
		`{"name":false}`:    false,
		`{"name":0}`:        false,
		`{"name":-0.0}`:     false,
		`{"name":"0"}`:      true,
		`{"name":" "}`:      true,
		`{"name":"false"}`:  true,
		`{"name":true}`:     true,
		`{"name":7}`:        true,
		`{"name":1e999}`:    true,
		`{"name":[]}`:       true,
		`{"name":{}}`:       true,
		`{"name":"C-1001"}`: true,
	}
	for raw, want := range cases {
		assert.Equal(t, want, decode(t, raw).Name.Truthy(), raw)
	}
	assert.True(t, TextOf("x").Truthy())
	assert.False(t, TextOf("").Truthy())
}

func TestText_MarshalRoundTrip(t *testing.T) {
	b, err := json.Marshal(form{Name: TextOf("x")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"x","code":null,"amount":0,"period":0}`, string(b))
}

func TestNumber_Decode(t *testing.T) {
	cases := []struct {
		raw  string
		want string
		int  int64
	}{
		{`{"amount":10000}`, "10000", 10000},
		{`{"amount":"10000"}`, "10000", 10000},
		{`{"amount":" 2500.75 "}`, "2500.75", 2500},
		{`{"amount":"1e3"}`, "1000", 1000},
		{`{"amount":-12.9}`, "-12.9", -12},
		{`{"amount":"abc"}`, "0", 0},
		{`{"amount":""}`, "0", 0},
		{`{"amount":null}`, "0", 0},
		{`{"amount":true}`, "0", 0},
		{`{"amount":[1]}`, "0", 0},
		{`{}`, "0", 0},
	}
	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			f := decode(t, tc.raw)
			assert.True(t, f.Amount.Decimal().Equal(decimal.RequireFromString(tc.want)),
				"got %s want %s", f.Amount.Decimal(), tc.want)
			assert.Equal(t, tc.int, f.Amount.Int())
		})
	}
}

func TestNumber_HugeValuesAreNotNumeric(t *testing.T) {
	for _, raw := range []string{
		`{"amount":"1e5000000"}`,
		`{"amount":1e5000000}`,
		`{"amount":"1e-5000000"}`,
		`{"amount":"1e31"}`,
		`{"amount":"12345678901234567890123456789012345678901"}`,
	} {
		start := time.Now()
		f := decode(t, raw)
		assert.True(t, f.Amount.Decimal().IsZero(), raw)
		assert.Equal(t, int64(0), f.Amount.Int(), raw)
		v, err := f.Amount.Decimal().Value()
		require.NoError(t, err)
		assert.Equal(t, "0", v, raw)
		assert.Less(t, time.Since(start), time.Second, raw)
	}
}

func TestNumber_IntOutOfRange(t *testing.T) {
	assert.Equal(t, int64(0), NumberOf("1e30").Int())
	assert.Equal(t, int64(0), NumberOf("9223372036854775808").Int())
	assert.Equal(t, int64(math.MaxInt64), NumberOf("9223372036854775807").Int())
	assert.Equal(t, int64(math.MinInt64), NumberOf("-9223372036854775808.9").Int())
	assert.True(t, NumberOf("1e30").Decimal().Equal(decimal.New(1, 30)))
}

func TestNumberOf(t *testing.T) {
	assert.Equal(t, int64(36), NumberOf("36").Int())
	assert.True(t, NumberOf("nope").Decimal().IsZero())
}

func strPtr(s string) *string { return &s }
