package dto

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DataResponse standard success envelope: { "success": true, "data": ... }.
type DataResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse HTTP error body.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Number is a JSON numeric field with the data-entry parsing policy applied:
// it accepts a number, a numeric string, null or garbage, and anything
// unparsable degrades to zero instead of failing the request. The CRM edit
// form submits amounts as fixed-point strings and untouched inputs as "".
//
// This is the single place where permissive coercion happens; everything past
// the DTO boundary works on plain decimals.
type Number struct {
	decimal.Decimal
}

// N wraps a decimal as a Number (for building responses).
func N(d decimal.Decimal) Number { return Number{Decimal: d} }

// UnmarshalJSON implements parse-or-default-to-zero.
func (n *Number) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		n.Decimal = decimal.Zero
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		n.Decimal = decimal.Zero
		return nil
	}
	n.Decimal = d
	return nil
}

// MarshalJSON renders the value as a JSON string, the shape the CRM
// front-end already handles for every monetary field.
func (n Number) MarshalJSON() ([]byte, error) {
	return []byte(`"` + n.Decimal.String() + `"`), nil
}
