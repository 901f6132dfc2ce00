package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shineinfosolutions/crm-api/internal/application/dto"
)

// The edit form sends quantities as raw input text and amounts as fixed-point
// strings; every malformed variant must decode to zero, never error.
func TestNumber_ParseOrZero(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`12.5`, "12.5"},
		{`"180.00"`, "180"},
		{`" 42 "`, "42"},
		{`""`, "0"},
		{`"abc"`, "0"},
		{`null`, "0"},
		{`"12,5"`, "0"},
		{`-3.25`, "-3.25"},
	}
	for _, tc := range cases {
		var n dto.Number
		err := json.Unmarshal([]byte(tc.in), &n)
		require.NoError(t, err, "input %s must never fail", tc.in)
		assert.Equal(t, tc.want, n.Decimal.String(), "input %s", tc.in)
	}
}

func TestNumber_InsideStruct(t *testing.T) {
	var row struct {
		Quantity dto.Number `json:"quantity"`
		Price    dto.Number `json:"price"`
	}
	err := json.Unmarshal([]byte(`{"quantity":"","price":"19.99"}`), &row)
	require.NoError(t, err)
	assert.True(t, row.Quantity.IsZero())
	assert.Equal(t, "19.99", row.Price.Decimal.String())
}

func TestNumber_MarshalsAsString(t *testing.T) {
	b, err := json.Marshal(dto.N(decimal.RequireFromString("191.2")))
	require.NoError(t, err)
	assert.Equal(t, `"191.2"`, string(b))
}
