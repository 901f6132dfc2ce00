package billing_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/shineinfosolutions/crm-api/internal/domain/billing"
)

func TestAmountInWords(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"191.20", "INR One Hundred Ninety-One And Twenty Paise only"},
		{"191", "INR One Hundred Ninety-One only"},
		{"0", "INR Zero only"},
		{"0.05", "INR Zero And Five Paise only"},
		{"1000000", "INR One Million only"},
		{"-5", "INR Minus Five only"},
	}
	for _, tc := range cases {
		got := billing.AmountInWords(d(tc.in))
		assert.Equal(t, tc.want, got, "input %s", tc.in)
	}
}

// Every rendering must end in "only", including edge amounts.
func TestAmountInWords_AlwaysEndsInOnly(t *testing.T) {
	for _, in := range []string{"0", "0.004", "0.999", "99999999.99", "-123.45"} {
		got := billing.AmountInWords(d(in))
		assert.True(t, strings.HasSuffix(got, " only"), "input %s -> %q", in, got)
		assert.True(t, strings.HasPrefix(got, "INR "), "input %s -> %q", in, got)
	}
}

// Paise that round to a whole rupee must carry into the rupee part.
func TestAmountInWords_PaiseCarry(t *testing.T) {
	got := billing.AmountInWords(decimal.RequireFromString("1.999"))
	assert.Equal(t, "INR Two only", got)
}
