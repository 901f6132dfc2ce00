package billing

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	ntw "moul.io/number-to-words"
)

// AmountInWords spells out a monetary total for the invoice footer, e.g.
// 191.20 -> "INR One Hundred Ninety-One And Twenty Paise only".
// Zero, fractional and negative amounts all produce a valid string.
func AmountInWords(total decimal.Decimal) string {
	negative := total.IsNegative()
	abs := total.Abs()

	rupees := abs.IntPart()
	paise := abs.Sub(decimal.NewFromInt(rupees)).Mul(hundred).Round(0).IntPart()
	if paise >= 100 { // 0.999... rounds up into the next rupee
		rupees++
		paise -= 100
	}

	caser := cases.Title(language.English)
	words := caser.String(ntw.IntegerToEnUs(int(rupees)))
	if paise > 0 {
		words += " And " + caser.String(ntw.IntegerToEnUs(int(paise))) + " Paise"
	}
	if negative {
		words = "Minus " + words
	}
	return "INR " + words + " only"
}
