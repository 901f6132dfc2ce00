// Package billing holds the pure invoice arithmetic: per-line amounts and the
// invoice-level total. Every function here is deterministic, side-effect free
// and rounds to 2 decimal places (currency precision).
package billing

import (
	"github.com/shopspring/decimal"

	"github.com/shineinfosolutions/crm-api/internal/domain/entity"
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// ComputeLineAmount derives the monetary amount of a single line:
// round2(price * quantity * (1 - discountPct/100)).
//
// Inputs are not validated: negative values flow through as computed and a
// discount of 100% or more yields a zero or negative amount. Clamping would
// change totals the customer already sees in the edit form.
func ComputeLineAmount(quantity, price, discountPct decimal.Decimal) decimal.Decimal {
	return price.Mul(quantity).Mul(one.Sub(discountPct.Div(hundred))).Round(2)
}

// ComputeInvoiceTotal aggregates the stored line amounts, applies the
// invoice-level GST rate and subtracts the flat discount:
// round2(sum(amounts) * (1 + gstPct/100) - discountOnTotal).
//
// An empty item slice sums to zero, so the result may be negative when a
// discount is set; callers must not treat that as an error.
func ComputeInvoiceTotal(items []entity.InvoiceLineItem, gstPct, discountOnTotal decimal.Decimal) decimal.Decimal {
	base := decimal.Zero
	for _, item := range items {
		base = base.Add(item.Amount)
	}
	return base.Mul(one.Add(gstPct.Div(hundred))).Sub(discountOnTotal).Round(2)
}

// Recalculate rewrites every line amount and the invoice total in place from
// the current quantities, prices and discounts. The stored TotalAmount is
// never authoritative; this runs on every create and update.
func Recalculate(inv *entity.Invoice) {
	for i := range inv.ProductDetails {
		item := &inv.ProductDetails[i]
		item.Amount = ComputeLineAmount(item.Quantity, item.Price, item.DiscountPercentage)
	}
	inv.AmountDetails.TotalAmount = ComputeInvoiceTotal(
		inv.ProductDetails,
		inv.AmountDetails.GSTPercentage,
		inv.AmountDetails.DiscountOnTotal,
	)
}
