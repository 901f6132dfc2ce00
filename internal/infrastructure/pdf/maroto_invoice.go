// Package pdf renders the print-ready tax invoice.
//
// Single A4 page, minimal margins:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  TAX INVOICE              │          ORIGINAL FOR RECIPIENT │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SELLER: name + GSTIN + address + contact │ No / dates grid │
//	│  CUSTOMER: name + GSTIN + billing address                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE: # | Item | HSN/SAC | Rate | Qty | Taxable | Tax | Amt│
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALS: Taxable / CGST 9% / SGST 9% / TOTAL                │
//	│  Amount in words │ Bank details                             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	appbilling "github.com/shineinfosolutions/crm-api/internal/application/billing"
)

// ── Palette ───────────────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 37, Green: 99, Blue: 235}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorDark    = &props.Color{Red: 31, Green: 41, Blue: 55}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoGenerator implements billing.DocumentGenerator using Maroto v2.
type MarotoGenerator struct{}

// NewMarotoGenerator builds the generator.
func NewMarotoGenerator() *MarotoGenerator { return &MarotoGenerator{} }

// Generate renders the document and returns the PDF bytes. The exported page
// carries no interactive chrome; the PDF title names the print job after the
// invoice number.
func (g *MarotoGenerator) Generate(_ context.Context, doc *appbilling.TaxInvoiceDocument) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(5).WithRightMargin(5).
		WithTopMargin(5).WithBottomMargin(5).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(doc.PrintTitle(), true).
		WithAuthor(doc.Seller.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(titleRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partiesRow(doc))
	m.AddRows(customerRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableLineRows(doc.Lines) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(summaryRow(doc))
	m.AddRows(totalsRow(doc))
	m.AddRows(wordsRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(bankRow(doc.Seller))

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Sections ──────────────────────────────────────────────────────────────────

// titleRow: document title left, copy label right.
func titleRow() core.Row {
	return row.New(10).Add(
		col.New(6).Add(
			text.New("T A X  I N V O I C E", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(6).Add(
			text.New("ORIGINAL FOR RECIPIENT", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Color: colorDark, Top: 4,
			}),
		),
	)
}

// partiesRow: seller identity (left) and invoice number/date grid (right).
func partiesRow(doc *appbilling.TaxInvoiceDocument) core.Row {
	s := doc.Seller
	return row.New(30).Add(
		col.New(7).Add(
			text.New(s.Name, props.Text{Style: fontstyle.Bold, Size: 11, Color: colorDark, Top: 1}),
			text.New("GSTIN: "+s.GSTIN, props.Text{Size: 8, Top: 7, Color: colorGray}),
			text.New(s.Address, props.Text{Size: 8, Top: 11, Color: colorGray}),
			text.New(s.City, props.Text{Size: 8, Top: 15, Color: colorGray}),
			text.New("Mobile: "+s.Phone, props.Text{Size: 8, Top: 19, Color: colorGray}),
			text.New("Email: "+s.Email, props.Text{Size: 8, Top: 23, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("Invoice #: "+doc.InvoiceNumber, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1,
			}),
			text.New("Invoice Date: "+doc.InvoiceDate, props.Text{Size: 8, Align: align.Right, Top: 8, Color: colorGray}),
			text.New("Due Date: "+doc.DueDate, props.Text{Size: 8, Align: align.Right, Top: 12, Color: colorGray}),
			text.New("Place of Supply: "+doc.PlaceOfSupply, props.Text{Size: 8, Align: align.Right, Top: 16, Color: colorGray}),
		),
	)
}

// customerRow: buyer block.
func customerRow(doc *appbilling.TaxInvoiceDocument) core.Row {
	c := doc.Customer
	return row.New(18).Add(
		col.New(12).Add(
			text.New("CUSTOMER DETAILS", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(c.Name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(fmt.Sprintf("GSTIN: %s   |   Billing Address: %s   |   Phone: %s",
				nonEmpty(c.GSTIN, "—"),
				nonEmpty(c.Address, "—"),
				nonEmpty(c.Phone, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: line-item table header.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorDark, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("#", 1, align.Center),
		h("Item", 3, align.Left),
		h("HSN/SAC", 1, align.Center),
		h("Rate/Item", 2, align.Right),
		h("Qty", 1, align.Center),
		h("Taxable Value", 2, align.Right),
		h("Tax Amount", 1, align.Right),
		h("Amount", 1, align.Right),
	)
}

// tableLineRows: one row per document line, position-numbered.
func tableLineRows(lines []appbilling.DocumentLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		cell := func(s string, size int, a align.Type) core.Col {
			return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1}))
		}
		result = append(result, row.New(6).Add(
			cell(fmt.Sprintf("%d", l.No), 1, align.Center),
			cell(l.Description, 3, align.Left),
			cell(l.HSNSAC, 1, align.Center),
			cell(money(l.Price), 2, align.Right),
			cell(l.Quantity.String(), 1, align.Center),
			cell(money(l.TaxableValue), 2, align.Right),
			cell(money(l.TaxAmount), 1, align.Right),
			cell(money(l.Amount), 1, align.Right),
		))
	}
	return result
}

// summaryRow: item and quantity counts.
func summaryRow(doc *appbilling.TaxInvoiceDocument) core.Row {
	return row.New(6).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Total Items / Qty: %d / %s", doc.TotalItems, doc.TotalQuantity.String()),
				props.Text{Style: fontstyle.Bold, Size: 8, Top: 1, Color: colorDark}),
		),
	)
}

// totalsRow: tax breakdown and grand total, right-aligned.
func totalsRow(doc *appbilling.TaxInvoiceDocument) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	return row.New(24).Add(
		col.New(6),
		col.New(3).Add(
			label("Taxable Amount:"),
			text.New("CGST 9.0%:", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: 5}),
			text.New("SGST 9.0%:", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: 10}),
			text.New("TOTAL:", props.Text{Style: fontstyle.Bold, Size: 11, Align: align.Right, Right: 2, Top: 16, Color: colorPrimary}),
		),
		col.New(3).Add(
			value(money(doc.Total)),
			text.New(money(doc.CGST), props.Text{Size: 9, Align: align.Right, Right: 1, Top: 5}),
			text.New(money(doc.SGST), props.Text{Size: 9, Align: align.Right, Right: 1, Top: 10}),
			text.New(money(doc.Total), props.Text{Style: fontstyle.Bold, Size: 11, Align: align.Right, Right: 1, Top: 16, Color: colorPrimary}),
		),
	)
}

// wordsRow: spelled-out total.
func wordsRow(doc *appbilling.TaxInvoiceDocument) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New("Total amount (in words): "+doc.AmountInWords, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 2, Color: colorDark,
			}),
		),
	)
}

// bankRow: seller bank details footer.
func bankRow(s appbilling.SellerInfo) core.Row {
	return row.New(20).Add(
		col.New(12).Add(
			text.New("Bank Details:", props.Text{Style: fontstyle.Bold, Size: 8, Top: 2, Color: colorDark}),
			text.New("Bank: "+s.BankName, props.Text{Size: 8, Top: 7, Color: colorGray}),
			text.New("Account #: "+s.BankAccount+"   |   IFSC Code: "+s.BankIFSC+"   |   Branch: "+s.BankBranch,
				props.Text{Size: 8, Top: 11, Color: colorGray}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// money renders a decimal with the currency prefix. The rupee sign is outside
// the core PDF font set, so amounts are prefixed "Rs." instead.
func money(d decimal.Decimal) string {
	return "Rs. " + d.StringFixed(2)
}
