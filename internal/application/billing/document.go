package billing

import (
	"github.com/shopspring/decimal"

	domainbilling "github.com/shineinfosolutions/crm-api/internal/domain/billing"
	"github.com/shineinfosolutions/crm-api/internal/domain/entity"
)

// splitRate is the rate each GST half (CGST, SGST) is shown at on the
// printed document: 9% of the grand total apiece.
//
// This is a fixed display convention and is NOT derived from the stored
// gstPercentage, so a non-default rate makes the printed breakdown disagree
// with the aggregated total.
// TODO: confirm with the business whether the split should be gstPercentage/2
// of the taxable base before changing either side.
var splitRate = decimal.New(9, -2) // 0.09

const documentDateLayout = "2006-01-02"

// SellerInfo is the issuer identity block printed on every invoice.
// It comes from configuration, not from the invoice record.
type SellerInfo struct {
	Name        string
	GSTIN       string
	Address     string
	City        string
	Phone       string
	Email       string
	BankName    string
	BankAccount string
	BankIFSC    string
	BankBranch  string
}

// CustomerBlock is the buyer section of the document.
type CustomerBlock struct {
	Name    string
	GSTIN   string
	Address string
	Phone   string
	Email   string
}

// DocumentLine is one printed table row. No is the 1-based position of the
// line within the invoice; HSNSAC carries the line's unit-of-measure label,
// which the CRM reuses as the HSN/SAC column.
type DocumentLine struct {
	No           int
	Description  string
	HSNSAC       string
	Price        decimal.Decimal
	Quantity     decimal.Decimal
	TaxableValue decimal.Decimal // price * quantity
	TaxAmount    decimal.Decimal // taxable value * gstPercentage/100
	Amount       decimal.Decimal
}

// TaxInvoiceDocument is the complete print-ready layout of one invoice:
// every field the renderer needs, already derived. Building it is pure, so
// layout logic is testable without a display environment.
type TaxInvoiceDocument struct {
	InvoiceNumber string
	InvoiceDate   string
	DueDate       string
	PlaceOfSupply string

	Seller   SellerInfo
	Customer CustomerBlock

	Lines         []DocumentLine
	TotalItems    int
	TotalQuantity decimal.Decimal

	Total         decimal.Decimal
	CGST          decimal.Decimal
	SGST          decimal.Decimal
	AmountInWords string
}

// PrintTitle names the print job / exported file.
func (d *TaxInvoiceDocument) PrintTitle() string {
	if d.InvoiceNumber == "" {
		return "Invoice"
	}
	return "Invoice-" + d.InvoiceNumber
}

// BuildDocument derives the full printable layout from a persisted invoice
// and the configured seller identity. CGST and SGST are each shown as 9% of
// the grand total (see splitRate); the amount in words is spelled from the
// stored total.
func BuildDocument(inv *entity.Invoice, seller SellerInfo) *TaxInvoiceDocument {
	doc := &TaxInvoiceDocument{
		InvoiceNumber: inv.InvoiceNumber,
		PlaceOfSupply: inv.CustomerAddress,
		Seller:        seller,
		Customer: CustomerBlock{
			Name:    inv.CustomerName,
			GSTIN:   inv.CustomerGST,
			Address: inv.CustomerAddress,
			Phone:   inv.CustomerPhone,
			Email:   inv.CustomerEmail,
		},
	}
	if !inv.InvoiceDate.IsZero() {
		doc.InvoiceDate = inv.InvoiceDate.Format(documentDateLayout)
	}
	if !inv.DueDate.IsZero() {
		doc.DueDate = inv.DueDate.Format(documentDateLayout)
	}

	gstRate := inv.AmountDetails.GSTPercentage.Div(decimal.NewFromInt(100))
	totalQty := decimal.Zero
	doc.Lines = make([]DocumentLine, 0, len(inv.ProductDetails))
	for i, item := range inv.ProductDetails {
		taxable := item.Price.Mul(item.Quantity)
		doc.Lines = append(doc.Lines, DocumentLine{
			No:           i + 1,
			Description:  item.Description,
			HSNSAC:       item.Unit,
			Price:        item.Price,
			Quantity:     item.Quantity,
			TaxableValue: taxable.Round(2),
			TaxAmount:    taxable.Mul(gstRate).Round(2),
			Amount:       item.Amount,
		})
		totalQty = totalQty.Add(item.Quantity)
	}
	doc.TotalItems = len(inv.ProductDetails)
	doc.TotalQuantity = totalQty

	total := inv.AmountDetails.TotalAmount
	doc.Total = total
	doc.CGST = total.Mul(splitRate).Round(2)
	doc.SGST = total.Mul(splitRate).Round(2)
	doc.AmountInWords = domainbilling.AmountInWords(total)

	return doc
}
