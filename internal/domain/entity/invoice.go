package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is a persisted tax invoice: customer header, ordered line items and
// the invoice-level amount fields. Line numbers are derived from position in
// ProductDetails, never stored.
type Invoice struct {
	ID              string
	InvoiceNumber   string
	CustomerName    string
	CustomerGST     string
	CustomerAddress string
	CustomerPhone   string
	CustomerEmail   string
	CustomerAadhar  string
	DispatchThrough string
	InvoiceDate     time.Time
	DueDate         time.Time
	ProductDetails  []InvoiceLineItem
	AmountDetails   InvoiceAmountDetails
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// InvoiceLineItem is one billable row. Amount is derived:
// round2(Price * Quantity * (1 - DiscountPercentage/100)).
type InvoiceLineItem struct {
	Description        string
	Unit               string
	Quantity           decimal.Decimal
	Price              decimal.Decimal
	DiscountPercentage decimal.Decimal
	Amount             decimal.Decimal
}

// InvoiceAmountDetails holds the invoice-level tax and discount inputs plus
// the derived total. TotalAmount is a pure function of the line items and the
// other two fields; it is recomputed on every write, never trusted as stored.
type InvoiceAmountDetails struct {
	GSTPercentage   decimal.Decimal
	DiscountOnTotal decimal.Decimal
	TotalAmount     decimal.Decimal
}
