package dto

// InvoiceRequest body for POST /api/invoices/create and PUT /api/invoices/update/:id.
// Field names match what the CRM front-end submits. Amount and totalAmount are
// accepted but ignored: both are recomputed server-side.
type InvoiceRequest struct {
	InvoiceNumber   string               `json:"invoiceNumber"`
	CustomerName    string               `json:"customerName"`
	CustomerGST     string               `json:"customerGST"`
	CustomerAddress string               `json:"customerAddress"`
	CustomerPhone   string               `json:"customerPhone"`
	CustomerEmail   string               `json:"customerEmail"`
	CustomerAadhar  string               `json:"customerAadhar"`
	DispatchThrough string               `json:"dispatchThrough"`
	InvoiceDate     string               `json:"invoiceDate"`
	DueDate         string               `json:"dueDate"`
	ProductDetails  []LineItemRequest    `json:"productDetails"`
	AmountDetails   AmountDetailsRequest `json:"amountDetails"`
}

// LineItemRequest one row of the edit form.
type LineItemRequest struct {
	Description        string `json:"description"`
	Unit               string `json:"unit"`
	Quantity           Number `json:"quantity"`
	Price              Number `json:"price"`
	DiscountPercentage Number `json:"discountPercentage"`
	Amount             Number `json:"amount"`
}

// AmountDetailsRequest invoice-level tax and discount inputs.
type AmountDetailsRequest struct {
	GSTPercentage   Number `json:"gstPercentage"`
	DiscountOnTotal Number `json:"discountOnTotal"`
	TotalAmount     Number `json:"totalAmount"`
}

// InvoiceResponse full invoice as consumed by the CRM screens.
type InvoiceResponse struct {
	ID              string                `json:"id"`
	InvoiceNumber   string                `json:"invoiceNumber"`
	CustomerName    string                `json:"customerName"`
	CustomerGST     string                `json:"customerGST"`
	CustomerAddress string                `json:"customerAddress"`
	CustomerPhone   string                `json:"customerPhone"`
	CustomerEmail   string                `json:"customerEmail"`
	CustomerAadhar  string                `json:"customerAadhar"`
	DispatchThrough string                `json:"dispatchThrough"`
	InvoiceDate     string                `json:"invoiceDate"`
	DueDate         string                `json:"dueDate"`
	ProductDetails  []LineItemResponse    `json:"productDetails"`
	AmountDetails   AmountDetailsResponse `json:"amountDetails"`
}

// LineItemResponse one stored line with its derived amount.
type LineItemResponse struct {
	Description        string `json:"description"`
	Unit               string `json:"unit"`
	Quantity           Number `json:"quantity"`
	Price              Number `json:"price"`
	DiscountPercentage Number `json:"discountPercentage"`
	Amount             Number `json:"amount"`
}

// AmountDetailsResponse invoice-level fields with the derived total.
type AmountDetailsResponse struct {
	GSTPercentage   Number `json:"gstPercentage"`
	DiscountOnTotal Number `json:"discountOnTotal"`
	TotalAmount     Number `json:"totalAmount"`
}

// NextInvoiceNumberResponse body for GET /api/invoices/next-invoice-number.
type NextInvoiceNumberResponse struct {
	NextInvoiceNumber string `json:"nextInvoiceNumber"`
}
