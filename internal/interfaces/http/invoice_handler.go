package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/shineinfosolutions/crm-api/internal/application/billing"
	"github.com/shineinfosolutions/crm-api/internal/application/dto"
	"github.com/shineinfosolutions/crm-api/internal/domain"
)

// InvoiceHandler serves the invoice endpoints (protected).
type InvoiceHandler struct {
	uc    *billing.InvoiceUseCase
	pdfUC *billing.PDFUseCase
}

// NewInvoiceHandler builds the handler.
func NewInvoiceHandler(uc *billing.InvoiceUseCase, pdfUC *billing.PDFUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc, pdfUC: pdfUC}
}

// Create stores a new invoice, assigning id and number server-side.
// POST /api/invoices/create
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.InvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	invoice, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return invoiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.DataResponse{Success: true, Data: invoice})
}

// Update replaces an existing invoice.
// PUT /api/invoices/update/:id
func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id required"})
	}
	var in dto.InvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	invoice, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return invoiceError(c, err)
	}
	return c.JSON(dto.DataResponse{Success: true, Data: invoice})
}

// GetByID returns a single invoice.
// GET /api/invoices/mono/:id
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id required"})
	}
	invoice, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return invoiceError(c, err)
	}
	return c.JSON(dto.DataResponse{Success: true, Data: invoice})
}

// List returns all invoices in creation order.
// GET /api/invoices/all
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	invoices, err := h.uc.List(c.Context())
	if err != nil {
		return invoiceError(c, err)
	}
	return c.JSON(dto.DataResponse{Success: true, Data: invoices})
}

// Delete removes one invoice.
// DELETE /api/invoices/delete/:id
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id required"})
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return invoiceError(c, err)
	}
	return c.JSON(dto.DataResponse{Success: true, Data: fiber.Map{"id": id}})
}

// NextNumber returns the number the next created invoice will receive.
// Unlike the other endpoints this one responds without the envelope: the
// new-invoice form reads nextInvoiceNumber at the top level.
// GET /api/invoices/next-invoice-number
func (h *InvoiceHandler) NextNumber(c *fiber.Ctx) error {
	number, err := h.uc.NextInvoiceNumber(c.Context())
	if err != nil {
		return invoiceError(c, err)
	}
	return c.JSON(dto.NextInvoiceNumberResponse{NextInvoiceNumber: number})
}

// DownloadPDF streams the rendered tax invoice as an attachment.
// GET /api/invoices/:id/pdf
func (h *InvoiceHandler) DownloadPDF(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id required"})
	}
	pdfBytes, filename, err := h.pdfUC.DownloadInvoicePDF(c.Context(), id)
	if err != nil {
		return invoiceError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

func invoiceError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "invoice not found"})
	}
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid input"})
	}
	if errors.Is(err, domain.ErrDuplicate) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "invoice number already exists"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
