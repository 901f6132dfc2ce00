package billing

import (
	"context"
	"fmt"

	"github.com/shineinfosolutions/crm-api/internal/domain"
	"github.com/shineinfosolutions/crm-api/internal/domain/repository"
)

// PDFUseCase produces the print-ready rendering of a persisted invoice.
// Layout building is pure (BuildDocument); only the final export goes through
// the injected generator.
type PDFUseCase struct {
	repo      repository.InvoiceRepository
	generator DocumentGenerator
	seller    SellerInfo
}

// NewPDFUseCase builds the use case with the configured seller identity.
func NewPDFUseCase(repo repository.InvoiceRepository, generator DocumentGenerator, seller SellerInfo) *PDFUseCase {
	return &PDFUseCase{repo: repo, generator: generator, seller: seller}
}

// DownloadInvoicePDF loads the invoice, builds the tax-invoice document and
// exports it.
//
// Returns:
//   - (pdfBytes, filename, nil) on success.
//   - domain.ErrNotFound when the invoice does not exist; nothing is
//     partially rendered.
func (uc *PDFUseCase) DownloadInvoicePDF(ctx context.Context, invoiceID string) (pdfBytes []byte, filename string, err error) {
	inv, err := uc.repo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: load invoice: %w", err)
	}
	if inv == nil {
		return nil, "", domain.ErrNotFound
	}

	doc := BuildDocument(inv, uc.seller)

	pdfBytes, err = uc.generator.Generate(ctx, doc)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generation failed: %w", err)
	}

	return pdfBytes, doc.PrintTitle() + ".pdf", nil
}
