package billing

import (
	"context"

	"github.com/shineinfosolutions/crm-api/internal/domain/entity"
)

// DocumentGenerator turns a built tax-invoice document into an exported
// artifact (PDF). Generation is a synchronous transformation of in-memory
// data; it performs no I/O of its own.
type DocumentGenerator interface {
	Generate(ctx context.Context, doc *TaxInvoiceDocument) ([]byte, error)
}

// InvoiceNotifier is told about invoice lifecycle events. Implementations
// must be non-fatal: a failed notification never fails the operation.
type InvoiceNotifier interface {
	InvoiceCreated(ctx context.Context, inv *entity.Invoice)
}

// NopNotifier ignores all events.
type NopNotifier struct{}

func (NopNotifier) InvoiceCreated(context.Context, *entity.Invoice) {}
