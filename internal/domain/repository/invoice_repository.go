package repository

import (
	"context"

	"github.com/shineinfosolutions/crm-api/internal/domain/entity"
)

// InvoiceRepository is the persistence port for invoices. Lookups return
// (nil, nil) when no record exists; use cases map that to domain.ErrNotFound.
type InvoiceRepository interface {
	Create(ctx context.Context, inv *entity.Invoice) error
	Update(ctx context.Context, inv *entity.Invoice) error
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	List(ctx context.Context) ([]*entity.Invoice, error)
	Delete(ctx context.Context, id string) (bool, error)

	// MaxInvoiceSequence returns the highest numeric suffix among stored
	// invoice numbers (0 when there are none).
	MaxInvoiceSequence(ctx context.Context) (int64, error)
}
