package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/shineinfosolutions/crm-api/internal/application/dto"
	"github.com/shineinfosolutions/crm-api/internal/domain"
	domainbilling "github.com/shineinfosolutions/crm-api/internal/domain/billing"
	"github.com/shineinfosolutions/crm-api/internal/domain/entity"
	"github.com/shineinfosolutions/crm-api/internal/domain/repository"
)

// invoiceNumberFormat is the sequential number assigned to new invoices.
const invoiceNumberFormat = "INV-%03d"

// Dates arrive from the edit form as yyyy-mm-dd; stored records round-trip
// through RFC 3339 when the front-end re-submits a loaded invoice.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

// InvoiceUseCase owns the invoice lifecycle: create, update, fetch, list,
// delete and next-number assignment. Every write recomputes line amounts and
// the invoice total from the submitted inputs; stored totals are never
// trusted.
type InvoiceUseCase struct {
	repo     repository.InvoiceRepository
	notifier InvoiceNotifier
}

// NewInvoiceUseCase builds the use case. Pass NopNotifier when push
// notifications are disabled.
func NewInvoiceUseCase(repo repository.InvoiceRepository, notifier InvoiceNotifier) *InvoiceUseCase {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &InvoiceUseCase{repo: repo, notifier: notifier}
}

// Create persists a new invoice. The server assigns the id and, when the
// submitted invoiceNumber is empty, the next sequential number. Registered
// devices are notified after the write; notification failure is non-fatal.
func (uc *InvoiceUseCase) Create(ctx context.Context, in dto.InvoiceRequest) (*dto.InvoiceResponse, error) {
	inv := fromRequest(in)
	inv.ID = uuid.New().String()
	now := time.Now()
	inv.CreatedAt = now
	inv.UpdatedAt = now

	if inv.InvoiceNumber == "" {
		number, err := uc.NextInvoiceNumber(ctx)
		if err != nil {
			return nil, err
		}
		inv.InvoiceNumber = number
	}

	domainbilling.Recalculate(inv)

	if err := uc.repo.Create(ctx, inv); err != nil {
		return nil, err
	}

	uc.notifier.InvoiceCreated(ctx, inv)
	return toResponse(inv), nil
}

// Update replaces the invoice identified by id with the submitted fields,
// recomputing all derived amounts.
func (uc *InvoiceUseCase) Update(ctx context.Context, id string, in dto.InvoiceRequest) (*dto.InvoiceResponse, error) {
	existing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}

	inv := fromRequest(in)
	inv.ID = existing.ID
	inv.CreatedAt = existing.CreatedAt
	inv.UpdatedAt = time.Now()
	if inv.InvoiceNumber == "" {
		inv.InvoiceNumber = existing.InvoiceNumber
	}

	domainbilling.Recalculate(inv)

	if err := uc.repo.Update(ctx, inv); err != nil {
		return nil, err
	}
	return toResponse(inv), nil
}

// Get fetches one invoice by id.
func (uc *InvoiceUseCase) Get(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	return toResponse(inv), nil
}

// List returns all invoices in creation order; consumers that want newest
// first reverse the result themselves.
func (uc *InvoiceUseCase) List(ctx context.Context) ([]*dto.InvoiceResponse, error) {
	invoices, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, toResponse(inv))
	}
	return out, nil
}

// Delete removes one invoice by id.
func (uc *InvoiceUseCase) Delete(ctx context.Context, id string) error {
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}

// NextInvoiceNumber returns the successor of the highest stored sequential
// number, formatted for display in the new-invoice form.
func (uc *InvoiceUseCase) NextInvoiceNumber(ctx context.Context) (string, error) {
	seq, err := uc.repo.MaxInvoiceSequence(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(invoiceNumberFormat, seq+1), nil
}

func fromRequest(in dto.InvoiceRequest) *entity.Invoice {
	inv := &entity.Invoice{
		InvoiceNumber:   in.InvoiceNumber,
		CustomerName:    in.CustomerName,
		CustomerGST:     in.CustomerGST,
		CustomerAddress: in.CustomerAddress,
		CustomerPhone:   in.CustomerPhone,
		CustomerEmail:   in.CustomerEmail,
		CustomerAadhar:  in.CustomerAadhar,
		DispatchThrough: in.DispatchThrough,
		InvoiceDate:     parseDate(in.InvoiceDate),
		DueDate:         parseDate(in.DueDate),
		AmountDetails: entity.InvoiceAmountDetails{
			GSTPercentage:   in.AmountDetails.GSTPercentage.Decimal,
			DiscountOnTotal: in.AmountDetails.DiscountOnTotal.Decimal,
		},
	}
	inv.ProductDetails = make([]entity.InvoiceLineItem, 0, len(in.ProductDetails))
	for _, row := range in.ProductDetails {
		inv.ProductDetails = append(inv.ProductDetails, entity.InvoiceLineItem{
			Description:        row.Description,
			Unit:               row.Unit,
			Quantity:           row.Quantity.Decimal,
			Price:              row.Price.Decimal,
			DiscountPercentage: row.DiscountPercentage.Decimal,
			// Amount is recomputed by Recalculate
		})
	}
	return inv
}

func toResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	resp := &dto.InvoiceResponse{
		ID:              inv.ID,
		InvoiceNumber:   inv.InvoiceNumber,
		CustomerName:    inv.CustomerName,
		CustomerGST:     inv.CustomerGST,
		CustomerAddress: inv.CustomerAddress,
		CustomerPhone:   inv.CustomerPhone,
		CustomerEmail:   inv.CustomerEmail,
		CustomerAadhar:  inv.CustomerAadhar,
		DispatchThrough: inv.DispatchThrough,
		AmountDetails: dto.AmountDetailsResponse{
			GSTPercentage:   dto.N(inv.AmountDetails.GSTPercentage),
			DiscountOnTotal: dto.N(inv.AmountDetails.DiscountOnTotal),
			TotalAmount:     dto.N(inv.AmountDetails.TotalAmount),
		},
		ProductDetails: make([]dto.LineItemResponse, 0, len(inv.ProductDetails)),
	}
	if !inv.InvoiceDate.IsZero() {
		resp.InvoiceDate = inv.InvoiceDate.Format("2006-01-02")
	}
	if !inv.DueDate.IsZero() {
		resp.DueDate = inv.DueDate.Format("2006-01-02")
	}
	for _, item := range inv.ProductDetails {
		resp.ProductDetails = append(resp.ProductDetails, dto.LineItemResponse{
			Description:        item.Description,
			Unit:               item.Unit,
			Quantity:           dto.N(item.Quantity),
			Price:              dto.N(item.Price),
			DiscountPercentage: dto.N(item.DiscountPercentage),
			Amount:             dto.N(item.Amount),
		})
	}
	return resp
}

// parseDate applies the permissive parsing policy to date fields: any value
// that matches no known layout becomes the zero time.
func parseDate(s string) time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
