package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shineinfosolutions/crm-api/internal/domain"
	"github.com/shineinfosolutions/crm-api/internal/domain/entity"
	"github.com/shineinfosolutions/crm-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implements InvoiceRepository on PostgreSQL. One header row in
// invoices, line items in invoice_items keyed by (invoice_id, position).
type InvoiceRepo struct {
	pool *pgxpool.Pool
}

// NewInvoiceRepository builds the adapter.
func NewInvoiceRepository(pool *pgxpool.Pool) *InvoiceRepo {
	return &InvoiceRepo{pool: pool}
}

// Create persists the header and all line items in one transaction.
func (r *InvoiceRepo) Create(ctx context.Context, inv *entity.Invoice) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO invoices (id, invoice_number, customer_name, customer_gst, customer_address,
		                      customer_phone, customer_email, customer_aadhar, dispatch_through,
		                      invoice_date, due_date, gst_percentage, discount_on_total, total_amount,
		                      created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err = tx.Exec(ctx, query,
		inv.ID, inv.InvoiceNumber, inv.CustomerName, inv.CustomerGST, inv.CustomerAddress,
		inv.CustomerPhone, inv.CustomerEmail, inv.CustomerAadhar, inv.DispatchThrough,
		nullIfZeroTime(inv.InvoiceDate), nullIfZeroTime(inv.DueDate),
		inv.AmountDetails.GSTPercentage, inv.AmountDetails.DiscountOnTotal, inv.AmountDetails.TotalAmount,
		inv.CreatedAt, inv.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("invoice number already exists: %w", domain.ErrDuplicate)
		}
		return fmt.Errorf("insert invoice: %w", err)
	}

	if err := insertItems(ctx, tx, inv.ID, inv.ProductDetails); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// Update rewrites the header and replaces all line items.
func (r *InvoiceRepo) Update(ctx context.Context, inv *entity.Invoice) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE invoices
		SET invoice_number    = $2,
		    customer_name     = $3,
		    customer_gst      = $4,
		    customer_address  = $5,
		    customer_phone    = $6,
		    customer_email    = $7,
		    customer_aadhar   = $8,
		    dispatch_through  = $9,
		    invoice_date      = $10,
		    due_date          = $11,
		    gst_percentage    = $12,
		    discount_on_total = $13,
		    total_amount      = $14,
		    updated_at        = $15
		WHERE id = $1`
	_, err = tx.Exec(ctx, query,
		inv.ID, inv.InvoiceNumber, inv.CustomerName, inv.CustomerGST, inv.CustomerAddress,
		inv.CustomerPhone, inv.CustomerEmail, inv.CustomerAadhar, inv.DispatchThrough,
		nullIfZeroTime(inv.InvoiceDate), nullIfZeroTime(inv.DueDate),
		inv.AmountDetails.GSTPercentage, inv.AmountDetails.DiscountOnTotal, inv.AmountDetails.TotalAmount,
		inv.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update invoice: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM invoice_items WHERE invoice_id = $1`, inv.ID); err != nil {
		return fmt.Errorf("clear invoice items: %w", err)
	}
	if err := insertItems(ctx, tx, inv.ID, inv.ProductDetails); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// GetByID fetches a full invoice: header plus line items ordered by position.
// Returns (nil, nil) when no record exists.
func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	query := `
		SELECT id, invoice_number, customer_name, customer_gst, customer_address,
		       customer_phone, customer_email, customer_aadhar, dispatch_through,
		       invoice_date, due_date, gst_percentage, discount_on_total, total_amount,
		       created_at, updated_at
		FROM invoices WHERE id = $1`
	inv, err := scanInvoice(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	if err := r.loadItems(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// List returns all invoices with their line items in creation order. The
// list screen reverses the payload client-side to show newest first.
func (r *InvoiceRepo) List(ctx context.Context) ([]*entity.Invoice, error) {
	query := `
		SELECT id, invoice_number, customer_name, customer_gst, customer_address,
		       customer_phone, customer_email, customer_aadhar, dispatch_through,
		       invoice_date, due_date, gst_percentage, discount_on_total, total_amount,
		       created_at, updated_at
		FROM invoices ORDER BY created_at`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	var list []*entity.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, inv := range list {
		if err := r.loadItems(ctx, inv); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// Delete removes an invoice and its items. Returns false when nothing matched.
func (r *InvoiceRepo) Delete(ctx context.Context, id string) (bool, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM invoice_items WHERE invoice_id = $1`, id); err != nil {
		return false, fmt.Errorf("delete invoice items: %w", err)
	}
	tag, err := tx.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete invoice: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// MaxInvoiceSequence extracts the highest numeric suffix among invoice
// numbers, e.g. "INV-041" -> 41. Non-numeric numbers are ignored.
func (r *InvoiceRepo) MaxInvoiceSequence(ctx context.Context) (int64, error) {
	const query = `
		SELECT COALESCE(MAX(NULLIF(regexp_replace(invoice_number, '\D', '', 'g'), '')::bigint), 0)
		FROM invoices`
	var seq int64
	if err := r.pool.QueryRow(ctx, query).Scan(&seq); err != nil {
		return 0, fmt.Errorf("max invoice sequence: %w", err)
	}
	return seq, nil
}

func (r *InvoiceRepo) loadItems(ctx context.Context, inv *entity.Invoice) error {
	query := `
		SELECT description, unit, quantity, price, discount_percentage, amount
		FROM invoice_items WHERE invoice_id = $1 ORDER BY position`
	rows, err := r.pool.Query(ctx, query, inv.ID)
	if err != nil {
		return fmt.Errorf("list invoice items: %w", err)
	}
	defer rows.Close()

	inv.ProductDetails = inv.ProductDetails[:0]
	for rows.Next() {
		var item entity.InvoiceLineItem
		if err := rows.Scan(&item.Description, &item.Unit, &item.Quantity, &item.Price,
			&item.DiscountPercentage, &item.Amount); err != nil {
			return fmt.Errorf("scan invoice item: %w", err)
		}
		inv.ProductDetails = append(inv.ProductDetails, item)
	}
	return rows.Err()
}

func insertItems(ctx context.Context, tx pgx.Tx, invoiceID string, items []entity.InvoiceLineItem) error {
	const query = `
		INSERT INTO invoice_items (invoice_id, position, description, unit, quantity, price, discount_percentage, amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	for i, item := range items {
		_, err := tx.Exec(ctx, query,
			invoiceID, i, item.Description, item.Unit, item.Quantity, item.Price,
			item.DiscountPercentage, item.Amount,
		)
		if err != nil {
			return fmt.Errorf("insert invoice item %d: %w", i, err)
		}
	}
	return nil
}

// scanInvoice reads one invoices row. Nullable dates map to the zero time.
func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var inv entity.Invoice
	var invoiceDate, dueDate *time.Time
	err := row.Scan(
		&inv.ID, &inv.InvoiceNumber, &inv.CustomerName, &inv.CustomerGST, &inv.CustomerAddress,
		&inv.CustomerPhone, &inv.CustomerEmail, &inv.CustomerAadhar, &inv.DispatchThrough,
		&invoiceDate, &dueDate,
		&inv.AmountDetails.GSTPercentage, &inv.AmountDetails.DiscountOnTotal, &inv.AmountDetails.TotalAmount,
		&inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if invoiceDate != nil {
		inv.InvoiceDate = *invoiceDate
	}
	if dueDate != nil {
		inv.DueDate = *dueDate
	}
	return &inv, nil
}

func nullIfZeroTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
