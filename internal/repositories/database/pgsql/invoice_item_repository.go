package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gulfbridge/freight_ledger_app/internal/apperrors"
	"github.com/gulfbridge/freight_ledger_app/internal/core/domain"
	portsrepo "github.com/gulfbridge/freight_ledger_app/internal/core/ports/repositories"
	"github.com/gulfbridge/freight_ledger_app/internal/models"
	"github.com/gulfbridge/freight_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const invoiceItemColumns = "invoice_item_id, job_id, charge_type_id, description, amount, vat, total"

type PgxInvoiceItemRepository struct {
	BaseRepository
}

// newPgxInvoiceItemRepository creates a new repository for invoice item data.
func newPgxInvoiceItemRepository(pool *pgxpool.Pool) portsrepo.InvoiceItemRepositoryFacade {
	return &PgxInvoiceItemRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.InvoiceItemRepositoryFacade = (*PgxInvoiceItemRepository)(nil)

func scanInvoiceItem(row pgx.Row) (models.InvoiceItem, error) {
	var m models.InvoiceItem
	err := row.Scan(
		&m.InvoiceItemID,
		&m.JobID,
		&m.ChargeTypeID,
		&m.Description,
		&m.Amount,
		&m.VAT,
		&m.Total,
	)
	return m, err
}

func (r *PgxInvoiceItemRepository) SaveInvoiceItem(ctx context.Context, item domain.InvoiceItem) (*domain.InvoiceItem, error) {
	m := mapping.ToModelInvoiceItem(item)
	query := `
		INSERT INTO invoice_items (job_id, charge_type_id, description, amount, vat, total)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + invoiceItemColumns + `;
	`
	saved, err := scanInvoiceItem(r.Pool.QueryRow(ctx, query,
		m.JobID, m.ChargeTypeID, m.Description, m.Amount, m.VAT, m.Total))
	if err != nil {
		return nil, fmt.Errorf("failed to save invoice item: %w", err)
	}
	d := mapping.ToDomainInvoiceItem(saved)
	return &d, nil
}

func (r *PgxInvoiceItemRepository) FindInvoiceItemByID(ctx context.Context, invoiceItemID int64) (*domain.InvoiceItem, error) {
	query := `SELECT ` + invoiceItemColumns + ` FROM invoice_items WHERE invoice_item_id = $1;`
	m, err := scanInvoiceItem(r.Pool.QueryRow(ctx, query, invoiceItemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find invoice item %d: %w", invoiceItemID, err)
	}
	d := mapping.ToDomainInvoiceItem(m)
	return &d, nil
}

func (r *PgxInvoiceItemRepository) ListInvoiceItemsByJobID(ctx context.Context, jobID int64) ([]domain.InvoiceItem, error) {
	query := `SELECT ` + invoiceItemColumns + ` FROM invoice_items WHERE job_id = $1 ORDER BY invoice_item_id;`
	rows, err := r.Pool.Query(ctx, query, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoice items for job %d: %w", jobID, err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.InvoiceItem, error) {
		return scanInvoiceItem(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan invoice items: %w", err)
	}
	out := make([]domain.InvoiceItem, len(ms))
	for i, m := range ms {
		out[i] = mapping.ToDomainInvoiceItem(m)
	}
	return out, nil
}

func (r *PgxInvoiceItemRepository) SumInvoiceItemTotals(ctx context.Context, jobID int64) (decimal.Decimal, error) {
	var total decimal.Decimal
	query := `SELECT COALESCE(SUM(total), 0) FROM invoice_items WHERE job_id = $1;`
	if err := r.Pool.QueryRow(ctx, query, jobID).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum invoice items for job %d: %w", jobID, err)
	}
	return total, nil
}

func (r *PgxInvoiceItemRepository) SumInvoiceTotalsForClient(ctx context.Context, clientID int64, from, to *time.Time) (domain.InvoiceTotals, error) {
	query := `
		SELECT COALESCE(SUM(i.amount), 0), COALESCE(SUM(i.vat), 0), COALESCE(SUM(i.total), 0)
		FROM invoice_items i
		JOIN jobs j ON j.job_id = i.job_id
		WHERE j.client_id = $1 AND j.is_invoiced
		  AND ($2::date IS NULL OR j.job_date >= $2)
		  AND ($3::date IS NULL OR j.job_date <= $3);
	`
	var totals domain.InvoiceTotals
	if err := r.Pool.QueryRow(ctx, query, clientID, from, to).Scan(&totals.Amount, &totals.VAT, &totals.Total); err != nil {
		return domain.InvoiceTotals{}, fmt.Errorf("failed to sum invoice totals for client %d: %w", clientID, err)
	}
	return totals, nil
}

func (r *PgxInvoiceItemRepository) UpdateInvoiceItem(ctx context.Context, item domain.InvoiceItem) error {
	m := mapping.ToModelInvoiceItem(item)
	query := `
		UPDATE invoice_items
		SET charge_type_id = $2, description = $3, amount = $4, vat = $5, total = $6
		WHERE invoice_item_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.InvoiceItemID, m.ChargeTypeID, m.Description, m.Amount, m.VAT, m.Total)
	if err != nil {
		return fmt.Errorf("failed to update invoice item %d: %w", item.InvoiceItemID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxInvoiceItemRepository) DeleteInvoiceItem(ctx context.Context, invoiceItemID int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM invoice_items WHERE invoice_item_id = $1;`, invoiceItemID)
	if err != nil {
		return fmt.Errorf("failed to delete invoice item %d: %w", invoiceItemID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
