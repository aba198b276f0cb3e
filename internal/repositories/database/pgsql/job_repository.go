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
)

const jobColumns = `job_id, client_id, job_date, shipment_invoice_no, transport_document_no,
		vat_number, transport_mode, shipment_address, port_loading, place_loading,
		port_discharge, place_discharge, no_of_packages, gross_weight, net_weight, cbm,
		is_finished, is_invoiced, created_at`

type PgxJobRepository struct {
	BaseRepository
}

// newPgxJobRepository creates a new repository for job data.
func newPgxJobRepository(pool *pgxpool.Pool) portsrepo.JobRepositoryFacade {
	return &PgxJobRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.JobRepositoryFacade = (*PgxJobRepository)(nil)

func scanJob(row pgx.Row) (models.Job, error) {
	var m models.Job
	err := row.Scan(
		&m.JobID,
		&m.ClientID,
		&m.JobDate,
		&m.ShipmentInvoiceNo,
		&m.TransportDocumentNo,
		&m.VATNumber,
		&m.TransportMode,
		&m.ShipmentAddress,
		&m.PortLoading,
		&m.PlaceLoading,
		&m.PortDischarge,
		&m.PlaceDischarge,
		&m.NoOfPackages,
		&m.GrossWeight,
		&m.NetWeight,
		&m.CBM,
		&m.IsFinished,
		&m.IsInvoiced,
		&m.CreatedAt,
	)
	return m, err
}

func (r *PgxJobRepository) SaveJob(ctx context.Context, job domain.Job) (*domain.Job, error) {
	m := mapping.ToModelJob(job)
	query := `
		INSERT INTO jobs (client_id, job_date, shipment_invoice_no, transport_document_no,
			vat_number, transport_mode, shipment_address, port_loading, place_loading,
			port_discharge, place_discharge, no_of_packages, gross_weight, net_weight, cbm,
			is_finished, is_invoiced, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING ` + jobColumns + `;
	`
	saved, err := scanJob(r.Pool.QueryRow(ctx, query,
		m.ClientID, m.JobDate, m.ShipmentInvoiceNo, m.TransportDocumentNo,
		m.VATNumber, m.TransportMode, m.ShipmentAddress, m.PortLoading, m.PlaceLoading,
		m.PortDischarge, m.PlaceDischarge, m.NoOfPackages, m.GrossWeight, m.NetWeight, m.CBM,
		m.IsFinished, m.IsInvoiced, time.Now()))
	if err != nil {
		return nil, fmt.Errorf("failed to save job: %w", err)
	}
	d := mapping.ToDomainJob(saved)
	return &d, nil
}

func (r *PgxJobRepository) FindJobByID(ctx context.Context, jobID int64) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE job_id = $1;`
	m, err := scanJob(r.Pool.QueryRow(ctx, query, jobID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find job %d: %w", jobID, err)
	}
	d := mapping.ToDomainJob(m)
	return &d, nil
}

func (r *PgxJobRepository) ListJobs(ctx context.Context) ([]domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs ORDER BY job_id DESC;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query jobs: %w", err)
	}
	defer rows.Close()

	return collectJobs(rows)
}

func (r *PgxJobRepository) ListInvoicedJobsByClient(ctx context.Context, clientID int64, from, to *time.Time) ([]domain.Job, error) {
	query := `
		SELECT ` + jobColumns + `
		FROM jobs
		WHERE client_id = $1 AND is_invoiced
		  AND ($2::date IS NULL OR job_date >= $2)
		  AND ($3::date IS NULL OR job_date <= $3)
		ORDER BY job_date, job_id;
	`
	rows, err := r.Pool.Query(ctx, query, clientID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoiced jobs for client %d: %w", clientID, err)
	}
	defer rows.Close()

	return collectJobs(rows)
}

func collectJobs(rows pgx.Rows) ([]domain.Job, error) {
	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Job, error) {
		return scanJob(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan jobs: %w", err)
	}
	out := make([]domain.Job, len(ms))
	for i, m := range ms {
		out[i] = mapping.ToDomainJob(m)
	}
	return out, nil
}

func (r *PgxJobRepository) UpdateJob(ctx context.Context, job domain.Job) error {
	m := mapping.ToModelJob(job)
	query := `
		UPDATE jobs
		SET client_id = $2, job_date = $3, shipment_invoice_no = $4, transport_document_no = $5,
			vat_number = $6, transport_mode = $7, shipment_address = $8, port_loading = $9,
			place_loading = $10, port_discharge = $11, place_discharge = $12, no_of_packages = $13,
			gross_weight = $14, net_weight = $15, cbm = $16, is_finished = $17, is_invoiced = $18
		WHERE job_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.JobID, m.ClientID, m.JobDate, m.ShipmentInvoiceNo, m.TransportDocumentNo,
		m.VATNumber, m.TransportMode, m.ShipmentAddress, m.PortLoading,
		m.PlaceLoading, m.PortDischarge, m.PlaceDischarge, m.NoOfPackages,
		m.GrossWeight, m.NetWeight, m.CBM, m.IsFinished, m.IsInvoiced)
	if err != nil {
		return fmt.Errorf("failed to update job %d: %w", job.JobID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxJobRepository) MarkJobInvoiced(ctx context.Context, jobID int64, invoiced bool) error {
	tag, err := r.Pool.Exec(ctx, `UPDATE jobs SET is_invoiced = $2 WHERE job_id = $1;`, jobID, invoiced)
	if err != nil {
		return fmt.Errorf("failed to mark job %d invoiced: %w", jobID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxJobRepository) DeleteJob(ctx context.Context, jobID int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM jobs WHERE job_id = $1;`, jobID)
	if err != nil {
		return fmt.Errorf("failed to delete job %d: %w", jobID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
