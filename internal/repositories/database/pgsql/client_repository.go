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

const clientColumns = "client_id, name, address, postal_code, phone, email, vat_number, created_at"

type PgxClientRepository struct {
	BaseRepository
}

// newPgxClientRepository creates a new repository for client data.
func newPgxClientRepository(pool *pgxpool.Pool) portsrepo.ClientRepositoryFacade {
	return &PgxClientRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ClientRepositoryFacade = (*PgxClientRepository)(nil)

func scanClient(row pgx.Row) (models.Client, error) {
	var m models.Client
	err := row.Scan(
		&m.ClientID,
		&m.Name,
		&m.Address,
		&m.PostalCode,
		&m.Phone,
		&m.Email,
		&m.VATNumber,
		&m.CreatedAt,
	)
	return m, err
}

func (r *PgxClientRepository) SaveClient(ctx context.Context, client domain.Client) (*domain.Client, error) {
	m := mapping.ToModelClient(client)
	query := `
		INSERT INTO clients (name, address, postal_code, phone, email, vat_number, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + clientColumns + `;
	`
	saved, err := scanClient(r.Pool.QueryRow(ctx, query,
		m.Name, m.Address, m.PostalCode, m.Phone, m.Email, m.VATNumber, time.Now()))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("client %q: %w", client.Name, apperrors.ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to save client: %w", err)
	}
	d := mapping.ToDomainClient(saved)
	return &d, nil
}

func (r *PgxClientRepository) FindClientByID(ctx context.Context, clientID int64) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE client_id = $1;`
	m, err := scanClient(r.Pool.QueryRow(ctx, query, clientID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find client %d: %w", clientID, err)
	}
	d := mapping.ToDomainClient(m)
	return &d, nil
}

func (r *PgxClientRepository) ListClients(ctx context.Context) ([]domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients ORDER BY client_id DESC;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query clients: %w", err)
	}
	defer rows.Close()

	return collectClients(rows)
}

func (r *PgxClientRepository) ListClientsWithJobs(ctx context.Context) ([]domain.Client, error) {
	query := `
		SELECT DISTINCT c.client_id, c.name, c.address, c.postal_code, c.phone, c.email, c.vat_number, c.created_at
		FROM clients c
		JOIN jobs j ON j.client_id = c.client_id
		ORDER BY c.name;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query clients with jobs: %w", err)
	}
	defer rows.Close()

	return collectClients(rows)
}

func collectClients(rows pgx.Rows) ([]domain.Client, error) {
	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Client, error) {
		return scanClient(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan clients: %w", err)
	}
	out := make([]domain.Client, len(ms))
	for i, m := range ms {
		out[i] = mapping.ToDomainClient(m)
	}
	return out, nil
}

// FindOrCreateClientByName is race-safe against the unique index on name: the
// insert path retries the lookup when a concurrent create wins.
func (r *PgxClientRepository) FindOrCreateClientByName(ctx context.Context, client domain.Client) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE name = $1;`
	m, err := scanClient(r.Pool.QueryRow(ctx, query, client.Name))
	if err == nil {
		d := mapping.ToDomainClient(m)
		return &d, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to find client by name %q: %w", client.Name, err)
	}

	saved, err := r.SaveClient(ctx, client)
	if err == nil {
		return saved, nil
	}
	if errors.Is(err, apperrors.ErrDuplicate) {
		m, err := scanClient(r.Pool.QueryRow(ctx, query, client.Name))
		if err != nil {
			return nil, fmt.Errorf("failed to re-find client by name %q: %w", client.Name, err)
		}
		d := mapping.ToDomainClient(m)
		return &d, nil
	}
	return nil, err
}

func (r *PgxClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	m := mapping.ToModelClient(client)
	query := `
		UPDATE clients
		SET name = $2, address = $3, postal_code = $4, phone = $5, email = $6, vat_number = $7
		WHERE client_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.ClientID, m.Name, m.Address, m.PostalCode, m.Phone, m.Email, m.VATNumber)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("client %q: %w", client.Name, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to update client %d: %w", client.ClientID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxClientRepository) DeleteClient(ctx context.Context, clientID int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM clients WHERE client_id = $1;`, clientID)
	if err != nil {
		return fmt.Errorf("failed to delete client %d: %w", clientID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
