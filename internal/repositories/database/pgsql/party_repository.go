package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/gulfbridge/freight_ledger_app/internal/apperrors"
	"github.com/gulfbridge/freight_ledger_app/internal/core/domain"
	portsrepo "github.com/gulfbridge/freight_ledger_app/internal/core/ports/repositories"
	"github.com/gulfbridge/freight_ledger_app/internal/models"
	"github.com/gulfbridge/freight_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPartyRepository struct {
	BaseRepository
}

// newPgxPartyRepository creates a new repository for the party name registry.
func newPgxPartyRepository(pool *pgxpool.Pool) portsrepo.PartyRepositoryFacade {
	return &PgxPartyRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PartyRepositoryFacade = (*PgxPartyRepository)(nil)

func scanParty(row pgx.Row) (models.Party, error) {
	var m models.Party
	err := row.Scan(&m.PartyID, &m.Name, &m.CreatedAt)
	return m, err
}

func (r *PgxPartyRepository) SaveParty(ctx context.Context, party domain.Party) (*domain.Party, error) {
	query := `INSERT INTO parties (name, created_at) VALUES ($1, $2) RETURNING party_id, name, created_at;`
	m, err := scanParty(r.Pool.QueryRow(ctx, query, party.Name, party.CreatedAt))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("party %q: %w", party.Name, apperrors.ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to save party: %w", err)
	}
	d := mapping.ToDomainParty(m)
	return &d, nil
}

func (r *PgxPartyRepository) FindPartyByID(ctx context.Context, partyID int64) (*domain.Party, error) {
	query := `SELECT party_id, name, created_at FROM parties WHERE party_id = $1;`
	m, err := scanParty(r.Pool.QueryRow(ctx, query, partyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find party %d: %w", partyID, err)
	}
	d := mapping.ToDomainParty(m)
	return &d, nil
}

func (r *PgxPartyRepository) ListParties(ctx context.Context) ([]domain.Party, error) {
	rows, err := r.Pool.Query(ctx, `SELECT party_id, name, created_at FROM parties ORDER BY name;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query parties: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Party, error) {
		return scanParty(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan parties: %w", err)
	}
	out := make([]domain.Party, len(ms))
	for i, m := range ms {
		out[i] = mapping.ToDomainParty(m)
	}
	return out, nil
}

func (r *PgxPartyRepository) DeleteParty(ctx context.Context, partyID int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM parties WHERE party_id = $1;`, partyID)
	if err != nil {
		return fmt.Errorf("failed to delete party %d: %w", partyID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
