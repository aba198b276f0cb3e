package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/gulfbridge/freight_ledger_app/internal/apperrors"
	"github.com/gulfbridge/freight_ledger_app/internal/core/domain"
	portsrepo "github.com/gulfbridge/freight_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxChargeTypeRepository struct {
	BaseRepository
}

// newPgxChargeTypeRepository creates a new repository for the charge type master.
func newPgxChargeTypeRepository(pool *pgxpool.Pool) portsrepo.ChargeTypeRepositoryFacade {
	return &PgxChargeTypeRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ChargeTypeRepositoryFacade = (*PgxChargeTypeRepository)(nil)

func (r *PgxChargeTypeRepository) SaveChargeType(ctx context.Context, ct domain.ChargeType) (*domain.ChargeType, error) {
	query := `INSERT INTO charge_types (name) VALUES ($1) RETURNING charge_type_id, name;`
	var saved domain.ChargeType
	if err := r.Pool.QueryRow(ctx, query, ct.Name).Scan(&saved.ChargeTypeID, &saved.Name); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("charge type %q: %w", ct.Name, apperrors.ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to save charge type: %w", err)
	}
	return &saved, nil
}

func (r *PgxChargeTypeRepository) FindChargeTypeByID(ctx context.Context, chargeTypeID int64) (*domain.ChargeType, error) {
	query := `SELECT charge_type_id, name FROM charge_types WHERE charge_type_id = $1;`
	var ct domain.ChargeType
	if err := r.Pool.QueryRow(ctx, query, chargeTypeID).Scan(&ct.ChargeTypeID, &ct.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find charge type %d: %w", chargeTypeID, err)
	}
	return &ct, nil
}

func (r *PgxChargeTypeRepository) ListChargeTypes(ctx context.Context) ([]domain.ChargeType, error) {
	rows, err := r.Pool.Query(ctx, `SELECT charge_type_id, name FROM charge_types ORDER BY name;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query charge types: %w", err)
	}
	defer rows.Close()

	types, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ChargeType, error) {
		var ct domain.ChargeType
		err := row.Scan(&ct.ChargeTypeID, &ct.Name)
		return ct, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan charge types: %w", err)
	}
	return types, nil
}

// DeleteChargeType fails with ErrDuplicate when invoice items still reference
// the charge type; the FK is declared ON DELETE RESTRICT.
func (r *PgxChargeTypeRepository) DeleteChargeType(ctx context.Context, chargeTypeID int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM charge_types WHERE charge_type_id = $1;`, chargeTypeID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("charge type %d is referenced by invoice items: %w", chargeTypeID, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to delete charge type %d: %w", chargeTypeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
