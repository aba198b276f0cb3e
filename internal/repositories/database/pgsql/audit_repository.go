package pgsql

import (
	"context"
	"fmt"

	"github.com/gulfbridge/freight_ledger_app/internal/core/domain"
	portsrepo "github.com/gulfbridge/freight_ledger_app/internal/core/ports/repositories"
	"github.com/gulfbridge/freight_ledger_app/internal/models"
	"github.com/gulfbridge/freight_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAuditLogRepository struct {
	BaseRepository
}

// newPgxAuditLogRepository creates a new repository for the audit trail.
func newPgxAuditLogRepository(pool *pgxpool.Pool) portsrepo.AuditLogRepositoryFacade {
	return &PgxAuditLogRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AuditLogRepositoryFacade = (*PgxAuditLogRepository)(nil)

func (r *PgxAuditLogRepository) SaveAuditLog(ctx context.Context, entry domain.AuditLog) error {
	query := `INSERT INTO audit_logs (audit_id, user_name, action, created_at) VALUES ($1, $2, $3, $4);`
	if _, err := r.Pool.Exec(ctx, query, entry.AuditID, entry.UserName, entry.Action, entry.CreatedAt); err != nil {
		return fmt.Errorf("failed to save audit entry: %w", err)
	}
	return nil
}

func (r *PgxAuditLogRepository) ListAuditLogs(ctx context.Context, limit int) ([]domain.AuditLog, error) {
	query := `SELECT audit_id, user_name, action, created_at FROM audit_logs ORDER BY created_at DESC LIMIT $1;`
	rows, err := r.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit entries: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.AuditLog, error) {
		var m models.AuditLog
		err := row.Scan(&m.AuditID, &m.UserName, &m.Action, &m.CreatedAt)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan audit entries: %w", err)
	}
	out := make([]domain.AuditLog, len(ms))
	for i, m := range ms {
		out[i] = mapping.ToDomainAuditLog(m)
	}
	return out, nil
}
