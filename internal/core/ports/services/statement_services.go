package services

import (
	"context"
	"time"

	"github.com/gulfbridge/freight_ledger_app/internal/core/domain"
)

// StatementSvcFacade builds ledger reports. Statement entries come solely
// from the transactions table; invoice-item aggregates are attached as an
// informational block and reconciled separately.
type StatementSvcFacade interface {
	// BuildStatement produces a client's running-balance statement over the
	// inclusive date window; nil bounds leave that side open.
	BuildStatement(ctx context.Context, clientID int64, from, to *time.Time) (*domain.StatementReport, error)

	// AccountStatement summarizes cash movement across all transactions.
	AccountStatement(ctx context.Context) (*domain.AccountStatement, error)

	// BuildReconciliation compares each invoiced job's item totals against its
	// ledger shadow entry for one client.
	BuildReconciliation(ctx context.Context, clientID int64) (*domain.Client, []domain.ReconciliationRow, error)
}
