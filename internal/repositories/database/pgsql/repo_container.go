package pgsql

import (
	portsrepo "github.com/gulfbridge/freight_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ClientRepo:      newPgxClientRepository(dbPool),
		JobRepo:         newPgxJobRepository(dbPool),
		InvoiceItemRepo: newPgxInvoiceItemRepository(dbPool),
		ChargeTypeRepo:  newPgxChargeTypeRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
		PartyRepo:       newPgxPartyRepository(dbPool),
		AuditLogRepo:    newPgxAuditLogRepository(dbPool),
	}
}
