package services

import (
	portsrepo "github.com/gulfbridge/freight_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/gulfbridge/freight_ledger_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Audit first, the writing services record through it.
	container.Audit = NewAuditService(repos.AuditLogRepo)

	// The syncer is shared by job and invoice item services so both paths
	// maintain the same shadow entry.
	syncer := NewInvoiceSyncer(repos.ClientRepo, repos.InvoiceItemRepo, repos.TransactionRepo)

	container.Client = NewClientService(repos.ClientRepo)
	container.ChargeType = NewChargeTypeService(repos.ChargeTypeRepo)
	container.Party = NewPartyService(repos.PartyRepo)
	container.Job = NewJobService(repos.JobRepo, repos.ClientRepo, syncer, container.Audit)
	container.InvoiceItem = NewInvoiceItemService(repos.InvoiceItemRepo, repos.JobRepo, repos.ChargeTypeRepo, syncer)
	container.Transaction = NewTransactionService(repos.TransactionRepo, repos.JobRepo, repos.ClientRepo, container.Audit)
	container.Statement = NewStatementService(repos.ClientRepo, repos.JobRepo, repos.InvoiceItemRepo, repos.TransactionRepo)

	return container
}

// Compile-time interface checks
var (
	_ portssvc.ClientSvcFacade      = (*ClientService)(nil)
	_ portssvc.JobSvcFacade         = (*JobService)(nil)
	_ portssvc.InvoiceItemSvcFacade = (*InvoiceItemService)(nil)
	_ portssvc.ChargeTypeSvcFacade  = (*ChargeTypeService)(nil)
	_ portssvc.TransactionSvcFacade = (*TransactionService)(nil)
	_ portssvc.StatementSvcFacade   = (*StatementService)(nil)
	_ portssvc.PartySvcFacade       = (*PartyService)(nil)
	_ portssvc.AuditSvcFacade       = (*AuditService)(nil)
)
