package services

import (
	"context"

	"github.com/gulfbridge/freight_ledger_app/internal/core/domain"
	"github.com/gulfbridge/freight_ledger_app/internal/dto"
)

// TransactionReaderSvc defines read operations for ledger transactions
type TransactionReaderSvc interface {
	// GetTransactionByID retrieves a specific transaction.
	GetTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error)

	// ListTransactions retrieves all transactions, newest date first.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
}

// TransactionWriterSvc defines write operations for ledger transactions
type TransactionWriterSvc interface {
	// CreateTransaction normalizes the payload (client backfill from the job,
	// party name backfill from the client), allocates a voucher number and
	// persists the entry atomically.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, userName string) (*domain.Transaction, error)

	// DeleteTransaction removes a transaction. Deletion is an explicit user
	// action and is always audit-logged, including for INVOICE shadow entries.
	DeleteTransaction(ctx context.Context, transactionID int64, userName string) error
}

// TransactionSvcFacade combines all transaction service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
