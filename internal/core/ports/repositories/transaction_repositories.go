package repositories

import (
	"context"
	"time"

	"github.com/gulfbridge/freight_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionReader defines read operations for ledger transactions
type TransactionReader interface {
	// FindTransactionByID retrieves a specific transaction.
	FindTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error)

	// ListTransactions retrieves all transactions, newest date first.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)

	// ListTransactionsForClient retrieves every transaction attributed to the
	// client either directly (client_id) or through its job's client, filtered to
	// the inclusive date window, ordered by date then id ascending.
	ListTransactionsForClient(ctx context.Context, clientID int64, from, to *time.Time) ([]domain.Transaction, error)

	// FindInvoiceEntryByJobID retrieves the INVOICE shadow entry for a job, or
	// apperrors.ErrNotFound when none exists.
	FindInvoiceEntryByJobID(ctx context.Context, jobID int64) (*domain.Transaction, error)

	// AccountTotals aggregates cash movement across all transactions:
	// received is the CR+BR sum, paid the CP+BP sum.
	AccountTotals(ctx context.Context) (received, paid decimal.Decimal, err error)
}

// TransactionWriter defines write operations for ledger transactions
type TransactionWriter interface {
	// CreateTransaction inserts a normalized transaction, allocating its voucher
	// number inside the same database transaction, and returns the stored record.
	CreateTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error)

	// UpsertInvoiceEntry creates or refreshes the single INVOICE shadow entry for
	// txn.JobID in one database transaction. The existing entry keeps its voucher
	// number; a fresh entry gets a newly allocated one. A concurrent duplicate is
	// rejected by the partial unique index on (job_id) WHERE trans_type='INVOICE'.
	UpsertInvoiceEntry(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error)

	// DeleteTransaction removes a transaction by id.
	DeleteTransaction(ctx context.Context, transactionID int64) error
}

// TransactionRepositoryFacade combines all transaction repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
