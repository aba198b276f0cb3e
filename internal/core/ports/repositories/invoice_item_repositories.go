package repositories

import (
	"context"
	"time"

	"github.com/gulfbridge/freight_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// InvoiceItemReader defines read operations for invoice item data
type InvoiceItemReader interface {
	// FindInvoiceItemByID retrieves a specific invoice item.
	FindInvoiceItemByID(ctx context.Context, invoiceItemID int64) (*domain.InvoiceItem, error)

	// ListInvoiceItemsByJobID retrieves all items on one job.
	ListInvoiceItemsByJobID(ctx context.Context, jobID int64) ([]domain.InvoiceItem, error)

	// SumInvoiceItemTotals returns the sum of item totals for one job
	// (decimal.Zero when the job has no items).
	SumInvoiceItemTotals(ctx context.Context, jobID int64) (decimal.Decimal, error)

	// SumInvoiceTotalsForClient aggregates amount/vat/total over the invoice items
	// of a client's invoiced jobs inside the inclusive date window.
	SumInvoiceTotalsForClient(ctx context.Context, clientID int64, from, to *time.Time) (domain.InvoiceTotals, error)
}

// InvoiceItemWriter defines write operations for invoice item data
type InvoiceItemWriter interface {
	// SaveInvoiceItem persists a new item and returns it with its assigned ID.
	SaveInvoiceItem(ctx context.Context, item domain.InvoiceItem) (*domain.InvoiceItem, error)

	// UpdateInvoiceItem updates an existing item.
	UpdateInvoiceItem(ctx context.Context, item domain.InvoiceItem) error

	// DeleteInvoiceItem removes an item.
	DeleteInvoiceItem(ctx context.Context, invoiceItemID int64) error
}

// InvoiceItemRepositoryFacade combines all invoice item repository interfaces
type InvoiceItemRepositoryFacade interface {
	InvoiceItemReader
	InvoiceItemWriter
}

// ChargeTypeRepositoryFacade defines operations for the charge type master.
// Deleting a charge type still referenced by invoice items fails with
// apperrors.ErrDuplicate (FK RESTRICT).
type ChargeTypeRepositoryFacade interface {
	FindChargeTypeByID(ctx context.Context, chargeTypeID int64) (*domain.ChargeType, error)
	ListChargeTypes(ctx context.Context) ([]domain.ChargeType, error)
	SaveChargeType(ctx context.Context, ct domain.ChargeType) (*domain.ChargeType, error)
	DeleteChargeType(ctx context.Context, chargeTypeID int64) error
}
