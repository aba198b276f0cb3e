package services

import (
	"context"

	"github.com/gulfbridge/freight_ledger_app/internal/core/domain"
	"github.com/gulfbridge/freight_ledger_app/internal/dto"
)

// InvoiceItemReaderSvc defines read operations for invoice item data
type InvoiceItemReaderSvc interface {
	// GetInvoiceItemByID retrieves a specific invoice item.
	GetInvoiceItemByID(ctx context.Context, invoiceItemID int64) (*domain.InvoiceItem, error)

	// ListInvoiceItemsByJobID retrieves all items on one job.
	ListInvoiceItemsByJobID(ctx context.Context, jobID int64) ([]domain.InvoiceItem, error)
}

// InvoiceItemWriterSvc defines write operations for invoice item data.
// Every mutation recomputes the item's total and, when the owning job is
// already invoiced, re-runs the shadow entry synchronizer.
type InvoiceItemWriterSvc interface {
	// CreateInvoiceItem persists a new item on a job.
	CreateInvoiceItem(ctx context.Context, req dto.CreateInvoiceItemRequest) (*domain.InvoiceItem, error)

	// UpdateInvoiceItem updates an existing item.
	UpdateInvoiceItem(ctx context.Context, invoiceItemID int64, req dto.UpdateInvoiceItemRequest) (*domain.InvoiceItem, error)

	// DeleteInvoiceItem removes an item.
	DeleteInvoiceItem(ctx context.Context, invoiceItemID int64) error
}

// InvoiceItemSvcFacade combines all invoice item service interfaces
type InvoiceItemSvcFacade interface {
	InvoiceItemReaderSvc
	InvoiceItemWriterSvc
}

// ChargeTypeSvcFacade defines operations for the charge type master.
type ChargeTypeSvcFacade interface {
	GetChargeTypeByID(ctx context.Context, chargeTypeID int64) (*domain.ChargeType, error)
	ListChargeTypes(ctx context.Context) ([]domain.ChargeType, error)
	CreateChargeType(ctx context.Context, req dto.CreateChargeTypeRequest) (*domain.ChargeType, error)
	DeleteChargeType(ctx context.Context, chargeTypeID int64) error
}
