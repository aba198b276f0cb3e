package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gulfbridge/freight_ledger_app/internal/apperrors"
	"github.com/gulfbridge/freight_ledger_app/internal/core/domain"
	portsrepo "github.com/gulfbridge/freight_ledger_app/internal/core/ports/repositories"
	"github.com/gulfbridge/freight_ledger_app/internal/dto"
)

// InvoiceItemService manages billable lines on jobs. Every mutation recomputes
// the item's total exactly and, when the owning job is already invoiced,
// re-runs the shadow entry synchronizer so the ledger tracks item edits.
type InvoiceItemService struct {
	BaseService
	itemRepo       portsrepo.InvoiceItemRepositoryFacade
	jobRepo        portsrepo.JobReader
	chargeTypeRepo portsrepo.ChargeTypeRepositoryFacade
	syncer         *InvoiceSyncer
}

// NewInvoiceItemService creates a new InvoiceItemService.
func NewInvoiceItemService(
	itemRepo portsrepo.InvoiceItemRepositoryFacade,
	jobRepo portsrepo.JobReader,
	chargeTypeRepo portsrepo.ChargeTypeRepositoryFacade,
	syncer *InvoiceSyncer,
) *InvoiceItemService {
	return &InvoiceItemService{
		itemRepo:       itemRepo,
		jobRepo:        jobRepo,
		chargeTypeRepo: chargeTypeRepo,
		syncer:         syncer,
	}
}

func (s *InvoiceItemService) GetInvoiceItemByID(ctx context.Context, invoiceItemID int64) (*domain.InvoiceItem, error) {
	item, err := s.itemRepo.FindInvoiceItemByID(ctx, invoiceItemID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "failed to find invoice item", slog.Int64("invoice_item_id", invoiceItemID))
		}
		return nil, err
	}
	return item, nil
}

func (s *InvoiceItemService) ListInvoiceItemsByJobID(ctx context.Context, jobID int64) ([]domain.InvoiceItem, error) {
	if _, err := s.jobRepo.FindJobByID(ctx, jobID); err != nil {
		return nil, err
	}
	items, err := s.itemRepo.ListInvoiceItemsByJobID(ctx, jobID)
	if err != nil {
		s.LogError(ctx, err, "failed to list invoice items", slog.Int64("job_id", jobID))
		return nil, fmt.Errorf("failed to list invoice items: %w", err)
	}
	if items == nil {
		return []domain.InvoiceItem{}, nil
	}
	return items, nil
}

func (s *InvoiceItemService) CreateInvoiceItem(ctx context.Context, req dto.CreateInvoiceItemRequest) (*domain.InvoiceItem, error) {
	job, err := s.jobRepo.FindJobByID(ctx, req.JobID)
	if err != nil {
		return nil, err
	}
	if _, err := s.chargeTypeRepo.FindChargeTypeByID(ctx, req.ChargeTypeID); err != nil {
		return nil, err
	}

	item := domain.InvoiceItem{
		JobID:        req.JobID,
		ChargeTypeID: req.ChargeTypeID,
		Description:  req.Description,
		Amount:       req.Amount,
		VAT:          req.VAT,
	}
	item.RecalculateTotal()

	saved, err := s.itemRepo.SaveInvoiceItem(ctx, item)
	if err != nil {
		s.LogError(ctx, err, "failed to save invoice item", slog.Int64("job_id", req.JobID))
		return nil, fmt.Errorf("failed to create invoice item: %w", err)
	}

	s.resyncIfInvoiced(ctx, job)
	return saved, nil
}

func (s *InvoiceItemService) UpdateInvoiceItem(ctx context.Context, invoiceItemID int64, req dto.UpdateInvoiceItemRequest) (*domain.InvoiceItem, error) {
	item, err := s.itemRepo.FindInvoiceItemByID(ctx, invoiceItemID)
	if err != nil {
		return nil, err
	}

	if req.ChargeTypeID != nil {
		if _, err := s.chargeTypeRepo.FindChargeTypeByID(ctx, *req.ChargeTypeID); err != nil {
			return nil, err
		}
		item.ChargeTypeID = *req.ChargeTypeID
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Amount != nil {
		item.Amount = *req.Amount
	}
	if req.VAT != nil {
		item.VAT = *req.VAT
	}
	item.RecalculateTotal()

	if err := s.itemRepo.UpdateInvoiceItem(ctx, *item); err != nil {
		s.LogError(ctx, err, "failed to update invoice item", slog.Int64("invoice_item_id", invoiceItemID))
		return nil, fmt.Errorf("failed to update invoice item: %w", err)
	}

	if job, err := s.jobRepo.FindJobByID(ctx, item.JobID); err == nil {
		s.resyncIfInvoiced(ctx, job)
	}
	return item, nil
}

func (s *InvoiceItemService) DeleteInvoiceItem(ctx context.Context, invoiceItemID int64) error {
	item, err := s.itemRepo.FindInvoiceItemByID(ctx, invoiceItemID)
	if err != nil {
		return err
	}
	if err := s.itemRepo.DeleteInvoiceItem(ctx, invoiceItemID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "failed to delete invoice item", slog.Int64("invoice_item_id", invoiceItemID))
		}
		return err
	}

	if job, err := s.jobRepo.FindJobByID(ctx, item.JobID); err == nil {
		s.resyncIfInvoiced(ctx, job)
	}
	return nil
}

// resyncIfInvoiced refreshes the job's shadow entry after an item change.
// The item write has already committed, so a sync failure is only logged here.
func (s *InvoiceItemService) resyncIfInvoiced(ctx context.Context, job *domain.Job) {
	if !job.IsInvoiced {
		return
	}
	result := s.syncer.SyncJob(ctx, job)
	if result.Status == domain.SyncFailed {
		s.LogWarn(ctx, "shadow entry resync failed after invoice item change",
			slog.Int64("job_id", job.JobID), slog.String("error", result.Error))
	}
}
