package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gulfbridge/freight_ledger_app/internal/apperrors"
	"github.com/gulfbridge/freight_ledger_app/internal/core/domain"
	portsrepo "github.com/gulfbridge/freight_ledger_app/internal/core/ports/repositories"
)

// unknownClientName is the party sentinel used when the job's client
// cannot be resolved at sync time.
const unknownClientName = "Unknown Client"

// InvoiceSyncer maintains the single INVOICE ledger entry derived from a
// job's invoice items. It runs after the job's own write has committed;
// delivery is at-least-once and every outcome is reported to the caller.
type InvoiceSyncer struct {
	BaseService
	clientRepo portsrepo.ClientReader
	itemRepo   portsrepo.InvoiceItemReader
	txnRepo    portsrepo.TransactionRepositoryFacade
}

// NewInvoiceSyncer creates a new InvoiceSyncer.
func NewInvoiceSyncer(
	clientRepo portsrepo.ClientReader,
	itemRepo portsrepo.InvoiceItemReader,
	txnRepo portsrepo.TransactionRepositoryFacade,
) *InvoiceSyncer {
	return &InvoiceSyncer{clientRepo: clientRepo, itemRepo: itemRepo, txnRepo: txnRepo}
}

// SyncJob creates or refreshes the job's shadow entry. Jobs not flagged
// invoiced are a no-op; a zero or negative item total is a reported skip that
// leaves any existing entry untouched. Failures never propagate as errors so
// the caller's job save stands regardless.
func (s *InvoiceSyncer) SyncJob(ctx context.Context, job *domain.Job) domain.ShadowSyncResult {
	if !job.IsInvoiced {
		return domain.ShadowSyncResult{Status: domain.SyncNotApplicable}
	}

	total, err := s.itemRepo.SumInvoiceItemTotals(ctx, job.JobID)
	if err != nil {
		s.LogError(ctx, err, "shadow entry sync failed summing invoice items",
			slog.Int64("job_id", job.JobID))
		return domain.ShadowSyncResult{Status: domain.SyncFailed, Error: err.Error()}
	}
	if total.Sign() <= 0 {
		s.LogWarn(ctx, "job invoiced with no billable total, skipping ledger entry",
			slog.Int64("job_id", job.JobID), slog.String("total", total.String()))
		return domain.ShadowSyncResult{Status: domain.SyncSkippedZeroTotal, Amount: total}
	}

	partyName := unknownClientName
	client, err := s.clientRepo.FindClientByID(ctx, job.ClientID)
	if err == nil {
		partyName = client.Name
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "shadow entry sync failed resolving client",
			slog.Int64("job_id", job.JobID), slog.Int64("client_id", job.ClientID))
		return domain.ShadowSyncResult{Status: domain.SyncFailed, Error: err.Error()}
	}

	jobID := job.JobID
	clientID := job.ClientID
	entry := domain.Transaction{
		TransType:   domain.InvoiceDebit,
		Amount:      total,
		Description: fmt.Sprintf("Invoice for Job #%d", job.JobID),
		Date:        time.Now(),
		PartyName:   partyName,
		JobID:       &jobID,
		ClientID:    &clientID,
	}
	stored, err := s.txnRepo.UpsertInvoiceEntry(ctx, entry)
	if err != nil {
		s.LogError(ctx, err, "shadow entry sync failed writing ledger entry",
			slog.Int64("job_id", job.JobID))
		return domain.ShadowSyncResult{Status: domain.SyncFailed, Amount: total, Error: err.Error()}
	}

	s.LogInfo(ctx, "shadow entry synchronized",
		slog.Int64("job_id", job.JobID),
		slog.String("voucher_no", stored.VoucherNo),
		slog.String("amount", stored.Amount.String()))
	return domain.ShadowSyncResult{
		Status:    domain.SyncApplied,
		VoucherNo: stored.VoucherNo,
		Amount:    stored.Amount,
	}
}
