package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/gulfbridge/freight_ledger_app/internal/apperrors"
	"github.com/gulfbridge/freight_ledger_app/internal/core/domain"
	portsrepo "github.com/gulfbridge/freight_ledger_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// StatementService builds running-balance ledger reports. Entries come solely
// from the transactions table; the synchronizer-maintained INVOICE entry is
// the single source of truth for invoice debits. Invoice-item aggregates are
// attached as an informational sub-totals block and checked in a separate
// reconciliation report rather than merged into the balance.
type StatementService struct {
	BaseService
	clientRepo portsrepo.ClientReader
	jobRepo    portsrepo.JobReader
	itemRepo   portsrepo.InvoiceItemReader
	txnRepo    portsrepo.TransactionReader
}

// NewStatementService creates a new StatementService.
func NewStatementService(
	clientRepo portsrepo.ClientReader,
	jobRepo portsrepo.JobReader,
	itemRepo portsrepo.InvoiceItemReader,
	txnRepo portsrepo.TransactionReader,
) *StatementService {
	return &StatementService{clientRepo: clientRepo, jobRepo: jobRepo, itemRepo: itemRepo, txnRepo: txnRepo}
}

// BuildStatement produces the client's statement over the inclusive window.
// The balance convention is "amount the client still owes": invoices and
// payments-out are debits, receipts are credits.
func (s *StatementService) BuildStatement(ctx context.Context, clientID int64, from, to *time.Time) (*domain.StatementReport, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "failed to resolve statement client", slog.Int64("client_id", clientID))
		}
		return nil, err
	}

	txns, err := s.txnRepo.ListTransactionsForClient(ctx, clientID, from, to)
	if err != nil {
		s.LogError(ctx, err, "failed to load statement transactions", slog.Int64("client_id", clientID))
		return nil, fmt.Errorf("failed to build statement: %w", err)
	}

	sortChronological(txns)

	entries := make([]domain.LedgerEntry, 0, len(txns))
	running := decimal.Zero
	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for i := range txns {
		t := &txns[i]
		entry := domain.LedgerEntry{
			TransactionID: t.TransactionID,
			Date:          t.Date,
			VoucherNo:     t.VoucherNo,
			Particulars:   particulars(t),
		}
		if t.TransType.IsDebit() {
			entry.Debit = t.Amount
			totalDebit = totalDebit.Add(t.Amount)
			running = running.Add(t.Amount)
		} else {
			entry.Credit = t.Amount
			totalCredit = totalCredit.Add(t.Amount)
			running = running.Sub(t.Amount)
		}
		entry.RunningBalance = running.Abs()
		entry.BalanceType = balanceLabel(running)
		entries = append(entries, entry)
	}

	invoiceTotals, err := s.itemRepo.SumInvoiceTotalsForClient(ctx, clientID, from, to)
	if err != nil {
		s.LogError(ctx, err, "failed to aggregate invoice totals", slog.Int64("client_id", clientID))
		return nil, fmt.Errorf("failed to build statement: %w", err)
	}

	return &domain.StatementReport{
		Client:           *client,
		Entries:          entries,
		TotalDebit:       totalDebit,
		TotalCredit:      totalCredit,
		InvoiceTotals:    invoiceTotals,
		FinalBalance:     running.Abs(),
		FinalBalanceType: balanceLabel(running),
	}, nil
}

// AccountStatement summarizes cash movement across all transactions.
func (s *StatementService) AccountStatement(ctx context.Context) (*domain.AccountStatement, error) {
	received, paid, err := s.txnRepo.AccountTotals(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to aggregate account totals")
		return nil, fmt.Errorf("failed to build account statement: %w", err)
	}
	return &domain.AccountStatement{
		TotalReceived: received,
		TotalPaid:     paid,
		NetBalance:    received.Sub(paid),
	}, nil
}

// BuildReconciliation recomputes each invoiced job's item total and compares
// it with the amount on the job's shadow ledger entry. A zero-total job with
// no entry is in sync; any other drift means the synchronizer has not caught
// up with an item edit.
func (s *StatementService) BuildReconciliation(ctx context.Context, clientID int64) (*domain.Client, []domain.ReconciliationRow, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, nil, err
	}

	jobs, err := s.jobRepo.ListInvoicedJobsByClient(ctx, clientID, nil, nil)
	if err != nil {
		s.LogError(ctx, err, "failed to list invoiced jobs", slog.Int64("client_id", clientID))
		return nil, nil, fmt.Errorf("failed to build reconciliation: %w", err)
	}

	rows := make([]domain.ReconciliationRow, 0, len(jobs))
	for i := range jobs {
		job := &jobs[i]
		itemsTotal, err := s.itemRepo.SumInvoiceItemTotals(ctx, job.JobID)
		if err != nil {
			s.LogError(ctx, err, "failed to sum invoice items", slog.Int64("job_id", job.JobID))
			return nil, nil, fmt.Errorf("failed to build reconciliation: %w", err)
		}

		row := domain.ReconciliationRow{
			JobID:      job.JobID,
			JobDate:    job.JobDate,
			ItemsTotal: itemsTotal,
		}
		entry, err := s.txnRepo.FindInvoiceEntryByJobID(ctx, job.JobID)
		switch {
		case err == nil:
			amount := entry.Amount
			row.LedgerAmount = &amount
			row.VoucherNo = entry.VoucherNo
			row.InSync = entry.Amount.Equal(itemsTotal)
		case errors.Is(err, apperrors.ErrNotFound):
			row.InSync = itemsTotal.Sign() <= 0
		default:
			s.LogError(ctx, err, "failed to find shadow entry", slog.Int64("job_id", job.JobID))
			return nil, nil, fmt.Errorf("failed to build reconciliation: %w", err)
		}
		rows = append(rows, row)
	}
	return client, rows, nil
}

// sortChronological orders transactions by date then id, the order the
// running-balance walk assumes regardless of how the rows arrived.
func sortChronological(txns []domain.Transaction) {
	sort.SliceStable(txns, func(i, j int) bool {
		if !txns[i].Date.Equal(txns[j].Date) {
			return txns[i].Date.Before(txns[j].Date)
		}
		return txns[i].TransactionID < txns[j].TransactionID
	})
}

// particulars picks the display string for one statement row. Job-linked
// entries carry the job identity so invoices stay traceable from the statement.
func particulars(t *domain.Transaction) string {
	if t.JobID != nil {
		if t.Description == "" {
			return fmt.Sprintf("Job #%d", *t.JobID)
		}
		return fmt.Sprintf("Job #%d - %s", *t.JobID, t.Description)
	}
	if t.Description != "" {
		return t.Description
	}
	return t.PartyName
}

// balanceLabel maps a signed balance to its Dr/Cr label; zero reads as Dr.
func balanceLabel(balance decimal.Decimal) string {
	if balance.Sign() >= 0 {
		return domain.BalanceDr
	}
	return domain.BalanceCr
}
