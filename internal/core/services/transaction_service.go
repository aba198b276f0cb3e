package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gulfbridge/freight_ledger_app/internal/apperrors"
	"github.com/gulfbridge/freight_ledger_app/internal/core/domain"
	portsrepo "github.com/gulfbridge/freight_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/gulfbridge/freight_ledger_app/internal/core/ports/services"
	"github.com/gulfbridge/freight_ledger_app/internal/dto"
	"github.com/gulfbridge/freight_ledger_app/internal/utils/dateparse"
)

// TransactionService creates and deletes ledger entries. Every create passes
// through the normalizer: client backfilled from the linked job, party name
// backfilled from the resolved client. Normalization is idempotent; an
// already-populated field is never overwritten.
type TransactionService struct {
	BaseService
	txnRepo    portsrepo.TransactionRepositoryFacade
	jobRepo    portsrepo.JobReader
	clientRepo portsrepo.ClientReader
	audit      portssvc.AuditSvcFacade
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(
	txnRepo portsrepo.TransactionRepositoryFacade,
	jobRepo portsrepo.JobReader,
	clientRepo portsrepo.ClientReader,
	audit portssvc.AuditSvcFacade,
) *TransactionService {
	return &TransactionService{txnRepo: txnRepo, jobRepo: jobRepo, clientRepo: clientRepo, audit: audit}
}

func (s *TransactionService) GetTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "failed to find transaction", slog.Int64("transaction_id", transactionID))
		}
		return nil, err
	}
	return txn, nil
}

func (s *TransactionService) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to list transactions")
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	if txns == nil {
		return []domain.Transaction{}, nil
	}
	return txns, nil
}

func (s *TransactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, userName string) (*domain.Transaction, error) {
	transType := domain.TransactionType(req.TransType)
	if !transType.IsValid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("transType must be one of %v", domain.TransactionTypes))
	}
	if req.Amount.Sign() <= 0 {
		return nil, apperrors.NewValidationError("amount must be positive")
	}
	date, err := dateparse.Parse("date", req.Date)
	if err != nil {
		return nil, err
	}

	txn := domain.Transaction{
		TransType:   transType,
		Amount:      req.Amount,
		Description: req.Description,
		Date:        date,
		BankName:    req.BankName,
		ChequeNo:    req.ChequeNo,
		PartyName:   req.PartyName,
		JobID:       req.JobID,
		ClientID:    req.ClientID,
	}
	if err := s.normalize(ctx, &txn); err != nil {
		return nil, err
	}

	saved, err := s.txnRepo.CreateTransaction(ctx, txn)
	if err != nil {
		s.LogError(ctx, err, "failed to create transaction", slog.String("trans_type", req.TransType))
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	s.audit.RecordAction(ctx, userName, fmt.Sprintf("created transaction %s", saved.VoucherNo))
	s.LogInfo(ctx, "transaction created",
		slog.Int64("transaction_id", saved.TransactionID),
		slog.String("voucher_no", saved.VoucherNo))
	return saved, nil
}

// normalize backfills client from the linked job and party name from the
// resolved client. Voucher assignment happens later, inside the repository's
// write transaction.
func (s *TransactionService) normalize(ctx context.Context, txn *domain.Transaction) error {
	if txn.JobID != nil && txn.ClientID == nil {
		job, err := s.jobRepo.FindJobByID(ctx, *txn.JobID)
		if err != nil {
			return err
		}
		clientID := job.ClientID
		txn.ClientID = &clientID
	}
	if txn.ClientID != nil && txn.PartyName == "" {
		client, err := s.clientRepo.FindClientByID(ctx, *txn.ClientID)
		if err != nil {
			return err
		}
		txn.PartyName = client.Name
	}
	return nil
}

func (s *TransactionService) DeleteTransaction(ctx context.Context, transactionID int64, userName string) error {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return err
	}
	if err := s.txnRepo.DeleteTransaction(ctx, transactionID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "failed to delete transaction", slog.Int64("transaction_id", transactionID))
		}
		return err
	}
	s.audit.RecordAction(ctx, userName, fmt.Sprintf("deleted transaction %s", txn.VoucherNo))
	return nil
}
