package services_test

// Shared repository and service mocks used across the service test suites.

import (
	"context"
	"time"

	"github.com/gulfbridge/freight_ledger_app/internal/core/domain"
	portsrepo "github.com/gulfbridge/freight_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/gulfbridge/freight_ledger_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock ClientRepository ---
type MockClientRepository struct {
	mock.Mock
}

var _ portsrepo.ClientRepositoryFacade = (*MockClientRepository)(nil)

func (m *MockClientRepository) FindClientByID(ctx context.Context, clientID int64) (*domain.Client, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) ListClients(ctx context.Context) ([]domain.Client, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}

func (m *MockClientRepository) ListClientsWithJobs(ctx context.Context) ([]domain.Client, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}

func (m *MockClientRepository) SaveClient(ctx context.Context, client domain.Client) (*domain.Client, error) {
	args := m.Called(ctx, client)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) FindOrCreateClientByName(ctx context.Context, client domain.Client) (*domain.Client, error) {
	args := m.Called(ctx, client)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) DeleteClient(ctx context.Context, clientID int64) error {
	args := m.Called(ctx, clientID)
	return args.Error(0)
}

// --- Mock JobRepository ---
type MockJobRepository struct {
	mock.Mock
}

var _ portsrepo.JobRepositoryFacade = (*MockJobRepository)(nil)

func (m *MockJobRepository) FindJobByID(ctx context.Context, jobID int64) (*domain.Job, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobRepository) ListJobs(ctx context.Context) ([]domain.Job, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}

func (m *MockJobRepository) ListInvoicedJobsByClient(ctx context.Context, clientID int64, from, to *time.Time) ([]domain.Job, error) {
	args := m.Called(ctx, clientID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}

func (m *MockJobRepository) SaveJob(ctx context.Context, job domain.Job) (*domain.Job, error) {
	args := m.Called(ctx, job)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobRepository) UpdateJob(ctx context.Context, job domain.Job) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *MockJobRepository) MarkJobInvoiced(ctx context.Context, jobID int64, invoiced bool) error {
	args := m.Called(ctx, jobID, invoiced)
	return args.Error(0)
}

func (m *MockJobRepository) DeleteJob(ctx context.Context, jobID int64) error {
	args := m.Called(ctx, jobID)
	return args.Error(0)
}

// --- Mock InvoiceItemRepository ---
type MockInvoiceItemRepository struct {
	mock.Mock
}

var _ portsrepo.InvoiceItemRepositoryFacade = (*MockInvoiceItemRepository)(nil)

func (m *MockInvoiceItemRepository) FindInvoiceItemByID(ctx context.Context, invoiceItemID int64) (*domain.InvoiceItem, error) {
	args := m.Called(ctx, invoiceItemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvoiceItem), args.Error(1)
}

func (m *MockInvoiceItemRepository) ListInvoiceItemsByJobID(ctx context.Context, jobID int64) ([]domain.InvoiceItem, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvoiceItem), args.Error(1)
}

func (m *MockInvoiceItemRepository) SumInvoiceItemTotals(ctx context.Context, jobID int64) (decimal.Decimal, error) {
	args := m.Called(ctx, jobID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockInvoiceItemRepository) SumInvoiceTotalsForClient(ctx context.Context, clientID int64, from, to *time.Time) (domain.InvoiceTotals, error) {
	args := m.Called(ctx, clientID, from, to)
	return args.Get(0).(domain.InvoiceTotals), args.Error(1)
}

func (m *MockInvoiceItemRepository) SaveInvoiceItem(ctx context.Context, item domain.InvoiceItem) (*domain.InvoiceItem, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvoiceItem), args.Error(1)
}

func (m *MockInvoiceItemRepository) UpdateInvoiceItem(ctx context.Context, item domain.InvoiceItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockInvoiceItemRepository) DeleteInvoiceItem(ctx context.Context, invoiceItemID int64) error {
	args := m.Called(ctx, invoiceItemID)
	return args.Error(0)
}

// --- Mock ChargeTypeRepository ---
type MockChargeTypeRepository struct {
	mock.Mock
}

var _ portsrepo.ChargeTypeRepositoryFacade = (*MockChargeTypeRepository)(nil)

func (m *MockChargeTypeRepository) FindChargeTypeByID(ctx context.Context, chargeTypeID int64) (*domain.ChargeType, error) {
	args := m.Called(ctx, chargeTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChargeType), args.Error(1)
}

func (m *MockChargeTypeRepository) ListChargeTypes(ctx context.Context) ([]domain.ChargeType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ChargeType), args.Error(1)
}

func (m *MockChargeTypeRepository) SaveChargeType(ctx context.Context, ct domain.ChargeType) (*domain.ChargeType, error) {
	args := m.Called(ctx, ct)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChargeType), args.Error(1)
}

func (m *MockChargeTypeRepository) DeleteChargeType(ctx context.Context, chargeTypeID int64) error {
	args := m.Called(ctx, chargeTypeID)
	return args.Error(0)
}

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

var _ portsrepo.TransactionRepositoryFacade = (*MockTransactionRepository)(nil)

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsForClient(ctx context.Context, clientID int64, from, to *time.Time) ([]domain.Transaction, error) {
	args := m.Called(ctx, clientID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindInvoiceEntryByJobID(ctx context.Context, jobID int64) (*domain.Transaction, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) AccountTotals(ctx context.Context) (decimal.Decimal, decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Get(1).(decimal.Decimal), args.Error(2)
}

func (m *MockTransactionRepository) CreateTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	args := m.Called(ctx, txn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) UpsertInvoiceEntry(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	args := m.Called(ctx, txn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, transactionID int64) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

// --- Mock AuditService ---
type MockAuditService struct {
	mock.Mock
}

var _ portssvc.AuditSvcFacade = (*MockAuditService)(nil)

func (m *MockAuditService) RecordAction(ctx context.Context, userName, action string) {
	m.Called(ctx, userName, action)
}

func (m *MockAuditService) ListRecent(ctx context.Context, limit int) ([]domain.AuditLog, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AuditLog), args.Error(1)
}
