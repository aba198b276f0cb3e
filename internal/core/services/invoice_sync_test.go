package services_test

import (
	"context"
	"testing"

	"github.com/gulfbridge/freight_ledger_app/internal/apperrors"
	"github.com/gulfbridge/freight_ledger_app/internal/core/domain"
	"github.com/gulfbridge/freight_ledger_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type InvoiceSyncerTestSuite struct {
	suite.Suite
	mockClientRepo *MockClientRepository
	mockItemRepo   *MockInvoiceItemRepository
	mockTxnRepo    *MockTransactionRepository
	syncer         *services.InvoiceSyncer
}

func (suite *InvoiceSyncerTestSuite) SetupTest() {
	suite.mockClientRepo = new(MockClientRepository)
	suite.mockItemRepo = new(MockInvoiceItemRepository)
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.syncer = services.NewInvoiceSyncer(suite.mockClientRepo, suite.mockItemRepo, suite.mockTxnRepo)
}

func (suite *InvoiceSyncerTestSuite) TestSyncJob_NotInvoiced() {
	ctx := context.Background()
	job := &domain.Job{JobID: 7, ClientID: 3, IsInvoiced: false}

	result := suite.syncer.SyncJob(ctx, job)

	suite.Equal(domain.SyncNotApplicable, result.Status)
	suite.mockItemRepo.AssertNotCalled(suite.T(), "SumInvoiceItemTotals", mock.Anything, mock.Anything)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "UpsertInvoiceEntry", mock.Anything, mock.Anything)
}

func (suite *InvoiceSyncerTestSuite) TestSyncJob_ZeroTotalSkips() {
	ctx := context.Background()
	job := &domain.Job{JobID: 7, ClientID: 3, IsInvoiced: true}

	suite.mockItemRepo.On("SumInvoiceItemTotals", ctx, int64(7)).Return(decimal.Zero, nil).Once()

	result := suite.syncer.SyncJob(ctx, job)

	suite.Equal(domain.SyncSkippedZeroTotal, result.Status)
	// An existing entry must be left untouched on a zero-total skip.
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "UpsertInvoiceEntry", mock.Anything, mock.Anything)
	suite.mockItemRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceSyncerTestSuite) TestSyncJob_AppliesEntry() {
	ctx := context.Background()
	job := &domain.Job{JobID: 7, ClientID: 3, IsInvoiced: true}
	total := decimal.RequireFromString("150.75")

	suite.mockItemRepo.On("SumInvoiceItemTotals", ctx, int64(7)).Return(total, nil).Once()
	suite.mockClientRepo.On("FindClientByID", ctx, int64(3)).
		Return(&domain.Client{ClientID: 3, Name: "Gulf Traders"}, nil).Once()
	suite.mockTxnRepo.On("UpsertInvoiceEntry", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.TransType == domain.InvoiceDebit &&
			txn.Amount.Equal(total) &&
			txn.PartyName == "Gulf Traders" &&
			txn.JobID != nil && *txn.JobID == 7 &&
			txn.ClientID != nil && *txn.ClientID == 3
	})).Return(&domain.Transaction{
		TransactionID: 99,
		TransType:     domain.InvoiceDebit,
		Amount:        total,
		VoucherNo:     "INV-004",
	}, nil).Once()

	result := suite.syncer.SyncJob(ctx, job)

	suite.Equal(domain.SyncApplied, result.Status)
	suite.Equal("INV-004", result.VoucherNo)
	suite.True(result.Amount.Equal(total))
	suite.mockClientRepo.AssertExpectations(suite.T())
	suite.mockItemRepo.AssertExpectations(suite.T())
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceSyncerTestSuite) TestSyncJob_MissingClientUsesSentinelName() {
	ctx := context.Background()
	job := &domain.Job{JobID: 7, ClientID: 3, IsInvoiced: true}
	total := decimal.NewFromInt(200)

	suite.mockItemRepo.On("SumInvoiceItemTotals", ctx, int64(7)).Return(total, nil).Once()
	suite.mockClientRepo.On("FindClientByID", ctx, int64(3)).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockTxnRepo.On("UpsertInvoiceEntry", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.PartyName == "Unknown Client"
	})).Return(&domain.Transaction{VoucherNo: "INV-001", Amount: total}, nil).Once()

	result := suite.syncer.SyncJob(ctx, job)

	suite.Equal(domain.SyncApplied, result.Status)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceSyncerTestSuite) TestSyncJob_SumFailureIsReportedNotReturned() {
	ctx := context.Background()
	job := &domain.Job{JobID: 7, ClientID: 3, IsInvoiced: true}

	suite.mockItemRepo.On("SumInvoiceItemTotals", ctx, int64(7)).
		Return(decimal.Zero, assert.AnError).Once()

	result := suite.syncer.SyncJob(ctx, job)

	suite.Equal(domain.SyncFailed, result.Status)
	suite.NotEmpty(result.Error)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "UpsertInvoiceEntry", mock.Anything, mock.Anything)
}

func (suite *InvoiceSyncerTestSuite) TestSyncJob_UpsertFailureIsReportedNotReturned() {
	ctx := context.Background()
	job := &domain.Job{JobID: 7, ClientID: 3, IsInvoiced: true}
	total := decimal.NewFromInt(500)

	suite.mockItemRepo.On("SumInvoiceItemTotals", ctx, int64(7)).Return(total, nil).Once()
	suite.mockClientRepo.On("FindClientByID", ctx, int64(3)).
		Return(&domain.Client{ClientID: 3, Name: "Gulf Traders"}, nil).Once()
	suite.mockTxnRepo.On("UpsertInvoiceEntry", ctx, mock.AnythingOfType("domain.Transaction")).
		Return(nil, assert.AnError).Once()

	result := suite.syncer.SyncJob(ctx, job)

	suite.Equal(domain.SyncFailed, result.Status)
	suite.True(result.Amount.Equal(total))
	suite.NotEmpty(result.Error)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func TestInvoiceSyncer(t *testing.T) {
	suite.Run(t, new(InvoiceSyncerTestSuite))
}
