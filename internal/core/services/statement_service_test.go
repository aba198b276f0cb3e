package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/gulfbridge/freight_ledger_app/internal/apperrors"
	"github.com/gulfbridge/freight_ledger_app/internal/core/domain"
	portssvc "github.com/gulfbridge/freight_ledger_app/internal/core/ports/services"
	"github.com/gulfbridge/freight_ledger_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type StatementServiceTestSuite struct {
	suite.Suite
	mockClientRepo *MockClientRepository
	mockJobRepo    *MockJobRepository
	mockItemRepo   *MockInvoiceItemRepository
	mockTxnRepo    *MockTransactionRepository
	service        portssvc.StatementSvcFacade
}

func (suite *StatementServiceTestSuite) SetupTest() {
	suite.mockClientRepo = new(MockClientRepository)
	suite.mockJobRepo = new(MockJobRepository)
	suite.mockItemRepo = new(MockInvoiceItemRepository)
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.service = services.NewStatementService(
		suite.mockClientRepo, suite.mockJobRepo, suite.mockItemRepo, suite.mockTxnRepo)
}

func (suite *StatementServiceTestSuite) TestBuildStatement_RunningBalanceWalk() {
	ctx := context.Background()
	client := &domain.Client{ClientID: 3, Name: "Gulf Traders"}
	day := func(d int) time.Time { return time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC) }
	jobID := int64(7)
	txns := []domain.Transaction{
		{TransactionID: 1, TransType: domain.InvoiceDebit, Amount: decimal.NewFromInt(200),
			Date: day(1), VoucherNo: "INV-001", Description: "Ocean freight and customs", JobID: &jobID},
		{TransactionID: 2, TransType: domain.BankReceive, Amount: decimal.NewFromInt(50),
			Date: day(2), VoucherNo: "BR-001", PartyName: "Gulf Traders"},
		{TransactionID: 3, TransType: domain.CashPay, Amount: decimal.NewFromInt(30),
			Date: day(3), VoucherNo: "CP-001", PartyName: "Gulf Traders"},
	}

	suite.mockClientRepo.On("FindClientByID", ctx, int64(3)).Return(client, nil).Once()
	suite.mockTxnRepo.On("ListTransactionsForClient", ctx, int64(3), (*time.Time)(nil), (*time.Time)(nil)).
		Return(txns, nil).Once()
	suite.mockItemRepo.On("SumInvoiceTotalsForClient", ctx, int64(3), (*time.Time)(nil), (*time.Time)(nil)).
		Return(domain.InvoiceTotals{
			Amount: decimal.NewFromInt(190),
			VAT:    decimal.NewFromInt(10),
			Total:  decimal.NewFromInt(200),
		}, nil).Once()

	report, err := suite.service.BuildStatement(ctx, 3, nil, nil)

	suite.Require().NoError(err)
	suite.Require().Len(report.Entries, 3)

	// Invoice of 200 opens the balance at 200 Dr.
	suite.True(report.Entries[0].Debit.Equal(decimal.NewFromInt(200)))
	suite.True(report.Entries[0].RunningBalance.Equal(decimal.NewFromInt(200)))
	suite.Equal(domain.BalanceDr, report.Entries[0].BalanceType)
	// Job-linked rows carry the job identity in their particulars.
	suite.Equal("Job #7 - Ocean freight and customs", report.Entries[0].Particulars)

	// Receipt of 50 brings it to 150 Dr.
	suite.True(report.Entries[1].Credit.Equal(decimal.NewFromInt(50)))
	suite.True(report.Entries[1].RunningBalance.Equal(decimal.NewFromInt(150)))
	suite.Equal(domain.BalanceDr, report.Entries[1].BalanceType)
	suite.Equal("Gulf Traders", report.Entries[1].Particulars)

	// Payment out of 30 is a debit, 180 Dr.
	suite.True(report.Entries[2].Debit.Equal(decimal.NewFromInt(30)))
	suite.True(report.Entries[2].RunningBalance.Equal(decimal.NewFromInt(180)))
	suite.Equal(domain.BalanceDr, report.Entries[2].BalanceType)

	suite.True(report.TotalDebit.Equal(decimal.NewFromInt(230)))
	suite.True(report.TotalCredit.Equal(decimal.NewFromInt(50)))
	suite.True(report.FinalBalance.Equal(decimal.NewFromInt(180)))
	suite.Equal(domain.BalanceDr, report.FinalBalanceType)
	suite.True(report.InvoiceTotals.Total.Equal(decimal.NewFromInt(200)))
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *StatementServiceTestSuite) TestBuildStatement_OrdersEntriesChronologically() {
	ctx := context.Background()
	client := &domain.Client{ClientID: 3, Name: "Gulf Traders"}
	day := func(d int) time.Time { return time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC) }
	jobID := int64(7)
	// Rows arrive out of order; the walk must run date asc then id asc.
	txns := []domain.Transaction{
		{TransactionID: 9, TransType: domain.CashReceive, Amount: decimal.NewFromInt(50),
			Date: day(5), VoucherNo: "CR-002", PartyName: "Gulf Traders"},
		{TransactionID: 2, TransType: domain.CashReceive, Amount: decimal.NewFromInt(30),
			Date: day(1), VoucherNo: "CR-001", PartyName: "Gulf Traders"},
		{TransactionID: 1, TransType: domain.InvoiceDebit, Amount: decimal.NewFromInt(200),
			Date: day(1), VoucherNo: "INV-001", JobID: &jobID},
	}

	suite.mockClientRepo.On("FindClientByID", ctx, int64(3)).Return(client, nil).Once()
	suite.mockTxnRepo.On("ListTransactionsForClient", ctx, int64(3), (*time.Time)(nil), (*time.Time)(nil)).
		Return(txns, nil).Once()
	suite.mockItemRepo.On("SumInvoiceTotalsForClient", ctx, int64(3), (*time.Time)(nil), (*time.Time)(nil)).
		Return(domain.InvoiceTotals{}, nil).Once()

	report, err := suite.service.BuildStatement(ctx, 3, nil, nil)

	suite.Require().NoError(err)
	suite.Require().Len(report.Entries, 3)
	suite.Equal("INV-001", report.Entries[0].VoucherNo)
	suite.Equal("CR-001", report.Entries[1].VoucherNo)
	suite.Equal("CR-002", report.Entries[2].VoucherNo)
	// The same-day tie broke on id, so the invoice opened the balance.
	suite.True(report.Entries[0].RunningBalance.Equal(decimal.NewFromInt(200)))
	suite.True(report.Entries[1].RunningBalance.Equal(decimal.NewFromInt(170)))
	suite.True(report.Entries[2].RunningBalance.Equal(decimal.NewFromInt(120)))
	// An entry tied to a job with no description still names the job.
	suite.Equal("Job #7", report.Entries[0].Particulars)
}

func (suite *StatementServiceTestSuite) TestBuildStatement_CreditBalance() {
	ctx := context.Background()
	client := &domain.Client{ClientID: 3, Name: "Gulf Traders"}
	txns := []domain.Transaction{
		{TransactionID: 1, TransType: domain.CashReceive, Amount: decimal.NewFromInt(500),
			Date: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), VoucherNo: "CR-001"},
	}

	suite.mockClientRepo.On("FindClientByID", ctx, int64(3)).Return(client, nil).Once()
	suite.mockTxnRepo.On("ListTransactionsForClient", ctx, int64(3), (*time.Time)(nil), (*time.Time)(nil)).
		Return(txns, nil).Once()
	suite.mockItemRepo.On("SumInvoiceTotalsForClient", ctx, int64(3), (*time.Time)(nil), (*time.Time)(nil)).
		Return(domain.InvoiceTotals{}, nil).Once()

	report, err := suite.service.BuildStatement(ctx, 3, nil, nil)

	suite.Require().NoError(err)
	suite.Require().Len(report.Entries, 1)
	// Balance is reported as an absolute value with a Cr label.
	suite.True(report.Entries[0].RunningBalance.Equal(decimal.NewFromInt(500)))
	suite.Equal(domain.BalanceCr, report.Entries[0].BalanceType)
	suite.True(report.FinalBalance.Equal(decimal.NewFromInt(500)))
	suite.Equal(domain.BalanceCr, report.FinalBalanceType)
}

func (suite *StatementServiceTestSuite) TestBuildStatement_EmptyWindow() {
	ctx := context.Background()
	client := &domain.Client{ClientID: 3, Name: "Gulf Traders"}

	suite.mockClientRepo.On("FindClientByID", ctx, int64(3)).Return(client, nil).Once()
	suite.mockTxnRepo.On("ListTransactionsForClient", ctx, int64(3), (*time.Time)(nil), (*time.Time)(nil)).
		Return([]domain.Transaction{}, nil).Once()
	suite.mockItemRepo.On("SumInvoiceTotalsForClient", ctx, int64(3), (*time.Time)(nil), (*time.Time)(nil)).
		Return(domain.InvoiceTotals{}, nil).Once()

	report, err := suite.service.BuildStatement(ctx, 3, nil, nil)

	suite.Require().NoError(err)
	suite.Empty(report.Entries)
	suite.True(report.FinalBalance.IsZero())
	suite.Equal(domain.BalanceDr, report.FinalBalanceType)
}

func (suite *StatementServiceTestSuite) TestBuildStatement_ClientNotFound() {
	ctx := context.Background()

	suite.mockClientRepo.On("FindClientByID", ctx, int64(404)).Return(nil, apperrors.ErrNotFound).Once()

	report, err := suite.service.BuildStatement(ctx, 404, nil, nil)

	suite.Require().Error(err)
	suite.Nil(report)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "ListTransactionsForClient",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *StatementServiceTestSuite) TestAccountStatement() {
	ctx := context.Background()

	suite.mockTxnRepo.On("AccountTotals", ctx).
		Return(decimal.NewFromInt(1000), decimal.NewFromInt(400), nil).Once()

	summary, err := suite.service.AccountStatement(ctx)

	suite.Require().NoError(err)
	suite.True(summary.TotalReceived.Equal(decimal.NewFromInt(1000)))
	suite.True(summary.TotalPaid.Equal(decimal.NewFromInt(400)))
	suite.True(summary.NetBalance.Equal(decimal.NewFromInt(600)))
}

func (suite *StatementServiceTestSuite) TestAccountStatement_RepoError() {
	ctx := context.Background()

	suite.mockTxnRepo.On("AccountTotals", ctx).
		Return(decimal.Zero, decimal.Zero, assert.AnError).Once()

	summary, err := suite.service.AccountStatement(ctx)

	suite.Require().Error(err)
	suite.Nil(summary)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *StatementServiceTestSuite) TestBuildReconciliation() {
	ctx := context.Background()
	client := &domain.Client{ClientID: 3, Name: "Gulf Traders"}
	day := func(d int) time.Time { return time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC) }
	jobs := []domain.Job{
		{JobID: 1, ClientID: 3, JobDate: day(1), IsInvoiced: true},
		{JobID: 2, ClientID: 3, JobDate: day(2), IsInvoiced: true},
		{JobID: 3, ClientID: 3, JobDate: day(3), IsInvoiced: true},
		{JobID: 4, ClientID: 3, JobDate: day(4), IsInvoiced: true},
	}

	suite.mockClientRepo.On("FindClientByID", ctx, int64(3)).Return(client, nil).Once()
	suite.mockJobRepo.On("ListInvoicedJobsByClient", ctx, int64(3), (*time.Time)(nil), (*time.Time)(nil)).
		Return(jobs, nil).Once()

	// Job 1: entry matches the item total.
	suite.mockItemRepo.On("SumInvoiceItemTotals", ctx, int64(1)).Return(decimal.NewFromInt(100), nil).Once()
	suite.mockTxnRepo.On("FindInvoiceEntryByJobID", ctx, int64(1)).
		Return(&domain.Transaction{Amount: decimal.NewFromInt(100), VoucherNo: "INV-001"}, nil).Once()

	// Job 2: items were edited after the last sync.
	suite.mockItemRepo.On("SumInvoiceItemTotals", ctx, int64(2)).Return(decimal.NewFromInt(150), nil).Once()
	suite.mockTxnRepo.On("FindInvoiceEntryByJobID", ctx, int64(2)).
		Return(&domain.Transaction{Amount: decimal.NewFromInt(120), VoucherNo: "INV-002"}, nil).Once()

	// Job 3: zero total, legitimately no shadow entry.
	suite.mockItemRepo.On("SumInvoiceItemTotals", ctx, int64(3)).Return(decimal.Zero, nil).Once()
	suite.mockTxnRepo.On("FindInvoiceEntryByJobID", ctx, int64(3)).
		Return(nil, apperrors.ErrNotFound).Once()

	// Job 4: billable total but the entry is missing.
	suite.mockItemRepo.On("SumInvoiceItemTotals", ctx, int64(4)).Return(decimal.NewFromInt(80), nil).Once()
	suite.mockTxnRepo.On("FindInvoiceEntryByJobID", ctx, int64(4)).
		Return(nil, apperrors.ErrNotFound).Once()

	gotClient, rows, err := suite.service.BuildReconciliation(ctx, 3)

	suite.Require().NoError(err)
	suite.Equal(client, gotClient)
	suite.Require().Len(rows, 4)

	suite.True(rows[0].InSync)
	suite.Equal("INV-001", rows[0].VoucherNo)

	suite.False(rows[1].InSync)
	suite.Require().NotNil(rows[1].LedgerAmount)
	suite.True(rows[1].LedgerAmount.Equal(decimal.NewFromInt(120)))

	suite.True(rows[2].InSync)
	suite.Nil(rows[2].LedgerAmount)

	suite.False(rows[3].InSync)
	suite.Nil(rows[3].LedgerAmount)

	suite.mockTxnRepo.AssertExpectations(suite.T())
	suite.mockItemRepo.AssertExpectations(suite.T())
}

func (suite *StatementServiceTestSuite) TestBuildReconciliation_ClientNotFound() {
	ctx := context.Background()

	suite.mockClientRepo.On("FindClientByID", ctx, int64(404)).Return(nil, apperrors.ErrNotFound).Once()

	gotClient, rows, err := suite.service.BuildReconciliation(ctx, 404)

	suite.Require().Error(err)
	suite.Nil(gotClient)
	suite.Nil(rows)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestStatementService(t *testing.T) {
	suite.Run(t, new(StatementServiceTestSuite))
}
