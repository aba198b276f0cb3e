package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/gulfbridge/freight_ledger_app/internal/apperrors"
	"github.com/gulfbridge/freight_ledger_app/internal/core/domain"
	portssvc "github.com/gulfbridge/freight_ledger_app/internal/core/ports/services"
	"github.com/gulfbridge/freight_ledger_app/internal/dto"
	"github.com/gulfbridge/freight_ledger_app/internal/handlers"
	"github.com/gulfbridge/freight_ledger_app/internal/platform/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock StatementService ---
type MockStatementService struct {
	mock.Mock
}

var _ portssvc.StatementSvcFacade = (*MockStatementService)(nil)

func (m *MockStatementService) BuildStatement(ctx context.Context, clientID int64, from, to *time.Time) (*domain.StatementReport, error) {
	args := m.Called(ctx, clientID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StatementReport), args.Error(1)
}

func (m *MockStatementService) AccountStatement(ctx context.Context) (*domain.AccountStatement, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountStatement), args.Error(1)
}

func (m *MockStatementService) BuildReconciliation(ctx context.Context, clientID int64) (*domain.Client, []domain.ReconciliationRow, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Client), args.Get(1).([]domain.ReconciliationRow), args.Error(2)
}

// Stub facades for the routes this suite never exercises.
type stubClientService struct{}

func (stubClientService) GetClientByID(context.Context, int64) (*domain.Client, error) {
	return nil, apperrors.ErrNotFound
}
func (stubClientService) ListClients(context.Context) ([]domain.Client, error) { return nil, nil }
func (stubClientService) ListClientsWithJobs(context.Context) ([]domain.Client, error) {
	return nil, nil
}
func (stubClientService) CreateClient(context.Context, dto.CreateClientRequest) (*domain.Client, error) {
	return nil, apperrors.ErrNotFound
}
func (stubClientService) UpdateClient(context.Context, int64, dto.UpdateClientRequest) (*domain.Client, error) {
	return nil, apperrors.ErrNotFound
}
func (stubClientService) DeleteClient(context.Context, int64) error { return nil }

type stubJobService struct{}

func (stubJobService) GetJobByID(context.Context, int64) (*domain.Job, error) {
	return nil, apperrors.ErrNotFound
}
func (stubJobService) ListJobs(context.Context) ([]domain.Job, error) { return nil, nil }
func (stubJobService) CreateJob(context.Context, dto.CreateJobRequest, string) (*domain.Job, error) {
	return nil, apperrors.ErrNotFound
}
func (stubJobService) UpdateJob(context.Context, int64, dto.UpdateJobRequest, string) (*domain.Job, domain.ShadowSyncResult, error) {
	return nil, domain.ShadowSyncResult{}, apperrors.ErrNotFound
}
func (stubJobService) SetJobInvoiced(context.Context, int64, bool, string) (*domain.Job, domain.ShadowSyncResult, error) {
	return nil, domain.ShadowSyncResult{}, apperrors.ErrNotFound
}
func (stubJobService) DeleteJob(context.Context, int64, string) error { return nil }

type stubInvoiceItemService struct{}

func (stubInvoiceItemService) GetInvoiceItemByID(context.Context, int64) (*domain.InvoiceItem, error) {
	return nil, apperrors.ErrNotFound
}
func (stubInvoiceItemService) ListInvoiceItemsByJobID(context.Context, int64) ([]domain.InvoiceItem, error) {
	return nil, nil
}
func (stubInvoiceItemService) CreateInvoiceItem(context.Context, dto.CreateInvoiceItemRequest) (*domain.InvoiceItem, error) {
	return nil, apperrors.ErrNotFound
}
func (stubInvoiceItemService) UpdateInvoiceItem(context.Context, int64, dto.UpdateInvoiceItemRequest) (*domain.InvoiceItem, error) {
	return nil, apperrors.ErrNotFound
}
func (stubInvoiceItemService) DeleteInvoiceItem(context.Context, int64) error { return nil }

type stubChargeTypeService struct{}

func (stubChargeTypeService) GetChargeTypeByID(context.Context, int64) (*domain.ChargeType, error) {
	return nil, apperrors.ErrNotFound
}
func (stubChargeTypeService) ListChargeTypes(context.Context) ([]domain.ChargeType, error) {
	return nil, nil
}
func (stubChargeTypeService) CreateChargeType(context.Context, dto.CreateChargeTypeRequest) (*domain.ChargeType, error) {
	return nil, apperrors.ErrNotFound
}
func (stubChargeTypeService) DeleteChargeType(context.Context, int64) error { return nil }

type stubTransactionService struct{}

func (stubTransactionService) GetTransactionByID(context.Context, int64) (*domain.Transaction, error) {
	return nil, apperrors.ErrNotFound
}
func (stubTransactionService) ListTransactions(context.Context) ([]domain.Transaction, error) {
	return nil, nil
}
func (stubTransactionService) CreateTransaction(context.Context, dto.CreateTransactionRequest, string) (*domain.Transaction, error) {
	return nil, apperrors.ErrNotFound
}
func (stubTransactionService) DeleteTransaction(context.Context, int64, string) error { return nil }

type stubPartyService struct{}

func (stubPartyService) GetPartyByID(context.Context, int64) (*domain.Party, error) {
	return nil, apperrors.ErrNotFound
}
func (stubPartyService) ListParties(context.Context) ([]domain.Party, error) { return nil, nil }
func (stubPartyService) CreateParty(context.Context, dto.CreatePartyRequest) (*domain.Party, error) {
	return nil, apperrors.ErrNotFound
}
func (stubPartyService) DeleteParty(context.Context, int64) error { return nil }

type stubAuditService struct{}

func (stubAuditService) RecordAction(context.Context, string, string) {}
func (stubAuditService) ListRecent(context.Context, int) ([]domain.AuditLog, error) {
	return nil, nil
}

// --- Test Suite ---
type ReportHandlerTestSuite struct {
	suite.Suite
	router               *gin.Engine
	mockStatementService *MockStatementService
	jwtSecret            string
}

func (suite *ReportHandlerTestSuite) generateTestToken(userName string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "fla-test",
		Subject:   userName,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *ReportHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.mockStatementService = new(MockStatementService)

	cfg := &config.Config{
		JWTSecret:    suite.jwtSecret,
		IsProduction: true, // skip swagger routes in tests
	}
	services := &portssvc.ServiceContainer{
		Client:      stubClientService{},
		Job:         stubJobService{},
		InvoiceItem: stubInvoiceItemService{},
		ChargeType:  stubChargeTypeService{},
		Transaction: stubTransactionService{},
		Statement:   suite.mockStatementService,
		Party:       stubPartyService{},
		Audit:       stubAuditService{},
	}
	handlers.RegisterRoutes(suite.router, cfg, services)
}

func (suite *ReportHandlerTestSuite) doRequest(url string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken("operator1"))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *ReportHandlerTestSuite) TestGetLedgerStatement_Success() {
	report := &domain.StatementReport{
		Client: domain.Client{ClientID: 3, Name: "Gulf Traders"},
		Entries: []domain.LedgerEntry{
			{
				TransactionID:  1,
				Date:           time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
				VoucherNo:      "INV-001",
				Particulars:    "Invoice for Job #7",
				Debit:          decimal.NewFromInt(200),
				RunningBalance: decimal.NewFromInt(200),
				BalanceType:    domain.BalanceDr,
			},
		},
		TotalDebit:       decimal.NewFromInt(200),
		FinalBalance:     decimal.NewFromInt(200),
		FinalBalanceType: domain.BalanceDr,
	}

	suite.mockStatementService.On("BuildStatement",
		mock.Anything, int64(3), (*time.Time)(nil), (*time.Time)(nil)).
		Return(report, nil).Once()

	w := suite.doRequest("/api/v1/reports/ledger-statement?client_id=3")

	suite.Equal(http.StatusOK, w.Code)
	var body dto.StatementResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("Gulf Traders", body.Client.Name)
	suite.Require().Len(body.Entries, 1)
	suite.Equal("INV-001", body.Entries[0].VoucherNo)
	suite.Equal("2025-03-01", body.Entries[0].Date)
	suite.Equal("Dr", body.FinalBalanceType)
	suite.mockStatementService.AssertExpectations(suite.T())
}

func (suite *ReportHandlerTestSuite) TestGetLedgerStatement_PassesDateWindow() {
	report := &domain.StatementReport{Client: domain.Client{ClientID: 3}}

	suite.mockStatementService.On("BuildStatement",
		mock.Anything, int64(3),
		mock.MatchedBy(func(from *time.Time) bool {
			return from != nil && from.Format("2006-01-02") == "2025-01-01"
		}),
		mock.MatchedBy(func(to *time.Time) bool {
			return to != nil && to.Format("2006-01-02") == "2025-03-31"
		})).
		Return(report, nil).Once()

	// The day-first format must parse the same as ISO.
	w := suite.doRequest("/api/v1/reports/ledger-statement?client_id=3&start_date=2025-01-01&end_date=31/03/2025")

	suite.Equal(http.StatusOK, w.Code)
	suite.mockStatementService.AssertExpectations(suite.T())
}

func (suite *ReportHandlerTestSuite) TestGetLedgerStatement_MissingClientID() {
	w := suite.doRequest("/api/v1/reports/ledger-statement")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockStatementService.AssertNotCalled(suite.T(), "BuildStatement",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReportHandlerTestSuite) TestGetLedgerStatement_BadDate() {
	w := suite.doRequest("/api/v1/reports/ledger-statement?client_id=3&start_date=03-15-2025")

	suite.Equal(http.StatusBadRequest, w.Code)
	var body map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Contains(body["error"], "start_date")
}

func (suite *ReportHandlerTestSuite) TestGetLedgerStatement_ClientNotFound() {
	suite.mockStatementService.On("BuildStatement",
		mock.Anything, int64(404), (*time.Time)(nil), (*time.Time)(nil)).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doRequest("/api/v1/reports/ledger-statement?client_id=404")

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *ReportHandlerTestSuite) TestGetLedgerStatement_Unauthorized() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/reports/ledger-statement?client_id=3", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *ReportHandlerTestSuite) TestGetAccountStatement_Success() {
	suite.mockStatementService.On("AccountStatement", mock.Anything).
		Return(&domain.AccountStatement{
			TotalReceived: decimal.NewFromInt(1000),
			TotalPaid:     decimal.NewFromInt(400),
			NetBalance:    decimal.NewFromInt(600),
		}, nil).Once()

	w := suite.doRequest("/api/v1/reports/account-statement")

	suite.Equal(http.StatusOK, w.Code)
	var body dto.AccountStatementResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.True(body.NetBalance.Equal(decimal.NewFromInt(600)))
	suite.mockStatementService.AssertExpectations(suite.T())
}

func (suite *ReportHandlerTestSuite) TestGetReconciliation_Success() {
	ledgerAmount := decimal.NewFromInt(120)
	client := &domain.Client{ClientID: 3, Name: "Gulf Traders"}
	rows := []domain.ReconciliationRow{
		{JobID: 1, JobDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			ItemsTotal: decimal.NewFromInt(120), LedgerAmount: &ledgerAmount, VoucherNo: "INV-001", InSync: true},
		{JobID: 2, JobDate: time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC),
			ItemsTotal: decimal.NewFromInt(80), InSync: false},
	}

	suite.mockStatementService.On("BuildReconciliation", mock.Anything, int64(3)).
		Return(client, rows, nil).Once()

	w := suite.doRequest("/api/v1/reports/reconciliation?client_id=3")

	suite.Equal(http.StatusOK, w.Code)
	var body dto.ReconciliationResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Require().Len(body.Rows, 2)
	suite.True(body.Rows[0].InSync)
	suite.False(body.Rows[1].InSync)
	suite.Nil(body.Rows[1].LedgerAmount)
	suite.mockStatementService.AssertExpectations(suite.T())
}

func (suite *ReportHandlerTestSuite) TestGetReconciliation_MissingClientID() {
	w := suite.doRequest("/api/v1/reports/reconciliation")

	suite.Equal(http.StatusBadRequest, w.Code)
}

func TestReportHandler(t *testing.T) {
	suite.Run(t, new(ReportHandlerTestSuite))
}
