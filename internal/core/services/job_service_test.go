package services_test

import (
	"context"
	"testing"

	"github.com/gulfbridge/freight_ledger_app/internal/apperrors"
	"github.com/gulfbridge/freight_ledger_app/internal/core/domain"
	portssvc "github.com/gulfbridge/freight_ledger_app/internal/core/ports/services"
	"github.com/gulfbridge/freight_ledger_app/internal/core/services"
	"github.com/gulfbridge/freight_ledger_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type JobServiceTestSuite struct {
	suite.Suite
	mockJobRepo    *MockJobRepository
	mockClientRepo *MockClientRepository
	mockItemRepo   *MockInvoiceItemRepository
	mockTxnRepo    *MockTransactionRepository
	mockAudit      *MockAuditService
	service        portssvc.JobSvcFacade
}

func (suite *JobServiceTestSuite) SetupTest() {
	suite.mockJobRepo = new(MockJobRepository)
	suite.mockClientRepo = new(MockClientRepository)
	suite.mockItemRepo = new(MockInvoiceItemRepository)
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockAudit = new(MockAuditService)
	syncer := services.NewInvoiceSyncer(suite.mockClientRepo, suite.mockItemRepo, suite.mockTxnRepo)
	suite.service = services.NewJobService(suite.mockJobRepo, suite.mockClientRepo, syncer, suite.mockAudit)
}

func (suite *JobServiceTestSuite) TestCreateJob_ExistingClient() {
	ctx := context.Background()
	clientID := int64(3)
	req := dto.CreateJobRequest{ClientID: &clientID, TransportMode: "AIR"}

	suite.mockClientRepo.On("FindClientByID", ctx, int64(3)).
		Return(&domain.Client{ClientID: 3, Name: "Gulf Traders"}, nil).Once()
	suite.mockJobRepo.On("SaveJob", ctx, mock.MatchedBy(func(job domain.Job) bool {
		return job.ClientID == 3 && job.TransportMode == domain.TransportAir && !job.JobDate.IsZero()
	})).Return(&domain.Job{JobID: 7, ClientID: 3, TransportMode: domain.TransportAir}, nil).Once()
	suite.mockAudit.On("RecordAction", ctx, "operator1", "created job #7").Once()

	job, err := suite.service.CreateJob(ctx, req, "operator1")

	suite.Require().NoError(err)
	suite.Equal(int64(7), job.JobID)
	suite.mockJobRepo.AssertExpectations(suite.T())
	suite.mockAudit.AssertExpectations(suite.T())
}

func (suite *JobServiceTestSuite) TestCreateJob_InlineClient() {
	ctx := context.Background()
	req := dto.CreateJobRequest{
		Client: &dto.CreateClientRequest{Name: "New Shipper"},
	}

	suite.mockClientRepo.On("FindOrCreateClientByName", ctx, mock.MatchedBy(func(c domain.Client) bool {
		return c.Name == "New Shipper"
	})).Return(&domain.Client{ClientID: 9, Name: "New Shipper"}, nil).Once()
	suite.mockJobRepo.On("SaveJob", ctx, mock.MatchedBy(func(job domain.Job) bool {
		// Transport mode defaults to SEA when omitted.
		return job.ClientID == 9 && job.TransportMode == domain.TransportSea
	})).Return(&domain.Job{JobID: 8, ClientID: 9}, nil).Once()
	suite.mockAudit.On("RecordAction", ctx, "operator1", "created job #8").Once()

	job, err := suite.service.CreateJob(ctx, req, "operator1")

	suite.Require().NoError(err)
	suite.Equal(int64(8), job.JobID)
	suite.mockClientRepo.AssertExpectations(suite.T())
}

func (suite *JobServiceTestSuite) TestCreateJob_NoClientGiven() {
	ctx := context.Background()

	job, err := suite.service.CreateJob(ctx, dto.CreateJobRequest{}, "operator1")

	suite.Require().Error(err)
	suite.Nil(job)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockJobRepo.AssertNotCalled(suite.T(), "SaveJob", mock.Anything, mock.Anything)
}

func (suite *JobServiceTestSuite) TestSetJobInvoiced_TriggersSync() {
	ctx := context.Background()
	job := &domain.Job{JobID: 7, ClientID: 3, IsInvoiced: true}
	total := decimal.NewFromInt(300)

	suite.mockJobRepo.On("MarkJobInvoiced", ctx, int64(7), true).Return(nil).Once()
	suite.mockJobRepo.On("FindJobByID", ctx, int64(7)).Return(job, nil).Once()
	suite.mockAudit.On("RecordAction", ctx, "operator1", "set job #7 invoiced=true").Once()
	suite.mockItemRepo.On("SumInvoiceItemTotals", ctx, int64(7)).Return(total, nil).Once()
	suite.mockClientRepo.On("FindClientByID", ctx, int64(3)).
		Return(&domain.Client{ClientID: 3, Name: "Gulf Traders"}, nil).Once()
	suite.mockTxnRepo.On("UpsertInvoiceEntry", ctx, mock.AnythingOfType("domain.Transaction")).
		Return(&domain.Transaction{VoucherNo: "INV-001", Amount: total}, nil).Once()

	gotJob, result, err := suite.service.SetJobInvoiced(ctx, 7, true, "operator1")

	suite.Require().NoError(err)
	suite.Equal(job, gotJob)
	suite.Equal(domain.SyncApplied, result.Status)
	suite.Equal("INV-001", result.VoucherNo)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *JobServiceTestSuite) TestSetJobInvoiced_SyncFailureKeepsJobSave() {
	ctx := context.Background()
	job := &domain.Job{JobID: 7, ClientID: 3, IsInvoiced: true}

	suite.mockJobRepo.On("MarkJobInvoiced", ctx, int64(7), true).Return(nil).Once()
	suite.mockJobRepo.On("FindJobByID", ctx, int64(7)).Return(job, nil).Once()
	suite.mockAudit.On("RecordAction", ctx, "operator1", mock.AnythingOfType("string")).Once()
	suite.mockItemRepo.On("SumInvoiceItemTotals", ctx, int64(7)).
		Return(decimal.Zero, assert.AnError).Once()

	gotJob, result, err := suite.service.SetJobInvoiced(ctx, 7, true, "operator1")

	// The ledger failure is reported in the result, never as an error.
	suite.Require().NoError(err)
	suite.NotNil(gotJob)
	suite.Equal(domain.SyncFailed, result.Status)
	suite.NotEmpty(result.Error)
}

func (suite *JobServiceTestSuite) TestSetJobInvoiced_UnInvoiceLeavesLedgerAlone() {
	ctx := context.Background()
	job := &domain.Job{JobID: 7, ClientID: 3, IsInvoiced: false}

	suite.mockJobRepo.On("MarkJobInvoiced", ctx, int64(7), false).Return(nil).Once()
	suite.mockJobRepo.On("FindJobByID", ctx, int64(7)).Return(job, nil).Once()
	suite.mockAudit.On("RecordAction", ctx, "operator1", "set job #7 invoiced=false").Once()

	_, result, err := suite.service.SetJobInvoiced(ctx, 7, false, "operator1")

	suite.Require().NoError(err)
	suite.Equal(domain.SyncNotApplicable, result.Status)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "UpsertInvoiceEntry", mock.Anything, mock.Anything)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "DeleteTransaction", mock.Anything, mock.Anything)
}

func (suite *JobServiceTestSuite) TestSetJobInvoiced_JobNotFound() {
	ctx := context.Background()

	suite.mockJobRepo.On("MarkJobInvoiced", ctx, int64(404), true).
		Return(apperrors.ErrNotFound).Once()

	gotJob, _, err := suite.service.SetJobInvoiced(ctx, 404, true, "operator1")

	suite.Require().Error(err)
	suite.Nil(gotJob)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *JobServiceTestSuite) TestUpdateJob_PatchesAndSyncs() {
	ctx := context.Background()
	existing := &domain.Job{JobID: 7, ClientID: 3, TransportMode: domain.TransportSea, IsInvoiced: true}
	newMode := "LAND"
	total := decimal.NewFromInt(120)

	suite.mockJobRepo.On("FindJobByID", ctx, int64(7)).Return(existing, nil).Once()
	suite.mockJobRepo.On("UpdateJob", ctx, mock.MatchedBy(func(job domain.Job) bool {
		return job.TransportMode == domain.TransportLand && job.IsInvoiced
	})).Return(nil).Once()
	suite.mockAudit.On("RecordAction", ctx, "operator1", "updated job #7").Once()
	suite.mockItemRepo.On("SumInvoiceItemTotals", ctx, int64(7)).Return(total, nil).Once()
	suite.mockClientRepo.On("FindClientByID", ctx, int64(3)).
		Return(&domain.Client{ClientID: 3, Name: "Gulf Traders"}, nil).Once()
	suite.mockTxnRepo.On("UpsertInvoiceEntry", ctx, mock.AnythingOfType("domain.Transaction")).
		Return(&domain.Transaction{VoucherNo: "INV-003", Amount: total}, nil).Once()

	job, result, err := suite.service.UpdateJob(ctx, 7, dto.UpdateJobRequest{TransportMode: &newMode}, "operator1")

	suite.Require().NoError(err)
	suite.Equal(domain.TransportLand, job.TransportMode)
	suite.Equal(domain.SyncApplied, result.Status)
	suite.mockJobRepo.AssertExpectations(suite.T())
}

func (suite *JobServiceTestSuite) TestUpdateJob_NotInvoicedSkipsSync() {
	ctx := context.Background()
	existing := &domain.Job{JobID: 7, ClientID: 3, IsInvoiced: false}
	newNo := "BL-1234"

	suite.mockJobRepo.On("FindJobByID", ctx, int64(7)).Return(existing, nil).Once()
	suite.mockJobRepo.On("UpdateJob", ctx, mock.AnythingOfType("domain.Job")).Return(nil).Once()
	suite.mockAudit.On("RecordAction", ctx, "operator1", "updated job #7").Once()

	_, result, err := suite.service.UpdateJob(ctx, 7, dto.UpdateJobRequest{TransportDocumentNo: &newNo}, "operator1")

	suite.Require().NoError(err)
	suite.Equal(domain.SyncNotApplicable, result.Status)
	suite.mockItemRepo.AssertNotCalled(suite.T(), "SumInvoiceItemTotals", mock.Anything, mock.Anything)
}

func (suite *JobServiceTestSuite) TestDeleteJob() {
	ctx := context.Background()

	suite.mockJobRepo.On("DeleteJob", ctx, int64(7)).Return(nil).Once()
	suite.mockAudit.On("RecordAction", ctx, "operator1", "deleted job #7").Once()

	err := suite.service.DeleteJob(ctx, 7, "operator1")

	suite.Require().NoError(err)
	suite.mockAudit.AssertExpectations(suite.T())
}

func TestJobService(t *testing.T) {
	suite.Run(t, new(JobServiceTestSuite))
}
