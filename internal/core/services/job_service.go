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
	portssvc "github.com/gulfbridge/freight_ledger_app/internal/core/ports/services"
	"github.com/gulfbridge/freight_ledger_app/internal/dto"
)

// JobService manages shipment jobs and drives the invoice shadow-entry
// synchronizer whenever a job is saved in the invoiced state.
type JobService struct {
	BaseService
	jobRepo    portsrepo.JobRepositoryFacade
	clientRepo portsrepo.ClientRepositoryFacade
	syncer     *InvoiceSyncer
	audit      portssvc.AuditSvcFacade
}

// NewJobService creates a new JobService.
func NewJobService(
	jobRepo portsrepo.JobRepositoryFacade,
	clientRepo portsrepo.ClientRepositoryFacade,
	syncer *InvoiceSyncer,
	audit portssvc.AuditSvcFacade,
) *JobService {
	return &JobService{jobRepo: jobRepo, clientRepo: clientRepo, syncer: syncer, audit: audit}
}

func (s *JobService) GetJobByID(ctx context.Context, jobID int64) (*domain.Job, error) {
	job, err := s.jobRepo.FindJobByID(ctx, jobID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "failed to find job", slog.Int64("job_id", jobID))
		}
		return nil, err
	}
	return job, nil
}

func (s *JobService) ListJobs(ctx context.Context) ([]domain.Job, error) {
	jobs, err := s.jobRepo.ListJobs(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to list jobs")
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	if jobs == nil {
		return []domain.Job{}, nil
	}
	return jobs, nil
}

// resolveClient returns the client id for a job payload: an explicit id is
// verified, an inline client is matched by name (find-or-create).
func (s *JobService) resolveClient(ctx context.Context, clientID *int64, inline *dto.CreateClientRequest) (int64, error) {
	switch {
	case clientID != nil:
		client, err := s.clientRepo.FindClientByID(ctx, *clientID)
		if err != nil {
			return 0, err
		}
		return client.ClientID, nil
	case inline != nil:
		client, err := s.clientRepo.FindOrCreateClientByName(ctx, domain.Client{
			Name:       inline.Name,
			Address:    inline.Address,
			PostalCode: inline.PostalCode,
			Phone:      inline.Phone,
			Email:      inline.Email,
			VATNumber:  inline.VATNumber,
		})
		if err != nil {
			return 0, err
		}
		return client.ClientID, nil
	default:
		return 0, apperrors.NewValidationError("either clientID or an inline client is required")
	}
}

func (s *JobService) CreateJob(ctx context.Context, req dto.CreateJobRequest, userName string) (*domain.Job, error) {
	clientID, err := s.resolveClient(ctx, req.ClientID, req.Client)
	if err != nil {
		return nil, err
	}

	jobDate := req.JobDate
	if jobDate.IsZero() {
		jobDate = time.Now()
	}
	mode := domain.TransportMode(req.TransportMode)
	if mode == "" {
		mode = domain.TransportSea
	}

	job := domain.Job{
		ClientID:            clientID,
		JobDate:             jobDate,
		ShipmentInvoiceNo:   req.ShipmentInvoiceNo,
		TransportDocumentNo: req.TransportDocumentNo,
		VATNumber:           req.VATNumber,
		TransportMode:       mode,
		ShipmentAddress:     req.ShipmentAddress,
		PortLoading:         req.PortLoading,
		PlaceLoading:        req.PlaceLoading,
		PortDischarge:       req.PortDischarge,
		PlaceDischarge:      req.PlaceDischarge,
		NoOfPackages:        req.NoOfPackages,
		GrossWeight:         req.GrossWeight,
		NetWeight:           req.NetWeight,
		CBM:                 req.CBM,
	}
	saved, err := s.jobRepo.SaveJob(ctx, job)
	if err != nil {
		s.LogError(ctx, err, "failed to save job", slog.Int64("client_id", clientID))
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	s.audit.RecordAction(ctx, userName, fmt.Sprintf("created job #%d", saved.JobID))
	s.LogInfo(ctx, "job created", slog.Int64("job_id", saved.JobID))
	return saved, nil
}

func (s *JobService) UpdateJob(ctx context.Context, jobID int64, req dto.UpdateJobRequest, userName string) (*domain.Job, domain.ShadowSyncResult, error) {
	noSync := domain.ShadowSyncResult{Status: domain.SyncNotApplicable}

	job, err := s.jobRepo.FindJobByID(ctx, jobID)
	if err != nil {
		return nil, noSync, err
	}

	if req.Client != nil {
		clientID, err := s.resolveClient(ctx, nil, req.Client)
		if err != nil {
			return nil, noSync, err
		}
		job.ClientID = clientID
	}
	if req.JobDate != nil {
		job.JobDate = *req.JobDate
	}
	if req.ShipmentInvoiceNo != nil {
		job.ShipmentInvoiceNo = *req.ShipmentInvoiceNo
	}
	if req.TransportDocumentNo != nil {
		job.TransportDocumentNo = *req.TransportDocumentNo
	}
	if req.VATNumber != nil {
		job.VATNumber = *req.VATNumber
	}
	if req.TransportMode != nil {
		job.TransportMode = domain.TransportMode(*req.TransportMode)
	}
	if req.ShipmentAddress != nil {
		job.ShipmentAddress = *req.ShipmentAddress
	}
	if req.PortLoading != nil {
		job.PortLoading = *req.PortLoading
	}
	if req.PlaceLoading != nil {
		job.PlaceLoading = *req.PlaceLoading
	}
	if req.PortDischarge != nil {
		job.PortDischarge = *req.PortDischarge
	}
	if req.PlaceDischarge != nil {
		job.PlaceDischarge = *req.PlaceDischarge
	}
	if req.NoOfPackages != nil {
		job.NoOfPackages = *req.NoOfPackages
	}
	if req.GrossWeight != nil {
		job.GrossWeight = *req.GrossWeight
	}
	if req.NetWeight != nil {
		job.NetWeight = *req.NetWeight
	}
	if req.CBM != nil {
		job.CBM = *req.CBM
	}
	if req.IsFinished != nil {
		job.IsFinished = *req.IsFinished
	}
	if req.IsInvoiced != nil {
		job.IsInvoiced = *req.IsInvoiced
	}

	if err := s.jobRepo.UpdateJob(ctx, *job); err != nil {
		s.LogError(ctx, err, "failed to update job", slog.Int64("job_id", jobID))
		return nil, noSync, fmt.Errorf("failed to update job: %w", err)
	}
	s.audit.RecordAction(ctx, userName, fmt.Sprintf("updated job #%d", jobID))

	// Sync runs after the job write; its failure is reported, never rolled back.
	result := s.syncer.SyncJob(ctx, job)
	return job, result, nil
}

func (s *JobService) SetJobInvoiced(ctx context.Context, jobID int64, invoiced bool, userName string) (*domain.Job, domain.ShadowSyncResult, error) {
	noSync := domain.ShadowSyncResult{Status: domain.SyncNotApplicable}

	if err := s.jobRepo.MarkJobInvoiced(ctx, jobID, invoiced); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "failed to mark job invoiced", slog.Int64("job_id", jobID))
		}
		return nil, noSync, err
	}
	job, err := s.jobRepo.FindJobByID(ctx, jobID)
	if err != nil {
		return nil, noSync, err
	}

	s.audit.RecordAction(ctx, userName, fmt.Sprintf("set job #%d invoiced=%t", jobID, invoiced))
	result := s.syncer.SyncJob(ctx, job)
	return job, result, nil
}

func (s *JobService) DeleteJob(ctx context.Context, jobID int64, userName string) error {
	if err := s.jobRepo.DeleteJob(ctx, jobID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "failed to delete job", slog.Int64("job_id", jobID))
		}
		return err
	}
	s.audit.RecordAction(ctx, userName, fmt.Sprintf("deleted job #%d", jobID))
	return nil
}
