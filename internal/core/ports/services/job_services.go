package services

import (
	"context"

	"github.com/gulfbridge/freight_ledger_app/internal/core/domain"
	"github.com/gulfbridge/freight_ledger_app/internal/dto"
)

// JobReaderSvc defines read operations for job data
type JobReaderSvc interface {
	// GetJobByID retrieves a specific job by its identifier.
	GetJobByID(ctx context.Context, jobID int64) (*domain.Job, error)

	// ListJobs retrieves all jobs, newest first.
	ListJobs(ctx context.Context) ([]domain.Job, error)
}

// JobWriterSvc defines write operations for job data
type JobWriterSvc interface {
	// CreateJob persists a new job, resolving its client by id or by
	// find-or-create on an inline client payload.
	CreateJob(ctx context.Context, req dto.CreateJobRequest, userName string) (*domain.Job, error)

	// UpdateJob updates a job. When the update flips is_invoiced, the shadow
	// entry synchronizer runs after the job write commits and its outcome is
	// returned alongside the saved job.
	UpdateJob(ctx context.Context, jobID int64, req dto.UpdateJobRequest, userName string) (*domain.Job, domain.ShadowSyncResult, error)

	// SetJobInvoiced flips only the invoiced flag and runs the synchronizer.
	// A synchronizer failure is reported in the result, never as an error that
	// would suggest the flag write was rolled back.
	SetJobInvoiced(ctx context.Context, jobID int64, invoiced bool, userName string) (*domain.Job, domain.ShadowSyncResult, error)

	// DeleteJob removes a job and its invoice items.
	DeleteJob(ctx context.Context, jobID int64, userName string) error
}

// JobSvcFacade combines all job-related service interfaces
type JobSvcFacade interface {
	JobReaderSvc
	JobWriterSvc
}
