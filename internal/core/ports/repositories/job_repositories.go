package repositories

import (
	"context"
	"time"

	"github.com/gulfbridge/freight_ledger_app/internal/core/domain"
)

// JobReader defines read operations for job data
type JobReader interface {
	// FindJobByID retrieves a specific job by its identifier.
	FindJobByID(ctx context.Context, jobID int64) (*domain.Job, error)

	// ListJobs retrieves all jobs, newest first.
	ListJobs(ctx context.Context) ([]domain.Job, error)

	// ListInvoicedJobsByClient retrieves a client's invoiced jobs inside the
	// inclusive date window; nil bounds leave that side open.
	ListInvoicedJobsByClient(ctx context.Context, clientID int64, from, to *time.Time) ([]domain.Job, error)
}

// JobWriter defines write operations for job data
type JobWriter interface {
	// SaveJob persists a new job and returns it with its assigned ID.
	SaveJob(ctx context.Context, job domain.Job) (*domain.Job, error)

	// UpdateJob updates an existing job.
	UpdateJob(ctx context.Context, job domain.Job) error

	// MarkJobInvoiced flips only the is_invoiced flag.
	MarkJobInvoiced(ctx context.Context, jobID int64, invoiced bool) error

	// DeleteJob removes a job; its invoice items cascade.
	DeleteJob(ctx context.Context, jobID int64) error
}

// JobRepositoryFacade combines all job repository interfaces
type JobRepositoryFacade interface {
	JobReader
	JobWriter
}
