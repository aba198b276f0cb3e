package services

import (
	"context"

	"github.com/gulfbridge/freight_ledger_app/internal/core/domain"
	"github.com/gulfbridge/freight_ledger_app/internal/dto"
)

// ClientReaderSvc defines read operations for client data
type ClientReaderSvc interface {
	// GetClientByID retrieves a specific client by its identifier.
	GetClientByID(ctx context.Context, clientID int64) (*domain.Client, error)

	// ListClients retrieves all clients, newest first.
	ListClients(ctx context.Context) ([]domain.Client, error)

	// ListClientsWithJobs retrieves the distinct clients that own at least one job.
	ListClientsWithJobs(ctx context.Context) ([]domain.Client, error)
}

// ClientWriterSvc defines write operations for client data
type ClientWriterSvc interface {
	// CreateClient persists a new client master record.
	CreateClient(ctx context.Context, req dto.CreateClientRequest) (*domain.Client, error)

	// UpdateClient updates a client's master data. Renames never rewrite the
	// party_name snapshots on existing transactions.
	UpdateClient(ctx context.Context, clientID int64, req dto.UpdateClientRequest) (*domain.Client, error)

	// DeleteClient removes a client along with its jobs and transactions.
	DeleteClient(ctx context.Context, clientID int64) error
}

// ClientSvcFacade combines all client-related service interfaces
type ClientSvcFacade interface {
	ClientReaderSvc
	ClientWriterSvc
}
