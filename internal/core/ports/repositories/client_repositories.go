package repositories

import (
	"context"

	"github.com/gulfbridge/freight_ledger_app/internal/core/domain"
)

// ClientReader defines read operations for client data
type ClientReader interface {
	// FindClientByID retrieves a specific client by its identifier.
	FindClientByID(ctx context.Context, clientID int64) (*domain.Client, error)

	// ListClients retrieves all clients, newest first.
	ListClients(ctx context.Context) ([]domain.Client, error)

	// ListClientsWithJobs retrieves the distinct clients that own at least one job,
	// ordered by name. Used for the transaction-entry dropdown.
	ListClientsWithJobs(ctx context.Context) ([]domain.Client, error)
}

// ClientWriter defines write operations for client data
type ClientWriter interface {
	// SaveClient persists a new client and returns it with its assigned ID.
	SaveClient(ctx context.Context, client domain.Client) (*domain.Client, error)

	// UpdateClient updates an existing client's master data.
	UpdateClient(ctx context.Context, client domain.Client) error

	// FindOrCreateClientByName returns the client with the given name, creating it
	// from the supplied fields when absent. Existing masters are never rewritten.
	FindOrCreateClientByName(ctx context.Context, client domain.Client) (*domain.Client, error)

	// DeleteClient removes a client; its jobs and transactions cascade.
	DeleteClient(ctx context.Context, clientID int64) error
}

// ClientRepositoryFacade combines all client repository interfaces
type ClientRepositoryFacade interface {
	ClientReader
	ClientWriter
}
