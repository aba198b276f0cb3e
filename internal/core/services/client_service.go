package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gulfbridge/freight_ledger_app/internal/apperrors"
	"github.com/gulfbridge/freight_ledger_app/internal/core/domain"
	portsrepo "github.com/gulfbridge/freight_ledger_app/internal/core/ports/repositories"
	"github.com/gulfbridge/freight_ledger_app/internal/dto"
)

// ClientService manages the client master table. A client rename never
// touches the party_name snapshots already stored on transactions; those are
// deliberate point-in-time values.
type ClientService struct {
	BaseService
	clientRepo portsrepo.ClientRepositoryFacade
}

// NewClientService creates a new ClientService.
func NewClientService(clientRepo portsrepo.ClientRepositoryFacade) *ClientService {
	return &ClientService{clientRepo: clientRepo}
}

func (s *ClientService) CreateClient(ctx context.Context, req dto.CreateClientRequest) (*domain.Client, error) {
	client := domain.Client{
		Name:       req.Name,
		Address:    req.Address,
		PostalCode: req.PostalCode,
		Phone:      req.Phone,
		Email:      req.Email,
		VATNumber:  req.VATNumber,
	}
	saved, err := s.clientRepo.SaveClient(ctx, client)
	if err != nil {
		s.LogError(ctx, err, "failed to save client", slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	s.LogInfo(ctx, "client created", slog.Int64("client_id", saved.ClientID))
	return saved, nil
}

func (s *ClientService) GetClientByID(ctx context.Context, clientID int64) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "failed to find client", slog.Int64("client_id", clientID))
		}
		return nil, err
	}
	return client, nil
}

func (s *ClientService) ListClients(ctx context.Context) ([]domain.Client, error) {
	clients, err := s.clientRepo.ListClients(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to list clients")
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	if clients == nil {
		return []domain.Client{}, nil
	}
	return clients, nil
}

func (s *ClientService) ListClientsWithJobs(ctx context.Context) ([]domain.Client, error) {
	clients, err := s.clientRepo.ListClientsWithJobs(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to list clients with jobs")
		return nil, fmt.Errorf("failed to list clients with jobs: %w", err)
	}
	if len(clients) == 0 {
		// No client owns a job yet; fall back to the full client list so the
		// dropdown is never empty.
		return s.ListClients(ctx)
	}
	return clients, nil
}

func (s *ClientService) UpdateClient(ctx context.Context, clientID int64, req dto.UpdateClientRequest) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		client.Name = *req.Name
	}
	if req.Address != nil {
		client.Address = *req.Address
	}
	if req.PostalCode != nil {
		client.PostalCode = *req.PostalCode
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
	}
	if req.Email != nil {
		client.Email = *req.Email
	}
	if req.VATNumber != nil {
		client.VATNumber = *req.VATNumber
	}
	if client.Name == "" {
		return nil, apperrors.NewValidationError("client name cannot be empty")
	}
	if err := s.clientRepo.UpdateClient(ctx, *client); err != nil {
		s.LogError(ctx, err, "failed to update client", slog.Int64("client_id", clientID))
		return nil, fmt.Errorf("failed to update client: %w", err)
	}
	s.LogInfo(ctx, "client updated", slog.Int64("client_id", clientID))
	return client, nil
}

func (s *ClientService) DeleteClient(ctx context.Context, clientID int64) error {
	if err := s.clientRepo.DeleteClient(ctx, clientID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "failed to delete client", slog.Int64("client_id", clientID))
		}
		return err
	}
	s.LogInfo(ctx, "client deleted", slog.Int64("client_id", clientID))
	return nil
}
