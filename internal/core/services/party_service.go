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
	"github.com/gulfbridge/freight_ledger_app/internal/dto"
)

// PartyService manages the party name registry used for suggestion lists.
type PartyService struct {
	BaseService
	partyRepo portsrepo.PartyRepositoryFacade
}

// NewPartyService creates a new PartyService.
func NewPartyService(partyRepo portsrepo.PartyRepositoryFacade) *PartyService {
	return &PartyService{partyRepo: partyRepo}
}

func (s *PartyService) GetPartyByID(ctx context.Context, partyID int64) (*domain.Party, error) {
	party, err := s.partyRepo.FindPartyByID(ctx, partyID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "failed to find party", slog.Int64("party_id", partyID))
		}
		return nil, err
	}
	return party, nil
}

func (s *PartyService) ListParties(ctx context.Context) ([]domain.Party, error) {
	parties, err := s.partyRepo.ListParties(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to list parties")
		return nil, fmt.Errorf("failed to list parties: %w", err)
	}
	if parties == nil {
		return []domain.Party{}, nil
	}
	return parties, nil
}

func (s *PartyService) CreateParty(ctx context.Context, req dto.CreatePartyRequest) (*domain.Party, error) {
	party := domain.Party{Name: req.Name, CreatedAt: time.Now()}
	saved, err := s.partyRepo.SaveParty(ctx, party)
	if err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "failed to save party", slog.String("name", req.Name))
		}
		return nil, err
	}
	return saved, nil
}

func (s *PartyService) DeleteParty(ctx context.Context, partyID int64) error {
	if err := s.partyRepo.DeleteParty(ctx, partyID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "failed to delete party", slog.Int64("party_id", partyID))
		}
		return err
	}
	return nil
}
