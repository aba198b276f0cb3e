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

// ChargeTypeService manages the charge type master. Charge types referenced
// by invoice items are protected from deletion at the database level.
type ChargeTypeService struct {
	BaseService
	chargeTypeRepo portsrepo.ChargeTypeRepositoryFacade
}

// NewChargeTypeService creates a new ChargeTypeService.
func NewChargeTypeService(chargeTypeRepo portsrepo.ChargeTypeRepositoryFacade) *ChargeTypeService {
	return &ChargeTypeService{chargeTypeRepo: chargeTypeRepo}
}

func (s *ChargeTypeService) GetChargeTypeByID(ctx context.Context, chargeTypeID int64) (*domain.ChargeType, error) {
	ct, err := s.chargeTypeRepo.FindChargeTypeByID(ctx, chargeTypeID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "failed to find charge type", slog.Int64("charge_type_id", chargeTypeID))
		}
		return nil, err
	}
	return ct, nil
}

func (s *ChargeTypeService) ListChargeTypes(ctx context.Context) ([]domain.ChargeType, error) {
	types, err := s.chargeTypeRepo.ListChargeTypes(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to list charge types")
		return nil, fmt.Errorf("failed to list charge types: %w", err)
	}
	if types == nil {
		return []domain.ChargeType{}, nil
	}
	return types, nil
}

func (s *ChargeTypeService) CreateChargeType(ctx context.Context, req dto.CreateChargeTypeRequest) (*domain.ChargeType, error) {
	saved, err := s.chargeTypeRepo.SaveChargeType(ctx, domain.ChargeType{Name: req.Name})
	if err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "failed to save charge type", slog.String("name", req.Name))
		}
		return nil, err
	}
	return saved, nil
}

func (s *ChargeTypeService) DeleteChargeType(ctx context.Context, chargeTypeID int64) error {
	if err := s.chargeTypeRepo.DeleteChargeType(ctx, chargeTypeID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "failed to delete charge type", slog.Int64("charge_type_id", chargeTypeID))
		}
		return err
	}
	return nil
}
