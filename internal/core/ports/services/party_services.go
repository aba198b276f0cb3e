package services

import (
	"context"

	"github.com/gulfbridge/freight_ledger_app/internal/core/domain"
	"github.com/gulfbridge/freight_ledger_app/internal/dto"
)

// PartySvcFacade defines operations for the party name registry.
type PartySvcFacade interface {
	GetPartyByID(ctx context.Context, partyID int64) (*domain.Party, error)
	ListParties(ctx context.Context) ([]domain.Party, error)
	CreateParty(ctx context.Context, req dto.CreatePartyRequest) (*domain.Party, error)
	DeleteParty(ctx context.Context, partyID int64) error
}

// AuditSvcFacade defines operations for the audit trail.
type AuditSvcFacade interface {
	// RecordAction appends one audit entry; failures are logged, never returned.
	RecordAction(ctx context.Context, userName, action string)

	// ListRecent returns the newest audit entries up to limit.
	ListRecent(ctx context.Context, limit int) ([]domain.AuditLog, error)
}
