package repositories

import (
	"context"

	"github.com/gulfbridge/freight_ledger_app/internal/core/domain"
)

// PartyRepositoryFacade defines operations for the party name registry.
type PartyRepositoryFacade interface {
	FindPartyByID(ctx context.Context, partyID int64) (*domain.Party, error)
	ListParties(ctx context.Context) ([]domain.Party, error)
	SaveParty(ctx context.Context, party domain.Party) (*domain.Party, error)
	DeleteParty(ctx context.Context, partyID int64) error
}

// AuditLogRepositoryFacade defines operations for the audit trail.
type AuditLogRepositoryFacade interface {
	SaveAuditLog(ctx context.Context, entry domain.AuditLog) error
	ListAuditLogs(ctx context.Context, limit int) ([]domain.AuditLog, error)
}
