package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/gulfbridge/freight_ledger_app/internal/core/domain"
	portsrepo "github.com/gulfbridge/freight_ledger_app/internal/core/ports/repositories"
)

// AuditService appends and reads the user action trail.
type AuditService struct {
	BaseService
	auditRepo portsrepo.AuditLogRepositoryFacade
}

// NewAuditService creates a new AuditService.
func NewAuditService(auditRepo portsrepo.AuditLogRepositoryFacade) *AuditService {
	return &AuditService{auditRepo: auditRepo}
}

// RecordAction appends one audit entry. The trail is best-effort; a write
// failure is logged and swallowed so it never blocks the action it records.
func (s *AuditService) RecordAction(ctx context.Context, userName, action string) {
	entry := domain.AuditLog{
		AuditID:   uuid.NewString(),
		UserName:  userName,
		Action:    action,
		CreatedAt: time.Now(),
	}
	if err := s.auditRepo.SaveAuditLog(ctx, entry); err != nil {
		s.LogError(ctx, err, "failed to record audit entry",
			slog.String("user", userName), slog.String("action", action))
	}
}

// ListRecent returns the newest audit entries up to limit.
func (s *AuditService) ListRecent(ctx context.Context, limit int) ([]domain.AuditLog, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	logs, err := s.auditRepo.ListAuditLogs(ctx, limit)
	if err != nil {
		s.LogError(ctx, err, "failed to list audit entries")
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}
	if logs == nil {
		return []domain.AuditLog{}, nil
	}
	return logs, nil
}
