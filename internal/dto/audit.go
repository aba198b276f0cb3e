package dto

import (
	"time"

	"github.com/gulfbridge/freight_ledger_app/internal/core/domain"
)

// AuditLogResponse defines one recorded user action.
type AuditLogResponse struct {
	AuditID   string    `json:"auditID"`
	UserName  string    `json:"userName"`
	Action    string    `json:"action"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToAuditLogResponse converts a domain.AuditLog to AuditLogResponse.
func ToAuditLogResponse(a *domain.AuditLog) AuditLogResponse {
	return AuditLogResponse{
		AuditID:   a.AuditID,
		UserName:  a.UserName,
		Action:    a.Action,
		CreatedAt: a.CreatedAt,
	}
}

// ToAuditLogResponses converts a slice of domain.AuditLog to []AuditLogResponse.
func ToAuditLogResponses(logs []domain.AuditLog) []AuditLogResponse {
	responses := make([]AuditLogResponse, len(logs))
	for i := range logs {
		responses[i] = ToAuditLogResponse(&logs[i])
	}
	return responses
}
