package domain

import "time"

// AuditLog records one user-visible mutation (job or transaction created/deleted).
type AuditLog struct {
	AuditID   string    `json:"auditID"`
	UserName  string    `json:"userName"`
	Action    string    `json:"action"`
	CreatedAt time.Time `json:"createdAt"`
}
