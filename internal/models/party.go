package models

import "time"

// Party mirrors the parties table.
type Party struct {
	PartyID   int64
	Name      string
	CreatedAt time.Time
}

// AuditLog mirrors the audit_logs table.
type AuditLog struct {
	AuditID   string
	UserName  string
	Action    string
	CreatedAt time.Time
}
