package domain

import "github.com/shopspring/decimal"

// ShadowSyncStatus describes the outcome of one shadow-entry synchronization.
type ShadowSyncStatus string

const (
	// SyncApplied means the INVOICE entry was created or refreshed.
	SyncApplied ShadowSyncStatus = "APPLIED"
	// SyncSkippedZeroTotal means the job had no billable items; no entry was written.
	SyncSkippedZeroTotal ShadowSyncStatus = "SKIPPED_ZERO_TOTAL"
	// SyncFailed means the ledger write failed; the job save itself stands.
	SyncFailed ShadowSyncStatus = "FAILED"
	// SyncNotApplicable means the job is not flagged invoiced.
	SyncNotApplicable ShadowSyncStatus = "NOT_APPLICABLE"
)

// ShadowSyncResult reports what the synchronizer did after a job save.
// Synchronization runs at-least-once after the job's own write commits; a
// failure here never rolls the job back, it is surfaced to the caller instead.
type ShadowSyncResult struct {
	Status    ShadowSyncStatus `json:"status"`
	VoucherNo string           `json:"voucherNo,omitempty"`
	Amount    decimal.Decimal  `json:"amount"`
	Error     string           `json:"error,omitempty"`
}
