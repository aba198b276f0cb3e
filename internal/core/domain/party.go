package domain

import "time"

// Party is a standalone name registry used for data-entry suggestion lists.
// It carries no ledger semantics of its own.
type Party struct {
	PartyID   int64     `json:"partyID"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}
