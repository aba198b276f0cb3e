package domain

import "time"

// Client is the root identity for ledger grouping. Jobs and transactions
// reference it; statements are computed per client.
type Client struct {
	ClientID   int64     `json:"clientID"`
	Name       string    `json:"name"`
	Address    string    `json:"address"`
	PostalCode string    `json:"postalCode"`
	Phone      string    `json:"phone"`
	Email      string    `json:"email"`
	VATNumber  string    `json:"vatNumber"`
	CreatedAt  time.Time `json:"createdAt"`
}
