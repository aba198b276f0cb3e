package models

import "time"

// Client mirrors the clients table.
type Client struct {
	ClientID   int64
	Name       string
	Address    string
	PostalCode string
	Phone      string
	Email      *string
	VATNumber  *string
	CreatedAt  time.Time
}
