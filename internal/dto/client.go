package dto

import (
	"time"

	"github.com/gulfbridge/freight_ledger_app/internal/core/domain"
)

// CreateClientRequest defines the payload for creating a client.
type CreateClientRequest struct {
	Name       string `json:"name" binding:"required"`
	Address    string `json:"address"`
	PostalCode string `json:"postalCode"`
	Phone      string `json:"phone"`
	Email      string `json:"email" binding:"omitempty,email"`
	VATNumber  string `json:"vatNumber"`
}

// UpdateClientRequest defines the payload for updating a client's master data.
type UpdateClientRequest struct {
	Name       *string `json:"name"`
	Address    *string `json:"address"`
	PostalCode *string `json:"postalCode"`
	Phone      *string `json:"phone"`
	Email      *string `json:"email" binding:"omitempty,email"`
	VATNumber  *string `json:"vatNumber"`
}

// ClientResponse defines the data returned for a client.
type ClientResponse struct {
	ClientID   int64     `json:"clientID"`
	Name       string    `json:"name"`
	Address    string    `json:"address"`
	PostalCode string    `json:"postalCode"`
	Phone      string    `json:"phone"`
	Email      string    `json:"email"`
	VATNumber  string    `json:"vatNumber"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ToClientResponse converts a domain.Client to ClientResponse.
func ToClientResponse(c *domain.Client) ClientResponse {
	return ClientResponse{
		ClientID:   c.ClientID,
		Name:       c.Name,
		Address:    c.Address,
		PostalCode: c.PostalCode,
		Phone:      c.Phone,
		Email:      c.Email,
		VATNumber:  c.VATNumber,
		CreatedAt:  c.CreatedAt,
	}
}

// ToClientResponses converts a slice of domain.Client to []ClientResponse.
func ToClientResponses(clients []domain.Client) []ClientResponse {
	responses := make([]ClientResponse, len(clients))
	for i := range clients {
		responses[i] = ToClientResponse(&clients[i])
	}
	return responses
}
