package dto

import (
	"time"

	"github.com/gulfbridge/freight_ledger_app/internal/core/domain"
)

// CreatePartyRequest defines the payload for registering a counterparty name.
type CreatePartyRequest struct {
	Name string `json:"name" binding:"required"`
}

// PartyResponse defines the data returned for a counterparty name.
type PartyResponse struct {
	PartyID   int64     `json:"partyID"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToPartyResponse converts a domain.Party to PartyResponse.
func ToPartyResponse(p *domain.Party) PartyResponse {
	return PartyResponse{PartyID: p.PartyID, Name: p.Name, CreatedAt: p.CreatedAt}
}

// ToPartyResponses converts a slice of domain.Party to []PartyResponse.
func ToPartyResponses(parties []domain.Party) []PartyResponse {
	responses := make([]PartyResponse, len(parties))
	for i := range parties {
		responses[i] = ToPartyResponse(&parties[i])
	}
	return responses
}
