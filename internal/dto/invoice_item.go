package dto

import (
	"github.com/gulfbridge/freight_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateInvoiceItemRequest defines the payload for adding a billable line to a job.
// VAT may be negative for adjustments; Total is always recomputed server-side.
type CreateInvoiceItemRequest struct {
	JobID        int64           `json:"jobID" binding:"required"`
	ChargeTypeID int64           `json:"chargeTypeID" binding:"required"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	VAT          decimal.Decimal `json:"vat"`
}

// UpdateInvoiceItemRequest defines the payload for editing an invoice item.
type UpdateInvoiceItemRequest struct {
	ChargeTypeID *int64           `json:"chargeTypeID"`
	Description  *string          `json:"description"`
	Amount       *decimal.Decimal `json:"amount"`
	VAT          *decimal.Decimal `json:"vat"`
}

// InvoiceItemResponse defines the data returned for an invoice item.
type InvoiceItemResponse struct {
	InvoiceItemID int64           `json:"invoiceItemID"`
	JobID         int64           `json:"jobID"`
	ChargeTypeID  int64           `json:"chargeTypeID"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	VAT           decimal.Decimal `json:"vat"`
	Total         decimal.Decimal `json:"total"`
}

// ToInvoiceItemResponse converts a domain.InvoiceItem to InvoiceItemResponse.
func ToInvoiceItemResponse(i *domain.InvoiceItem) InvoiceItemResponse {
	return InvoiceItemResponse{
		InvoiceItemID: i.InvoiceItemID,
		JobID:         i.JobID,
		ChargeTypeID:  i.ChargeTypeID,
		Description:   i.Description,
		Amount:        i.Amount,
		VAT:           i.VAT,
		Total:         i.Total,
	}
}

// ToInvoiceItemResponses converts a slice of domain.InvoiceItem to []InvoiceItemResponse.
func ToInvoiceItemResponses(items []domain.InvoiceItem) []InvoiceItemResponse {
	responses := make([]InvoiceItemResponse, len(items))
	for i := range items {
		responses[i] = ToInvoiceItemResponse(&items[i])
	}
	return responses
}

// CreateChargeTypeRequest defines the payload for creating a charge type.
type CreateChargeTypeRequest struct {
	Name string `json:"name" binding:"required"`
}

// ChargeTypeResponse defines the data returned for a charge type.
type ChargeTypeResponse struct {
	ChargeTypeID int64  `json:"chargeTypeID"`
	Name         string `json:"name"`
}

// ToChargeTypeResponse converts a domain.ChargeType to ChargeTypeResponse.
func ToChargeTypeResponse(ct *domain.ChargeType) ChargeTypeResponse {
	return ChargeTypeResponse{ChargeTypeID: ct.ChargeTypeID, Name: ct.Name}
}
