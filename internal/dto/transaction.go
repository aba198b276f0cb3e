package dto

import (
	"time"

	"github.com/gulfbridge/freight_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the payload for a manual ledger entry.
// Date accepts YYYY-MM-DD or DD/MM/YYYY; the voucher number is never accepted
// from the caller, it is assigned at creation and immutable thereafter.
type CreateTransactionRequest struct {
	TransType   string          `json:"transType" binding:"required,transtype"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description"`
	Date        string          `json:"date" binding:"required"`
	BankName    string          `json:"bankName"`
	ChequeNo    string          `json:"chequeNo"`
	PartyName   string          `json:"partyName"`
	JobID       *int64          `json:"jobID"`
	ClientID    *int64          `json:"clientID"`
}

// TransactionResponse defines the data returned for a ledger transaction.
type TransactionResponse struct {
	TransactionID int64           `json:"transactionID"`
	TransType     string          `json:"transType"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	Date          string          `json:"date"`
	BankName      string          `json:"bankName"`
	ChequeNo      string          `json:"chequeNo"`
	VoucherNo     string          `json:"voucherNo"`
	PartyName     string          `json:"partyName"`
	JobID         *int64          `json:"jobID"`
	ClientID      *int64          `json:"clientID"`
}

const dateLayout = "2006-01-02"

// ToTransactionResponse converts a domain.Transaction to TransactionResponse.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.TransactionID,
		TransType:     string(t.TransType),
		Amount:        t.Amount,
		Description:   t.Description,
		Date:          t.Date.Format(dateLayout),
		BankName:      t.BankName,
		ChequeNo:      t.ChequeNo,
		VoucherNo:     t.VoucherNo,
		PartyName:     t.PartyName,
		JobID:         t.JobID,
		ClientID:      t.ClientID,
	}
}

// ToTransactionResponses converts a slice of domain.Transaction to []TransactionResponse.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return responses
}

// formatDate is shared by the statement DTO converters.
func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}
