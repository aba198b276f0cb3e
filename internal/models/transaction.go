package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction mirrors the transactions table. VoucherNo is unique and assigned
// once inside the insert transaction; JobID/ClientID are nullable references.
type Transaction struct {
	TransactionID int64
	TransType     string
	Amount        decimal.Decimal
	Description   string
	Date          time.Time
	BankName      *string
	ChequeNo      *string
	VoucherNo     string
	PartyName     string
	JobID         *int64
	ClientID      *int64
}
