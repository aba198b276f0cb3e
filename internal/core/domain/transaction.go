package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the closed enumeration of ledger entry kinds.
type TransactionType string

const (
	CashReceive  TransactionType = "CR"
	CashPay      TransactionType = "CP"
	BankReceive  TransactionType = "BR"
	BankPay      TransactionType = "BP"
	InvoiceDebit TransactionType = "INVOICE"
)

// TransactionTypes lists every valid transaction type.
var TransactionTypes = []TransactionType{CashReceive, CashPay, BankReceive, BankPay, InvoiceDebit}

// IsValid reports whether t is one of the closed enumeration values.
func (t TransactionType) IsValid() bool {
	switch t {
	case CashReceive, CashPay, BankReceive, BankPay, InvoiceDebit:
		return true
	}
	return false
}

// IsReceipt reports whether the type records money coming in from the client.
// Receipts reduce what the client owes.
func (t TransactionType) IsReceipt() bool {
	return t == CashReceive || t == BankReceive
}

// IsPayment reports whether the type records money paid out.
func (t TransactionType) IsPayment() bool {
	return t == CashPay || t == BankPay
}

// IsDebit reports whether the type increases the client's owed balance.
// Invoices and payments-out are debits; receipts are credits.
func (t TransactionType) IsDebit() bool {
	return !t.IsReceipt()
}

// Transaction is one ledger entry. Every persisted transaction carries a
// voucher number (assigned once at creation) and a party name; the normalizer
// backfills Client from the linked job and PartyName from the resolved client.
type Transaction struct {
	TransactionID int64           `json:"transactionID"`
	TransType     TransactionType `json:"transType"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	Date          time.Time       `json:"date"`
	BankName      string          `json:"bankName"`
	ChequeNo      string          `json:"chequeNo"`
	VoucherNo     string          `json:"voucherNo"`
	PartyName     string          `json:"partyName"`
	JobID         *int64          `json:"jobID"`
	ClientID      *int64          `json:"clientID"`
}
