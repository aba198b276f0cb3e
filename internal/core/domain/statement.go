package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BalanceDr labels a balance the client owes the business; BalanceCr the reverse.
const (
	BalanceDr = "Dr"
	BalanceCr = "Cr"
)

// LedgerEntry is one row of a client statement with its running balance.
// RunningBalance holds the absolute value; BalanceType carries the Dr/Cr label.
type LedgerEntry struct {
	TransactionID  int64           `json:"transactionID"`
	Date           time.Time       `json:"date"`
	VoucherNo      string          `json:"voucherNo"`
	Particulars    string          `json:"particulars"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
	BalanceType    string          `json:"balanceType"`
}

// InvoiceTotals aggregates the invoice items behind a statement window.
type InvoiceTotals struct {
	Amount decimal.Decimal `json:"amount"`
	VAT    decimal.Decimal `json:"vat"`
	Total  decimal.Decimal `json:"total"`
}

// StatementReport is a client's chronologically ordered running-balance report.
type StatementReport struct {
	Client           Client          `json:"client"`
	Entries          []LedgerEntry   `json:"entries"`
	TotalDebit       decimal.Decimal `json:"totalDebit"`
	TotalCredit      decimal.Decimal `json:"totalCredit"`
	InvoiceTotals    InvoiceTotals   `json:"invoiceTotals"`
	FinalBalance     decimal.Decimal `json:"finalBalance"`
	FinalBalanceType string          `json:"finalBalanceType"`
}

// AccountStatement is the non-client-scoped cash position across all transactions.
type AccountStatement struct {
	TotalReceived decimal.Decimal `json:"totalReceived"`
	TotalPaid     decimal.Decimal `json:"totalPaid"`
	NetBalance    decimal.Decimal `json:"netBalance"`
}

// ReconciliationRow pairs a job's recomputed invoice-item total with the amount
// on its shadow ledger entry. The two are maintained independently; a mismatch
// means the synchronizer has not caught up with an item edit.
type ReconciliationRow struct {
	JobID        int64            `json:"jobID"`
	JobDate      time.Time        `json:"jobDate"`
	ItemsTotal   decimal.Decimal  `json:"itemsTotal"`
	LedgerAmount *decimal.Decimal `json:"ledgerAmount"`
	VoucherNo    string           `json:"voucherNo"`
	InSync       bool             `json:"inSync"`
}
