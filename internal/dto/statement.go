package dto

import (
	"github.com/gulfbridge/freight_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerEntryResponse is one row of a client ledger statement. Debit and
// credit are mutually exclusive; running_balance is an absolute value labelled
// by balance_type ("Dr" or "Cr").
type LedgerEntryResponse struct {
	ID             int64           `json:"id"`
	Date           string          `json:"date"`
	VoucherNo      string          `json:"voucher_no"`
	Particulars    string          `json:"particulars"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	RunningBalance decimal.Decimal `json:"running_balance"`
	BalanceType    string          `json:"balance_type"`
}

// InvoiceTotalsResponse carries the invoice-item sub-totals block shown
// alongside a statement. It is informational; it never feeds the balance.
type InvoiceTotalsResponse struct {
	Amount decimal.Decimal `json:"amount"`
	VAT    decimal.Decimal `json:"vat"`
	Total  decimal.Decimal `json:"total"`
}

// StatementResponse is the full client ledger statement.
type StatementResponse struct {
	Client           ClientResponse        `json:"client"`
	Entries          []LedgerEntryResponse `json:"entries"`
	TotalDebit       decimal.Decimal       `json:"total_debit"`
	TotalCredit      decimal.Decimal       `json:"total_credit"`
	InvoiceTotals    InvoiceTotalsResponse `json:"invoice_totals"`
	FinalBalance     decimal.Decimal       `json:"final_balance"`
	FinalBalanceType string                `json:"final_balance_type"`
}

// AccountStatementResponse is the company-wide cash summary.
type AccountStatementResponse struct {
	TotalReceived decimal.Decimal `json:"total_received"`
	TotalPaid     decimal.Decimal `json:"total_paid"`
	NetBalance    decimal.Decimal `json:"net_balance"`
}

// ReconciliationRowResponse compares one invoiced job's item totals against
// its ledger shadow entry.
type ReconciliationRowResponse struct {
	JobID        int64            `json:"job_id"`
	JobDate      string           `json:"job_date"`
	ItemsTotal   decimal.Decimal  `json:"items_total"`
	LedgerAmount *decimal.Decimal `json:"ledger_amount"`
	VoucherNo    string           `json:"voucher_no,omitempty"`
	InSync       bool             `json:"in_sync"`
}

// ReconciliationResponse lists per-job drift between invoice items and the
// ledger for one client.
type ReconciliationResponse struct {
	Client ClientResponse              `json:"client"`
	Rows   []ReconciliationRowResponse `json:"rows"`
}

// ToLedgerEntryResponse converts a domain.LedgerEntry to LedgerEntryResponse.
func ToLedgerEntryResponse(e *domain.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		ID:             e.TransactionID,
		Date:           formatDate(e.Date),
		VoucherNo:      e.VoucherNo,
		Particulars:    e.Particulars,
		Debit:          e.Debit,
		Credit:         e.Credit,
		RunningBalance: e.RunningBalance,
		BalanceType:    string(e.BalanceType),
	}
}

// ToStatementResponse converts a domain.StatementReport to StatementResponse.
func ToStatementResponse(r *domain.StatementReport) StatementResponse {
	entries := make([]LedgerEntryResponse, len(r.Entries))
	for i := range r.Entries {
		entries[i] = ToLedgerEntryResponse(&r.Entries[i])
	}
	return StatementResponse{
		Client:      ToClientResponse(&r.Client),
		Entries:     entries,
		TotalDebit:  r.TotalDebit,
		TotalCredit: r.TotalCredit,
		InvoiceTotals: InvoiceTotalsResponse{
			Amount: r.InvoiceTotals.Amount,
			VAT:    r.InvoiceTotals.VAT,
			Total:  r.InvoiceTotals.Total,
		},
		FinalBalance:     r.FinalBalance,
		FinalBalanceType: string(r.FinalBalanceType),
	}
}

// ToAccountStatementResponse converts a domain.AccountStatement.
func ToAccountStatementResponse(a *domain.AccountStatement) AccountStatementResponse {
	return AccountStatementResponse{
		TotalReceived: a.TotalReceived,
		TotalPaid:     a.TotalPaid,
		NetBalance:    a.NetBalance,
	}
}

// ToReconciliationResponse converts a client plus reconciliation rows.
func ToReconciliationResponse(client *domain.Client, rows []domain.ReconciliationRow) ReconciliationResponse {
	out := make([]ReconciliationRowResponse, len(rows))
	for i, row := range rows {
		out[i] = ReconciliationRowResponse{
			JobID:        row.JobID,
			JobDate:      formatDate(row.JobDate),
			ItemsTotal:   row.ItemsTotal,
			LedgerAmount: row.LedgerAmount,
			VoucherNo:    row.VoucherNo,
			InSync:       row.InSync,
		}
	}
	return ReconciliationResponse{Client: ToClientResponse(client), Rows: out}
}
