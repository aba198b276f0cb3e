package domain

import "github.com/shopspring/decimal"

// ChargeType is a master record naming one kind of billable charge.
// It cannot be deleted while invoice items reference it.
type ChargeType struct {
	ChargeTypeID int64  `json:"chargeTypeID"`
	Name         string `json:"name"`
}

// InvoiceItem is one billable line on a job's invoice.
// Total is always Amount + VAT, recomputed on every save.
type InvoiceItem struct {
	InvoiceItemID int64           `json:"invoiceItemID"`
	JobID         int64           `json:"jobID"`
	ChargeTypeID  int64           `json:"chargeTypeID"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	VAT           decimal.Decimal `json:"vat"`
	Total         decimal.Decimal `json:"total"`
}

// RecalculateTotal enforces the Total = Amount + VAT invariant using exact
// decimal arithmetic. Negative VAT adjustments are allowed.
func (i *InvoiceItem) RecalculateTotal() {
	i.Total = i.Amount.Add(i.VAT)
}
