package models

import "github.com/shopspring/decimal"

// ChargeType mirrors the charge_types table.
type ChargeType struct {
	ChargeTypeID int64
	Name         string
}

// InvoiceItem mirrors the invoice_items table.
type InvoiceItem struct {
	InvoiceItemID int64
	JobID         int64
	ChargeTypeID  int64
	Description   string
	Amount        decimal.Decimal
	VAT           decimal.Decimal
	Total         decimal.Decimal
}
