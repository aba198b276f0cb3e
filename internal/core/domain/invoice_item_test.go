package domain_test

import (
	"testing"

	"github.com/gulfbridge/freight_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestInvoiceItem_RecalculateTotal(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		vat    string
		want   string
	}{
		{name: "amount plus vat", amount: "100.00", vat: "5.00", want: "105"},
		{name: "zero vat", amount: "250.50", vat: "0", want: "250.5"},
		{name: "negative vat adjustment", amount: "100.00", vat: "-10.00", want: "90"},
		{name: "exact decimal arithmetic", amount: "0.10", vat: "0.20", want: "0.3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := domain.InvoiceItem{
				Amount: decimal.RequireFromString(tt.amount),
				VAT:    decimal.RequireFromString(tt.vat),
			}
			item.RecalculateTotal()
			assert.True(t, item.Total.Equal(decimal.RequireFromString(tt.want)),
				"got %s, want %s", item.Total, tt.want)
		})
	}
}

func TestInvoiceItem_RecalculateTotalOverwritesStale(t *testing.T) {
	item := domain.InvoiceItem{
		Amount: decimal.NewFromInt(100),
		VAT:    decimal.NewFromInt(5),
		Total:  decimal.NewFromInt(999),
	}
	item.RecalculateTotal()
	assert.True(t, item.Total.Equal(decimal.NewFromInt(105)))
}
