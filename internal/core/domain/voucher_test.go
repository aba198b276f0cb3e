package domain_test

import (
	"testing"

	"github.com/gulfbridge/freight_ledger_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestVoucherPrefix(t *testing.T) {
	tests := []struct {
		name      string
		transType domain.TransactionType
		want      string
	}{
		{name: "cash receive", transType: domain.CashReceive, want: "CR"},
		{name: "cash pay", transType: domain.CashPay, want: "CP"},
		{name: "bank receive", transType: domain.BankReceive, want: "BR"},
		{name: "bank pay", transType: domain.BankPay, want: "BP"},
		{name: "invoice", transType: domain.InvoiceDebit, want: "INV"},
		{name: "unknown falls back to TXN", transType: domain.TransactionType("BOGUS"), want: "TXN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.VoucherPrefix(tt.transType))
		})
	}
}

func TestFormatVoucherNo(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		seq    int64
		want   string
	}{
		{name: "first voucher is zero padded", prefix: "CR", seq: 1, want: "CR-001"},
		{name: "two digit sequence", prefix: "INV", seq: 42, want: "INV-042"},
		{name: "three digit sequence", prefix: "BP", seq: 999, want: "BP-999"},
		{name: "sequence past 999 keeps growing", prefix: "CR", seq: 1000, want: "CR-1000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.FormatVoucherNo(tt.prefix, tt.seq))
		})
	}
}

func TestNextVoucherSeq(t *testing.T) {
	tests := []struct {
		name          string
		lastSeq       int64
		newestVoucher string
		want          int64
	}{
		{name: "fresh counter with no vouchers", lastSeq: 0, newestVoucher: "", want: 1},
		{name: "counter in step with newest voucher", lastSeq: 2, newestVoucher: "CR-002", want: 3},
		{name: "counter ahead of newest voucher wins", lastSeq: 10, newestVoucher: "CR-003", want: 11},
		{name: "counter behind imported vouchers catches up", lastSeq: 2, newestVoucher: "CR-010", want: 11},
		{name: "fresh counter seeds from newest voucher", lastSeq: 0, newestVoucher: "INV-047", want: 48},
		{name: "malformed newest voucher restarts at one", lastSeq: 0, newestVoucher: "CRODD", want: 1},
		{name: "malformed newest voucher never stalls a live counter", lastSeq: 5, newestVoucher: "CR-abc", want: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.NextVoucherSeq(tt.lastSeq, tt.newestVoucher))
		})
	}
}

func TestVoucherSequenceRun(t *testing.T) {
	// Three consecutive cash receipts number CR-001, CR-002, CR-003.
	prefix := domain.VoucherPrefix(domain.CashReceive)
	var lastSeq int64
	newest := ""
	var got []string
	for i := 0; i < 3; i++ {
		seq := domain.NextVoucherSeq(lastSeq, newest)
		voucher := domain.FormatVoucherNo(prefix, seq)
		got = append(got, voucher)
		lastSeq = seq
		newest = voucher
	}
	assert.Equal(t, []string{"CR-001", "CR-002", "CR-003"}, got)

	// A counter lost to a reset reseeds from the newest stored voucher
	// instead of re-issuing CR-001.
	seq := domain.NextVoucherSeq(0, newest)
	assert.Equal(t, "CR-004", domain.FormatVoucherNo(prefix, seq))
}

func TestParseVoucherSeq(t *testing.T) {
	tests := []struct {
		name      string
		voucherNo string
		wantSeq   int64
		wantOK    bool
	}{
		{name: "well formed voucher", voucherNo: "CR-007", wantSeq: 7, wantOK: true},
		{name: "large sequence", voucherNo: "INV-1234", wantSeq: 1234, wantOK: true},
		{name: "missing separator", voucherNo: "CR007", wantOK: false},
		{name: "non numeric suffix", voucherNo: "CR-abc", wantOK: false},
		{name: "empty string", voucherNo: "", wantOK: false},
		{name: "bare prefix with trailing separator", voucherNo: "CR-", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq, ok := domain.ParseVoucherSeq(tt.voucherNo)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantSeq, seq)
			}
		})
	}
}
