package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// voucherPrefixes maps a transaction type to its human-readable voucher prefix.
var voucherPrefixes = map[TransactionType]string{
	CashReceive:  "CR",
	CashPay:      "CP",
	BankReceive:  "BR",
	BankPay:      "BP",
	InvoiceDebit: "INV",
}

// VoucherPrefix returns the short prefix for a transaction type.
// Unknown types fall back to TXN.
func VoucherPrefix(t TransactionType) string {
	if p, ok := voucherPrefixes[t]; ok {
		return p
	}
	return "TXN"
}

// FormatVoucherNo renders a voucher number as PREFIX-NNN, zero-padded to
// three digits. Sequences past 999 keep growing without truncation.
func FormatVoucherNo(prefix string, seq int64) string {
	return fmt.Sprintf("%s-%03d", prefix, seq)
}

// NextVoucherSeq decides the sequence for the next voucher of a type. The
// counter's last issued sequence is authoritative, but when the newest stored
// voucher of the type carries a higher parseable sequence (data imported
// around the counter), allocation resumes from that voucher instead. A
// malformed or absent newest voucher contributes nothing, so a fresh counter
// with only malformed vouchers restarts numbering at 1.
func NextVoucherSeq(lastSeq int64, newestVoucherNo string) int64 {
	if seq, ok := ParseVoucherSeq(newestVoucherNo); ok && seq > lastSeq {
		lastSeq = seq
	}
	return lastSeq + 1
}

// ParseVoucherSeq extracts the numeric suffix after the single separator.
// A malformed voucher (missing separator, non-numeric suffix) returns ok=false;
// callers treat that as if no voucher existed and restart numbering.
func ParseVoucherSeq(voucherNo string) (int64, bool) {
	parts := strings.SplitN(voucherNo, "-", 2)
	if len(parts) != 2 {
		return 0, false
	}
	seq, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, false
	}
	return seq, true
}
