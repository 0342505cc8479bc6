// Package voucherno formats and parses human-readable listing voucher
// numbers of the form "{TYPE}-{NNN}", zero-padded to three digits.
package voucherno

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/labledger/labledger_app/internal/core/domain"
)

// Format renders the listing voucher for the given series and sequence
// number, e.g. Format(BRV, 7) == "BRV-007". Numbers beyond 999 widen
// naturally.
func Format(vt domain.VoucherType, n int64) string {
	return fmt.Sprintf("%s-%03d", vt, n)
}

// ParseSuffix extracts the numeric suffix after the last '-' in a listing
// voucher. Absence of a suffix or a parse failure yields 0, so malformed
// legacy numbers restart the series rather than fail.
func ParseSuffix(listing string) int64 {
	idx := strings.LastIndex(listing, "-")
	if idx < 0 || idx == len(listing)-1 {
		return 0
	}
	n, err := strconv.ParseInt(listing[idx+1:], 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// Next returns the listing voucher following last for the given series.
func Next(vt domain.VoucherType, last string) string {
	return Format(vt, ParseSuffix(last)+1)
}
