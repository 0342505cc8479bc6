package accounting

import (
	"fmt"

	"github.com/labledger/labledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// currencyPlaces is the smallest currency unit; all comparisons round here
// first so sub-cent float noise from callers never unbalances a voucher.
const currencyPlaces = 2

// SumEntries returns the debit and credit totals of an entry set, rounded to
// the smallest currency unit.
func SumEntries(entries []domain.JournalVoucherEntry) (dr, cr decimal.Decimal) {
	dr, cr = decimal.Zero, decimal.Zero
	for _, e := range entries {
		dr = dr.Add(e.Dr)
		cr = cr.Add(e.Cr)
	}
	return dr.Round(currencyPlaces), cr.Round(currencyPlaces)
}

// ValidateEntries checks the double-entry preconditions for a voucher:
// a non-empty entry set, no negative amounts, no line that moves nothing,
// and sum(dr) == sum(cr) at currency precision.
func ValidateEntries(entries []domain.JournalVoucherEntry) error {
	if len(entries) == 0 {
		return fmt.Errorf("voucher must have at least one entry")
	}
	for i, e := range entries {
		if e.Dr.IsNegative() || e.Cr.IsNegative() {
			return fmt.Errorf("entry %d: dr and cr must not be negative", i)
		}
		if e.Dr.Round(currencyPlaces).IsZero() && e.Cr.Round(currencyPlaces).IsZero() {
			return fmt.Errorf("entry %d: dr and cr are both zero", i)
		}
	}
	dr, cr := SumEntries(entries)
	if !dr.Equal(cr) {
		return fmt.Errorf("entries do not balance: debits %s, credits %s", dr.String(), cr.String())
	}
	return nil
}
