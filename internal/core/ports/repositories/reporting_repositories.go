package repositories

import (
	"context"
	"time"

	"github.com/labledger/labledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingRepository defines the read-only aggregate queries. None of these
// mutate the entry store.
type ReportingRepository interface {
	// GetLedgerLines retrieves an account's entries in range, ordered by
	// voucher date with insertion order as the tie-break.
	GetLedgerLines(ctx context.Context, accountHeadID string, from, to *time.Time) ([]domain.LedgerLine, error)

	// GetTrialBalanceRows retrieves one page of per-head debit/credit sums
	// grouped by account name, plus the total row count.
	GetTrialBalanceRows(ctx context.Context, from, to *time.Time, search string, limit, offset int) ([]domain.TrialBalanceRow, int64, error)

	// GetTrialBalanceTotals retrieves the grand debit/credit totals over the
	// whole range (independent of paging).
	GetTrialBalanceTotals(ctx context.Context, from, to *time.Time, search string) (debit, credit decimal.Decimal, err error)

	// ListBalanceSheetEntries retrieves one page of classification rows.
	ListBalanceSheetEntries(ctx context.Context, from, to *time.Time, search string, limit, offset int) ([]domain.BalanceSheetEntry, int64, error)

	// GetBalanceSheetTotals retrieves the category totals over the whole range.
	GetBalanceSheetTotals(ctx context.Context, from, to *time.Time, search string) (assets, liabilities, equity decimal.Decimal, err error)

	// SaveBalanceSheetEntry persists a classification row.
	SaveBalanceSheetEntry(ctx context.Context, entry domain.BalanceSheetEntry) error
}
