package services

import (
	"context"
	"time"

	"github.com/labledger/labledger_app/internal/core/domain"
	"github.com/labledger/labledger_app/internal/dto"
	"github.com/labledger/labledger_app/internal/utils/pagination"
)

// ReportingSvcFacade defines the aggregate read views over the entry store.
type ReportingSvcFacade interface {
	// LedgerForAccount returns the date-ordered entries for one head within
	// range plus debit/credit totals.
	LedgerForAccount(ctx context.Context, accountHeadID string, from, to *time.Time) (*domain.AccountLedger, error)

	// TrialBalance returns one page of per-head sums plus grand totals and
	// the difference (zero for a consistent ledger). The second return is
	// the total row count for paging.
	TrialBalance(ctx context.Context, from, to *time.Time, search string, page pagination.Params) (*domain.TrialBalance, int64, error)

	// BalanceSheet returns one page of classification rows plus category
	// totals and the assets - liabilities - equity balance.
	BalanceSheet(ctx context.Context, from, to *time.Time, search string, page pagination.Params) (*domain.BalanceSheet, int64, error)

	// AddBalanceSheetEntry records an operator-entered classification row.
	AddBalanceSheetEntry(ctx context.Context, req dto.CreateBalanceSheetEntryRequest) (*domain.BalanceSheetEntry, error)
}
