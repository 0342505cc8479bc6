package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerLine is one row of the ledger-by-account view: an entry joined with
// its voucher's narration and listing number.
type LedgerLine struct {
	EntryID        string          `json:"entryID"`
	VoucherID      string          `json:"voucherID"`
	ListingVoucher string          `json:"listingVoucher"`
	Narration      string          `json:"narration"`
	VoucherDate    time.Time       `json:"voucherDate"`
	Dr             decimal.Decimal `json:"dr"`
	Cr             decimal.Decimal `json:"cr"`
}

// AccountLedger is the ledger view for one account head over a date range.
type AccountLedger struct {
	AccountHeadID string          `json:"accountHeadID"`
	AccountName   string          `json:"accountName"`
	Lines         []LedgerLine    `json:"lines"`
	TotalDebit    decimal.Decimal `json:"totalDebit"`
	TotalCredit   decimal.Decimal `json:"totalCredit"`
}

// TrialBalanceRow aggregates debits and credits for one account head.
type TrialBalanceRow struct {
	AccountHeadID string          `json:"accountHeadID"`
	AccountName   string          `json:"accountName"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
}

// TrialBalance holds one page of rows plus grand totals over the whole range.
// Difference is TotalDebit - TotalCredit and is zero for a consistent ledger.
type TrialBalance struct {
	Rows        []TrialBalanceRow `json:"rows"`
	TotalDebit  decimal.Decimal   `json:"totalDebit"`
	TotalCredit decimal.Decimal   `json:"totalCredit"`
	Difference  decimal.Decimal   `json:"difference"`
}

// BalanceSheetCategory classifies a balance-sheet entry.
type BalanceSheetCategory string

const (
	Asset     BalanceSheetCategory = "ASSET"
	Liability BalanceSheetCategory = "LIABILITY"
	Equity    BalanceSheetCategory = "EQUITY"
)

// ValidBalanceSheetCategory reports whether c is a known category.
func ValidBalanceSheetCategory(c BalanceSheetCategory) bool {
	switch c {
	case Asset, Liability, Equity:
		return true
	}
	return false
}

// BalanceSheetEntry is an operator-entered classification row. These are kept
// in their own table and are not derived from the voucher ledger;
// reconciliation against postings is a data-entry responsibility.
type BalanceSheetEntry struct {
	EntryID   string               `json:"entryID"`
	Name      string               `json:"name"`
	Category  BalanceSheetCategory `json:"category"`
	Amount    decimal.Decimal      `json:"amount"`
	EntryDate time.Time            `json:"entryDate"`
	CreatedAt time.Time            `json:"createdAt"`
}

// BalanceSheet holds one page of entries plus category totals over the whole
// range. Balance is assets - liabilities - equity; zero when reconciled.
type BalanceSheet struct {
	Entries          []BalanceSheetEntry `json:"entries"`
	TotalAssets      decimal.Decimal     `json:"totalAssets"`
	TotalLiabilities decimal.Decimal     `json:"totalLiabilities"`
	TotalEquity      decimal.Decimal     `json:"totalEquity"`
	Balance          decimal.Decimal     `json:"balance"`
}
