package dto

import (
	"github.com/labledger/labledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TrialBalanceRowResponse is one aggregated row of the trial balance.
type TrialBalanceRowResponse struct {
	AccountHeadID string          `json:"accountHeadID"`
	AccountName   string          `json:"accountName"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
}

// TrialBalanceResponse pages the rows; the totals always cover the whole
// date range, not just the page.
type TrialBalanceResponse struct {
	Data         []TrialBalanceRowResponse `json:"data"`
	TotalDebit   decimal.Decimal           `json:"totalDebit"`
	TotalCredit  decimal.Decimal           `json:"totalCredit"`
	Difference   decimal.Decimal           `json:"difference"`
	TotalRecords int64                     `json:"totalRecords"`
	TotalPages   int                       `json:"totalPages"`
	CurrentPage  int                       `json:"currentPage"`
}

// ToTrialBalanceResponse converts the domain report plus paging metadata.
func ToTrialBalanceResponse(tb *domain.TrialBalance, totalRecords int64, totalPages, currentPage int) TrialBalanceResponse {
	rows := make([]TrialBalanceRowResponse, len(tb.Rows))
	for i, r := range tb.Rows {
		rows[i] = TrialBalanceRowResponse{
			AccountHeadID: r.AccountHeadID,
			AccountName:   r.AccountName,
			Debit:         r.Debit,
			Credit:        r.Credit,
		}
	}
	return TrialBalanceResponse{
		Data:         rows,
		TotalDebit:   tb.TotalDebit,
		TotalCredit:  tb.TotalCredit,
		Difference:   tb.Difference,
		TotalRecords: totalRecords,
		TotalPages:   totalPages,
		CurrentPage:  currentPage,
	}
}

// BalanceSheetEntryResponse is one classification row.
type BalanceSheetEntryResponse struct {
	EntryID  string          `json:"entryID"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Date     string          `json:"date"`
}

// BalanceSheetResponse pages the classification rows with category totals
// over the whole range. Balance is assets - liabilities - equity.
type BalanceSheetResponse struct {
	Data             []BalanceSheetEntryResponse `json:"data"`
	TotalAssets      decimal.Decimal             `json:"totalAssets"`
	TotalLiabilities decimal.Decimal             `json:"totalLiabilities"`
	TotalEquity      decimal.Decimal             `json:"totalEquity"`
	Balance          decimal.Decimal             `json:"balance"`
	TotalRecords     int64                       `json:"totalRecords"`
	TotalPages       int                         `json:"totalPages"`
	CurrentPage      int                         `json:"currentPage"`
}

// ToBalanceSheetResponse converts the domain report plus paging metadata.
func ToBalanceSheetResponse(bs *domain.BalanceSheet, totalRecords int64, totalPages, currentPage int) BalanceSheetResponse {
	entries := make([]BalanceSheetEntryResponse, len(bs.Entries))
	for i, e := range bs.Entries {
		entries[i] = BalanceSheetEntryResponse{
			EntryID:  e.EntryID,
			Name:     e.Name,
			Category: string(e.Category),
			Amount:   e.Amount,
			Date:     e.EntryDate.Format(DateLayout),
		}
	}
	return BalanceSheetResponse{
		Data:             entries,
		TotalAssets:      bs.TotalAssets,
		TotalLiabilities: bs.TotalLiabilities,
		TotalEquity:      bs.TotalEquity,
		Balance:          bs.Balance,
		TotalRecords:     totalRecords,
		TotalPages:       totalPages,
		CurrentPage:      currentPage,
	}
}

// CreateBalanceSheetEntryRequest adds an operator-entered classification row.
type CreateBalanceSheetEntryRequest struct {
	Name     string          `json:"name" binding:"required"`
	Category string          `json:"category" binding:"required,oneof=ASSET LIABILITY EQUITY"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Date     string          `json:"date" binding:"required,datetime=2006-01-02"`
}

// LedgerLineResponse is one row of the ledger-by-account view.
type LedgerLineResponse struct {
	EntryID        string          `json:"entryID"`
	VoucherID      string          `json:"voucherID"`
	ListingVoucher string          `json:"listingVoucher"`
	Narration      string          `json:"narration"`
	Date           string          `json:"date"`
	Dr             decimal.Decimal `json:"dr"`
	Cr             decimal.Decimal `json:"cr"`
}

// LedgerResponse is the full ledger view for one account head.
type LedgerResponse struct {
	AccountHeadID string               `json:"accountHeadID"`
	AccountName   string               `json:"accountName"`
	Lines         []LedgerLineResponse `json:"lines"`
	TotalDebit    decimal.Decimal      `json:"totalDebit"`
	TotalCredit   decimal.Decimal      `json:"totalCredit"`
}

// ToLedgerResponse converts the domain ledger view.
func ToLedgerResponse(l *domain.AccountLedger) LedgerResponse {
	lines := make([]LedgerLineResponse, len(l.Lines))
	for i, ln := range l.Lines {
		lines[i] = LedgerLineResponse{
			EntryID:        ln.EntryID,
			VoucherID:      ln.VoucherID,
			ListingVoucher: ln.ListingVoucher,
			Narration:      ln.Narration,
			Date:           ln.VoucherDate.Format(DateLayout),
			Dr:             ln.Dr,
			Cr:             ln.Cr,
		}
	}
	return LedgerResponse{
		AccountHeadID: l.AccountHeadID,
		AccountName:   l.AccountName,
		Lines:         lines,
		TotalDebit:    l.TotalDebit,
		TotalCredit:   l.TotalCredit,
	}
}
