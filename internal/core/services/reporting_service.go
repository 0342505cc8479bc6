package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/labledger/labledger_app/internal/apperrors"
	"github.com/labledger/labledger_app/internal/core/domain"
	portsrepo "github.com/labledger/labledger_app/internal/core/ports/repositories"
	portssvc "github.com/labledger/labledger_app/internal/core/ports/services"
	"github.com/labledger/labledger_app/internal/dto"
	"github.com/labledger/labledger_app/internal/middleware"
	"github.com/labledger/labledger_app/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

// ReportingService assembles the aggregate read views. It composes repository
// queries and never mutates the entry store.
type ReportingService struct {
	reportingRepo portsrepo.ReportingRepository
	accountRepo   portsrepo.AccountRepositoryFacade
}

func NewReportingService(reportingRepo portsrepo.ReportingRepository, accountRepo portsrepo.AccountRepositoryFacade) *ReportingService {
	return &ReportingService{reportingRepo: reportingRepo, accountRepo: accountRepo}
}

var _ portssvc.ReportingSvcFacade = (*ReportingService)(nil)

// LedgerForAccount returns the date-ordered entries for one head within
// range, with running debit/credit totals. The head must exist even when it
// has no entries yet.
func (s *ReportingService) LedgerForAccount(ctx context.Context, accountHeadID string, from, to *time.Time) (*domain.AccountLedger, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	head, err := s.accountRepo.FindAccountHeadByID(ctx, accountHeadID)
	if err != nil {
		return nil, err
	}

	lines, err := s.reportingRepo.GetLedgerLines(ctx, accountHeadID, from, to)
	if err != nil {
		logger.Error("Failed to load ledger lines", slog.String("error", err.Error()), slog.String("account_head_id", accountHeadID))
		return nil, err
	}

	totalDr, totalCr := decimal.Zero, decimal.Zero
	for _, l := range lines {
		totalDr = totalDr.Add(l.Dr)
		totalCr = totalCr.Add(l.Cr)
	}

	return &domain.AccountLedger{
		AccountHeadID: accountHeadID,
		AccountName:   head.Name,
		Lines:         lines,
		TotalDebit:    totalDr,
		TotalCredit:   totalCr,
	}, nil
}

// TrialBalance returns one page of per-head sums plus grand totals over the
// whole range. For a consistent ledger the difference is zero; a non-zero
// difference means the store was modified outside the voucher write path.
func (s *ReportingService) TrialBalance(ctx context.Context, from, to *time.Time, search string, page pagination.Params) (*domain.TrialBalance, int64, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	rows, total, err := s.reportingRepo.GetTrialBalanceRows(ctx, from, to, search, page.PageSize, page.Offset())
	if err != nil {
		logger.Error("Failed to load trial balance rows", slog.String("error", err.Error()))
		return nil, 0, err
	}

	debit, credit, err := s.reportingRepo.GetTrialBalanceTotals(ctx, from, to, search)
	if err != nil {
		logger.Error("Failed to load trial balance totals", slog.String("error", err.Error()))
		return nil, 0, err
	}

	return &domain.TrialBalance{
		Rows:        rows,
		TotalDebit:  debit,
		TotalCredit: credit,
		Difference:  debit.Sub(credit),
	}, total, nil
}

// BalanceSheet returns one page of classification rows plus category totals
// and the assets - liabilities - equity balance over the whole range.
func (s *ReportingService) BalanceSheet(ctx context.Context, from, to *time.Time, search string, page pagination.Params) (*domain.BalanceSheet, int64, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entries, total, err := s.reportingRepo.ListBalanceSheetEntries(ctx, from, to, search, page.PageSize, page.Offset())
	if err != nil {
		logger.Error("Failed to load balance sheet entries", slog.String("error", err.Error()))
		return nil, 0, err
	}

	assets, liabilities, equity, err := s.reportingRepo.GetBalanceSheetTotals(ctx, from, to, search)
	if err != nil {
		logger.Error("Failed to load balance sheet totals", slog.String("error", err.Error()))
		return nil, 0, err
	}

	return &domain.BalanceSheet{
		Entries:          entries,
		TotalAssets:      assets,
		TotalLiabilities: liabilities,
		TotalEquity:      equity,
		Balance:          assets.Sub(liabilities).Sub(equity),
	}, total, nil
}

// AddBalanceSheetEntry records an operator-entered classification row. These
// rows are independent of the voucher ledger; reconciliation is not enforced.
func (s *ReportingService) AddBalanceSheetEntry(ctx context.Context, req dto.CreateBalanceSheetEntryRequest) (*domain.BalanceSheetEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	category := domain.BalanceSheetCategory(req.Category)
	if !domain.ValidBalanceSheetCategory(category) {
		return nil, fmt.Errorf("%w: unknown balance sheet category %q", apperrors.ErrValidation, req.Category)
	}
	entryDate, err := time.Parse(dto.DateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid entry date %q", apperrors.ErrValidation, req.Date)
	}

	entry := domain.BalanceSheetEntry{
		EntryID:   uuid.NewString(),
		Name:      req.Name,
		Category:  category,
		Amount:    req.Amount,
		EntryDate: entryDate,
		CreatedAt: time.Now(),
	}

	if err := s.reportingRepo.SaveBalanceSheetEntry(ctx, entry); err != nil {
		if !errors.Is(err, apperrors.ErrValidation) {
			logger.Error("Failed to save balance sheet entry", slog.String("error", err.Error()), slog.String("entry_id", entry.EntryID))
		}
		return nil, err
	}

	logger.Info("Balance sheet entry recorded", slog.String("entry_id", entry.EntryID), slog.String("category", req.Category))
	return &entry, nil
}
