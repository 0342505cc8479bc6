package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/labledger/labledger_app/internal/apperrors"
	"github.com/labledger/labledger_app/internal/core/domain"
	portssvc "github.com/labledger/labledger_app/internal/core/ports/services"
	"github.com/labledger/labledger_app/internal/dto"
	"github.com/labledger/labledger_app/internal/middleware"
	"github.com/labledger/labledger_app/internal/utils/accounting"
)

// PostingService holds the per-voucher-type adapters. Each resolves the
// relevant default account, completes the caller's one-sided entry set with
// the counter entry, and delegates to the ledger service. Defaults are
// resolved before anything is written, so a missing default aborts with no
// side effects.
type PostingService struct {
	ledger  portssvc.LedgerSvcFacade
	account portssvc.AccountSvcFacade
}

func NewPostingService(ledger portssvc.LedgerSvcFacade, account portssvc.AccountSvcFacade) *PostingService {
	return &PostingService{ledger: ledger, account: account}
}

var _ portssvc.PostingSvcFacade = (*PostingService)(nil)

// counterSide says which side of the caller's entries the adapter sums and
// which side the generated default-account entry takes.
type counterSide int

const (
	// debitCounter: receipts. Callers credit source accounts; the default
	// cash/bank account is debited with the total.
	debitCounter counterSide = iota
	// creditCounter: payments. Callers debit destination accounts; the
	// default cash/bank account is credited with the total.
	creditCounter
)

// completeEntries validates the one-sided request lines and appends the
// default-account counter entry so the voucher balances.
func (s *PostingService) completeEntries(req dto.PostingRequest, defaultAccountID string, side counterSide) ([]dto.EntryRequest, error) {
	entries := make([]domain.JournalVoucherEntry, len(req.Entries))
	for i, e := range req.Entries {
		entries[i] = domain.JournalVoucherEntry{Dr: e.Dr, Cr: e.Cr}
		if side == debitCounter && !e.Dr.IsZero() {
			return nil, fmt.Errorf("%w: receipt entries must carry credits only", apperrors.ErrValidation)
		}
		if side == creditCounter && !e.Cr.IsZero() {
			return nil, fmt.Errorf("%w: payment entries must carry debits only", apperrors.ErrValidation)
		}
	}

	dr, cr := accounting.SumEntries(entries)
	counter := dto.EntryRequest{AccountHeadID: defaultAccountID}
	switch side {
	case debitCounter:
		if cr.IsZero() {
			return nil, fmt.Errorf("%w: receipt total must be positive", apperrors.ErrValidation)
		}
		counter.Dr = cr
	case creditCounter:
		if dr.IsZero() {
			return nil, fmt.Errorf("%w: payment total must be positive", apperrors.ErrValidation)
		}
		counter.Cr = dr
	}

	return append(append([]dto.EntryRequest{}, req.Entries...), counter), nil
}

func (s *PostingService) postWithDefault(ctx context.Context, vt domain.VoucherType, kind domain.DefaultAccountKind, side counterSide, req dto.PostingRequest) (*domain.JournalVoucher, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	defaultAccountID, err := s.account.GetDefaultAccount(ctx, kind)
	if err != nil {
		return nil, err
	}

	entries, err := s.completeEntries(req, defaultAccountID, side)
	if err != nil {
		return nil, err
	}

	voucher, err := s.ledger.PostVoucher(ctx, vt, dto.CreateVoucherRequest{
		Date:      req.Date,
		Narration: req.Narration,
		Entries:   entries,
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Posting adapter completed",
		slog.String("voucher_type", string(vt)),
		slog.String("listing_voucher", voucher.ListingVoucher),
		slog.String("default_account_id", defaultAccountID),
	)
	return voucher, nil
}

// PostCashReceipt posts a CRV: caller credits, default cash debited.
func (s *PostingService) PostCashReceipt(ctx context.Context, req dto.PostingRequest) (*domain.JournalVoucher, error) {
	return s.postWithDefault(ctx, domain.CashReceipt, domain.DefaultCash, debitCounter, req)
}

// PostCashPayment posts a CPV: caller debits, default cash credited.
func (s *PostingService) PostCashPayment(ctx context.Context, req dto.PostingRequest) (*domain.JournalVoucher, error) {
	return s.postWithDefault(ctx, domain.CashPayment, domain.DefaultCash, creditCounter, req)
}

// PostBankReceipt posts a BRV: caller credits, default bank debited.
func (s *PostingService) PostBankReceipt(ctx context.Context, req dto.PostingRequest) (*domain.JournalVoucher, error) {
	return s.postWithDefault(ctx, domain.BankReceipt, domain.DefaultBank, debitCounter, req)
}

// PostBankPayment posts a BPV: caller debits, default bank credited.
func (s *PostingService) PostBankPayment(ctx context.Context, req dto.PostingRequest) (*domain.JournalVoucher, error) {
	return s.postWithDefault(ctx, domain.BankPayment, domain.DefaultBank, creditCounter, req)
}

// PostJournal passes a generic JV through to the ledger unchanged; the caller
// supplies both sides.
func (s *PostingService) PostJournal(ctx context.Context, req dto.CreateVoucherRequest) (*domain.JournalVoucher, error) {
	return s.ledger.PostVoucher(ctx, domain.JournalVoucherType, req)
}

// PostStockPurchase records an inventory purchase paid in cash: the default
// stock account is debited with quantity x unit price, the default cash
// account credited, and the purchase row is linked to the resulting CPV. Both
// defaults are resolved before any write.
func (s *PostingService) PostStockPurchase(ctx context.Context, req dto.StockPurchaseRequest) (*domain.StockPurchase, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Quantity.IsPositive() {
		return nil, fmt.Errorf("%w: quantity must be positive", apperrors.ErrValidation)
	}
	if !req.UnitPrice.IsPositive() {
		return nil, fmt.Errorf("%w: unit price must be positive", apperrors.ErrValidation)
	}

	stockAccountID, err := s.account.GetDefaultAccount(ctx, domain.DefaultStock)
	if err != nil {
		return nil, err
	}
	cashAccountID, err := s.account.GetDefaultAccount(ctx, domain.DefaultCash)
	if err != nil {
		return nil, err
	}

	purchaseDate, err := time.Parse(dto.DateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid purchase date %q", apperrors.ErrValidation, req.Date)
	}

	amount := req.Quantity.Mul(req.UnitPrice).Round(2)
	purchase := domain.StockPurchase{
		PurchaseID:   uuid.NewString(),
		ItemName:     req.ItemName,
		Quantity:     req.Quantity,
		UnitPrice:    req.UnitPrice,
		Amount:       amount,
		PurchaseDate: purchaseDate,
		CreatedAt:    time.Now(),
	}

	voucher, err := s.ledger.PostVoucherWithStockPurchase(ctx, domain.CashPayment, dto.CreateVoucherRequest{
		Date:      req.Date,
		Narration: req.Narration,
		Entries: []dto.EntryRequest{
			{AccountHeadID: stockAccountID, Dr: amount},
			{AccountHeadID: cashAccountID, Cr: amount},
		},
	}, purchase)
	if err != nil {
		return nil, err
	}

	purchase.VoucherID = voucher.VoucherID
	logger.Info("Stock purchase posted",
		slog.String("purchase_id", purchase.PurchaseID),
		slog.String("voucher_id", voucher.VoucherID),
		slog.String("listing_voucher", voucher.ListingVoucher),
	)
	return &purchase, nil
}
