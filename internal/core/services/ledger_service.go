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
	"github.com/labledger/labledger_app/internal/utils/accounting"
	"github.com/labledger/labledger_app/internal/utils/pagination"
)

// saveRetries bounds how often a post is retried when the unique index on
// (voucher_type, listing_voucher) catches a number allocated twice. The
// counter row lock makes this near-impossible; the retry is the backstop.
const saveRetries = 3

// LedgerService is the single write path for vouchers. Every voucher, no
// matter which adapter produced it, passes through the same validation and
// the same transactional save.
type LedgerService struct {
	voucherRepo portsrepo.VoucherRepositoryWithTx
	accountRepo portsrepo.AccountRepositoryFacade
}

func NewLedgerService(voucherRepo portsrepo.VoucherRepositoryWithTx, accountRepo portsrepo.AccountRepositoryFacade) *LedgerService {
	return &LedgerService{voucherRepo: voucherRepo, accountRepo: accountRepo}
}

var _ portssvc.LedgerSvcFacade = (*LedgerService)(nil)

// buildEntries validates the request lines and materializes domain entries
// stamped with the header's type and date. Every referenced account head must
// exist.
func (s *LedgerService) buildEntries(ctx context.Context, vt domain.VoucherType, voucherID string, voucherDate time.Time, reqEntries []dto.EntryRequest) ([]domain.JournalVoucherEntry, error) {
	ids := make([]string, 0, len(reqEntries))
	seen := map[string]struct{}{}
	for _, e := range reqEntries {
		if _, ok := seen[e.AccountHeadID]; !ok {
			seen[e.AccountHeadID] = struct{}{}
			ids = append(ids, e.AccountHeadID)
		}
	}
	found, err := s.accountRepo.FindAccountHeadsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			return nil, fmt.Errorf("%w: account head %s does not exist", apperrors.ErrNotFound, id)
		}
	}

	entries := make([]domain.JournalVoucherEntry, len(reqEntries))
	for i, e := range reqEntries {
		entries[i] = domain.JournalVoucherEntry{
			EntryID:       uuid.NewString(),
			VoucherID:     voucherID,
			AccountHeadID: e.AccountHeadID,
			AccountName:   found[e.AccountHeadID].Name,
			Dr:            e.Dr,
			Cr:            e.Cr,
			VoucherType:   vt,
			VoucherDate:   voucherDate,
		}
	}

	if err := accounting.ValidateEntries(entries); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	return entries, nil
}

func parseVoucherDate(value string) (time.Time, error) {
	t, err := time.Parse(dto.DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid voucher date %q", apperrors.ErrValidation, value)
	}
	return t, nil
}

// PostVoucher validates and persists a balanced voucher under a freshly
// allocated listing number.
func (s *LedgerService) PostVoucher(ctx context.Context, vt domain.VoucherType, req dto.CreateVoucherRequest) (*domain.JournalVoucher, error) {
	return s.post(ctx, vt, req, nil)
}

// PostVoucherWithStockPurchase posts a voucher and its linked stock purchase
// atomically.
func (s *LedgerService) PostVoucherWithStockPurchase(ctx context.Context, vt domain.VoucherType, req dto.CreateVoucherRequest, purchase domain.StockPurchase) (*domain.JournalVoucher, error) {
	return s.post(ctx, vt, req, &purchase)
}

func (s *LedgerService) post(ctx context.Context, vt domain.VoucherType, req dto.CreateVoucherRequest, purchase *domain.StockPurchase) (*domain.JournalVoucher, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !domain.ValidVoucherType(vt) {
		return nil, fmt.Errorf("%w: unknown voucher type %q", apperrors.ErrValidation, vt)
	}
	voucherDate, err := parseVoucherDate(req.Date)
	if err != nil {
		return nil, err
	}
	if req.Narration == "" {
		return nil, fmt.Errorf("%w: narration must not be empty", apperrors.ErrValidation)
	}

	now := time.Now()
	voucher := domain.JournalVoucher{
		VoucherID:   uuid.NewString(),
		VoucherDate: voucherDate,
		Narration:   req.Narration,
		VoucherType: vt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	entries, err := s.buildEntries(ctx, vt, voucher.VoucherID, voucherDate, req.Entries)
	if err != nil {
		return nil, err
	}

	if purchase != nil {
		purchase.VoucherID = voucher.VoucherID
	}

	var saved *domain.JournalVoucher
	for attempt := 1; attempt <= saveRetries; attempt++ {
		if purchase != nil {
			saved, err = s.voucherRepo.SaveVoucherWithStockPurchase(ctx, voucher, entries, *purchase)
		} else {
			saved, err = s.voucherRepo.SaveVoucher(ctx, voucher, entries)
		}
		if err == nil {
			break
		}
		if !errors.Is(err, apperrors.ErrConflict) {
			logger.Error("Failed to save voucher", slog.String("error", err.Error()), slog.String("voucher_id", voucher.VoucherID))
			return nil, err
		}
		logger.Warn("Listing voucher collision, retrying", slog.String("voucher_type", string(vt)), slog.Int("attempt", attempt))
	}
	if err != nil {
		return nil, err
	}

	logger.Info("Voucher posted",
		slog.String("voucher_id", saved.VoucherID),
		slog.String("voucher_type", string(vt)),
		slog.String("listing_voucher", saved.ListingVoucher),
	)
	return saved, nil
}

// UpdateVoucher destructively rewrites an existing voucher: header fields,
// type included, are replaced and the prior entry set is swapped for the new
// one in a single transaction. The voucher keeps its listing number unless
// the type changes; then it moves to the new type's series under a freshly
// allocated number and the old number is retired as a gap in its series.
func (s *LedgerService) UpdateVoucher(ctx context.Context, voucherID string, vt domain.VoucherType, req dto.CreateVoucherRequest) (*domain.JournalVoucher, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !domain.ValidVoucherType(vt) {
		return nil, fmt.Errorf("%w: unknown voucher type %q", apperrors.ErrValidation, vt)
	}

	existing, err := s.voucherRepo.FindVoucherByID(ctx, voucherID)
	if err != nil {
		return nil, err
	}

	voucherDate, err := parseVoucherDate(req.Date)
	if err != nil {
		return nil, err
	}
	if req.Narration == "" {
		return nil, fmt.Errorf("%w: narration must not be empty", apperrors.ErrValidation)
	}

	entries, err := s.buildEntries(ctx, vt, voucherID, voucherDate, req.Entries)
	if err != nil {
		return nil, err
	}

	voucher := domain.JournalVoucher{
		VoucherID:      voucherID,
		VoucherDate:    voucherDate,
		Narration:      req.Narration,
		VoucherType:    vt,
		ListingVoucher: existing.ListingVoucher,
		CreatedAt:      existing.CreatedAt,
		UpdatedAt:      time.Now(),
	}
	if vt != existing.VoucherType {
		// Moving series; the repository allocates the next number of the new
		// type inside the rewrite transaction.
		voucher.ListingVoucher = ""
	}

	var rewritten *domain.JournalVoucher
	for attempt := 1; attempt <= saveRetries; attempt++ {
		rewritten, err = s.voucherRepo.RewriteVoucher(ctx, voucher, entries)
		if err == nil {
			break
		}
		if !errors.Is(err, apperrors.ErrConflict) {
			if !errors.Is(err, apperrors.ErrNotFound) {
				logger.Error("Failed to rewrite voucher", slog.String("error", err.Error()), slog.String("voucher_id", voucherID))
			}
			return nil, err
		}
		logger.Warn("Listing voucher collision, retrying", slog.String("voucher_type", string(vt)), slog.Int("attempt", attempt))
	}
	if err != nil {
		return nil, err
	}

	rewritten.Entries = entries
	logger.Info("Voucher rewritten",
		slog.String("voucher_id", voucherID),
		slog.String("listing_voucher", rewritten.ListingVoucher),
	)
	return rewritten, nil
}

// DeleteVoucher hard-deletes a voucher; its entries cascade.
func (s *LedgerService) DeleteVoucher(ctx context.Context, voucherID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := s.voucherRepo.DeleteVoucher(ctx, voucherID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to delete voucher", slog.String("error", err.Error()), slog.String("voucher_id", voucherID))
		}
		return err
	}
	logger.Info("Voucher deleted", slog.String("voucher_id", voucherID))
	return nil
}

// GetVoucher retrieves a voucher with its entries joined to account names.
func (s *LedgerService) GetVoucher(ctx context.Context, voucherID string) (*domain.JournalVoucher, error) {
	voucher, err := s.voucherRepo.FindVoucherByID(ctx, voucherID)
	if err != nil {
		return nil, err
	}
	entries, err := s.voucherRepo.FindEntriesByVoucherID(ctx, voucherID)
	if err != nil {
		return nil, err
	}
	voucher.Entries = entries
	return voucher, nil
}

// ListVouchers retrieves one page of headers of a type, newest first.
func (s *LedgerService) ListVouchers(ctx context.Context, vt domain.VoucherType, params dto.ListVouchersParams, page pagination.Params) ([]domain.JournalVoucher, int64, error) {
	if !domain.ValidVoucherType(vt) {
		return nil, 0, fmt.Errorf("%w: unknown voucher type %q", apperrors.ErrValidation, vt)
	}
	return s.voucherRepo.ListVouchers(ctx, vt, params, page.PageSize, page.Offset())
}

// ListStockPurchases retrieves one page of stock purchase records.
func (s *LedgerService) ListStockPurchases(ctx context.Context, page pagination.Params) ([]domain.StockPurchase, int64, error) {
	return s.voucherRepo.ListStockPurchases(ctx, page.PageSize, page.Offset())
}
