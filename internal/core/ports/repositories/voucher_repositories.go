package repositories

import (
	"context"

	"github.com/labledger/labledger_app/internal/core/domain"
	"github.com/labledger/labledger_app/internal/dto"
)

// VoucherReader defines read operations for voucher data.
type VoucherReader interface {
	// FindVoucherByID retrieves a voucher header by id.
	FindVoucherByID(ctx context.Context, voucherID string) (*domain.JournalVoucher, error)

	// FindEntriesByVoucherID retrieves a voucher's entries with account names
	// joined.
	FindEntriesByVoucherID(ctx context.Context, voucherID string) ([]domain.JournalVoucherEntry, error)

	// ListVouchers retrieves one page of headers of a type, filtered by date
	// range and search term, newest first, plus the total match count.
	ListVouchers(ctx context.Context, vt domain.VoucherType, params dto.ListVouchersParams, limit, offset int) ([]domain.JournalVoucher, int64, error)
}

// VoucherWriter defines the single write path for voucher data. All methods
// run inside one database transaction; partial vouchers are never visible.
type VoucherWriter interface {
	// SaveVoucher allocates the next listing voucher for the header's type
	// and inserts the header plus entries atomically. The returned header
	// carries the allocated ListingVoucher.
	SaveVoucher(ctx context.Context, voucher domain.JournalVoucher, entries []domain.JournalVoucherEntry) (*domain.JournalVoucher, error)

	// RewriteVoucher replaces the header fields and the full entry set of an
	// existing voucher. An empty ListingVoucher on the header requests a fresh
	// allocation for the header's type; otherwise the given number is kept.
	// The returned header carries the effective ListingVoucher.
	RewriteVoucher(ctx context.Context, voucher domain.JournalVoucher, entries []domain.JournalVoucherEntry) (*domain.JournalVoucher, error)

	// DeleteVoucher removes the header; entries cascade.
	DeleteVoucher(ctx context.Context, voucherID string) error
}

// StockPurchaseSupport links inventory purchases to their payment vouchers.
type StockPurchaseSupport interface {
	// SaveVoucherWithStockPurchase persists the voucher (as SaveVoucher does)
	// and the purchase record in the same transaction.
	SaveVoucherWithStockPurchase(ctx context.Context, voucher domain.JournalVoucher, entries []domain.JournalVoucherEntry, purchase domain.StockPurchase) (*domain.JournalVoucher, error)

	// ListStockPurchases retrieves one page of purchases, newest first.
	ListStockPurchases(ctx context.Context, limit, offset int) ([]domain.StockPurchase, int64, error)
}

// VoucherRepositoryFacade combines all voucher-related repository interfaces.
type VoucherRepositoryFacade interface {
	VoucherReader
	VoucherWriter
	StockPurchaseSupport
}

// VoucherRepositoryWithTx extends VoucherRepositoryFacade with transaction
// capabilities.
type VoucherRepositoryWithTx interface {
	VoucherRepositoryFacade
	TransactionManager
}
