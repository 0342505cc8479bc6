package services

import (
	"context"

	"github.com/labledger/labledger_app/internal/core/domain"
	"github.com/labledger/labledger_app/internal/dto"
	"github.com/labledger/labledger_app/internal/utils/pagination"
)

// LedgerSvcFacade is the single validated write path for vouchers of every
// type, plus the reads the voucher endpoints need.
type LedgerSvcFacade interface {
	// PostVoucher validates the balanced entry set and persists the voucher
	// atomically under a freshly allocated listing number.
	PostVoucher(ctx context.Context, vt domain.VoucherType, req dto.CreateVoucherRequest) (*domain.JournalVoucher, error)

	// PostVoucherWithStockPurchase posts a voucher and a linked stock
	// purchase record in one transaction.
	PostVoucherWithStockPurchase(ctx context.Context, vt domain.VoucherType, req dto.CreateVoucherRequest, purchase domain.StockPurchase) (*domain.JournalVoucher, error)

	// UpdateVoucher destructively rewrites an existing voucher: header fields
	// replaced (type included), prior entries deleted, new set inserted, one
	// transaction. A type change renumbers the voucher into the new type's
	// series.
	UpdateVoucher(ctx context.Context, voucherID string, vt domain.VoucherType, req dto.CreateVoucherRequest) (*domain.JournalVoucher, error)

	// DeleteVoucher hard-deletes a voucher and its entries.
	DeleteVoucher(ctx context.Context, voucherID string) error

	// GetVoucher retrieves a voucher with entries joined to account names.
	GetVoucher(ctx context.Context, voucherID string) (*domain.JournalVoucher, error)

	// ListVouchers retrieves one page of headers of a type.
	ListVouchers(ctx context.Context, vt domain.VoucherType, params dto.ListVouchersParams, page pagination.Params) ([]domain.JournalVoucher, int64, error)

	// ListStockPurchases retrieves one page of stock purchase records.
	ListStockPurchases(ctx context.Context, page pagination.Params) ([]domain.StockPurchase, int64, error)
}

// PostingSvcFacade holds the per-voucher-type adapters. Each resolves the
// relevant default account, builds the counter entry and delegates to the
// ledger service.
type PostingSvcFacade interface {
	PostCashReceipt(ctx context.Context, req dto.PostingRequest) (*domain.JournalVoucher, error)
	PostCashPayment(ctx context.Context, req dto.PostingRequest) (*domain.JournalVoucher, error)
	PostBankReceipt(ctx context.Context, req dto.PostingRequest) (*domain.JournalVoucher, error)
	PostBankPayment(ctx context.Context, req dto.PostingRequest) (*domain.JournalVoucher, error)

	// PostJournal passes a generic JV through to the ledger unchanged.
	PostJournal(ctx context.Context, req dto.CreateVoucherRequest) (*domain.JournalVoucher, error)

	// PostStockPurchase posts the purchase voucher (stock debit, cash credit)
	// and the linked stock_purchases record atomically.
	PostStockPurchase(ctx context.Context, req dto.StockPurchaseRequest) (*domain.StockPurchase, error)
}
