package handlers_test

import (
	"context"
	"time"

	"github.com/labledger/labledger_app/internal/core/domain"
	portssvc "github.com/labledger/labledger_app/internal/core/ports/services"
	"github.com/labledger/labledger_app/internal/dto"
	"github.com/labledger/labledger_app/internal/utils/pagination"
	"github.com/stretchr/testify/mock"
)

// --- Mock AccountService ---

type MockAccountService struct {
	mock.Mock
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

func (m *MockAccountService) CreateAccountHead(ctx context.Context, req dto.CreateAccountHeadRequest) (*domain.AccountHead, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountHead), args.Error(1)
}

func (m *MockAccountService) UpdateAccountHead(ctx context.Context, accountHeadID string, req dto.UpdateAccountHeadRequest) (*domain.AccountHead, error) {
	args := m.Called(ctx, accountHeadID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountHead), args.Error(1)
}

func (m *MockAccountService) DeleteAccountHead(ctx context.Context, accountHeadID string) error {
	args := m.Called(ctx, accountHeadID)
	return args.Error(0)
}

func (m *MockAccountService) GetAccountHead(ctx context.Context, accountHeadID string) (*domain.AccountHead, error) {
	args := m.Called(ctx, accountHeadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountHead), args.Error(1)
}

func (m *MockAccountService) ListAccountHeads(ctx context.Context, search string, page pagination.Params) ([]domain.AccountHead, int64, error) {
	args := m.Called(ctx, search, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.AccountHead), args.Get(1).(int64), args.Error(2)
}

func (m *MockAccountService) GetDefaultAccount(ctx context.Context, kind domain.DefaultAccountKind) (string, error) {
	args := m.Called(ctx, kind)
	return args.String(0), args.Error(1)
}

func (m *MockAccountService) GetSettings(ctx context.Context) (*domain.AccountSetting, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountSetting), args.Error(1)
}

func (m *MockAccountService) UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest) (*domain.AccountSetting, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountSetting), args.Error(1)
}

// --- Mock LedgerService ---

type MockLedgerService struct {
	mock.Mock
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

func (m *MockLedgerService) PostVoucher(ctx context.Context, vt domain.VoucherType, req dto.CreateVoucherRequest) (*domain.JournalVoucher, error) {
	args := m.Called(ctx, vt, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalVoucher), args.Error(1)
}

func (m *MockLedgerService) PostVoucherWithStockPurchase(ctx context.Context, vt domain.VoucherType, req dto.CreateVoucherRequest, purchase domain.StockPurchase) (*domain.JournalVoucher, error) {
	args := m.Called(ctx, vt, req, purchase)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalVoucher), args.Error(1)
}

func (m *MockLedgerService) UpdateVoucher(ctx context.Context, voucherID string, vt domain.VoucherType, req dto.CreateVoucherRequest) (*domain.JournalVoucher, error) {
	args := m.Called(ctx, voucherID, vt, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalVoucher), args.Error(1)
}

func (m *MockLedgerService) DeleteVoucher(ctx context.Context, voucherID string) error {
	args := m.Called(ctx, voucherID)
	return args.Error(0)
}

func (m *MockLedgerService) GetVoucher(ctx context.Context, voucherID string) (*domain.JournalVoucher, error) {
	args := m.Called(ctx, voucherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalVoucher), args.Error(1)
}

func (m *MockLedgerService) ListVouchers(ctx context.Context, vt domain.VoucherType, params dto.ListVouchersParams, page pagination.Params) ([]domain.JournalVoucher, int64, error) {
	args := m.Called(ctx, vt, params, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.JournalVoucher), args.Get(1).(int64), args.Error(2)
}

func (m *MockLedgerService) ListStockPurchases(ctx context.Context, page pagination.Params) ([]domain.StockPurchase, int64, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.StockPurchase), args.Get(1).(int64), args.Error(2)
}

// --- Mock PostingService ---

type MockPostingService struct {
	mock.Mock
}

var _ portssvc.PostingSvcFacade = (*MockPostingService)(nil)

func (m *MockPostingService) PostCashReceipt(ctx context.Context, req dto.PostingRequest) (*domain.JournalVoucher, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalVoucher), args.Error(1)
}

func (m *MockPostingService) PostCashPayment(ctx context.Context, req dto.PostingRequest) (*domain.JournalVoucher, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalVoucher), args.Error(1)
}

func (m *MockPostingService) PostBankReceipt(ctx context.Context, req dto.PostingRequest) (*domain.JournalVoucher, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalVoucher), args.Error(1)
}

func (m *MockPostingService) PostBankPayment(ctx context.Context, req dto.PostingRequest) (*domain.JournalVoucher, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalVoucher), args.Error(1)
}

func (m *MockPostingService) PostJournal(ctx context.Context, req dto.CreateVoucherRequest) (*domain.JournalVoucher, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalVoucher), args.Error(1)
}

func (m *MockPostingService) PostStockPurchase(ctx context.Context, req dto.StockPurchaseRequest) (*domain.StockPurchase, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StockPurchase), args.Error(1)
}

// --- Mock ReportingService ---

type MockReportingService struct {
	mock.Mock
}

var _ portssvc.ReportingSvcFacade = (*MockReportingService)(nil)

func (m *MockReportingService) LedgerForAccount(ctx context.Context, accountHeadID string, from, to *time.Time) (*domain.AccountLedger, error) {
	args := m.Called(ctx, accountHeadID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountLedger), args.Error(1)
}

func (m *MockReportingService) TrialBalance(ctx context.Context, from, to *time.Time, search string, page pagination.Params) (*domain.TrialBalance, int64, error) {
	args := m.Called(ctx, from, to, search, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).(*domain.TrialBalance), args.Get(1).(int64), args.Error(2)
}

func (m *MockReportingService) BalanceSheet(ctx context.Context, from, to *time.Time, search string, page pagination.Params) (*domain.BalanceSheet, int64, error) {
	args := m.Called(ctx, from, to, search, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).(*domain.BalanceSheet), args.Get(1).(int64), args.Error(2)
}

func (m *MockReportingService) AddBalanceSheetEntry(ctx context.Context, req dto.CreateBalanceSheetEntryRequest) (*domain.BalanceSheetEntry, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceSheetEntry), args.Error(1)
}
