package services_test

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/labledger/labledger_app/internal/core/domain"
	portsrepo "github.com/labledger/labledger_app/internal/core/ports/repositories"
	portssvc "github.com/labledger/labledger_app/internal/core/ports/services"
	"github.com/labledger/labledger_app/internal/dto"
	"github.com/labledger/labledger_app/internal/utils/pagination"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock AccountRepository ---

type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) SaveAccountHead(ctx context.Context, head domain.AccountHead) error {
	args := m.Called(ctx, head)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateAccountHead(ctx context.Context, head domain.AccountHead) error {
	args := m.Called(ctx, head)
	return args.Error(0)
}

func (m *MockAccountRepository) DeleteAccountHead(ctx context.Context, accountHeadID string) error {
	args := m.Called(ctx, accountHeadID)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountHeadByID(ctx context.Context, accountHeadID string) (*domain.AccountHead, error) {
	args := m.Called(ctx, accountHeadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountHead), args.Error(1)
}

func (m *MockAccountRepository) FindAccountHeadByName(ctx context.Context, name string) (*domain.AccountHead, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountHead), args.Error(1)
}

func (m *MockAccountRepository) FindAccountHeadsByIDs(ctx context.Context, accountHeadIDs []string) (map[string]domain.AccountHead, error) {
	args := m.Called(ctx, accountHeadIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.AccountHead), args.Error(1)
}

func (m *MockAccountRepository) ListAccountHeads(ctx context.Context, search string, limit, offset int) ([]domain.AccountHead, int64, error) {
	args := m.Called(ctx, search, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.AccountHead), args.Get(1).(int64), args.Error(2)
}

func (m *MockAccountRepository) HasEntries(ctx context.Context, accountHeadID string) (bool, error) {
	args := m.Called(ctx, accountHeadID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccountRepository) GetSettings(ctx context.Context) (*domain.AccountSetting, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountSetting), args.Error(1)
}

func (m *MockAccountRepository) MergeSettings(ctx context.Context, cash, bank, stockAccount *string, now time.Time) error {
	args := m.Called(ctx, cash, bank, stockAccount, now)
	return args.Error(0)
}

// --- Mock VoucherRepository ---

type MockVoucherRepository struct {
	mock.Mock
}

var _ portsrepo.VoucherRepositoryWithTx = (*MockVoucherRepository)(nil)

func (m *MockVoucherRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockVoucherRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockVoucherRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockVoucherRepository) SaveVoucher(ctx context.Context, voucher domain.JournalVoucher, entries []domain.JournalVoucherEntry) (*domain.JournalVoucher, error) {
	args := m.Called(ctx, voucher, entries)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalVoucher), args.Error(1)
}

func (m *MockVoucherRepository) SaveVoucherWithStockPurchase(ctx context.Context, voucher domain.JournalVoucher, entries []domain.JournalVoucherEntry, purchase domain.StockPurchase) (*domain.JournalVoucher, error) {
	args := m.Called(ctx, voucher, entries, purchase)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalVoucher), args.Error(1)
}

func (m *MockVoucherRepository) RewriteVoucher(ctx context.Context, voucher domain.JournalVoucher, entries []domain.JournalVoucherEntry) (*domain.JournalVoucher, error) {
	args := m.Called(ctx, voucher, entries)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalVoucher), args.Error(1)
}

func (m *MockVoucherRepository) DeleteVoucher(ctx context.Context, voucherID string) error {
	args := m.Called(ctx, voucherID)
	return args.Error(0)
}

func (m *MockVoucherRepository) FindVoucherByID(ctx context.Context, voucherID string) (*domain.JournalVoucher, error) {
	args := m.Called(ctx, voucherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalVoucher), args.Error(1)
}

func (m *MockVoucherRepository) FindEntriesByVoucherID(ctx context.Context, voucherID string) ([]domain.JournalVoucherEntry, error) {
	args := m.Called(ctx, voucherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalVoucherEntry), args.Error(1)
}

func (m *MockVoucherRepository) ListVouchers(ctx context.Context, vt domain.VoucherType, params dto.ListVouchersParams, limit, offset int) ([]domain.JournalVoucher, int64, error) {
	args := m.Called(ctx, vt, params, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.JournalVoucher), args.Get(1).(int64), args.Error(2)
}

func (m *MockVoucherRepository) ListStockPurchases(ctx context.Context, limit, offset int) ([]domain.StockPurchase, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.StockPurchase), args.Get(1).(int64), args.Error(2)
}

// --- Mock ReportingRepository ---

type MockReportingRepository struct {
	mock.Mock
}

var _ portsrepo.ReportingRepository = (*MockReportingRepository)(nil)

func (m *MockReportingRepository) GetLedgerLines(ctx context.Context, accountHeadID string, from, to *time.Time) ([]domain.LedgerLine, error) {
	args := m.Called(ctx, accountHeadID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerLine), args.Error(1)
}

func (m *MockReportingRepository) GetTrialBalanceRows(ctx context.Context, from, to *time.Time, search string, limit, offset int) ([]domain.TrialBalanceRow, int64, error) {
	args := m.Called(ctx, from, to, search, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.TrialBalanceRow), args.Get(1).(int64), args.Error(2)
}

func (m *MockReportingRepository) GetTrialBalanceTotals(ctx context.Context, from, to *time.Time, search string) (decimal.Decimal, decimal.Decimal, error) {
	args := m.Called(ctx, from, to, search)
	return args.Get(0).(decimal.Decimal), args.Get(1).(decimal.Decimal), args.Error(2)
}

func (m *MockReportingRepository) ListBalanceSheetEntries(ctx context.Context, from, to *time.Time, search string, limit, offset int) ([]domain.BalanceSheetEntry, int64, error) {
	args := m.Called(ctx, from, to, search, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.BalanceSheetEntry), args.Get(1).(int64), args.Error(2)
}

func (m *MockReportingRepository) GetBalanceSheetTotals(ctx context.Context, from, to *time.Time, search string) (decimal.Decimal, decimal.Decimal, decimal.Decimal, error) {
	args := m.Called(ctx, from, to, search)
	return args.Get(0).(decimal.Decimal), args.Get(1).(decimal.Decimal), args.Get(2).(decimal.Decimal), args.Error(3)
}

func (m *MockReportingRepository) SaveBalanceSheetEntry(ctx context.Context, entry domain.BalanceSheetEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// --- Mock LedgerService (as used by PostingService) ---

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

// --- Mock AccountService (as used by PostingService) ---

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
