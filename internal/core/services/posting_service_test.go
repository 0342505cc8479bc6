package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/labledger/labledger_app/internal/apperrors"
	"github.com/labledger/labledger_app/internal/core/domain"
	portssvc "github.com/labledger/labledger_app/internal/core/ports/services"
	"github.com/labledger/labledger_app/internal/core/services"
	"github.com/labledger/labledger_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type PostingServiceTestSuite struct {
	suite.Suite
	mockLedger  *MockLedgerService
	mockAccount *MockAccountService
	service     portssvc.PostingSvcFacade

	bankAccountID  string
	cashAccountID  string
	stockAccountID string
	feesAccountID  string
}

func (suite *PostingServiceTestSuite) SetupTest() {
	suite.mockLedger = new(MockLedgerService)
	suite.mockAccount = new(MockAccountService)
	suite.service = services.NewPostingService(suite.mockLedger, suite.mockAccount)

	suite.bankAccountID = uuid.NewString()
	suite.cashAccountID = uuid.NewString()
	suite.stockAccountID = uuid.NewString()
	suite.feesAccountID = uuid.NewString()
}

// A bank receipt crediting one source account becomes a two-entry voucher:
// the caller's credit plus a balancing debit on the default bank account.
// Posting twice allocates consecutive listing numbers.
func (suite *PostingServiceTestSuite) TestPostBankReceipt_AddsBankDebitAndNumbersSequentially() {
	ctx := context.Background()
	req := dto.PostingRequest{
		Date:      "2026-02-01",
		Narration: "Patient deposit",
		Entries:   []dto.EntryRequest{{AccountHeadID: suite.feesAccountID, Cr: decimal.NewFromInt(1000)}},
	}

	suite.mockAccount.On("GetDefaultAccount", ctx, domain.DefaultBank).Return(suite.bankAccountID, nil).Twice()

	listings := []string{"BRV-001", "BRV-002"}
	for _, listing := range listings {
		listing := listing
		suite.mockLedger.On("PostVoucher", ctx, domain.BankReceipt, mock.AnythingOfType("dto.CreateVoucherRequest")).
			Run(func(args mock.Arguments) {
				posted := args.Get(2).(dto.CreateVoucherRequest)
				suite.Require().Len(posted.Entries, 2)
				suite.Equal(suite.feesAccountID, posted.Entries[0].AccountHeadID)
				suite.True(posted.Entries[0].Cr.Equal(decimal.NewFromInt(1000)))
				suite.Equal(suite.bankAccountID, posted.Entries[1].AccountHeadID)
				suite.True(posted.Entries[1].Dr.Equal(decimal.NewFromInt(1000)))
			}).
			Return(&domain.JournalVoucher{VoucherID: uuid.NewString(), VoucherType: domain.BankReceipt, ListingVoucher: listing}, nil).Once()
	}

	first, err := suite.service.PostBankReceipt(ctx, req)
	suite.Require().NoError(err)
	second, err := suite.service.PostBankReceipt(ctx, req)
	suite.Require().NoError(err)

	suite.Equal("BRV-001", first.ListingVoucher)
	suite.Equal("BRV-002", second.ListingVoucher)
	suite.mockLedger.AssertExpectations(suite.T())
}

// An unset default aborts the adapter before anything reaches the ledger.
func (suite *PostingServiceTestSuite) TestPostBankReceipt_UnsetDefaultHasNoSideEffect() {
	ctx := context.Background()
	req := dto.PostingRequest{
		Date:      "2026-02-01",
		Narration: "Patient deposit",
		Entries:   []dto.EntryRequest{{AccountHeadID: suite.feesAccountID, Cr: decimal.NewFromInt(1000)}},
	}

	suite.mockAccount.On("GetDefaultAccount", ctx, domain.DefaultBank).Return("", apperrors.ErrConfiguration).Once()

	voucher, err := suite.service.PostBankReceipt(ctx, req)

	suite.ErrorIs(err, apperrors.ErrConfiguration)
	suite.Nil(voucher)
	suite.mockLedger.AssertNotCalled(suite.T(), "PostVoucher", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestPostCashPayment_AddsCashCredit() {
	ctx := context.Background()
	req := dto.PostingRequest{
		Date:      "2026-02-03",
		Narration: "Reagent purchase",
		Entries: []dto.EntryRequest{
			{AccountHeadID: suite.feesAccountID, Dr: decimal.NewFromInt(300)},
			{AccountHeadID: suite.stockAccountID, Dr: decimal.NewFromInt(200)},
		},
	}

	suite.mockAccount.On("GetDefaultAccount", ctx, domain.DefaultCash).Return(suite.cashAccountID, nil).Once()
	suite.mockLedger.On("PostVoucher", ctx, domain.CashPayment, mock.AnythingOfType("dto.CreateVoucherRequest")).
		Run(func(args mock.Arguments) {
			posted := args.Get(2).(dto.CreateVoucherRequest)
			suite.Require().Len(posted.Entries, 3)
			counter := posted.Entries[2]
			suite.Equal(suite.cashAccountID, counter.AccountHeadID)
			suite.True(counter.Cr.Equal(decimal.NewFromInt(500)))
		}).
		Return(&domain.JournalVoucher{VoucherID: uuid.NewString(), ListingVoucher: "CPV-001"}, nil).Once()

	voucher, err := suite.service.PostCashPayment(ctx, req)

	suite.Require().NoError(err)
	suite.Equal("CPV-001", voucher.ListingVoucher)
}

func (suite *PostingServiceTestSuite) TestPostCashReceipt_RejectsDebitLines() {
	ctx := context.Background()
	req := dto.PostingRequest{
		Date:      "2026-02-03",
		Narration: "Mixed sides",
		Entries:   []dto.EntryRequest{{AccountHeadID: suite.feesAccountID, Dr: decimal.NewFromInt(100)}},
	}

	suite.mockAccount.On("GetDefaultAccount", ctx, domain.DefaultCash).Return(suite.cashAccountID, nil).Once()

	_, err := suite.service.PostCashReceipt(ctx, req)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockLedger.AssertNotCalled(suite.T(), "PostVoucher", mock.Anything, mock.Anything, mock.Anything)
}

// A stock purchase debits the default stock account and credits the default
// cash account with quantity x unit price, linking the purchase row to the
// resulting payment voucher.
func (suite *PostingServiceTestSuite) TestPostStockPurchase_Success() {
	ctx := context.Background()
	req := dto.StockPurchaseRequest{
		ItemName:  "Glucose test strips",
		Quantity:  decimal.NewFromInt(40),
		UnitPrice: decimal.NewFromFloat(12.5),
		Date:      "2026-02-10",
		Narration: "Monthly strip restock",
	}
	voucherID := uuid.NewString()

	suite.mockAccount.On("GetDefaultAccount", ctx, domain.DefaultStock).Return(suite.stockAccountID, nil).Once()
	suite.mockAccount.On("GetDefaultAccount", ctx, domain.DefaultCash).Return(suite.cashAccountID, nil).Once()
	suite.mockLedger.On("PostVoucherWithStockPurchase", ctx, domain.CashPayment, mock.AnythingOfType("dto.CreateVoucherRequest"), mock.AnythingOfType("domain.StockPurchase")).
		Run(func(args mock.Arguments) {
			posted := args.Get(2).(dto.CreateVoucherRequest)
			suite.Require().Len(posted.Entries, 2)
			suite.Equal(suite.stockAccountID, posted.Entries[0].AccountHeadID)
			suite.True(posted.Entries[0].Dr.Equal(decimal.NewFromInt(500)))
			suite.Equal(suite.cashAccountID, posted.Entries[1].AccountHeadID)
			suite.True(posted.Entries[1].Cr.Equal(decimal.NewFromInt(500)))

			purchase := args.Get(3).(domain.StockPurchase)
			suite.True(purchase.Amount.Equal(decimal.NewFromInt(500)))
			suite.Equal("Glucose test strips", purchase.ItemName)
		}).
		Return(&domain.JournalVoucher{VoucherID: voucherID, VoucherType: domain.CashPayment, ListingVoucher: "CPV-009"}, nil).Once()

	purchase, err := suite.service.PostStockPurchase(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(voucherID, purchase.VoucherID)
	suite.True(purchase.Amount.Equal(decimal.NewFromInt(500)))
}

func (suite *PostingServiceTestSuite) TestPostStockPurchase_UnsetStockDefault() {
	ctx := context.Background()
	req := dto.StockPurchaseRequest{
		ItemName:  "Centrifuge tubes",
		Quantity:  decimal.NewFromInt(10),
		UnitPrice: decimal.NewFromInt(3),
		Date:      "2026-02-10",
		Narration: "Tubes",
	}

	suite.mockAccount.On("GetDefaultAccount", ctx, domain.DefaultStock).Return("", apperrors.ErrConfiguration).Once()

	_, err := suite.service.PostStockPurchase(ctx, req)

	suite.ErrorIs(err, apperrors.ErrConfiguration)
	suite.mockLedger.AssertNotCalled(suite.T(), "PostVoucherWithStockPurchase", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestPostJournal_PassesThrough() {
	ctx := context.Background()
	req := dto.CreateVoucherRequest{
		Date:      "2026-02-11",
		Narration: "Depreciation",
		Entries: []dto.EntryRequest{
			{AccountHeadID: suite.feesAccountID, Dr: decimal.NewFromInt(75)},
			{AccountHeadID: suite.stockAccountID, Cr: decimal.NewFromInt(75)},
		},
	}

	suite.mockLedger.On("PostVoucher", ctx, domain.JournalVoucherType, req).
		Return(&domain.JournalVoucher{VoucherID: uuid.NewString(), ListingVoucher: "JV-020"}, nil).Once()

	voucher, err := suite.service.PostJournal(ctx, req)

	suite.Require().NoError(err)
	suite.Equal("JV-020", voucher.ListingVoucher)
	suite.mockAccount.AssertNotCalled(suite.T(), "GetDefaultAccount", mock.Anything, mock.Anything)
}

func TestPostingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PostingServiceTestSuite))
}
