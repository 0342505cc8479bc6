package dto

import (
	"time"

	"github.com/labledger/labledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// EntryRequest is one caller-supplied voucher line.
type EntryRequest struct {
	AccountHeadID string          `json:"accountHeadID" binding:"required"`
	Dr            decimal.Decimal `json:"dr"`
	Cr            decimal.Decimal `json:"cr"`
}

// CreateVoucherRequest posts a full voucher; the voucher type comes from the
// route. The same shape is used for the destructive PUT rewrite.
type CreateVoucherRequest struct {
	Date      string         `json:"date" binding:"required,datetime=2006-01-02"`
	Narration string         `json:"narration" binding:"required"`
	Entries   []EntryRequest `json:"entries" binding:"required,min=1,dive"`
}

// PostingRequest feeds the cash/bank posting adapters: the caller supplies
// only the allocation side, the adapter adds the default-account counter
// entry.
type PostingRequest struct {
	Date      string         `json:"date" binding:"required,datetime=2006-01-02"`
	Narration string         `json:"narration" binding:"required"`
	Entries   []EntryRequest `json:"entries" binding:"required,min=1,dive"`
}

// StockPurchaseRequest records an inventory purchase paid from the default
// cash account.
type StockPurchaseRequest struct {
	ItemName  string          `json:"itemName" binding:"required"`
	Quantity  decimal.Decimal `json:"quantity" binding:"required"`
	UnitPrice decimal.Decimal `json:"unitPrice" binding:"required"`
	Date      string          `json:"date" binding:"required,datetime=2006-01-02"`
	Narration string          `json:"narration" binding:"required"`
}

// EntryResponse is the API shape of a voucher line.
type EntryResponse struct {
	EntryID       string          `json:"entryID"`
	AccountHeadID string          `json:"accountHeadID"`
	AccountName   string          `json:"accountName,omitempty"`
	Dr            decimal.Decimal `json:"dr"`
	Cr            decimal.Decimal `json:"cr"`
}

// VoucherResponse is the API shape of a voucher header, with entries when
// loaded.
type VoucherResponse struct {
	VoucherID      string          `json:"voucherID"`
	Date           string          `json:"date"`
	Narration      string          `json:"narration"`
	VoucherType    string          `json:"voucherType"`
	ListingVoucher string          `json:"listingVoucher"`
	Entries        []EntryResponse `json:"entries,omitempty"`
}

// ToVoucherResponse converts a domain voucher to its API shape.
func ToVoucherResponse(d *domain.JournalVoucher) VoucherResponse {
	resp := VoucherResponse{
		VoucherID:      d.VoucherID,
		Date:           d.VoucherDate.Format(DateLayout),
		Narration:      d.Narration,
		VoucherType:    string(d.VoucherType),
		ListingVoucher: d.ListingVoucher,
	}
	if d.Entries != nil {
		resp.Entries = make([]EntryResponse, len(d.Entries))
		for i, e := range d.Entries {
			resp.Entries[i] = EntryResponse{
				EntryID:       e.EntryID,
				AccountHeadID: e.AccountHeadID,
				AccountName:   e.AccountName,
				Dr:            e.Dr,
				Cr:            e.Cr,
			}
		}
	}
	return resp
}

// ToVoucherResponses converts a slice of domain vouchers.
func ToVoucherResponses(ds []domain.JournalVoucher) []VoucherResponse {
	out := make([]VoucherResponse, len(ds))
	for i := range ds {
		out[i] = ToVoucherResponse(&ds[i])
	}
	return out
}

// StockPurchaseResponse is the API shape of a stock purchase record.
type StockPurchaseResponse struct {
	PurchaseID string          `json:"purchaseID"`
	VoucherID  string          `json:"voucherID"`
	ItemName   string          `json:"itemName"`
	Quantity   decimal.Decimal `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	Amount     decimal.Decimal `json:"amount"`
	Date       string          `json:"date"`
}

// ToStockPurchaseResponse converts a domain stock purchase to its API shape.
func ToStockPurchaseResponse(d *domain.StockPurchase) StockPurchaseResponse {
	return StockPurchaseResponse{
		PurchaseID: d.PurchaseID,
		VoucherID:  d.VoucherID,
		ItemName:   d.ItemName,
		Quantity:   d.Quantity,
		UnitPrice:  d.UnitPrice,
		Amount:     d.Amount,
		Date:       d.PurchaseDate.Format(DateLayout),
	}
}

// ToStockPurchaseResponses converts a slice of domain stock purchases.
func ToStockPurchaseResponses(ds []domain.StockPurchase) []StockPurchaseResponse {
	out := make([]StockPurchaseResponse, len(ds))
	for i := range ds {
		out[i] = ToStockPurchaseResponse(&ds[i])
	}
	return out
}

// ListVouchersParams carries the list filters parsed by the handler layer.
type ListVouchersParams struct {
	From   *time.Time
	To     *time.Time
	Search string
}
