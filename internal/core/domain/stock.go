package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockPurchase is the inventory-side record written alongside the cash
// purchase voucher. The two rows are committed in one database transaction.
type StockPurchase struct {
	PurchaseID   string          `json:"purchaseID"`
	VoucherID    string          `json:"voucherID"` // The CPV posted for this purchase
	ItemName     string          `json:"itemName"`
	Quantity     decimal.Decimal `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	Amount       decimal.Decimal `json:"amount"` // Quantity * UnitPrice
	PurchaseDate time.Time       `json:"purchaseDate"`
	CreatedAt    time.Time       `json:"createdAt"`
}
