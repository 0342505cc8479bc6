package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BalanceSheetEntry is an operator-entered classification row.
type BalanceSheetEntry struct {
	EntryID   string          `db:"entry_id"`
	Name      string          `db:"name"`
	Category  string          `db:"category"`
	Amount    decimal.Decimal `db:"amount"`
	EntryDate time.Time       `db:"entry_date"`
	CreatedAt time.Time       `db:"created_at"`
}

// StockPurchase is the inventory record linked to a cash purchase voucher.
type StockPurchase struct {
	PurchaseID   string          `db:"purchase_id"`
	VoucherID    string          `db:"voucher_id"`
	ItemName     string          `db:"item_name"`
	Quantity     decimal.Decimal `db:"quantity"`
	UnitPrice    decimal.Decimal `db:"unit_price"`
	Amount       decimal.Decimal `db:"amount"`
	PurchaseDate time.Time       `db:"purchase_date"`
	CreatedAt    time.Time       `db:"created_at"`
}
