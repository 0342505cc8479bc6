package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountHead is the persistence shape of a chart-of-accounts node.
// ParentAccountID is a nullable self-referencing foreign key.
type AccountHead struct {
	AccountHeadID   string          `db:"account_head_id"`
	Name            string          `db:"name"`
	Code            string          `db:"code"`
	ParentAccountID *string         `db:"parent_account_id"`
	OpeningBalance  decimal.Decimal `db:"opening_balance"`
	OpeningDate     time.Time       `db:"opening_date"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at"`
}

// AccountSetting is the singleton default-accounts row.
type AccountSetting struct {
	DefaultCash         *string   `db:"default_cash"`
	DefaultBank         *string   `db:"default_bank"`
	DefaultStockAccount *string   `db:"default_stock_account"`
	UpdatedAt           time.Time `db:"updated_at"`
}
