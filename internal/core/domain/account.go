package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountHead is a node in the chart-of-accounts tree.
type AccountHead struct {
	AccountHeadID   string          `json:"accountHeadID"`   // Primary Key (UUID)
	Name            string          `json:"name"`            // Unique, non-empty, not purely numeric
	Code            string          `json:"code"`            // User-defined short code
	ParentAccountID *string         `json:"parentAccountID"` // Nullable self-reference; the tree must stay acyclic
	OpeningBalance  decimal.Decimal `json:"openingBalance"`
	OpeningDate     time.Time       `json:"openingDate"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// DefaultAccountKind identifies which configured default account is wanted.
type DefaultAccountKind string

const (
	DefaultCash  DefaultAccountKind = "cash"
	DefaultBank  DefaultAccountKind = "bank"
	DefaultStock DefaultAccountKind = "stockAccount"
)

// AccountSetting is the singleton row holding the default counter-accounts
// used by the posting adapters. Each field references an AccountHead.
type AccountSetting struct {
	DefaultCash         *string   `json:"defaultCash"`
	DefaultBank         *string   `json:"defaultBank"`
	DefaultStockAccount *string   `json:"defaultStockAccount"`
	UpdatedAt           time.Time `json:"updatedAt"`
}
