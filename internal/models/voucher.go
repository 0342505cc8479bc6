package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalVoucher is the persistence shape of a voucher header. Ordinal is a
// bigserial tracking insertion order, which the numbering seed and ledger
// tie-breaks use instead of the (editable) voucher date.
type JournalVoucher struct {
	VoucherID      string    `db:"voucher_id"`
	Ordinal        int64     `db:"ordinal"`
	VoucherDate    time.Time `db:"voucher_date"`
	Narration      string    `db:"narration"`
	VoucherType    string    `db:"voucher_type"`
	ListingVoucher string    `db:"listing_voucher"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

// JournalVoucherEntry is the persistence shape of a voucher line.
// VoucherType and VoucherDate are denormalized copies of the header values,
// stamped at write time.
type JournalVoucherEntry struct {
	EntryID       string          `db:"entry_id"`
	VoucherID     string          `db:"voucher_id"`
	AccountHeadID string          `db:"account_head_id"`
	Dr            decimal.Decimal `db:"dr"`
	Cr            decimal.Decimal `db:"cr"`
	VoucherType   string          `db:"voucher_type"`
	VoucherDate   time.Time       `db:"voucher_date"`
}
