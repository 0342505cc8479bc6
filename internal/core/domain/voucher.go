package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// VoucherType is the closed set of voucher series. The type determines the
// numbering series and which default account the posting adapters resolve.
type VoucherType string

const (
	JournalVoucherType VoucherType = "JV"  // generic journal
	CashPayment        VoucherType = "CPV" // cash payment
	CashReceipt        VoucherType = "CRV" // cash receipt
	BankPayment        VoucherType = "BPV" // bank payment
	BankReceipt        VoucherType = "BRV" // bank receipt
)

// ValidVoucherType reports whether vt is one of the known series.
func ValidVoucherType(vt VoucherType) bool {
	switch vt {
	case JournalVoucherType, CashPayment, CashReceipt, BankPayment, BankReceipt:
		return true
	}
	return false
}

// JournalVoucher is the header of a single balanced financial transaction.
type JournalVoucher struct {
	VoucherID      string      `json:"voucherID"` // Primary Key (UUID)
	VoucherDate    time.Time   `json:"voucherDate"`
	Narration      string      `json:"narration"` // Required free text
	VoucherType    VoucherType `json:"voucherType"`
	ListingVoucher string      `json:"listingVoucher"` // "{TYPE}-{NNN}", unique within type
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
	// Entries are loaded on demand; nil on list responses.
	Entries []JournalVoucherEntry `json:"entries,omitempty"`
}

// JournalVoucherEntry is one line of a voucher. Dr and Cr are both >= 0 and
// for any voucher sum(Dr) == sum(Cr). VoucherType and VoucherDate are
// write-once copies stamped from the header at post time.
type JournalVoucherEntry struct {
	EntryID       string          `json:"entryID"` // Primary Key (UUID)
	VoucherID     string          `json:"voucherID"`
	AccountHeadID string          `json:"accountHeadID"`
	AccountName   string          `json:"accountName,omitempty"` // Joined for detail/ledger reads
	Dr            decimal.Decimal `json:"dr"`
	Cr            decimal.Decimal `json:"cr"`
	VoucherType   VoucherType     `json:"voucherType"`
	VoucherDate   time.Time       `json:"voucherDate"`
}
