package mapping

import (
	"github.com/labledger/labledger_app/internal/core/domain"
	"github.com/labledger/labledger_app/internal/models"
)

// ToDomainVoucher converts a persistence voucher header to its domain form.
func ToDomainVoucher(m models.JournalVoucher) domain.JournalVoucher {
	return domain.JournalVoucher{
		VoucherID:      m.VoucherID,
		VoucherDate:    m.VoucherDate,
		Narration:      m.Narration,
		VoucherType:    domain.VoucherType(m.VoucherType),
		ListingVoucher: m.ListingVoucher,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// ToModelVoucher converts a domain voucher header to its persistence form.
func ToModelVoucher(d domain.JournalVoucher) models.JournalVoucher {
	return models.JournalVoucher{
		VoucherID:      d.VoucherID,
		VoucherDate:    d.VoucherDate,
		Narration:      d.Narration,
		VoucherType:    string(d.VoucherType),
		ListingVoucher: d.ListingVoucher,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

// ToDomainEntry converts a persistence voucher line to its domain form.
func ToDomainEntry(m models.JournalVoucherEntry) domain.JournalVoucherEntry {
	return domain.JournalVoucherEntry{
		EntryID:       m.EntryID,
		VoucherID:     m.VoucherID,
		AccountHeadID: m.AccountHeadID,
		Dr:            m.Dr,
		Cr:            m.Cr,
		VoucherType:   domain.VoucherType(m.VoucherType),
		VoucherDate:   m.VoucherDate,
	}
}

// ToModelEntry converts a domain voucher line to its persistence form.
func ToModelEntry(d domain.JournalVoucherEntry) models.JournalVoucherEntry {
	return models.JournalVoucherEntry{
		EntryID:       d.EntryID,
		VoucherID:     d.VoucherID,
		AccountHeadID: d.AccountHeadID,
		Dr:            d.Dr,
		Cr:            d.Cr,
		VoucherType:   string(d.VoucherType),
		VoucherDate:   d.VoucherDate,
	}
}

// ToDomainEntrySlice converts a slice of persistence lines.
func ToDomainEntrySlice(ms []models.JournalVoucherEntry) []domain.JournalVoucherEntry {
	out := make([]domain.JournalVoucherEntry, len(ms))
	for i, m := range ms {
		out[i] = ToDomainEntry(m)
	}
	return out
}

// ToDomainBalanceSheetEntry converts a classification row to its domain form.
func ToDomainBalanceSheetEntry(m models.BalanceSheetEntry) domain.BalanceSheetEntry {
	return domain.BalanceSheetEntry{
		EntryID:   m.EntryID,
		Name:      m.Name,
		Category:  domain.BalanceSheetCategory(m.Category),
		Amount:    m.Amount,
		EntryDate: m.EntryDate,
		CreatedAt: m.CreatedAt,
	}
}

// ToDomainStockPurchase converts a stock purchase row to its domain form.
func ToDomainStockPurchase(m models.StockPurchase) domain.StockPurchase {
	return domain.StockPurchase{
		PurchaseID:   m.PurchaseID,
		VoucherID:    m.VoucherID,
		ItemName:     m.ItemName,
		Quantity:     m.Quantity,
		UnitPrice:    m.UnitPrice,
		Amount:       m.Amount,
		PurchaseDate: m.PurchaseDate,
		CreatedAt:    m.CreatedAt,
	}
}
