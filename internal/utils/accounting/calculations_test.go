package accounting_test

import (
	"testing"

	"github.com/labledger/labledger_app/internal/core/domain"
	"github.com/labledger/labledger_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func entry(dr, cr string) domain.JournalVoucherEntry {
	return domain.JournalVoucherEntry{
		Dr: decimal.RequireFromString(dr),
		Cr: decimal.RequireFromString(cr),
	}
}

func TestValidateEntries(t *testing.T) {
	t.Run("balanced set passes", func(t *testing.T) {
		err := accounting.ValidateEntries([]domain.JournalVoucherEntry{
			entry("1000", "0"),
			entry("0", "600"),
			entry("0", "400"),
		})
		assert.NoError(t, err)
	})

	t.Run("empty set rejected", func(t *testing.T) {
		assert.Error(t, accounting.ValidateEntries(nil))
	})

	t.Run("unbalanced set rejected", func(t *testing.T) {
		err := accounting.ValidateEntries([]domain.JournalVoucherEntry{
			entry("100", "0"),
			entry("0", "99"),
		})
		assert.ErrorContains(t, err, "do not balance")
	})

	t.Run("negative amount rejected", func(t *testing.T) {
		err := accounting.ValidateEntries([]domain.JournalVoucherEntry{
			entry("-5", "0"),
			entry("0", "-5"),
		})
		assert.ErrorContains(t, err, "negative")
	})

	t.Run("zero line rejected", func(t *testing.T) {
		err := accounting.ValidateEntries([]domain.JournalVoucherEntry{
			entry("10", "0"),
			entry("0", "0"),
			entry("0", "10"),
		})
		assert.ErrorContains(t, err, "both zero")
	})

	t.Run("sub cent noise tolerated", func(t *testing.T) {
		// 0.004 rounds away at currency precision.
		err := accounting.ValidateEntries([]domain.JournalVoucherEntry{
			entry("100.004", "0"),
			entry("0", "100.001"),
		})
		assert.NoError(t, err)
	})
}

func TestSumEntries(t *testing.T) {
	dr, cr := accounting.SumEntries([]domain.JournalVoucherEntry{
		entry("250.50", "0"),
		entry("0", "100.25"),
		entry("0", "150.25"),
	})
	assert.True(t, dr.Equal(decimal.RequireFromString("250.50")))
	assert.True(t, cr.Equal(decimal.RequireFromString("250.50")))
}
