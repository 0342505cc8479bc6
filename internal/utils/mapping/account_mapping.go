package mapping

import (
	"github.com/labledger/labledger_app/internal/core/domain"
	"github.com/labledger/labledger_app/internal/models"
)

// ToDomainAccountHead converts a persistence account head to its domain form.
func ToDomainAccountHead(m models.AccountHead) domain.AccountHead {
	return domain.AccountHead{
		AccountHeadID:   m.AccountHeadID,
		Name:            m.Name,
		Code:            m.Code,
		ParentAccountID: m.ParentAccountID,
		OpeningBalance:  m.OpeningBalance,
		OpeningDate:     m.OpeningDate,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// ToModelAccountHead converts a domain account head to its persistence form.
func ToModelAccountHead(d domain.AccountHead) models.AccountHead {
	return models.AccountHead{
		AccountHeadID:   d.AccountHeadID,
		Name:            d.Name,
		Code:            d.Code,
		ParentAccountID: d.ParentAccountID,
		OpeningBalance:  d.OpeningBalance,
		OpeningDate:     d.OpeningDate,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

// ToDomainAccountSetting converts the settings row to its domain form.
func ToDomainAccountSetting(m models.AccountSetting) domain.AccountSetting {
	return domain.AccountSetting{
		DefaultCash:         m.DefaultCash,
		DefaultBank:         m.DefaultBank,
		DefaultStockAccount: m.DefaultStockAccount,
		UpdatedAt:           m.UpdatedAt,
	}
}
