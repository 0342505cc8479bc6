package dto

import (
	"github.com/labledger/labledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountHeadRequest creates a chart-of-accounts node. The accountname
// rule rejects empty and purely numeric names.
type CreateAccountHeadRequest struct {
	Name            string          `json:"name" binding:"required,accountname"`
	Code            string          `json:"code"`
	ParentAccountID *string         `json:"parentAccountID"`
	OpeningBalance  decimal.Decimal `json:"openingBalance"`
	OpeningDate     string          `json:"openingDate" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateAccountHeadRequest fully overwrites a head's fields. Unlike the
// settings update there is no partial merge here; callers send the complete
// record.
type UpdateAccountHeadRequest struct {
	Name            string          `json:"name" binding:"required,accountname"`
	Code            string          `json:"code"`
	ParentAccountID *string         `json:"parentAccountID"`
	OpeningBalance  decimal.Decimal `json:"openingBalance"`
	OpeningDate     string          `json:"openingDate" binding:"omitempty,datetime=2006-01-02"`
}

// AccountHeadResponse is the API shape of a chart-of-accounts node.
type AccountHeadResponse struct {
	AccountHeadID   string          `json:"accountHeadID"`
	Name            string          `json:"name"`
	Code            string          `json:"code"`
	ParentAccountID *string         `json:"parentAccountID"`
	OpeningBalance  decimal.Decimal `json:"openingBalance"`
	OpeningDate     string          `json:"openingDate"`
}

// ToAccountHeadResponse converts a domain head to its API shape.
func ToAccountHeadResponse(d *domain.AccountHead) AccountHeadResponse {
	return AccountHeadResponse{
		AccountHeadID:   d.AccountHeadID,
		Name:            d.Name,
		Code:            d.Code,
		ParentAccountID: d.ParentAccountID,
		OpeningBalance:  d.OpeningBalance,
		OpeningDate:     d.OpeningDate.Format(DateLayout),
	}
}

// ToAccountHeadResponses converts a slice of domain heads.
func ToAccountHeadResponses(ds []domain.AccountHead) []AccountHeadResponse {
	out := make([]AccountHeadResponse, len(ds))
	for i := range ds {
		out[i] = ToAccountHeadResponse(&ds[i])
	}
	return out
}

// UpdateSettingsRequest merges into the default-accounts row. Nil fields keep
// their prior value.
type UpdateSettingsRequest struct {
	DefaultCash         *string `json:"defaultCash"`
	DefaultBank         *string `json:"defaultBank"`
	DefaultStockAccount *string `json:"defaultStockAccount"`
}

// SettingsResponse is the API shape of the default-accounts row.
type SettingsResponse struct {
	DefaultCash         *string `json:"defaultCash"`
	DefaultBank         *string `json:"defaultBank"`
	DefaultStockAccount *string `json:"defaultStockAccount"`
}

// ToSettingsResponse converts the domain settings to the API shape.
func ToSettingsResponse(d *domain.AccountSetting) SettingsResponse {
	return SettingsResponse{
		DefaultCash:         d.DefaultCash,
		DefaultBank:         d.DefaultBank,
		DefaultStockAccount: d.DefaultStockAccount,
	}
}
