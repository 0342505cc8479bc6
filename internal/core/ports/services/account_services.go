package services

import (
	"context"

	"github.com/labledger/labledger_app/internal/core/domain"
	"github.com/labledger/labledger_app/internal/dto"
	"github.com/labledger/labledger_app/internal/utils/pagination"
)

// AccountReaderSvc defines read operations for the chart of accounts.
type AccountReaderSvc interface {
	// GetAccountHead retrieves a specific head by id.
	GetAccountHead(ctx context.Context, accountHeadID string) (*domain.AccountHead, error)

	// ListAccountHeads retrieves one page of heads matching the search term
	// plus the total match count.
	ListAccountHeads(ctx context.Context, search string, page pagination.Params) ([]domain.AccountHead, int64, error)
}

// AccountWriterSvc defines write operations for the chart of accounts.
type AccountWriterSvc interface {
	// CreateAccountHead persists a new head after name/parent validation.
	CreateAccountHead(ctx context.Context, req dto.CreateAccountHeadRequest) (*domain.AccountHead, error)

	// UpdateAccountHead fully overwrites a head's fields.
	UpdateAccountHead(ctx context.Context, accountHeadID string, req dto.UpdateAccountHeadRequest) (*domain.AccountHead, error)

	// DeleteAccountHead hard-deletes a head; rejected while voucher entries
	// still reference it.
	DeleteAccountHead(ctx context.Context, accountHeadID string) error
}

// DefaultAccountSvc resolves and configures the default counter-accounts.
type DefaultAccountSvc interface {
	// GetDefaultAccount returns the configured head id for the kind, or
	// apperrors.ErrConfiguration when unset.
	GetDefaultAccount(ctx context.Context, kind domain.DefaultAccountKind) (string, error)

	// GetSettings retrieves the full default-accounts row.
	GetSettings(ctx context.Context) (*domain.AccountSetting, error)

	// UpdateSettings partially merges the provided defaults; nil fields keep
	// their prior value. Each provided id must reference an existing head.
	UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest) (*domain.AccountSetting, error)
}

// AccountSvcFacade combines all account-registry service interfaces.
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
	DefaultAccountSvc
}
