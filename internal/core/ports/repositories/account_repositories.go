package repositories

import (
	"context"
	"time"

	"github.com/labledger/labledger_app/internal/core/domain"
)

// AccountHeadReader defines read operations for chart-of-accounts data.
type AccountHeadReader interface {
	// FindAccountHeadByID retrieves a specific head by its unique identifier.
	FindAccountHeadByID(ctx context.Context, accountHeadID string) (*domain.AccountHead, error)

	// FindAccountHeadByName retrieves a head by exact (case-sensitive) name.
	FindAccountHeadByName(ctx context.Context, name string) (*domain.AccountHead, error)

	// FindAccountHeadsByIDs retrieves multiple heads keyed by id. Ids that do
	// not exist are simply absent from the map.
	FindAccountHeadsByIDs(ctx context.Context, accountHeadIDs []string) (map[string]domain.AccountHead, error)

	// ListAccountHeads retrieves one page of heads matching the search term,
	// plus the total match count.
	ListAccountHeads(ctx context.Context, search string, limit, offset int) ([]domain.AccountHead, int64, error)

	// HasEntries reports whether any voucher entry references the head.
	HasEntries(ctx context.Context, accountHeadID string) (bool, error)
}

// AccountHeadWriter defines write operations for chart-of-accounts data.
type AccountHeadWriter interface {
	// SaveAccountHead persists a new head.
	SaveAccountHead(ctx context.Context, head domain.AccountHead) error

	// UpdateAccountHead overwrites an existing head's fields.
	UpdateAccountHead(ctx context.Context, head domain.AccountHead) error

	// DeleteAccountHead hard-deletes a head.
	DeleteAccountHead(ctx context.Context, accountHeadID string) error
}

// SettingsRepository manages the singleton default-accounts row.
type SettingsRepository interface {
	// GetSettings retrieves the row, creating the domain zero value when the
	// row does not exist yet.
	GetSettings(ctx context.Context) (*domain.AccountSetting, error)

	// MergeSettings applies a COALESCE-style partial update: nil arguments
	// keep the stored value.
	MergeSettings(ctx context.Context, cash, bank, stockAccount *string, now time.Time) error
}

// AccountRepositoryFacade combines all account-related repository interfaces.
type AccountRepositoryFacade interface {
	AccountHeadReader
	AccountHeadWriter
	SettingsRepository
}
