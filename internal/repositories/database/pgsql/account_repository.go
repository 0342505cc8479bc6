package pgsql

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labledger/labledger_app/internal/apperrors"
	"github.com/labledger/labledger_app/internal/core/domain"
	portsrepo "github.com/labledger/labledger_app/internal/core/ports/repositories"
	"github.com/labledger/labledger_app/internal/models"
	"github.com/labledger/labledger_app/internal/utils/mapping"
)

// PgxAccountRepository persists the chart of accounts and the singleton
// default-accounts row.
type PgxAccountRepository struct {
	BaseRepository
}

func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

const accountHeadColumns = `account_head_id, name, code, parent_account_id, opening_balance, opening_date, created_at, updated_at`

func scanAccountHead(row pgx.Row) (*models.AccountHead, error) {
	var m models.AccountHead
	err := row.Scan(
		&m.AccountHeadID,
		&m.Name,
		&m.Code,
		&m.ParentAccountID,
		&m.OpeningBalance,
		&m.OpeningDate,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveAccountHead persists a new head. A name collision surfaces as
// ErrDuplicate via the unique constraint rather than a racy pre-check.
func (r *PgxAccountRepository) SaveAccountHead(ctx context.Context, head domain.AccountHead) error {
	m := mapping.ToModelAccountHead(head)
	query := `
		INSERT INTO account_heads (` + accountHeadColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AccountHeadID,
		m.Name,
		m.Code,
		m.ParentAccountID,
		m.OpeningBalance,
		m.OpeningDate,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		if isPgError(err, pgUniqueViolation) {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to insert account head "+m.AccountHeadID, err)
	}
	return nil
}

// UpdateAccountHead overwrites every mutable field of an existing head.
func (r *PgxAccountRepository) UpdateAccountHead(ctx context.Context, head domain.AccountHead) error {
	m := mapping.ToModelAccountHead(head)
	query := `
		UPDATE account_heads
		SET name = $2,
		    code = $3,
		    parent_account_id = $4,
		    opening_balance = $5,
		    opening_date = $6,
		    updated_at = $7
		WHERE account_head_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.AccountHeadID,
		m.Name,
		m.Code,
		m.ParentAccountID,
		m.OpeningBalance,
		m.OpeningDate,
		m.UpdatedAt,
	)
	if err != nil {
		if isPgError(err, pgUniqueViolation) {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to update account head "+m.AccountHeadID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("account head " + m.AccountHeadID + " not found for update")
	}
	return nil
}

// DeleteAccountHead hard-deletes a head. A foreign key violation (entries or
// children still reference it) surfaces as ErrConflict.
func (r *PgxAccountRepository) DeleteAccountHead(ctx context.Context, accountHeadID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM account_heads WHERE account_head_id = $1;`, accountHeadID)
	if err != nil {
		if isPgError(err, pgForeignKeyViolation) {
			return apperrors.ErrConflict
		}
		return apperrors.NewAppError(500, "failed to delete account head "+accountHeadID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("account head " + accountHeadID + " not found for delete")
	}
	return nil
}

// FindAccountHeadByID retrieves a head by id.
func (r *PgxAccountRepository) FindAccountHeadByID(ctx context.Context, accountHeadID string) (*domain.AccountHead, error) {
	query := `SELECT ` + accountHeadColumns + ` FROM account_heads WHERE account_head_id = $1;`
	m, err := scanAccountHead(r.Pool.QueryRow(ctx, query, accountHeadID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find account head by ID "+accountHeadID, err)
	}
	d := mapping.ToDomainAccountHead(*m)
	return &d, nil
}

// FindAccountHeadByName retrieves a head by exact, case-sensitive name.
func (r *PgxAccountRepository) FindAccountHeadByName(ctx context.Context, name string) (*domain.AccountHead, error) {
	query := `SELECT ` + accountHeadColumns + ` FROM account_heads WHERE name = $1;`
	m, err := scanAccountHead(r.Pool.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find account head by name", err)
	}
	d := mapping.ToDomainAccountHead(*m)
	return &d, nil
}

// FindAccountHeadsByIDs retrieves multiple heads keyed by id.
func (r *PgxAccountRepository) FindAccountHeadsByIDs(ctx context.Context, accountHeadIDs []string) (map[string]domain.AccountHead, error) {
	if len(accountHeadIDs) == 0 {
		return map[string]domain.AccountHead{}, nil
	}
	query := `SELECT ` + accountHeadColumns + ` FROM account_heads WHERE account_head_id = ANY($1);`
	rows, err := r.Pool.Query(ctx, query, accountHeadIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query account heads by IDs", err)
	}
	defer rows.Close()

	result := make(map[string]domain.AccountHead, len(accountHeadIDs))
	for rows.Next() {
		m, err := scanAccountHead(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan account head row", err)
		}
		result[m.AccountHeadID] = mapping.ToDomainAccountHead(*m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating account head rows", err)
	}
	return result, nil
}

// ListAccountHeads retrieves one page of heads matching the search term on
// name or code, ordered by name, plus the total match count.
func (r *PgxAccountRepository) ListAccountHeads(ctx context.Context, search string, limit, offset int) ([]domain.AccountHead, int64, error) {
	filter := ``
	args := []interface{}{}
	if search != "" {
		args = append(args, "%"+search+"%")
		filter = ` WHERE (name ILIKE $1 OR code ILIKE $1)`
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM account_heads` + filter + `;`
	if err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count account heads", err)
	}

	query := `SELECT ` + accountHeadColumns + ` FROM account_heads` + filter +
		` ORDER BY name LIMIT $` + strconv.Itoa(len(args)+1) + ` OFFSET $` + strconv.Itoa(len(args)+2) + `;`
	args = append(args, limit, offset)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to query account heads", err)
	}
	defer rows.Close()

	heads := []domain.AccountHead{}
	for rows.Next() {
		m, err := scanAccountHead(rows)
		if err != nil {
			return nil, 0, apperrors.NewAppError(500, "failed to scan account head row", err)
		}
		heads = append(heads, mapping.ToDomainAccountHead(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperrors.NewAppError(500, "error iterating account head rows", err)
	}
	return heads, total, nil
}

// HasEntries reports whether any voucher entry references the head.
func (r *PgxAccountRepository) HasEntries(ctx context.Context, accountHeadID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM journal_voucher_entries WHERE account_head_id = $1);`
	if err := r.Pool.QueryRow(ctx, query, accountHeadID).Scan(&exists); err != nil {
		return false, apperrors.NewAppError(500, "failed to check entries for account head "+accountHeadID, err)
	}
	return exists, nil
}

// GetSettings retrieves the singleton default-accounts row. A missing row is
// not an error; every default is simply unset.
func (r *PgxAccountRepository) GetSettings(ctx context.Context) (*domain.AccountSetting, error) {
	query := `
		SELECT default_cash, default_bank, default_stock_account, updated_at
		FROM account_setting
		WHERE setting_id = 1;
	`
	var m models.AccountSetting
	err := r.Pool.QueryRow(ctx, query).Scan(
		&m.DefaultCash,
		&m.DefaultBank,
		&m.DefaultStockAccount,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &domain.AccountSetting{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to load account settings", err)
	}
	d := mapping.ToDomainAccountSetting(m)
	return &d, nil
}

// MergeSettings upserts the singleton row, COALESCE-merging so nil arguments
// keep the stored value. This partial-merge behavior is intentional and
// differs from the full-overwrite head update.
func (r *PgxAccountRepository) MergeSettings(ctx context.Context, cash, bank, stockAccount *string, now time.Time) error {
	query := `
		INSERT INTO account_setting (setting_id, default_cash, default_bank, default_stock_account, updated_at)
		VALUES (1, $1, $2, $3, $4)
		ON CONFLICT (setting_id) DO UPDATE
		SET default_cash = COALESCE($1, account_setting.default_cash),
		    default_bank = COALESCE($2, account_setting.default_bank),
		    default_stock_account = COALESCE($3, account_setting.default_stock_account),
		    updated_at = $4;
	`
	if _, err := r.Pool.Exec(ctx, query, cash, bank, stockAccount, now); err != nil {
		if isPgError(err, pgForeignKeyViolation) {
			return apperrors.ErrNotFound
		}
		return apperrors.NewAppError(500, "failed to update account settings", err)
	}
	return nil
}
