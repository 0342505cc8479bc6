package pgsql

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labledger/labledger_app/internal/apperrors"
	"github.com/labledger/labledger_app/internal/core/domain"
	portsrepo "github.com/labledger/labledger_app/internal/core/ports/repositories"
	"github.com/labledger/labledger_app/internal/dto"
	"github.com/labledger/labledger_app/internal/models"
	"github.com/labledger/labledger_app/internal/utils/mapping"
	"github.com/labledger/labledger_app/internal/utils/voucherno"
)

// PgxVoucherRepository persists voucher headers, their entries and linked
// stock purchases. Every write runs in one transaction so a partially written
// voucher is never observable.
type PgxVoucherRepository struct {
	BaseRepository
}

func newPgxVoucherRepository(pool *pgxpool.Pool) portsrepo.VoucherRepositoryWithTx {
	return &PgxVoucherRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.VoucherRepositoryWithTx = (*PgxVoucherRepository)(nil)

// nextListingVoucher allocates the next listing number for a type inside tx.
// The UPDATE takes a row lock on the type's counter, so concurrent posters of
// the same type serialize here and each sees a distinct number. On first use
// the counter is seeded from the newest voucher of the type by insertion
// order; ON CONFLICT DO NOTHING makes the seed race-safe.
func (r *PgxVoucherRepository) nextListingVoucher(ctx context.Context, tx pgx.Tx, vt domain.VoucherType) (string, error) {
	var exists bool
	err := tx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM voucher_sequences WHERE voucher_type = $1);`, string(vt),
	).Scan(&exists)
	if err != nil {
		return "", apperrors.NewAppError(500, "failed to check voucher sequence for "+string(vt), err)
	}

	if !exists {
		var newest string
		err := tx.QueryRow(ctx,
			`SELECT listing_voucher FROM journal_voucher WHERE voucher_type = $1 ORDER BY ordinal DESC LIMIT 1;`,
			string(vt),
		).Scan(&newest)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.NewAppError(500, "failed to read newest voucher for "+string(vt), err)
		}
		seed := voucherno.ParseSuffix(newest)
		_, err = tx.Exec(ctx,
			`INSERT INTO voucher_sequences (voucher_type, last_number) VALUES ($1, $2) ON CONFLICT (voucher_type) DO NOTHING;`,
			string(vt), seed,
		)
		if err != nil {
			return "", apperrors.NewAppError(500, "failed to seed voucher sequence for "+string(vt), err)
		}
	}

	var next int64
	err = tx.QueryRow(ctx,
		`UPDATE voucher_sequences SET last_number = last_number + 1 WHERE voucher_type = $1 RETURNING last_number;`,
		string(vt),
	).Scan(&next)
	if err != nil {
		return "", apperrors.NewAppError(500, "failed to bump voucher sequence for "+string(vt), err)
	}
	return voucherno.Format(vt, next), nil
}

func insertEntriesBatch(batch *pgx.Batch, entries []domain.JournalVoucherEntry) {
	query := `
		INSERT INTO journal_voucher_entries (entry_id, voucher_id, account_head_id, dr, cr, voucher_type, voucher_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	for _, e := range entries {
		m := mapping.ToModelEntry(e)
		batch.Queue(query, m.EntryID, m.VoucherID, m.AccountHeadID, m.Dr, m.Cr, m.VoucherType, m.VoucherDate)
	}
}

func (r *PgxVoucherRepository) saveVoucherTx(ctx context.Context, tx pgx.Tx, voucher domain.JournalVoucher, entries []domain.JournalVoucherEntry) (*domain.JournalVoucher, error) {
	listing, err := r.nextListingVoucher(ctx, tx, voucher.VoucherType)
	if err != nil {
		return nil, err
	}
	voucher.ListingVoucher = listing

	m := mapping.ToModelVoucher(voucher)
	_, err = tx.Exec(ctx, `
		INSERT INTO journal_voucher (voucher_id, voucher_date, narration, voucher_type, listing_voucher, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`, m.VoucherID, m.VoucherDate, m.Narration, m.VoucherType, m.ListingVoucher, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		if isPgError(err, pgUniqueViolation) {
			return nil, apperrors.ErrConflict
		}
		if isPgError(err, pgForeignKeyViolation) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to insert voucher "+m.VoucherID, err)
	}

	batch := &pgx.Batch{}
	insertEntriesBatch(batch, entries)
	br := tx.SendBatch(ctx, batch)
	for range entries {
		if _, err := br.Exec(); err != nil {
			br.Close()
			if isPgError(err, pgForeignKeyViolation) {
				return nil, apperrors.ErrNotFound
			}
			return nil, apperrors.NewAppError(500, "failed to insert voucher entries for "+m.VoucherID, err)
		}
	}
	if err := br.Close(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to close entry batch for "+m.VoucherID, err)
	}

	voucher.Entries = entries
	return &voucher, nil
}

// SaveVoucher allocates the next listing number and inserts the header plus
// entries in one transaction.
func (r *PgxVoucherRepository) SaveVoucher(ctx context.Context, voucher domain.JournalVoucher, entries []domain.JournalVoucherEntry) (*domain.JournalVoucher, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	saved, err := r.saveVoucherTx(ctx, tx, voucher, entries)
	if err != nil {
		return nil, err
	}
	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return saved, nil
}

// SaveVoucherWithStockPurchase persists the voucher and the linked purchase
// record atomically. The purchase must reference the voucher being saved.
func (r *PgxVoucherRepository) SaveVoucherWithStockPurchase(ctx context.Context, voucher domain.JournalVoucher, entries []domain.JournalVoucherEntry, purchase domain.StockPurchase) (*domain.JournalVoucher, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	saved, err := r.saveVoucherTx(ctx, tx, voucher, entries)
	if err != nil {
		return nil, err
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO stock_purchases (purchase_id, voucher_id, item_name, quantity, unit_price, amount, purchase_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`, purchase.PurchaseID, purchase.VoucherID, purchase.ItemName, purchase.Quantity, purchase.UnitPrice, purchase.Amount, purchase.PurchaseDate, purchase.CreatedAt)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert stock purchase "+purchase.PurchaseID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return saved, nil
}

// RewriteVoucher replaces the header fields, type included, and the whole
// entry set in one transaction. created_at is retained. An empty
// ListingVoucher means the caller changed the voucher's type: the next number
// of the new series is allocated here and the old number stays retired.
func (r *PgxVoucherRepository) RewriteVoucher(ctx context.Context, voucher domain.JournalVoucher, entries []domain.JournalVoucherEntry) (*domain.JournalVoucher, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	if voucher.ListingVoucher == "" {
		listing, err := r.nextListingVoucher(ctx, tx, voucher.VoucherType)
		if err != nil {
			return nil, err
		}
		voucher.ListingVoucher = listing
	}

	m := mapping.ToModelVoucher(voucher)
	cmdTag, err := tx.Exec(ctx, `
		UPDATE journal_voucher
		SET voucher_date = $2,
		    narration = $3,
		    voucher_type = $4,
		    listing_voucher = $5,
		    updated_at = $6
		WHERE voucher_id = $1;
	`, m.VoucherID, m.VoucherDate, m.Narration, m.VoucherType, m.ListingVoucher, m.UpdatedAt)
	if err != nil {
		if isPgError(err, pgUniqueViolation) {
			return nil, apperrors.ErrConflict
		}
		return nil, apperrors.NewAppError(500, "failed to update voucher "+m.VoucherID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return nil, apperrors.NewNotFoundError("voucher " + m.VoucherID + " not found for update")
	}

	if _, err := tx.Exec(ctx, `DELETE FROM journal_voucher_entries WHERE voucher_id = $1;`, m.VoucherID); err != nil {
		return nil, apperrors.NewAppError(500, "failed to clear entries for voucher "+m.VoucherID, err)
	}

	batch := &pgx.Batch{}
	insertEntriesBatch(batch, entries)
	br := tx.SendBatch(ctx, batch)
	for range entries {
		if _, err := br.Exec(); err != nil {
			br.Close()
			if isPgError(err, pgForeignKeyViolation) {
				return nil, apperrors.ErrNotFound
			}
			return nil, apperrors.NewAppError(500, "failed to insert entries for voucher "+m.VoucherID, err)
		}
	}
	if err := br.Close(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to close entry batch for "+m.VoucherID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	voucher.Entries = entries
	return &voucher, nil
}

// DeleteVoucher removes a header; entries cascade at the schema level.
func (r *PgxVoucherRepository) DeleteVoucher(ctx context.Context, voucherID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM journal_voucher WHERE voucher_id = $1;`, voucherID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete voucher "+voucherID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("voucher " + voucherID + " not found for delete")
	}
	return nil
}

const voucherColumns = `voucher_id, voucher_date, narration, voucher_type, listing_voucher, created_at, updated_at`

func scanVoucher(row pgx.Row) (*models.JournalVoucher, error) {
	var m models.JournalVoucher
	err := row.Scan(
		&m.VoucherID,
		&m.VoucherDate,
		&m.Narration,
		&m.VoucherType,
		&m.ListingVoucher,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// FindVoucherByID retrieves a header by id, entries not loaded.
func (r *PgxVoucherRepository) FindVoucherByID(ctx context.Context, voucherID string) (*domain.JournalVoucher, error) {
	query := `SELECT ` + voucherColumns + ` FROM journal_voucher WHERE voucher_id = $1;`
	m, err := scanVoucher(r.Pool.QueryRow(ctx, query, voucherID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find voucher by ID "+voucherID, err)
	}
	d := mapping.ToDomainVoucher(*m)
	return &d, nil
}

// FindEntriesByVoucherID retrieves a voucher's entries joined to their account
// names, in insertion order.
func (r *PgxVoucherRepository) FindEntriesByVoucherID(ctx context.Context, voucherID string) ([]domain.JournalVoucherEntry, error) {
	query := `
		SELECT e.entry_id, e.voucher_id, e.account_head_id, a.name, e.dr, e.cr, e.voucher_type, e.voucher_date
		FROM journal_voucher_entries e
		JOIN account_heads a ON a.account_head_id = e.account_head_id
		WHERE e.voucher_id = $1
		ORDER BY e.ordinal;
	`
	rows, err := r.Pool.Query(ctx, query, voucherID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query entries for voucher "+voucherID, err)
	}
	defer rows.Close()

	entries := []domain.JournalVoucherEntry{}
	for rows.Next() {
		var e domain.JournalVoucherEntry
		var vt string
		err := rows.Scan(&e.EntryID, &e.VoucherID, &e.AccountHeadID, &e.AccountName, &e.Dr, &e.Cr, &vt, &e.VoucherDate)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan entry row", err)
		}
		e.VoucherType = domain.VoucherType(vt)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating entry rows", err)
	}
	return entries, nil
}

// ListVouchers retrieves one page of headers of a type, newest first by
// insertion order, filtered by date range and a search over narration and
// listing voucher.
func (r *PgxVoucherRepository) ListVouchers(ctx context.Context, vt domain.VoucherType, params dto.ListVouchersParams, limit, offset int) ([]domain.JournalVoucher, int64, error) {
	filter := ` WHERE voucher_type = $1`
	args := []interface{}{string(vt)}
	if params.From != nil {
		args = append(args, *params.From)
		filter += ` AND voucher_date >= $` + strconv.Itoa(len(args))
	}
	if params.To != nil {
		args = append(args, *params.To)
		filter += ` AND voucher_date <= $` + strconv.Itoa(len(args))
	}
	if params.Search != "" {
		args = append(args, "%"+params.Search+"%")
		n := strconv.Itoa(len(args))
		filter += ` AND (narration ILIKE $` + n + ` OR listing_voucher ILIKE $` + n + `)`
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM journal_voucher` + filter + `;`
	if err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count vouchers", err)
	}

	query := `SELECT ` + voucherColumns + ` FROM journal_voucher` + filter +
		` ORDER BY ordinal DESC LIMIT $` + strconv.Itoa(len(args)+1) + ` OFFSET $` + strconv.Itoa(len(args)+2) + `;`
	args = append(args, limit, offset)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to query vouchers", err)
	}
	defer rows.Close()

	vouchers := []domain.JournalVoucher{}
	for rows.Next() {
		m, err := scanVoucher(rows)
		if err != nil {
			return nil, 0, apperrors.NewAppError(500, "failed to scan voucher row", err)
		}
		vouchers = append(vouchers, mapping.ToDomainVoucher(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperrors.NewAppError(500, "error iterating voucher rows", err)
	}
	return vouchers, total, nil
}

// ListStockPurchases retrieves one page of purchases, newest first.
func (r *PgxVoucherRepository) ListStockPurchases(ctx context.Context, limit, offset int) ([]domain.StockPurchase, int64, error) {
	var total int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM stock_purchases;`).Scan(&total); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count stock purchases", err)
	}

	query := `
		SELECT purchase_id, voucher_id, item_name, quantity, unit_price, amount, purchase_date, created_at
		FROM stock_purchases
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to query stock purchases", err)
	}
	defer rows.Close()

	purchases := []domain.StockPurchase{}
	for rows.Next() {
		var m models.StockPurchase
		err := rows.Scan(&m.PurchaseID, &m.VoucherID, &m.ItemName, &m.Quantity, &m.UnitPrice, &m.Amount, &m.PurchaseDate, &m.CreatedAt)
		if err != nil {
			return nil, 0, apperrors.NewAppError(500, "failed to scan stock purchase row", err)
		}
		purchases = append(purchases, mapping.ToDomainStockPurchase(m))
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperrors.NewAppError(500, "error iterating stock purchase rows", err)
	}
	return purchases, total, nil
}
