package pgsql

import (
	"context"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labledger/labledger_app/internal/apperrors"
	"github.com/labledger/labledger_app/internal/core/domain"
	portsrepo "github.com/labledger/labledger_app/internal/core/ports/repositories"
	"github.com/labledger/labledger_app/internal/models"
	"github.com/labledger/labledger_app/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

// PgxReportingRepository runs the aggregate read queries behind the ledger,
// trial balance and balance sheet views. It never writes voucher data.
type PgxReportingRepository struct {
	BaseRepository
}

func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

func dateRangeFilter(column string, from, to *time.Time, args []interface{}) (string, []interface{}) {
	filter := ``
	if from != nil {
		args = append(args, *from)
		filter += ` AND ` + column + ` >= $` + strconv.Itoa(len(args))
	}
	if to != nil {
		args = append(args, *to)
		filter += ` AND ` + column + ` <= $` + strconv.Itoa(len(args))
	}
	return filter, args
}

// GetLedgerLines retrieves one account's entries in range, joined with their
// voucher header, ordered by voucher date with insertion order breaking ties.
func (r *PgxReportingRepository) GetLedgerLines(ctx context.Context, accountHeadID string, from, to *time.Time) ([]domain.LedgerLine, error) {
	args := []interface{}{accountHeadID}
	filter, args := dateRangeFilter("e.voucher_date", from, to, args)
	query := `
		SELECT e.entry_id, e.voucher_id, v.listing_voucher, v.narration, e.voucher_date, e.dr, e.cr
		FROM journal_voucher_entries e
		JOIN journal_voucher v ON v.voucher_id = e.voucher_id
		WHERE e.account_head_id = $1` + filter + `
		ORDER BY e.voucher_date, v.ordinal, e.ordinal;
	`
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query ledger lines for "+accountHeadID, err)
	}
	defer rows.Close()

	lines := []domain.LedgerLine{}
	for rows.Next() {
		var l domain.LedgerLine
		err := rows.Scan(&l.EntryID, &l.VoucherID, &l.ListingVoucher, &l.Narration, &l.VoucherDate, &l.Dr, &l.Cr)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan ledger line", err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating ledger lines", err)
	}
	return lines, nil
}

// GetTrialBalanceRows retrieves one page of per-head debit/credit sums,
// grouped and ordered by account name, plus the total row count.
func (r *PgxReportingRepository) GetTrialBalanceRows(ctx context.Context, from, to *time.Time, search string, limit, offset int) ([]domain.TrialBalanceRow, int64, error) {
	args := []interface{}{}
	filter, args := dateRangeFilter("e.voucher_date", from, to, args)
	if search != "" {
		args = append(args, "%"+search+"%")
		filter += ` AND a.name ILIKE $` + strconv.Itoa(len(args))
	}

	var total int64
	countQuery := `
		SELECT COUNT(DISTINCT e.account_head_id)
		FROM journal_voucher_entries e
		JOIN account_heads a ON a.account_head_id = e.account_head_id
		WHERE TRUE` + filter + `;
	`
	if err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count trial balance rows", err)
	}

	query := `
		SELECT e.account_head_id, a.name, COALESCE(SUM(e.dr), 0), COALESCE(SUM(e.cr), 0)
		FROM journal_voucher_entries e
		JOIN account_heads a ON a.account_head_id = e.account_head_id
		WHERE TRUE` + filter + `
		GROUP BY e.account_head_id, a.name
		ORDER BY a.name
		LIMIT $` + strconv.Itoa(len(args)+1) + ` OFFSET $` + strconv.Itoa(len(args)+2) + `;
	`
	args = append(args, limit, offset)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to query trial balance rows", err)
	}
	defer rows.Close()

	result := []domain.TrialBalanceRow{}
	for rows.Next() {
		var row domain.TrialBalanceRow
		if err := rows.Scan(&row.AccountHeadID, &row.AccountName, &row.Debit, &row.Credit); err != nil {
			return nil, 0, apperrors.NewAppError(500, "failed to scan trial balance row", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperrors.NewAppError(500, "error iterating trial balance rows", err)
	}
	return result, total, nil
}

// GetTrialBalanceTotals retrieves the grand debit/credit totals over the whole
// filtered range, independent of paging.
func (r *PgxReportingRepository) GetTrialBalanceTotals(ctx context.Context, from, to *time.Time, search string) (decimal.Decimal, decimal.Decimal, error) {
	args := []interface{}{}
	filter, args := dateRangeFilter("e.voucher_date", from, to, args)
	if search != "" {
		args = append(args, "%"+search+"%")
		filter += ` AND a.name ILIKE $` + strconv.Itoa(len(args))
	}
	query := `
		SELECT COALESCE(SUM(e.dr), 0), COALESCE(SUM(e.cr), 0)
		FROM journal_voucher_entries e
		JOIN account_heads a ON a.account_head_id = e.account_head_id
		WHERE TRUE` + filter + `;
	`
	var debit, credit decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(&debit, &credit); err != nil {
		return decimal.Zero, decimal.Zero, apperrors.NewAppError(500, "failed to query trial balance totals", err)
	}
	return debit, credit, nil
}

// ListBalanceSheetEntries retrieves one page of classification rows, newest
// first by entry date.
func (r *PgxReportingRepository) ListBalanceSheetEntries(ctx context.Context, from, to *time.Time, search string, limit, offset int) ([]domain.BalanceSheetEntry, int64, error) {
	args := []interface{}{}
	filter, args := dateRangeFilter("entry_date", from, to, args)
	if search != "" {
		args = append(args, "%"+search+"%")
		filter += ` AND name ILIKE $` + strconv.Itoa(len(args))
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM balance_sheet_entries WHERE TRUE` + filter + `;`
	if err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count balance sheet entries", err)
	}

	query := `
		SELECT entry_id, name, category, amount, entry_date, created_at
		FROM balance_sheet_entries
		WHERE TRUE` + filter + `
		ORDER BY entry_date DESC, created_at DESC
		LIMIT $` + strconv.Itoa(len(args)+1) + ` OFFSET $` + strconv.Itoa(len(args)+2) + `;
	`
	args = append(args, limit, offset)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to query balance sheet entries", err)
	}
	defer rows.Close()

	entries := []domain.BalanceSheetEntry{}
	for rows.Next() {
		var m models.BalanceSheetEntry
		if err := rows.Scan(&m.EntryID, &m.Name, &m.Category, &m.Amount, &m.EntryDate, &m.CreatedAt); err != nil {
			return nil, 0, apperrors.NewAppError(500, "failed to scan balance sheet entry", err)
		}
		entries = append(entries, mapping.ToDomainBalanceSheetEntry(m))
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperrors.NewAppError(500, "error iterating balance sheet entries", err)
	}
	return entries, total, nil
}

// GetBalanceSheetTotals retrieves the per-category sums over the whole
// filtered range, independent of paging.
func (r *PgxReportingRepository) GetBalanceSheetTotals(ctx context.Context, from, to *time.Time, search string) (decimal.Decimal, decimal.Decimal, decimal.Decimal, error) {
	args := []interface{}{}
	filter, args := dateRangeFilter("entry_date", from, to, args)
	if search != "" {
		args = append(args, "%"+search+"%")
		filter += ` AND name ILIKE $` + strconv.Itoa(len(args))
	}
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN category = 'ASSET' THEN amount ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN category = 'LIABILITY' THEN amount ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN category = 'EQUITY' THEN amount ELSE 0 END), 0)
		FROM balance_sheet_entries
		WHERE TRUE` + filter + `;
	`
	var assets, liabilities, equity decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(&assets, &liabilities, &equity); err != nil {
		return decimal.Zero, decimal.Zero, decimal.Zero, apperrors.NewAppError(500, "failed to query balance sheet totals", err)
	}
	return assets, liabilities, equity, nil
}

// SaveBalanceSheetEntry persists one classification row.
func (r *PgxReportingRepository) SaveBalanceSheetEntry(ctx context.Context, entry domain.BalanceSheetEntry) error {
	query := `
		INSERT INTO balance_sheet_entries (entry_id, name, category, amount, entry_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query, entry.EntryID, entry.Name, string(entry.Category), entry.Amount, entry.EntryDate, entry.CreatedAt)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert balance sheet entry "+entry.EntryID, err)
	}
	return nil
}
