package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/clinicore/erp-ledger/internal/core/domain"
	portsrepo "github.com/clinicore/erp-ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// reportingRepository implements the read-side report queries.
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure reportingRepository implements portsrepo.ReportingRepository
var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

// SumAccountActivity aggregates all journal lines of one account dated
// strictly before the given time.
func (r *reportingRepository) SumAccountActivity(ctx context.Context, accountID string, before time.Time) (decimal.Decimal, decimal.Decimal, error) {
	query := `
		SELECT
			COALESCE(SUM(l.debit), 0) AS total_debit,
			COALESCE(SUM(l.credit), 0) AS total_credit
		FROM journal_lines l
		JOIN journals j ON l.journal_id = j.journal_id
		WHERE l.account_id = $1
			AND j.journal_date < $2;
	`
	var debit, credit decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, accountID, before).Scan(&debit, &credit); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("error summing account activity: %w", err)
	}
	return debit, credit, nil
}

// FindAccountLines retrieves an account's journal lines within the inclusive
// date range, ordered by journal date with the journal id as tie-break so
// running balances are deterministic.
func (r *reportingRepository) FindAccountLines(ctx context.Context, accountID string, from, to time.Time) ([]domain.LedgerLine, error) {
	query := `
		SELECT j.journal_id, j.journal_date, j.narration, l.debit, l.credit
		FROM journal_lines l
		JOIN journals j ON l.journal_id = j.journal_id
		WHERE l.account_id = $1
			AND j.journal_date >= $2
			AND j.journal_date <= $3
		ORDER BY j.journal_date, j.journal_id;
	`
	rows, err := r.Pool.Query(ctx, query, accountID, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying ledger lines: %w", err)
	}
	defer rows.Close()

	lines := []domain.LedgerLine{}
	for rows.Next() {
		var line domain.LedgerLine
		if err := rows.Scan(
			&line.JournalID,
			&line.JournalDate,
			&line.Narration,
			&line.Debit,
			&line.Credit,
		); err != nil {
			return nil, fmt.Errorf("error scanning ledger line: %w", err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ledger lines: %w", err)
	}
	return lines, nil
}

// GetTrialBalanceData aggregates debit/credit sums per account as of the
// given date. The outer join keeps zero-activity accounts in the snapshot.
func (r *reportingRepository) GetTrialBalanceData(ctx context.Context, asOf time.Time) ([]portsrepo.AccountActivity, error) {
	query := `
		SELECT
			a.account_id,
			a.code,
			a.name,
			a.account_type,
			COALESCE(s.total_debit, 0) AS total_debit,
			COALESCE(s.total_credit, 0) AS total_credit
		FROM accounts a
		LEFT JOIN (
			SELECT l.account_id, SUM(l.debit) AS total_debit, SUM(l.credit) AS total_credit
			FROM journal_lines l
			JOIN journals j ON l.journal_id = j.journal_id
			WHERE j.journal_date <= $1
			GROUP BY l.account_id
		) s ON s.account_id = a.account_id
		ORDER BY a.created_at, a.code;
	`
	rows, err := r.Pool.Query(ctx, query, asOf)
	if err != nil {
		return nil, fmt.Errorf("error querying trial balance data: %w", err)
	}
	defer rows.Close()

	result := []portsrepo.AccountActivity{}
	for rows.Next() {
		var act portsrepo.AccountActivity
		var accountType string
		if err := rows.Scan(
			&act.AccountID,
			&act.AccountCode,
			&act.AccountName,
			&accountType,
			&act.Debit,
			&act.Credit,
		); err != nil {
			return nil, fmt.Errorf("error scanning trial balance row: %w", err)
		}
		act.AccountType = domain.AccountType(accountType)
		result = append(result, act)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trial balance rows: %w", err)
	}
	return result, nil
}
