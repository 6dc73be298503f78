package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/clinicore/erp-ledger/internal/apperrors"
	"github.com/clinicore/erp-ledger/internal/core/domain"
	portsrepo "github.com/clinicore/erp-ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxJournalRepository persists journals and their lines. Every write path
// commits the journal header and all lines in one database transaction, so
// a partial posting can never become visible.
type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal data.
func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxJournalRepository implements portsrepo.JournalRepositoryFacade
var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

const insertJournalQuery = `
	INSERT INTO journals (journal_id, journal_date, reference_type, reference_id, narration, status, original_journal_id, created_at, last_updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
`

const markJournalReversedQuery = `
	UPDATE journals
	SET status = $1, reversing_journal_id = $2, last_updated_at = $3
	WHERE journal_id = $4 AND status = $5;
`

const insertLineQuery = `
	INSERT INTO journal_lines (line_id, journal_id, account_id, debit, credit, created_at, last_updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7);
`

// writePosting queues the journal header and line inserts on the given
// transaction, optionally preceded by the business transaction insert.
func (r *PgxJournalRepository) writePosting(ctx context.Context, tx pgx.Tx, txn *domain.Transaction, journal domain.Journal, lines []domain.JournalLine) error {
	if txn != nil {
		_, err := tx.Exec(ctx, insertTransactionQuery,
			txn.TransactionID,
			txn.Type,
			txn.Amount,
			txn.PaymentMode,
			txn.TransactionDate,
			txn.Description,
			txn.CreatedAt,
			txn.LastUpdatedAt,
		)
		if err != nil {
			return apperrors.NewAppError(500, "failed to insert transaction "+txn.TransactionID, err)
		}
	}

	_, err := tx.Exec(ctx, insertJournalQuery,
		journal.JournalID,
		journal.JournalDate,
		journal.ReferenceType,
		journal.ReferenceID,
		journal.Narration,
		journal.Status,
		journal.OriginalJournalID,
		journal.CreatedAt,
		journal.LastUpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert journal "+journal.JournalID, err)
	}

	batch := &pgx.Batch{}
	for _, line := range lines {
		batch.Queue(insertLineQuery,
			line.LineID,
			line.JournalID,
			line.AccountID,
			line.Debit,
			line.Credit,
			line.CreatedAt,
			line.LastUpdatedAt,
		)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to execute line batch for journal "+journal.JournalID, err)
	}
	return nil
}

// SaveJournal persists a journal header and its lines atomically.
func (r *PgxJournalRepository) SaveJournal(ctx context.Context, journal domain.Journal, lines []domain.JournalLine) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := r.writePosting(ctx, tx, nil, journal, lines); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// SavePosting persists the business transaction together with its journal
// and lines in a single database transaction.
func (r *PgxJournalRepository) SavePosting(ctx context.Context, txn domain.Transaction, journal domain.Journal, lines []domain.JournalLine) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := r.writePosting(ctx, tx, &txn, journal, lines); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// SaveReversal persists the reversing journal with its lines and flips the
// original journal to REVERSED in the same database transaction. The status
// guard in the update makes a concurrent double reversal fail cleanly.
func (r *PgxJournalRepository) SaveReversal(ctx context.Context, reversing domain.Journal, lines []domain.JournalLine, originalJournalID string, now time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := r.writePosting(ctx, tx, nil, reversing, lines); err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, markJournalReversedQuery,
		domain.Reversed,
		reversing.JournalID,
		now,
		originalJournalID,
		domain.Posted,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark journal "+originalJournalID+" as reversed", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: journal %s is not in POSTED status", apperrors.ErrConflict, originalJournalID)
	}

	return r.Commit(ctx, tx)
}

// FindJournalByID retrieves a journal header by its identifier.
func (r *PgxJournalRepository) FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	query := `
		SELECT journal_id, journal_date, reference_type, reference_id, narration, status, original_journal_id, reversing_journal_id, created_at, last_updated_at
		FROM journals
		WHERE journal_id = $1;
	`
	var j domain.Journal
	err := r.Pool.QueryRow(ctx, query, journalID).Scan(
		&j.JournalID,
		&j.JournalDate,
		&j.ReferenceType,
		&j.ReferenceID,
		&j.Narration,
		&j.Status,
		&j.OriginalJournalID,
		&j.ReversingJournalID,
		&j.CreatedAt,
		&j.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find journal by ID "+journalID, err)
	}
	return &j, nil
}

// FindLinesByJournalID retrieves the lines of one journal in insertion order.
func (r *PgxJournalRepository) FindLinesByJournalID(ctx context.Context, journalID string) ([]domain.JournalLine, error) {
	query := `
		SELECT line_id, journal_id, account_id, debit, credit, created_at, last_updated_at
		FROM journal_lines
		WHERE journal_id = $1
		ORDER BY line_id;
	`
	rows, err := r.Pool.Query(ctx, query, journalID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query lines for journal "+journalID, err)
	}
	defer rows.Close()

	lines := []domain.JournalLine{}
	for rows.Next() {
		var l domain.JournalLine
		err := rows.Scan(
			&l.LineID,
			&l.JournalID,
			&l.AccountID,
			&l.Debit,
			&l.Credit,
			&l.CreatedAt,
			&l.LastUpdatedAt,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan line row for journal "+journalID, err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating line rows for journal "+journalID, err)
	}
	return lines, nil
}
