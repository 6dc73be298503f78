package repositories

import (
	"context"
	"time"

	"github.com/clinicore/erp-ledger/internal/core/domain"
)

// JournalReader defines read operations for journal data
type JournalReader interface {
	// FindJournalByID retrieves a journal header by its identifier.
	FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error)

	// FindLinesByJournalID retrieves the lines of one journal.
	FindLinesByJournalID(ctx context.Context, journalID string) ([]domain.JournalLine, error)
}

// JournalWriter defines write operations for journal data
type JournalWriter interface {
	// SaveJournal persists a journal header and its lines as one atomic
	// write. Nothing is persisted if any part fails.
	SaveJournal(ctx context.Context, journal domain.Journal, lines []domain.JournalLine) error

	// SavePosting persists the business transaction together with its
	// journal and lines in a single database transaction, so a posting
	// failure leaves no trace of the business event either.
	SavePosting(ctx context.Context, txn domain.Transaction, journal domain.Journal, lines []domain.JournalLine) error

	// SaveReversal persists the reversing journal with its lines and marks
	// the original journal REVERSED, all in one database transaction. It
	// fails with apperrors.ErrConflict if the original is no longer POSTED.
	SaveReversal(ctx context.Context, reversing domain.Journal, lines []domain.JournalLine, originalJournalID string, now time.Time) error
}

// JournalRepositoryFacade combines all journal-related repository interfaces
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}
