package services

import (
	"context"

	"github.com/clinicore/erp-ledger/internal/core/domain"
	"github.com/clinicore/erp-ledger/internal/dto"
)

// LedgerSvcFacade is the single entry point collaborator modules use to turn
// a business event into a balanced posting.
type LedgerSvcFacade interface {
	// ProcessTransaction records the business event and posts its journal.
	// In strict mode both writes share one database transaction; in lenient
	// mode the returned transaction may be non-nil alongside a posting
	// error, meaning the event was recorded but not yet journalled.
	ProcessTransaction(ctx context.Context, req dto.ProcessTransactionRequest) (*domain.Transaction, *domain.Journal, error)

	// GetJournalByID retrieves a journal with its lines.
	GetJournalByID(ctx context.Context, journalID string) (*domain.Journal, error)

	// ReverseJournal posts a new journal whose lines mirror the original
	// with debit and credit swapped, and marks the original REVERSED.
	// Committed postings are never edited; this is the only correction path.
	ReverseJournal(ctx context.Context, journalID string) (*domain.Journal, error)
}
