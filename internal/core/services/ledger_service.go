package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/clinicore/erp-ledger/internal/apperrors"
	"github.com/clinicore/erp-ledger/internal/core/domain"
	portsrepo "github.com/clinicore/erp-ledger/internal/core/ports/repositories"
	portssvc "github.com/clinicore/erp-ledger/internal/core/ports/services"
	"github.com/clinicore/erp-ledger/internal/dto"
	"github.com/clinicore/erp-ledger/internal/utils/accounting"
)

// ledgerService records business transactions and posts their journals.
type ledgerService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	txnRepo     portsrepo.TransactionRepositoryFacade
	journalRepo portsrepo.JournalRepositoryFacade
	strict      bool
}

// LedgerServiceOption is a functional option for configuring the ledger service
type LedgerServiceOption func(*ledgerService)

// WithStrictPosting controls the posting atomicity mode. When strict (the
// default), the transaction record and its journal commit in one database
// transaction. When lenient, the transaction record survives a failed
// posting and the error is reported to the caller for alerting/retry.
func WithStrictPosting(strict bool) LedgerServiceOption {
	return func(s *ledgerService) {
		s.strict = strict
	}
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(accountRepo portsrepo.AccountRepositoryFacade, txnRepo portsrepo.TransactionRepositoryFacade, journalRepo portsrepo.JournalRepositoryFacade, options ...LedgerServiceOption) portssvc.LedgerSvcFacade {
	svc := &ledgerService{
		accountRepo: accountRepo,
		txnRepo:     txnRepo,
		journalRepo: journalRepo,
		strict:      true,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure ledgerService implements the portssvc.LedgerSvcFacade interface
var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// ProcessTransaction validates and records the business event, resolves its
// debit/credit account pair and posts a balanced two-line journal.
//
// Rejections (validation, unsupported type) happen before any write. A
// missing chart-of-accounts code is a setup fault surfaced as
// apperrors.ErrAccountNotFound, also before any write.
func (s *ledgerService) ProcessTransaction(ctx context.Context, req dto.ProcessTransactionRequest) (*domain.Transaction, *domain.Journal, error) {
	logger := s.GetLogger(ctx)

	txn, err := s.buildTransaction(req)
	if err != nil {
		return nil, nil, err
	}

	rule, err := accounting.ResolvePostingRule(txn.Type, txn.PaymentMode, accounting.PostingContext{
		SettlesLiability: req.SettlesLiability,
	})
	if err != nil {
		return nil, nil, err
	}

	accounts, err := s.accountRepo.FindAccountsByCodes(ctx, []string{string(rule.Debit), string(rule.Credit)})
	if err != nil {
		logger.Error("Failed to fetch accounts for posting", slog.String("error", err.Error()))
		return nil, nil, fmt.Errorf("failed to fetch accounts: %w", err)
	}
	debitAccount, ok := accounts[string(rule.Debit)]
	if !ok {
		return nil, nil, fmt.Errorf("%w: code %s (chart of accounts not seeded?)", apperrors.ErrAccountNotFound, rule.Debit)
	}
	creditAccount, ok := accounts[string(rule.Credit)]
	if !ok {
		return nil, nil, fmt.Errorf("%w: code %s (chart of accounts not seeded?)", apperrors.ErrAccountNotFound, rule.Credit)
	}

	journal, lines := s.buildJournal(txn, debitAccount.AccountID, creditAccount.AccountID)

	if s.strict {
		if err := s.journalRepo.SavePosting(ctx, txn, journal, lines); err != nil {
			logger.Error("Failed to save posting", slog.String("error", err.Error()), slog.String("transaction_id", txn.TransactionID))
			return nil, nil, fmt.Errorf("failed to save posting: %w", err)
		}
	} else {
		// Lenient mode: the business event is durable first; a posting
		// failure leaves it recorded and reports the error to the caller.
		if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
			logger.Error("Failed to save transaction", slog.String("error", err.Error()))
			return nil, nil, fmt.Errorf("failed to save transaction: %w", err)
		}
		if err := s.journalRepo.SaveJournal(ctx, journal, lines); err != nil {
			logger.Error("Posting failed after transaction was recorded",
				slog.String("error", err.Error()),
				slog.String("transaction_id", txn.TransactionID))
			return &txn, nil, fmt.Errorf("posting failed for transaction %s: %w", txn.TransactionID, err)
		}
	}

	logger.Info("Transaction posted",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("journal_id", journal.JournalID),
		slog.String("type", string(txn.Type)),
		slog.String("debit", string(rule.Debit)),
		slog.String("credit", string(rule.Credit)),
		slog.String("amount", txn.Amount.String()))

	journal.Lines = lines
	return &txn, &journal, nil
}

// buildTransaction validates the request and constructs the immutable
// business transaction record.
func (s *ledgerService) buildTransaction(req dto.ProcessTransactionRequest) (domain.Transaction, error) {
	if req.Type == "" {
		return domain.Transaction{}, fmt.Errorf("%w: transaction type is required", apperrors.ErrValidation)
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return domain.Transaction{}, fmt.Errorf("%w: amount must be positive, got %s", apperrors.ErrValidation, req.Amount.String())
	}

	now := time.Now().UTC()
	txnDate := now
	if req.Date != nil {
		txnDate = req.Date.UTC()
	}

	return domain.Transaction{
		TransactionID:   uuid.NewString(),
		Type:            domain.TransactionType(req.Type),
		Amount:          req.Amount,
		PaymentMode:     accounting.NormalizePaymentMode(req.PaymentMode),
		TransactionDate: txnDate,
		Description:     req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}, nil
}

// buildJournal constructs the journal header and its two balanced lines.
func (s *ledgerService) buildJournal(txn domain.Transaction, debitAccountID, creditAccountID string) (domain.Journal, []domain.JournalLine) {
	now := txn.CreatedAt
	narration := txn.Description
	if narration == "" {
		narration = fmt.Sprintf("%s %s (%s)", txn.Type, txn.Amount.String(), txn.PaymentMode)
	}

	journal := domain.Journal{
		JournalID:     uuid.NewString(),
		JournalDate:   txn.TransactionDate,
		ReferenceType: domain.ReferenceTypeTransaction,
		ReferenceID:   txn.TransactionID,
		Narration:     narration,
		Status:        domain.Posted,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	lines := domain.NewBalancedLines(journal.JournalID, debitAccountID, creditAccountID, txn.Amount, uuid.NewString, now)
	return journal, lines
}

// ReverseJournal posts a new journal that undoes a previously posted one by
// swapping every line's debit and credit, then marks the original REVERSED.
// The original lines are left untouched; the correction is purely additive.
func (s *ledgerService) ReverseJournal(ctx context.Context, journalID string) (*domain.Journal, error) {
	logger := s.GetLogger(ctx)

	original, err := s.journalRepo.FindJournalByID(ctx, journalID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		logger.Error("Failed to fetch journal for reversal", slog.String("error", err.Error()), slog.String("journal_id", journalID))
		return nil, fmt.Errorf("failed to retrieve journal %s: %w", journalID, err)
	}

	if original.Status != domain.Posted {
		return nil, fmt.Errorf("%w: journal %s has status %s, expected POSTED", apperrors.ErrConflict, journalID, original.Status)
	}
	if original.OriginalJournalID != nil {
		return nil, fmt.Errorf("%w: journal %s is itself a reversal", apperrors.ErrConflict, journalID)
	}

	originalLines, err := s.journalRepo.FindLinesByJournalID(ctx, journalID)
	if err != nil {
		logger.Error("Failed to fetch lines for reversal", slog.String("error", err.Error()), slog.String("journal_id", journalID))
		return nil, fmt.Errorf("failed to retrieve lines for journal %s: %w", journalID, err)
	}

	now := time.Now().UTC()
	reversing := domain.Journal{
		JournalID:         uuid.NewString(),
		JournalDate:       original.JournalDate,
		ReferenceType:     domain.ReferenceTypeJournal,
		ReferenceID:       original.JournalID,
		Narration:         fmt.Sprintf("Reversal of journal: %s", original.Narration),
		Status:            domain.Posted,
		OriginalJournalID: &original.JournalID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	lines := make([]domain.JournalLine, len(originalLines))
	for i, orig := range originalLines {
		lines[i] = domain.JournalLine{
			LineID:    uuid.NewString(),
			JournalID: reversing.JournalID,
			AccountID: orig.AccountID,
			Debit:     orig.Credit,
			Credit:    orig.Debit,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				LastUpdatedAt: now,
			},
		}
	}

	if err := s.journalRepo.SaveReversal(ctx, reversing, lines, original.JournalID, now); err != nil {
		logger.Error("Failed to save reversing journal", slog.String("error", err.Error()), slog.String("journal_id", journalID))
		return nil, fmt.Errorf("failed to save reversal of journal %s: %w", journalID, err)
	}

	logger.Info("Journal reversed",
		slog.String("journal_id", journalID),
		slog.String("reversing_journal_id", reversing.JournalID))

	reversing.Lines = lines
	return &reversing, nil
}

// GetJournalByID retrieves a journal with its lines.
func (s *ledgerService) GetJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	journal, err := s.journalRepo.FindJournalByID(ctx, journalID)
	if err != nil {
		return nil, fmt.Errorf("failed to find journal %s: %w", journalID, err)
	}

	lines, err := s.journalRepo.FindLinesByJournalID(ctx, journalID)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch journal lines", slog.String("journal_id", journalID))
		return nil, fmt.Errorf("failed to retrieve lines for journal %s: %w", journalID, apperrors.ErrInternal)
	}

	journal.Lines = lines
	return journal, nil
}
