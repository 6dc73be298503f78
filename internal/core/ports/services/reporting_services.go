package services

import (
	"context"
	"time"

	"github.com/clinicore/erp-ledger/internal/core/domain"
)

// ReportingSvcFacade exposes the read-side ledger queries.
type ReportingSvcFacade interface {
	// LedgerReport computes an account's ledger over a date range with
	// opening balance, per-line running balance and closing balance.
	LedgerReport(ctx context.Context, accountCode string, from, to time.Time) (*domain.LedgerReport, error)

	// TrialBalance computes the all-accounts snapshot as of a date and
	// verifies that total debits equal total credits.
	TrialBalance(ctx context.Context, asOf time.Time) (*domain.TrialBalanceReport, error)
}
