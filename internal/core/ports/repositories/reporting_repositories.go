package repositories

import (
	"context"
	"time"

	"github.com/clinicore/erp-ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountActivity is the aggregate debit/credit movement of one account,
// used for opening balances and trial-balance nets.
type AccountActivity struct {
	AccountID   string
	AccountCode string
	AccountName string
	AccountType domain.AccountType
	Debit       decimal.Decimal
	Credit      decimal.Decimal
}

// ReportingRepository defines the read-side queries for ledger and
// trial-balance reports. All queries are pure reads over committed data.
type ReportingRepository interface {
	// SumAccountActivity aggregates all journal lines of one account dated
	// strictly before the given time.
	SumAccountActivity(ctx context.Context, accountID string, before time.Time) (debit, credit decimal.Decimal, err error)

	// FindAccountLines retrieves an account's journal lines within the
	// inclusive date range, ordered by journal date ascending with the
	// journal id as a deterministic tie-break. RunningBalance is left for
	// the service to fold.
	FindAccountLines(ctx context.Context, accountID string, from, to time.Time) ([]domain.LedgerLine, error)

	// GetTrialBalanceData aggregates debit/credit sums per account for all
	// accounts as of the given date, including accounts with no activity.
	GetTrialBalanceData(ctx context.Context, asOf time.Time) ([]AccountActivity, error)
}
