package repositories

import (
	"context"
	"time"

	"github.com/clinicore/erp-ledger/internal/core/domain"
)

// AccountReader defines read operations for chart-of-accounts data
type AccountReader interface {
	// FindAccountByCode retrieves an account by its unique code.
	FindAccountByCode(ctx context.Context, code string) (*domain.Account, error)

	// FindAccountsByCodes retrieves multiple accounts keyed by code.
	FindAccountsByCodes(ctx context.Context, codes []string) (map[string]domain.Account, error)

	// ListAccounts retrieves the full chart of accounts in seed order.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// AccountWriter defines write operations for chart-of-accounts data
type AccountWriter interface {
	// SaveAccounts inserts the given accounts, skipping codes that already
	// exist. It returns the number of rows actually inserted, which makes
	// seeding idempotent and observable.
	SaveAccounts(ctx context.Context, accounts []domain.Account) (int, error)

	// DeactivateAccount flags an account inactive. Accounts referenced by
	// journal lines are never deleted.
	DeactivateAccount(ctx context.Context, accountID string, now time.Time) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
