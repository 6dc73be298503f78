package services

import (
	"context"

	"github.com/clinicore/erp-ledger/internal/core/domain"
)

// AccountSvcFacade exposes chart-of-accounts operations.
type AccountSvcFacade interface {
	// SeedAccounts creates the fixed chart of accounts if absent, keyed by
	// unique code. Safe to re-run; returns the number of accounts created.
	SeedAccounts(ctx context.Context) (int, error)

	// ListAccounts returns the full chart of accounts.
	ListAccounts(ctx context.Context) ([]domain.Account, error)

	// GetAccountByCode returns one account by its code.
	GetAccountByCode(ctx context.Context, code string) (*domain.Account, error)

	// DeactivateAccount flags an account inactive. Accounts referenced by
	// journal lines are never deleted, only deactivated.
	DeactivateAccount(ctx context.Context, code string) error
}
