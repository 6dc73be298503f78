package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/clinicore/erp-ledger/internal/core/domain"
	portsrepo "github.com/clinicore/erp-ledger/internal/core/ports/repositories"
	portssvc "github.com/clinicore/erp-ledger/internal/core/ports/services"
	"github.com/clinicore/erp-ledger/internal/utils/accounting"
)

// accountService manages the chart of accounts.
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new AccountService.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: accountRepo}
}

// Ensure accountService implements the portssvc.AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// SeedAccounts creates the fixed chart of accounts if absent. Existing codes
// are left untouched, so re-running is safe and produces no duplicates.
func (s *accountService) SeedAccounts(ctx context.Context) (int, error) {
	definitions := accounting.ChartOfAccounts()
	now := time.Now().UTC()

	accounts := make([]domain.Account, len(definitions))
	for i, def := range definitions {
		accounts[i] = domain.Account{
			AccountID:   uuid.NewString(),
			Code:        string(def.Role),
			Name:        def.Name,
			AccountType: def.Type,
			IsActive:    true,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				LastUpdatedAt: now,
			},
		}
	}

	created, err := s.accountRepo.SaveAccounts(ctx, accounts)
	if err != nil {
		s.LogError(ctx, err, "Failed to seed chart of accounts")
		return 0, fmt.Errorf("failed to seed accounts: %w", err)
	}

	s.LogInfo(ctx, "Chart of accounts seeded", slog.Int("created", created), slog.Int("total", len(accounts)))
	return created, nil
}

// ListAccounts returns the full chart of accounts.
func (s *accountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

// GetAccountByCode returns one account by its code.
func (s *accountService) GetAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to find account %s: %w", code, err)
	}
	return account, nil
}

// DeactivateAccount flags the account with the given code inactive.
func (s *accountService) DeactivateAccount(ctx context.Context, code string) error {
	account, err := s.accountRepo.FindAccountByCode(ctx, code)
	if err != nil {
		return fmt.Errorf("failed to find account %s: %w", code, err)
	}

	if err := s.accountRepo.DeactivateAccount(ctx, account.AccountID, time.Now().UTC()); err != nil {
		s.LogError(ctx, err, "Failed to deactivate account", slog.String("code", code))
		return fmt.Errorf("failed to deactivate account %s: %w", code, err)
	}

	s.LogInfo(ctx, "Account deactivated", slog.String("code", code))
	return nil
}
