package services

import (
	portsrepo "github.com/clinicore/erp-ledger/internal/core/ports/repositories"
	portssvc "github.com/clinicore/erp-ledger/internal/core/ports/services"
	"github.com/clinicore/erp-ledger/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Account = NewAccountService(repos.AccountRepo)
	container.Ledger = NewLedgerService(
		repos.AccountRepo,
		repos.TransactionRepo,
		repos.JournalRepo,
		WithStrictPosting(cfg.PostingStrict),
	)
	container.Reporting = NewReportingService(repos.AccountRepo, repos.ReportingRepo)

	return container
}
