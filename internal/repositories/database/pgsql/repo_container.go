package pgsql

import (
	portsrepo "github.com/clinicore/erp-ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires all pgx-backed repositories over one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:     newPgxAccountRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
		JournalRepo:     newPgxJournalRepository(dbPool),
		ReportingRepo:   newReportingRepository(dbPool),
	}
}
