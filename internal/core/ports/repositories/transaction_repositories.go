package repositories

import (
	"context"

	"github.com/clinicore/erp-ledger/internal/core/domain"
)

// TransactionReader defines read operations for business transaction records
type TransactionReader interface {
	// FindTransactionByID retrieves a business transaction by its identifier.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
}

// TransactionWriter defines write operations for business transaction records
type TransactionWriter interface {
	// SaveTransaction persists one immutable business transaction row.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
}

// TransactionRepositoryFacade combines transaction reader and writer
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
