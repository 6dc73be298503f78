package pgsql

import (
	"context"
	"errors"

	"github.com/clinicore/erp-ledger/internal/apperrors"
	"github.com/clinicore/erp-ledger/internal/core/domain"
	portsrepo "github.com/clinicore/erp-ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxTransactionRepository persists raw business transaction records.
type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for business transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepositoryFacade
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

const insertTransactionQuery = `
	INSERT INTO transactions (transaction_id, transaction_type, amount, payment_mode, transaction_date, description, created_at, last_updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
`

// SaveTransaction persists one immutable business transaction row.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	_, err := r.Pool.Exec(ctx, insertTransactionQuery,
		txn.TransactionID,
		txn.Type,
		txn.Amount,
		txn.PaymentMode,
		txn.TransactionDate,
		txn.Description,
		txn.CreatedAt,
		txn.LastUpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert transaction "+txn.TransactionID, err)
	}
	return nil
}

// FindTransactionByID retrieves a business transaction by its identifier.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `
		SELECT transaction_id, transaction_type, amount, payment_mode, transaction_date, description, created_at, last_updated_at
		FROM transactions
		WHERE transaction_id = $1;
	`
	var t domain.Transaction
	err := r.Pool.QueryRow(ctx, query, transactionID).Scan(
		&t.TransactionID,
		&t.Type,
		&t.Amount,
		&t.PaymentMode,
		&t.TransactionDate,
		&t.Description,
		&t.CreatedAt,
		&t.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find transaction by ID "+transactionID, err)
	}
	return &t, nil
}
