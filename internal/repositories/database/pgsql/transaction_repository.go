package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/solenbank/solen_backend/internal/core/domain"
	portsrepo "github.com/solenbank/solen_backend/internal/core/ports/repositories"
)

// PgxTransactionRepository is the append-only audit log. No update or delete
// statement exists here on purpose.
type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) *PgxTransactionRepository {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

func (r *PgxTransactionRepository) AppendTransaction(ctx context.Context, record domain.TransactionRecord) error {
	query := `
		INSERT INTO transactions (txid, from_acc, to_acc, amount, status)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.Pool.Exec(ctx, query,
		record.TxID,
		record.FromAccountID,
		record.ToAccountID,
		record.Amount,
		string(record.Status),
	)
	if err != nil {
		return fmt.Errorf("failed to append transaction %s: %w", record.TxID, err)
	}
	return nil
}
