package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/solenbank/solen_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgx-backed repository over one shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo: newPgxAccountRepository(dbPool),
		UserRepo:    newPgxUserRepository(dbPool),
		CodeRepo:    newPgxRegistrationCodeRepository(dbPool),
		TxnRepo:     newPgxTransactionRepository(dbPool),
		AdminRepo:   newPgxAdminRepository(dbPool),
	}
}
