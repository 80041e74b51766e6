package pgsql_test

import (
	"context"
	"database/sql"
	"os"
	"testing"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/shopspring/decimal"
	"github.com/solenbank/solen_backend/internal/core/domain"
	portsrepo "github.com/solenbank/solen_backend/internal/core/ports/repositories"
	"github.com/solenbank/solen_backend/internal/repositories/database/pgsql"
	"github.com/stretchr/testify/suite"
)

// RepositorySuite runs the pgx repositories against a real database so the
// row-locking, balance and code-consumption guarantees are exercised where
// they are enforced, not mocked. Set PGSQL_TEST_URL to a disposable database
// to enable it.
type RepositorySuite struct {
	suite.Suite
	pool  *pgxpool.Pool
	repos portsrepo.RepositoryProvider
}

func (s *RepositorySuite) SetupSuite() {
	dsn := os.Getenv("PGSQL_TEST_URL")
	if dsn == "" {
		s.T().Skip("PGSQL_TEST_URL not set; skipping database integration tests")
	}

	pool, err := pgxpool.New(context.Background(), dsn)
	s.Require().NoError(err)
	s.Require().NoError(pool.Ping(context.Background()))
	s.pool = pool

	s.Require().NoError(applyMigrations(dsn))
	s.repos = pgsql.NewRepositoryProvider(pool)
}

func (s *RepositorySuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *RepositorySuite) SetupTest() {
	_, err := s.pool.Exec(context.Background(),
		`TRUNCATE users, accounts, register_codes, transactions, admins RESTART IDENTITY;`)
	s.Require().NoError(err)
}

func applyMigrations(dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithDatabaseInstance("file://../../../../migrations", "postgres", driver)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	return dbErr
}

// seedAccount creates an account and credits it with the given opening balance.
func (s *RepositorySuite) seedAccount(ownerID int64, variant domain.AccountVariant, name string, balance decimal.Decimal) string {
	accountID, err := s.repos.AccountRepo.CreateAccount(context.Background(), ownerID, variant, name)
	s.Require().NoError(err)
	if !balance.IsZero() {
		s.Require().NoError(s.repos.AccountRepo.AdjustBalance(context.Background(), accountID, balance))
	}
	return accountID
}

func (s *RepositorySuite) balance(accountID string) decimal.Decimal {
	bal, err := s.repos.AccountRepo.GetBalance(context.Background(), accountID)
	s.Require().NoError(err)
	return bal
}

func TestRepositorySuite(t *testing.T) {
	suite.Run(t, new(RepositorySuite))
}
