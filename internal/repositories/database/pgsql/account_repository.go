package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/solenbank/solen_backend/internal/apperrors"
	"github.com/solenbank/solen_backend/internal/core/domain"
	portsrepo "github.com/solenbank/solen_backend/internal/core/ports/repositories"
	"github.com/solenbank/solen_backend/internal/models"
	"github.com/solenbank/solen_backend/internal/utils"
)

// maxIDAttempts bounds the retry loop for identifier generation. The id space
// (6 random digits) dwarfs any realistic account count, so the expected number
// of retries is ~0; the bound exists so a pathological store state cannot spin
// forever.
const maxIDAttempts = 16

type PgxAccountRepository struct {
	BaseRepository
}

func newPgxAccountRepository(pool *pgxpool.Pool) *PgxAccountRepository {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountRepository = (*PgxAccountRepository)(nil)

// execQuerier is satisfied by both *pgxpool.Pool and pgx.Tx, so account
// creation can run standalone or inside a caller's transaction.
type execQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func toDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID: m.AccountID,
		OwnerID:   m.OwnerID,
		Variant:   domain.AccountVariant(m.Type),
		Name:      m.Name,
		Balance:   m.Balance,
	}
}

// idShape returns the identifier prefix and digit width for an account variant.
func idShape(variant domain.AccountVariant) (string, int) {
	if variant == domain.Business {
		return "BUS-", 5
	}
	return "ACC-", 6
}

// createAccount generates a collision-free identifier and inserts a
// zero-balance account. Collisions are detected via the unique constraint
// (INSERT ... ON CONFLICT DO NOTHING), not prevented up front.
func createAccount(ctx context.Context, q execQuerier, ownerID int64, variant domain.AccountVariant, name string) (string, error) {
	prefix, digits := idShape(variant)

	query := `
		INSERT INTO accounts (account_id, owner_tg_id, type, name, balance)
		VALUES ($1, $2, $3, $4, 0)
		ON CONFLICT (account_id) DO NOTHING;
	`
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		candidate, err := utils.AccountNumber(prefix, digits)
		if err != nil {
			return "", err
		}
		if candidate == domain.BankAccountID {
			continue
		}

		ct, err := q.Exec(ctx, query, candidate, ownerID, string(variant), name)
		if err != nil {
			return "", fmt.Errorf("failed to insert account %s: %w", candidate, err)
		}
		if ct.RowsAffected() == 1 {
			return candidate, nil
		}
		// Candidate already taken; draw again.
	}
	return "", fmt.Errorf("could not allocate a unique account id after %d attempts", maxIDAttempts)
}

func (r *PgxAccountRepository) CreateAccount(ctx context.Context, ownerID int64, variant domain.AccountVariant, name string) (string, error) {
	return createAccount(ctx, r.Pool, ownerID, variant, name)
}

func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `
		SELECT account_id, owner_tg_id, type, name, balance
		FROM accounts
		WHERE account_id = $1;
	`
	var m models.Account
	err := r.Pool.QueryRow(ctx, query, accountID).Scan(&m.AccountID, &m.OwnerID, &m.Type, &m.Name, &m.Balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
		}
		return nil, fmt.Errorf("failed to find account %s: %w", accountID, err)
	}
	acc := toDomainAccount(m)
	return &acc, nil
}

func (r *PgxAccountRepository) ListAccountsByOwner(ctx context.Context, ownerID int64) ([]domain.Account, error) {
	query := `
		SELECT account_id, owner_tg_id, type, name, balance
		FROM accounts
		WHERE owner_tg_id = $1
		ORDER BY account_id;
	`
	rows, err := r.Pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts for owner %d: %w", ownerID, err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		var m models.Account
		if err := rows.Scan(&m.AccountID, &m.OwnerID, &m.Type, &m.Name, &m.Balance); err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, toDomainAccount(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}
	return accounts, nil
}

func (r *PgxAccountRepository) GetBalance(ctx context.Context, accountID string) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := r.Pool.QueryRow(ctx, `SELECT balance FROM accounts WHERE account_id = $1;`, accountID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
		}
		return decimal.Zero, fmt.Errorf("failed to read balance of %s: %w", accountID, err)
	}
	return balance, nil
}

// lockBalance takes an exclusive row lock on the account and returns its
// balance as read under the lock.
func lockBalance(ctx context.Context, tx pgx.Tx, accountID string) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := tx.QueryRow(ctx, `SELECT balance FROM accounts WHERE account_id = $1 FOR UPDATE;`, accountID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
		}
		return decimal.Zero, fmt.Errorf("failed to lock account %s: %w", accountID, err)
	}
	return balance, nil
}

// TransferFunds debits fromAccountID and credits toAccountID inside one
// transaction. The two row locks are always acquired in ascending identifier
// order regardless of transfer direction, so two concurrent transfers between
// the same pair of accounts cannot deadlock.
func (r *PgxAccountRepository) TransferFunds(ctx context.Context, fromAccountID, toAccountID string, amount decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	first, second := fromAccountID, toAccountID
	if second < first {
		first, second = second, first
	}

	balances := make(map[string]decimal.Decimal, 2)
	for _, id := range []string{first, second} {
		bal, err := lockBalance(ctx, tx, id)
		if err != nil {
			return err
		}
		balances[id] = bal
	}

	// Re-checked under the lock: a concurrent debit since any earlier read
	// cannot slip through.
	if balances[fromAccountID].LessThan(amount) {
		return fmt.Errorf("%w: account %s holds %s, needs %s",
			apperrors.ErrInsufficientFunds, fromAccountID, balances[fromAccountID], amount)
	}

	if _, err := tx.Exec(ctx, `UPDATE accounts SET balance = balance - $1 WHERE account_id = $2;`, amount, fromAccountID); err != nil {
		return fmt.Errorf("failed to debit account %s: %w", fromAccountID, err)
	}
	if _, err := tx.Exec(ctx, `UPDATE accounts SET balance = balance + $1 WHERE account_id = $2;`, amount, toAccountID); err != nil {
		return fmt.Errorf("failed to credit account %s: %w", toAccountID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transfer: %w", err)
	}
	return nil
}

// AdjustBalance applies a signed delta to one account under an exclusive row
// lock. A resulting negative balance aborts the transaction untouched.
func (r *PgxAccountRepository) AdjustBalance(ctx context.Context, accountID string, delta decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	balance, err := lockBalance(ctx, tx, accountID)
	if err != nil {
		return err
	}

	newBalance := balance.Add(delta)
	if newBalance.IsNegative() {
		return fmt.Errorf("%w: balance %s cannot absorb %s", apperrors.ErrInsufficientFunds, balance, delta)
	}

	if _, err := tx.Exec(ctx, `UPDATE accounts SET balance = $1 WHERE account_id = $2;`, newBalance, accountID); err != nil {
		return fmt.Errorf("failed to update balance of %s: %w", accountID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit adjustment: %w", err)
	}
	return nil
}

func (r *PgxAccountRepository) DeleteAccount(ctx context.Context, accountID string) error {
	// Account ids are generated uppercase; match case-insensitively the way
	// operators type them.
	id := strings.ToUpper(accountID)
	if id == domain.BankAccountID {
		return fmt.Errorf("%w: cannot delete the main bank account", apperrors.ErrProtectedResource)
	}

	ct, err := r.Pool.Exec(ctx, `DELETE FROM accounts WHERE account_id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete account %s: %w", id, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, id)
	}
	return nil
}

func (r *PgxAccountRepository) DeleteBusinessAccount(ctx context.Context, accountID string) error {
	id := strings.ToUpper(accountID)
	ct, err := r.Pool.Exec(ctx, `DELETE FROM accounts WHERE account_id = $1 AND type = $2;`, id, string(domain.Business))
	if err != nil {
		return fmt.Errorf("failed to delete business account %s: %w", id, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%w: business account %s", apperrors.ErrNotFound, id)
	}
	return nil
}

func (r *PgxAccountRepository) TransferOwnership(ctx context.Context, accountID string, newOwnerID int64) error {
	ct, err := r.Pool.Exec(ctx, `UPDATE accounts SET owner_tg_id = $1 WHERE account_id = $2;`, newOwnerID, accountID)
	if err != nil {
		return fmt.Errorf("failed to transfer ownership of %s: %w", accountID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
	}
	return nil
}

// EnsureBankAccount bootstraps the reserved central bank account. Safe to call
// on every startup; only the first call creates the row.
func (r *PgxAccountRepository) EnsureBankAccount(ctx context.Context, ownerID int64, initialBalance decimal.Decimal) error {
	query := `
		INSERT INTO accounts (account_id, owner_tg_id, type, name, balance)
		VALUES ($1, $2, $3, 'Central Bank', $4)
		ON CONFLICT (account_id) DO NOTHING;
	`
	if _, err := r.Pool.Exec(ctx, query, domain.BankAccountID, ownerID, string(domain.Bank), initialBalance); err != nil {
		return fmt.Errorf("failed to ensure bank account: %w", err)
	}
	return nil
}
