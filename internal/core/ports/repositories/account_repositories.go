package repositories

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/solenbank/solen_backend/internal/core/domain"
)

// AccountRepository is the persistence boundary for ledger accounts.
//
// TransferFunds and AdjustBalance are the only balance-mutating operations.
// Both run inside a single database transaction, acquire exclusive row locks
// on every account they touch in ascending account-id order, and re-check
// balances under the lock. On any failure the store is left unchanged.
type AccountRepository interface {
	// CreateAccount persists a new zero-balance account, generating a unique
	// identifier with the variant's prefix and digit width. The reserved bank
	// identifier is never handed out.
	CreateAccount(ctx context.Context, ownerID int64, variant domain.AccountVariant, name string) (string, error)

	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	ListAccountsByOwner(ctx context.Context, ownerID int64) ([]domain.Account, error)
	GetBalance(ctx context.Context, accountID string) (decimal.Decimal, error)

	// TransferFunds atomically debits fromAccountID and credits toAccountID by
	// exactly amount. Returns apperrors.ErrNotFound if either account is
	// missing and apperrors.ErrInsufficientFunds if the source cannot cover
	// the amount; in both cases no balance changes.
	TransferFunds(ctx context.Context, fromAccountID, toAccountID string, amount decimal.Decimal) error

	// AdjustBalance applies a signed delta to a single account under the same
	// lock discipline as a one-sided transfer. A delta that would leave the
	// balance negative fails with apperrors.ErrInsufficientFunds.
	AdjustBalance(ctx context.Context, accountID string, delta decimal.Decimal) error

	// DeleteAccount removes an account by id. The reserved bank account fails
	// with apperrors.ErrProtectedResource.
	DeleteAccount(ctx context.Context, accountID string) error

	// DeleteBusinessAccount removes an account only if it is a BUSINESS account.
	DeleteBusinessAccount(ctx context.Context, accountID string) error

	// TransferOwnership rebinds the owner of an account. It does not validate
	// that the new owner is a registered user; that is the caller's contract.
	TransferOwnership(ctx context.Context, accountID string, newOwnerID int64) error

	// EnsureBankAccount creates the reserved bank account if it does not exist.
	// Idempotent; the initial balance applies only on first creation.
	EnsureBankAccount(ctx context.Context, ownerID int64, initialBalance decimal.Decimal) error
}
