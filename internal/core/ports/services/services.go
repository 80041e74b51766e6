package services

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/solenbank/solen_backend/internal/core/domain"
)

// LedgerSvcFacade exposes the balance-mutating protocol of the ledger.
type LedgerSvcFacade interface {
	// TransferFunds moves amount from one account to the other. Every call,
	// regardless of outcome, appends exactly one TransactionRecord; the record
	// for the attempt is returned alongside the error.
	TransferFunds(ctx context.Context, fromAccountID, toAccountID string, amount decimal.Decimal) (*domain.TransactionRecord, error)

	// AdjustAccountBalance applies a signed delta to a single account
	// (central-bank mint/burn).
	AdjustAccountBalance(ctx context.Context, accountID string, delta decimal.Decimal) error

	GetAccountBalance(ctx context.Context, accountID string) (decimal.Decimal, error)
}

// RegistrationSvcFacade mints personal accounts from single-use codes.
type RegistrationSvcFacade interface {
	RegisterUser(ctx context.Context, tgID int64, username, fullName, code string) (string, error)
	AddRegistrationCode(ctx context.Context, code string) error
}

// AccessControlSvcFacade resolves caller privileges and manages admin grants.
// It is a pure predicate/CRUD boundary: gating privileged operations on these
// predicates is the transport layer's contract, enforced once per route group.
type AccessControlSvcFacade interface {
	IsOwner(tgID int64) bool
	IsAdmin(ctx context.Context, tgID int64) (bool, error)
	IsAdminOrOwner(ctx context.Context, tgID int64) (bool, error)
	AddAdmin(ctx context.Context, tgID int64, name string) error
	RemoveAdmin(ctx context.Context, tgID int64) error
	ListAdmins(ctx context.Context) ([]domain.AdminGrant, error)
}

// AccountSvcFacade covers non-balance account operations.
type AccountSvcFacade interface {
	CreateBusinessAccount(ctx context.Context, ownerID int64, name string) (string, error)
	ListUserAccounts(ctx context.Context, ownerID int64) ([]domain.Account, error)

	// CanUseAccount reports whether the identity owns the account, optionally
	// requiring a specific variant. Missing accounts yield false, not an error.
	CanUseAccount(ctx context.Context, tgID int64, accountID string, requiredVariant *domain.AccountVariant) (bool, error)

	DeleteAccount(ctx context.Context, accountID string) error
	DeleteBusinessAccount(ctx context.Context, accountID string) error
	TransferOwnership(ctx context.Context, accountID string, newOwnerID int64) error
}

// UserSvcFacade covers read-side user queries.
type UserSvcFacade interface {
	GetUserByTelegramID(ctx context.Context, tgID int64) (*domain.User, error)
	GetUserByAccount(ctx context.Context, accountID string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// ServiceContainer bundles every service facade for route wiring.
type ServiceContainer struct {
	Ledger       LedgerSvcFacade
	Registration RegistrationSvcFacade
	Access       AccessControlSvcFacade
	Account      AccountSvcFacade
	User         UserSvcFacade
}
