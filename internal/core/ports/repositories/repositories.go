package repositories

import (
	"context"

	"github.com/solenbank/solen_backend/internal/core/domain"
)

// RegistrationCodeRepository stores unredeemed registration codes.
// Redemption happens inside UserRepository.RegisterUser, not here.
type RegistrationCodeRepository interface {
	// AddCode inserts a new code. Fails with apperrors.ErrDuplicateCode if the
	// code already exists.
	AddCode(ctx context.Context, code string) error
}

// TransactionRepository is the append-only audit log of transfer attempts.
// There is deliberately no update or delete operation.
type TransactionRepository interface {
	AppendTransaction(ctx context.Context, record domain.TransactionRecord) error
}

// AdminRepository stores administrator grants.
type AdminRepository interface {
	// UpsertAdmin adds a grant, or refreshes the display name if the identity
	// is already an admin.
	UpsertAdmin(ctx context.Context, tgID int64, name string) error
	RemoveAdmin(ctx context.Context, tgID int64) error
	ListAdmins(ctx context.Context) ([]domain.AdminGrant, error)
	IsAdmin(ctx context.Context, tgID int64) (bool, error)
}

// RepositoryProvider bundles every repository implementation for wiring.
type RepositoryProvider struct {
	AccountRepo AccountRepository
	UserRepo    UserRepository
	CodeRepo    RegistrationCodeRepository
	TxnRepo     TransactionRepository
	AdminRepo   AdminRepository
}
