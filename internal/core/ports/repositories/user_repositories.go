package repositories

import (
	"context"

	"github.com/solenbank/solen_backend/internal/core/domain"
)

// UserRepository is the persistence boundary for registered users.
type UserRepository interface {
	// RegisterUser redeems a registration code for an external identity and
	// returns the id of the freshly minted personal account. Code validation,
	// duplicate-identity check, code consumption, account generation and user
	// creation all happen in one transaction; a failure at any step leaves no
	// partial artifact. Fails with apperrors.ErrInvalidCode if the code does
	// not exist and apperrors.ErrAlreadyRegistered if the identity already
	// has a user record.
	RegisterUser(ctx context.Context, tgID int64, username, fullName, code string) (string, error)

	FindUserByTelegramID(ctx context.Context, tgID int64) (*domain.User, error)

	// FindUserByAccount resolves an account id to the owning user. If the
	// account exists but its owner has no user record (e.g. a business account
	// handed to an unregistered identity), a thin view carrying only the
	// TelegramID is returned.
	FindUserByAccount(ctx context.Context, accountID string) (*domain.User, error)

	// ListUsers returns every registered user with their personal account,
	// ordered by full name.
	ListUsers(ctx context.Context) ([]domain.User, error)
}
