package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/solenbank/solen_backend/internal/apperrors"
	"github.com/solenbank/solen_backend/internal/core/domain"
	portsrepo "github.com/solenbank/solen_backend/internal/core/ports/repositories"
	"github.com/solenbank/solen_backend/internal/models"
)

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(pool *pgxpool.Pool) *PgxUserRepository {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.UserRepository = (*PgxUserRepository)(nil)

func toDomainUser(m models.User) domain.User {
	return domain.User{
		TelegramID:        m.TelegramID,
		Username:          m.Username,
		FullName:          m.FullName,
		PersonalAccountID: m.PersonalAccount,
	}
}

// RegisterUser redeems a registration code and mints the identity's personal
// account. The code lookup, duplicate check, code consumption, account
// generation and user insert all share one transaction; any failure rolls the
// whole attempt back, leaving the code unredeemed.
func (r *PgxUserRepository) RegisterUser(ctx context.Context, tgID int64, username, fullName, code string) (string, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return "", err
	}
	defer r.Rollback(ctx, tx)

	// Lock the code row so two concurrent redemptions of the same code
	// serialize here; the loser sees it gone.
	var got string
	err = tx.QueryRow(ctx, `SELECT code FROM register_codes WHERE code = $1 FOR UPDATE;`, code).Scan(&got)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrInvalidCode
		}
		return "", fmt.Errorf("failed to look up registration code: %w", err)
	}

	var exists bool
	err = tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE tg_id = $1);`, tgID).Scan(&exists)
	if err != nil {
		return "", fmt.Errorf("failed to check existing user %d: %w", tgID, err)
	}
	if exists {
		return "", apperrors.ErrAlreadyRegistered
	}

	if _, err := tx.Exec(ctx, `DELETE FROM register_codes WHERE code = $1;`, code); err != nil {
		return "", fmt.Errorf("failed to consume registration code: %w", err)
	}

	accountID, err := createAccount(ctx, tx, tgID, domain.Personal, fullName)
	if err != nil {
		return "", err
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO users (tg_id, username, full_name, personal_account) VALUES ($1, $2, $3, $4);`,
		tgID, username, fullName, accountID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return "", apperrors.ErrAlreadyRegistered
		}
		return "", fmt.Errorf("failed to insert user %d: %w", tgID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return "", fmt.Errorf("failed to commit registration: %w", err)
	}
	return accountID, nil
}

func (r *PgxUserRepository) FindUserByTelegramID(ctx context.Context, tgID int64) (*domain.User, error) {
	query := `SELECT tg_id, username, full_name, personal_account FROM users WHERE tg_id = $1;`
	var m models.User
	err := r.Pool.QueryRow(ctx, query, tgID).Scan(&m.TelegramID, &m.Username, &m.FullName, &m.PersonalAccount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: user %d", apperrors.ErrNotFound, tgID)
		}
		return nil, fmt.Errorf("failed to find user %d: %w", tgID, err)
	}
	u := toDomainUser(m)
	return &u, nil
}

// FindUserByAccount resolves an account to its owning user. An account whose
// owner never registered (possible after an ownership transfer) yields a thin
// view carrying only the owner identity.
func (r *PgxUserRepository) FindUserByAccount(ctx context.Context, accountID string) (*domain.User, error) {
	var ownerID int64
	err := r.Pool.QueryRow(ctx, `SELECT owner_tg_id FROM accounts WHERE account_id = $1;`, accountID).Scan(&ownerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
		}
		return nil, fmt.Errorf("failed to resolve owner of %s: %w", accountID, err)
	}

	u, err := r.FindUserByTelegramID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return &domain.User{TelegramID: ownerID}, nil
		}
		return nil, err
	}
	return u, nil
}

func (r *PgxUserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	query := `
		SELECT u.tg_id, u.username, u.full_name, a.account_id
		FROM users u
		JOIN accounts a ON a.owner_tg_id = u.tg_id AND a.type = $1
		ORDER BY u.full_name NULLS LAST;
	`
	rows, err := r.Pool.Query(ctx, query, string(domain.Personal))
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		var m models.User
		if err := rows.Scan(&m.TelegramID, &m.Username, &m.FullName, &m.PersonalAccount); err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, toDomainUser(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}
	return users, nil
}
