package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/solenbank/solen_backend/internal/apperrors"
	portsrepo "github.com/solenbank/solen_backend/internal/core/ports/repositories"
)

type PgxRegistrationCodeRepository struct {
	BaseRepository
}

func newPgxRegistrationCodeRepository(pool *pgxpool.Pool) *PgxRegistrationCodeRepository {
	return &PgxRegistrationCodeRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.RegistrationCodeRepository = (*PgxRegistrationCodeRepository)(nil)

func (r *PgxRegistrationCodeRepository) AddCode(ctx context.Context, code string) error {
	_, err := r.Pool.Exec(ctx, `INSERT INTO register_codes (code) VALUES ($1);`, code)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicateCode
		}
		return fmt.Errorf("failed to insert registration code: %w", err)
	}
	return nil
}
