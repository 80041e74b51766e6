package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/solenbank/solen_backend/internal/apperrors"
	"github.com/solenbank/solen_backend/internal/core/domain"
	portsrepo "github.com/solenbank/solen_backend/internal/core/ports/repositories"
	"github.com/solenbank/solen_backend/internal/models"
)

type PgxAdminRepository struct {
	BaseRepository
}

func newPgxAdminRepository(pool *pgxpool.Pool) *PgxAdminRepository {
	return &PgxAdminRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AdminRepository = (*PgxAdminRepository)(nil)

func (r *PgxAdminRepository) UpsertAdmin(ctx context.Context, tgID int64, name string) error {
	query := `
		INSERT INTO admins (tg_id, name) VALUES ($1, $2)
		ON CONFLICT (tg_id) DO UPDATE SET name = EXCLUDED.name;
	`
	if _, err := r.Pool.Exec(ctx, query, tgID, name); err != nil {
		return fmt.Errorf("failed to upsert admin %d: %w", tgID, err)
	}
	return nil
}

func (r *PgxAdminRepository) RemoveAdmin(ctx context.Context, tgID int64) error {
	ct, err := r.Pool.Exec(ctx, `DELETE FROM admins WHERE tg_id = $1;`, tgID)
	if err != nil {
		return fmt.Errorf("failed to remove admin %d: %w", tgID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%w: admin %d", apperrors.ErrNotFound, tgID)
	}
	return nil
}

func (r *PgxAdminRepository) ListAdmins(ctx context.Context) ([]domain.AdminGrant, error) {
	rows, err := r.Pool.Query(ctx, `SELECT tg_id, name FROM admins ORDER BY name NULLS LAST;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query admins: %w", err)
	}
	defer rows.Close()

	grants := []domain.AdminGrant{}
	for rows.Next() {
		var m models.Admin
		if err := rows.Scan(&m.TelegramID, &m.Name); err != nil {
			return nil, fmt.Errorf("failed to scan admin row: %w", err)
		}
		grants = append(grants, domain.AdminGrant{TelegramID: m.TelegramID, Name: m.Name})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating admin rows: %w", err)
	}
	return grants, nil
}

func (r *PgxAdminRepository) IsAdmin(ctx context.Context, tgID int64) (bool, error) {
	var isAdmin bool
	err := r.Pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM admins WHERE tg_id = $1);`, tgID).Scan(&isAdmin)
	if err != nil {
		return false, fmt.Errorf("failed to check admin %d: %w", tgID, err)
	}
	return isAdmin, nil
}
