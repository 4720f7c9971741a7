package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/company-portal/internal/domain"
)

// SystemRepository manages monitored IT systems.
type SystemRepository interface {
	Create(ctx context.Context, system *domain.System) error
	List(ctx context.Context) ([]domain.System, error)
	Delete(ctx context.Context, id int64) error
}

type systemRepository struct {
	pool *pgxpool.Pool
}

// NewSystemRepository instantiates repository.
func NewSystemRepository(pool *pgxpool.Pool) SystemRepository {
	return &systemRepository{pool: pool}
}

func (r *systemRepository) Create(ctx context.Context, system *domain.System) error {
	const query = `
        INSERT INTO systems (name, status, uptime, last_check)
        VALUES ($1,$2,$3,$4)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		system.Name,
		system.Status,
		system.Uptime,
		system.LastCheck,
	).Scan(&system.ID, &system.CreatedAt)
}

func (r *systemRepository) List(ctx context.Context) ([]domain.System, error) {
	const query = `
        SELECT id, name, status, uptime, last_check, created_at
        FROM systems ORDER BY id DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.System
	for rows.Next() {
		var system domain.System
		if err := rows.Scan(&system.ID, &system.Name, &system.Status, &system.Uptime, &system.LastCheck, &system.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, system)
	}
	return result, rows.Err()
}

func (r *systemRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM systems WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
