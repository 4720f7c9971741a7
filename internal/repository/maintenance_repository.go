package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/company-portal/internal/domain"
)

// MaintenanceRepository manages scheduled IT maintenance windows.
type MaintenanceRepository interface {
	Create(ctx context.Context, m *domain.Maintenance) error
	List(ctx context.Context) ([]domain.Maintenance, error)
	Delete(ctx context.Context, id int64) error
}

type maintenanceRepository struct {
	pool *pgxpool.Pool
}

// NewMaintenanceRepository instantiates repository.
func NewMaintenanceRepository(pool *pgxpool.Pool) MaintenanceRepository {
	return &maintenanceRepository{pool: pool}
}

func (r *maintenanceRepository) Create(ctx context.Context, m *domain.Maintenance) error {
	const query = `
        INSERT INTO maintenance (title, description, date, status)
        VALUES ($1,$2,$3,$4)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		m.Title,
		m.Description,
		m.Date,
		m.Status,
	).Scan(&m.ID, &m.CreatedAt)
}

func (r *maintenanceRepository) List(ctx context.Context) ([]domain.Maintenance, error) {
	const query = `
        SELECT id, title, description, date, status, created_at
        FROM maintenance ORDER BY id DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Maintenance
	for rows.Next() {
		var m domain.Maintenance
		if err := rows.Scan(&m.ID, &m.Title, &m.Description, &m.Date, &m.Status, &m.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	return result, rows.Err()
}

func (r *maintenanceRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM maintenance WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
