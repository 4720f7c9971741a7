package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/company-portal/internal/domain"
)

// ReportRepository manages HR report records.
type ReportRepository interface {
	Create(ctx context.Context, report *domain.Report) error
	List(ctx context.Context) ([]domain.Report, error)
	Delete(ctx context.Context, id int64) error
}

type reportRepository struct {
	pool *pgxpool.Pool
}

// NewReportRepository instantiates repository.
func NewReportRepository(pool *pgxpool.Pool) ReportRepository {
	return &reportRepository{pool: pool}
}

func (r *reportRepository) Create(ctx context.Context, report *domain.Report) error {
	const query = `
        INSERT INTO reports (title, date, status)
        VALUES ($1,$2,$3)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		report.Title,
		report.Date,
		report.Status,
	).Scan(&report.ID, &report.CreatedAt)
}

func (r *reportRepository) List(ctx context.Context) ([]domain.Report, error) {
	const query = `
        SELECT id, title, date, status, created_at
        FROM reports ORDER BY id DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Report
	for rows.Next() {
		var report domain.Report
		if err := rows.Scan(&report.ID, &report.Title, &report.Date, &report.Status, &report.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, report)
	}
	return result, rows.Err()
}

func (r *reportRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM reports WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
