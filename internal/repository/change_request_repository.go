package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/company-portal/internal/domain"
)

// ChangeRequestRepository encapsulates change-request persistence.
type ChangeRequestRepository interface {
	Create(ctx context.Context, req *domain.ChangeRequest) error
	GetByID(ctx context.Context, id int64) (*domain.ChangeRequest, error)
	List(ctx context.Context, department *domain.Department) ([]domain.ChangeRequest, error)
	UpdateStatus(ctx context.Context, req *domain.ChangeRequest) error
}

type changeRequestRepository struct {
	pool *pgxpool.Pool
}

// NewChangeRequestRepository instantiates repository.
func NewChangeRequestRepository(pool *pgxpool.Pool) ChangeRequestRepository {
	return &changeRequestRepository{pool: pool}
}

func (r *changeRequestRepository) Create(ctx context.Context, req *domain.ChangeRequest) error {
	const query = `
        INSERT INTO change_requests (department, type, description, status, requested_by)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		req.Department,
		req.Type,
		req.Description,
		req.Status,
		req.RequestedBy,
	).Scan(&req.ID, &req.CreatedAt)
}

func (r *changeRequestRepository) GetByID(ctx context.Context, id int64) (*domain.ChangeRequest, error) {
	const query = `
        SELECT id, department, type, description, status, requested_by, notes, created_at, completed_at
        FROM change_requests WHERE id=$1`
	var req domain.ChangeRequest
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&req.ID,
		&req.Department,
		&req.Type,
		&req.Description,
		&req.Status,
		&req.RequestedBy,
		&req.Notes,
		&req.CreatedAt,
		&req.CompletedAt,
	); err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *changeRequestRepository) List(ctx context.Context, department *domain.Department) ([]domain.ChangeRequest, error) {
	const base = `
        SELECT id, department, type, description, status, requested_by, notes, created_at, completed_at
        FROM change_requests`

	var (
		rows pgx.Rows
		err  error
	)
	if department != nil {
		rows, err = r.pool.Query(ctx, base+` WHERE department=$1 ORDER BY id DESC`, *department)
	} else {
		rows, err = r.pool.Query(ctx, base+` ORDER BY id DESC`)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.ChangeRequest
	for rows.Next() {
		var req domain.ChangeRequest
		if err := rows.Scan(
			&req.ID,
			&req.Department,
			&req.Type,
			&req.Description,
			&req.Status,
			&req.RequestedBy,
			&req.Notes,
			&req.CreatedAt,
			&req.CompletedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, req)
	}
	return result, rows.Err()
}

// UpdateStatus writes status, notes and completed_at. Concurrent legal
// transitions race last-write-wins at this layer.
func (r *changeRequestRepository) UpdateStatus(ctx context.Context, req *domain.ChangeRequest) error {
	const query = `
        UPDATE change_requests SET status=$1, notes=$2, completed_at=$3
        WHERE id=$4`
	cmd, err := r.pool.Exec(ctx, query,
		req.Status,
		req.Notes,
		req.CompletedAt,
		req.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
