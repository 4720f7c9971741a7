package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/company-portal/internal/domain"
)

// PolicyRepository manages HR policy records.
type PolicyRepository interface {
	Create(ctx context.Context, policy *domain.Policy) error
	List(ctx context.Context) ([]domain.Policy, error)
	Delete(ctx context.Context, id int64) error
}

type policyRepository struct {
	pool *pgxpool.Pool
}

// NewPolicyRepository instantiates repository.
func NewPolicyRepository(pool *pgxpool.Pool) PolicyRepository {
	return &policyRepository{pool: pool}
}

func (r *policyRepository) Create(ctx context.Context, policy *domain.Policy) error {
	const query = `
        INSERT INTO policies (title, content, status)
        VALUES ($1,$2,$3)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		policy.Title,
		policy.Content,
		policy.Status,
	).Scan(&policy.ID, &policy.CreatedAt)
}

func (r *policyRepository) List(ctx context.Context) ([]domain.Policy, error) {
	const query = `
        SELECT id, title, content, status, created_at
        FROM policies ORDER BY id DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Policy
	for rows.Next() {
		var policy domain.Policy
		if err := rows.Scan(&policy.ID, &policy.Title, &policy.Content, &policy.Status, &policy.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, policy)
	}
	return result, rows.Err()
}

func (r *policyRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM policies WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
