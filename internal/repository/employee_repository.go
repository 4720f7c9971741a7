package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/company-portal/internal/domain"
)

// EmployeeRepository manages the HR employee directory.
type EmployeeRepository interface {
	Create(ctx context.Context, emp *domain.Employee) error
	List(ctx context.Context) ([]domain.Employee, error)
	Delete(ctx context.Context, id int64) error
}

type employeeRepository struct {
	pool *pgxpool.Pool
}

// NewEmployeeRepository instantiates repository.
func NewEmployeeRepository(pool *pgxpool.Pool) EmployeeRepository {
	return &employeeRepository{pool: pool}
}

func (r *employeeRepository) Create(ctx context.Context, emp *domain.Employee) error {
	const query = `
        INSERT INTO employees (name, position, department, email)
        VALUES ($1,$2,$3,$4)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		emp.Name,
		emp.Position,
		emp.Department,
		emp.Email,
	).Scan(&emp.ID, &emp.CreatedAt)
}

func (r *employeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	const query = `
        SELECT id, name, position, department, email, created_at
        FROM employees ORDER BY id DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Employee
	for rows.Next() {
		var emp domain.Employee
		if err := rows.Scan(&emp.ID, &emp.Name, &emp.Position, &emp.Department, &emp.Email, &emp.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, emp)
	}
	return result, rows.Err()
}

func (r *employeeRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM employees WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
