package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/company-portal/internal/domain"
)

// DocumentRepository encapsulates document persistence. The relational row
// is the durability boundary; the semantic index copy is not managed here.
type DocumentRepository interface {
	Create(ctx context.Context, doc *domain.Document) error
	List(ctx context.Context, department *domain.Department) ([]domain.Document, error)
	Delete(ctx context.Context, id int64) (*domain.Document, error)
}

type documentRepository struct {
	pool *pgxpool.Pool
}

// NewDocumentRepository instantiates repository.
func NewDocumentRepository(pool *pgxpool.Pool) DocumentRepository {
	return &documentRepository{pool: pool}
}

func (r *documentRepository) Create(ctx context.Context, doc *domain.Document) error {
	const query = `
        INSERT INTO documents (department, title, content)
        VALUES ($1,$2,$3)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		doc.Department,
		doc.Title,
		doc.Content,
	).Scan(&doc.ID, &doc.CreatedAt)
}

func (r *documentRepository) List(ctx context.Context, department *domain.Department) ([]domain.Document, error) {
	const base = `
        SELECT id, department, title, content, created_at
        FROM documents`

	var (
		rows pgx.Rows
		err  error
	)
	if department != nil {
		rows, err = r.pool.Query(ctx, base+` WHERE department=$1 ORDER BY created_at DESC`, *department)
	} else {
		rows, err = r.pool.Query(ctx, base+` ORDER BY created_at DESC`)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Document
	for rows.Next() {
		var doc domain.Document
		if err := rows.Scan(&doc.ID, &doc.Department, &doc.Title, &doc.Content, &doc.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, doc)
	}
	return result, rows.Err()
}

// Delete removes the row and returns it. Returns pgx.ErrNoRows when absent.
func (r *documentRepository) Delete(ctx context.Context, id int64) (*domain.Document, error) {
	const query = `
        DELETE FROM documents WHERE id=$1
        RETURNING id, department, title, content, created_at`
	var doc domain.Document
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&doc.ID,
		&doc.Department,
		&doc.Title,
		&doc.Content,
		&doc.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &doc, nil
}
