package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/company-portal/internal/domain"
)

// CredentialRepository reads the static portal login table.
type CredentialRepository interface {
	GetByUsername(ctx context.Context, username string) (*domain.Credential, error)
}

type credentialRepository struct {
	pool *pgxpool.Pool
}

// NewCredentialRepository instantiates repository.
func NewCredentialRepository(pool *pgxpool.Pool) CredentialRepository {
	return &credentialRepository{pool: pool}
}

func (r *credentialRepository) GetByUsername(ctx context.Context, username string) (*domain.Credential, error) {
	const query = `
        SELECT id, username, password_hash, created_at
        FROM credentials WHERE username=$1`
	var cred domain.Credential
	if err := r.pool.QueryRow(ctx, query, username).Scan(
		&cred.ID,
		&cred.Username,
		&cred.PasswordHash,
		&cred.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &cred, nil
}
