package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/company-portal/internal/auth"
	"github.com/spec-kit/company-portal/internal/config"
	"github.com/spec-kit/company-portal/internal/repository"
	apperrors "github.com/spec-kit/company-portal/pkg/util"
)

// AuthService checks the static credential table and issues tokens.
type AuthService struct {
	credentials repository.CredentialRepository
	tokens      *auth.TokenManager
}

// NewAuthService constructs the service.
func NewAuthService(cfg config.AuthConfig, credentials repository.CredentialRepository) *AuthService {
	return &AuthService{
		credentials: credentials,
		tokens:      auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTLMinutes),
	}
}

// Login verifies the credential and returns a signed token.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	cred, err := s.credentials.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
		}
		return "", time.Time{}, err
	}
	if err := auth.ComparePassword(cred.PasswordHash, password); err != nil {
		return "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
	}
	return s.tokens.GenerateToken(cred.Username)
}

// TokenManager exposes the manager for middleware wiring.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokens
}
