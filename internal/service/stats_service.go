package service

import (
	"context"

	"github.com/spec-kit/company-portal/internal/domain"
	"github.com/spec-kit/company-portal/internal/repository"
)

// StatsService recomputes aggregate counts from the store on every call.
// No caching and no incremental maintenance: correctness by recomputation.
type StatsService struct {
	stats repository.StatsRepository
}

// NewStatsService constructs the service.
func NewStatsService(stats repository.StatsRepository) *StatsService {
	return &StatsService{stats: stats}
}

// Compute returns per-entity counts as of each individual count query.
func (s *StatsService) Compute(ctx context.Context) (*domain.Stats, error) {
	return s.stats.CountAll(ctx)
}
