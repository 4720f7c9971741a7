package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/company-portal/internal/domain"
)

// StatsRepository derives per-entity counts on demand. Each table is counted
// with its own query and no surrounding transaction, so the resulting set may
// be torn under concurrent writes.
type StatsRepository interface {
	CountAll(ctx context.Context) (*domain.Stats, error)
}

type statsRepository struct {
	pool *pgxpool.Pool
}

// NewStatsRepository instantiates repository.
func NewStatsRepository(pool *pgxpool.Pool) StatsRepository {
	return &statsRepository{pool: pool}
}

func (r *statsRepository) CountAll(ctx context.Context) (*domain.Stats, error) {
	var stats domain.Stats
	counts := []struct {
		table string
		dest  *int64
	}{
		{"employees", &stats.HR.Employees},
		{"policies", &stats.HR.Policies},
		{"reports", &stats.HR.Reports},
		{"tickets", &stats.IT.Tickets},
		{"systems", &stats.IT.Systems},
		{"maintenance", &stats.IT.Maintenance},
		{"change_requests", &stats.ChangeRequests},
		{"documents", &stats.Documents},
	}

	for _, c := range counts {
		if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM `+c.table).Scan(c.dest); err != nil {
			return nil, err
		}
	}
	return &stats, nil
}
