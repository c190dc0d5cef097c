package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"hazardpoint/internal/domain"
	"hazardpoint/pkg/e"
)

type StatsRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewStatsRepo(pool *pgxpool.Pool, logger *slog.Logger) *StatsRepo {
	return &StatsRepo{pool: pool, logger: logger}
}

func (p *StatsRepo) Collect(ctx context.Context, minutes int) (*domain.LifecycleStats, error) {
	const op = "postgres.Stats.Collect"

	if minutes <= 0 || minutes > 1440 {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	const query = `
		SELECT (SELECT COUNT(*) FROM hazards),
		       (SELECT COUNT(*) FROM hazards WHERE resolved_at IS NOT NULL),
		       (SELECT COUNT(*) FROM hazards WHERE resolved_at >= NOW() - ($1 * INTERVAL '1 minute')),
		       (SELECT COUNT(*) FROM resolution_reports WHERE closed_at IS NULL)
	`

	stats := &domain.LifecycleStats{Minutes: minutes}
	err := p.pool.QueryRow(ctx, query, minutes).Scan(
		&stats.TotalHazards,
		&stats.Resolved,
		&stats.ResolvedRecent,
		&stats.OpenReports,
	)
	if err != nil {
		p.logger.Error("db queryrow scan failed",
			slog.String("op", op),
			slog.Any("error", err),
			slog.Int("minutes", minutes),
		)
		return nil, e.WrapError(ctx, op, err)
	}

	return stats, nil
}
