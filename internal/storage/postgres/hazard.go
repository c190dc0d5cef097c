package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hazardpoint/internal/domain"
	"hazardpoint/pkg/e"
)

const hazardColumns = `id, owner_id, category, severity, lat, lng,
	   expiration_type, expires_at, extended_count, seasonal_months,
	   timezone, resolved_at, resolution_note, upvotes, downvotes, created_at`

type HazardRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewHazardRepo(pool *pgxpool.Pool, logger *slog.Logger) *HazardRepo {
	return &HazardRepo{pool: pool, logger: logger}
}

func scanHazard(row pgx.Row) (*domain.Hazard, error) {
	var h domain.Hazard
	err := row.Scan(
		&h.ID,
		&h.OwnerID,
		&h.Category,
		&h.Severity,
		&h.Lat,
		&h.Lng,
		&h.ExpirationType,
		&h.ExpiresAt,
		&h.ExtendedCount,
		&h.SeasonalMonths,
		&h.Timezone,
		&h.ResolvedAt,
		&h.ResolutionNote,
		&h.Upvotes,
		&h.Downvotes,
		&h.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (p *HazardRepo) Create(ctx context.Context, hazard *domain.Hazard) error {
	const op = "postgres.Hazard.Create"

	query := `
		INSERT INTO hazards (id, owner_id, category, severity, lat, lng,
				     expiration_type, expires_at, extended_count,
				     seasonal_months, timezone, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 0, $9, $10, $11)
	`

	if hazard.ID == uuid.Nil {
		hazard.ID = uuid.New()
	}
	if hazard.CreatedAt.IsZero() {
		hazard.CreatedAt = time.Now().UTC()
	}
	if hazard.Timezone == "" {
		hazard.Timezone = "UTC"
	}

	_, err := p.pool.Exec(ctx, query,
		hazard.ID,
		hazard.OwnerID,
		hazard.Category,
		hazard.Severity,
		hazard.Lat,
		hazard.Lng,
		hazard.ExpirationType,
		hazard.ExpiresAt,
		hazard.SeasonalMonths,
		hazard.Timezone,
		hazard.CreatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed",
			slog.String("op", op),
			slog.Any("error", err),
		)
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *HazardRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Hazard, error) {
	const op = "postgres.Hazard.Get"

	query := `SELECT ` + hazardColumns + ` FROM hazards WHERE id = $1`

	h, err := scanHazard(p.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return h, nil
}

func (p *HazardRepo) List(ctx context.Context, page, limit int) ([]*domain.Hazard, int64, error) {
	const op = "postgres.Hazard.List"

	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	const countQuery = `SELECT COUNT(*) FROM hazards`

	var total int64
	if err := p.pool.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		p.logger.Error("db count failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	listQuery := `SELECT ` + hazardColumns + `
		FROM hazards
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	rows, err := p.pool.Query(ctx, listQuery, limit, offset)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var hazards []*domain.Hazard
	for rows.Next() {
		h, err := scanHazard(rows)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, 0, e.WrapError(ctx, op, err)
		}
		hazards = append(hazards, h)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	return hazards, total, nil
}

// ListUnresolved returns every hazard that could still display as active;
// the caller derives the actual status per read.
func (p *HazardRepo) ListUnresolved(ctx context.Context) ([]*domain.Hazard, error) {
	const op = "postgres.Hazard.ListUnresolved"

	query := `SELECT ` + hazardColumns + ` FROM hazards WHERE resolved_at IS NULL`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var hazards []*domain.Hazard
	for rows.Next() {
		h, err := scanHazard(rows)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		hazards = append(hazards, h)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return hazards, nil
}

// Extend compounds from the stored deadline when it is still in the future
// and from now when it has already passed, so a late extension always lands
// in the future. Single UPDATE, so concurrent extensions both apply.
func (p *HazardRepo) Extend(ctx context.Context, id uuid.UUID, increment time.Duration, now time.Time) (*domain.Hazard, error) {
	const op = "postgres.Hazard.Extend"

	query := `
		UPDATE hazards
		SET expires_at     = GREATEST(expires_at, $2::timestamptz) + make_interval(secs => $3),
		    extended_count = extended_count + 1
		WHERE id = $1 AND expiration_type = 'auto_expire'
		RETURNING ` + hazardColumns

	h, err := scanHazard(p.pool.QueryRow(ctx, query, id, now, increment.Seconds()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db update failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return h, nil
}
