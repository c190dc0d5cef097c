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
	"hazardpoint/internal/lifecycle"
	"hazardpoint/pkg/e"
)

type ResolutionRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewResolutionRepo(pool *pgxpool.Pool, logger *slog.Logger) *ResolutionRepo {
	return &ResolutionRepo{pool: pool, logger: logger}
}

func (p *ResolutionRepo) GetOpenReport(ctx context.Context, hazardID uuid.UUID) (*domain.ResolutionReport, error) {
	const op = "postgres.Resolution.GetOpenReport"

	const query = `
		SELECT id, hazard_id, reporter_id, note, evidence_url, closed_at, created_at
		FROM resolution_reports
		WHERE hazard_id = $1 AND closed_at IS NULL
	`

	var r domain.ResolutionReport
	err := p.pool.QueryRow(ctx, query, hazardID).Scan(
		&r.ID,
		&r.HazardID,
		&r.ReporterID,
		&r.Note,
		&r.EvidenceURL,
		&r.ClosedAt,
		&r.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("hazard_id", hazardID.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return &r, nil
}

func (p *ResolutionRepo) CreateReport(ctx context.Context, report *domain.ResolutionReport) error {
	const op = "postgres.Resolution.CreateReport"

	const query = `
		INSERT INTO resolution_reports (id, hazard_id, reporter_id, note, evidence_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	if report.ID == uuid.Nil {
		report.ID = uuid.New()
	}
	if report.CreatedAt.IsZero() {
		report.CreatedAt = time.Now().UTC()
	}

	_, err := p.pool.Exec(ctx, query,
		report.ID,
		report.HazardID,
		report.ReporterID,
		report.Note,
		report.EvidenceURL,
		report.CreatedAt,
	)
	if err != nil {
		wrapped := e.WrapError(ctx, op, err)
		// The partial unique index on open reports turns a lost
		// check-then-insert race into a clean conflict.
		if errors.Is(wrapped, e.ErrUniqueViolation) {
			return fmt.Errorf("%s: %w", op, e.ErrConflict)
		}
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return wrapped
	}

	return nil
}

// Confirm records one user's vote and runs the quorum check in the same
// transaction. The report row is locked first so concurrent confirmations
// serialize and at most one of them observes itself finalizing the hazard.
func (p *ResolutionRepo) Confirm(ctx context.Context, conf *domain.ResolutionConfirmation, quorum lifecycle.Quorum, note string, now time.Time) (*domain.ResolutionOutcome, error) {
	const op = "postgres.Resolution.Confirm"

	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	defer tx.Rollback(ctx)

	var (
		hazardID uuid.UUID
		closedAt *time.Time
	)
	err = tx.QueryRow(ctx,
		`SELECT hazard_id, closed_at FROM resolution_reports WHERE id = $1 FOR UPDATE`,
		conf.ReportID,
	).Scan(&hazardID, &closedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		return nil, e.WrapError(ctx, op, err)
	}
	if closedAt != nil {
		// Votes after finality never move counts or resolved_at.
		return nil, fmt.Errorf("%s: report already finalized: %w", op, e.ErrConflict)
	}

	const upsert = `
		INSERT INTO resolution_confirmations (report_id, user_id, vote, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		ON CONFLICT (report_id, user_id)
		DO UPDATE SET vote = EXCLUDED.vote, updated_at = EXCLUDED.updated_at
	`
	if _, err := tx.Exec(ctx, upsert, conf.ReportID, conf.UserID, conf.Vote, now); err != nil {
		p.logger.Error("db upsert failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	var tally lifecycle.Tally
	err = tx.QueryRow(ctx, `
		SELECT COUNT(*) FILTER (WHERE vote = 'confirmed'),
		       COUNT(*) FILTER (WHERE vote = 'disputed')
		FROM resolution_confirmations
		WHERE report_id = $1
	`, conf.ReportID).Scan(&tally.Confirmed, &tally.Disputed)
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}

	outcome := &domain.ResolutionOutcome{
		ReportID:  conf.ReportID,
		Confirmed: tally.Confirmed,
		Disputed:  tally.Disputed,
	}

	if quorum.Reached(tally) {
		cmd, err := tx.Exec(ctx, `
			UPDATE hazards
			SET resolved_at = $2, resolution_note = $3
			WHERE id = $1 AND resolved_at IS NULL
		`, hazardID, now, note)
		if err != nil {
			return nil, e.WrapError(ctx, op, err)
		}
		if _, err := tx.Exec(ctx, `
			UPDATE resolution_reports
			SET closed_at = $2
			WHERE id = $1 AND closed_at IS NULL
		`, conf.ReportID, now); err != nil {
			return nil, e.WrapError(ctx, op, err)
		}
		if cmd.RowsAffected() == 1 {
			outcome.Finalized = true
			resolvedAt := now
			outcome.ResolvedAt = &resolvedAt
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}

	return outcome, nil
}

// Finalize is the moderator path. First committer wins: a false return means
// someone else already resolved the hazard.
func (p *ResolutionRepo) Finalize(ctx context.Context, hazardID uuid.UUID, note string, resolvedAt time.Time) (bool, error) {
	const op = "postgres.Resolution.Finalize"

	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return false, e.WrapError(ctx, op, err)
	}
	defer tx.Rollback(ctx)

	cmd, err := tx.Exec(ctx, `
		UPDATE hazards
		SET resolved_at = $2, resolution_note = $3
		WHERE id = $1 AND resolved_at IS NULL
	`, hazardID, resolvedAt, note)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", hazardID.String()))
		return false, e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return false, tx.Commit(ctx)
	}

	if _, err := tx.Exec(ctx, `
		UPDATE resolution_reports
		SET closed_at = $2
		WHERE hazard_id = $1 AND closed_at IS NULL
	`, hazardID, resolvedAt); err != nil {
		return false, e.WrapError(ctx, op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return false, e.WrapError(ctx, op, err)
	}
	return true, nil
}
