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

type VoteRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewVoteRepo(pool *pgxpool.Pool, logger *slog.Logger) *VoteRepo {
	return &VoteRepo{pool: pool, logger: logger}
}

// Cast applies toggle-upsert semantics for the (hazard, user) key: no prior
// vote inserts, the same value toggles off, the opposite value flips. Counter
// adjustment and the vote row change commit together; the existing row is
// locked so rapid toggles from one user serialize.
func (p *VoteRepo) Cast(ctx context.Context, hazardID, userID uuid.UUID, value domain.VoteValue, now time.Time) (*domain.VoteTally, error) {
	const op = "postgres.Vote.Cast"

	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	defer tx.Rollback(ctx)

	var prior domain.VoteValue
	hasPrior := true
	err = tx.QueryRow(ctx,
		`SELECT value FROM hazard_votes WHERE hazard_id = $1 AND user_id = $2 FOR UPDATE`,
		hazardID, userID,
	).Scan(&prior)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, e.WrapError(ctx, op, err)
		}
		hasPrior = false
	}

	var userVote domain.VoteValue
	var upDelta, downDelta int

	switch {
	case !hasPrior:
		if _, err := tx.Exec(ctx,
			`INSERT INTO hazard_votes (hazard_id, user_id, value, created_at) VALUES ($1, $2, $3, $4)`,
			hazardID, userID, value, now,
		); err != nil {
			return nil, e.WrapError(ctx, op, err)
		}
		userVote = value
		upDelta, downDelta = deltas(value, +1)

	case prior == value:
		// Toggle off.
		if _, err := tx.Exec(ctx,
			`DELETE FROM hazard_votes WHERE hazard_id = $1 AND user_id = $2`,
			hazardID, userID,
		); err != nil {
			return nil, e.WrapError(ctx, op, err)
		}
		upDelta, downDelta = deltas(value, -1)

	default:
		// Flip: the tally moves, it never double-counts.
		if _, err := tx.Exec(ctx,
			`UPDATE hazard_votes SET value = $3, created_at = $4 WHERE hazard_id = $1 AND user_id = $2`,
			hazardID, userID, value, now,
		); err != nil {
			return nil, e.WrapError(ctx, op, err)
		}
		userVote = value
		oldUp, oldDown := deltas(prior, -1)
		newUp, newDown := deltas(value, +1)
		upDelta, downDelta = oldUp+newUp, oldDown+newDown
	}

	tally := &domain.VoteTally{HazardID: hazardID, UserVote: userVote}
	err = tx.QueryRow(ctx, `
		UPDATE hazards
		SET upvotes = upvotes + $2, downvotes = downvotes + $3
		WHERE id = $1
		RETURNING upvotes, downvotes
	`, hazardID, upDelta, downDelta).Scan(&tally.Upvotes, &tally.Downvotes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db counter update failed", slog.String("op", op), slog.Any("error", err), slog.String("hazard_id", hazardID.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}

	return tally, nil
}

func deltas(value domain.VoteValue, sign int) (up, down int) {
	if value == domain.VoteUp {
		return sign, 0
	}
	return 0, sign
}
