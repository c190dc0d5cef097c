package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"

	"hazardpoint/internal/domain"
	"hazardpoint/internal/lifecycle"
)

type HazardRepository interface {
	Create(ctx context.Context, hazard *domain.Hazard) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Hazard, error)
	List(ctx context.Context, page, limit int) ([]*domain.Hazard, int64, error)
	ListUnresolved(ctx context.Context) ([]*domain.Hazard, error)
	// Extend atomically moves expires_at forward by increment from
	// max(expires_at, now) and bumps extended_count, in one UPDATE.
	Extend(ctx context.Context, id uuid.UUID, increment time.Duration, now time.Time) (*domain.Hazard, error)
}

type ResolutionRepository interface {
	GetOpenReport(ctx context.Context, hazardID uuid.UUID) (*domain.ResolutionReport, error)
	CreateReport(ctx context.Context, report *domain.ResolutionReport) error
	// Confirm upserts the user's vote, recounts the round and, if quorum is
	// reached, finalizes the hazard — all inside one transaction.
	Confirm(ctx context.Context, conf *domain.ResolutionConfirmation, quorum lifecycle.Quorum, note string, now time.Time) (*domain.ResolutionOutcome, error)
	// Finalize sets resolved_at/resolution_note once; returns false when a
	// concurrent writer already resolved the hazard.
	Finalize(ctx context.Context, hazardID uuid.UUID, note string, resolvedAt time.Time) (bool, error)
}

type VoteRepository interface {
	Cast(ctx context.Context, hazardID, userID uuid.UUID, value domain.VoteValue, now time.Time) (*domain.VoteTally, error)
}

type StatsRepository interface {
	Collect(ctx context.Context, minutes int) (*domain.LifecycleStats, error)
}
