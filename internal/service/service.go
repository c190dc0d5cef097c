package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"hazardpoint/internal/domain"
	"hazardpoint/internal/lifecycle"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go
type HazardService interface {
	Create(ctx context.Context, ownerID uuid.UUID, req domain.CreateHazardRequest) (uuid.UUID, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.HazardView, error)
	List(ctx context.Context, page, limit int) (*domain.ListHazardsResponse, error)
	Feed(ctx context.Context, req domain.FeedRequest) ([]domain.HazardView, error)
}

// LifecycleService holds the mutating hazard lifecycle actions. Every method
// authenticates through the actor id supplied by the caller, checks the
// hazard's invariants before mutating, performs exactly one durable mutation
// and re-derives the display status for the response.
type LifecycleService interface {
	ExtendExpiration(ctx context.Context, hazardID, actor uuid.UUID) (*domain.ExpirationStatus, error)
	SubmitResolutionReport(ctx context.Context, hazardID, actor uuid.UUID, req domain.SubmitResolutionRequest) (uuid.UUID, error)
	ConfirmResolution(ctx context.Context, hazardID, actor uuid.UUID, vote domain.ConfirmationVote) (*domain.ResolutionOutcome, error)
	ExpirationStatus(ctx context.Context, hazardID uuid.UUID) (*domain.ExpirationStatus, error)
	ForceResolve(ctx context.Context, hazardID uuid.UUID, note string) (*domain.ForceResolveResponse, error)
}

type VoteService interface {
	Cast(ctx context.Context, hazardID, actor uuid.UUID, value domain.VoteValue) (*domain.VoteTally, error)
}

type StatsService interface {
	GetStats(ctx context.Context, req domain.StatsRequest) (*domain.LifecycleStats, error)
}

type HazardRepository interface {
	Create(ctx context.Context, hazard *domain.Hazard) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Hazard, error)
	List(ctx context.Context, page, limit int) ([]*domain.Hazard, int64, error)
	ListUnresolved(ctx context.Context) ([]*domain.Hazard, error)
	Extend(ctx context.Context, id uuid.UUID, increment time.Duration, now time.Time) (*domain.Hazard, error)
}

type ResolutionRepository interface {
	GetOpenReport(ctx context.Context, hazardID uuid.UUID) (*domain.ResolutionReport, error)
	CreateReport(ctx context.Context, report *domain.ResolutionReport) error
	Confirm(ctx context.Context, conf *domain.ResolutionConfirmation, quorum lifecycle.Quorum, note string, now time.Time) (*domain.ResolutionOutcome, error)
	Finalize(ctx context.Context, hazardID uuid.UUID, note string, resolvedAt time.Time) (bool, error)
}

type VoteRepository interface {
	Cast(ctx context.Context, hazardID, userID uuid.UUID, value domain.VoteValue, now time.Time) (*domain.VoteTally, error)
}

type StatsRepository interface {
	Collect(ctx context.Context, minutes int) (*domain.LifecycleStats, error)
}

type HazardCacheService interface {
	GetUnresolved(ctx context.Context) ([]*domain.Hazard, error)
	SetUnresolved(ctx context.Context, hazards []*domain.Hazard, ttl time.Duration) error
}

type WebhookQueue interface {
	Enqueue(ctx context.Context, payload domain.ResolutionWebhookPayload) error
}

// Clock supplies "now" to the services so the lifecycle rules stay
// deterministic under test. nil means time.Now in UTC.
type Clock func() time.Time

func orSystemClock(clock Clock) Clock {
	if clock == nil {
		return func() time.Time { return time.Now().UTC() }
	}
	return clock
}

type Service struct {
	HazardService    HazardService
	LifecycleService LifecycleService
	VoteService      VoteService
	StatsService     StatsService
}

func NewService(
	hazardService HazardService,
	lifecycleService LifecycleService,
	voteService VoteService,
	statsService StatsService,
) *Service {
	return &Service{
		HazardService:    hazardService,
		LifecycleService: lifecycleService,
		VoteService:      voteService,
		StatsService:     statsService,
	}
}
