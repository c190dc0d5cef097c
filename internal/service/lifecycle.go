package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"hazardpoint/internal/domain"
	"hazardpoint/internal/lifecycle"
	"hazardpoint/pkg/e"
)

type lifecycleService struct {
	hazards     HazardRepository
	resolutions ResolutionRepository
	queue       WebhookQueue
	logger      *slog.Logger
	clock       Clock
	quorum      lifecycle.Quorum
	increment   time.Duration
}

func NewLifecycleService(
	hazards HazardRepository,
	resolutions ResolutionRepository,
	queue WebhookQueue,
	logger *slog.Logger,
	clock Clock,
	quorumThreshold int,
	extendIncrement time.Duration,
) LifecycleService {
	if extendIncrement <= 0 {
		extendIncrement = 24 * time.Hour
	}
	return &lifecycleService{
		hazards:     hazards,
		resolutions: resolutions,
		queue:       queue,
		logger:      logger,
		clock:       orSystemClock(clock),
		quorum:      lifecycle.NewQuorum(quorumThreshold),
		increment:   extendIncrement,
	}
}

// ExtendExpiration pushes an auto_expire hazard's deadline forward by the
// configured increment. Owner-only. The increment compounds from the stored
// deadline (or from now when the deadline already passed) in a single atomic
// UPDATE, so concurrent extensions never lose an update.
func (s *lifecycleService) ExtendExpiration(ctx context.Context, hazardID, actor uuid.UUID) (*domain.ExpirationStatus, error) {
	const op = "service.Lifecycle.ExtendExpiration"

	h, err := s.hazards.Get(ctx, hazardID)
	if err != nil {
		return nil, err
	}
	if h.OwnerID != actor {
		return nil, fmt.Errorf("%s: only the owner may extend: %w", op, e.ErrForbidden)
	}
	if h.ExpirationType != domain.ExpirationAutoExpire {
		return nil, fmt.Errorf("%s: %s hazards cannot be extended: %w", op, h.ExpirationType, e.ErrInvalidState)
	}

	updated, err := s.hazards.Extend(ctx, hazardID, s.increment, s.clock())
	if err != nil {
		return nil, err
	}

	s.logger.Info("expiration extended",
		slog.String("hazard_id", hazardID.String()),
		slog.Int("extended_count", updated.ExtendedCount),
		slog.Time("expires_at", *updated.ExpiresAt),
	)
	return s.status(updated)
}

// SubmitResolutionReport opens a resolution claim against a user_resolvable
// hazard. Only third parties may attest; at most one open report exists at a
// time (backed by a partial unique index, so the check-then-insert race
// still resolves to a clean conflict).
func (s *lifecycleService) SubmitResolutionReport(ctx context.Context, hazardID, actor uuid.UUID, req domain.SubmitResolutionRequest) (uuid.UUID, error) {
	const op = "service.Lifecycle.SubmitResolutionReport"

	h, err := s.hazards.Get(ctx, hazardID)
	if err != nil {
		return uuid.Nil, err
	}
	if h.ExpirationType != domain.ExpirationUserResolvable {
		return uuid.Nil, fmt.Errorf("%s: %s hazards are not user-resolvable: %w", op, h.ExpirationType, e.ErrInvalidState)
	}
	if h.ResolvedAt != nil {
		return uuid.Nil, fmt.Errorf("%s: hazard already resolved: %w", op, e.ErrConflict)
	}
	if h.OwnerID == actor {
		return uuid.Nil, fmt.Errorf("%s: owners cannot report their own hazard resolved: %w", op, e.ErrForbidden)
	}

	if _, err := s.resolutions.GetOpenReport(ctx, hazardID); err == nil {
		return uuid.Nil, fmt.Errorf("%s: open report already exists: %w", op, e.ErrConflict)
	} else if !errors.Is(err, e.ErrNotFound) {
		return uuid.Nil, err
	}

	report := &domain.ResolutionReport{
		ID:          uuid.New(),
		HazardID:    hazardID,
		ReporterID:  actor,
		Note:        req.Note,
		EvidenceURL: req.EvidenceURL,
		CreatedAt:   s.clock(),
	}
	if err := s.resolutions.CreateReport(ctx, report); err != nil {
		return uuid.Nil, err
	}

	s.logger.Info("resolution report submitted",
		slog.String("hazard_id", hazardID.String()),
		slog.String("report_id", report.ID.String()),
	)
	return report.ID, nil
}

// ConfirmResolution upserts the actor's vote on the open report and runs the
// quorum check transactionally; when the threshold is met the hazard's
// resolution finalizes in the same transaction as the vote.
func (s *lifecycleService) ConfirmResolution(ctx context.Context, hazardID, actor uuid.UUID, vote domain.ConfirmationVote) (*domain.ResolutionOutcome, error) {
	const op = "service.Lifecycle.ConfirmResolution"

	h, err := s.hazards.Get(ctx, hazardID)
	if err != nil {
		return nil, err
	}
	if h.ExpirationType != domain.ExpirationUserResolvable {
		return nil, fmt.Errorf("%s: %s hazards are not user-resolvable: %w", op, h.ExpirationType, e.ErrInvalidState)
	}
	if h.ResolvedAt != nil {
		return nil, fmt.Errorf("%s: hazard already resolved: %w", op, e.ErrConflict)
	}
	if h.OwnerID == actor {
		return nil, fmt.Errorf("%s: owners cannot vote on their own hazard: %w", op, e.ErrForbidden)
	}

	report, err := s.resolutions.GetOpenReport(ctx, hazardID)
	if err != nil {
		return nil, err
	}
	if report.ReporterID == actor {
		return nil, fmt.Errorf("%s: report authors cannot vote on their own report: %w", op, e.ErrForbidden)
	}

	now := s.clock()
	conf := &domain.ResolutionConfirmation{
		ReportID:  report.ID,
		UserID:    actor,
		Vote:      vote,
		CreatedAt: now,
		UpdatedAt: now,
	}

	outcome, err := s.resolutions.Confirm(ctx, conf, s.quorum, report.Note, now)
	if err != nil {
		return nil, err
	}

	if outcome.Finalized {
		s.logger.Info("hazard resolved by quorum",
			slog.String("hazard_id", hazardID.String()),
			slog.String("report_id", report.ID.String()),
			slog.Int("confirmed", outcome.Confirmed),
		)
		s.notifyResolved(ctx, hazardID, report.ID, report.Note, outcome)
	}

	return outcome, nil
}

func (s *lifecycleService) ExpirationStatus(ctx context.Context, hazardID uuid.UUID) (*domain.ExpirationStatus, error) {
	h, err := s.hazards.Get(ctx, hazardID)
	if err != nil {
		return nil, err
	}
	return s.status(h)
}

// ForceResolve is the moderator path: first committer wins, resolving an
// already-resolved hazard is a conflict.
func (s *lifecycleService) ForceResolve(ctx context.Context, hazardID uuid.UUID, note string) (*domain.ForceResolveResponse, error) {
	const op = "service.Lifecycle.ForceResolve"

	h, err := s.hazards.Get(ctx, hazardID)
	if err != nil {
		return nil, err
	}
	if h.ExpirationType == domain.ExpirationPermanent {
		return nil, fmt.Errorf("%s: permanent hazards cannot be resolved: %w", op, e.ErrInvalidState)
	}

	resolvedAt := s.clock()
	ok, err := s.resolutions.Finalize(ctx, hazardID, note, resolvedAt)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%s: hazard already resolved: %w", op, e.ErrConflict)
	}

	s.logger.Info("hazard force-resolved", slog.String("hazard_id", hazardID.String()))
	return &domain.ForceResolveResponse{ResolvedAt: resolvedAt}, nil
}

func (s *lifecycleService) status(h *domain.Hazard) (*domain.ExpirationStatus, error) {
	status, err := lifecycle.Evaluate(h, s.clock(), lifecycle.Location(h.Timezone))
	if err != nil {
		// A stored-invariant fault: still report the defensive status but
		// let the caller know the row is damaged.
		s.logger.Error("hazard evaluation fault", slog.String("hazard_id", h.ID.String()), slog.Any("error", err))
		return nil, err
	}
	return &domain.ExpirationStatus{
		HazardID:       h.ID,
		Status:         status,
		ExpirationType: h.ExpirationType,
		ExpiresAt:      h.ExpiresAt,
		ExtendedCount:  h.ExtendedCount,
		ResolvedAt:     h.ResolvedAt,
		ResolutionNote: h.ResolutionNote,
		Upvotes:        h.Upvotes,
		Downvotes:      h.Downvotes,
	}, nil
}

func (s *lifecycleService) notifyResolved(ctx context.Context, hazardID, reportID uuid.UUID, note string, outcome *domain.ResolutionOutcome) {
	if s.queue == nil || outcome.ResolvedAt == nil {
		return
	}
	payload := domain.ResolutionWebhookPayload{
		HazardID:       hazardID,
		ReportID:       reportID,
		ResolutionNote: note,
		ConfirmedCount: outcome.Confirmed,
		ResolvedAt:     *outcome.ResolvedAt,
	}
	if err := s.queue.Enqueue(ctx, payload); err != nil {
		s.logger.Error("enqueue resolution webhook failed", slog.Any("error", err))
	}
}
