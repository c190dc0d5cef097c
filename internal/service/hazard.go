package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"hazardpoint/internal/domain"
	"hazardpoint/internal/lifecycle"
	"hazardpoint/pkg/e"
	"hazardpoint/pkg/validator"
)

type hazardService struct {
	repo         HazardRepository
	cache        HazardCacheService
	logger       *slog.Logger
	clock        Clock
	feedCacheTTL time.Duration
}

func NewHazardService(
	repo HazardRepository,
	cache HazardCacheService,
	logger *slog.Logger,
	clock Clock,
	feedCacheTTL time.Duration,
) HazardService {
	if feedCacheTTL <= 0 {
		feedCacheTTL = 30 * time.Second
	}
	return &hazardService{
		repo:         repo,
		cache:        cache,
		logger:       logger,
		clock:        orSystemClock(clock),
		feedCacheTTL: feedCacheTTL,
	}
}

func (s *hazardService) Create(ctx context.Context, ownerID uuid.UUID, req domain.CreateHazardRequest) (uuid.UUID, error) {
	const op = "service.Hazard.Create"

	if err := validator.ValidateStruct(req); err != nil {
		return uuid.Nil, fmt.Errorf("%s: %v: %w", op, err, e.ErrInvalidInput)
	}

	now := s.clock()

	h := &domain.Hazard{
		ID:             uuid.New(),
		OwnerID:        ownerID,
		Category:       req.Category,
		Severity:       req.Severity,
		Lat:            req.Lat,
		Lng:            req.Lng,
		ExpirationType: req.ExpirationType,
		Timezone:       req.Timezone,
		CreatedAt:      now,
	}
	if h.Severity == "" {
		h.Severity = "medium"
	}
	if h.Timezone == "" {
		h.Timezone = "UTC"
	} else if _, err := time.LoadLocation(h.Timezone); err != nil {
		return uuid.Nil, fmt.Errorf("%s: unknown timezone %q: %w", op, h.Timezone, e.ErrInvalidInput)
	}

	// expiration_type is fixed at creation; the type-specific fields must
	// be present for the chosen type and absent otherwise.
	switch req.ExpirationType {
	case domain.ExpirationAutoExpire:
		if req.TTLHours < 1 {
			return uuid.Nil, fmt.Errorf("%s: auto_expire requires ttl_hours: %w", op, e.ErrInvalidInput)
		}
		expiresAt := now.Add(time.Duration(req.TTLHours) * time.Hour)
		h.ExpiresAt = &expiresAt
	case domain.ExpirationSeasonal:
		if len(req.SeasonalMonths) == 0 {
			return uuid.Nil, fmt.Errorf("%s: seasonal requires seasonal_months: %w", op, e.ErrInvalidInput)
		}
		h.SeasonalMonths = req.SeasonalMonths
	default:
		if req.TTLHours != 0 || len(req.SeasonalMonths) != 0 {
			return uuid.Nil, fmt.Errorf("%s: ttl_hours/seasonal_months not applicable to %s: %w", op, req.ExpirationType, e.ErrInvalidInput)
		}
	}

	if err := s.repo.Create(ctx, h); err != nil {
		return uuid.Nil, err
	}

	s.refreshFeedCache(ctx)

	s.logger.Info("hazard created",
		slog.String("id", h.ID.String()),
		slog.String("expiration_type", string(h.ExpirationType)),
	)
	return h.ID, nil
}

func (s *hazardService) Get(ctx context.Context, id uuid.UUID) (*domain.HazardView, error) {
	h, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.view(h), nil
}

func (s *hazardService) List(ctx context.Context, page, limit int) (*domain.ListHazardsResponse, error) {
	hazards, total, err := s.repo.List(ctx, page, limit)
	if err != nil {
		return nil, err
	}

	views := make([]domain.HazardView, 0, len(hazards))
	for _, h := range hazards {
		views = append(views, *s.view(h))
	}

	return &domain.ListHazardsResponse{
		Hazards: views,
		Page:    page,
		Limit:   limit,
		Total:   total,
	}, nil
}

// Feed lists hazards currently displayed as active, from cache when fresh.
// Status is derived against the clock per request, never cached.
func (s *hazardService) Feed(ctx context.Context, req domain.FeedRequest) ([]domain.HazardView, error) {
	const op = "service.Hazard.Feed"

	if err := validator.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", op, err, e.ErrInvalidInput)
	}
	if (req.Lat == nil) != (req.Lng == nil) {
		return nil, fmt.Errorf("%s: lat and lng must be given together: %w", op, e.ErrInvalidCoordinates)
	}

	hazards, err := s.cache.GetUnresolved(ctx)
	if err != nil {
		s.logger.Error("feed cache read failed", slog.Any("error", err))
		hazards = nil
	}
	if hazards == nil {
		hazards, err = s.repo.ListUnresolved(ctx)
		if err != nil {
			return nil, err
		}
		if err := s.cache.SetUnresolved(ctx, hazards, s.feedCacheTTL); err != nil {
			s.logger.Error("feed cache write failed", slog.Any("error", err))
		}
	}

	now := s.clock()
	views := make([]domain.HazardView, 0, len(hazards))
	for _, h := range hazards {
		status, evalErr := lifecycle.Evaluate(h, now, lifecycle.Location(h.Timezone))
		if evalErr != nil {
			s.logger.Warn("hazard failed evaluation, hidden from feed",
				slog.String("id", h.ID.String()),
				slog.Any("error", evalErr),
			)
			continue
		}
		if status != domain.StatusActive {
			continue
		}
		if req.Lat != nil {
			radius := req.RadiusKM
			if radius <= 0 {
				radius = 50
			}
			if haversine(*req.Lat, *req.Lng, h.Lat, h.Lng) > radius {
				continue
			}
		}
		views = append(views, domain.HazardView{Hazard: *h, Status: status})
	}

	return views, nil
}

func (s *hazardService) view(h *domain.Hazard) *domain.HazardView {
	status, err := lifecycle.Evaluate(h, s.clock(), lifecycle.Location(h.Timezone))
	if err != nil {
		s.logger.Warn("hazard evaluation fault",
			slog.String("id", h.ID.String()),
			slog.Any("error", err),
		)
	}
	return &domain.HazardView{Hazard: *h, Status: status}
}

func (s *hazardService) refreshFeedCache(ctx context.Context) {
	hazards, err := s.repo.ListUnresolved(ctx)
	if err != nil {
		s.logger.Error("feed cache refresh: list failed", slog.Any("error", err))
		return
	}
	if err := s.cache.SetUnresolved(ctx, hazards, s.feedCacheTTL); err != nil {
		s.logger.Error("feed cache refresh: set failed", slog.Any("error", err))
	}
}

func haversine(lat1, lon1, lat2, lon2 float64) float64 {
	const R = 6371.0 // Earth radius, km

	dLat := deg2rad(lat2 - lat1)
	dLon := deg2rad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(lat1))*math.Cos(deg2rad(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return R * c
}

func deg2rad(deg float64) float64 {
	return deg * math.Pi / 180.0
}
