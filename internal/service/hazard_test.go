package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"hazardpoint/internal/domain"
	"hazardpoint/internal/service"
	mock_service "hazardpoint/internal/service/mocks"
	"hazardpoint/pkg/e"
)

func validCreateRequest() domain.CreateHazardRequest {
	return domain.CreateHazardRequest{
		Category:       "pothole",
		Lat:            55.75,
		Lng:            37.61,
		ExpirationType: domain.ExpirationAutoExpire,
		TTLHours:       48,
	}
}

func TestCreateHazard_AutoExpire(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	owner := uuid.New()

	repo := mock_service.NewMockHazardRepository(ctrl)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, h *domain.Hazard) error {
			if h.ExpiresAt == nil {
				t.Fatal("expires_at not set")
			}
			want := testNow.Add(48 * time.Hour)
			if !h.ExpiresAt.Equal(want) {
				t.Errorf("expires_at = %v, want %v", h.ExpiresAt, want)
			}
			if h.Severity != "medium" {
				t.Errorf("severity = %q, want default medium", h.Severity)
			}
			if h.Timezone != "UTC" {
				t.Errorf("timezone = %q, want UTC", h.Timezone)
			}
			return nil
		})
	repo.EXPECT().ListUnresolved(gomock.Any()).Return(nil, nil)

	cache := mock_service.NewMockHazardCacheService(ctrl)
	cache.EXPECT().SetUnresolved(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	svc := service.NewHazardService(repo, cache, newTestLogger(), fixedClock(testNow), 30*time.Second)

	id, err := svc.Create(context.Background(), owner, validCreateRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id == uuid.Nil {
		t.Error("id is nil")
	}
}

func TestCreateHazard_AutoExpireRequiresTTL(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	req := validCreateRequest()
	req.TTLHours = 0

	svc := service.NewHazardService(mock_service.NewMockHazardRepository(ctrl), mock_service.NewMockHazardCacheService(ctrl), newTestLogger(), fixedClock(testNow), 0)

	_, err := svc.Create(context.Background(), uuid.New(), req)
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestCreateHazard_SeasonalRequiresMonths(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	req := validCreateRequest()
	req.ExpirationType = domain.ExpirationSeasonal
	req.TTLHours = 0

	svc := service.NewHazardService(mock_service.NewMockHazardRepository(ctrl), mock_service.NewMockHazardCacheService(ctrl), newTestLogger(), fixedClock(testNow), 0)

	_, err := svc.Create(context.Background(), uuid.New(), req)
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestCreateHazard_PermanentRejectsTTL(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	req := validCreateRequest()
	req.ExpirationType = domain.ExpirationPermanent

	svc := service.NewHazardService(mock_service.NewMockHazardRepository(ctrl), mock_service.NewMockHazardCacheService(ctrl), newTestLogger(), fixedClock(testNow), 0)

	_, err := svc.Create(context.Background(), uuid.New(), req)
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestCreateHazard_UnknownTimezone(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	req := validCreateRequest()
	req.Timezone = "Atlantis/Central"

	svc := service.NewHazardService(mock_service.NewMockHazardRepository(ctrl), mock_service.NewMockHazardCacheService(ctrl), newTestLogger(), fixedClock(testNow), 0)

	_, err := svc.Create(context.Background(), uuid.New(), req)
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestFeed_FiltersToActive(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	active := autoExpireHazard(uuid.New(), testNow.Add(time.Hour))
	expired := autoExpireHazard(uuid.New(), testNow.Add(-time.Hour))
	dormant := &domain.Hazard{
		ID:             uuid.New(),
		OwnerID:        uuid.New(),
		Category:       "flooding",
		ExpirationType: domain.ExpirationSeasonal,
		SeasonalMonths: []int{6, 7, 8}, // testNow is March
		Timezone:       "UTC",
	}

	repo := mock_service.NewMockHazardRepository(ctrl)
	cache := mock_service.NewMockHazardCacheService(ctrl)
	cache.EXPECT().GetUnresolved(gomock.Any()).Return([]*domain.Hazard{active, expired, dormant}, nil)

	svc := service.NewHazardService(repo, cache, newTestLogger(), fixedClock(testNow), 30*time.Second)

	views, err := svc.Feed(context.Background(), domain.FeedRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("feed returned %d hazards, want 1", len(views))
	}
	if views[0].ID != active.ID {
		t.Errorf("feed returned %s, want %s", views[0].ID, active.ID)
	}
	if views[0].Status != domain.StatusActive {
		t.Errorf("status = %s, want active", views[0].Status)
	}
}

func TestFeed_CacheMissFallsBack(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := autoExpireHazard(uuid.New(), testNow.Add(time.Hour))

	cache := mock_service.NewMockHazardCacheService(ctrl)
	cache.EXPECT().GetUnresolved(gomock.Any()).Return(nil, nil)
	cache.EXPECT().SetUnresolved(gomock.Any(), []*domain.Hazard{h}, 30*time.Second).Return(nil)

	repo := mock_service.NewMockHazardRepository(ctrl)
	repo.EXPECT().ListUnresolved(gomock.Any()).Return([]*domain.Hazard{h}, nil)

	svc := service.NewHazardService(repo, cache, newTestLogger(), fixedClock(testNow), 30*time.Second)

	views, err := svc.Feed(context.Background(), domain.FeedRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("feed returned %d hazards, want 1", len(views))
	}
}

func TestFeed_RadiusFilter(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	near := autoExpireHazard(uuid.New(), testNow.Add(time.Hour))
	near.Lat, near.Lng = 55.76, 37.62

	far := autoExpireHazard(uuid.New(), testNow.Add(time.Hour))
	far.Lat, far.Lng = 59.93, 30.33 // St. Petersburg, ~630 km away

	cache := mock_service.NewMockHazardCacheService(ctrl)
	cache.EXPECT().GetUnresolved(gomock.Any()).Return([]*domain.Hazard{near, far}, nil)

	svc := service.NewHazardService(mock_service.NewMockHazardRepository(ctrl), cache, newTestLogger(), fixedClock(testNow), 30*time.Second)

	lat, lng := 55.75, 37.61
	views, err := svc.Feed(context.Background(), domain.FeedRequest{Lat: &lat, Lng: &lng, RadiusKM: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("feed returned %d hazards, want 1", len(views))
	}
	if views[0].ID != near.ID {
		t.Errorf("feed returned %s, want %s", views[0].ID, near.ID)
	}
}

func TestFeed_LatWithoutLng(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := service.NewHazardService(mock_service.NewMockHazardRepository(ctrl), mock_service.NewMockHazardCacheService(ctrl), newTestLogger(), fixedClock(testNow), 0)

	lat := 55.75
	_, err := svc.Feed(context.Background(), domain.FeedRequest{Lat: &lat})
	if !errors.Is(err, e.ErrInvalidCoordinates) {
		t.Fatalf("err = %v, want ErrInvalidCoordinates", err)
	}
}
