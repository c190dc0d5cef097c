package hazards_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"hazardpoint/internal/api/handlers/http/hazards"
	mock_hazards "hazardpoint/internal/api/handlers/http/hazards/mocks"
	"hazardpoint/internal/domain"
	"hazardpoint/internal/middleware"
	"hazardpoint/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func addChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func authenticated(r *http.Request, actor uuid.UUID) *http.Request {
	return r.WithContext(middleware.WithUserID(r.Context(), actor))
}

func decodeJSON(t *testing.T, body *bytes.Buffer, v any) {
	t.Helper()
	if err := json.NewDecoder(body).Decode(v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func TestHazardExtend_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	actor := uuid.New()
	hazardID := uuid.New()
	expiresAt := time.Date(2026, time.March, 12, 12, 0, 0, 0, time.UTC)

	lifecycle := mock_hazards.NewMockLifecycle(ctrl)
	lifecycle.EXPECT().ExtendExpiration(gomock.Any(), hazardID, actor).Return(&domain.ExpirationStatus{
		HazardID:       hazardID,
		Status:         domain.StatusActive,
		ExpirationType: domain.ExpirationAutoExpire,
		ExpiresAt:      &expiresAt,
		ExtendedCount:  2,
	}, nil)

	h := hazards.NewHandler(newTestLogger(), nil, lifecycle, nil)

	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/v1/hazards/%s/extend", hazardID), nil)
	req = authenticated(addChiURLParam(req, "id", hazardID.String()), actor)
	rec := httptest.NewRecorder()

	h.HazardExtend(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var got domain.ExpirationStatus
	decodeJSON(t, rec.Body, &got)
	if got.ExtendedCount != 2 {
		t.Errorf("extended_count = %d, want 2", got.ExtendedCount)
	}
}

func TestHazardExtend_Forbidden(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hazardID := uuid.New()

	lifecycle := mock_hazards.NewMockLifecycle(ctrl)
	lifecycle.EXPECT().ExtendExpiration(gomock.Any(), hazardID, gomock.Any()).
		Return(nil, fmt.Errorf("only the owner may extend: %w", e.ErrForbidden))

	h := hazards.NewHandler(newTestLogger(), nil, lifecycle, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/hazards/x/extend", nil)
	req = authenticated(addChiURLParam(req, "id", hazardID.String()), uuid.New())
	rec := httptest.NewRecorder()

	h.HazardExtend(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
}

func TestHazardExtend_Unauthenticated(t *testing.T) {
	t.Parallel()

	h := hazards.NewHandler(newTestLogger(), nil, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/hazards/x/extend", nil)
	req = addChiURLParam(req, "id", uuid.New().String())
	rec := httptest.NewRecorder()

	h.HazardExtend(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestHazardExtend_InvalidState(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hazardID := uuid.New()

	lifecycle := mock_hazards.NewMockLifecycle(ctrl)
	lifecycle.EXPECT().ExtendExpiration(gomock.Any(), hazardID, gomock.Any()).
		Return(nil, fmt.Errorf("permanent hazards cannot be extended: %w", e.ErrInvalidState))

	h := hazards.NewHandler(newTestLogger(), nil, lifecycle, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/hazards/x/extend", nil)
	req = authenticated(addChiURLParam(req, "id", hazardID.String()), uuid.New())
	rec := httptest.NewRecorder()

	h.HazardExtend(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
}

func TestHazardGet_NotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hazardID := uuid.New()

	svc := mock_hazards.NewMockHazards(ctrl)
	svc.EXPECT().Get(gomock.Any(), hazardID).Return(nil, e.ErrNotFound)

	h := hazards.NewHandler(newTestLogger(), svc, nil, nil)

	req := addChiURLParam(httptest.NewRequest(http.MethodGet, "/api/v1/hazards/x", nil), "id", hazardID.String())
	rec := httptest.NewRecorder()

	h.HazardGet(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestHazardGet_BadID(t *testing.T) {
	t.Parallel()

	h := hazards.NewHandler(newTestLogger(), nil, nil, nil)

	req := addChiURLParam(httptest.NewRequest(http.MethodGet, "/api/v1/hazards/nope", nil), "id", "nope")
	rec := httptest.NewRecorder()

	h.HazardGet(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestResolutionSubmit_Created(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	actor := uuid.New()
	hazardID := uuid.New()
	reportID := uuid.New()

	lifecycle := mock_hazards.NewMockLifecycle(ctrl)
	lifecycle.EXPECT().SubmitResolutionReport(gomock.Any(), hazardID, actor, gomock.Any()).Return(reportID, nil)

	h := hazards.NewHandler(newTestLogger(), nil, lifecycle, nil)

	body := bytes.NewBufferString(`{"note":"hazard cleared yesterday"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/hazards/x/resolution", body)
	req = authenticated(addChiURLParam(req, "id", hazardID.String()), actor)
	rec := httptest.NewRecorder()

	h.ResolutionSubmit(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}
	var got map[string]string
	decodeJSON(t, rec.Body, &got)
	if got["report_id"] != reportID.String() {
		t.Errorf("report_id = %q, want %q", got["report_id"], reportID)
	}
}

func TestResolutionSubmit_NoteRequired(t *testing.T) {
	t.Parallel()

	h := hazards.NewHandler(newTestLogger(), nil, nil, nil)

	body := bytes.NewBufferString(`{}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/hazards/x/resolution", body)
	req = authenticated(addChiURLParam(req, "id", uuid.New().String()), uuid.New())
	rec := httptest.NewRecorder()

	h.ResolutionSubmit(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestResolutionConfirm_Conflict(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hazardID := uuid.New()

	lifecycle := mock_hazards.NewMockLifecycle(ctrl)
	lifecycle.EXPECT().ConfirmResolution(gomock.Any(), hazardID, gomock.Any(), domain.VoteConfirmed).
		Return(nil, fmt.Errorf("hazard already resolved: %w", e.ErrConflict))

	h := hazards.NewHandler(newTestLogger(), nil, lifecycle, nil)

	body := bytes.NewBufferString(`{"vote":"confirmed"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/hazards/x/resolution/confirm", body)
	req = authenticated(addChiURLParam(req, "id", hazardID.String()), uuid.New())
	rec := httptest.NewRecorder()

	h.ResolutionConfirm(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
}

func TestResolutionConfirm_Finalized(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	actor := uuid.New()
	hazardID := uuid.New()
	reportID := uuid.New()
	resolvedAt := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

	lifecycle := mock_hazards.NewMockLifecycle(ctrl)
	lifecycle.EXPECT().ConfirmResolution(gomock.Any(), hazardID, actor, domain.VoteConfirmed).
		Return(&domain.ResolutionOutcome{
			ReportID:   reportID,
			Confirmed:  3,
			Finalized:  true,
			ResolvedAt: &resolvedAt,
		}, nil)

	h := hazards.NewHandler(newTestLogger(), nil, lifecycle, nil)

	body := bytes.NewBufferString(`{"vote":"confirmed"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/hazards/x/resolution/confirm", body)
	req = authenticated(addChiURLParam(req, "id", hazardID.String()), actor)
	rec := httptest.NewRecorder()

	h.ResolutionConfirm(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var got domain.ResolutionOutcome
	decodeJSON(t, rec.Body, &got)
	if !got.Finalized || got.Confirmed != 3 {
		t.Errorf("outcome = %+v", got)
	}
}

func TestVoteCast_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	actor := uuid.New()
	hazardID := uuid.New()

	votes := mock_hazards.NewMockVotes(ctrl)
	votes.EXPECT().Cast(gomock.Any(), hazardID, actor, domain.VoteUp).
		Return(&domain.VoteTally{HazardID: hazardID, Upvotes: 5, Downvotes: 1, UserVote: domain.VoteUp}, nil)

	h := hazards.NewHandler(newTestLogger(), nil, nil, votes)

	body := bytes.NewBufferString(`{"value":"up"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/hazards/x/vote", body)
	req = authenticated(addChiURLParam(req, "id", hazardID.String()), actor)
	rec := httptest.NewRecorder()

	h.VoteCast(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var got domain.VoteTally
	decodeJSON(t, rec.Body, &got)
	if got.Upvotes != 5 || got.UserVote != domain.VoteUp {
		t.Errorf("tally = %+v", got)
	}
}

func TestVoteCast_BadValue(t *testing.T) {
	t.Parallel()

	h := hazards.NewHandler(newTestLogger(), nil, nil, nil)

	body := bytes.NewBufferString(`{"value":"sideways"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/hazards/x/vote", body)
	req = authenticated(addChiURLParam(req, "id", uuid.New().String()), uuid.New())
	rec := httptest.NewRecorder()

	h.VoteCast(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestHazardFeed_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_hazards.NewMockHazards(ctrl)
	svc.EXPECT().Feed(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req domain.FeedRequest) ([]domain.HazardView, error) {
			if req.Lat == nil || *req.Lat != 55.75 {
				t.Errorf("lat not parsed: %+v", req.Lat)
			}
			if req.RadiusKM != 5 {
				t.Errorf("radius_km = %v, want 5", req.RadiusKM)
			}
			return []domain.HazardView{}, nil
		})

	h := hazards.NewHandler(newTestLogger(), svc, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/hazards/feed?lat=55.75&lng=37.61&radius_km=5", nil)
	rec := httptest.NewRecorder()

	h.HazardFeed(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}
