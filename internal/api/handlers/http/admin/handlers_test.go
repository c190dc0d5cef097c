package admin_test

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

	"hazardpoint/internal/api/handlers/http/admin"
	mock_admin "hazardpoint/internal/api/handlers/http/admin/mocks"
	"hazardpoint/internal/domain"
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

func TestForceResolve_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hazardID := uuid.New()
	resolvedAt := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

	lifecycle := mock_admin.NewMockLifecycle(ctrl)
	lifecycle.EXPECT().ForceResolve(gomock.Any(), hazardID, "cleared by roads team").
		Return(&domain.ForceResolveResponse{ResolvedAt: resolvedAt}, nil)

	h := admin.NewHandler(newTestLogger(), nil, lifecycle, nil)

	body := bytes.NewBufferString(`{"note":"cleared by roads team"}`)
	req := addChiURLParam(httptest.NewRequest(http.MethodPost, "/api/v1/admin/hazards/x/resolve", body), "id", hazardID.String())
	rec := httptest.NewRecorder()

	h.ForceResolve(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var got domain.ForceResolveResponse
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !got.ResolvedAt.Equal(resolvedAt) {
		t.Errorf("resolved_at = %v, want %v", got.ResolvedAt, resolvedAt)
	}
}

func TestForceResolve_AlreadyResolved(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hazardID := uuid.New()

	lifecycle := mock_admin.NewMockLifecycle(ctrl)
	lifecycle.EXPECT().ForceResolve(gomock.Any(), hazardID, gomock.Any()).
		Return(nil, fmt.Errorf("hazard already resolved: %w", e.ErrConflict))

	h := admin.NewHandler(newTestLogger(), nil, lifecycle, nil)

	body := bytes.NewBufferString(`{"note":"duplicate action"}`)
	req := addChiURLParam(httptest.NewRequest(http.MethodPost, "/api/v1/admin/hazards/x/resolve", body), "id", hazardID.String())
	rec := httptest.NewRecorder()

	h.ForceResolve(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
}

func TestForceResolve_NoteRequired(t *testing.T) {
	t.Parallel()

	h := admin.NewHandler(newTestLogger(), nil, nil, nil)

	body := bytes.NewBufferString(`{}`)
	req := addChiURLParam(httptest.NewRequest(http.MethodPost, "/api/v1/admin/hazards/x/resolve", body), "id", uuid.New().String())
	rec := httptest.NewRecorder()

	h.ForceResolve(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestGetStats_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stats := mock_admin.NewMockStats(ctrl)
	stats.EXPECT().GetStats(gomock.Any(), domain.StatsRequest{Minutes: 120}).
		Return(&domain.LifecycleStats{TotalHazards: 10, Resolved: 4, Minutes: 120}, nil)

	h := admin.NewHandler(newTestLogger(), nil, nil, stats)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats?minutes=120", nil)
	rec := httptest.NewRecorder()

	h.GetStats(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var got domain.LifecycleStats
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.TotalHazards != 10 || got.Resolved != 4 {
		t.Errorf("stats = %+v", got)
	}
}
