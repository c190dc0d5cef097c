package admin

import (
	"context"
	"encoding/json"
	"net/http"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"hazardpoint/internal/domain"
	"hazardpoint/pkg/validator"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type Hazards interface {
	List(ctx context.Context, page, limit int) (*domain.ListHazardsResponse, error)
}

type Lifecycle interface {
	ForceResolve(ctx context.Context, hazardID uuid.UUID, note string) (*domain.ForceResolveResponse, error)
}

type Stats interface {
	GetStats(ctx context.Context, req domain.StatsRequest) (*domain.LifecycleStats, error)
}

type Handler struct {
	logger    *slog.Logger
	Hazards   Hazards
	Lifecycle Lifecycle
	Stats     Stats
}

func NewHandler(logger *slog.Logger, hazards Hazards, lifecycle Lifecycle, stats Stats) *Handler {
	return &Handler{
		logger:    logger,
		Hazards:   hazards,
		Lifecycle: lifecycle,
		Stats:     stats,
	}
}

func (h *Handler) HazardList(w http.ResponseWriter, r *http.Request) {
	page := parseInt(r.URL.Query().Get("page"), 1)
	limit := parseInt(r.URL.Query().Get("limit"), 50)
	if limit > 200 {
		limit = 200
	}

	resp, err := h.Hazards.List(r.Context(), page, limit)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) ForceResolve(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	var req domain.ForceResolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	resp, err := h.Lifecycle.ForceResolve(r.Context(), id, req.Note)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("hazard force-resolved", slog.String("hazard_id", id.String()))
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	req := domain.StatsRequest{
		Minutes: parseInt(r.URL.Query().Get("minutes"), 60),
	}

	stats, err := h.Stats.GetStats(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, stats)
}
