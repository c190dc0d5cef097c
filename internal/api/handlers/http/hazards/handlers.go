package hazards

import (
	"context"
	"encoding/json"
	"net/http"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"hazardpoint/internal/domain"
	"hazardpoint/internal/middleware"
	"hazardpoint/pkg/validator"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type Hazards interface {
	Create(ctx context.Context, ownerID uuid.UUID, req domain.CreateHazardRequest) (uuid.UUID, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.HazardView, error)
	List(ctx context.Context, page, limit int) (*domain.ListHazardsResponse, error)
	Feed(ctx context.Context, req domain.FeedRequest) ([]domain.HazardView, error)
}

type Lifecycle interface {
	ExtendExpiration(ctx context.Context, hazardID, actor uuid.UUID) (*domain.ExpirationStatus, error)
	SubmitResolutionReport(ctx context.Context, hazardID, actor uuid.UUID, req domain.SubmitResolutionRequest) (uuid.UUID, error)
	ConfirmResolution(ctx context.Context, hazardID, actor uuid.UUID, vote domain.ConfirmationVote) (*domain.ResolutionOutcome, error)
	ExpirationStatus(ctx context.Context, hazardID uuid.UUID) (*domain.ExpirationStatus, error)
}

type Votes interface {
	Cast(ctx context.Context, hazardID, actor uuid.UUID, value domain.VoteValue) (*domain.VoteTally, error)
}

type Handler struct {
	logger    *slog.Logger
	Hazards   Hazards
	Lifecycle Lifecycle
	Votes     Votes
}

func NewHandler(logger *slog.Logger, hazards Hazards, lifecycle Lifecycle, votes Votes) *Handler {
	return &Handler{
		logger:    logger,
		Hazards:   hazards,
		Lifecycle: lifecycle,
		Votes:     votes,
	}
}

func (h *Handler) HazardCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	actor, ok := middleware.UserID(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthenticated"})
		return
	}

	var req domain.CreateHazardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	id, err := h.Hazards.Create(r.Context(), actor, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("hazard created", slog.String("id", id.String()))
	h.writeJSON(w, http.StatusCreated, map[string]string{"id": id.String()})
}

func (h *Handler) HazardList(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	page := parseInt(r.URL.Query().Get("page"), 1)
	limit := parseInt(r.URL.Query().Get("limit"), 20)
	if limit > 100 {
		limit = 100
		l.Warn("limit capped", slog.Int("limit", limit))
	}

	resp, err := h.Hazards.List(r.Context(), page, limit)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) HazardGet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.hazardID(w, r)
	if !ok {
		return
	}

	view, err := h.Hazards.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, view)
}

func (h *Handler) HazardFeed(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var req domain.FeedRequest
	if lat, ok := parseFloat(q.Get("lat")); ok {
		req.Lat = &lat
	}
	if lng, ok := parseFloat(q.Get("lng")); ok {
		req.Lng = &lng
	}
	if radius, ok := parseFloat(q.Get("radius_km")); ok {
		req.RadiusKM = radius
	}

	views, err := h.Hazards.Feed(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{"hazards": views})
}

func (h *Handler) HazardStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := h.hazardID(w, r)
	if !ok {
		return
	}

	status, err := h.Lifecycle.ExpirationStatus(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, status)
}

func (h *Handler) HazardExtend(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	actor, ok := middleware.UserID(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthenticated"})
		return
	}
	id, ok := h.hazardID(w, r)
	if !ok {
		return
	}

	status, err := h.Lifecycle.ExtendExpiration(r.Context(), id, actor)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("expiration extended",
		slog.String("hazard_id", id.String()),
		slog.Int("extended_count", status.ExtendedCount),
	)
	h.writeJSON(w, http.StatusOK, status)
}

func (h *Handler) ResolutionSubmit(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	actor, ok := middleware.UserID(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthenticated"})
		return
	}
	id, ok := h.hazardID(w, r)
	if !ok {
		return
	}

	var req domain.SubmitResolutionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	reportID, err := h.Lifecycle.SubmitResolutionReport(r.Context(), id, actor, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("resolution report submitted", slog.String("report_id", reportID.String()))
	h.writeJSON(w, http.StatusCreated, map[string]string{"report_id": reportID.String()})
}

func (h *Handler) ResolutionConfirm(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.UserID(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthenticated"})
		return
	}
	id, ok := h.hazardID(w, r)
	if !ok {
		return
	}

	var req domain.ConfirmResolutionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	outcome, err := h.Lifecycle.ConfirmResolution(r.Context(), id, actor, req.Vote)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, outcome)
}

func (h *Handler) VoteCast(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.UserID(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthenticated"})
		return
	}
	id, ok := h.hazardID(w, r)
	if !ok {
		return
	}

	var req domain.CastVoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	tally, err := h.Votes.Cast(r.Context(), id, actor, req.Value)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, tally)
}

func (h *Handler) hazardID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		h.log(r).Warn("invalid id", slog.String("id", idStr), slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}
