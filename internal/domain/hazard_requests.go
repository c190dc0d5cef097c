package domain

import "time"

type CreateHazardRequest struct {
	Category       string         `json:"category" validate:"required,min=2,max=64"`
	Severity       string         `json:"severity" validate:"omitempty,oneof=low medium high"`
	Lat            float64        `json:"lat" validate:"required,lat"`
	Lng            float64        `json:"lng" validate:"required,lng"`
	ExpirationType ExpirationType `json:"expiration_type" validate:"required,oneof=auto_expire user_resolvable permanent seasonal"`
	// TTLHours is required for auto_expire hazards and meaningless otherwise.
	TTLHours int `json:"ttl_hours" validate:"omitempty,min=1,max=720"`
	// SeasonalMonths is required for seasonal hazards.
	SeasonalMonths []int  `json:"seasonal_months" validate:"omitempty,months"`
	Timezone       string `json:"timezone" validate:"omitempty,max=64"`
}

type ListHazardsRequest struct {
	Page  int `query:"page" validate:"min=1"`
	Limit int `query:"limit" validate:"min=1,max=100"`
}

type ListHazardsResponse struct {
	Hazards []HazardView `json:"hazards"`
	Page    int          `json:"page"`
	Limit   int          `json:"limit"`
	Total   int64        `json:"total"`
}

// FeedRequest asks for hazards currently displayed as active, optionally
// narrowed to a radius around a point.
type FeedRequest struct {
	Lat      *float64 `query:"lat" validate:"omitempty,lat"`
	Lng      *float64 `query:"lng" validate:"omitempty,lng"`
	RadiusKM float64  `query:"radius_km" validate:"omitempty,min=0.1,max=500"`
}

type SubmitResolutionRequest struct {
	Note        string  `json:"note" validate:"required,min=3,max=1000"`
	EvidenceURL *string `json:"evidence_url" validate:"omitempty,url,max=2048"`
}

type ConfirmResolutionRequest struct {
	Vote ConfirmationVote `json:"vote" validate:"required,oneof=confirmed disputed"`
}

type CastVoteRequest struct {
	Value VoteValue `json:"value" validate:"required,oneof=up down"`
}

type ForceResolveRequest struct {
	Note string `json:"note" validate:"required,min=3,max=1000"`
}

type ForceResolveResponse struct {
	ResolvedAt time.Time `json:"resolved_at"`
}
