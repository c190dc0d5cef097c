package domain

import (
	"time"

	"github.com/google/uuid"
)

type ExpirationType string

const (
	ExpirationAutoExpire     ExpirationType = "auto_expire"
	ExpirationUserResolvable ExpirationType = "user_resolvable"
	ExpirationPermanent      ExpirationType = "permanent"
	ExpirationSeasonal       ExpirationType = "seasonal"
)

// DisplayStatus is derived on every read, never stored.
type DisplayStatus string

const (
	StatusActive   DisplayStatus = "active"
	StatusDormant  DisplayStatus = "dormant"
	StatusExpired  DisplayStatus = "expired"
	StatusResolved DisplayStatus = "resolved"
)

type Hazard struct {
	ID             uuid.UUID      `json:"id"`
	OwnerID        uuid.UUID      `json:"owner_id"`
	Category       string         `json:"category"`
	Severity       string         `json:"severity"`
	Lat            float64        `json:"lat"`
	Lng            float64        `json:"lng"`
	ExpirationType ExpirationType `json:"expiration_type"`
	ExpiresAt      *time.Time     `json:"expires_at,omitempty"`
	ExtendedCount  int            `json:"extended_count"`
	SeasonalMonths []int          `json:"seasonal_months,omitempty"`
	Timezone       string         `json:"timezone"`
	ResolvedAt     *time.Time     `json:"resolved_at,omitempty"`
	ResolutionNote *string        `json:"resolution_note,omitempty"`
	Upvotes        int            `json:"upvotes"`
	Downvotes      int            `json:"downvotes"`
	CreatedAt      time.Time      `json:"created_at"`
}

// HazardView is the read projection: the stored row plus its derived status.
type HazardView struct {
	Hazard
	Status DisplayStatus `json:"status"`
}

// ExpirationStatus is returned by lifecycle actions and the status endpoint.
type ExpirationStatus struct {
	HazardID       uuid.UUID      `json:"hazard_id"`
	Status         DisplayStatus  `json:"status"`
	ExpirationType ExpirationType `json:"expiration_type"`
	ExpiresAt      *time.Time     `json:"expires_at,omitempty"`
	ExtendedCount  int            `json:"extended_count"`
	ResolvedAt     *time.Time     `json:"resolved_at,omitempty"`
	ResolutionNote *string        `json:"resolution_note,omitempty"`
	Upvotes        int            `json:"upvotes"`
	Downvotes      int            `json:"downvotes"`
}
