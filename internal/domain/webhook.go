package domain

import (
	"time"

	"github.com/google/uuid"
)

// ResolutionWebhookPayload is pushed to the notification queue when a hazard
// finalizes as resolved.
type ResolutionWebhookPayload struct {
	HazardID       uuid.UUID `json:"hazard_id"`
	ReportID       uuid.UUID `json:"report_id"`
	ResolutionNote string    `json:"resolution_note"`
	ConfirmedCount int       `json:"confirmed_count"`
	ResolvedAt     time.Time `json:"resolved_at"`
}
