package domain

import (
	"time"

	"github.com/google/uuid"
)

type ConfirmationVote string

const (
	VoteConfirmed ConfirmationVote = "confirmed"
	VoteDisputed  ConfirmationVote = "disputed"
)

// ResolutionReport is a third-party claim that a user_resolvable hazard has
// been cleared. At most one open report exists per hazard at a time.
type ResolutionReport struct {
	ID          uuid.UUID  `json:"id"`
	HazardID    uuid.UUID  `json:"hazard_id"`
	ReporterID  uuid.UUID  `json:"reporter_id"`
	Note        string     `json:"note"`
	EvidenceURL *string    `json:"evidence_url,omitempty"`
	ClosedAt    *time.Time `json:"closed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ResolutionConfirmation is one user's vote on an open report, keyed
// (report_id, user_id); re-voting upserts, never duplicates.
type ResolutionConfirmation struct {
	ReportID  uuid.UUID        `json:"report_id"`
	UserID    uuid.UUID        `json:"user_id"`
	Vote      ConfirmationVote `json:"vote"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// ResolutionOutcome is what a confirmation round looks like after one vote
// has been recorded and the quorum check has run.
type ResolutionOutcome struct {
	ReportID   uuid.UUID  `json:"report_id"`
	Confirmed  int        `json:"confirmed"`
	Disputed   int        `json:"disputed"`
	Finalized  bool       `json:"finalized"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
}
