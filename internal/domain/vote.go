package domain

import (
	"time"

	"github.com/google/uuid"
)

type VoteValue string

const (
	VoteUp   VoteValue = "up"
	VoteDown VoteValue = "down"
)

// Vote is one user's directional judgment of a hazard, keyed
// (hazard_id, user_id). Re-casting the same value toggles the vote off,
// the opposite value flips it.
type Vote struct {
	HazardID  uuid.UUID `json:"hazard_id"`
	UserID    uuid.UUID `json:"user_id"`
	Value     VoteValue `json:"value"`
	CreatedAt time.Time `json:"created_at"`
}

// VoteTally is the hazard's counters after a cast, plus the caller's
// remaining vote ("" once toggled off).
type VoteTally struct {
	HazardID  uuid.UUID `json:"hazard_id"`
	Upvotes   int       `json:"upvotes"`
	Downvotes int       `json:"downvotes"`
	UserVote  VoteValue `json:"user_vote,omitempty"`
}
