package lifecycle

import "hazardpoint/internal/domain"

const DefaultQuorumThreshold = 3

// Tally is the current state of a confirmation round. Counts always come
// from the current set of one-per-user confirmation records, never from an
// append-only log, so a user re-voting can never be counted twice.
type Tally struct {
	Confirmed int
	Disputed  int
}

// CountVotes recomputes a tally from the current confirmation set.
func CountVotes(votes []domain.ResolutionConfirmation) Tally {
	var t Tally
	for _, v := range votes {
		switch v.Vote {
		case domain.VoteConfirmed:
			t.Confirmed++
		case domain.VoteDisputed:
			t.Disputed++
		}
	}
	return t
}

// Quorum decides whether a confirmation round finalizes the hazard.
// Disputed votes accumulate for moderator review only; there is no
// symmetric auto-reject threshold.
type Quorum struct {
	Threshold int
}

func NewQuorum(threshold int) Quorum {
	if threshold < 1 {
		threshold = DefaultQuorumThreshold
	}
	return Quorum{Threshold: threshold}
}

func (q Quorum) Reached(t Tally) bool {
	return t.Confirmed >= q.Threshold
}
