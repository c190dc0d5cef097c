package lifecycle_test

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"hazardpoint/internal/domain"
	"hazardpoint/internal/lifecycle"
)

func conf(report uuid.UUID, vote domain.ConfirmationVote) domain.ResolutionConfirmation {
	now := time.Now().UTC()
	return domain.ResolutionConfirmation{
		ReportID:  report,
		UserID:    uuid.New(),
		Vote:      vote,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestQuorum_ReachedAtThreshold(t *testing.T) {
	t.Parallel()

	q := lifecycle.NewQuorum(3)

	if q.Reached(lifecycle.Tally{Confirmed: 2}) {
		t.Fatalf("2 confirmations must not reach quorum of 3")
	}
	if !q.Reached(lifecycle.Tally{Confirmed: 3}) {
		t.Fatalf("3 confirmations must reach quorum of 3")
	}
	if !q.Reached(lifecycle.Tally{Confirmed: 5, Disputed: 4}) {
		t.Fatalf("disputes must not block quorum")
	}
}

func TestQuorum_DisputesAloneNeverFinalize(t *testing.T) {
	t.Parallel()

	q := lifecycle.NewQuorum(3)

	for disputed := 0; disputed <= 50; disputed++ {
		if q.Reached(lifecycle.Tally{Disputed: disputed}) {
			t.Fatalf("quorum reached on %d disputes with zero confirmations", disputed)
		}
	}
}

func TestNewQuorum_DefaultsInvalidThreshold(t *testing.T) {
	t.Parallel()

	if got := lifecycle.NewQuorum(0).Threshold; got != lifecycle.DefaultQuorumThreshold {
		t.Fatalf("threshold 0: got %d want %d", got, lifecycle.DefaultQuorumThreshold)
	}
	if got := lifecycle.NewQuorum(-2).Threshold; got != lifecycle.DefaultQuorumThreshold {
		t.Fatalf("threshold -2: got %d want %d", got, lifecycle.DefaultQuorumThreshold)
	}
	if got := lifecycle.NewQuorum(5).Threshold; got != 5 {
		t.Fatalf("threshold 5: got %d", got)
	}
}

func TestCountVotes_FromCurrentSet(t *testing.T) {
	t.Parallel()

	report := uuid.New()
	votes := []domain.ResolutionConfirmation{
		conf(report, domain.VoteConfirmed),
		conf(report, domain.VoteConfirmed),
		conf(report, domain.VoteDisputed),
	}

	got := lifecycle.CountVotes(votes)
	if got.Confirmed != 2 || got.Disputed != 1 {
		t.Fatalf("got %+v want {Confirmed:2 Disputed:1}", got)
	}
}

func TestCountVotes_RevoteIsOneRecord(t *testing.T) {
	t.Parallel()

	// A user flipping confirmed -> disputed -> confirmed still holds exactly
	// one record; the tally reflects the record's current value only.
	report := uuid.New()
	user := uuid.New()
	record := domain.ResolutionConfirmation{ReportID: report, UserID: user, Vote: domain.VoteConfirmed}

	record.Vote = domain.VoteDisputed
	record.Vote = domain.VoteConfirmed

	got := lifecycle.CountVotes([]domain.ResolutionConfirmation{record})
	if got.Confirmed != 1 || got.Disputed != 0 {
		t.Fatalf("got %+v want {Confirmed:1 Disputed:0}", got)
	}
}
