package service

import (
	"context"
	"fmt"

	"log/slog"

	"github.com/google/uuid"

	"hazardpoint/internal/domain"
	"hazardpoint/pkg/e"
)

type voteService struct {
	hazards HazardRepository
	votes   VoteRepository
	logger  *slog.Logger
	clock   Clock
}

func NewVoteService(hazards HazardRepository, votes VoteRepository, logger *slog.Logger, clock Clock) VoteService {
	return &voteService{
		hazards: hazards,
		votes:   votes,
		logger:  logger,
		clock:   orSystemClock(clock),
	}
}

func (s *voteService) Cast(ctx context.Context, hazardID, actor uuid.UUID, value domain.VoteValue) (*domain.VoteTally, error) {
	const op = "service.Vote.Cast"

	h, err := s.hazards.Get(ctx, hazardID)
	if err != nil {
		return nil, err
	}
	if h.OwnerID == actor {
		return nil, fmt.Errorf("%s: owners cannot vote on their own hazard: %w", op, e.ErrForbidden)
	}

	tally, err := s.votes.Cast(ctx, hazardID, actor, value, s.clock())
	if err != nil {
		return nil, err
	}

	s.logger.Debug("vote cast",
		slog.String("hazard_id", hazardID.String()),
		slog.String("value", string(value)),
		slog.String("user_vote", string(tally.UserVote)),
	)
	return tally, nil
}
