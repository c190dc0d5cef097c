package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"hazardpoint/internal/domain"
	"hazardpoint/internal/service"
	mock_service "hazardpoint/internal/service/mocks"
	"hazardpoint/pkg/e"
)

func TestCastVote_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := resolvableHazard(uuid.New())
	actor := uuid.New()

	hazards := mock_service.NewMockHazardRepository(ctrl)
	hazards.EXPECT().Get(gomock.Any(), h.ID).Return(h, nil)

	votes := mock_service.NewMockVoteRepository(ctrl)
	votes.EXPECT().Cast(gomock.Any(), h.ID, actor, domain.VoteUp, testNow).
		Return(&domain.VoteTally{HazardID: h.ID, Upvotes: 1, UserVote: domain.VoteUp}, nil)

	svc := service.NewVoteService(hazards, votes, newTestLogger(), fixedClock(testNow))

	tally, err := svc.Cast(context.Background(), h.ID, actor, domain.VoteUp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tally.Upvotes != 1 || tally.UserVote != domain.VoteUp {
		t.Errorf("tally = %+v", tally)
	}
}

func TestCastVote_OwnerForbidden(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	owner := uuid.New()
	h := resolvableHazard(owner)

	hazards := mock_service.NewMockHazardRepository(ctrl)
	hazards.EXPECT().Get(gomock.Any(), h.ID).Return(h, nil)

	svc := service.NewVoteService(hazards, nil, newTestLogger(), fixedClock(testNow))

	_, err := svc.Cast(context.Background(), h.ID, owner, domain.VoteDown)
	if !errors.Is(err, e.ErrForbidden) {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}
}

func TestCastVote_HazardNotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	hazards := mock_service.NewMockHazardRepository(ctrl)
	hazards.EXPECT().Get(gomock.Any(), id).Return(nil, e.ErrNotFound)

	svc := service.NewVoteService(hazards, nil, newTestLogger(), fixedClock(testNow))

	_, err := svc.Cast(context.Background(), id, uuid.New(), domain.VoteUp)
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
