package service

import (
	"context"

	"hazardpoint/internal/domain"
)

type statsService struct {
	repo StatsRepository
}

func NewStatsService(repo StatsRepository) StatsService {
	return &statsService{repo: repo}
}

func (s *statsService) GetStats(ctx context.Context, req domain.StatsRequest) (*domain.LifecycleStats, error) {
	minutes := req.Minutes
	if minutes == 0 {
		minutes = 60
	}
	return s.repo.Collect(ctx, minutes)
}
