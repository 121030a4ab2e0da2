package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/traveloki-service/internal/domain"
	"github.com/traveloki-service/internal/domain/repository"
)

type StatsUseCase struct {
	statsRepo repository.StatsRepository
	logger    *zap.Logger
}

func NewStatsUseCase(
	statsRepo repository.StatsRepository,
	logger *zap.Logger,
) *StatsUseCase {
	return &StatsUseCase{
		statsRepo: statsRepo,
		logger:    logger,
	}
}

func (uc *StatsUseCase) GetStatistics(ctx context.Context) (*domain.Statistics, error) {
	stats, err := uc.statsRepo.GetStatistics(ctx)
	if err != nil {
		uc.logger.Error("Failed to get statistics", zap.Error(err))
		return nil, err
	}

	return stats, nil
}
