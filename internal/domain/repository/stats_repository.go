package repository

import (
	"context"

	"github.com/traveloki-service/internal/domain"
)

type StatsRepository interface {
	GetStatistics(ctx context.Context) (*domain.Statistics, error)
}
