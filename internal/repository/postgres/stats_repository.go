package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/traveloki-service/internal/domain"
	"github.com/traveloki-service/internal/domain/repository"
	apperrors "github.com/traveloki-service/internal/pkg/errors"
)

type statsRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewStatsRepository(db *DB) repository.StatsRepository {
	return &statsRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *statsRepository) GetStatistics(ctx context.Context) (*domain.Statistics, error) {
	var stats domain.Statistics

	err := r.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*) AS total_attractions,
			COALESCE(SUM(CASE WHEN is_verified THEN 1 ELSE 0 END), 0) AS verified_count,
			COUNT(DISTINCT submitted_by) AS unique_contributors
		FROM attractions
	`).Scan(&stats.TotalAttractions, &stats.VerifiedAttractions, &stats.UniqueContributors)
	if err != nil {
		r.logger.Error("Failed to get attraction statistics", zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}

	err = r.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*) AS total_recommendations,
			COALESCE(SUM(CASE WHEN status = 'pending' THEN 1 ELSE 0 END), 0) AS pending_count,
			COALESCE(SUM(CASE WHEN status = 'approved' THEN 1 ELSE 0 END), 0) AS approved_count,
			COALESCE(SUM(CASE WHEN status = 'rejected' THEN 1 ELSE 0 END), 0) AS rejected_count
		FROM user_recommendations
	`).Scan(
		&stats.TotalRecommendations,
		&stats.PendingRecommendations,
		&stats.ApprovedRecommendations,
		&stats.RejectedRecommendations,
	)
	if err != nil {
		r.logger.Error("Failed to get recommendation statistics", zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}

	return &stats, nil
}
