package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/traveloki-service/internal/domain/repository"
	"github.com/traveloki-service/internal/repository/postgres"
)

// NewDBForTest creates a postgres.DB with test database and logger
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.NewDBForTest(db, logger)
}

// NewAttractionRepositoryForTest creates an attraction repository with test database and logger
func NewAttractionRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.AttractionRepository {
	return postgres.NewAttractionRepository(NewDBForTest(db, logger))
}

// NewRecommendationRepositoryForTest creates a recommendation repository with test database and logger
func NewRecommendationRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.RecommendationRepository {
	return postgres.NewRecommendationRepository(NewDBForTest(db, logger))
}

// NewCategoryRepositoryForTest creates a category repository with test database and logger
func NewCategoryRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.CategoryRepository {
	return postgres.NewCategoryRepository(NewDBForTest(db, logger))
}

// NewUserRepositoryForTest creates a user repository with test database and logger
func NewUserRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.UserRepository {
	return postgres.NewUserRepository(NewDBForTest(db, logger))
}

// NewStatsRepositoryForTest creates a stats repository with test database and logger
func NewStatsRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.StatsRepository {
	return postgres.NewStatsRepository(NewDBForTest(db, logger))
}
