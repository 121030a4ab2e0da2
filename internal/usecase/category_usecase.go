package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/traveloki-service/internal/domain"
	"github.com/traveloki-service/internal/domain/repository"
)

type CategoryUseCase struct {
	categoryRepo repository.CategoryRepository
	logger       *zap.Logger
}

func NewCategoryUseCase(
	categoryRepo repository.CategoryRepository,
	logger *zap.Logger,
) *CategoryUseCase {
	return &CategoryUseCase{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (uc *CategoryUseCase) List(ctx context.Context) ([]*domain.Category, error) {
	return uc.categoryRepo.List(ctx)
}

func (uc *CategoryUseCase) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	return uc.categoryRepo.GetByID(ctx, id)
}
