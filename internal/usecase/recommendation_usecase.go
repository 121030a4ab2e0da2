package usecase

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/traveloki-service/internal/domain"
	"github.com/traveloki-service/internal/domain/repository"
	apperrors "github.com/traveloki-service/internal/pkg/errors"
	"github.com/traveloki-service/internal/pkg/utils"
	"github.com/traveloki-service/internal/usecase/dto"
)

type RecommendationUseCase struct {
	recommendationRepo repository.RecommendationRepository
	categoryRepo       repository.CategoryRepository
	logger             *zap.Logger
}

func NewRecommendationUseCase(
	recommendationRepo repository.RecommendationRepository,
	categoryRepo repository.CategoryRepository,
	logger *zap.Logger,
) *RecommendationUseCase {
	return &RecommendationUseCase{
		recommendationRepo: recommendationRepo,
		categoryRepo:       categoryRepo,
		logger:             logger,
	}
}

// Submit stores a new pending candidate. It never touches the verified
// catalog; contributor may be nil for anonymous submissions.
func (uc *RecommendationUseCase) Submit(
	ctx context.Context,
	req dto.SubmitRecommendationRequest,
	contributorID *int64,
) (*domain.Recommendation, error) {
	if !utils.ValidateCoordinates(*req.Lat, *req.Lng) {
		return nil, apperrors.ErrInvalidCoordinates
	}

	rec := &domain.Recommendation{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Lat:         *req.Lat,
		Lng:         *req.Lng,
		Address:     req.Address,
		Category:    strings.TrimSpace(req.Category),
		SubmittedBy: contributorID,
		Status:      domain.StatusPending,
	}

	created, err := uc.recommendationRepo.Create(ctx, rec)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Recommendation submitted",
		zap.Int64("recommendation_id", created.ID),
		zap.Bool("anonymous", contributorID == nil),
	)

	return created, nil
}

func (uc *RecommendationUseCase) ListPending(ctx context.Context) ([]*domain.Recommendation, error) {
	return uc.recommendationRepo.ListPending(ctx)
}

func (uc *RecommendationUseCase) ListMine(ctx context.Context, userID int64) ([]*domain.Recommendation, error) {
	return uc.recommendationRepo.ListBySubmitter(ctx, userID)
}

// Approve resolves the target category and promotes the candidate. The
// caller must name a category explicitly, by id or by label; an unresolvable
// category is the caller's error and nothing is written.
func (uc *RecommendationUseCase) Approve(
	ctx context.Context,
	id int64,
	req dto.ApproveRecommendationRequest,
	reviewerID int64,
) (*domain.ApprovalResult, error) {
	categoryID, err := uc.resolveCategory(ctx, req.CategoryID, req.Category)
	if err != nil {
		return nil, err
	}

	return uc.recommendationRepo.Approve(ctx, id, categoryID, reviewerID, req.Notes)
}

func (uc *RecommendationUseCase) Reject(
	ctx context.Context,
	id int64,
	req dto.RejectRecommendationRequest,
	reviewerID int64,
) (*domain.Recommendation, error) {
	return uc.recommendationRepo.Reject(ctx, id, reviewerID, req.Notes)
}

// resolveCategory turns an explicit id or a free-text label into a verified
// category id. There is deliberately no fallback: silently defaulting an
// unresolved label would miscategorize published records.
func (uc *RecommendationUseCase) resolveCategory(
	ctx context.Context,
	categoryID *int64,
	label *string,
) (int64, error) {
	if categoryID != nil {
		category, err := uc.categoryRepo.GetByID(ctx, *categoryID)
		if err != nil {
			return 0, err
		}
		return category.ID, nil
	}

	if label != nil && strings.TrimSpace(*label) != "" {
		category, err := uc.categoryRepo.GetByName(ctx, strings.TrimSpace(*label))
		if err != nil {
			return 0, err
		}
		return category.ID, nil
	}

	return 0, apperrors.ErrMissingCategory
}
