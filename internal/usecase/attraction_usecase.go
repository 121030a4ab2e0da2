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

const defaultNearbyRadiusKm = 5.0

type AttractionUseCase struct {
	attractionRepo repository.AttractionRepository
	categoryRepo   repository.CategoryRepository
	logger         *zap.Logger
}

func NewAttractionUseCase(
	attractionRepo repository.AttractionRepository,
	categoryRepo repository.CategoryRepository,
	logger *zap.Logger,
) *AttractionUseCase {
	return &AttractionUseCase{
		attractionRepo: attractionRepo,
		categoryRepo:   categoryRepo,
		logger:         logger,
	}
}

// List returns verified attractions, optionally filtered by category name.
func (uc *AttractionUseCase) List(ctx context.Context, category *string) ([]*domain.Attraction, error) {
	return uc.attractionRepo.List(ctx, category, true)
}

func (uc *AttractionUseCase) GetByID(ctx context.Context, id int64) (*domain.Attraction, error) {
	return uc.attractionRepo.GetByID(ctx, id)
}

// Search validates the query before any storage call: empty text is a
// caller error, not an empty result.
func (uc *AttractionUseCase) Search(ctx context.Context, query string) ([]*domain.Attraction, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperrors.ErrEmptySearchQuery
	}

	return uc.attractionRepo.SearchByName(ctx, query)
}

// Nearby validates coordinates and radius, then runs the radius query.
// Radius defaults to 5 km when omitted.
func (uc *AttractionUseCase) Nearby(ctx context.Context, req dto.NearbyRequest) ([]*domain.Attraction, error) {
	if !utils.ValidateCoordinates(*req.Lat, *req.Lng) {
		return nil, apperrors.ErrInvalidCoordinates
	}

	radius := req.RadiusKm
	if radius == 0 {
		radius = defaultNearbyRadiusKm
	}
	if !utils.ValidateRadius(radius) {
		return nil, apperrors.ErrInvalidRadius
	}

	return uc.attractionRepo.Nearby(ctx, *req.Lat, *req.Lng, radius, req.Limit)
}

// GroupedByCategory builds the compact city view: verified attractions
// bucketed under their category names.
func (uc *AttractionUseCase) GroupedByCategory(ctx context.Context) (dto.GroupedAttractionsResponse, error) {
	attractions, err := uc.attractionRepo.List(ctx, nil, true)
	if err != nil {
		return nil, err
	}

	grouped := make(dto.GroupedAttractionsResponse)
	for _, a := range attractions {
		key := strings.ToLower(a.CategoryName)
		grouped[key] = append(grouped[key], dto.GroupedAttraction{
			ID:          a.ID,
			Name:        a.Name,
			Lat:         a.Lat,
			Lng:         a.Lng,
			Description: a.Description,
			Address:     a.Address,
			Image:       a.ImageURL,
			Rating:      a.Rating,
		})
	}

	return grouped, nil
}

// Create inserts an administrator-authored verified attraction. The category
// must resolve before the insert is attempted.
func (uc *AttractionUseCase) Create(
	ctx context.Context,
	req dto.CreateAttractionRequest,
	actorID int64,
) (*domain.Attraction, error) {
	if !utils.ValidateCoordinates(*req.Lat, *req.Lng) {
		return nil, apperrors.ErrInvalidCoordinates
	}

	if _, err := uc.categoryRepo.GetByID(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	attraction := &domain.Attraction{
		Name:        req.Name,
		Description: req.Description,
		Lat:         *req.Lat,
		Lng:         *req.Lng,
		Address:     req.Address,
		Rating:      req.Rating,
		ImageURL:    req.ImageURL,
		SubmittedBy: &actorID,
		CategoryID:  req.CategoryID,
	}

	created, err := uc.attractionRepo.Create(ctx, attraction)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Attraction created directly",
		zap.Int64("attraction_id", created.ID),
		zap.Int64("actor_id", actorID),
	)

	return created, nil
}

func (uc *AttractionUseCase) Update(
	ctx context.Context,
	id int64,
	req dto.UpdateAttractionRequest,
) (*domain.Attraction, error) {
	patch := domain.AttractionPatch{
		Name:        req.Name,
		Description: req.Description,
		Lat:         req.Lat,
		Lng:         req.Lng,
		Address:     req.Address,
		Rating:      req.Rating,
		ImageURL:    req.ImageURL,
		CategoryID:  req.CategoryID,
	}

	if patch.Empty() {
		return nil, apperrors.ErrInvalidRequest
	}

	if patch.Lat != nil || patch.Lng != nil {
		// A one-sided coordinate change is still validated against the
		// stored counterpart.
		current, err := uc.attractionRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		lat, lng := current.Lat, current.Lng
		if patch.Lat != nil {
			lat = *patch.Lat
		}
		if patch.Lng != nil {
			lng = *patch.Lng
		}
		if !utils.ValidateCoordinates(lat, lng) {
			return nil, apperrors.ErrInvalidCoordinates
		}
	}

	if patch.CategoryID != nil {
		if _, err := uc.categoryRepo.GetByID(ctx, *patch.CategoryID); err != nil {
			return nil, err
		}
	}

	return uc.attractionRepo.Update(ctx, id, patch)
}

func (uc *AttractionUseCase) Delete(ctx context.Context, id int64, actorID int64) error {
	if err := uc.attractionRepo.Delete(ctx, id); err != nil {
		return err
	}

	uc.logger.Info("Attraction deleted",
		zap.Int64("attraction_id", id),
		zap.Int64("actor_id", actorID),
	)

	return nil
}
