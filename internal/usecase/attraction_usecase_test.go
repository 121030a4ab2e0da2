package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/traveloki-service/internal/domain"
	apperrors "github.com/traveloki-service/internal/pkg/errors"
	"github.com/traveloki-service/internal/usecase"
	"github.com/traveloki-service/internal/usecase/dto"
)

// MockAttractionRepository is a mock of AttractionRepository
type MockAttractionRepository struct {
	mock.Mock
}

func (m *MockAttractionRepository) List(ctx context.Context, category *string, verifiedOnly bool) ([]*domain.Attraction, error) {
	args := m.Called(ctx, category, verifiedOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Attraction), args.Error(1)
}

func (m *MockAttractionRepository) GetByID(ctx context.Context, id int64) (*domain.Attraction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Attraction), args.Error(1)
}

func (m *MockAttractionRepository) SearchByName(ctx context.Context, query string) ([]*domain.Attraction, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Attraction), args.Error(1)
}

func (m *MockAttractionRepository) Nearby(ctx context.Context, lat, lng, radiusKm float64, limit int) ([]*domain.Attraction, error) {
	args := m.Called(ctx, lat, lng, radiusKm, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Attraction), args.Error(1)
}

func (m *MockAttractionRepository) Create(ctx context.Context, attraction *domain.Attraction) (*domain.Attraction, error) {
	args := m.Called(ctx, attraction)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Attraction), args.Error(1)
}

func (m *MockAttractionRepository) Update(ctx context.Context, id int64, patch domain.AttractionPatch) (*domain.Attraction, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Attraction), args.Error(1)
}

func (m *MockAttractionRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestAttractionUseCase_Search(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("trims the query", func(t *testing.T) {
		attrRepo := &MockAttractionRepository{}
		catRepo := &MockCategoryRepository{}
		uc := usecase.NewAttractionUseCase(attrRepo, catRepo, logger)

		attrRepo.On("SearchByName", ctx, "maimun").Return([]*domain.Attraction{
			{ID: 1, Name: "Istana Maimun"},
		}, nil)

		results, err := uc.Search(ctx, "  maimun  ")

		assert.NoError(t, err)
		assert.Len(t, results, 1)

		attrRepo.AssertExpectations(t)
	})

	t.Run("empty query is a caller error", func(t *testing.T) {
		attrRepo := &MockAttractionRepository{}
		catRepo := &MockCategoryRepository{}
		uc := usecase.NewAttractionUseCase(attrRepo, catRepo, logger)

		results, err := uc.Search(ctx, "   ")

		assert.ErrorIs(t, err, apperrors.ErrEmptySearchQuery)
		assert.Nil(t, results)
		attrRepo.AssertNotCalled(t, "SearchByName", mock.Anything, mock.Anything)
	})
}

func TestAttractionUseCase_Nearby(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("defaults radius to 5 km", func(t *testing.T) {
		attrRepo := &MockAttractionRepository{}
		catRepo := &MockCategoryRepository{}
		uc := usecase.NewAttractionUseCase(attrRepo, catRepo, logger)

		attrRepo.On("Nearby", ctx, 3.5952, 98.6722, 5.0, 0).
			Return([]*domain.Attraction{}, nil)

		req := dto.NearbyRequest{Lat: ptrFloat(3.5952), Lng: ptrFloat(98.6722)}
		_, err := uc.Nearby(ctx, req)

		assert.NoError(t, err)
		attrRepo.AssertExpectations(t)
	})

	t.Run("invalid coordinates", func(t *testing.T) {
		attrRepo := &MockAttractionRepository{}
		catRepo := &MockCategoryRepository{}
		uc := usecase.NewAttractionUseCase(attrRepo, catRepo, logger)

		req := dto.NearbyRequest{Lat: ptrFloat(3.5952), Lng: ptrFloat(181.0)}
		results, err := uc.Nearby(ctx, req)

		assert.ErrorIs(t, err, apperrors.ErrInvalidCoordinates)
		assert.Nil(t, results)
	})

	t.Run("radius out of range", func(t *testing.T) {
		attrRepo := &MockAttractionRepository{}
		catRepo := &MockCategoryRepository{}
		uc := usecase.NewAttractionUseCase(attrRepo, catRepo, logger)

		req := dto.NearbyRequest{Lat: ptrFloat(3.5952), Lng: ptrFloat(98.6722), RadiusKm: 500}
		results, err := uc.Nearby(ctx, req)

		assert.ErrorIs(t, err, apperrors.ErrInvalidRadius)
		assert.Nil(t, results)
	})

	t.Run("coordinate zero is valid", func(t *testing.T) {
		attrRepo := &MockAttractionRepository{}
		catRepo := &MockCategoryRepository{}
		uc := usecase.NewAttractionUseCase(attrRepo, catRepo, logger)

		attrRepo.On("Nearby", ctx, 0.0, 0.0, 5.0, 0).
			Return([]*domain.Attraction{}, nil)

		req := dto.NearbyRequest{Lat: ptrFloat(0), Lng: ptrFloat(0)}
		_, err := uc.Nearby(ctx, req)

		assert.NoError(t, err)
		attrRepo.AssertExpectations(t)
	})
}

func TestAttractionUseCase_GroupedByCategory(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	attrRepo := &MockAttractionRepository{}
	catRepo := &MockCategoryRepository{}
	uc := usecase.NewAttractionUseCase(attrRepo, catRepo, logger)

	attrRepo.On("List", ctx, (*string)(nil), true).Return([]*domain.Attraction{
		{ID: 1, Name: "Merdeka Walk", CategoryName: "Food", Lat: 3.59, Lng: 98.67},
		{ID: 2, Name: "Istana Maimun", CategoryName: "fun", Lat: 3.57, Lng: 98.68},
		{ID: 3, Name: "Mie Aceh Titi Bobrok", CategoryName: "food", Lat: 3.58, Lng: 98.65},
	}, nil)

	grouped, err := uc.GroupedByCategory(ctx)

	assert.NoError(t, err)
	assert.Len(t, grouped["food"], 2)
	assert.Len(t, grouped["fun"], 1)

	attrRepo.AssertExpectations(t)
}

func TestAttractionUseCase_Create(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("category must resolve before insert", func(t *testing.T) {
		attrRepo := &MockAttractionRepository{}
		catRepo := &MockCategoryRepository{}
		uc := usecase.NewAttractionUseCase(attrRepo, catRepo, logger)

		catRepo.On("GetByID", ctx, int64(42)).
			Return(nil, apperrors.ErrCategoryNotFound)

		req := dto.CreateAttractionRequest{
			Name:       "New Spot",
			Lat:        ptrFloat(3.59),
			Lng:        ptrFloat(98.67),
			CategoryID: 42,
		}

		created, err := uc.Create(ctx, req, 1)

		assert.ErrorIs(t, err, apperrors.ErrCategoryNotFound)
		assert.Nil(t, created)
		attrRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("success records the actor", func(t *testing.T) {
		attrRepo := &MockAttractionRepository{}
		catRepo := &MockCategoryRepository{}
		uc := usecase.NewAttractionUseCase(attrRepo, catRepo, logger)

		catRepo.On("GetByID", ctx, int64(1)).
			Return(&domain.Category{ID: 1, Name: "food"}, nil)
		attrRepo.On("Create", ctx, mock.MatchedBy(func(a *domain.Attraction) bool {
			return a.SubmittedBy != nil && *a.SubmittedBy == 9 && a.CategoryID == 1
		})).Return(&domain.Attraction{ID: 3, IsVerified: true}, nil)

		req := dto.CreateAttractionRequest{
			Name:       "New Spot",
			Lat:        ptrFloat(3.59),
			Lng:        ptrFloat(98.67),
			CategoryID: 1,
		}

		created, err := uc.Create(ctx, req, 9)

		assert.NoError(t, err)
		assert.True(t, created.IsVerified)

		attrRepo.AssertExpectations(t)
		catRepo.AssertExpectations(t)
	})
}

func TestAttractionUseCase_Update(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("empty patch rejected", func(t *testing.T) {
		attrRepo := &MockAttractionRepository{}
		catRepo := &MockCategoryRepository{}
		uc := usecase.NewAttractionUseCase(attrRepo, catRepo, logger)

		updated, err := uc.Update(ctx, 1, dto.UpdateAttractionRequest{})

		assert.ErrorIs(t, err, apperrors.ErrInvalidRequest)
		assert.Nil(t, updated)
		attrRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("one-sided coordinate change validated against stored counterpart", func(t *testing.T) {
		attrRepo := &MockAttractionRepository{}
		catRepo := &MockCategoryRepository{}
		uc := usecase.NewAttractionUseCase(attrRepo, catRepo, logger)

		attrRepo.On("GetByID", ctx, int64(5)).
			Return(&domain.Attraction{ID: 5, Lat: 3.59, Lng: 98.67}, nil)

		updated, err := uc.Update(ctx, 5, dto.UpdateAttractionRequest{Lat: ptrFloat(-95.0)})

		assert.ErrorIs(t, err, apperrors.ErrInvalidCoordinates)
		assert.Nil(t, updated)
		attrRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("name-only patch skips coordinate lookup", func(t *testing.T) {
		attrRepo := &MockAttractionRepository{}
		catRepo := &MockCategoryRepository{}
		uc := usecase.NewAttractionUseCase(attrRepo, catRepo, logger)

		name := "Renamed"
		attrRepo.On("Update", ctx, int64(6), mock.MatchedBy(func(p domain.AttractionPatch) bool {
			return p.Name != nil && *p.Name == name
		})).Return(&domain.Attraction{ID: 6, Name: name}, nil)

		updated, err := uc.Update(ctx, 6, dto.UpdateAttractionRequest{Name: &name})

		assert.NoError(t, err)
		assert.Equal(t, name, updated.Name)
		attrRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})
}

func TestAttractionUseCase_Delete(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	attrRepo := &MockAttractionRepository{}
	catRepo := &MockCategoryRepository{}
	uc := usecase.NewAttractionUseCase(attrRepo, catRepo, logger)

	attrRepo.On("Delete", ctx, int64(404)).Return(apperrors.ErrAttractionNotFound)

	err := uc.Delete(ctx, 404, 1)

	assert.ErrorIs(t, err, apperrors.ErrAttractionNotFound)
	attrRepo.AssertExpectations(t)
}
