package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/traveloki-service/internal/domain"
	"github.com/traveloki-service/internal/domain/repository"
	apperrors "github.com/traveloki-service/internal/pkg/errors"
	"github.com/traveloki-service/internal/pkg/utils"
	"github.com/traveloki-service/internal/repository/postgres/testhelpers"
)

// Medan city center, the reference point for the radius tests.
const (
	medanLat = 3.5952
	medanLng = 98.6722
)

type AttractionRepositoryTestSuite struct {
	suite.Suite
	testDB *testhelpers.TestDB
	repo   repository.AttractionRepository
	ctx    context.Context

	foodCategoryID int64
	funCategoryID  int64
}

func (s *AttractionRepositoryTestSuite) SetupSuite() {
	s.testDB = testhelpers.SetupTestDB(s.T())

	err := testhelpers.ApplyMigrations(s.testDB.DB.DB, "../../../migrations")
	s.NoError(err, "Failed to apply migrations")

	s.repo = testhelpers.NewAttractionRepositoryForTest(s.testDB.DB, s.testDB.Logger)
}

func (s *AttractionRepositoryTestSuite) TearDownSuite() {
	if s.testDB != nil {
		s.testDB.Close()
	}
}

func (s *AttractionRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()

	err := s.testDB.Cleanup(s.ctx)
	s.NoError(err, "Failed to cleanup test database")

	s.foodCategoryID, err = testhelpers.GetCategoryIDByName(s.testDB.DB.DB, "food")
	s.NoError(err)
	s.funCategoryID, err = testhelpers.GetCategoryIDByName(s.testDB.DB.DB, "fun")
	s.NoError(err)
}

// ============================================================================
// Nearby Tests
// ============================================================================

func (s *AttractionRepositoryTestSuite) TestNearby_OrderedByDistance() {
	// Roughly 0, 2.5 and 8 km from the center
	_, err := testhelpers.CreateTestAttraction(s.testDB.DB.DB, "At Center", medanLat, medanLng, s.foodCategoryID, true)
	s.NoError(err)
	_, err = testhelpers.CreateTestAttraction(s.testDB.DB.DB, "Close By", 3.5752, 98.6837, s.funCategoryID, true)
	s.NoError(err)
	_, err = testhelpers.CreateTestAttraction(s.testDB.DB.DB, "Far Away", 3.6662, 98.6850, s.foodCategoryID, true)
	s.NoError(err)

	results, err := s.repo.Nearby(s.ctx, medanLat, medanLng, 10, 0)

	s.NoError(err)
	s.Len(results, 3)
	s.Equal("At Center", results[0].Name)
	s.Equal("Close By", results[1].Name)
	s.Equal("Far Away", results[2].Name)

	// Distances are annotated and ascending
	prev := -1.0
	for _, a := range results {
		s.NotNil(a.DistanceKm)
		s.GreaterOrEqual(*a.DistanceKm, prev)
		prev = *a.DistanceKm
	}
}

func (s *AttractionRepositoryTestSuite) TestNearby_CoincidentPointIsZero() {
	_, err := testhelpers.CreateTestAttraction(s.testDB.DB.DB, "At Center", medanLat, medanLng, s.foodCategoryID, true)
	s.NoError(err)

	// The clamp keeps acos in-domain for a coincident point
	results, err := s.repo.Nearby(s.ctx, medanLat, medanLng, 1, 0)

	s.NoError(err)
	s.Len(results, 1)
	s.InDelta(0.0, *results[0].DistanceKm, 1e-6)
}

func (s *AttractionRepositoryTestSuite) TestNearby_RadiusCutoff() {
	_, err := testhelpers.CreateTestAttraction(s.testDB.DB.DB, "Inside", 3.5752, 98.6837, s.foodCategoryID, true)
	s.NoError(err)
	_, err = testhelpers.CreateTestAttraction(s.testDB.DB.DB, "Outside", 3.6662, 98.6850, s.foodCategoryID, true)
	s.NoError(err)

	results, err := s.repo.Nearby(s.ctx, medanLat, medanLng, 5, 0)

	s.NoError(err)
	s.Len(results, 1)
	s.Equal("Inside", results[0].Name)
	s.LessOrEqual(*results[0].DistanceKm, 5.0)
}

func (s *AttractionRepositoryTestSuite) TestNearby_RecordAtExactRadiusIncluded() {
	_, err := testhelpers.CreateTestAttraction(s.testDB.DB.DB, "Edge", 3.5752, 98.6837, s.foodCategoryID, true)
	s.NoError(err)

	// Read back the distance the database computes for this row, then query
	// with the radius set to exactly that value. The cutoff is inclusive, so
	// a record sitting precisely on the radius is still returned.
	warmup, err := s.repo.Nearby(s.ctx, medanLat, medanLng, 10, 0)
	s.NoError(err)
	s.Len(warmup, 1)
	s.NotNil(warmup[0].DistanceKm)
	edgeDistance := *warmup[0].DistanceKm
	s.InDelta(utils.GreatCircleDistance(medanLat, medanLng, 3.5752, 98.6837), edgeDistance, 1e-6)

	results, err := s.repo.Nearby(s.ctx, medanLat, medanLng, edgeDistance, 0)

	s.NoError(err)
	s.Len(results, 1)
	s.Equal("Edge", results[0].Name)
}

func (s *AttractionRepositoryTestSuite) TestNearby_ExcludesUnverified() {
	_, err := testhelpers.CreateTestAttraction(s.testDB.DB.DB, "Verified", medanLat, medanLng, s.foodCategoryID, true)
	s.NoError(err)
	_, err = testhelpers.CreateTestAttraction(s.testDB.DB.DB, "Unverified", medanLat, medanLng, s.foodCategoryID, false)
	s.NoError(err)

	results, err := s.repo.Nearby(s.ctx, medanLat, medanLng, 5, 0)

	s.NoError(err)
	s.Len(results, 1)
	s.Equal("Verified", results[0].Name)
}

func (s *AttractionRepositoryTestSuite) TestNearby_LimitApplied() {
	for _, name := range []string{"A", "B", "C"} {
		_, err := testhelpers.CreateTestAttraction(s.testDB.DB.DB, name, medanLat, medanLng, s.foodCategoryID, true)
		s.NoError(err)
	}

	results, err := s.repo.Nearby(s.ctx, medanLat, medanLng, 5, 2)

	s.NoError(err)
	s.Len(results, 2)
}

// ============================================================================
// List / Get / Search Tests
// ============================================================================

func (s *AttractionRepositoryTestSuite) TestList_FilterByCategory() {
	_, err := testhelpers.CreateTestAttraction(s.testDB.DB.DB, "Eats", medanLat, medanLng, s.foodCategoryID, true)
	s.NoError(err)
	_, err = testhelpers.CreateTestAttraction(s.testDB.DB.DB, "Rides", medanLat, medanLng, s.funCategoryID, true)
	s.NoError(err)
	_, err = testhelpers.CreateTestAttraction(s.testDB.DB.DB, "Hidden Eats", medanLat, medanLng, s.foodCategoryID, false)
	s.NoError(err)

	category := "FOOD"
	results, err := s.repo.List(s.ctx, &category, true)

	s.NoError(err)
	s.Len(results, 1)
	s.Equal("Eats", results[0].Name)
	s.Equal("food", results[0].CategoryName)
}

func (s *AttractionRepositoryTestSuite) TestGetByID_JoinsCategoryMetadata() {
	id, err := testhelpers.CreateTestAttraction(s.testDB.DB.DB, "Eats", medanLat, medanLng, s.foodCategoryID, true)
	s.NoError(err)

	a, err := s.repo.GetByID(s.ctx, id)

	s.NoError(err)
	s.Equal("Eats", a.Name)
	s.Equal("food", a.CategoryName)
	s.NotNil(a.CategoryEmoji)
	s.NotNil(a.CategoryColor)
}

func (s *AttractionRepositoryTestSuite) TestGetByID_NotFound() {
	a, err := s.repo.GetByID(s.ctx, 999999)

	s.ErrorIs(err, apperrors.ErrAttractionNotFound)
	s.Nil(a)
}

func (s *AttractionRepositoryTestSuite) TestSearchByName_CaseInsensitive() {
	_, err := testhelpers.CreateTestAttraction(s.testDB.DB.DB, "Istana Maimun", medanLat, medanLng, s.funCategoryID, true)
	s.NoError(err)
	_, err = testhelpers.CreateTestAttraction(s.testDB.DB.DB, "Merdeka Walk", medanLat, medanLng, s.foodCategoryID, true)
	s.NoError(err)
	_, err = testhelpers.CreateTestAttraction(s.testDB.DB.DB, "Maimun Annex", medanLat, medanLng, s.funCategoryID, false)
	s.NoError(err)

	results, err := s.repo.SearchByName(s.ctx, "MAIMUN")

	s.NoError(err)
	s.Len(results, 1)
	s.Equal("Istana Maimun", results[0].Name)
}

// ============================================================================
// Create / Update / Delete Tests
// ============================================================================

func (s *AttractionRepositoryTestSuite) TestCreate_AlwaysVerified() {
	created, err := s.repo.Create(s.ctx, &domain.Attraction{
		Name:       "New Spot",
		Lat:        medanLat,
		Lng:        medanLng,
		CategoryID: s.foodCategoryID,
	})

	s.NoError(err)
	s.NotZero(created.ID)
	s.True(created.IsVerified)

	var verified bool
	err = s.testDB.DB.Get(&verified, "SELECT is_verified FROM attractions WHERE id = $1", created.ID)
	s.NoError(err)
	s.True(verified)
}

func (s *AttractionRepositoryTestSuite) TestCreate_UnknownCategory() {
	created, err := s.repo.Create(s.ctx, &domain.Attraction{
		Name:       "Orphan",
		Lat:        medanLat,
		Lng:        medanLng,
		CategoryID: 999999,
	})

	s.ErrorIs(err, apperrors.ErrConstraintViolation)
	s.Nil(created)
}

func (s *AttractionRepositoryTestSuite) TestUpdate_PartialPatch() {
	id, err := testhelpers.CreateTestAttraction(s.testDB.DB.DB, "Old Name", medanLat, medanLng, s.foodCategoryID, true)
	s.NoError(err)

	name := "New Name"
	rating := 4.5
	updated, err := s.repo.Update(s.ctx, id, domain.AttractionPatch{
		Name:   &name,
		Rating: &rating,
	})

	s.NoError(err)
	s.Equal("New Name", updated.Name)
	s.InDelta(4.5, updated.Rating, 1e-9)
	// Untouched fields survive
	s.InDelta(medanLat, updated.Lat, 1e-9)
}

func (s *AttractionRepositoryTestSuite) TestUpdate_NotFound() {
	name := "Whatever"
	updated, err := s.repo.Update(s.ctx, 999999, domain.AttractionPatch{Name: &name})

	s.ErrorIs(err, apperrors.ErrAttractionNotFound)
	s.Nil(updated)
}

func (s *AttractionRepositoryTestSuite) TestDelete() {
	id, err := testhelpers.CreateTestAttraction(s.testDB.DB.DB, "Doomed", medanLat, medanLng, s.foodCategoryID, true)
	s.NoError(err)

	s.NoError(s.repo.Delete(s.ctx, id))
	s.ErrorIs(s.repo.Delete(s.ctx, id), apperrors.ErrAttractionNotFound)
}

func TestAttractionRepository(t *testing.T) {
	suite.Run(t, new(AttractionRepositoryTestSuite))
}
