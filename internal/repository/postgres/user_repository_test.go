package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/traveloki-service/internal/domain"
	"github.com/traveloki-service/internal/domain/repository"
	apperrors "github.com/traveloki-service/internal/pkg/errors"
	"github.com/traveloki-service/internal/repository/postgres/testhelpers"
)

type UserRepositoryTestSuite struct {
	suite.Suite
	testDB *testhelpers.TestDB
	repo   repository.UserRepository
	ctx    context.Context
}

func (s *UserRepositoryTestSuite) SetupSuite() {
	s.testDB = testhelpers.SetupTestDB(s.T())

	err := testhelpers.ApplyMigrations(s.testDB.DB.DB, "../../../migrations")
	s.NoError(err, "Failed to apply migrations")

	s.repo = testhelpers.NewUserRepositoryForTest(s.testDB.DB, s.testDB.Logger)
}

func (s *UserRepositoryTestSuite) TearDownSuite() {
	if s.testDB != nil {
		s.testDB.Close()
	}
}

func (s *UserRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.NoError(s.testDB.Cleanup(s.ctx))
}

func (s *UserRepositoryTestSuite) TestCreate_DefaultsApplied() {
	created, err := s.repo.Create(s.ctx, &domain.User{
		Email:        "ana@example.com",
		Username:     "ana",
		PasswordHash: "hash",
		Role:         domain.RoleUser,
	})

	s.NoError(err)
	s.NotZero(created.ID)
	s.True(created.IsActive)
	s.Equal(domain.RoleUser, created.Role)
}

func (s *UserRepositoryTestSuite) TestCreate_DuplicateEmail() {
	_, err := s.repo.Create(s.ctx, &domain.User{
		Email: "ana@example.com", Username: "ana", PasswordHash: "x", Role: domain.RoleUser,
	})
	s.NoError(err)

	dup, err := s.repo.Create(s.ctx, &domain.User{
		Email: "ana@example.com", Username: "other", PasswordHash: "x", Role: domain.RoleUser,
	})

	s.ErrorIs(err, apperrors.ErrDuplicateEntry)
	s.Nil(dup)
}

func (s *UserRepositoryTestSuite) TestLookups() {
	created, err := s.repo.Create(s.ctx, &domain.User{
		Email: "ana@example.com", Username: "ana", PasswordHash: "x", Role: domain.RoleAdmin,
	})
	s.NoError(err)

	byID, err := s.repo.GetByID(s.ctx, created.ID)
	s.NoError(err)
	s.Equal("ana", byID.Username)
	s.True(byID.IsAdmin())

	byEmail, err := s.repo.GetByEmail(s.ctx, "ana@example.com")
	s.NoError(err)
	s.Equal(created.ID, byEmail.ID)

	byUsername, err := s.repo.GetByUsername(s.ctx, "ana")
	s.NoError(err)
	s.Equal(created.ID, byUsername.ID)

	_, err = s.repo.GetByEmail(s.ctx, "ghost@example.com")
	s.ErrorIs(err, apperrors.ErrUserNotFound)
}

func TestUserRepository(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
