package usecase

import (
	"context"
	goerrors "errors"

	"go.uber.org/zap"

	"github.com/traveloki-service/internal/domain"
	"github.com/traveloki-service/internal/domain/repository"
	"github.com/traveloki-service/internal/pkg/auth"
	apperrors "github.com/traveloki-service/internal/pkg/errors"
	"github.com/traveloki-service/internal/usecase/dto"
)

type AccountUseCase struct {
	userRepo repository.UserRepository
	tokens   *auth.TokenManager
	logger   *zap.Logger
}

func NewAccountUseCase(
	userRepo repository.UserRepository,
	tokens *auth.TokenManager,
	logger *zap.Logger,
) *AccountUseCase {
	return &AccountUseCase{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

// Register creates an account with the default user role and returns a
// signed token. A taken username is rejected before hashing; a duplicate
// email still surfaces as ErrDuplicateEntry from the unique constraint.
func (uc *AccountUseCase) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	if _, err := uc.userRepo.GetByUsername(ctx, req.Username); err == nil {
		return nil, apperrors.ErrDuplicateEntry
	} else if !goerrors.Is(err, apperrors.ErrUserNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		uc.logger.Error("Failed to hash password", zap.Error(err))
		return nil, apperrors.ErrInternalServer
	}

	user := &domain.User{
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: hash,
		FullName:     req.FullName,
		Role:         domain.RoleUser,
	}

	created, err := uc.userRepo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	token, err := uc.tokens.Issue(created.ID, created.Role)
	if err != nil {
		uc.logger.Error("Failed to issue token", zap.Int64("user_id", created.ID), zap.Error(err))
		return nil, apperrors.ErrInternalServer
	}

	uc.logger.Info("User registered", zap.Int64("user_id", created.ID))

	return &dto.AuthResponse{
		User:  dto.NewUserResponse(created),
		Token: token,
	}, nil
}

// Login verifies credentials and issues a token. Unknown email and a wrong
// password are indistinguishable to the caller.
func (uc *AccountUseCase) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if goerrors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := auth.CheckPassword(user.PasswordHash, req.Password); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := uc.tokens.Issue(user.ID, user.Role)
	if err != nil {
		uc.logger.Error("Failed to issue token", zap.Int64("user_id", user.ID), zap.Error(err))
		return nil, apperrors.ErrInternalServer
	}

	return &dto.AuthResponse{
		User:  dto.NewUserResponse(user),
		Token: token,
	}, nil
}

func (uc *AccountUseCase) Profile(ctx context.Context, userID int64) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return dto.NewUserResponse(user), nil
}
