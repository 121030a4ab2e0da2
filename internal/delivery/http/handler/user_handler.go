package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/traveloki-service/internal/delivery/http/middleware"
	apperrors "github.com/traveloki-service/internal/pkg/errors"
	"github.com/traveloki-service/internal/pkg/utils"
	"github.com/traveloki-service/internal/pkg/validator"
	"github.com/traveloki-service/internal/usecase"
	"github.com/traveloki-service/internal/usecase/dto"
)

type UserHandler struct {
	accountUC *usecase.AccountUseCase
	logger    *zap.Logger
}

func NewUserHandler(accountUC *usecase.AccountUseCase, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		accountUC: accountUC,
		logger:    logger,
	}
}

func (h *UserHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	resp, err := h.accountUC.Register(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, resp)
}

func (h *UserHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	resp, err := h.accountUC.Login(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, resp, nil)
}

func (h *UserHandler) Profile(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.SendError(c, apperrors.ErrUnauthorized)
	}

	profile, err := h.accountUC.Profile(c.Context(), userID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, profile, nil)
}
