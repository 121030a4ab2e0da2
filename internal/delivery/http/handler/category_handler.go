package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/traveloki-service/internal/pkg/utils"
	"github.com/traveloki-service/internal/usecase"
)

type CategoryHandler struct {
	categoryUC *usecase.CategoryUseCase
	logger     *zap.Logger
}

func NewCategoryHandler(categoryUC *usecase.CategoryUseCase, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		categoryUC: categoryUC,
		logger:     logger,
	}
}

func (h *CategoryHandler) List(c *fiber.Ctx) error {
	categories, err := h.categoryUC.List(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, categories, &utils.Meta{Total: len(categories)})
}

func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	category, err := h.categoryUC.GetByID(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, category, nil)
}
