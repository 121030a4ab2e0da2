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

// RecommendationHandler serves the moderation pipeline: user submissions and
// admin review decisions.
type RecommendationHandler struct {
	recommendationUC *usecase.RecommendationUseCase
	logger           *zap.Logger
}

func NewRecommendationHandler(recommendationUC *usecase.RecommendationUseCase, logger *zap.Logger) *RecommendationHandler {
	return &RecommendationHandler{
		recommendationUC: recommendationUC,
		logger:           logger,
	}
}

// Submit accepts a new candidate. Anonymous submissions are allowed; the
// contributor is attached only when the request carried a valid token.
func (h *RecommendationHandler) Submit(c *fiber.Ctx) error {
	var req dto.SubmitRecommendationRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	var contributorID *int64
	if id, ok := middleware.UserID(c); ok {
		contributorID = &id
	}

	rec, err := h.recommendationUC.Submit(c.Context(), req, contributorID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, rec)
}

// ListMine returns the authenticated contributor's own submissions.
func (h *RecommendationHandler) ListMine(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.SendError(c, apperrors.ErrUnauthorized)
	}

	recs, err := h.recommendationUC.ListMine(c.Context(), userID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, recs, &utils.Meta{Total: len(recs)})
}

// ListPending returns the admin review queue, newest first.
func (h *RecommendationHandler) ListPending(c *fiber.Ctx) error {
	recs, err := h.recommendationUC.ListPending(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, recs, &utils.Meta{Total: len(recs)})
}

// Approve promotes a pending candidate into the verified catalog.
func (h *RecommendationHandler) Approve(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.ApproveRecommendationRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest)
	}

	reviewerID, ok := middleware.UserID(c)
	if !ok {
		return utils.SendError(c, apperrors.ErrUnauthorized)
	}

	result, err := h.recommendationUC.Approve(c.Context(), id, req, reviewerID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// Reject marks a pending candidate rejected.
func (h *RecommendationHandler) Reject(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.RejectRecommendationRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest)
	}

	reviewerID, ok := middleware.UserID(c)
	if !ok {
		return utils.SendError(c, apperrors.ErrUnauthorized)
	}

	rec, err := h.recommendationUC.Reject(c.Context(), id, req, reviewerID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, rec, nil)
}
