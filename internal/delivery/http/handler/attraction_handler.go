package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/traveloki-service/internal/delivery/http/middleware"
	apperrors "github.com/traveloki-service/internal/pkg/errors"
	"github.com/traveloki-service/internal/pkg/utils"
	"github.com/traveloki-service/internal/pkg/validator"
	"github.com/traveloki-service/internal/usecase"
	"github.com/traveloki-service/internal/usecase/dto"
)

// AttractionHandler serves the verified catalog: public reads plus the
// admin-only write paths.
type AttractionHandler struct {
	attractionUC *usecase.AttractionUseCase
	logger       *zap.Logger
}

func NewAttractionHandler(attractionUC *usecase.AttractionUseCase, logger *zap.Logger) *AttractionHandler {
	return &AttractionHandler{
		attractionUC: attractionUC,
		logger:       logger,
	}
}

// List returns verified attractions, optionally filtered with ?category=.
func (h *AttractionHandler) List(c *fiber.Ctx) error {
	var category *string
	if v := c.Query("category"); v != "" {
		category = &v
	}

	attractions, err := h.attractionUC.List(c.Context(), category)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, attractions, &utils.Meta{Total: len(attractions)})
}

// Grouped returns verified attractions bucketed by category name.
func (h *AttractionHandler) Grouped(c *fiber.Ctx) error {
	grouped, err := h.attractionUC.GroupedByCategory(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, grouped, nil)
}

// Search matches ?q= against attraction names and descriptions.
func (h *AttractionHandler) Search(c *fiber.Ctx) error {
	results, err := h.attractionUC.Search(c.Context(), c.Query("q"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, results, &utils.Meta{Total: len(results)})
}

// Nearby runs the radius query from ?lat=&lng=&radius= query params.
func (h *AttractionHandler) Nearby(c *fiber.Ctx) error {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
	if c.Query("lat") == "" || c.Query("lng") == "" || latErr != nil || lngErr != nil {
		return utils.SendError(c, apperrors.ErrInvalidCoordinates)
	}

	req := dto.NearbyRequest{Lat: &lat, Lng: &lng}

	if v := c.Query("radius"); v != "" {
		radius, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return utils.SendError(c, apperrors.ErrInvalidRadius)
		}
		req.RadiusKm = radius
	}
	if v := c.Query("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 1 {
			return utils.SendError(c, apperrors.ErrInvalidRequest)
		}
		req.Limit = limit
	}

	results, err := h.attractionUC.Nearby(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, results, &utils.Meta{Total: len(results)})
}

func (h *AttractionHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	attraction, err := h.attractionUC.GetByID(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, attraction, nil)
}

// Create is the admin direct-insert path; records land verified.
func (h *AttractionHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateAttractionRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	actorID, _ := middleware.UserID(c)
	attraction, err := h.attractionUC.Create(c.Context(), req, actorID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, attraction)
}

func (h *AttractionHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.UpdateAttractionRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	attraction, err := h.attractionUC.Update(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, attraction, nil)
}

func (h *AttractionHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	actorID, _ := middleware.UserID(c)
	if err := h.attractionUC.Delete(c.Context(), id, actorID); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"deleted": true}, nil)
}

func parseIDParam(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, apperrors.ErrInvalidRequest
	}
	return id, nil
}
