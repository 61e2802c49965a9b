package handlers

import (
	"arbotique/internal/dto"
	"arbotique/internal/models"
	"arbotique/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type RecommendationHandler struct {
	recService *service.RecommendationService
	logger     *zap.Logger
}

func NewRecommendationHandler(recService *service.RecommendationService, logger *zap.Logger) *RecommendationHandler {
	return &RecommendationHandler{
		recService: recService,
		logger:     logger,
	}
}

// Recommend godoc
// @Summary Recommend outfits
// @Description Builds a recommendation request from a profile and style quiz. Always returns outfits.
// @Tags recommendations
// @Accept json
// @Produce json
// @Param request body dto.RecommendRequest true "Profile and style quiz"
// @Success 200 {object} dto.RecommendResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/recommendations [post]
func (h *RecommendationHandler) Recommend(c *fiber.Ctx) error {
	var req dto.RecommendRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Invalid request body",
		})
	}

	outfits := h.recService.GetRecommendations(c.UserContext(), req.Profile, req.Quiz)
	return c.JSON(dto.RecommendResponse{Outfits: service.Normalize(outfits)})
}

// Placeholder godoc
// @Summary Placeholder image for an item type
// @Description Redirects to the image shown when an item's own image fails to load
// @Tags recommendations
// @Param type path string true "Item type: top, bottom, shoes, accessory"
// @Success 302
// @Router /api/v1/placeholders/{type} [get]
func (h *RecommendationHandler) Placeholder(c *fiber.Ctx) error {
	return c.Redirect(service.PlaceholderImage(models.ItemType(c.Params("type"))), fiber.StatusFound)
}
