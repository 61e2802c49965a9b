package handlers

import (
	"arbotique/internal/catalog"
	"arbotique/internal/dto"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const CatalogName = "ARBotique Catalog API"

// CatalogHandler serves the recommender contract from the built-in catalog.
type CatalogHandler struct {
	outfits []dto.RemoteOutfit
	topK    int
	logger  *zap.Logger
}

func NewCatalogHandler(outfits []dto.RemoteOutfit, topK int, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		outfits: outfits,
		topK:    topK,
		logger:  logger,
	}
}

// Health godoc
// @Summary Catalog health
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *CatalogHandler) Health(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{
		Status: "ok",
		Name:   CatalogName,
	})
}

// Recommend godoc
// @Summary Score catalog outfits
// @Description Ranks the catalog for the request. Missing or mistyped fields take catalog defaults; the rest still apply.
// @Tags catalog
// @Accept json
// @Produce json
// @Param request body dto.RecommendationRequest false "Recommendation request"
// @Success 200 {object} dto.RecommendationResponse
// @Router /api/recommendations [post]
func (h *CatalogHandler) Recommend(c *fiber.Ctx) error {
	req, err := catalog.ParseRequest(c.Body())
	if err != nil {
		h.logger.Debug("Unparsable recommendation request, using defaults", zap.Error(err))
	}

	recs := catalog.Recommend(h.outfits, req, h.topK)
	h.logger.Info("Catalog recommendations served",
		zap.String("user_id", req.UserID),
		zap.Int("count", len(recs)),
	)
	return c.JSON(dto.RecommendationResponse{Recommendations: recs})
}
