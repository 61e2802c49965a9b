package handlers

import (
	"arbotique/internal/dto"
	"arbotique/internal/service"

	"github.com/gofiber/fiber/v2"
)

const ServiceName = "ARBotique Stylist"

type HealthHandler struct {
	monitor *service.HealthMonitor
}

func NewHealthHandler(monitor *service.HealthMonitor) *HealthHandler {
	return &HealthHandler{monitor: monitor}
}

// Health godoc
// @Summary Service health
// @Description Reports this service as up together with the last recommender health observation
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	backend := h.monitor.Status()
	return c.JSON(dto.HealthResponse{
		Status:  "ok",
		Name:    ServiceName,
		Backend: &backend,
	})
}
