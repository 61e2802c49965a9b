package middleware

import (
	"strings"

	"arbotique/internal/wizard"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"
)

const (
	SessionHeader = "X-Session-ID"
	FlowKey       = "flow"
)

// SessionMiddleware resolves the wizard flow named by the X-Session-ID header
// and stores it in c.Locals(FlowKey).
func SessionMiddleware(store *wizard.Store, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID := strings.TrimSpace(utils.CopyString(c.Get(SessionHeader)))
		if sessionID == "" {
			logger.Warn("Missing session header", zap.String("path", utils.CopyString(c.Path())))
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Session ID required",
			})
		}

		flow, ok := store.Get(sessionID)
		if !ok {
			logger.Warn("Unknown session", zap.String("session_id", sessionID))
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Session not found",
			})
		}

		c.Locals(FlowKey, flow)
		return c.Next()
	}
}

// FlowFromContext returns the flow stored by SessionMiddleware.
func FlowFromContext(c *fiber.Ctx) (*wizard.Flow, bool) {
	flow, ok := c.Locals(FlowKey).(*wizard.Flow)
	return flow, ok
}
