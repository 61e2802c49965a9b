package handlers

import (
	"errors"

	"arbotique/internal/dto"
	"arbotique/internal/models"
	"arbotique/internal/service"
	"arbotique/internal/wizard"
	"arbotique/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type SessionHandler struct {
	store  *wizard.Store
	logger *zap.Logger
}

func NewSessionHandler(store *wizard.Store, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{
		store:  store,
		logger: logger,
	}
}

// CreateSession godoc
// @Summary Create a wizard session
// @Description Opens a new session on the home view. Pass the returned session_id in the X-Session-ID header.
// @Tags session
// @Produce json
// @Success 201 {object} dto.SessionResponse
// @Router /api/v1/sessions [post]
func (h *SessionHandler) CreateSession(c *fiber.Ctx) error {
	flow := h.store.Create()
	h.logger.Info("Session created", zap.String("session_id", flow.ID()))
	return c.Status(fiber.StatusCreated).JSON(toSessionResponse(flow.Snapshot()))
}

// GetSession godoc
// @Summary Current session state
// @Tags session
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/session [get]
func (h *SessionHandler) GetSession(c *fiber.Ctx) error {
	flow, ok := middleware.FlowFromContext(c)
	if !ok {
		return sessionMissing(c)
	}
	return c.JSON(toSessionResponse(flow.Snapshot()))
}

// DeleteSession godoc
// @Summary Discard a session
// @Tags session
// @Param X-Session-ID header string true "Session ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/session [delete]
func (h *SessionHandler) DeleteSession(c *fiber.Ctx) error {
	flow, ok := middleware.FlowFromContext(c)
	if !ok {
		return sessionMissing(c)
	}
	h.store.Delete(flow.ID())
	h.logger.Info("Session deleted", zap.String("session_id", flow.ID()))
	return c.SendStatus(fiber.StatusNoContent)
}

// Start godoc
// @Summary Start recommendations
// @Description Leaves the home view. The intro is shown once per session.
// @Tags session
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/v1/session/start [post]
func (h *SessionHandler) Start(c *fiber.Ctx) error {
	return h.apply(c, (*wizard.Flow).StartRecommendations)
}

// DismissIntro godoc
// @Summary Dismiss the intro
// @Tags session
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/v1/session/intro/dismiss [post]
func (h *SessionHandler) DismissIntro(c *fiber.Ctx) error {
	return h.apply(c, (*wizard.Flow).DismissIntro)
}

// SubmitProfile godoc
// @Summary Submit the profile step
// @Description Validates the profile and moves to the style quiz
// @Tags session
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Param profile body models.UserProfile true "User profile"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /api/v1/session/profile [put]
func (h *SessionHandler) SubmitProfile(c *fiber.Ctx) error {
	var profile models.UserProfile
	if err := c.BodyParser(&profile); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Invalid request body",
		})
	}
	return h.apply(c, func(f *wizard.Flow) (wizard.Snapshot, error) {
		return f.SubmitProfile(profile)
	})
}

// ToggleQuiz godoc
// @Summary Toggle a multi-select quiz answer
// @Description Adds the value to colors, styles or occasions, or removes it if already selected
// @Tags session
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Param request body dto.ToggleRequest true "Field and value"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/v1/session/quiz/toggle [post]
func (h *SessionHandler) ToggleQuiz(c *fiber.Ctx) error {
	var req dto.ToggleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Invalid request body",
		})
	}
	if req.Value == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "value is required",
		})
	}
	return h.apply(c, func(f *wizard.Flow) (wizard.Snapshot, error) {
		return f.Toggle(wizard.QuizField(req.Field), req.Value)
	})
}

// UpdateQuiz godoc
// @Summary Update single-valued quiz answers
// @Tags session
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Param request body dto.QuizUpdateRequest true "Budget, body type, skin tone"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/v1/session/quiz [put]
func (h *SessionHandler) UpdateQuiz(c *fiber.Ctx) error {
	var req dto.QuizUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Invalid request body",
		})
	}
	if req.BudgetMax == nil && req.BodyType == nil && req.SkinTone == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "No quiz fields to update",
		})
	}
	return h.apply(c, func(f *wizard.Flow) (snap wizard.Snapshot, err error) {
		if req.BudgetMax != nil {
			if snap, err = f.SetBudgetMax(*req.BudgetMax); err != nil {
				return snap, err
			}
		}
		if req.BodyType != nil {
			if snap, err = f.SetBodyType(*req.BodyType); err != nil {
				return snap, err
			}
		}
		if req.SkinTone != nil {
			if snap, err = f.SetSkinTone(*req.SkinTone); err != nil {
				return snap, err
			}
		}
		return snap, nil
	})
}

// Recommend godoc
// @Summary Get recommendations
// @Description Requests outfits for the session's profile and quiz and moves to the results step. Falls back to built-in outfits when the recommender is unavailable.
// @Tags session
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/v1/session/recommendations [post]
func (h *SessionHandler) Recommend(c *fiber.Ctx) error {
	ctx := c.UserContext()
	return h.apply(c, func(f *wizard.Flow) (wizard.Snapshot, error) {
		return f.FetchRecommendations(ctx)
	})
}

// Back godoc
// @Summary Previous wizard step
// @Tags session
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/v1/session/back [post]
func (h *SessionHandler) Back(c *fiber.Ctx) error {
	return h.apply(c, (*wizard.Flow).Back)
}

// Restart godoc
// @Summary Start the wizard over
// @Description Clears profile, quiz and outfits and returns to the profile step
// @Tags session
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/v1/session/restart [post]
func (h *SessionHandler) Restart(c *fiber.Ctx) error {
	return h.apply(c, (*wizard.Flow).Restart)
}

// Home godoc
// @Summary Return to the home view
// @Tags session
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/v1/session/home [post]
func (h *SessionHandler) Home(c *fiber.Ctx) error {
	return h.apply(c, (*wizard.Flow).GoHome)
}

func (h *SessionHandler) apply(c *fiber.Ctx, op func(*wizard.Flow) (wizard.Snapshot, error)) error {
	flow, ok := middleware.FlowFromContext(c)
	if !ok {
		return sessionMissing(c)
	}

	snap, err := op(flow)
	if err != nil {
		return h.respondError(c, flow.ID(), err)
	}
	return c.JSON(toSessionResponse(snap))
}

func (h *SessionHandler) respondError(c *fiber.Ctx, sessionID string, err error) error {
	var validationErr *wizard.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Error:  "Invalid profile",
			Fields: validationErr.Fields,
		})
	case errors.Is(err, wizard.ErrRequestInFlight):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Error: err.Error(),
		})
	case errors.Is(err, wizard.ErrInvalidTransition):
		h.logger.Debug("Rejected wizard transition", zap.String("session_id", sessionID), zap.Error(err))
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Error: err.Error(),
		})
	case errors.Is(err, wizard.ErrUnknownField):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: err.Error(),
		})
	default:
		h.logger.Error("Wizard transition failed", zap.String("session_id", sessionID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "Internal server error",
		})
	}
}

func sessionMissing(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
		Error: "Session not found",
	})
}

func toSessionResponse(snap wizard.Snapshot) dto.SessionResponse {
	return dto.SessionResponse{
		SessionID: snap.ID,
		View:      string(snap.View),
		Step:      int(snap.Step),
		IntroSeen: snap.IntroSeen,
		Loading:   snap.Loading,
		Profile:   snap.Profile,
		Quiz:      snap.Quiz,
		Outfits:   service.Normalize(snap.Outfits),
	}
}
