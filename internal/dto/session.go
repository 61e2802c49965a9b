package dto

import "arbotique/internal/models"

type SessionResponse struct {
	SessionID string             `json:"session_id"`
	View      string             `json:"view"`
	Step      int                `json:"step"`
	IntroSeen bool               `json:"intro_seen"`
	Loading   bool               `json:"loading"`
	Profile   models.UserProfile `json:"profile"`
	Quiz      models.StyleQuiz   `json:"quiz"`
	Outfits   []RenderableOutfit `json:"outfits"`
}

type ToggleRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// QuizUpdateRequest changes single-valued quiz answers. Nil fields are left alone.
type QuizUpdateRequest struct {
	BudgetMax *int    `json:"budget_max,omitempty"`
	BodyType  *string `json:"body_type,omitempty"`
	SkinTone  *string `json:"skin_tone,omitempty"`
}

type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}
