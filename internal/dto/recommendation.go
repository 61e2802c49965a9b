package dto

import "arbotique/internal/models"

// RecommendationRequest is the flattened payload the recommender expects.
type RecommendationRequest struct {
	UserID       string              `json:"user_id"`
	Age          int                 `json:"age"`
	Gender       string              `json:"gender"`
	ColorPref    string              `json:"color_pref"`
	StylePref    string              `json:"style_pref"`
	Budget       int                 `json:"budget"`
	Measurements models.Measurements `json:"measurements"`
	BodyType     string              `json:"body_type"`
	SkinTone     string              `json:"skin_tone"`
}

type RecommendationResponse struct {
	Recommendations []RemoteOutfit `json:"recommendations"`
}

// RemoteOutfit is an outfit as the recommender returns it.
type RemoteOutfit struct {
	OutfitID     string       `json:"outfit_id"`
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	Score        float64      `json:"score,omitempty"`
	Style        string       `json:"style"`
	ColorScheme  string       `json:"color_scheme"`
	TotalPrice   Amount       `json:"total_price"`
	Items        []RemoteItem `json:"items"`
	TargetGender string       `json:"target_gender"`
	TargetAge    string       `json:"target_age,omitempty"`
	InStock      bool         `json:"in_stock"`
}

type RemoteItem struct {
	Type     string `json:"type"`
	Name     string `json:"name"`
	Brand    string `json:"brand"`
	Price    Amount `json:"price"`
	ImageURL string `json:"image_url"`
}

// RecommendRequest is the body of POST /api/v1/recommendations.
type RecommendRequest struct {
	Profile models.UserProfile `json:"profile"`
	Quiz    models.StyleQuiz   `json:"quiz"`
}

type RecommendResponse struct {
	Outfits []RenderableOutfit `json:"outfits"`
}

type RenderableItem struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Brand            string          `json:"brand"`
	Price            int             `json:"price"`
	Type             models.ItemType `json:"type"`
	ImageURL         string          `json:"image_url"`
	FallbackImageURL string          `json:"fallback_image_url"`
	ImageFailed      bool            `json:"image_failed,omitempty"`
}

// MarkImageFailed swaps the displayed image for the type placeholder.
func (i *RenderableItem) MarkImageFailed() {
	i.ImageURL = i.FallbackImageURL
	i.ImageFailed = true
}

type RenderableOutfit struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Description  string           `json:"description"`
	TotalPrice   int              `json:"total_price"`
	ItemsTotal   int              `json:"items_total"`
	Style        string           `json:"style"`
	ColorScheme  string           `json:"color_scheme"`
	TargetGender string           `json:"target_gender"`
	Items        []RenderableItem `json:"items"`
}
