package service

import (
	"context"
	"strings"

	"arbotique/internal/dto"
	"arbotique/internal/models"

	"go.uber.org/zap"
)

// Request defaults applied when the profile or quiz leaves a field empty.
// They differ from GenerateFallback, which has no defaults of its own.
const (
	DefaultUserID   = "guest"
	DefaultAge      = 25
	DefaultGender   = "male"
	DefaultColor    = "blue"
	DefaultStyle    = "casual"
	DefaultBudget   = 25000
	DefaultBodyType = "average"
	DefaultSkinTone = "medium"
)

type Source string

const (
	SourceRemote   Source = "remote"
	SourceFallback Source = "fallback"
)

// Result is the outcome of one recommendation round. Err holds the remote
// failure that triggered the fallback, if any.
type Result struct {
	Outfits []models.Outfit
	Source  Source
	Request dto.RecommendationRequest
	Err     error
}

type RecommendationService struct {
	recommender Recommender
	logger      *zap.Logger
}

func NewRecommendationService(recommender Recommender, logger *zap.Logger) *RecommendationService {
	return &RecommendationService{
		recommender: recommender,
		logger:      logger,
	}
}

// BuildRequest flattens profile and quiz into the recommender payload.
// Only the first preferred colour and style are sent, lower-cased.
func BuildRequest(profile models.UserProfile, quiz models.StyleQuiz) dto.RecommendationRequest {
	req := dto.RecommendationRequest{
		UserID:       firstNonEmpty(profile.ID, DefaultUserID),
		Age:          profile.Age,
		Gender:       firstNonEmpty(string(profile.Gender), DefaultGender),
		ColorPref:    firstNonEmpty(firstTag(quiz.Colors), DefaultColor),
		StylePref:    firstNonEmpty(firstTag(quiz.Styles), DefaultStyle),
		Budget:       quiz.Budget.Max,
		Measurements: profile.Measurements,
		BodyType:     firstNonEmpty(quiz.BodyType, DefaultBodyType),
		SkinTone:     firstNonEmpty(quiz.SkinTone, DefaultSkinTone),
	}
	if req.Age <= 0 {
		req.Age = DefaultAge
	}
	if req.Budget <= 0 {
		req.Budget = DefaultBudget
	}
	return req
}

// GetRecommendations always yields outfits for the caller: the remote list on
// success, the fallback catalog otherwise. Failures are logged, never returned.
func (s *RecommendationService) GetRecommendations(ctx context.Context, profile models.UserProfile, quiz models.StyleQuiz) []models.Outfit {
	return s.Recommend(ctx, profile, quiz).Outfits
}

// Recommend is GetRecommendations with the source of the outfits attached.
func (s *RecommendationService) Recommend(ctx context.Context, profile models.UserProfile, quiz models.StyleQuiz) Result {
	req := BuildRequest(profile, quiz)

	resp, err := s.recommender.Recommend(ctx, &req)
	if err != nil {
		s.logger.Warn("Recommender unavailable, serving fallback outfits",
			zap.String("user_id", req.UserID),
			zap.String("gender", req.Gender),
			zap.String("style", req.StylePref),
			zap.Error(err),
		)
		return Result{
			Outfits: GenerateFallback(req.Gender, req.StylePref),
			Source:  SourceFallback,
			Request: req,
			Err:     err,
		}
	}

	outfits := FromRemote(resp.Recommendations)
	s.logger.Info("Recommendations generated",
		zap.String("user_id", req.UserID),
		zap.Int("count", len(outfits)),
	)
	return Result{
		Outfits: outfits,
		Source:  SourceRemote,
		Request: req,
	}
}

func firstTag(tags []string) string {
	for _, t := range tags {
		if t = strings.ToLower(strings.TrimSpace(t)); t != "" {
			return t
		}
	}
	return ""
}

func firstNonEmpty(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
