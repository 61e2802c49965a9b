package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"arbotique/internal/dto"
	"arbotique/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubRecommender struct {
	resp  *dto.RecommendationResponse
	err   error
	calls int
	got   dto.RecommendationRequest

	healthCode int
	healthErr  error
}

func (s *stubRecommender) Recommend(_ context.Context, req *dto.RecommendationRequest) (*dto.RecommendationResponse, error) {
	s.calls++
	s.got = *req
	return s.resp, s.err
}

func (s *stubRecommender) Health(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return s.healthCode, s.healthErr
}

func TestBuildRequest_Defaults(t *testing.T) {
	req := BuildRequest(models.UserProfile{}, models.StyleQuiz{})

	assert.Equal(t, dto.RecommendationRequest{
		UserID:    DefaultUserID,
		Age:       DefaultAge,
		Gender:    DefaultGender,
		ColorPref: DefaultColor,
		StylePref: DefaultStyle,
		Budget:    DefaultBudget,
		BodyType:  DefaultBodyType,
		SkinTone:  DefaultSkinTone,
	}, req)
}

func TestBuildRequest_FromAnswers(t *testing.T) {
	profile := models.UserProfile{
		ID:     "user-7",
		Name:   "Ada",
		Email:  "ada@example.com",
		Age:    31,
		Gender: models.GenderFemale,
		Measurements: models.Measurements{
			Height: "168",
		},
	}
	quiz := models.NewStyleQuiz()
	quiz.Colors = []string{"  ", "Red", "Blue"}
	quiz.Styles = []string{"Elegant", "Casual"}
	quiz.SetBudgetMax(15000)
	quiz.BodyType = "athletic"

	req := BuildRequest(profile, quiz)

	assert.Equal(t, "user-7", req.UserID)
	assert.Equal(t, 31, req.Age)
	assert.Equal(t, "female", req.Gender)
	assert.Equal(t, "red", req.ColorPref)
	assert.Equal(t, "elegant", req.StylePref)
	assert.Equal(t, 15000, req.Budget)
	assert.Equal(t, "168", req.Measurements.Height)
	assert.Equal(t, "athletic", req.BodyType)
	assert.Equal(t, DefaultSkinTone, req.SkinTone)
}

func TestRecommend_RemoteSuccess(t *testing.T) {
	stub := &stubRecommender{resp: &dto.RecommendationResponse{
		Recommendations: []dto.RemoteOutfit{
			{OutfitID: "outfit_005", Name: "Casual Summer Look", TotalPrice: 6797, Items: []dto.RemoteItem{
				{Type: "dress", Name: "Yellow Summer Dress", Price: 2299},
			}},
		},
	}}
	svc := NewRecommendationService(stub, zap.NewNop())

	result := svc.Recommend(context.Background(), models.UserProfile{}, models.StyleQuiz{})

	assert.Equal(t, SourceRemote, result.Source)
	assert.NoError(t, result.Err)
	require.Len(t, result.Outfits, 1)
	assert.Equal(t, "outfit_005", result.Outfits[0].ID)
	assert.Equal(t, 1, stub.calls)
}

func TestRecommend_EmptyRemoteListIsNotReplaced(t *testing.T) {
	stub := &stubRecommender{resp: &dto.RecommendationResponse{Recommendations: []dto.RemoteOutfit{}}}
	svc := NewRecommendationService(stub, zap.NewNop())

	result := svc.Recommend(context.Background(), models.UserProfile{}, models.StyleQuiz{})

	assert.Equal(t, SourceRemote, result.Source)
	assert.NotNil(t, result.Outfits)
	assert.Empty(t, result.Outfits)
}

func TestRecommend_FailureServesFallback(t *testing.T) {
	stub := &stubRecommender{err: errors.New("connection refused")}
	svc := NewRecommendationService(stub, zap.NewNop())

	result := svc.Recommend(context.Background(), models.UserProfile{Gender: models.GenderMale}, models.StyleQuiz{})

	assert.Equal(t, SourceFallback, result.Source)
	assert.Error(t, result.Err)
	assert.Equal(t, GenerateFallback("male", "casual"), result.Outfits)
	assert.Equal(t, 1, stub.calls)
}

func TestGetRecommendations_FemaleFormalFallback(t *testing.T) {
	stub := &stubRecommender{err: &RemoteError{URL: "http://rec/api/recommendations", StatusCode: http.StatusInternalServerError}}
	svc := NewRecommendationService(stub, zap.NewNop())

	profile := models.UserProfile{Name: "Mia", Email: "mia@example.com", Age: 28, Gender: models.GenderFemale}
	quiz := models.NewStyleQuiz()
	quiz.Styles = []string{"Formal"}

	outfits := svc.GetRecommendations(context.Background(), profile, quiz)

	require.Len(t, outfits, 2)
	assert.Equal(t, "formal", stub.got.StylePref)
	assert.Equal(t, "Formal Summer Look", outfits[0].Name)
	assert.Equal(t, "Sporty Athletic Look", outfits[1].Name)

	quiz.Styles = nil
	outfits = svc.GetRecommendations(context.Background(), profile, quiz)
	assert.Equal(t, "Casual Summer Look", outfits[0].Name)
}

func TestGetRecommendations_MalformedResponseFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"recommendations": [{"name": 42}]}`))
	}))
	defer server.Close()

	svc := NewRecommendationService(newTestClient(t, server.URL), zap.NewNop())
	result := svc.Recommend(context.Background(), models.UserProfile{Gender: models.GenderOther}, models.StyleQuiz{})

	assert.Equal(t, SourceFallback, result.Source)
	assert.ErrorIs(t, result.Err, ErrMalformedResponse)
	assert.Equal(t, "Casual Summer Look", result.Outfits[0].Name)
}

func TestGetRecommendations_UnreachableFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := server.URL
	server.Close()

	svc := NewRecommendationService(newTestClient(t, url), zap.NewNop())
	outfits := svc.GetRecommendations(context.Background(), models.UserProfile{}, models.StyleQuiz{})

	assert.Equal(t, GenerateFallback(DefaultGender, DefaultStyle), outfits)
}
