package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"arbotique/internal/dto"
	"arbotique/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, baseURL string) *RecommenderClient {
	t.Helper()
	client, err := NewRecommenderClient(&config.RecommenderConfig{
		APIBase: baseURL,
		Timeout: 2 * time.Second,
	}, zap.NewNop())
	require.NoError(t, err)
	return client
}

const validResponse = `{
	"recommendations": [
		{
			"outfit_id": "outfit_002",
			"name": "Casual Streetwear Look",
			"description": "Trendy streetwear outfit",
			"score": 145,
			"style": "streetwear",
			"color_scheme": "blue",
			"total_price": 8497,
			"target_gender": "male",
			"in_stock": true,
			"items": [
				{"type": "top", "name": "Blue Hoodie", "brand": "Urban Style", "price": 2999, "image_url": "https://img.example/hoodie.jpg"}
			]
		}
	]
}`

func TestRecommend_Success(t *testing.T) {
	var got dto.RecommendationRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/recommendations", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(validResponse))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL+"/")
	resp, err := client.Recommend(context.Background(), &dto.RecommendationRequest{
		UserID:    "u1",
		Gender:    "male",
		StylePref: "streetwear",
		Budget:    9000,
	})
	require.NoError(t, err)
	require.Len(t, resp.Recommendations, 1)
	assert.Equal(t, "outfit_002", resp.Recommendations[0].OutfitID)
	assert.Equal(t, dto.Amount(8497), resp.Recommendations[0].TotalPrice)
	assert.Equal(t, "u1", got.UserID)
	assert.Equal(t, 9000, got.Budget)
}

func TestRecommend_EmptyList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"recommendations": []}`))
	}))
	defer server.Close()

	resp, err := newTestClient(t, server.URL).Recommend(context.Background(), &dto.RecommendationRequest{})
	require.NoError(t, err)
	assert.Empty(t, resp.Recommendations)
}

func TestRecommend_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error": "model crashed"}`))
	}))
	defer server.Close()

	_, err := newTestClient(t, server.URL).Recommend(context.Background(), &dto.RecommendationRequest{})
	require.Error(t, err)

	var remoteErr *RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, http.StatusInternalServerError, remoteErr.StatusCode)
	assert.Contains(t, err.Error(), "model crashed")
}

func TestRecommend_MalformedBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `<html>oops</html>`},
		{"missing recommendations", `{}`},
		{"wrong type", `{"recommendations": "none"}`},
		{"outfit without items", `{"recommendations": [{"name": "x"}]}`},
		{"string price", `{"recommendations": [{"name": "x", "items": [{"name": "a", "type": "top", "price": "12"}]}]}`},
		{"fractional price", `{"recommendations": [{"name": "x", "items": [{"name": "a", "type": "top", "price": 1899.5}]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := newTestClient(t, server.URL).Recommend(context.Background(), &dto.RecommendationRequest{})
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedResponse)
		})
	}
}

// Whole-number floats pass the integer schema and must decode too.
func TestRecommend_WholeNumberFloatPrices(t *testing.T) {
	body := `{"recommendations": [{"outfit_id": "outfit_001", "name": "Smart Casual", "total_price": 12497.0,
		"items": [{"type": "top", "name": "White Formal Shirt", "brand": "Office Pro", "price": 1899.0, "image_url": ""}]}]}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	defer server.Close()

	resp, err := newTestClient(t, server.URL).Recommend(context.Background(), &dto.RecommendationRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Recommendations, 1)
	assert.Equal(t, dto.Amount(12497), resp.Recommendations[0].TotalPrice)
	assert.Equal(t, dto.Amount(1899), resp.Recommendations[0].Items[0].Price)

	outfits := FromRemote(resp.Recommendations)
	assert.Equal(t, 1899, outfits[0].Items[0].Price)
}

func TestRecommend_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := newTestClient(t, url).Recommend(context.Background(), &dto.RecommendationRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "recommendation request failed")
}

func TestHealth(t *testing.T) {
	var status atomic.Int32
	status.Store(http.StatusOK)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		w.WriteHeader(int(status.Load()))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	code, err := client.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, code)

	status.Store(http.StatusServiceUnavailable)
	code, err = client.Health(context.Background())
	require.Error(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, code)
}
