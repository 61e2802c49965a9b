package service

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"arbotique/internal/dto"
	"arbotique/pkg/config"

	"github.com/xeipuuv/gojsonschema"
	"go.uber.org/zap"
)

//go:embed schemas/recommendation_response.json
var recommendationResponseSchema string

const maxResponseBytes = 4 << 20

var ErrMalformedResponse = errors.New("malformed recommender response")

// RemoteError is returned when the recommender answers outside the 2xx range.
type RemoteError struct {
	URL        string
	StatusCode int
	Body       string
}

func (e *RemoteError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("recommender %s returned status %d: %s", e.URL, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("recommender %s returned status %d", e.URL, e.StatusCode)
}

// Recommender is the remote recommendation service.
type Recommender interface {
	Recommend(ctx context.Context, req *dto.RecommendationRequest) (*dto.RecommendationResponse, error)
	Health(ctx context.Context) (int, error)
}

type RecommenderClient struct {
	baseURL    string
	httpClient *http.Client
	schema     *gojsonschema.Schema
	logger     *zap.Logger
}

func NewRecommenderClient(cfg *config.RecommenderConfig, logger *zap.Logger) (*RecommenderClient, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(recommendationResponseSchema))
	if err != nil {
		return nil, fmt.Errorf("failed to load response schema: %w", err)
	}

	return &RecommenderClient{
		baseURL:    strings.TrimRight(cfg.APIBase, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		schema:     schema,
		logger:     logger,
	}, nil
}

// Health calls GET /health. Only reachability and status matter; the body is discarded.
func (c *RecommenderClient) Health(ctx context.Context) (int, error) {
	url := c.baseURL + "/health"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create health request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("health check failed: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))

	if !isSuccess(resp.StatusCode) {
		return resp.StatusCode, &RemoteError{URL: url, StatusCode: resp.StatusCode}
	}
	return resp.StatusCode, nil
}

// Recommend performs exactly one POST /api/recommendations and validates the
// body against the response schema before decoding it.
func (c *RecommenderClient) Recommend(ctx context.Context, request *dto.RecommendationRequest) (*dto.RecommendationResponse, error) {
	url := c.baseURL + "/api/recommendations"

	payload, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to encode recommendation request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create recommendation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("recommendation request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read recommendation response: %w", err)
	}

	if !isSuccess(resp.StatusCode) {
		return nil, &RemoteError{URL: url, StatusCode: resp.StatusCode, Body: truncate(string(body), 200)}
	}

	if err := c.validate(body); err != nil {
		return nil, err
	}

	var out dto.RecommendationResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	c.logger.Debug("Recommendations received",
		zap.String("url", url),
		zap.Int("count", len(out.Recommendations)),
	)
	return &out, nil
}

func (c *RecommenderClient) validate(body []byte) error {
	result, err := c.schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if result.Valid() {
		return nil
	}

	problems := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		problems = append(problems, e.String())
	}
	return fmt.Errorf("%w: %s", ErrMalformedResponse, strings.Join(problems, "; "))
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
