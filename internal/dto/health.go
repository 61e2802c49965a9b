package dto

import "time"

// BackendStatus is the last observation of the recommender's /health endpoint.
type BackendStatus struct {
	Reachable  bool      `json:"reachable"`
	StatusCode int       `json:"status_code,omitempty"`
	CheckedAt  time.Time `json:"checked_at,omitempty"`
	Error      string    `json:"error,omitempty"`
}

type HealthResponse struct {
	Status  string         `json:"status"`
	Name    string         `json:"name"`
	Backend *BackendStatus `json:"backend,omitempty"`
}
