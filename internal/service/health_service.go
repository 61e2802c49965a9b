package service

import (
	"context"
	"sync"
	"time"

	"arbotique/internal/dto"

	"go.uber.org/zap"
)

// HealthMonitor polls the recommender's health endpoint until its context is cancelled.
type HealthMonitor struct {
	recommender Recommender
	interval    time.Duration
	logger      *zap.Logger

	mu     sync.RWMutex
	status dto.BackendStatus
}

func NewHealthMonitor(recommender Recommender, interval time.Duration, logger *zap.Logger) *HealthMonitor {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &HealthMonitor{
		recommender: recommender,
		interval:    interval,
		logger:      logger,
	}
}

// Run checks once immediately and then on every tick. Cancelling ctx aborts
// an in-flight check and stops the loop; Run then returns ctx.Err().
func (m *HealthMonitor) Run(ctx context.Context) error {
	m.Check(ctx)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.logger.Debug("Health monitor stopped")
			return ctx.Err()
		case <-ticker.C:
			m.Check(ctx)
		}
	}
}

// Check asks the recommender for its health once and records the outcome.
func (m *HealthMonitor) Check(ctx context.Context) dto.BackendStatus {
	code, err := m.recommender.Health(ctx)
	status := dto.BackendStatus{
		Reachable:  err == nil,
		StatusCode: code,
		CheckedAt:  time.Now().UTC(),
	}
	if err != nil {
		if ctx.Err() != nil {
			// teardown, keep the previous observation
			return m.Status()
		}
		status.Error = err.Error()
		m.logger.Warn("Recommender health check failed", zap.Error(err))
	}

	m.mu.Lock()
	prev := m.status
	m.status = status
	m.mu.Unlock()

	if prev.Reachable != status.Reachable && !prev.CheckedAt.IsZero() {
		m.logger.Info("Recommender availability changed", zap.Bool("reachable", status.Reachable))
	}
	return status
}

// Status returns the most recent observation.
func (m *HealthMonitor) Status() dto.BackendStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}
