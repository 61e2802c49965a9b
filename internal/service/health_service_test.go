package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHealthMonitor_Check(t *testing.T) {
	stub := &stubRecommender{healthCode: http.StatusOK}
	monitor := NewHealthMonitor(stub, time.Minute, zap.NewNop())

	assert.False(t, monitor.Status().Reachable)

	status := monitor.Check(context.Background())
	assert.True(t, status.Reachable)
	assert.Equal(t, http.StatusOK, status.StatusCode)
	assert.False(t, status.CheckedAt.IsZero())
	assert.Equal(t, status, monitor.Status())

	stub.healthCode, stub.healthErr = 0, errors.New("dial tcp: connection refused")
	status = monitor.Check(context.Background())
	assert.False(t, status.Reachable)
	assert.Contains(t, status.Error, "connection refused")
}

func TestHealthMonitor_CancelledCheckKeepsPreviousStatus(t *testing.T) {
	stub := &stubRecommender{healthCode: http.StatusOK}
	monitor := NewHealthMonitor(stub, time.Minute, zap.NewNop())
	before := monitor.Check(context.Background())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, before, monitor.Check(ctx))
	assert.Equal(t, before, monitor.Status())
}

func TestHealthMonitor_RunStopsOnCancel(t *testing.T) {
	stub := &stubRecommender{healthCode: http.StatusOK}
	monitor := NewHealthMonitor(stub, 10*time.Millisecond, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- monitor.Run(ctx) }()

	require.Eventually(t, func() bool {
		return monitor.Status().Reachable
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("monitor did not stop after cancel")
	}
}

func TestNewHealthMonitor_DefaultInterval(t *testing.T) {
	monitor := NewHealthMonitor(&stubRecommender{}, 0, zap.NewNop())
	assert.Equal(t, 30*time.Second, monitor.interval)
}
