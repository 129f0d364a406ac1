package repository

import (
	"testing"

	"roster/config"
	"roster/internal/telemetry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDisabledRateLimiter(t *testing.T) *RateLimiterRepository {
	t.Helper()
	trace, err := telemetry.NewTrace(&config.Configuration{})
	require.NoError(t, err)
	return &RateLimiterRepository{trace: trace}
}

func TestConsumeBypassWithoutRedis(t *testing.T) {
	limiter := newDisabledRateLimiter(t)

	remaining, ttl, err := limiter.Consume(t.Context(), "203.0.113.7", 60, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, remaining)
	assert.Zero(t, ttl)
}

func TestGetCurrentBypassWithoutRedis(t *testing.T) {
	limiter := newDisabledRateLimiter(t)

	remaining, ttl, err := limiter.GetCurrent(t.Context(), "203.0.113.7", 5)
	require.NoError(t, err)
	assert.Equal(t, 5, remaining)
	assert.Zero(t, ttl)
}

func TestBuildKey(t *testing.T) {
	limiter := newDisabledRateLimiter(t)
	assert.Equal(t, "roster:token_rate_limit:203.0.113.7", limiter.buildKey("203.0.113.7"))
}
