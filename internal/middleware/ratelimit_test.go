package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"roster/config"
	"roster/internal/database/client"
	"roster/internal/database/redis/repository"
	"roster/internal/telemetry"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRateLimit(t *testing.T, limitCount int) *RateLimit {
	t.Helper()

	conf := &config.Configuration{}
	conf.Auth.TokenRateLimit = limitCount

	trace, err := telemetry.NewTrace(conf)
	require.NoError(t, err)

	// Redis host 未設定 → 停用狀態，Client() 為 nil
	redisClient, cleanup, err := client.NewRedisClient(zap.NewNop(), conf)
	require.NoError(t, err)
	t.Cleanup(cleanup)

	return NewRateLimit(trace, conf, repository.NewRateLimiterRepository(trace, redisClient))
}

func runRateLimit(t *testing.T, m *RateLimit) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodPost, "/auth/token", nil)
	m.Guard()(c)
	return c, recorder
}

func TestGuardBypassWhenLimitDisabled(t *testing.T) {
	m := newTestRateLimit(t, 0)

	c, recorder := runRateLimit(t, m)
	assert.False(t, c.IsAborted())
	assert.Empty(t, recorder.Header().Get("X-RateLimit-Limit"))
}

func TestGuardAllowsWhenRedisDisabled(t *testing.T) {
	m := newTestRateLimit(t, 2)

	c, recorder := runRateLimit(t, m)
	assert.False(t, c.IsAborted())
	assert.Empty(t, c.Errors)
	assert.Equal(t, "2", recorder.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "2", recorder.Header().Get("X-RateLimit-Remaining"))
}
