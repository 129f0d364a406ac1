package middleware

import (
	"errors"
	"fmt"
	"strconv"

	"roster/config"
	"roster/internal/core"
	"roster/internal/database/redis/repository"
	cErr "roster/internal/pkg/error"
	"roster/internal/pkg/response"
	"roster/internal/telemetry"

	"github.com/gin-gonic/gin"
)

type RateLimit struct {
	trace                 *telemetry.Trace
	conf                  *config.Configuration
	rateLimiterRepository *repository.RateLimiterRepository
}

func NewRateLimit(
	trace *telemetry.Trace,
	conf *config.Configuration,
	rateLimiterRepository *repository.RateLimiterRepository,
) *RateLimit {
	return &RateLimit{
		trace:                 trace,
		conf:                  conf,
		rateLimiterRepository: rateLimiterRepository,
	}
}

// Guard 以來源 IP 對 /auth/token 做固定視窗限流；
// TOKEN_RATE_LIMIT 為 0 或 Redis 未設定時直接放行。
func (middleware *RateLimit) Guard() gin.HandlerFunc {
	return func(c *gin.Context) {
		limitCount := middleware.conf.Auth.TokenRateLimit
		if limitCount <= 0 {
			c.Next()
			return
		}
		windowSeconds := middleware.conf.Auth.TokenRateWindow
		if windowSeconds <= 0 {
			windowSeconds = 60
		}

		ctx, span, end := middleware.trace.WithSpan(c.Request.Context(), string(core.SpanRateLimit))
		traceMetadata := core.TraceRateLimitMeta{Limit: limitCount, WindowSec: windowSeconds}
		middleware.trace.ApplyTraceAttributes(span, traceMetadata)

		remaining, ttl, err := middleware.rateLimiterRepository.Consume(ctx, c.ClientIP(), windowSeconds, limitCount)
		if errors.Is(err, repository.ErrRateLimitExceeded) {
			// DECR 之後 TTL 讀取可能失敗回 0，補查一次目前狀態再回報
			if freshRemaining, freshTTL, getErr := middleware.rateLimiterRepository.GetCurrent(ctx, c.ClientIP(), limitCount); getErr == nil && freshTTL > 0 {
				remaining, ttl = freshRemaining, freshTTL
			}
		}
		traceMetadata.Remaining, traceMetadata.TTL = remaining, ttl
		c.Header("X-RateLimit-Limit", strconv.Itoa(limitCount))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		if err != nil {
			if errors.Is(err, repository.ErrRateLimitExceeded) {
				traceMetadata.Blocked = true
				middleware.trace.ApplyTraceAttributes(span, traceMetadata)
				c.Header("Retry-After", strconv.FormatInt(ttl, 10))
				cause := cErr.RateLimitExceeded(fmt.Sprintf("token requests limited, retry in %ds", ttl))
				response.AbortWithError(c, cause)
				end(cause)
				return
			}
			// Redis 故障時放行，不把限流基礎設施變成登入單點故障
			end(err)
			c.Next()
			return
		}

		middleware.trace.ApplyTraceAttributes(span, traceMetadata)
		end(nil)
		c.Next()
	}
}
