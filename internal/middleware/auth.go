package middleware

import (
	"strings"

	"roster/internal/core"
	cErr "roster/internal/pkg/error"
	"roster/internal/pkg/response"
	"roster/internal/service"
	"roster/internal/telemetry"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Auth struct {
	logger      *zap.Logger
	trace       *telemetry.Trace
	authService *service.AuthService
}

func NewAuth(
	logger *zap.Logger,
	trace *telemetry.Trace,
	authService *service.AuthService,
) *Auth {
	return &Auth{
		logger:      logger,
		trace:       trace,
		authService: authService,
	}
}

// Handler 驗證 Authorization: Bearer <token>，通過後把帳號放進 gin.Context。
// 掛在所有寫入路由（POST/PUT/DELETE）上；讀取路由不經過這裡。
func (m *Auth) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span, end := m.trace.WithSpan(c.Request.Context(), string(core.SpanAuthMiddleware))

		header := c.GetHeader("Authorization")
		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			m.trace.ApplyTraceAttributes(span, core.TraceAuthMeta{Status: "missing_bearer_token"})
			cause := cErr.Unauthorized("missing or malformed Authorization header")
			response.AbortWithError(c, cause)
			end(cause)
			return
		}

		claims, err := m.authService.VerifyToken(ctx, strings.TrimSpace(token))
		if err != nil {
			m.trace.ApplyTraceAttributes(span, core.TraceAuthMeta{Status: "invalid_token"})
			m.logger.Warn("rejected bearer token",
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
			response.AbortWithError(c, err)
			end(err)
			return
		}

		m.trace.ApplyTraceAttributes(span, core.TraceAuthMeta{Subject: claims.Username, Status: "ok"})
		c.Set("username", claims.Username)
		end(nil)
		c.Next()
	}
}
