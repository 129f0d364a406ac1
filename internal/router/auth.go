package router

import (
	"roster/internal/handler"
	"roster/internal/middleware"

	"github.com/gin-gonic/gin"
)

type AuthRouter struct {
	authHandler *handler.AuthHandler
	rateLimit   *middleware.RateLimit
}

func NewAuthRouter(
	authHandler *handler.AuthHandler,
	rateLimit *middleware.RateLimit,
) *AuthRouter {
	return &AuthRouter{
		authHandler: authHandler,
		rateLimit:   rateLimit,
	}
}

func (ar *AuthRouter) RegisterRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/token", ar.rateLimit.Guard(), ar.authHandler.Token)
	}
}
