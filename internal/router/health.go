package router

import (
	"roster/internal/handler"

	"github.com/gin-gonic/gin"
)

type HealthRouter struct {
	healthHandler *handler.HealthHandler
}

func NewHealthRouter(healthHandler *handler.HealthHandler) *HealthRouter {
	return &HealthRouter{healthHandler: healthHandler}
}

func (hr *HealthRouter) RegisterRoutes(r *gin.Engine) {
	health := r.Group("/health")
	{
		health.GET("", hr.healthHandler.Health)
		health.GET("/liveness", hr.healthHandler.Liveness)
		health.GET("/readiness", hr.healthHandler.Readiness)
	}
}
