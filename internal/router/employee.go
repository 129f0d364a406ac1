package router

import (
	"roster/internal/handler"
	"roster/internal/middleware"

	"github.com/gin-gonic/gin"
)

type EmployeeRouter struct {
	employeeHandler *handler.EmployeeHandler
	auth            *middleware.Auth
}

func NewEmployeeRouter(
	employeeHandler *handler.EmployeeHandler,
	auth *middleware.Auth,
) *EmployeeRouter {
	return &EmployeeRouter{
		employeeHandler: employeeHandler,
		auth:            auth,
	}
}

// RegisterRoutes 讀取開放、寫入一律過 bearer token 驗證
func (er *EmployeeRouter) RegisterRoutes(r *gin.Engine) {
	employees := r.Group("/employees")
	{
		employees.GET("", er.employeeHandler.List)
		employees.GET("/search", er.employeeHandler.Search)
		employees.GET("/avg-salary", er.employeeHandler.AvgSalary)
		employees.GET("/cursor", er.employeeHandler.ListByCursor)
		employees.GET("/:employeeID", er.employeeHandler.Get)

		employees.POST("", er.auth.Handler(), er.employeeHandler.Create)
		employees.PUT("/:employeeID", er.auth.Handler(), er.employeeHandler.Update)
		employees.DELETE("/:employeeID", er.auth.Handler(), er.employeeHandler.Delete)
	}
}
