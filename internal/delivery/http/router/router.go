// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"brigade/internal/delivery/http/middleware"
	"brigade/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	EmployeeHandler *handler.EmployeeHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	employeeHandler *handler.EmployeeHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		employeeHandler: params.EmployeeHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Login stays outside the authenticated group.
	e.POST("/admin/employee/login", r.employeeHandler.Login)

	// Employee management routes that require authentication
	employeeGroup := e.Group("/admin/employee")
	employeeGroup.Use(r.authMiddleware.Authenticate) // Apply JWT authentication middleware
	{
		employeeGroup.POST("", r.employeeHandler.Create)
		employeeGroup.GET("/page", r.employeeHandler.Page)
		employeeGroup.POST("/status/:status", r.employeeHandler.SetStatus)
		employeeGroup.PUT("", r.employeeHandler.UpdateProfile)
		employeeGroup.PUT("/editPassword", r.employeeHandler.ChangePassword)
		employeeGroup.GET("/idNumber/:idNumber", r.employeeHandler.GetByIDNumber)
		employeeGroup.GET("/:id", r.employeeHandler.GetByID)
	}
}
