// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"warrantly/internal/delivery/http/middleware"
	"warrantly/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler     *handler.UserHandler
	WarrantyHandler *handler.WarrantyHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler     *handler.UserHandler
	warrantyHandler *handler.WarrantyHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:     params.UserHandler,
		warrantyHandler: params.WarrantyHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/refresh", r.userHandler.Refresh)
		authGroup.POST("/logout", r.userHandler.Logout)
	}

	// Warranty routes require authentication
	warrantyGroup := api.Group("/warranties")
	warrantyGroup.Use(r.authMiddleware.Authenticate)
	{
		warrantyGroup.POST("", r.warrantyHandler.Create)
		warrantyGroup.GET("", r.warrantyHandler.List)
	}
}
