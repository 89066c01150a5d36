// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"directory/internal/delivery/http/middleware"
	"directory/internal/delivery/http/router/handler"
	"directory/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler     *handler.UserHandler
	CityHandler     *handler.CityHandler
	BusinessHandler *handler.BusinessHandler
	ClaimHandler    *handler.ClaimHandler
	BadgeHandler    *handler.BadgeHandler
	UploadHandler   *handler.UploadHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler     *handler.UserHandler
	cityHandler     *handler.CityHandler
	businessHandler *handler.BusinessHandler
	claimHandler    *handler.ClaimHandler
	badgeHandler    *handler.BadgeHandler
	uploadHandler   *handler.UploadHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:     params.UserHandler,
		cityHandler:     params.CityHandler,
		businessHandler: params.BusinessHandler,
		claimHandler:    params.ClaimHandler,
		badgeHandler:    params.BadgeHandler,
		uploadHandler:   params.UploadHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.RegisterUser)
		authGroup.POST("/register/owner", r.userHandler.RegisterOwner)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/refresh", r.userHandler.Refresh)
		authGroup.POST("/forgot-password", r.userHandler.ForgotPassword)
		authGroup.POST("/reset-password", r.userHandler.ResetPassword)
	}

	// Public directory routes
	e.GET("/cities", r.cityHandler.List)
	e.GET("/cities/:id", r.cityHandler.Detail)
	e.GET("/businesses/:slug", r.businessHandler.Detail)
	e.GET("/businesses/:slug/qr", r.businessHandler.ShareQR)

	// Signed-in routes
	meGroup := e.Group("/me")
	meGroup.Use(r.authMiddleware.Authenticate)
	{
		meGroup.GET("/badges", r.badgeHandler.Counts)
	}

	// Claim cart routes require the claim-capable role set
	claimGroup := e.Group("/claims")
	claimGroup.Use(r.authMiddleware.Authenticate)
	claimGroup.Use(r.authMiddleware.RequireClaimRole)
	{
		claimGroup.GET("", r.claimHandler.ListCart)
		claimGroup.POST("", r.claimHandler.Confirm)
		claimGroup.DELETE("/:id", r.claimHandler.RemoveItem)
		claimGroup.POST("/checkout", r.claimHandler.Checkout)
	}

	// Back office routes require the "admin" role
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.POST("/cities", r.cityHandler.Create)
		adminGroup.PUT("/cities/:id", r.cityHandler.Update)
		adminGroup.DELETE("/cities/:id", r.cityHandler.Delete)
		adminGroup.PATCH("/cities/:id/featured", r.cityHandler.SetFeatured)

		adminGroup.POST("/businesses", r.businessHandler.Create)
		adminGroup.PUT("/businesses/:id", r.businessHandler.Update)
		adminGroup.DELETE("/businesses/:id", r.businessHandler.Delete)

		adminGroup.POST("/uploads", r.uploadHandler.Upload)
	}
}
