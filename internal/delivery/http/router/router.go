// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"sensorysearch/internal/delivery/http/middleware"
	"sensorysearch/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	DiscoveryHandler  *handler.DiscoveryHandler
	LocationHandler   *handler.LocationHandler
	SubmissionHandler *handler.SubmissionHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	discoveryHandler  *handler.DiscoveryHandler
	locationHandler   *handler.LocationHandler
	submissionHandler *handler.SubmissionHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		discoveryHandler:  params.DiscoveryHandler,
		locationHandler:   params.LocationHandler,
		submissionHandler: params.SubmissionHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public discovery routes
	e.GET("/discovery", r.discoveryHandler.Discover)
	e.GET("/discovery/:kind/:id", r.discoveryHandler.GetListing)

	// Location resolution is public; preferences need a caller identity
	e.POST("/location/resolve", r.locationHandler.ResolveLocation)

	prefGroup := e.Group("")
	prefGroup.Use(r.authMiddleware.Identify) // JWT user or X-Device-ID guest
	{
		prefGroup.GET("/location/preference", r.locationHandler.GetPreference)
		prefGroup.PUT("/location/preference", r.locationHandler.SavePreference)
		prefGroup.GET("/favorites", r.locationHandler.GetFavorites)
		prefGroup.PUT("/favorites", r.locationHandler.SaveFavorites)
	}

	// Submission routes require authentication and the "organizer" role
	submissionGroup := e.Group("/api/submissions")
	submissionGroup.Use(r.authMiddleware.Authenticate)
	submissionGroup.Use(r.authMiddleware.RequireRole("organizer"))
	{
		submissionGroup.POST("", r.submissionHandler.Submit)
	}

	// Moderation routes require authentication and the "admin" role
	adminGroup := e.Group("/api/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole("admin"))
	{
		adminGroup.GET("/submissions", r.submissionHandler.ListPending)
		adminGroup.POST("/submissions/:id/approve", r.submissionHandler.Approve)
		adminGroup.POST("/submissions/:id/reject", r.submissionHandler.Reject)
	}
}
