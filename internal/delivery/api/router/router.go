// Package router contains routing for the profile API.
package router

import (
	"profilesync/internal/delivery/api/middleware"
	"profilesync/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	ProfileHandler *handler.ProfileHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	profileHandler *handler.ProfileHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		profileHandler: params.ProfileHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	e.POST("/auth/register", r.authHandler.Register)

	ph := r.profileHandler

	profileGroup := e.Group("/profile", r.authMiddleware.Authenticate)
	{
		profileGroup.GET("", ph.GetProfile)
		profileGroup.PATCH("", ph.UpdateFields())
		profileGroup.PATCH("/name", ph.UpdateFields(handler.NameFields...))
		profileGroup.PATCH("/age", ph.UpdateFields(handler.AgeFields...))
		profileGroup.PATCH("/about", ph.UpdateFields(handler.AboutFields...))
		profileGroup.PATCH("/moment-career", ph.UpdateFields(handler.MomentCareerFields...))
		profileGroup.PATCH("/image", ph.UpdateFields(handler.ImageFields...))
		profileGroup.PATCH("/links", ph.UpdateFields(handler.LinkFields...))
		profileGroup.PATCH("/habilities", ph.UpdateFields(handler.HabilityFields...))
		profileGroup.PATCH("/location", ph.UpdateFields(handler.LocationFields...))
		profileGroup.PATCH("/focus", ph.UpdateFields(handler.FocusFields...))
	}

	e.PUT("/user-profile/social-links-order", ph.UpdateLinksOrder, r.authMiddleware.Authenticate)

	friendsGroup := e.Group("/friends", r.authMiddleware.Authenticate)
	{
		friendsGroup.POST("/:id", ph.AddFriend)
		friendsGroup.DELETE("/:id", ph.RemoveFriend)
	}

	e.GET("/subscription/status", ph.SubscriptionStatus, r.authMiddleware.Authenticate)
}
