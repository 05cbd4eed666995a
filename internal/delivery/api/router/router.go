// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"billing/config"
	"billing/internal/delivery/api/middleware"
	"billing/internal/delivery/api/router/handler"
	"billing/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	SubscriptionHandler *handler.SubscriptionHandler
	WebhookHandler      *handler.WebhookHandler
	AdminHandler        *handler.AdminHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
	Config              *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	subscriptionHandler *handler.SubscriptionHandler
	webhookHandler      *handler.WebhookHandler
	adminHandler        *handler.AdminHandler
	authMiddleware      *middleware.AuthMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
	config              *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		subscriptionHandler: params.SubscriptionHandler,
		webhookHandler:      params.WebhookHandler,
		adminHandler:        params.AdminHandler,
		authMiddleware:      params.AuthMiddleware,
		rateLimitMiddleware: params.RateLimitMiddleware,
		config:              params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Auth routes, throttled per client
	authGroup := e.Group("/auth")
	authGroup.Use(r.rateLimitMiddleware.Handle)
	{
		authGroup.POST("/signup", r.authHandler.SignUp)
		authGroup.POST("/signin", r.authHandler.SignIn)
		authGroup.POST("/refresh", r.authHandler.Refresh)
	}

	subscriptionGroup := e.Group("/subscription")
	{
		// Checkout redirect targets, reached by the browser without a token
		subscriptionGroup.GET("/success", r.subscriptionHandler.CheckoutSuccess)
		subscriptionGroup.GET("/cancel", r.subscriptionHandler.CheckoutCancel)

		subscriptionGroup.POST("/checkout", r.subscriptionHandler.CreateCheckout, r.authMiddleware.Authenticate)
		subscriptionGroup.GET("", r.subscriptionHandler.GetSubscription, r.authMiddleware.Authenticate)
		subscriptionGroup.POST("/cancel", r.subscriptionHandler.CancelSubscription, r.authMiddleware.Authenticate)
	}

	// Processor webhooks authenticate by signature, not by token
	e.POST("/stripe/webhook", r.webhookHandler.HandleStripeWebhook)

	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleNameAdmin))
	{
		adminGroup.GET("/users", r.adminHandler.ListUsers)
		adminGroup.GET("/payments", r.adminHandler.ListPayments)
	}
}
