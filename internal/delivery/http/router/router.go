// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"crave/internal/delivery/http/middleware"
	"crave/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	MenuHandler     *handler.MenuHandler
	CartHandler     *handler.CartHandler
	CheckoutHandler *handler.CheckoutHandler
	OrderHandler    *handler.OrderHandler
	QueueHandler    *handler.QueueHandler
	AdminHandler    *handler.AdminHandler
	Session         *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Session routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.params.AuthHandler.Login)
		authGroup.POST("/register", r.params.AuthHandler.Register)
		authGroup.POST("/logout", r.params.AuthHandler.Logout)
		authGroup.GET("/session", r.params.AuthHandler.Session)
		authGroup.POST("/session/refresh", r.params.AuthHandler.RefreshProfile)
	}

	// Menu browsing is open: the kiosk shows the menu before sign-in.
	menuGroup := e.Group("/menu")
	{
		menuGroup.GET("", r.params.MenuHandler.Browse)
		menuGroup.GET("/:id", r.params.MenuHandler.ItemDetails)
		menuGroup.POST("", r.params.MenuHandler.CreateItem, r.params.Session.RequireAdmin)
		menuGroup.POST("/:id/reviews", r.params.MenuHandler.SubmitReview, r.params.Session.RequireSession)
	}

	// The cart itself is open; coin redemption is rejected by the use
	// case when nobody is signed in.
	cartGroup := e.Group("/cart")
	{
		cartGroup.GET("", r.params.CartHandler.View)
		cartGroup.POST("/items", r.params.CartHandler.AddItem)
		cartGroup.DELETE("/items/:id", r.params.CartHandler.RemoveItem)
		cartGroup.DELETE("", r.params.CartHandler.Clear)
		cartGroup.POST("/coupon", r.params.CartHandler.ApplyCoupon)
		cartGroup.DELETE("/coupon", r.params.CartHandler.RemoveCoupon)
		cartGroup.PUT("/coins", r.params.CartHandler.SetUseCoins)
	}

	checkoutGroup := e.Group("/checkout")
	checkoutGroup.Use(r.params.Session.RequireSession)
	{
		checkoutGroup.POST("", r.params.CheckoutHandler.Begin)
		checkoutGroup.POST("/pay", r.params.CheckoutHandler.Pay)
		checkoutGroup.GET("", r.params.CheckoutHandler.Current)
		checkoutGroup.DELETE("", r.params.CheckoutHandler.Abandon)
	}

	orderGroup := e.Group("/orders")
	orderGroup.Use(r.params.Session.RequireSession)
	{
		orderGroup.GET("", r.params.OrderHandler.History)
		orderGroup.GET("/:id", r.params.OrderHandler.Details)
	}

	// Staff live-queue board
	queueGroup := e.Group("/queue")
	queueGroup.Use(r.params.Session.RequireStaff)
	{
		queueGroup.GET("", r.params.QueueHandler.Board)
		queueGroup.POST("/refresh", r.params.QueueHandler.Refresh)
		queueGroup.POST("/orders/:id/advance", r.params.QueueHandler.Advance)
	}

	// Super-admin console
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.params.Session.RequireAdmin)
	{
		adminGroup.GET("/dashboard", r.params.AdminHandler.Dashboard)
		adminGroup.GET("/users", r.params.AdminHandler.ListUsers)
		adminGroup.GET("/tickets", r.params.AdminHandler.ListTickets)
		adminGroup.PUT("/commission", r.params.AdminHandler.SetCommission)
		adminGroup.POST("/coupons", r.params.AdminHandler.CreateCoupon)
	}
}
