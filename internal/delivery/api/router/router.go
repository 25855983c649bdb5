// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"recyclemart/internal/delivery/api/middleware"
	"recyclemart/internal/delivery/api/router/handler"
	"recyclemart/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	UserHandler       *handler.UserHandler
	QuoteHandler      *handler.QuoteHandler
	InventoryHandler  *handler.InventoryHandler
	VoucherHandler    *handler.VoucherHandler
	MarketHandler     *handler.MarketHandler
	OrderHandler      *handler.OrderHandler
	DashboardHandler  *handler.DashboardHandler
	SessionMiddleware *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	userHandler       *handler.UserHandler
	quoteHandler      *handler.QuoteHandler
	inventoryHandler  *handler.InventoryHandler
	voucherHandler    *handler.VoucherHandler
	marketHandler     *handler.MarketHandler
	orderHandler      *handler.OrderHandler
	dashboardHandler  *handler.DashboardHandler
	sessionMiddleware *middleware.SessionMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		userHandler:       params.UserHandler,
		quoteHandler:      params.QuoteHandler,
		inventoryHandler:  params.InventoryHandler,
		voucherHandler:    params.VoucherHandler,
		marketHandler:     params.MarketHandler,
		orderHandler:      params.OrderHandler,
		dashboardHandler:  params.DashboardHandler,
		sessionMiddleware: params.SessionMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", r.dashboardHandler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	authenticate := r.sessionMiddleware.Authenticate
	admin := r.sessionMiddleware.RequireRole(entity.RoleAdmin)
	customer := r.sessionMiddleware.RequireRole(entity.RoleCustomer)
	company := r.sessionMiddleware.RequireRole(entity.RoleCompany)
	companyOrAdmin := r.sessionMiddleware.RequireRole(entity.RoleCompany, entity.RoleAdmin)

	// Auth routes
	authGroup := apiV1.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.GET("/me", r.authHandler.Me, authenticate)
	}

	// User routes
	usersGroup := apiV1.Group("/users", authenticate)
	{
		usersGroup.GET("/me", r.userHandler.GetProfile)
		usersGroup.PATCH("/me", r.userHandler.UpdateProfile)
		usersGroup.PUT("/me/password", r.userHandler.ChangePassword)

		usersGroup.GET("", r.userHandler.ListUsers, admin)
		usersGroup.GET("/:email", r.userHandler.GetUser, admin)
		usersGroup.POST("/:email/points", r.userHandler.AwardPoints, admin)
	}

	notificationsGroup := apiV1.Group("/notifications", authenticate)
	{
		notificationsGroup.GET("", r.userHandler.ListNotifications)
		notificationsGroup.POST("/read", r.userHandler.MarkNotificationsRead)
	}

	// Recycle requests and quotes
	quotesGroup := apiV1.Group("/quotes", authenticate)
	{
		quotesGroup.POST("", r.quoteHandler.Submit, customer)
		quotesGroup.GET("/mine", r.quoteHandler.ListMine, customer)

		quotesGroup.GET("", r.quoteHandler.ListAll, admin)
		quotesGroup.GET("/recent", r.quoteHandler.Recent, admin)
		quotesGroup.PUT("/:id/quote", r.quoteHandler.SetQuote, admin)
		quotesGroup.PUT("/:id/status", r.quoteHandler.SetStatus, admin)
	}

	// Inventory
	inventoryGroup := apiV1.Group("/inventory", authenticate, companyOrAdmin)
	{
		inventoryGroup.GET("", r.inventoryHandler.List)
		inventoryGroup.GET("/counts", r.inventoryHandler.CountByType)
		inventoryGroup.GET("/:id", r.inventoryHandler.Get)
		inventoryGroup.POST("", r.inventoryHandler.Add, admin)
	}

	// Vouchers
	vouchersGroup := apiV1.Group("/vouchers", authenticate)
	{
		vouchersGroup.GET("", r.voucherHandler.List)
		vouchersGroup.POST("/discount", r.voucherHandler.Discount)
		vouchersGroup.POST("/:index/redeem", r.voucherHandler.Redeem, customer)

		vouchersGroup.POST("", r.voucherHandler.Add, admin)
		vouchersGroup.DELETE("/:index", r.voucherHandler.Remove, admin)
	}

	// Customer market
	marketGroup := apiV1.Group("/market", authenticate)
	{
		marketGroup.GET("/products", r.marketHandler.ListProducts)
		marketGroup.POST("/products", r.marketHandler.AddProduct, admin)
		marketGroup.POST("/preview", r.marketHandler.Preview, customer)
	}

	// Company cart
	cartGroup := apiV1.Group("/cart", authenticate, company)
	{
		cartGroup.GET("", r.orderHandler.ListCart)
		cartGroup.POST("", r.orderHandler.AddToCart)
		cartGroup.DELETE("/:deviceId", r.orderHandler.RemoveFromCart)
	}

	// Orders
	ordersGroup := apiV1.Group("/orders", authenticate, companyOrAdmin)
	{
		ordersGroup.POST("", r.orderHandler.CreateOrder, company)
		ordersGroup.GET("", r.orderHandler.ListOrders)
		ordersGroup.GET("/:id", r.orderHandler.GetOrder)
		ordersGroup.PUT("/:id/status", r.orderHandler.UpdateStatus)
		ordersGroup.GET("/:id/label", r.orderHandler.PickupLabel)
	}

	// Admin dashboard
	apiV1.GET("/dashboard", r.dashboardHandler.Stats, authenticate, admin)
}

// Module provides the handlers, the session middleware and the router params to Fx.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		handler.NewAuthHandler,
		handler.NewUserHandler,
		handler.NewQuoteHandler,
		handler.NewInventoryHandler,
		handler.NewVoucherHandler,
		handler.NewMarketHandler,
		handler.NewOrderHandler,
		handler.NewDashboardHandler,
		middleware.NewSessionMiddleware,
	),
)
