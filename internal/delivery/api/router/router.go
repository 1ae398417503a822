// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"net/http"

	"boral/internal/delivery/api/middleware"
	"boral/internal/delivery/api/router/handler"
	deliverymiddleware "boral/internal/delivery/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	StoreHandler     *handler.StoreHandler
	ProductHandler   *handler.ProductHandler
	ServiceHandler   *handler.ServiceHandler
	MessageHandler   *handler.MessageHandler
	ReviewHandler    *handler.ReviewHandler
	OrderHandler     *handler.OrderHandler
	SearchHandler    *handler.SearchHandler
	AnalyticsHandler *handler.AnalyticsHandler
	UploadHandler    *handler.UploadHandler
	DeviceHandler    *handler.DeviceHandler
	AuthMiddleware   *middleware.AuthMiddleware
	RateLimiter      *deliverymiddleware.RateLimiter
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler      *handler.AuthHandler
	storeHandler     *handler.StoreHandler
	productHandler   *handler.ProductHandler
	serviceHandler   *handler.ServiceHandler
	messageHandler   *handler.MessageHandler
	reviewHandler    *handler.ReviewHandler
	orderHandler     *handler.OrderHandler
	searchHandler    *handler.SearchHandler
	analyticsHandler *handler.AnalyticsHandler
	uploadHandler    *handler.UploadHandler
	deviceHandler    *handler.DeviceHandler
	authMiddleware   *middleware.AuthMiddleware
	rateLimiter      *deliverymiddleware.RateLimiter
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:      params.AuthHandler,
		storeHandler:     params.StoreHandler,
		productHandler:   params.ProductHandler,
		serviceHandler:   params.ServiceHandler,
		messageHandler:   params.MessageHandler,
		reviewHandler:    params.ReviewHandler,
		orderHandler:     params.OrderHandler,
		searchHandler:    params.SearchHandler,
		analyticsHandler: params.AnalyticsHandler,
		uploadHandler:    params.UploadHandler,
		deviceHandler:    params.DeviceHandler,
		authMiddleware:   params.AuthMiddleware,
		rateLimiter:      params.RateLimiter,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	api.GET("/", handler.Root)

	requireAuth := r.authMiddleware.Authenticate

	// Auth routes; credential endpoints are rate limited per client
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register, r.rateLimiter.Limit)
		authGroup.POST("/login", r.authHandler.Login, r.rateLimiter.Limit)
		authGroup.GET("/me", r.authHandler.Me, requireAuth)
		authGroup.PUT("/profile", r.authHandler.UpdateProfile, requireAuth)
		authGroup.POST("/upload-avatar", r.authHandler.UploadAvatar, requireAuth)
	}

	storesGroup := api.Group("/stores")
	{
		storesGroup.GET("", r.storeHandler.ListStores)
		storesGroup.GET("/nearby", r.storeHandler.NearbyStores)
		storesGroup.GET("/owner/my-stores", r.storeHandler.MyStores, requireAuth)
		storesGroup.GET("/:id", r.storeHandler.GetStore)
		storesGroup.GET("/:id/qrcode", r.storeHandler.StoreQRCode)
		storesGroup.POST("", r.storeHandler.CreateStore, requireAuth)
		storesGroup.PUT("/:id", r.storeHandler.UpdateStore, requireAuth)
		storesGroup.DELETE("/:id", r.storeHandler.DeleteStore, requireAuth)

		// Store-scoped collections
		storesGroup.GET("/:id/products", r.productHandler.ListStoreProducts)
		storesGroup.POST("/:id/products", r.productHandler.CreateProduct, requireAuth)
		storesGroup.GET("/:id/services", r.serviceHandler.ListStoreServices)
		storesGroup.POST("/:id/services", r.serviceHandler.CreateService, requireAuth)
		storesGroup.GET("/:id/reviews", r.reviewHandler.ListStoreReviews)
		storesGroup.POST("/:id/reviews", r.reviewHandler.CreateReview, requireAuth)
		storesGroup.GET("/:id/orders", r.orderHandler.StoreOrders, requireAuth)
		storesGroup.GET("/:id/analytics", r.analyticsHandler.StoreAnalytics, requireAuth)
	}

	productsGroup := api.Group("/products")
	{
		productsGroup.GET("/:id", r.productHandler.GetProduct)
		productsGroup.PUT("/:id", r.productHandler.UpdateProduct, requireAuth)
		productsGroup.DELETE("/:id", r.productHandler.DeleteProduct, requireAuth)
		productsGroup.POST("/:id/like", r.productHandler.LikeProduct, requireAuth)
		productsGroup.DELETE("/:id/like", r.productHandler.UnlikeProduct, requireAuth)
	}

	servicesGroup := api.Group("/services")
	{
		servicesGroup.GET("", r.serviceHandler.ListServices)
		servicesGroup.PUT("/:id", r.serviceHandler.UpdateService, requireAuth)
		servicesGroup.DELETE("/:id", r.serviceHandler.DeleteService, requireAuth)
	}

	messagesGroup := api.Group("/messages")
	messagesGroup.Use(requireAuth)
	{
		messagesGroup.GET("/conversations", r.messageHandler.Conversations)
		messagesGroup.GET("/:user_id", r.messageHandler.Thread)
		messagesGroup.POST("", r.messageHandler.Send)
	}

	ordersGroup := api.Group("/orders")
	ordersGroup.Use(requireAuth)
	{
		ordersGroup.POST("", r.orderHandler.CreateOrder)
		ordersGroup.GET("/my-orders", r.orderHandler.MyOrders)
		ordersGroup.PUT("/:id/status", r.orderHandler.UpdateOrderStatus)
	}

	api.GET("/search", r.searchHandler.Search)

	analyticsGroup := api.Group("/analytics")
	{
		analyticsGroup.GET("/popular-products", r.analyticsHandler.PopularProducts)
		analyticsGroup.GET("/top-rated-stores", r.analyticsHandler.TopRatedStores)
	}

	api.POST("/upload-image", r.uploadHandler.UploadImage, requireAuth)

	// Device management routes
	devicesGroup := api.Group("/devices")
	devicesGroup.Use(requireAuth)
	{
		devicesGroup.POST("", r.deviceHandler.RegisterDevice)
		devicesGroup.GET("", r.deviceHandler.GetUserDevices)
		devicesGroup.PUT("/:id/token", r.deviceHandler.UpdateFCMToken)
		devicesGroup.DELETE("/:id", r.deviceHandler.DeactivateDevice)
	}
}

// RegisterMetricsRoute exposes the Prometheus handler at path.
func RegisterMetricsRoute(e *echo.Echo, path string, metricsHandler http.Handler) {
	e.GET(path, echo.WrapHandler(metricsHandler))
}
