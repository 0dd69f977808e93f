package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"foodee-backend/internal/shared/middleware"
	"foodee-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(c.Config.App.CORSOrigins),
		middleware.ClientIPMiddleware(),
	)

	router.GET("/health", healthCheckHandler(c))

	auth := middleware.AuthMiddleware(c.JWTManager)
	admin := middleware.AdminMiddleware()

	api := router.Group("/api")
	{
		setupAuthRoutes(api, c)
		setupUserRoutes(api, c, auth, admin)
		setupCatalogRoutes(api, c, auth, admin)
		setupCartRoutes(api, c, auth)
		setupOrderRoutes(api, c, auth, admin)
		setupBookingRoutes(api, c, auth, admin)
		setupPaymentRoutes(api, c, auth)
		setupReviewRoutes(api, c, auth)
		setupNewsRoutes(api, c, auth, admin)
		setupStatisticsRoutes(api, c, auth, admin)

		api.POST("/chatbot", c.ChatbotHandler.Chat)
	}

	return router
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(api *gin.RouterGroup, c *container.Container) {
	r := api.Group("/auth")
	{
		r.POST("/register", c.UserHandler.Register)
		r.POST("/login", c.UserHandler.Login)
		r.POST("/forgot-password", c.UserHandler.ForgotPassword)
		r.POST("/reset-password", c.UserHandler.ResetPassword)
	}
}

// ========================================
// USER ROUTES
// ========================================
func setupUserRoutes(api *gin.RouterGroup, c *container.Container, auth, admin gin.HandlerFunc) {
	r := api.Group("/user", auth)
	{
		r.GET("/profile", c.UserHandler.GetProfile)
		r.PUT("/profile", c.UserHandler.UpdateProfile)
	}

	a := api.Group("/user", auth, admin)
	{
		a.PUT("/admin/profile", c.UserHandler.UpdateProfile)
		a.GET("/all", c.UserHandler.ListUsers)
		a.POST("/create", c.UserHandler.CreateUser)
		a.PUT("/update/:username", c.UserHandler.UpdateUser)
		a.DELETE("/delete/:username", c.UserHandler.DeleteUser)
		a.GET("/:username", c.UserHandler.GetUser)
	}
}

// ========================================
// CATALOG ROUTES
// ========================================
func setupCatalogRoutes(api *gin.RouterGroup, c *container.Container, auth, admin gin.HandlerFunc) {
	products := api.Group("/products")
	{
		products.GET("", c.ProductHandler.ListProducts)
		products.GET("/search", c.ProductHandler.SearchProducts)
		products.GET("/by-product-type/:id", c.ProductHandler.ListByProductType)
		products.GET("/by-category/:id", c.ProductHandler.ListByCategory)
		products.GET("/:id", c.ProductHandler.GetProduct)

		products.POST("", auth, admin, c.ProductHandler.CreateProduct)
		products.PUT("/:id", auth, admin, c.ProductHandler.UpdateProduct)
		products.DELETE("/:id", auth, admin, c.ProductHandler.DeleteProduct)
		products.POST("/:id/image", auth, admin, c.ProductHandler.UploadImage)
	}

	types := api.Group("/product-types")
	{
		types.GET("", c.ProductTypeHandler.List)
		types.GET("/stats", c.ProductTypeHandler.Stats)
		types.GET("/:id", c.ProductTypeHandler.Get)

		types.POST("", auth, admin, c.ProductTypeHandler.Create)
		types.PUT("/:id", auth, admin, c.ProductTypeHandler.Update)
		types.DELETE("/:id", auth, admin, c.ProductTypeHandler.Delete)
	}

	categories := api.Group("/categories")
	{
		categories.GET("", c.CategoryHandler.List)
		categories.GET("/:id", c.CategoryHandler.Get)

		categories.POST("", auth, admin, c.CategoryHandler.Create)
		categories.PUT("/:id", auth, admin, c.CategoryHandler.Update)
		categories.DELETE("/:id", auth, admin, c.CategoryHandler.Delete)
	}
}

// ========================================
// CART ROUTES
// ========================================
func setupCartRoutes(api *gin.RouterGroup, c *container.Container, auth gin.HandlerFunc) {
	r := api.Group("/cart", auth)
	{
		r.GET("", c.CartHandler.GetCart)
		r.POST("/add", c.CartHandler.AddToCart)
		r.PUT("/update", c.CartHandler.UpdateQuantity)
		r.DELETE("/remove", c.CartHandler.RemoveFromCart)
		r.DELETE("/clear", c.CartHandler.ClearCart)
	}
}

// ========================================
// ORDER ROUTES
// ========================================
// Phân quyền chi tiết (owner / admin) nằm ở service
func setupOrderRoutes(api *gin.RouterGroup, c *container.Container, auth, admin gin.HandlerFunc) {
	r := api.Group("/orders", auth)
	{
		r.POST("", c.OrderHandler.CreateOrder)
		r.POST("/create-from-product", c.OrderHandler.CreateOrderFromProduct)
		r.GET("", c.OrderHandler.GetUserOrders)
		r.PUT("/:id/cancel", c.OrderHandler.CancelOrder)

		r.GET("/admin", admin, c.OrderHandler.GetAllOrders)
		r.PUT("/:id/status", admin, c.OrderHandler.UpdateOrderStatus)
		r.PUT("/:id/payment-status", admin, c.OrderHandler.UpdatePaymentStatus)
		r.PUT("/:id/delivery-date", admin, c.OrderHandler.UpdateDeliveryDate)
		r.PUT("/:id/approve-cancel", admin, c.OrderHandler.ApproveCancel)
		r.PUT("/:id/reject-cancel", admin, c.OrderHandler.RejectCancel)
		r.DELETE("/:id/delete", admin, c.OrderHandler.DeleteOrder)
	}
}

// ========================================
// BOOKING ROUTES
// ========================================
func setupBookingRoutes(api *gin.RouterGroup, c *container.Container, auth, admin gin.HandlerFunc) {
	r := api.Group("/booking", auth)
	{
		r.POST("/create", c.BookingHandler.Create)
		r.GET("/history", c.BookingHandler.History)
		r.PUT("/user/cancel/:id", c.BookingHandler.UserCancel)

		r.GET("/all", admin, c.BookingHandler.ListAll)
		r.PUT("/confirm/:id", admin, c.BookingHandler.Confirm)
		r.PUT("/cancel/:id", admin, c.BookingHandler.Cancel)
		r.PUT("/approve-cancel/:id", admin, c.BookingHandler.ApproveCancel)
		r.PUT("/reject-cancel/:id", admin, c.BookingHandler.RejectCancel)
		r.DELETE("/delete/:id", admin, c.BookingHandler.Delete)

		r.GET("/:id", c.BookingHandler.Get)
	}
}

// ========================================
// PAYMENT ROUTES
// ========================================
// confirm là return URL của VNPay, không có token
func setupPaymentRoutes(api *gin.RouterGroup, c *container.Container, auth gin.HandlerFunc) {
	r := api.Group("/payments/vnpay")
	{
		r.POST("/create/:orderId", auth, c.PaymentHandler.CreatePayment)
		r.GET("/confirm", c.PaymentHandler.Confirm)
		r.POST("/confirm", c.PaymentHandler.Confirm)
	}
}

// ========================================
// REVIEW ROUTES
// ========================================
func setupReviewRoutes(api *gin.RouterGroup, c *container.Container, auth gin.HandlerFunc) {
	r := api.Group("/reviews")
	{
		r.POST("", auth, c.ReviewHandler.CreateReview)
		r.GET("/product/:productId", c.ReviewHandler.ListProductReviews)
	}
}

// ========================================
// NEWS ROUTES
// ========================================
func setupNewsRoutes(api *gin.RouterGroup, c *container.Container, auth, admin gin.HandlerFunc) {
	r := api.Group("/news")
	{
		r.GET("", c.NewsHandler.List)
		r.GET("/search", c.NewsHandler.Search)
		r.GET("/:id", c.NewsHandler.Get)

		r.POST("", auth, admin, c.NewsHandler.Create)
		r.PUT("/:id", auth, admin, c.NewsHandler.Update)
		r.DELETE("/:id", auth, admin, c.NewsHandler.Delete)
	}
}

// ========================================
// STATISTICS ROUTES (ADMIN)
// ========================================
func setupStatisticsRoutes(api *gin.RouterGroup, c *container.Container, auth, admin gin.HandlerFunc) {
	r := api.Group("/statistics", auth, admin)
	{
		r.GET("/summary", c.StatsHandler.Summary)
		r.GET("/dashboard/overview", c.StatsHandler.Overview)
		r.GET("/dashboard/revenue", c.StatsHandler.Revenue)
		r.GET("/dashboard/top-foods", c.StatsHandler.TopFoods)
		r.GET("/dashboard/top-users-advanced", c.StatsHandler.TopUsers)
		r.GET("/top-dishes", c.StatsHandler.TopDishes)
		r.GET("/recent-activities", c.StatsHandler.RecentActivities)
		r.GET("/top-users", c.StatsHandler.TopUsers)
		r.GET("/order-status", c.StatsHandler.OrderStatus)
		r.GET("/export", c.StatsHandler.Export)
	}
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		// Check database
		dbStatus := "ok"
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			dbStatus = "disconnected"
			health["status"] = "degraded"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = fmt.Sprintf("error: %v", err)
				health["status"] = "degraded"
			}
		}

		// Check redis (MemoryCache fallback thì báo "memory")
		redisStatus := "ok"
		if appCtx.RedisCache == nil {
			redisStatus = "memory"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.RedisCache.Ping(ctx); err != nil {
				redisStatus = fmt.Sprintf("error: %v", err)
			}
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
