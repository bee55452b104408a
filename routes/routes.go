package routes

import (
	"net/http"
	"time"

	"inkwell/handlers"
	"inkwell/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers client account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.User.RegisterUserHandler)
		api.POST("/login", hb.User.AuthenticateUserHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("/me", hb.User.GetUserHandler)
		api.PATCH("/me", hb.User.UpdateUserHandler)
		api.DELETE("/me", hb.User.DeleteUserHandler)
		api.DELETE("/revoke", hb.User.RevokeUserAuthTokenHandler)
		api.PUT("/me/fcm-token", hb.User.UpdateUserFCMTokenHandler)
		api.GET("/me/credits", hb.User.ListCreditHistoryHandler)
	}
}

// RegisterArtistRoutes registers artist account, profile, and availability
// endpoints.
func RegisterArtistRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/artists")
	{
		// Public endpoints: registration, login, discovery, availability.
		api.POST("/register", hb.Artist.RegisterArtistHandler)
		api.POST("/login", hb.Artist.AuthenticateArtistHandler)
		api.GET("", hb.Artist.ListArtistsHandler)
		api.GET("/id/:id", hb.Artist.GetArtistProfileHandler)
		api.GET("/id/:id/availability", hb.Availability.OpenIntervalsHandler)
		api.GET("/id/:id/availability/check", hb.Availability.CheckAvailabilityHandler)

		// Endpoints that modify artist data require strict authentication.
		protected := api.Group("/me")
		protected.Use(middleware.JWTAuthArtistMiddleware(hb.ArtistRepo))
		protected.GET("", hb.Artist.GetOwnArtistHandler)
		protected.PATCH("", hb.Artist.UpdateArtistHandler)
		protected.DELETE("", hb.Artist.DeleteArtistHandler)
		protected.PUT("/schedule", hb.Artist.SetScheduleHandler)
		protected.POST("/portfolio", hb.Artist.AddPortfolioImageHandler)
		protected.PUT("/fcm-token", hb.Artist.UpdateArtistFCMTokenHandler)
		protected.GET("/bookings", hb.Booking.ListArtistBookingsHandler)

		api.DELETE("/revoke", middleware.JWTAuthArtistMiddleware(hb.ArtistRepo), hb.Artist.RevokeArtistAuthTokenHandler)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking lifecycle.
// Clients create, list, rate, and delete; both parties read, reschedule,
// transition status, and message.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/bookings")
	{
		bookingGroup.Use(middleware.JWTAuthAnyMiddleware(hb.UserRepo, hb.ArtistRepo))
		bookingGroup.POST("", hb.Booking.CreateBookingHandler)
		bookingGroup.GET("", hb.Booking.ListClientBookingsHandler)
		bookingGroup.GET("/:id", hb.Booking.GetBookingHandler)
		bookingGroup.PATCH("/:id", hb.Booking.UpdateBookingHandler)
		bookingGroup.DELETE("/:id", hb.Booking.DeleteBookingHandler)
		bookingGroup.POST("/:id/messages", hb.Booking.AddBookingMessageHandler)
		bookingGroup.POST("/:id/rating", hb.Booking.AddBookingRatingHandler)
	}
}

// RegisterDesignRoutes registers AI design generation endpoints.
func RegisterDesignRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/designs")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.POST("/generate", hb.Design.GenerateDesignHandler)
		api.GET("", hb.Design.ListUserDesignsHandler)
		api.GET("/:id", hb.Design.GetDesignHandler)
	}
}

// RegisterBlogRoutes registers blog endpoints. Reads are public; writes are
// admin only.
func RegisterBlogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/blog")
	{
		api.GET("", hb.Blog.ListPostsHandler)
		api.GET("/:id", hb.Blog.GetPostHandler)

		admin := api.Group("")
		admin.Use(middleware.JWTAuthAdminMiddleware(hb.UserRepo))
		admin.POST("", hb.Blog.CreatePostHandler)
		admin.POST("/generate", hb.Blog.GeneratePostHandler)
		admin.PUT("/:id", hb.Blog.UpdatePostHandler)
		admin.DELETE("/:id", hb.Blog.DeletePostHandler)
	}
}

// RegisterShopRoutes registers catalogue and order endpoints.
func RegisterShopRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/shop")
	{
		api.GET("/products", hb.Shop.ListProductsHandler)
		api.GET("/products/:id", hb.Shop.GetProductHandler)

		admin := api.Group("/products")
		admin.Use(middleware.JWTAuthAdminMiddleware(hb.UserRepo))
		admin.POST("", hb.Shop.CreateProductHandler)
		admin.PUT("/:id", hb.Shop.UpdateProductHandler)
		admin.DELETE("/:id", hb.Shop.DeleteProductHandler)

		orders := api.Group("/orders")
		orders.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		orders.POST("", hb.Shop.PlaceOrderHandler)
		orders.GET("", hb.Shop.ListUserOrdersHandler)
	}
}

// RegisterPaymentRoutes registers deposit and credit purchase endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/payments")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.POST("/deposit", hb.Payment.PayDepositHandler)
		api.POST("/credits", hb.Payment.PurchaseCreditsHandler)
	}
}

// RegisterNotificationRoutes registers the notification inbox for both roles.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/notifications")
	{
		api.Use(middleware.JWTAuthAnyMiddleware(hb.UserRepo, hb.ArtistRepo))
		api.GET("", hb.Notification.ListNotificationsHandler)
		api.PUT("/:id/read", hb.Notification.MarkNotificationReadHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Inkwell"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterUserRoutes(r, hb)
	RegisterArtistRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterDesignRoutes(r, hb)
	RegisterBlogRoutes(r, hb)
	RegisterShopRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
	RegisterHealthRoute(r)
}
