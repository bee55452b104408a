package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"inkwell/config"
	"inkwell/database"
	artistRepoPkg "inkwell/database/repository/artist"
	blogRepoPkg "inkwell/database/repository/blog"
	bookingRepoPkg "inkwell/database/repository/booking"
	creditRepoPkg "inkwell/database/repository/credit"
	designRepoPkg "inkwell/database/repository/design"
	notificationRepoPkg "inkwell/database/repository/notification"
	shopRepoPkg "inkwell/database/repository/shop"
	userRepoPkg "inkwell/database/repository/user"
	"inkwell/handlers"
	"inkwell/routes"
	"inkwell/services/artist"
	"inkwell/services/availability"
	"inkwell/services/blog"
	"inkwell/services/booking"
	"inkwell/services/design"
	"inkwell/services/notification"
	"inkwell/services/payment"
	"inkwell/services/shop"
	"inkwell/services/user"
	"inkwell/utils"
	"inkwell/worker"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()
	utils.FirebaseInit()

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	artistRepo := artistRepoPkg.NewMongoArtistRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	notificationRepo := notificationRepoPkg.NewMongoNotificationRepo()
	designRepo := designRepoPkg.NewMongoDesignRepo()
	blogRepo := blogRepoPkg.NewMongoBlogRepo()
	shopRepo := shopRepoPkg.NewMongoShopRepo()
	creditRepo := creditRepoPkg.NewMongoCreditRepo()

	// services.
	resolver := &availability.DefaultResolver{
		ArtistRepo:  artistRepo,
		BookingRepo: bookingRepo,
	}

	notificationService := &notification.DefaultNotificationService{
		Repo:    notificationRepo,
		Users:   userRepo,
		Artists: artistRepo,
	}

	reminderClient := &worker.ReminderClient{Client: worker.NewAsynqClient()}

	bookingService := &booking.DefaultBookingService{
		Repo:            bookingRepo,
		ArtistRepo:      artistRepo,
		Resolver:        resolver,
		NotificationSvc: notificationService,
		Reminders:       reminderClient,
	}

	userService := &user.DefaultUserService{
		Repo:    userRepo,
		Credits: creditRepo,
	}

	artistService := &artist.DefaultArtistService{
		Repo:    artistRepo,
		Storage: cloudinaryStorageService,
	}

	geminiClient, err := design.NewGeminiClient(config.AppConfig.GeminiAPIKey)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize Gemini client: %v", err)
	}
	designService := &design.DefaultDesignService{
		Client:  geminiClient,
		Repo:    designRepo,
		Users:   userRepo,
		Storage: cloudinaryStorageService,
	}

	blogService := &blog.DefaultBlogService{
		Repo:      blogRepo,
		Generator: designService,
	}

	paymentService := &payment.DefaultPaymentService{
		Bookings: bookingService,
		Users:    userRepo,
		Credits:  creditRepo,
	}

	shopService := &shop.DefaultShopService{
		Repo:     shopRepo,
		Payments: paymentService,
	}

	// Start the reminder worker.
	worker.InitReminderWorker(bookingRepo, notificationService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo:   userRepo,
		ArtistRepo: artistRepo,

		User:         &handlers.UserHandler{UserService: userService},
		Artist:       &handlers.ArtistHandler{ArtistService: artistService},
		Booking:      &handlers.BookingHandler{BookingService: bookingService},
		Availability: &handlers.AvailabilityHandler{Resolver: resolver},
		Design:       &handlers.DesignHandler{DesignService: designService},
		Blog:         &handlers.BlogHandler{BlogService: blogService},
		Shop:         &handlers.ShopHandler{ShopService: shopService},
		Payment:      &handlers.PaymentHandler{PaymentService: paymentService},
		Notification: &handlers.NotificationHandler{NotificationService: notificationService},
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
