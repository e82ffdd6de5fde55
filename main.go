// File: karoo/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"karoo/config"
	"karoo/database"
	tourRepoPkg "karoo/database/repository/tour"
	"karoo/handlers"
	"karoo/middleware"
	"karoo/routes"
	"karoo/services/booking"
	"karoo/services/storage"
	"karoo/services/tour"
	"karoo/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// A deployment without relay/gateway credentials cannot take bookings.
	if err := config.Validate(); err != nil {
		logger.Sugar().Fatalf("main: invalid configuration: %v", err)
	}

	database.InitDB()
	utils.InitCache()

	storageService, err := storage.NewCloudinaryStorage(
		config.AppConfig.CloudinaryCloudName,
		config.AppConfig.CloudinaryAPIKey,
		config.AppConfig.CloudinaryAPISecret,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories.
	tourRepo := tourRepoPkg.NewMongoTourRepo()

	// Services.
	tourService := &tour.DefaultTourService{
		Repo:    tourRepo,
		Storage: storageService,
		Cache:   utils.GetCacheClient(),
		Logger:  logger,
	}

	bookingService := &booking.DefaultBookingService{
		Relay: booking.NewBasinRelay(config.AppConfig.BasinEndpoint, logger),
		Gateway: booking.Gateway{
			MerchantID:  config.AppConfig.PayfastMerchantID,
			MerchantKey: config.AppConfig.PayfastMerchantKey,
			ProcessURL:  config.AppConfig.PayfastProcessURL,
			ReturnURL:   config.AppConfig.PayfastReturnURL,
			CancelURL:   config.AppConfig.PayfastCancelURL,
			NotifyURL:   config.AppConfig.PayfastNotifyURL,
		},
		Logger: logger,
	}

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Booking: handlers.NewBookingHandler(bookingService, logger),
		Tour:    handlers.NewTourHandler(tourService, logger),
		Review:  handlers.NewReviewHandler(config.AppConfig.ReviewRedirectURL, logger),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

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
