// File: homebook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"homebook/config"
	"homebook/cron"
	"homebook/database"
	bookingRepoPkg "homebook/database/repository/bookings"
	catalogRepoPkg "homebook/database/repository/catalog"
	"homebook/handlers"
	"homebook/middleware"
	"homebook/routes"
	"homebook/services/booking"
	"homebook/services/catalog"
	"homebook/services/tasks"
	"homebook/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(cors.Default())

	// repositories.
	catRepo := catalogRepoPkg.NewMongoCatalogRepo()
	bookRepo := bookingRepoPkg.NewMongoBookingRepo()

	// services.
	catalogService := &catalog.DefaultCatalogService{
		Repo:        catRepo,
		CacheClient: utils.GetCacheClient(),
	}
	handlers.SetCatalogService(catalogService)

	bookingService := &booking.DefaultBookingService{
		Repo:       bookRepo,
		TaskClient: tasks.NewClient(),
		Pricing:    booking.PricingFromConfig(),
	}
	handlers.SetBookingService(bookingService)

	// Background worker for booking confirmations.
	cron.InitConfirmationWorker()

	// Health monitoring for readiness checks.
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Register routes.
	routes.RegisterCatalogRoutes(router)
	routes.RegisterBookingRoutes(router)
	routes.RegisterHealthRoute(router)

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
