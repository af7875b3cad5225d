package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fixitnow/config"
	"fixitnow/database"
	bookingRepoPkg "fixitnow/database/repository/booking"
	providerRepoPkg "fixitnow/database/repository/provider"
	userRepoPkg "fixitnow/database/repository/user"
	"fixitnow/handlers"
	"fixitnow/middleware"
	"fixitnow/routes"
	"fixitnow/services/admin"
	"fixitnow/services/booking"
	"fixitnow/services/provider"
	"fixitnow/services/scope"
	"fixitnow/services/user"
	"fixitnow/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	providerRepo := providerRepoPkg.NewMongoProviderRepo()

	// services.
	categorySource := scope.NewCachedCategorySource(providerRepo, utils.GetCacheClient())

	userService := &user.DefaultUserService{
		Repo:      userRepo,
		Providers: providerRepo,
		AuthCache: utils.GetAuthCacheClient(),
	}
	providerService := &provider.DefaultProviderService{
		Repo:       providerRepo,
		Categories: categorySource,
	}
	bookingService := &booking.DefaultBookingService{
		Repo:       bookingRepo,
		Categories: categorySource,
	}
	adminService := &admin.DefaultAdminService{
		Bookings: bookingRepo,
		Users:    userService,
	}

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		UserRepo: userRepo,
		Auth:     handlers.NewAuthHandler(userService),
		Booking:  handlers.NewBookingHandler(bookingService),
		Provider: handlers.NewProviderHandler(providerService),
		Admin:    handlers.NewAdminHandler(adminService, userService, bookingService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()},
		database.MongoClient,
	)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Info("server listening", zap.String("port", config.AppConfig.AppPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
	}
	if err := database.MongoClient.Disconnect(ctx); err != nil {
		logger.Error("failed to disconnect MongoDB", zap.Error(err))
	}
	logger.Info("server stopped")
}
