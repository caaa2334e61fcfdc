// File: dbsa/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"dbsa/config"
	"dbsa/handlers"
	"dbsa/middleware"
	"dbsa/routes"
	contactSvc "dbsa/services/contact"
	scheduleSvc "dbsa/services/schedule"
	"dbsa/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// Entity cache: Redis-backed when configured, otherwise process memory.
	var entityStore scheduleSvc.EntityStore
	if config.AppConfig.RedisAddr != "" {
		utils.InitCache()
		entityStore = scheduleSvc.NewRedisEntityStore(utils.GetCacheClient(), config.AppConfig.EntityCacheTTL)
		logger.Sugar().Infof("entity cache backed by redis at %s", config.AppConfig.RedisAddr)
	} else {
		entityStore = scheduleSvc.NewMemoryEntityStore()
	}

	upstream := scheduleSvc.NewMindbodyClient(
		config.AppConfig.MindbodyAPIURL,
		config.AppConfig.MindbodyLocation,
		config.AppConfig.UpstreamTimeout,
		config.AppConfig.UpstreamRetryMax,
	)

	scheduleService := &scheduleSvc.DefaultScheduleService{
		Upstream:   upstream,
		Normalizer: scheduleSvc.NewNormalizer(entityStore),
	}
	limiter := middleware.NewRateLimiter(config.AppConfig.RateLimitWindow, config.AppConfig.RateLimitMax)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService, limiter, config.AppConfig.ScheduleCacheCtrl)

	contactService := contactSvc.NewContactService(config.AppConfig.ContactFormEndpoint)
	contactHandler := handlers.NewContactHandler(contactService, config.AppConfig.ContactRedirectPath)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		GetScheduleHandler:   scheduleHandler.GetScheduleHandler,
		SubmitContactHandler: contactHandler.SubmitContactHandler,
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
