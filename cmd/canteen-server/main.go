package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/tejasmmali/canteen-swift/internal/auth"
	"github.com/tejasmmali/canteen-swift/internal/catalog"
	"github.com/tejasmmali/canteen-swift/internal/events"
	"github.com/tejasmmali/canteen-swift/internal/feed"
	"github.com/tejasmmali/canteen-swift/internal/handler"
	"github.com/tejasmmali/canteen-swift/internal/repository"
	"github.com/tejasmmali/canteen-swift/internal/service"
	"github.com/tejasmmali/canteen-swift/pkg/config"
	"github.com/tejasmmali/canteen-swift/pkg/metrics"
	"github.com/tejasmmali/canteen-swift/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	logger.Info("Service configuration",
		zap.String("port", cfg.Port),
		zap.String("kafka_brokers", cfg.KafkaBrokers),
		zap.String("feed_channel", cfg.FeedChannel))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Stores: the application pool for orders, the elevated service pool
	// for the access-controlled role table.
	pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("Failed to connect order store", zap.Error(err))
	}
	defer pool.Close()

	servicePool := pool
	if cfg.ServiceDatabaseURL != cfg.DatabaseURL {
		servicePool, err = repository.NewPool(ctx, cfg.ServiceDatabaseURL)
		if err != nil {
			logger.Fatal("Failed to connect role store", zap.Error(err))
		}
		defer servicePool.Close()
	}

	orderRepo := repository.NewOrderRepository(pool)
	roleRepo := repository.NewRoleRepository(servicePool)

	producer := events.NewProducer(cfg.KafkaBrokers, logger)
	defer producer.Close()

	hub := feed.NewHub(logger)
	listener := feed.NewListener(cfg.DatabaseURL, cfg.FeedChannel, hub, logger)
	go func() {
		if err := listener.Run(ctx); err != nil && ctx.Err() == nil {
			logger.Error("Feed listener stopped", zap.Error(err))
		}
	}()

	serverMetrics := metrics.NewServerMetrics()

	menu := catalog.Seed()
	orderService := service.NewOrderService(orderRepo, menu, producer, hub, serverMetrics, logger)

	identity := auth.NewIdentityClient(cfg.IdentityURL, cfg.IdentityAPIKey)
	gate := auth.NewGate(identity, roleRepo, logger)

	orderHandler := handler.NewOrderHandler(orderService, menu, logger)
	adminHandler := handler.NewAdminHandler(orderService, logger)
	feedHandler := handler.NewFeedHandler(orderService, hub, logger)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(serverMetrics.Middleware())

	v1 := router.Group("/api/v1")
	{
		v1.POST("/orders", orderHandler.CreateOrder)
		v1.GET("/orders/:id", orderHandler.GetOrder)
		v1.GET("/orders/:id/events", feedHandler.TrackOrder)
		v1.GET("/menu", orderHandler.GetMenu)

		admin := v1.Group("/admin")
		admin.Use(auth.RequireStaff(gate, logger))
		{
			admin.GET("/orders", adminHandler.ListOrders)
			admin.PATCH("/orders/:id/status", adminHandler.UpdateStatus)
			admin.GET("/events", feedHandler.AdminEvents)
		}

		v1.GET("/health", func(c *gin.Context) {
			status := gin.H{
				"status":  "healthy",
				"service": "canteen-order-service",
			}
			if err := pool.Ping(c.Request.Context()); err != nil {
				status["store"] = "unhealthy"
				c.JSON(http.StatusServiceUnavailable, status)
				return
			}
			status["store"] = "healthy"
			c.JSON(http.StatusOK, status)
		})
	}
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	httpServer := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info("Starting HTTP server", zap.String("port", cfg.Port))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()

	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", zap.Error(err))
	}
	logger.Info("Server stopped")
}
