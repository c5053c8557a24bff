package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"order-status/internal/core/cache"
	"order-status/internal/core/config"
	"order-status/internal/core/logger"
	"order-status/internal/core/server"
	orderadapter "order-status/internal/features/orders/adapters"
	orderhandler "order-status/internal/features/orders/handler"
	"order-status/internal/features/orders/ports"
	orderservice "order-status/internal/features/orders/service"

	"go.uber.org/zap"
)

// @title Order Status API
// @version 1.0
// @description Looks up orders in the order-management API, verifies callers by phone and returns a normalized order envelope.
// @contact.name API Support
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	// Lookups answer CONFIG_ERROR until the process is restarted with these set.
	missing := cfg.OrderAPI.Missing()
	if len(missing) > 0 {
		l.Warn("Order API is not configured", zap.Strings("missing", missing))
	}

	var provider ports.OrderProvider = orderadapter.NewOrderAPIAdapter(cfg.OrderAPI)

	if cfg.Cache.Enabled() && len(missing) == 0 {
		redisCache, err := cache.NewRedisAdapter(cfg.Cache.RedisURL, "order-status:")
		if err != nil {
			l.Fatal("Invalid cache configuration", zap.Error(err))
		}
		defer redisCache.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisCache.Ping(ctx); err != nil {
			l.Warn("Order cache unreachable, lookups will bypass it until it recovers", zap.Error(err))
		}
		cancel()

		provider = orderadapter.NewCachedOrderProvider(provider, redisCache, cfg.Cache.TTL)
		l.Info("Order cache enabled", zap.Duration("ttl", cfg.Cache.TTL))
	}

	orderService := orderservice.NewOrderService(provider)
	orderHandler := orderhandler.NewOrderHandler(orderService, cfg.HideInternalErrors)

	srv := server.New(cfg)

	// Register Routes
	srv.App.Post("/", orderHandler.GetOrderStatus)
	srv.App.Post("/orders/status", orderHandler.GetOrderStatus)
	srv.App.Get("/orders/:id", orderHandler.GetOrder)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		l.Info("Shutting down")
		if err := srv.Shutdown(); err != nil {
			l.Error("Server shutdown failed", zap.Error(err))
		}
	}()

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
