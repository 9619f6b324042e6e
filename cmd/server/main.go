package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"ridehail/internal/config"
	"ridehail/internal/handlers"
	"ridehail/internal/repositories/mongodb"
	"ridehail/internal/services"
	"ridehail/pkg/cache"
	"ridehail/pkg/database"
	"ridehail/pkg/logger"
	"ridehail/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.NewLogger(&logger.Config{
		Level:   logger.LogLevel(cfg.App.LogLevel),
		Format:  cfg.App.LogFormat,
		Output:  "stdout",
		AppName: cfg.App.Name,
		Version: cfg.App.Version,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Connect(ctx, &database.DatabaseConfig{
		URI:            cfg.Database.URI,
		Database:       cfg.Database.Database,
		MaxPoolSize:    cfg.Database.MaxPoolSize,
		MinPoolSize:    cfg.Database.MinPoolSize,
		ConnectTimeout: cfg.Database.ConnectTimeout,
		SocketTimeout:  cfg.Database.SocketTimeout,
		ConnectRetries: cfg.Database.ConnectRetries,
		RetryBackoff:   cfg.Database.RetryBackoff,
	}, appLogger)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to connect to MongoDB")
	}
	defer func() {
		if err := db.Close(); err != nil {
			appLogger.WithError(err).Error("Failed to close MongoDB connection")
			return
		}
		appLogger.Info("MongoDB connection closed")
	}()

	if err := database.NewMigrator(db.Database, appLogger).Up(ctx); err != nil {
		appLogger.WithError(err).Fatal("Failed to run migrations")
	}

	// Repositories
	customerRepo := mongodb.NewCustomerRepository(db.Database)
	driverRepo := mongodb.NewDriverRepository(db.Database)
	adminRepo := mongodb.NewAdminRepository(db.Database)
	vehicleRepo := mongodb.NewVehicleRepository(db.Database)
	rideRepo := mongodb.NewRideRepository(db.Database)
	paymentRepo := mongodb.NewPaymentRepository(db.Database)
	complaintRepo := mongodb.NewComplaintRepository(db.Database)
	analyticsRepo := mongodb.NewAnalyticsRepository(db.Database)

	// Follow-up queue is optional; without Redis a failed second write is an error.
	var followUps services.FollowUpQueue
	var workers sync.WaitGroup
	if cfg.Redis.Enabled {
		redisCache, err := cache.NewRedisCache(ctx, &cache.RedisConfig{
			Host:         cfg.Redis.Host,
			Port:         cfg.Redis.Port,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
			DialTimeout:  cfg.Redis.DialTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
		})
		if err != nil {
			appLogger.WithError(err).Warn("Redis unreachable; follow-up worker disabled")
		} else {
			defer redisCache.Close()

			followUps = services.NewFollowUpQueue(redisCache)
			worker := services.NewFollowUpWorker(followUps, driverRepo, paymentRepo, services.FollowUpConfig{
				MaxAttempts: cfg.FollowUp.MaxAttempts,
				RetryDelay:  cfg.FollowUp.RetryDelay,
				PollTimeout: cfg.FollowUp.PollTimeout,
			}, appLogger)

			workers.Add(1)
			go func() {
				defer workers.Done()
				worker.Run(ctx)
			}()
		}
	}

	// Services
	authService := services.NewAuthService(customerRepo, driverRepo, adminRepo, appLogger)
	registrationService := services.NewRegistrationService(customerRepo, driverRepo, adminRepo, vehicleRepo, followUps, appLogger)
	rideService := services.NewRideService(rideRepo, paymentRepo, followUps, appLogger)
	complaintService := services.NewComplaintService(complaintRepo, appLogger)
	analyticsService := services.NewAnalyticsService(analyticsRepo, appLogger)
	driverService := services.NewDriverService(driverRepo, appLogger)

	router := routes.NewRouter(&routes.Handlers{
		Auth:      handlers.NewAuthHandler(authService, appLogger),
		Customer:  handlers.NewCustomerHandler(registrationService, rideService, complaintService, appLogger),
		Driver:    handlers.NewDriverHandler(registrationService, rideService, driverService, appLogger),
		Admin:     handlers.NewAdminHandler(registrationService, complaintService, driverService, appLogger),
		Analytics: handlers.NewAnalyticsHandler(analyticsService, appLogger),
		Health:    handlers.NewHealthHandler(db, cfg.App.Version, appLogger),
	}, routes.RouterConfig{
		Release:            cfg.IsProduction(),
		CORSAllowedOrigins: cfg.Security.CORSAllowedOrigins,
		TrustedProxies:     cfg.Security.TrustedProxies,
	}, appLogger)

	srv := &http.Server{
		Addr:         cfg.Address(),
		Handler:      router,
		ReadTimeout:  cfg.App.ReadTimeout,
		WriteTimeout: cfg.App.WriteTimeout,
	}

	go func() {
		appLogger.WithField("addr", srv.Addr).Info("Server is running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.WithError(err).Error("HTTP server failed")
			stop()
		}
	}()

	<-ctx.Done()
	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.WithError(err).Error("Server forced to shutdown")
	}
	workers.Wait()
}
