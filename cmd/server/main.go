package main

import (
	"context" // context package is needed for Redis operations
	"time"    // Startup timeouts

	"fitness_tracker/internal/api"        // Custom package for API handlers
	"fitness_tracker/internal/config"     // Custom package for configuration
	"fitness_tracker/internal/db"         // Database open, migrate and seed
	"fitness_tracker/internal/logging"    // Logger setup
	"fitness_tracker/internal/repository" // Query layer
	"fitness_tracker/internal/service"    // Business operations
	"fitness_tracker/internal/utils"      // Session signer and cache

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg, err := config.LoadConfig() // Load configuration
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}

	// Setup logger
	out := logging.Setup(cfg.Log)
	gin.DefaultWriter = out

	// Connect to the database and bring the schema up to date
	gdb, err := db.Open(cfg.Database)
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	if err := db.Migrate(ctx, gdb); err != nil {
		logrus.Fatalf("failed to migrate DB: %v", err)
	}
	report, err := db.Seed(ctx, gdb)
	if err != nil {
		logrus.Fatalf("failed to seed DB: %v", err)
	}
	logrus.WithFields(logrus.Fields{
		"exercises":  report.Exercises,
		"yoga_poses": report.YogaPoses,
		"meals":      report.Meals,
	}).Info("Catalog seed checked")

	// Setup Redis client when configured; catalogs are read from the DB otherwise
	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,     // Redis server address
			Password: cfg.Redis.Password, // Redis password
			DB:       cfg.Redis.DB,       // Redis database number
		})
		// Test Redis connection
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logrus.Fatalf("failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
	}

	svc := service.NewFitnessService(
		repository.NewStore(gdb),
		service.WithCache(utils.NewCache(redisClient, service.CachePrefix), cfg.CatalogTTL()),
	)

	// A fresh seed must not be hidden behind catalogs cached by an earlier run
	if report.Inserted() > 0 {
		if err := svc.ResetCatalogCache(ctx); err != nil {
			logrus.WithFields(logrus.Fields{"error": err.Error()}).Warn("Failed to reset catalog cache")
		}
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	r, err := api.NewRouter(api.Deps{
		Service:       svc,
		Signer:        utils.NewSessionSigner(cfg.Session.Secret, cfg.SessionTTL()),
		SecureCookies: cfg.IsProd,
		CORSOrigins:   cfg.CORSOrigins,
	})
	if err != nil {
		logrus.Fatalf("failed to build router: %v", err)
	}

	logrus.WithFields(logrus.Fields{
		"addr":   cfg.Addr(),
		"driver": cfg.Database.Driver,
		"cache":  redisClient != nil,
	}).Info("Server running")
	if err := r.Run(cfg.Addr()); err != nil { // Start the server
		logrus.Fatalf("server stopped: %v", err)
	}
}
