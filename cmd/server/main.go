package main

import (
	"fmt"
	"log"
	"net/http"

	"goinsure/internal/config"
	"goinsure/internal/handlers"
	"goinsure/internal/middleware"
	"goinsure/internal/repositories/mongodb"
	"goinsure/internal/services"
	"goinsure/pkg/cache"
	"goinsure/pkg/database"
	"goinsure/pkg/logger"
	"goinsure/pkg/storage"
	"goinsure/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.NewLogger(&logger.Config{
		Level:  logger.LogLevel(cfg.Log.Level),
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
		Caller: cfg.Log.Caller,
		Colors: cfg.Log.Colors,
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// Connect to MongoDB
	db, err := database.NewMongoDB(&database.DatabaseConfig{
		URI:            cfg.Database.URI,
		Database:       cfg.Database.Database,
		MaxPoolSize:    cfg.Database.MaxPoolSize,
		MinPoolSize:    cfg.Database.MinPoolSize,
		ConnectTimeout: cfg.Database.ConnectTimeout,
		SocketTimeout:  cfg.Database.SocketTimeout,
	})
	if err != nil {
		appLogger.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer db.Close()

	// Run migrations
	if err := database.NewMigrator(db.Database).Up(); err != nil {
		appLogger.Fatalf("Failed to run migrations: %v", err)
	}

	// Connect to Redis
	redisCache, err := cache.NewRedisCache(&cache.RedisConfig{
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
		appLogger.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisCache.Close()

	// Select storage provider
	storageProvider, err := newStorageProvider(cfg.Storage)
	if err != nil {
		appLogger.Fatalf("Failed to initialize storage provider: %v", err)
	}

	// Initialize repositories
	customerRepo := mongodb.NewCustomerRepository(db.Database)
	vehicleRepo := mongodb.NewVehicleRepository(db.Database)
	coverageLevelRepo := mongodb.NewCoverageLevelRepository(db.Database, redisCache)
	policyRepo := mongodb.NewPolicyRepository(db.Database)
	claimRepo := mongodb.NewClaimRepository(db.Database)

	// Initialize services
	customerService := services.NewCustomerService(customerRepo, appLogger)
	vehicleService := services.NewVehicleService(vehicleRepo, customerRepo, appLogger)
	coverageLevelService := services.NewCoverageLevelService(coverageLevelRepo, appLogger)
	policyService := services.NewPolicyService(policyRepo, vehicleRepo, coverageLevelRepo, appLogger)
	claimService := services.NewClaimService(claimRepo, policyRepo, storageProvider, appLogger)
	reportService := services.NewReportService(policyRepo, claimRepo, vehicleRepo, customerRepo, appLogger)

	// Initialize handlers
	customerHandler := handlers.NewCustomerHandler(customerService)
	vehicleHandler := handlers.NewVehicleHandler(vehicleService)
	coverageLevelHandler := handlers.NewCoverageLevelHandler(coverageLevelService)
	policyHandler := handlers.NewPolicyHandler(policyService)
	claimHandler := handlers.NewClaimHandler(claimService)
	reportHandler := handlers.NewReportHandler(reportService)

	// Initialize Gin router
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware(appLogger))

	// API routes
	jwtSecret := cfg.Security.JWTSecret
	v1 := router.Group("/api/v1")
	{
		routes.SetupCustomerRoutes(v1, customerHandler, jwtSecret)
		routes.SetupVehicleRoutes(v1, vehicleHandler, jwtSecret)
		routes.SetupCoverageLevelRoutes(v1, coverageLevelHandler, jwtSecret)
		routes.SetupPolicyRoutes(v1, policyHandler, jwtSecret)
		routes.SetupClaimRoutes(v1, claimHandler, jwtSecret)
		routes.SetupReportRoutes(v1, reportHandler, jwtSecret)
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": cfg.App.Version,
		})
	})

	// Start server
	addr := fmt.Sprintf(":%d", cfg.App.Port)
	appLogger.Infof("Starting %s on %s", cfg.App.Name, addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		appLogger.Fatalf("Server stopped: %v", err)
	}
}

func newStorageProvider(cfg *config.StorageConfig) (storage.StorageProvider, error) {
	switch cfg.Provider {
	case "s3":
		return storage.NewAWSS3Storage(cfg.AWS.Region, cfg.AWS.Bucket, cfg.AWS.CDNDomain)
	case "gcs":
		return storage.NewGCPStorage(cfg.GCP.ProjectID, cfg.GCP.Bucket, cfg.GCP.CredentialsFile, cfg.GCP.CDNDomain)
	default:
		return storage.NewLocalStorage(cfg.Local.BasePath, cfg.Local.BaseURL)
	}
}
