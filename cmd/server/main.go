package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/canakboyraz/StokTakipUygulamasi/docs"
	"github.com/canakboyraz/StokTakipUygulamasi/internal/inventory"
	invDelivery "github.com/canakboyraz/StokTakipUygulamasi/internal/inventory/delivery/http"
	invDomain "github.com/canakboyraz/StokTakipUygulamasi/internal/inventory/domain"
	"github.com/canakboyraz/StokTakipUygulamasi/internal/inventory/repository"
	"github.com/canakboyraz/StokTakipUygulamasi/internal/middleware"
	"github.com/canakboyraz/StokTakipUygulamasi/internal/stockout"
	stockoutDomain "github.com/canakboyraz/StokTakipUygulamasi/internal/stockout/domain"
	"github.com/canakboyraz/StokTakipUygulamasi/internal/stockout/usecase/command"
	"github.com/canakboyraz/StokTakipUygulamasi/kafka"
	"github.com/canakboyraz/StokTakipUygulamasi/pkg/config"
	"github.com/canakboyraz/StokTakipUygulamasi/pkg/database"
	"github.com/canakboyraz/StokTakipUygulamasi/pkg/logger"
	"github.com/canakboyraz/StokTakipUygulamasi/pkg/tracing"
)

func main() {
	// .env is optional, real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Init(cfg.ServiceName, cfg.IsDevelopment())
	logger.SetLevel(cfg.LogLevel)

	logger.Logger.Info().
		Str("service", cfg.ServiceName).
		Str("environment", cfg.Environment).
		Str("log_level", cfg.LogLevel).
		Msg("Starting stock tracking service")

	// Initialize tracer
	tp, err := tracing.InitTracer(cfg.ServiceName)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to initialize tracer")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
			}
		}()
	}

	// Load database configuration
	dbConfig := database.Config{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		DBName:   cfg.DBName,
		SSLMode:  cfg.DBSSLMode,
	}

	// Connect to database
	db, err := database.NewGormConnection(dbConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	gormDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer gormDB.Close()

	// Separate raw pool for the transactional history repository
	sqlDB, err := database.NewPostgresConnection(dbConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer sqlDB.Close()

	// Run migrations
	if err := db.AutoMigrate(
		&invDomain.Product{},
		&invDomain.Category{},
		&stockoutDomain.StockOutHistory{},
		&stockoutDomain.StockOutItem{},
	); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}

	// Seed default categories
	if err := repository.NewGormCategoryRepository(db).SeedDefaults(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to seed default categories")
	}

	logger.Logger.Info().Msg("Database initialized successfully")

	// Kafka producer is optional, stock-out events are best effort
	var publisher command.EventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPublisher, err := kafka.NewPublisher(cfg.KafkaBrokers)
		if err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to connect to Kafka, events disabled")
		} else {
			defer kafkaPublisher.Close()
			publisher = kafkaPublisher
			logger.Logger.Info().
				Strs("brokers", cfg.KafkaBrokers).
				Msg("Kafka producer initialized")
		}
	}

	// Redis response cache is optional
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr: cfg.RedisAddr,
			DB:   cfg.RedisDB,
		})
		logger.Logger.Info().Str("addr", cfg.RedisAddr).Msg("Redis cache initialized")
	}

	// Initialize handlers with Wire DI
	productHandler, err := inventory.InitializeProductHandler(db)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize product handler")
	}

	categoryHandler, err := inventory.InitializeCategoryHandler(db)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize category handler")
	}

	historyHandler, err := stockout.InitializeHistoryHandler(sqlDB, publisher)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize history handler")
	}

	// Setup router
	router := mux.NewRouter()
	router.Use(middleware.Logging)
	if redisClient != nil {
		router.Use(middleware.Cache(redisClient, middleware.DefaultCacheConfig()))
	}

	// Register routes
	productHandler.RegisterRoutes(router)
	categoryHandler.RegisterRoutes(router)
	historyHandler.RegisterRoutes(router)

	// Health check endpoint
	productHandler.RegisterHealthCheck(router, sqlDB)

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	// Swagger UI
	invDelivery.RegisterSwaggerDocs(router, httpSwagger.Handler())

	startHTTPServer(router, cfg.HTTPPort, cfg.ServiceName)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")
}

func startHTTPServer(router *mux.Router, port, serviceName string) {
	// CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	handler := middleware.Tracing(serviceName, c.Handler(router))

	logger.Logger.Info().
		Str("port", port).
		Str("metrics_endpoint", "/metrics").
		Str("swagger_endpoint", "/swagger/").
		Msg("HTTP server started")

	go func() {
		if err := http.ListenAndServe(":"+port, handler); err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()
}
