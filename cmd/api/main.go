package main

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	sentry "github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/timeout"
	"github.com/gin-gonic/gin"
	"github.com/nats-io/nats.go"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/numbershield/numbershield/internal/alerts"
	"github.com/numbershield/numbershield/internal/classify"
	"github.com/numbershield/numbershield/internal/reports"
	"github.com/numbershield/numbershield/internal/risk"
	"github.com/numbershield/numbershield/internal/screenshot"
	"github.com/numbershield/numbershield/internal/trends"
	"github.com/numbershield/numbershield/pkg/common"
	"github.com/numbershield/numbershield/pkg/config"
	"github.com/numbershield/numbershield/pkg/database"
	"github.com/numbershield/numbershield/pkg/health"
	"github.com/numbershield/numbershield/pkg/logger"
	"github.com/numbershield/numbershield/pkg/middleware"
	"github.com/numbershield/numbershield/pkg/redis"
	"github.com/numbershield/numbershield/pkg/storage"
)

const serviceVersion = "1.0.0"

func main() {
	cfg, err := config.Load("numbershield-api")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Server.Environment); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if cfg.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.Sentry.DSN,
			Environment: cfg.Server.Environment,
			Release:     cfg.Server.ServiceName + "@" + serviceVersion,
		}); err != nil {
			logger.Warn("Sentry initialization failed", zap.Error(err))
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// PostgreSQL: pgx pool for ingestion/lookups, database/sql for the
	// aggregation queries and migrations
	pool, err := database.NewPostgresPool(&cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer database.Close(pool)

	sqlDB, err := database.NewSQLDB(&cfg.Database)
	if err != nil {
		logger.Fatal("Failed to open SQL connection", zap.Error(err))
	}
	defer sqlDB.Close()

	if err := database.RunMigrations(sqlDB, "migrations"); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}
	logger.Info("Database ready")

	redisClient, err := redis.NewRedisClient(&cfg.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()
	logger.Info("Connected to Redis")

	var publisher alerts.Publisher = alerts.NoopPublisher{}
	var natsConn *nats.Conn
	if cfg.NATS.Enabled {
		natsConn, err = nats.Connect(cfg.NATS.URL, nats.Name(cfg.Server.ServiceName))
		if err != nil {
			logger.Fatal("Failed to connect to NATS", zap.Error(err))
		}
		defer natsConn.Close()
		publisher = alerts.NewNATSPublisher(natsConn)
		logger.Info("Connected to NATS", zap.String("url", cfg.NATS.URL))
	}

	var objectStore storage.Storage
	if cfg.Storage.Enabled {
		s3Store, err := storage.NewS3Storage(context.Background(), cfg.Storage)
		if err != nil {
			logger.Fatal("Failed to initialize object storage", zap.Error(err))
		}
		objectStore = s3Store
		logger.Info("Object storage ready", zap.String("bucket", cfg.Storage.Bucket))
	}

	reportRepo := reports.NewRepository(pool)
	reportService := reports.NewService(reportRepo, publisher)
	reportHandler := reports.NewHandler(reportService)

	riskService := risk.NewService(reportRepo, publisher)
	riskHandler := risk.NewHandler(riskService)

	trendsRepo := trends.NewRepository(sqlDB)
	trendsService := trends.NewService(trendsRepo, redisClient.Client)
	trendsHandler := trends.NewHandler(trendsService)

	classifyHandler := classify.NewHandler()

	extractor := screenshot.NewTesseractExtractor(cfg.Screenshot.TesseractPath)
	screenshotService := screenshot.NewService(extractor, objectStore, cfg.Screenshot.MaxUploadMB)
	screenshotHandler := screenshot.NewHandler(screenshotService)

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.CorrelationID())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Metrics(cfg.Server.ServiceName))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = strings.Split(cfg.Server.CORSOrigins, ",")
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", middleware.CorrelationIDHeader}
	router.Use(cors.New(corsConfig))

	if cfg.Sentry.DSN != "" {
		router.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}

	router.Use(timeout.New(
		timeout.WithTimeout(time.Duration(cfg.Server.RequestTimeout)*time.Second),
		timeout.WithResponse(func(c *gin.Context) {
			common.ErrorResponse(c, http.StatusServiceUnavailable, "request timed out")
		}),
	))

	healthChecks := map[string]func() error{
		"postgres":            health.PoolChecker(pool),
		"postgres_aggregates": health.DatabaseChecker(sqlDB),
		"redis":               health.RedisChecker(redisClient.Client),
	}
	if cfg.NATS.Enabled {
		healthChecks["nats"] = health.NATSChecker(natsConn)
	}
	if cfg.Storage.Enabled {
		healthChecks["storage"] = health.StorageChecker(objectStore)
	}
	router.GET("/healthz", common.HealthCheck(cfg.Server.ServiceName, serviceVersion))
	router.GET("/healthz/deps", common.HealthCheckWithDeps(cfg.Server.ServiceName, serviceVersion, healthChecks))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	reportHandler.RegisterRoutes(router)
	riskHandler.RegisterRoutes(router)
	trendsHandler.RegisterRoutes(router)
	classifyHandler.RegisterRoutes(router)
	screenshotHandler.RegisterRoutes(router)

	addr := ":" + cfg.Server.Port
	logger.Info("Server starting", zap.String("addr", addr), zap.String("environment", cfg.Server.Environment))
	if err := router.Run(addr); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}
