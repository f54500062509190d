package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	_ "content-catalog/docs"
	"content-catalog/internal/cache"
	"content-catalog/internal/config"
	"content-catalog/internal/database"
	"content-catalog/internal/handlers"
	"content-catalog/internal/repository"
	"content-catalog/internal/routes"
	"content-catalog/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	fiberSwagger "github.com/swaggo/fiber-swagger"
)

// @title Content Catalog API
// @version 1.0
// @description Content catalog storage: content items with genre tags, substring search and genre reconciliation
// @termsOfService http://swagger.io/terms/

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8010
// @BasePath /api/v1
// @schemes http https

func main() {
	loadEnvFile()

	cfg := config.Load()

	log := setupLogger()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Errorf("Error closing database connection: %v", err)
		}
	}()

	contentRepo := repository.NewContentRepository(db)

	var (
		contentCache *cache.ContentCache
		serviceCache services.ContentCache
	)
	if cfg.Cache.Enabled {
		client, err := cache.NewClient(cfg.Cache.RedisURL)
		if err != nil {
			log.Fatalf("Failed to configure Redis: %v", err)
		}
		defer client.Close()

		contentCache = cache.NewContentCache(client, cfg.Cache.ContentTTL, cfg.Cache.SearchTTL)
		if err := contentCache.Ping(context.Background()); err != nil {
			log.WithError(err).Warn("Redis is not reachable, requests will fall back to the database")
		}
		serviceCache = contentCache
	}

	var (
		imageStore    services.ImageStore
		uploadHandler *handlers.UploadHandler
	)
	if cfg.MinIO.Enabled {
		minioService, err := services.NewMinIOService(&cfg.MinIO, log)
		if err != nil {
			log.Fatalf("Failed to initialize MinIO service: %v", err)
		}
		imageStore = minioService
		uploadHandler = handlers.NewUploadHandler(minioService, log)
	}

	contentService := services.NewContentService(contentRepo, serviceCache, imageStore, log)
	contentHandler := handlers.NewContentHandler(contentService, log)

	app := fiber.New(fiber.Config{
		AppName:      "Content Catalog API",
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
		ErrorHandler: customErrorHandler(log),
	})

	setupMiddleware(app)

	app.Get("/health", healthCheckHandler(db, contentRepo, contentCache))

	app.Get("/swagger/*", fiberSwagger.WrapHandler)

	routes.Setup(app, contentHandler, uploadHandler)

	go gracefulShutdown(app, log)

	log.Infof("Content Catalog API starting on port %s", cfg.Server.Port)
	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start HTTP server: %v", err)
	}
}

func setupLogger() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
	})
	log.SetOutput(os.Stdout)
	log.SetLevel(logrus.InfoLevel)

	if os.Getenv("GO_ENV") == "dev" || os.Getenv("GO_ENV") == "development" {
		log.SetLevel(logrus.DebugLevel)
	}

	return log
}

func setupMiddleware(app *fiber.App) {
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))

	app.Use(logger.New(logger.Config{
		Format:     "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path} | ${error}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Request-ID",
		AllowMethods: "GET, POST, PATCH, DELETE, OPTIONS",
		MaxAge:       86400,
	}))
}

func healthCheckHandler(db *database.Database, repo repository.ContentRepository, contentCache *cache.ContentCache) fiber.Handler {
	return func(c *fiber.Ctx) error {
		status := "ok"

		dbStatus := "healthy"
		if err := db.HealthCheck(); err != nil {
			dbStatus = "unhealthy"
			status = "degraded"
		}

		cacheStatus := "disabled"
		if contentCache != nil {
			ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
			defer cancel()

			cacheStatus = "healthy"
			if err := contentCache.Ping(ctx); err != nil {
				cacheStatus = "unhealthy"
			}
		}

		body := fiber.Map{
			"status":    status,
			"service":   "content-catalog",
			"version":   "1.0.0",
			"database":  dbStatus,
			"cache":     cacheStatus,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		}
		if total, err := repo.Count(c.UserContext()); err == nil {
			body["contents"] = total
		}

		return c.JSON(body)
	}
}

func customErrorHandler(log *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		log.WithError(err).WithFields(logrus.Fields{
			"method": c.Method(),
			"path":   c.Path(),
			"status": code,
		}).Error("Request error")

		return c.Status(code).JSON(fiber.Map{
			"status":  "error",
			"code":    code,
			"message": err.Error(),
		})
	}
}

func gracefulShutdown(app *fiber.App, log *logrus.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if err := app.ShutdownWithTimeout(30 * time.Second); err != nil {
		log.Errorf("Error during shutdown: %v", err)
	}

	log.Info("Server shutdown complete")
}

func loadEnvFile() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{})
	log.SetOutput(os.Stdout)

	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "dev"
	}

	execDir, err := os.Getwd()
	if err != nil {
		log.Warnf("Could not get working directory: %v", err)
		return
	}

	envFile := filepath.Join(execDir, "envs", ".env."+env)
	if err := godotenv.Load(envFile); err != nil {
		log.Warnf("Could not load environment file %s: %v", envFile, err)

		defaultEnvFile := filepath.Join(execDir, "envs", ".env")
		if err := godotenv.Load(defaultEnvFile); err != nil {
			log.Warnf("Could not load default environment file: %v", err)
		} else {
			log.Infof("Environment loaded from default file %s", defaultEnvFile)
		}
	} else {
		log.Infof("Environment loaded from file %s", envFile)
	}
}
