// @title Vocab Master API
// @version 1.0
// @description Vocabulary flashcards with multiple-choice quizzes, a mistakes notebook and AI assisted imports.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:5000
// @BasePath /api
// @schemes http
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"vocab-master/internal/adapter"
	"vocab-master/internal/adapter/llm"
	"vocab-master/internal/cache"
	"vocab-master/internal/config"
	"vocab-master/internal/database"
	"vocab-master/internal/domain"
	"vocab-master/internal/handler"
	"vocab-master/internal/logger"
	"vocab-master/internal/middleware"
	"vocab-master/internal/repository"
	"vocab-master/internal/service"
	"vocab-master/internal/validation"

	_ "vocab-master/cmd/api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	ctx := context.Background()

	// Connect to database
	db, err := database.NewSQLXSQLiteDB(ctx, cfg.GetDSN(), database.Options{MaxOpenConns: cfg.DB.MaxOpenConns})
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err), zap.String("path", cfg.DB.Path))
	}
	defer db.Close()

	if err := database.RunMigrations(db.DB, appLogger); err != nil {
		appLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Redis is optional; without it AI definitions are not cached.
	var definitionCache domain.Cache = adapter.NoopCache{}
	if cfg.Redis.Address != "" {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			appLogger.Warn("Redis unavailable, continuing without cache", zap.Error(err))
		} else {
			defer redisClient.Close()
			definitionCache = adapter.NewRedisCacheAdapter(redisClient)
			appLogger.Info("Successfully connected to Redis", zap.String("address", cfg.Redis.Address))
		}
	}

	// Initialize repositories
	wordRepository := repository.NewWordDatabaseAdapter(db)
	wordSetRepository := repository.NewWordSetDatabaseAdapter(db)
	mistakeRepository := repository.NewMistakeDatabaseAdapter(db)
	settingsRepository := repository.NewSettingsDatabaseAdapter(db)

	// Initialize services
	quizService := service.NewQuizService(wordRepository)
	mistakeService := service.NewMistakeService(mistakeRepository)
	wordService := service.NewWordService(wordRepository, wordSetRepository)
	settingsService := service.NewSettingsService(settingsRepository, cfg.LLM)
	aiService := service.NewAIService(
		llm.NewOpenRouterAssistant(nil),
		settingsService,
		wordService,
		definitionCache,
		cfg.Cache.DefinitionTTL,
	)

	// Initialize handlers
	validator := validation.NewValidator()
	handlers := handler.Handlers{
		Quiz:     handler.NewQuizHandler(quizService, mistakeService, validator),
		Word:     handler.NewWordHandler(wordService, validator),
		Settings: handler.NewSettingsHandler(settingsService, validator),
		AI:       handler.NewAIHandler(aiService, validator),
		Health:   handler.NewHealthHandler(db, definitionCache),
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BodyLimit:    cfg.Server.BodyLimit,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(recover.New())
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowMethods:  "GET,POST,DELETE,OPTIONS",
		AllowHeaders:  "Origin,Content-Type,Accept," + middleware.RequestIDHeader,
		ExposeHeaders: middleware.RequestIDHeader,
		MaxAge:        300,
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)
	handler.RegisterRoutes(app, handlers)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
		return
	}
	appLogger.Info("Server exited gracefully")
}
