package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"vocab-master/internal/adapter"
	"vocab-master/internal/adapter/llm"
	"vocab-master/internal/cache"
	"vocab-master/internal/config"
	"vocab-master/internal/database"
	"vocab-master/internal/domain"
	"vocab-master/internal/logger"
	"vocab-master/internal/repository"
	"vocab-master/internal/service"

	"go.uber.org/zap"
)

func main() {
	termsFile := flag.String("file", "", "text file with one term per line")
	setID := flag.Int64("set", domain.DefaultSetID, "word set receiving the generated words")
	chunkSize := flag.Int("chunk", 20, "terms sent to the model per request")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		return
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		return
	}
	defer logger.Sync()

	logger.Get().Info("Batch process starting up...")
	if *termsFile == "" || *chunkSize < 1 {
		logger.Get().Fatal("A terms file and a positive chunk size are required", zap.String("file", *termsFile), zap.Int("chunk", *chunkSize))
	}

	terms, err := readTerms(*termsFile)
	if err != nil {
		logger.Get().Fatal("Failed to read terms file", zap.String("file", *termsFile), zap.Error(err))
	}
	logger.Get().Info("Loaded terms", zap.Int("count", len(terms)))

	ctx := context.Background()
	db, err := database.NewSQLXSQLiteDB(ctx, cfg.GetDSN(), database.Options{MaxOpenConns: cfg.DB.MaxOpenConns})
	if err != nil {
		logger.Get().Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.RunMigrations(db.DB, logger.Get()); err != nil {
		logger.Get().Fatal("Failed to run migrations", zap.Error(err))
	}

	var cacheAdapter domain.Cache = adapter.NoopCache{}
	if cfg.Redis.Address != "" {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			logger.Get().Fatal("Failed to initialize Redis Client", zap.Error(err))
		}
		defer redisClient.Close()
		cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
		logger.Get().Info("Redis Cache initialized successfully.")
	} else {
		logger.Get().Warn("Redis cache is not configured. Running without cache.")
	}

	wordSvc := service.NewWordService(repository.NewWordDatabaseAdapter(db), repository.NewWordSetDatabaseAdapter(db))
	settingsSvc := service.NewSettingsService(repository.NewSettingsDatabaseAdapter(db), cfg.LLM)
	aiSvc := service.NewAIService(llm.NewOpenRouterAssistant(nil), settingsSvc, wordSvc, cacheAdapter, cfg.Cache.DefinitionTTL)

	total := 0
	for start := 0; start < len(terms); start += *chunkSize {
		end := min(start+*chunkSize, len(terms))
		result, err := aiSvc.GenerateBulk(ctx, *setID, terms[start:end])
		if err != nil {
			logger.Get().Fatal("Batch process failed", zap.Int("chunk_start", start), zap.Int("stored_so_far", total), zap.Error(err))
		}
		total += result.Count
		logger.Get().Info("Chunk stored", zap.Int("chunk_start", start), zap.Int("stored", result.Count))
	}

	logger.Get().Info("Batch process completed successfully.", zap.Int("stored", total))
}

// readTerms returns the non-blank lines of path. Lines starting with # are skipped.
func readTerms(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var terms []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		terms = append(terms, line)
	}
	return terms, scanner.Err()
}
