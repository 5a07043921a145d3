package main

import (
	"context"
	"flag"
	"log"

	"vocab-master/internal/config"
	"vocab-master/internal/database"
	"vocab-master/internal/logger"

	"go.uber.org/zap"
)

func main() {
	direction := flag.String("direction", "up", "migration direction: up or down")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	l := logger.Get()
	defer logger.Sync()

	db, err := database.NewSQLXSQLiteDB(context.Background(), cfg.GetDSN(), database.Options{MaxOpenConns: 1})
	if err != nil {
		l.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	switch *direction {
	case "up":
		err = database.RunMigrations(db.DB, l)
	case "down":
		err = database.RollbackMigrations(db.DB, l)
	default:
		l.Fatal("Unknown migration direction", zap.String("direction", *direction))
	}
	if err != nil {
		l.Fatal("Migration failed", zap.Error(err), zap.String("direction", *direction))
	}
}
