package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"vocab-master/cmd/seed_initial_data/internal/seedmodels"
	"vocab-master/internal/config"
	"vocab-master/internal/database"
	"vocab-master/internal/domain"
	"vocab-master/internal/logger"
	"vocab-master/internal/repository"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

const defaultSeedFilePath = "configs/seed_data/initial_words.json"

func main() {
	seedFilePath := flag.String("file", defaultSeedFilePath, "path to the JSON seed file")
	flag.Parse()

	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	log.Info("Starting initial data seeding process...")
	db, err := database.NewSQLXSQLiteDB(ctx, cfg.GetDSN(), database.Options{MaxOpenConns: 1})
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.RunMigrations(db.DB, log); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}

	log.Info("Loading seed data from file", zap.String("path", *seedFilePath))
	byteValue, err := os.ReadFile(*seedFilePath)
	if err != nil {
		log.Fatal("Failed to read seed file", zap.String("path", *seedFilePath), zap.Error(err))
	}

	var seedSets []seedmodels.SeedSet
	if err := json.Unmarshal(byteValue, &seedSets); err != nil {
		log.Fatal("Failed to unmarshal seed data", zap.Error(err))
	}
	log.Info("Successfully unmarshalled seed data", zap.Int("sets_loaded", len(seedSets)))

	for _, ss := range seedSets {
		inserted, err := seedSetData(ctx, db, log, ss)
		if err != nil {
			log.Error("Error seeding set, transaction rolled back", zap.String("set", ss.Name), zap.Error(err))
			continue
		}
		log.Info("Seeded set", zap.String("set", ss.Name), zap.Int("inserted", inserted))
	}
	log.Info("Initial data seeding process completed.")
}

// seedSetData creates the set when missing and inserts the words whose term is not
// already in it, all in one transaction. Running it twice inserts nothing new.
func seedSetData(ctx context.Context, db *sqlx.DB, log *zap.Logger, seedSet seedmodels.SeedSet) (int, error) {
	setRepo := repository.NewWordSetDatabaseAdapter(db)
	wordRepo := repository.NewWordDatabaseAdapter(db)
	txManager := repository.NewTransactionManagerAdapter(db)

	inserted := 0
	err := txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		set, err := findOrCreateSet(txCtx, setRepo, seedSet.Name)
		if err != nil {
			return err
		}

		existing, err := wordRepo.ListWords(txCtx, domain.SetScope(set.ID))
		if err != nil {
			return fmt.Errorf("failed to list words of set %s: %w", set.Name, err)
		}
		seen := make(map[string]struct{}, len(existing))
		for _, w := range existing {
			seen[strings.ToLower(w.Term)] = struct{}{}
		}

		var words []*domain.Word
		for _, sw := range seedSet.Words {
			word := domain.NewWord(sw.Term, sw.Definition, sw.Example, set.ID)
			if err := word.Validate(); err != nil {
				log.Warn("Skipping invalid seed word", zap.String("term", sw.Term), zap.Error(err))
				continue
			}
			key := strings.ToLower(word.Term)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			words = append(words, word)
		}
		if len(words) == 0 {
			return nil
		}

		inserted, err = wordRepo.CreateWords(txCtx, words)
		return err
	})
	return inserted, err
}

func findOrCreateSet(ctx context.Context, repo domain.WordSetRepository, name string) (*domain.WordSet, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return &domain.WordSet{ID: domain.DefaultSetID}, nil
	}

	sets, err := repo.ListSets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sets: %w", err)
	}
	for i := range sets {
		if sets[i].Name == name {
			return &sets[i], nil
		}
	}

	set := &domain.WordSet{Name: name}
	if err := repo.CreateSet(ctx, set); err != nil {
		return nil, fmt.Errorf("failed to create set %s: %w", name, err)
	}
	return set, nil
}
