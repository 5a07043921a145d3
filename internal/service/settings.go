package service

import (
	"context"
	"strings"

	"vocab-master/internal/config"
	"vocab-master/internal/domain"
	"vocab-master/internal/util"
)

// SettingsService reads and writes user settings and derives the AI call configuration.
type SettingsService interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Update(ctx context.Context, update domain.SettingsUpdate) error
	// AIConfig returns a MissingAPIKey error when no key is stored.
	AIConfig(ctx context.Context) (domain.AIConfig, error)
}

type settingsService struct {
	repo domain.SettingsRepository
	llm  config.LLMConfig
}

// NewSettingsService creates a new instance of settingsService
func NewSettingsService(repo domain.SettingsRepository, llm config.LLMConfig) SettingsService {
	return &settingsService{repo: repo, llm: llm}
}

func (s *settingsService) Get(ctx context.Context) (*domain.Settings, error) {
	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, domain.NewStorageError(err)
	}

	apiKey := all[domain.SettingAPIKey]
	return &domain.Settings{
		MaskedAPIKey: util.MaskSecret(apiKey),
		APIKeySet:    apiKey != "",
		Model:        s.model(all[domain.SettingModel]),
	}, nil
}

func (s *settingsService) Update(ctx context.Context, update domain.SettingsUpdate) error {
	if key := strings.TrimSpace(update.APIKey); key != "" {
		if err := s.repo.Set(ctx, domain.SettingAPIKey, key); err != nil {
			return domain.NewStorageError(err)
		}
	}
	if model := strings.TrimSpace(update.Model); model != "" {
		if err := s.repo.Set(ctx, domain.SettingModel, model); err != nil {
			return domain.NewStorageError(err)
		}
	}
	return nil
}

func (s *settingsService) AIConfig(ctx context.Context) (domain.AIConfig, error) {
	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return domain.AIConfig{}, domain.NewStorageError(err)
	}

	apiKey := all[domain.SettingAPIKey]
	if apiKey == "" {
		return domain.AIConfig{}, domain.NewMissingAPIKeyError()
	}

	return domain.AIConfig{
		APIKey:  apiKey,
		Model:   s.model(all[domain.SettingModel]),
		BaseURL: s.llm.BaseURL,
		Referer: s.llm.Referer,
		Title:   s.llm.Title,
		Timeout: s.llm.Timeout,
	}, nil
}

// model falls back to the configured default, then the built-in one.
func (s *settingsService) model(stored string) string {
	if stored != "" {
		return stored
	}
	if s.llm.DefaultModel != "" {
		return s.llm.DefaultModel
	}
	return domain.DefaultModel
}
