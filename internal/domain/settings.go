package domain

import (
	"context"
	"time"
)

const (
	SettingAPIKey = "api_key"
	SettingModel  = "model"

	// DefaultModel is used when neither the settings table nor config names a model.
	DefaultModel = "google/gemini-2.0-flash-lite-preview-02-05:free"
)

// SettingsRepository stores key/value settings.
type SettingsRepository interface {
	GetAll(ctx context.Context) (map[string]string, error)
	// Get returns ("", false, nil) when the key is absent.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// AIConfig is the explicit configuration handed to the AI assistant on every call.
type AIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Referer string
	Title   string
	Timeout time.Duration
}

// Settings is the user-visible view of the settings table. The API key is never
// returned in clear text.
type Settings struct {
	MaskedAPIKey string
	APIKeySet    bool
	Model        string
}

// SettingsUpdate carries the fields to change. Empty fields are left untouched.
type SettingsUpdate struct {
	APIKey string
	Model  string
}
