package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Env    string
	Server ServerConfig
	DB     DBConfig
	Redis  RedisConfig
	LLM    LLMConfig
	Cache  CacheConfig
	Logger LoggerConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	BodyLimit    int
}

type DBConfig struct {
	Path          string
	MaxOpenConns  int
	BusyTimeoutMS int
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

// LLMConfig holds the process-level AI defaults. The API key and model chosen by the
// user live in the settings table and take precedence.
type LLMConfig struct {
	BaseURL      string
	DefaultModel string
	Timeout      time.Duration
	Referer      string
	Title        string
}

type CacheConfig struct {
	DefinitionTTL time.Duration
}

type LoggerConfig struct {
	Level string
	Env   string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "development")
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.read_timeout", "20s")
	v.SetDefault("server.write_timeout", "90s")
	v.SetDefault("server.idle_timeout", "20s")
	v.SetDefault("server.body_limit", 10*1024*1024)
	v.SetDefault("db.path", "vocab.db")
	v.SetDefault("db.max_open_conns", 1)
	v.SetDefault("db.busy_timeout_ms", 5000)
	v.SetDefault("redis.address", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("llm.base_url", "https://openrouter.ai/api/v1")
	v.SetDefault("llm.default_model", "google/gemini-2.0-flash-lite-preview-02-05:free")
	v.SetDefault("llm.timeout", "60s")
	v.SetDefault("llm.referer", "http://localhost:5000")
	v.SetDefault("llm.title", "Vocab Master")
	v.SetDefault("cache.definition_ttl", "168h")
	v.SetDefault("logger.level", "info")
}

// LoadConfig reads config.yaml (optional) and environment overrides.
// Env vars map dotted keys with underscores, e.g. DB_PATH, LLM_BASE_URL.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Add config paths based on environment
	if os.Getenv("ENV") == "test" {
		v.AddConfigPath("../../config")
		v.AddConfigPath("../../")
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Env: v.GetString("env"),
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  v.GetDuration("server.read_timeout"),
			WriteTimeout: v.GetDuration("server.write_timeout"),
			IdleTimeout:  v.GetDuration("server.idle_timeout"),
			BodyLimit:    v.GetInt("server.body_limit"),
		},
		DB: DBConfig{
			Path:          v.GetString("db.path"),
			MaxOpenConns:  v.GetInt("db.max_open_conns"),
			BusyTimeoutMS: v.GetInt("db.busy_timeout_ms"),
		},
		Redis: RedisConfig{
			Address:  v.GetString("redis.address"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		LLM: LLMConfig{
			BaseURL:      v.GetString("llm.base_url"),
			DefaultModel: v.GetString("llm.default_model"),
			Timeout:      v.GetDuration("llm.timeout"),
			Referer:      v.GetString("llm.referer"),
			Title:        v.GetString("llm.title"),
		},
		Cache: CacheConfig{
			DefinitionTTL: v.GetDuration("cache.definition_ttl"),
		},
	}
	cfg.Logger = LoggerConfig{Level: v.GetString("logger.level"), Env: cfg.Env}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations the server cannot start with.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port: %d", c.Server.Port)
	}
	if strings.TrimSpace(c.DB.Path) == "" {
		return fmt.Errorf("db.path is required")
	}
	if c.DB.MaxOpenConns < 1 {
		return fmt.Errorf("db.max_open_conns must be at least 1")
	}
	if c.LLM.Timeout <= 0 {
		return fmt.Errorf("llm.timeout must be positive")
	}
	return nil
}

// GetDSN builds the modernc sqlite DSN with foreign keys and a busy timeout enabled.
func (c *Config) GetDSN() string {
	return fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(%d)&_time_format=sqlite", c.DB.Path, c.DB.BusyTimeoutMS)
}
