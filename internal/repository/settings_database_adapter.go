package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"vocab-master/internal/domain"
	"vocab-master/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// SettingsDatabaseAdapter implements domain.SettingsRepository using sqlx.
type SettingsDatabaseAdapter struct {
	db *sqlx.DB
}

// NewSettingsDatabaseAdapter creates a new instance of SettingsDatabaseAdapter
func NewSettingsDatabaseAdapter(db *sqlx.DB) *SettingsDatabaseAdapter {
	return &SettingsDatabaseAdapter{db: db}
}

func (a *SettingsDatabaseAdapter) GetAll(ctx context.Context) (map[string]string, error) {
	var rows []models.Setting
	if err := GetExecutor(ctx, a.db).SelectContext(ctx, &rows, `SELECT key, value FROM settings`); err != nil {
		return nil, fmt.Errorf("failed to query settings: %w", err)
	}

	settings := make(map[string]string, len(rows))
	for _, row := range rows {
		settings[row.Key] = row.Value.String
	}
	return settings, nil
}

func (a *SettingsDatabaseAdapter) Get(ctx context.Context, key string) (string, bool, error) {
	var value sql.NullString
	err := GetExecutor(ctx, a.db).GetContext(ctx, &value, `SELECT value FROM settings WHERE key = ?`, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get setting %q: %w", key, err)
	}
	return value.String, true, nil
}

func (a *SettingsDatabaseAdapter) Set(ctx context.Context, key, value string) error {
	query := `INSERT INTO settings (key, value) VALUES (:key, :value)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	row := models.Setting{Key: key, Value: sql.NullString{String: value, Valid: true}}
	if _, err := GetExecutor(ctx, a.db).NamedExecContext(ctx, query, row); err != nil {
		return fmt.Errorf("failed to save setting %q: %w", key, err)
	}
	return nil
}

var _ domain.SettingsRepository = (*SettingsDatabaseAdapter)(nil)
