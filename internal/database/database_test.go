package database

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func openTestDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vocab.db")
	return fmt.Sprintf("file:%s?_pragma=foreign_keys(1)", path)
}

func TestRunMigrations_CreatesSchemaAndDefaults(t *testing.T) {
	db, err := NewSQLXSQLiteDB(context.Background(), openTestDB(t), Options{MaxOpenConns: 1})
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, RunMigrations(db.DB, zap.NewNop()))
	// Re-running is a no-op.
	require.NoError(t, RunMigrations(db.DB, zap.NewNop()))

	var setName string
	require.NoError(t, db.Get(&setName, "SELECT name FROM word_sets WHERE id = 1"))
	assert.Equal(t, "Default", setName)

	var model string
	require.NoError(t, db.Get(&model, "SELECT value FROM settings WHERE key = 'model'"))
	assert.Equal(t, "google/gemini-2.0-flash-lite-preview-02-05:free", model)

	var tables []string
	require.NoError(t, db.Select(&tables, "SELECT name FROM sqlite_master WHERE type = 'table' AND name IN ('words', 'mistakes', 'settings', 'word_sets') ORDER BY name"))
	assert.Equal(t, []string{"mistakes", "settings", "word_sets", "words"}, tables)
}

func TestRollbackMigrations_DropsSchema(t *testing.T) {
	db, err := NewSQLXSQLiteDB(context.Background(), openTestDB(t), Options{})
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, RunMigrations(db.DB, zap.NewNop()))
	require.NoError(t, RollbackMigrations(db.DB, zap.NewNop()))

	var count int
	require.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'words'"))
	assert.Zero(t, count)
}
