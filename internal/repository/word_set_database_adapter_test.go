package repository

import (
	"context"
	"testing"
	"time"

	"vocab-master/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWordSetDatabaseAdapter_CreateListGet(t *testing.T) {
	db := setupSQLiteDB(t)
	ctx := context.Background()
	repo := NewWordSetDatabaseAdapter(db)

	set := &domain.WordSet{Name: "GRE"}
	require.NoError(t, repo.CreateSet(ctx, set))
	assert.NotZero(t, set.ID)

	sets, err := repo.ListSets(ctx)
	require.NoError(t, err)
	require.Len(t, sets, 2)
	assert.Equal(t, "Default", sets[0].Name)
	assert.Equal(t, "GRE", sets[1].Name)

	got, err := repo.GetSet(ctx, set.ID)
	require.NoError(t, err)
	assert.Equal(t, set, got)

	missing, err := repo.GetSet(ctx, 404)
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestWordSetDatabaseAdapter_CreateSet_DuplicateName(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewWordSetDatabaseAdapter(db)

	err := repo.CreateSet(context.Background(), &domain.WordSet{Name: "Default"})
	assert.ErrorIs(t, err, domain.ErrDuplicateSetName)
}

func TestWordSetDatabaseAdapter_DeleteSet_RemovesWordsAndMistakes(t *testing.T) {
	db := setupSQLiteDB(t)
	ctx := context.Background()
	sets := NewWordSetDatabaseAdapter(db)
	words := NewWordDatabaseAdapter(db)
	mistakes := NewMistakeDatabaseAdapter(db)

	set := &domain.WordSet{Name: "Travel"}
	require.NoError(t, sets.CreateSet(ctx, set))
	inSet := seedWords(t, words, set.ID, "passport", "luggage")
	kept := seedWords(t, words, domain.DefaultSetID, "apple")
	require.NoError(t, mistakes.UpsertMistake(ctx, inSet[0].ID, time.Now()))
	require.NoError(t, mistakes.UpsertMistake(ctx, kept[0].ID, time.Now()))

	require.NoError(t, sets.DeleteSet(ctx, set.ID))

	all, err := words.ListAllWords(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "apple", all[0].Term)

	entries, err := mistakes.ListMistakes(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, kept[0].ID, entries[0].Word.ID)

	assert.ErrorIs(t, sets.DeleteSet(ctx, set.ID), domain.ErrNotFound)
}
