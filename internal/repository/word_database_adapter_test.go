package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"vocab-master/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWordDatabaseAdapter_CreateAndListByScope(t *testing.T) {
	db := setupSQLiteDB(t)
	ctx := context.Background()
	words := NewWordDatabaseAdapter(db)
	sets := NewWordSetDatabaseAdapter(db)

	toeic := &domain.WordSet{Name: "TOEIC"}
	require.NoError(t, sets.CreateSet(ctx, toeic))

	seedWords(t, words, domain.DefaultSetID, "apple", "banana")
	seedWords(t, words, toeic.ID, "negotiate")

	all, err := words.ListWords(ctx, domain.AllScope())
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, "apple", all[0].Term)

	inSet, err := words.ListWords(ctx, domain.SetScope(toeic.ID))
	require.NoError(t, err)
	require.Len(t, inSet, 1)
	assert.Equal(t, "negotiate", inSet[0].Term)
	assert.Equal(t, toeic.ID, inSet[0].SetID)

	empty, err := words.ListWords(ctx, domain.SetScope(999))
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestWordDatabaseAdapter_ExampleRoundTrip(t *testing.T) {
	db := setupSQLiteDB(t)
	ctx := context.Background()
	repo := NewWordDatabaseAdapter(db)

	w := domain.NewWord("serendipity", "happy accident", "It was pure serendipity.", 0)
	require.NoError(t, repo.CreateWord(ctx, w))
	assert.NotZero(t, w.ID)

	all, err := repo.ListAllWords(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "It was pure serendipity.", all[0].Example)
	assert.Equal(t, domain.DefaultSetID, all[0].SetID)
}

func TestWordDatabaseAdapter_CreateWord_UnknownSet(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewWordDatabaseAdapter(db)

	err := repo.CreateWord(context.Background(), domain.NewWord("ghost", "nothing", "", 42))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestWordDatabaseAdapter_CreateWords_AllOrNothing(t *testing.T) {
	db := setupSQLiteDB(t)
	ctx := context.Background()
	repo := NewWordDatabaseAdapter(db)

	batch := []*domain.Word{
		domain.NewWord("one", "1", "", domain.DefaultSetID),
		domain.NewWord("two", "2", "", 77),
	}
	n, err := repo.CreateWords(ctx, batch)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Zero(t, n)

	all, err := repo.ListAllWords(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	batch = []*domain.Word{
		domain.NewWord("one", "1", "", domain.DefaultSetID),
		domain.NewWord("two", "2", "ex", domain.DefaultSetID),
	}
	n, err = repo.CreateWords(ctx, batch)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.NotZero(t, batch[1].ID)
}

func TestWordDatabaseAdapter_GetMistakeWords_OrderedByLastReviewed(t *testing.T) {
	db := setupSQLiteDB(t)
	ctx := context.Background()
	words := NewWordDatabaseAdapter(db)
	mistakes := NewMistakeDatabaseAdapter(db)

	seeded := seedWords(t, words, domain.DefaultSetID, "a", "b", "c")
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, mistakes.UpsertMistake(ctx, seeded[0].ID, base.Add(2*time.Hour)))
	require.NoError(t, mistakes.UpsertMistake(ctx, seeded[2].ID, base))

	got, err := words.ListWords(ctx, domain.MistakesScope())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "c", got[0].Term)
	assert.Equal(t, "a", got[1].Term)
}

func TestWordDatabaseAdapter_ListAllWords_QueryError(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewWordDatabaseAdapter(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT w.id, w.term, w.definition, w.example, w.set_id FROM words w`)).
		WillReturnError(errors.New("disk I/O error"))

	words, err := repo.ListAllWords(context.Background())
	assert.Nil(t, words)
	assert.ErrorContains(t, err, "failed to query words")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWordDatabaseAdapter_CreateWords_RollsBackOnError(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewWordDatabaseAdapter(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO words (term, definition, example, set_id)`)).
		WithArgs("one", "1", nil, domain.DefaultSetID).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO words (term, definition, example, set_id)`)).
		WillReturnError(errors.New("database is locked"))
	mock.ExpectRollback()

	n, err := repo.CreateWords(context.Background(), []*domain.Word{
		domain.NewWord("one", "1", "", 0),
		domain.NewWord("two", "2", "", 0),
	})
	assert.Zero(t, n)
	assert.ErrorContains(t, err, "database is locked")
	assert.NoError(t, mock.ExpectationsWereMet())
}
