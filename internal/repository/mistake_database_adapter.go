package repository

import (
	"context"
	"fmt"
	"time"

	"vocab-master/internal/domain"
	"vocab-master/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// upsertMistakeQuery creates the counter or bumps it in a single statement, so
// concurrent graders for the same word never lose an increment.
const upsertMistakeQuery = `INSERT INTO mistakes (word_id, count, last_reviewed)
	VALUES (?, 1, ?)
	ON CONFLICT(word_id)
	DO UPDATE SET count = mistakes.count + 1, last_reviewed = excluded.last_reviewed`

// MistakeDatabaseAdapter implements domain.MistakeRepository using sqlx.
type MistakeDatabaseAdapter struct {
	db *sqlx.DB
}

// NewMistakeDatabaseAdapter creates a new instance of MistakeDatabaseAdapter
func NewMistakeDatabaseAdapter(db *sqlx.DB) *MistakeDatabaseAdapter {
	return &MistakeDatabaseAdapter{db: db}
}

// UpsertMistake implements domain.MistakeRepository
func (a *MistakeDatabaseAdapter) UpsertMistake(ctx context.Context, wordID int64, at time.Time) error {
	_, err := GetExecutor(ctx, a.db).ExecContext(ctx, upsertMistakeQuery, wordID, at.UTC())
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("word %d: %w", wordID, domain.ErrNotFound)
		}
		return fmt.Errorf("failed to record mistake for word %d: %w", wordID, err)
	}
	return nil
}

// ListMistakes implements domain.MistakeRepository, oldest-reviewed first.
func (a *MistakeDatabaseAdapter) ListMistakes(ctx context.Context) ([]domain.MistakeEntry, error) {
	var rows []models.MistakeWord
	query := `SELECT ` + wordColumns + `, m.count, m.last_reviewed
	FROM mistakes m
	JOIN words w ON w.id = m.word_id
	ORDER BY m.last_reviewed ASC, m.word_id ASC`
	if err := GetExecutor(ctx, a.db).SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to query mistakes: %w", err)
	}

	entries := make([]domain.MistakeEntry, len(rows))
	for i := range rows {
		entries[i] = domain.MistakeEntry{
			Word:         toDomainWord(&rows[i].Word),
			Count:        rows[i].Count,
			LastReviewed: rows[i].LastReviewed,
		}
	}
	return entries, nil
}

// DeleteMistake implements domain.MistakeRepository
func (a *MistakeDatabaseAdapter) DeleteMistake(ctx context.Context, wordID int64) error {
	result, err := GetExecutor(ctx, a.db).ExecContext(ctx, `DELETE FROM mistakes WHERE word_id = ?`, wordID)
	if err != nil {
		return fmt.Errorf("failed to delete mistake for word %d: %w", wordID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ domain.MistakeRepository = (*MistakeDatabaseAdapter)(nil)
