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

// WordSetDatabaseAdapter implements domain.WordSetRepository using sqlx.
type WordSetDatabaseAdapter struct {
	db *sqlx.DB
	tx domain.TransactionManager
}

// NewWordSetDatabaseAdapter creates a new instance of WordSetDatabaseAdapter
func NewWordSetDatabaseAdapter(db *sqlx.DB) *WordSetDatabaseAdapter {
	return &WordSetDatabaseAdapter{db: db, tx: NewTransactionManagerAdapter(db)}
}

// ListSets returns all sets ordered by id.
func (r *WordSetDatabaseAdapter) ListSets(ctx context.Context) ([]domain.WordSet, error) {
	var rows []models.WordSet
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, `SELECT id, name FROM word_sets ORDER BY id ASC`); err != nil {
		return nil, fmt.Errorf("failed to query word sets: %w", err)
	}

	sets := make([]domain.WordSet, len(rows))
	for i, row := range rows {
		sets[i] = domain.WordSet{ID: row.ID, Name: row.Name}
	}
	return sets, nil
}

// GetSet returns (nil, nil) when the set does not exist.
func (r *WordSetDatabaseAdapter) GetSet(ctx context.Context, id int64) (*domain.WordSet, error) {
	var row models.WordSet
	err := GetExecutor(ctx, r.db).GetContext(ctx, &row, `SELECT id, name FROM word_sets WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get word set %d: %w", id, err)
	}
	return &domain.WordSet{ID: row.ID, Name: row.Name}, nil
}

// CreateSet persists a new set and fills in its id.
func (r *WordSetDatabaseAdapter) CreateSet(ctx context.Context, set *domain.WordSet) error {
	result, err := GetExecutor(ctx, r.db).ExecContext(ctx, `INSERT INTO word_sets (name) VALUES (?)`, set.Name)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateSetName
		}
		return fmt.Errorf("failed to create word set: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read inserted word set id: %w", err)
	}
	set.ID = id
	return nil
}

// DeleteSet removes the set, its words and their mistakes in one transaction.
func (r *WordSetDatabaseAdapter) DeleteSet(ctx context.Context, id int64) error {
	return r.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		exec := GetExecutor(txCtx, r.db)

		if _, err := exec.ExecContext(txCtx, `DELETE FROM mistakes WHERE word_id IN (SELECT id FROM words WHERE set_id = ?)`, id); err != nil {
			return fmt.Errorf("failed to delete mistakes of set %d: %w", id, err)
		}
		if _, err := exec.ExecContext(txCtx, `DELETE FROM words WHERE set_id = ?`, id); err != nil {
			return fmt.Errorf("failed to delete words of set %d: %w", id, err)
		}

		result, err := exec.ExecContext(txCtx, `DELETE FROM word_sets WHERE id = ?`, id)
		if err != nil {
			return fmt.Errorf("failed to delete word set %d: %w", id, err)
		}
		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}
		if rowsAffected == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}

var _ domain.WordSetRepository = (*WordSetDatabaseAdapter)(nil)
