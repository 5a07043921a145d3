package repository

import (
	"context"
	"fmt"

	"vocab-master/internal/domain"
	"vocab-master/internal/repository/models"
	"vocab-master/internal/util"

	"github.com/jmoiron/sqlx"
)

const wordColumns = `w.id, w.term, w.definition, w.example, w.set_id`

// WordDatabaseAdapter implements domain.WordRepository using sqlx.
type WordDatabaseAdapter struct {
	db *sqlx.DB
	tx domain.TransactionManager
}

// NewWordDatabaseAdapter creates a new instance of WordDatabaseAdapter
func NewWordDatabaseAdapter(db *sqlx.DB) *WordDatabaseAdapter {
	return &WordDatabaseAdapter{db: db, tx: NewTransactionManagerAdapter(db)}
}

// ListWords implements domain.WordRepository
func (a *WordDatabaseAdapter) ListWords(ctx context.Context, scope domain.Scope) ([]domain.Word, error) {
	switch scope.Kind {
	case domain.ScopeMistakes:
		return a.GetMistakeWords(ctx)
	case domain.ScopeSet:
		query := `SELECT ` + wordColumns + ` FROM words w WHERE w.set_id = ? ORDER BY w.id ASC`
		return a.selectWords(ctx, query, scope.SetID)
	default:
		return a.ListAllWords(ctx)
	}
}

// ListAllWords implements domain.WordRepository
func (a *WordDatabaseAdapter) ListAllWords(ctx context.Context) ([]domain.Word, error) {
	query := `SELECT ` + wordColumns + ` FROM words w ORDER BY w.id ASC`
	return a.selectWords(ctx, query)
}

// GetMistakeWords implements domain.WordRepository
func (a *WordDatabaseAdapter) GetMistakeWords(ctx context.Context) ([]domain.Word, error) {
	query := `SELECT ` + wordColumns + `
	FROM words w
	JOIN mistakes m ON w.id = m.word_id
	ORDER BY m.last_reviewed ASC, m.word_id ASC`
	return a.selectWords(ctx, query)
}

func (a *WordDatabaseAdapter) selectWords(ctx context.Context, query string, args ...interface{}) ([]domain.Word, error) {
	var rows []models.Word
	if err := GetExecutor(ctx, a.db).SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query words: %w", err)
	}

	words := make([]domain.Word, len(rows))
	for i := range rows {
		words[i] = toDomainWord(&rows[i])
	}
	return words, nil
}

// CreateWord implements domain.WordRepository
func (a *WordDatabaseAdapter) CreateWord(ctx context.Context, word *domain.Word) error {
	if word == nil {
		return fmt.Errorf("cannot save nil word")
	}
	id, err := a.insertWord(ctx, GetExecutor(ctx, a.db), word)
	if err != nil {
		return err
	}
	word.ID = id
	return nil
}

// CreateWords implements domain.WordRepository. Either every word is inserted or none is.
func (a *WordDatabaseAdapter) CreateWords(ctx context.Context, words []*domain.Word) (int, error) {
	if len(words) == 0 {
		return 0, nil
	}

	inserted := 0
	err := a.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		exec := GetExecutor(txCtx, a.db)
		for _, w := range words {
			id, err := a.insertWord(txCtx, exec, w)
			if err != nil {
				return err
			}
			w.ID = id
			inserted++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

func (a *WordDatabaseAdapter) insertWord(ctx context.Context, exec DBTX, word *domain.Word) (int64, error) {
	m := toModelWord(word)
	query := `INSERT INTO words (term, definition, example, set_id) VALUES (?, ?, ?, ?)`
	result, err := exec.ExecContext(ctx, query, m.Term, m.Definition, m.Example, m.SetID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, fmt.Errorf("word set %d: %w", m.SetID, domain.ErrNotFound)
		}
		return 0, fmt.Errorf("failed to save word: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read inserted word id: %w", err)
	}
	return id, nil
}

func toDomainWord(m *models.Word) domain.Word {
	return domain.Word{
		ID:         m.ID,
		Term:       m.Term,
		Definition: m.Definition,
		Example:    m.Example.String,
		SetID:      m.SetID,
	}
}

func toModelWord(w *domain.Word) *models.Word {
	return &models.Word{
		ID:         w.ID,
		Term:       w.Term,
		Definition: w.Definition,
		Example:    util.StringToNullString(w.Example),
		SetID:      w.SetID,
	}
}

var _ domain.WordRepository = (*WordDatabaseAdapter)(nil)
