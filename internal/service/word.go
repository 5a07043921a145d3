package service

import (
	"context"
	"errors"
	"strings"

	"vocab-master/internal/domain"
	"vocab-master/internal/logger"

	"go.uber.org/zap"
)

// WordService manages word sets and their vocabulary.
type WordService interface {
	ListSets(ctx context.Context) ([]domain.WordSet, error)
	GetSet(ctx context.Context, id int64) (*domain.WordSet, error)
	CreateSet(ctx context.Context, name string) (*domain.WordSet, error)
	DeleteSet(ctx context.Context, id int64) error
	ListWords(ctx context.Context, scope domain.Scope) ([]domain.Word, error)
	AddWord(ctx context.Context, word *domain.Word) error
	// AddWordsBulk skips incomplete entries and stores the rest atomically.
	AddWordsBulk(ctx context.Context, setID int64, words []domain.Word) (int, error)
}

type wordService struct {
	words domain.WordRepository
	sets  domain.WordSetRepository
}

// NewWordService creates a new instance of wordService
func NewWordService(words domain.WordRepository, sets domain.WordSetRepository) WordService {
	return &wordService{words: words, sets: sets}
}

func (s *wordService) ListSets(ctx context.Context) ([]domain.WordSet, error) {
	sets, err := s.sets.ListSets(ctx)
	if err != nil {
		return nil, domain.NewStorageError(err)
	}
	return sets, nil
}

// GetSet returns a NotFound error when the set does not exist.
func (s *wordService) GetSet(ctx context.Context, id int64) (*domain.WordSet, error) {
	set, err := s.sets.GetSet(ctx, id)
	if err != nil {
		return nil, domain.NewStorageError(err)
	}
	if set == nil {
		return nil, domain.NewNotFoundError("Set not found").WithContext("set_id", id)
	}
	return set, nil
}

func (s *wordService) CreateSet(ctx context.Context, name string) (*domain.WordSet, error) {
	set := &domain.WordSet{Name: strings.TrimSpace(name)}
	if err := set.Validate(); err != nil {
		return nil, err
	}

	if err := s.sets.CreateSet(ctx, set); err != nil {
		if errors.Is(err, domain.ErrDuplicateSetName) {
			return nil, domain.NewConflictError("Set name already exists")
		}
		return nil, domain.NewStorageError(err)
	}
	logger.Get().Info("Created word set", zap.Int64("set_id", set.ID), zap.String("name", set.Name))
	return set, nil
}

// DeleteSet removes a set with its words and their mistakes. The default set is kept.
func (s *wordService) DeleteSet(ctx context.Context, id int64) error {
	if id == domain.DefaultSetID {
		return domain.NewValidationError("The default set cannot be deleted")
	}
	if err := s.sets.DeleteSet(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewNotFoundError("Set not found").WithContext("set_id", id)
		}
		return domain.NewStorageError(err)
	}
	logger.Get().Info("Deleted word set", zap.Int64("set_id", id))
	return nil
}

func (s *wordService) ListWords(ctx context.Context, scope domain.Scope) ([]domain.Word, error) {
	words, err := s.words.ListWords(ctx, scope)
	if err != nil {
		return nil, domain.NewStorageError(err)
	}
	return words, nil
}

func (s *wordService) AddWord(ctx context.Context, word *domain.Word) error {
	word = normalizeWord(word)
	if err := word.Validate(); err != nil {
		return err
	}
	if _, err := s.GetSet(ctx, word.SetID); err != nil {
		return err
	}
	if err := s.words.CreateWord(ctx, word); err != nil {
		return translateWordWriteError(err, word.SetID)
	}
	return nil
}

func (s *wordService) AddWordsBulk(ctx context.Context, setID int64, words []domain.Word) (int, error) {
	if len(words) == 0 {
		return 0, domain.NewValidationError("No words provided")
	}
	if setID == 0 {
		setID = domain.DefaultSetID
	}

	valid := make([]*domain.Word, 0, len(words))
	for i := range words {
		w := domain.NewWord(words[i].Term, words[i].Definition, words[i].Example, setID)
		if w.Validate() != nil {
			continue
		}
		valid = append(valid, w)
	}
	if len(valid) == 0 {
		return 0, domain.NewValidationError("No valid words to add")
	}

	if _, err := s.GetSet(ctx, setID); err != nil {
		return 0, err
	}

	count, err := s.words.CreateWords(ctx, valid)
	if err != nil {
		return 0, translateWordWriteError(err, setID)
	}
	logger.Get().Info("Added words in bulk",
		zap.Int64("set_id", setID),
		zap.Int("submitted", len(words)),
		zap.Int("inserted", count))
	return count, nil
}

func normalizeWord(w *domain.Word) *domain.Word {
	if w == nil {
		return &domain.Word{SetID: domain.DefaultSetID}
	}
	n := domain.NewWord(w.Term, w.Definition, w.Example, w.SetID)
	*w = *n
	return w
}

func translateWordWriteError(err error, setID int64) error {
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NewNotFoundError("Set not found").WithContext("set_id", setID)
	}
	return domain.NewStorageError(err)
}
