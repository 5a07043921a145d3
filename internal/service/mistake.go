package service

import (
	"context"
	"errors"
	"time"

	"vocab-master/internal/domain"
	"vocab-master/internal/logger"

	"go.uber.org/zap"
)

// MistakeService records and manages the mistakes review pool.
type MistakeService interface {
	RecordMistake(ctx context.Context, wordID int64) error
	ListMistakes(ctx context.Context) ([]domain.MistakeEntry, error)
	ClearMistake(ctx context.Context, wordID int64) error
}

// MistakeServiceOption configures a mistakeService.
type MistakeServiceOption func(*mistakeService)

// WithClock replaces time.Now as the source of last_reviewed timestamps.
func WithClock(now func() time.Time) MistakeServiceOption {
	return func(s *mistakeService) {
		if now != nil {
			s.now = now
		}
	}
}

type mistakeService struct {
	repo domain.MistakeRepository
	now  func() time.Time
}

// NewMistakeService creates a new instance of mistakeService
func NewMistakeService(repo domain.MistakeRepository, opts ...MistakeServiceOption) MistakeService {
	s := &mistakeService{repo: repo, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RecordMistake creates the word's counter or increments it.
func (s *mistakeService) RecordMistake(ctx context.Context, wordID int64) error {
	if wordID <= 0 {
		return domain.NewValidationError("Word ID required")
	}

	if err := s.repo.UpsertMistake(ctx, wordID, s.now().UTC()); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewNotFoundError("Word not found").WithContext("word_id", wordID)
		}
		logger.Get().Error("Failed to record mistake", zap.Int64("word_id", wordID), zap.Error(err))
		return domain.NewStorageError(err)
	}
	return nil
}

func (s *mistakeService) ListMistakes(ctx context.Context) ([]domain.MistakeEntry, error) {
	entries, err := s.repo.ListMistakes(ctx)
	if err != nil {
		return nil, domain.NewStorageError(err)
	}
	return entries, nil
}

// ClearMistake removes a word from the review pool.
func (s *mistakeService) ClearMistake(ctx context.Context, wordID int64) error {
	if wordID <= 0 {
		return domain.NewValidationError("Word ID required")
	}
	if err := s.repo.DeleteMistake(ctx, wordID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewNotFoundError("Mistake not found").WithContext("word_id", wordID)
		}
		return domain.NewStorageError(err)
	}
	return nil
}
