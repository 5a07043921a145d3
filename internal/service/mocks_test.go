package service

import (
	"context"
	"time"

	"vocab-master/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockWordRepository ---
type MockWordRepository struct {
	mock.Mock
}

func (m *MockWordRepository) ListWords(ctx context.Context, scope domain.Scope) ([]domain.Word, error) {
	args := m.Called(ctx, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Word), args.Error(1)
}

func (m *MockWordRepository) ListAllWords(ctx context.Context) ([]domain.Word, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Word), args.Error(1)
}

func (m *MockWordRepository) GetMistakeWords(ctx context.Context) ([]domain.Word, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Word), args.Error(1)
}

func (m *MockWordRepository) CreateWord(ctx context.Context, word *domain.Word) error {
	args := m.Called(ctx, word)
	return args.Error(0)
}

func (m *MockWordRepository) CreateWords(ctx context.Context, words []*domain.Word) (int, error) {
	args := m.Called(ctx, words)
	return args.Int(0), args.Error(1)
}

// --- MockWordSetRepository ---
type MockWordSetRepository struct {
	mock.Mock
}

func (m *MockWordSetRepository) ListSets(ctx context.Context) ([]domain.WordSet, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WordSet), args.Error(1)
}

func (m *MockWordSetRepository) GetSet(ctx context.Context, id int64) (*domain.WordSet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WordSet), args.Error(1)
}

func (m *MockWordSetRepository) CreateSet(ctx context.Context, set *domain.WordSet) error {
	args := m.Called(ctx, set)
	return args.Error(0)
}

func (m *MockWordSetRepository) DeleteSet(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// --- MockMistakeRepository ---
type MockMistakeRepository struct {
	mock.Mock
}

func (m *MockMistakeRepository) UpsertMistake(ctx context.Context, wordID int64, at time.Time) error {
	args := m.Called(ctx, wordID, at)
	return args.Error(0)
}

func (m *MockMistakeRepository) ListMistakes(ctx context.Context) ([]domain.MistakeEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MistakeEntry), args.Error(1)
}

func (m *MockMistakeRepository) DeleteMistake(ctx context.Context, wordID int64) error {
	args := m.Called(ctx, wordID)
	return args.Error(0)
}

// --- MockSettingsRepository ---
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) GetAll(ctx context.Context) (map[string]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]string), args.Error(1)
}

func (m *MockSettingsRepository) Get(ctx context.Context, key string) (string, bool, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockSettingsRepository) Set(ctx context.Context, key, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

// --- MockAssistant ---
type MockAssistant struct {
	mock.Mock
}

func (m *MockAssistant) GenerateWords(ctx context.Context, cfg domain.AIConfig, terms []string) ([]domain.GeneratedWord, error) {
	args := m.Called(ctx, cfg, terms)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GeneratedWord), args.Error(1)
}

func (m *MockAssistant) AnalyzeMistakes(ctx context.Context, cfg domain.AIConfig, mistakes []domain.MistakeDescriptor) (string, error) {
	args := m.Called(ctx, cfg, mistakes)
	return args.String(0), args.Error(1)
}

// --- MockCache ---
type MockCache struct {
	mock.Mock
}

func (m *MockCache) HGet(ctx context.Context, key, field string) (string, error) {
	args := m.Called(ctx, key, field)
	return args.String(0), args.Error(1)
}

func (m *MockCache) HSet(ctx context.Context, key, field, value string) error {
	args := m.Called(ctx, key, field, value)
	return args.Error(0)
}

func (m *MockCache) Expire(ctx context.Context, key string, expiration time.Duration) error {
	args := m.Called(ctx, key, expiration)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

var (
	_ domain.WordRepository      = (*MockWordRepository)(nil)
	_ domain.WordSetRepository   = (*MockWordSetRepository)(nil)
	_ domain.MistakeRepository   = (*MockMistakeRepository)(nil)
	_ domain.SettingsRepository  = (*MockSettingsRepository)(nil)
	_ domain.VocabularyAssistant = (*MockAssistant)(nil)
	_ domain.Cache               = (*MockCache)(nil)
)
