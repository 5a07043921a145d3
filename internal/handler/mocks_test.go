package handler_test

import (
	"context"
	"time"

	"vocab-master/internal/domain"
)

// --- Manual Mocks ---

type MockQuizService struct {
	GenerateQuizFunc func(ctx context.Context, scope domain.Scope) (*domain.QuizQuestion, error)
}

func (m *MockQuizService) GenerateQuiz(ctx context.Context, scope domain.Scope) (*domain.QuizQuestion, error) {
	if m.GenerateQuizFunc != nil {
		return m.GenerateQuizFunc(ctx, scope)
	}
	panic("MockQuizService.GenerateQuizFunc not implemented")
}

type MockMistakeService struct {
	RecordMistakeFunc func(ctx context.Context, wordID int64) error
	ListMistakesFunc  func(ctx context.Context) ([]domain.MistakeEntry, error)
	ClearMistakeFunc  func(ctx context.Context, wordID int64) error
}

func (m *MockMistakeService) RecordMistake(ctx context.Context, wordID int64) error {
	if m.RecordMistakeFunc != nil {
		return m.RecordMistakeFunc(ctx, wordID)
	}
	panic("MockMistakeService.RecordMistakeFunc not implemented")
}
func (m *MockMistakeService) ListMistakes(ctx context.Context) ([]domain.MistakeEntry, error) {
	if m.ListMistakesFunc != nil {
		return m.ListMistakesFunc(ctx)
	}
	panic("MockMistakeService.ListMistakesFunc not implemented")
}
func (m *MockMistakeService) ClearMistake(ctx context.Context, wordID int64) error {
	if m.ClearMistakeFunc != nil {
		return m.ClearMistakeFunc(ctx, wordID)
	}
	panic("MockMistakeService.ClearMistakeFunc not implemented")
}

type MockWordService struct {
	ListSetsFunc     func(ctx context.Context) ([]domain.WordSet, error)
	GetSetFunc       func(ctx context.Context, id int64) (*domain.WordSet, error)
	CreateSetFunc    func(ctx context.Context, name string) (*domain.WordSet, error)
	DeleteSetFunc    func(ctx context.Context, id int64) error
	ListWordsFunc    func(ctx context.Context, scope domain.Scope) ([]domain.Word, error)
	AddWordFunc      func(ctx context.Context, word *domain.Word) error
	AddWordsBulkFunc func(ctx context.Context, setID int64, words []domain.Word) (int, error)
}

func (m *MockWordService) ListSets(ctx context.Context) ([]domain.WordSet, error) {
	if m.ListSetsFunc != nil {
		return m.ListSetsFunc(ctx)
	}
	panic("MockWordService.ListSetsFunc not implemented")
}
func (m *MockWordService) GetSet(ctx context.Context, id int64) (*domain.WordSet, error) {
	if m.GetSetFunc != nil {
		return m.GetSetFunc(ctx, id)
	}
	panic("MockWordService.GetSetFunc not implemented")
}
func (m *MockWordService) CreateSet(ctx context.Context, name string) (*domain.WordSet, error) {
	if m.CreateSetFunc != nil {
		return m.CreateSetFunc(ctx, name)
	}
	panic("MockWordService.CreateSetFunc not implemented")
}
func (m *MockWordService) DeleteSet(ctx context.Context, id int64) error {
	if m.DeleteSetFunc != nil {
		return m.DeleteSetFunc(ctx, id)
	}
	panic("MockWordService.DeleteSetFunc not implemented")
}
func (m *MockWordService) ListWords(ctx context.Context, scope domain.Scope) ([]domain.Word, error) {
	if m.ListWordsFunc != nil {
		return m.ListWordsFunc(ctx, scope)
	}
	panic("MockWordService.ListWordsFunc not implemented")
}
func (m *MockWordService) AddWord(ctx context.Context, word *domain.Word) error {
	if m.AddWordFunc != nil {
		return m.AddWordFunc(ctx, word)
	}
	panic("MockWordService.AddWordFunc not implemented")
}
func (m *MockWordService) AddWordsBulk(ctx context.Context, setID int64, words []domain.Word) (int, error) {
	if m.AddWordsBulkFunc != nil {
		return m.AddWordsBulkFunc(ctx, setID, words)
	}
	panic("MockWordService.AddWordsBulkFunc not implemented")
}

type MockSettingsService struct {
	GetFunc      func(ctx context.Context) (*domain.Settings, error)
	UpdateFunc   func(ctx context.Context, update domain.SettingsUpdate) error
	AIConfigFunc func(ctx context.Context) (domain.AIConfig, error)
}

func (m *MockSettingsService) Get(ctx context.Context) (*domain.Settings, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx)
	}
	panic("MockSettingsService.GetFunc not implemented")
}
func (m *MockSettingsService) Update(ctx context.Context, update domain.SettingsUpdate) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, update)
	}
	panic("MockSettingsService.UpdateFunc not implemented")
}
func (m *MockSettingsService) AIConfig(ctx context.Context) (domain.AIConfig, error) {
	if m.AIConfigFunc != nil {
		return m.AIConfigFunc(ctx)
	}
	panic("MockSettingsService.AIConfigFunc not implemented")
}

type MockAIService struct {
	GenerateBulkFunc    func(ctx context.Context, setID int64, terms []string) (*domain.GenerationResult, error)
	AnalyzeMistakesFunc func(ctx context.Context, mistakes []domain.MistakeDescriptor) (string, error)
}

func (m *MockAIService) GenerateBulk(ctx context.Context, setID int64, terms []string) (*domain.GenerationResult, error) {
	if m.GenerateBulkFunc != nil {
		return m.GenerateBulkFunc(ctx, setID, terms)
	}
	panic("MockAIService.GenerateBulkFunc not implemented")
}
func (m *MockAIService) AnalyzeMistakes(ctx context.Context, mistakes []domain.MistakeDescriptor) (string, error) {
	if m.AnalyzeMistakesFunc != nil {
		return m.AnalyzeMistakesFunc(ctx, mistakes)
	}
	panic("MockAIService.AnalyzeMistakesFunc not implemented")
}

type fakePinger struct{ err error }

func (p fakePinger) PingContext(context.Context) error { return p.err }

type fakeCache struct{ pingErr error }

func (fakeCache) HGet(context.Context, string, string) (string, error) {
	return "", domain.ErrCacheMiss
}
func (fakeCache) HSet(context.Context, string, string, string) error  { return nil }
func (fakeCache) Expire(context.Context, string, time.Duration) error { return nil }
func (fakeCache) Delete(context.Context, string) error                { return nil }
func (c fakeCache) Ping(context.Context) error                        { return c.pingErr }
