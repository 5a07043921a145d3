package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"vocab-master/internal/cache"
	"vocab-master/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testTTL = 168 * time.Hour

type aiFixture struct {
	svc       AIService
	assistant *MockAssistant
	cache     *MockCache
	settings  *MockSettingsRepository
	words     *MockWordRepository
	sets      *MockWordSetRepository
}

func newAIFixture(apiKey string) *aiFixture {
	f := &aiFixture{
		assistant: new(MockAssistant),
		cache:     new(MockCache),
		settings:  new(MockSettingsRepository),
		words:     new(MockWordRepository),
		sets:      new(MockWordSetRepository),
	}
	stored := map[string]string{domain.SettingModel: "test/model"}
	if apiKey != "" {
		stored[domain.SettingAPIKey] = apiKey
	}
	f.settings.On("GetAll", mock.Anything).Return(stored, nil)
	f.sets.On("GetSet", mock.Anything, mock.AnythingOfType("int64")).Return(&domain.WordSet{ID: 1, Name: "Default"}, nil)

	settingsSvc := NewSettingsService(f.settings, testLLMConfig)
	wordSvc := NewWordService(f.words, f.sets)
	f.svc = NewAIService(f.assistant, settingsSvc, wordSvc, f.cache, testTTL)
	return f
}

func TestGenerateBulk_CacheMissCallsAssistantAndStores(t *testing.T) {
	f := newAIFixture("sk-1")
	key := cache.DefinitionKey("test/model")
	generated := []domain.GeneratedWord{
		{Term: "apple", Definition: "蘋果", Example: "An apple."},
		{Term: "banana", Definition: ""},
	}

	f.cache.On("HGet", mock.Anything, key, mock.Anything).Return("", domain.ErrCacheMiss)
	f.assistant.On("GenerateWords", mock.Anything, mock.MatchedBy(func(c domain.AIConfig) bool {
		return c.APIKey == "sk-1" && c.Model == "test/model"
	}), []string{"apple", "banana"}).Return(generated, nil).Once()
	f.cache.On("HSet", mock.Anything, key, "apple", mock.Anything).Return(nil).Once()
	f.cache.On("Expire", mock.Anything, key, testTTL).Return(nil).Once()
	f.words.On("CreateWords", mock.Anything, mock.MatchedBy(func(ws []*domain.Word) bool {
		return len(ws) == 1 && ws[0].Term == "apple"
	})).Return(1, nil)

	res, err := f.svc.GenerateBulk(context.Background(), 0, []string{"apple", " banana ", "Apple", ""})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Count)
	assert.Equal(t, generated, res.Words)
	f.assistant.AssertExpectations(t)
	f.cache.AssertExpectations(t)
}

func TestGenerateBulk_CachedTermsSkipAssistant(t *testing.T) {
	f := newAIFixture("sk-1")
	key := cache.DefinitionKey("test/model")
	payload, _ := json.Marshal(domain.GeneratedWord{Term: "apple", Definition: "蘋果"})

	f.cache.On("HGet", mock.Anything, key, "apple").Return(string(payload), nil)
	f.words.On("CreateWords", mock.Anything, mock.Anything).Return(1, nil)

	res, err := f.svc.GenerateBulk(context.Background(), 1, []string{"Apple"})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Count)
	f.assistant.AssertNotCalled(t, "GenerateWords", mock.Anything, mock.Anything, mock.Anything)
}

func TestGenerateBulk_CacheErrorsAreNotFatal(t *testing.T) {
	f := newAIFixture("sk-1")
	f.cache.On("HGet", mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("redis down"))
	f.assistant.On("GenerateWords", mock.Anything, mock.Anything, mock.Anything).
		Return([]domain.GeneratedWord{{Term: "pear", Definition: "梨"}}, nil)
	f.cache.On("HSet", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("redis down"))
	f.words.On("CreateWords", mock.Anything, mock.Anything).Return(1, nil)

	res, err := f.svc.GenerateBulk(context.Background(), 1, []string{"pear"})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Count)
	f.cache.AssertNotCalled(t, "Expire", mock.Anything, mock.Anything, mock.Anything)
}

func TestGenerateBulk_SharedCallSurvivesCallerCancel(t *testing.T) {
	f := newAIFixture("sk-1")
	f.cache.On("HGet", mock.Anything, mock.Anything, mock.Anything).Return("", domain.ErrCacheMiss)
	f.assistant.On("GenerateWords", mock.MatchedBy(func(ctx context.Context) bool {
		return ctx.Err() == nil
	}), mock.Anything, []string{"pear"}).Return([]domain.GeneratedWord{{Term: "pear", Definition: "梨"}}, nil).Once()
	f.cache.On("HSet", mock.Anything, mock.Anything, "pear", mock.Anything).Return(nil)
	f.cache.On("Expire", mock.Anything, mock.Anything, testTTL).Return(nil)
	f.words.On("CreateWords", mock.Anything, mock.Anything).Return(1, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := f.svc.GenerateBulk(ctx, 1, []string{"pear"})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Count)
	f.assistant.AssertExpectations(t)
}

func TestGenerateBulk_InvalidFormat(t *testing.T) {
	f := newAIFixture("sk-1")
	f.cache.On("HGet", mock.Anything, mock.Anything, mock.Anything).Return("", domain.ErrCacheMiss)
	f.assistant.On("GenerateWords", mock.Anything, mock.Anything, mock.Anything).
		Return([]domain.GeneratedWord{{Term: "pear"}}, nil)

	_, err := f.svc.GenerateBulk(context.Background(), 1, []string{"pear"})
	require.Error(t, err)
	assert.Equal(t, domain.CodeUpstream, domain.ErrorCodeOf(err))
	assert.Equal(t, "AI returned invalid format", err.Error())
	f.words.AssertNotCalled(t, "CreateWords", mock.Anything, mock.Anything)
}

func TestGenerateBulk_Preconditions(t *testing.T) {
	f := newAIFixture("")

	_, err := f.svc.GenerateBulk(context.Background(), 1, []string{" ", ""})
	assert.Equal(t, domain.CodeValidation, domain.ErrorCodeOf(err))
	assert.Equal(t, "No words provided", err.Error())

	_, err = f.svc.GenerateBulk(context.Background(), 1, []string{"apple"})
	assert.Equal(t, domain.CodeMissingAPIKey, domain.ErrorCodeOf(err))
	f.assistant.AssertNotCalled(t, "GenerateWords", mock.Anything, mock.Anything, mock.Anything)
}

func TestGenerateBulk_UpstreamErrorVerbatim(t *testing.T) {
	f := newAIFixture("sk-1")
	f.cache.On("HGet", mock.Anything, mock.Anything, mock.Anything).Return("", domain.ErrCacheMiss)
	f.assistant.On("GenerateWords", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("API returned unexpected status code: 429"))

	_, err := f.svc.GenerateBulk(context.Background(), 1, []string{"apple"})
	assert.Equal(t, domain.CodeUpstream, domain.ErrorCodeOf(err))
	assert.Equal(t, "API returned unexpected status code: 429", err.Error())
	f.assistant.AssertNumberOfCalls(t, "GenerateWords", 1)
}

func TestAnalyzeMistakes(t *testing.T) {
	f := newAIFixture("sk-1")
	mistakes := []domain.MistakeDescriptor{{Term: "affect", Definition: "影響", WrongChoice: "效果"}}
	f.assistant.On("AnalyzeMistakes", mock.Anything, mock.Anything, mistakes).Return("加油！", nil)

	analysis, err := f.svc.AnalyzeMistakes(context.Background(), mistakes)
	require.NoError(t, err)
	assert.Equal(t, "加油！", analysis)

	_, err = f.svc.AnalyzeMistakes(context.Background(), nil)
	assert.Equal(t, "No mistakes provided", err.Error())
}

func TestAnalyzeMistakes_MissingKey(t *testing.T) {
	f := newAIFixture("")
	_, err := f.svc.AnalyzeMistakes(context.Background(), []domain.MistakeDescriptor{{Term: "a"}})
	assert.Equal(t, domain.CodeMissingAPIKey, domain.ErrorCodeOf(err))
}
