package service

import (
	"context"
	"math/rand/v2"

	"vocab-master/internal/domain"
	"vocab-master/internal/logger"

	"go.uber.org/zap"
)

// QuizService defines the interface for quiz generation
type QuizService interface {
	GenerateQuiz(ctx context.Context, scope domain.Scope) (*domain.QuizQuestion, error)
}

// QuizServiceOption configures a quizService.
type QuizServiceOption func(*quizService)

// WithRandom replaces the random source. intn must return a value in [0, n).
func WithRandom(intn func(n int) int) QuizServiceOption {
	return func(s *quizService) {
		if intn != nil {
			s.intn = intn
		}
	}
}

// quizService implements QuizService
type quizService struct {
	words domain.WordRepository
	intn  func(n int) int
}

// NewQuizService creates a new instance of quizService
func NewQuizService(words domain.WordRepository, opts ...QuizServiceOption) QuizService {
	s := &quizService{
		words: words,
		intn:  rand.IntN,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GenerateQuiz picks the correct word from the scoped pool and the distractors from
// every stored word, so narrow sets still get plausible wrong answers.
func (s *quizService) GenerateQuiz(ctx context.Context, scope domain.Scope) (*domain.QuizQuestion, error) {
	pool, err := s.words.ListWords(ctx, scope)
	if err != nil {
		logger.Get().Error("Failed to load quiz pool", zap.String("scope", scope.String()), zap.Error(err))
		return nil, domain.NewStorageError(err)
	}
	if len(pool) < domain.QuizOptionCount {
		return nil, domain.NewInsufficientPoolError(scope)
	}

	correct := pool[s.intn(len(pool))]

	universe, err := s.words.ListAllWords(ctx)
	if err != nil {
		logger.Get().Error("Failed to load distractor universe", zap.Error(err))
		return nil, domain.NewStorageError(err)
	}

	candidates := make([]domain.Word, 0, len(universe))
	for _, w := range universe {
		if w.ID != correct.ID {
			candidates = append(candidates, w)
		}
	}
	if len(candidates) < domain.QuizDistractorCount {
		return nil, domain.NewInsufficientUniverseError()
	}

	options := make([]domain.QuizOption, 0, domain.QuizOptionCount)
	for _, w := range s.sample(candidates, domain.QuizDistractorCount) {
		options = append(options, domain.OptionFromWord(w))
	}
	options = append(options, domain.OptionFromWord(correct))
	s.shuffle(options)

	logger.Get().Debug("Generated quiz",
		zap.String("scope", scope.String()),
		zap.Int("pool_size", len(pool)),
		zap.Int64("correct_id", correct.ID))

	return &domain.QuizQuestion{
		Question: domain.QuizPrompt{
			Term:       correct.Term,
			Definition: correct.Definition,
			Example:    correct.Example,
		},
		Options:   options,
		CorrectID: correct.ID,
	}, nil
}

// sample draws k distinct elements with a partial Fisher-Yates shuffle. words is modified.
func (s *quizService) sample(words []domain.Word, k int) []domain.Word {
	for i := 0; i < k; i++ {
		j := i + s.intn(len(words)-i)
		words[i], words[j] = words[j], words[i]
	}
	return words[:k]
}

func (s *quizService) shuffle(options []domain.QuizOption) {
	for i := len(options) - 1; i > 0; i-- {
		j := s.intn(i + 1)
		options[i], options[j] = options[j], options[i]
	}
}
