package service

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"time"

	"vocab-master/internal/cache"
	"vocab-master/internal/domain"
	"vocab-master/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// AIService runs the AI assisted features: bulk vocabulary generation and mistake analysis.
type AIService interface {
	GenerateBulk(ctx context.Context, setID int64, terms []string) (*domain.GenerationResult, error)
	AnalyzeMistakes(ctx context.Context, mistakes []domain.MistakeDescriptor) (string, error)
}

type aiService struct {
	assistant domain.VocabularyAssistant
	settings  SettingsService
	words     WordService
	cache     domain.Cache
	ttl       time.Duration
	sfGroup   singleflight.Group
}

// NewAIService creates a new instance of aiService. Generated definitions are cached for ttl.
func NewAIService(
	assistant domain.VocabularyAssistant,
	settings SettingsService,
	words WordService,
	cache domain.Cache,
	ttl time.Duration,
) AIService {
	return &aiService{
		assistant: assistant,
		settings:  settings,
		words:     words,
		cache:     cache,
		ttl:       ttl,
	}
}

// GenerateBulk asks the assistant for definitions of terms not already cached and
// stores every complete entry in the set.
func (s *aiService) GenerateBulk(ctx context.Context, setID int64, terms []string) (*domain.GenerationResult, error) {
	terms = cleanTerms(terms)
	if len(terms) == 0 {
		return nil, domain.NewValidationError("No words provided")
	}
	if setID == 0 {
		setID = domain.DefaultSetID
	}

	cfg, err := s.settings.AIConfig(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := s.words.GetSet(ctx, setID); err != nil {
		return nil, err
	}

	cached, missing := s.lookupCached(ctx, cfg.Model, terms)
	generated := cached
	if len(missing) > 0 {
		fresh, err := s.generate(ctx, cfg, missing)
		if err != nil {
			return nil, err
		}
		s.storeCached(ctx, cfg.Model, fresh)
		generated = append(generated, fresh...)
	}

	valid := make([]domain.Word, 0, len(generated))
	for _, g := range generated {
		if g.Complete() {
			valid = append(valid, domain.Word{Term: g.Term, Definition: g.Definition, Example: g.Example})
		}
	}
	if len(valid) == 0 {
		return nil, domain.NewUpstreamError(errors.New("AI returned invalid format"))
	}

	count, err := s.words.AddWordsBulk(ctx, setID, valid)
	if err != nil {
		return nil, err
	}

	logger.Get().Info("AI bulk generation finished",
		zap.Int("requested", len(terms)),
		zap.Int("from_cache", len(cached)),
		zap.Int("inserted", count))

	return &domain.GenerationResult{Count: count, Words: generated}, nil
}

func (s *aiService) AnalyzeMistakes(ctx context.Context, mistakes []domain.MistakeDescriptor) (string, error) {
	if len(mistakes) == 0 {
		return "", domain.NewValidationError("No mistakes provided")
	}

	cfg, err := s.settings.AIConfig(ctx)
	if err != nil {
		return "", err
	}

	analysis, err := s.assistant.AnalyzeMistakes(ctx, cfg, mistakes)
	if err != nil {
		return "", asUpstream(err)
	}
	return analysis, nil
}

// generate collapses identical concurrent requests into one assistant call. The shared
// call ignores the first caller's cancellation; cfg.Timeout still bounds it.
func (s *aiService) generate(ctx context.Context, cfg domain.AIConfig, terms []string) ([]domain.GeneratedWord, error) {
	keyTerms := make([]string, len(terms))
	for i, t := range terms {
		keyTerms[i] = cache.DefinitionField(t)
	}
	sort.Strings(keyTerms)
	sfKey := cfg.Model + "|" + strings.Join(keyTerms, ",")

	flightCtx := context.WithoutCancel(ctx)
	v, err, shared := s.sfGroup.Do(sfKey, func() (interface{}, error) {
		return s.assistant.GenerateWords(flightCtx, cfg, terms)
	})
	if err != nil {
		logger.Get().Error("AI generation failed", zap.Error(err), zap.Strings("terms", terms))
		return nil, asUpstream(err)
	}
	if shared {
		logger.Get().Debug("AI generation result shared with concurrent request", zap.String("key", sfKey))
	}

	words := v.([]domain.GeneratedWord)
	out := make([]domain.GeneratedWord, len(words))
	copy(out, words)
	return out, nil
}

func (s *aiService) lookupCached(ctx context.Context, model string, terms []string) ([]domain.GeneratedWord, []string) {
	key := cache.DefinitionKey(model)
	var hits []domain.GeneratedWord
	var missing []string

	for _, term := range terms {
		raw, err := s.cache.HGet(ctx, key, cache.DefinitionField(term))
		if err != nil {
			if !errors.Is(err, domain.ErrCacheMiss) {
				logger.Get().Warn("Definition cache read failed", zap.String("term", term), zap.Error(err))
			}
			missing = append(missing, term)
			continue
		}

		var g domain.GeneratedWord
		if err := json.Unmarshal([]byte(raw), &g); err != nil || !g.Complete() {
			logger.Get().Warn("Discarding unreadable cached definition", zap.String("term", term))
			missing = append(missing, term)
			continue
		}
		hits = append(hits, g)
	}
	return hits, missing
}

func (s *aiService) storeCached(ctx context.Context, model string, words []domain.GeneratedWord) {
	key := cache.DefinitionKey(model)
	stored := 0
	for _, g := range words {
		if !g.Complete() {
			continue
		}
		payload, err := json.Marshal(g)
		if err != nil {
			continue
		}
		if err := s.cache.HSet(ctx, key, cache.DefinitionField(g.Term), string(payload)); err != nil {
			logger.Get().Warn("Definition cache write failed", zap.String("term", g.Term), zap.Error(err))
			return
		}
		stored++
	}
	if stored > 0 && s.ttl > 0 {
		if err := s.cache.Expire(ctx, key, s.ttl); err != nil {
			logger.Get().Warn("Failed to set definition cache expiry", zap.Error(err))
		}
	}
}

// cleanTerms trims terms and drops empties and case-insensitive duplicates.
func cleanTerms(terms []string) []string {
	seen := make(map[string]struct{}, len(terms))
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		k := strings.ToLower(t)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, t)
	}
	return out
}

// asUpstream keeps domain errors as they are and wraps anything else as an upstream failure.
func asUpstream(err error) error {
	var de *domain.DomainError
	if errors.As(err, &de) {
		return err
	}
	return domain.NewUpstreamError(err)
}
