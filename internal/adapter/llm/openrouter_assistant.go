package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"vocab-master/internal/domain"
	"vocab-master/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"
)

// ModelFactory builds a chat model for a single call.
type ModelFactory func(cfg domain.AIConfig) (llms.Model, error)

// OpenRouterAssistant implements domain.VocabularyAssistant against OpenRouter's
// OpenAI compatible chat completions endpoint.
type OpenRouterAssistant struct {
	newModel ModelFactory
}

// NewOpenRouterAssistant creates an assistant. A nil factory uses NewOpenAIModel.
func NewOpenRouterAssistant(factory ModelFactory) *OpenRouterAssistant {
	if factory == nil {
		factory = NewOpenAIModel
	}
	return &OpenRouterAssistant{newModel: factory}
}

// NewOpenAIModel creates a langchaingo OpenAI client from cfg. The key and model come
// from the settings table, so a client is built per call.
func NewOpenAIModel(cfg domain.AIConfig) (llms.Model, error) {
	if cfg.APIKey == "" {
		return nil, domain.NewMissingAPIKeyError()
	}

	opts := []openai.Option{
		openai.WithToken(cfg.APIKey),
		openai.WithModel(cfg.Model),
		openai.WithHTTPClient(&headerDoer{
			client:  &http.Client{Timeout: cfg.Timeout},
			referer: cfg.Referer,
			title:   cfg.Title,
		}),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
	}

	model, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenAI client: %w", err)
	}
	return model, nil
}

// headerDoer adds the attribution headers OpenRouter uses for app rankings.
type headerDoer struct {
	client  *http.Client
	referer string
	title   string
}

func (d *headerDoer) Do(req *http.Request) (*http.Response, error) {
	if d.referer != "" {
		req.Header.Set("HTTP-Referer", d.referer)
	}
	if d.title != "" {
		req.Header.Set("X-Title", d.title)
	}
	return d.client.Do(req)
}

// GenerateWords implements domain.VocabularyAssistant
func (a *OpenRouterAssistant) GenerateWords(ctx context.Context, cfg domain.AIConfig, terms []string) ([]domain.GeneratedWord, error) {
	l := logger.Get()
	l.Info("Generating vocabulary with LLM", zap.String("model", cfg.Model), zap.Int("terms", len(terms)))

	content, err := a.call(ctx, cfg, buildGeneratePrompt(terms))
	if err != nil {
		return nil, err
	}

	words, err := ParseGeneratedWords(content)
	if err != nil {
		l.Error("Failed to parse LLM vocabulary response", zap.Error(err), zap.String("raw_response", content))
		return nil, domain.NewUpstreamError(fmt.Errorf("AI generation failed: %w", err))
	}
	return words, nil
}

// AnalyzeMistakes implements domain.VocabularyAssistant
func (a *OpenRouterAssistant) AnalyzeMistakes(ctx context.Context, cfg domain.AIConfig, mistakes []domain.MistakeDescriptor) (string, error) {
	logger.Get().Info("Analyzing mistakes with LLM", zap.String("model", cfg.Model), zap.Int("mistakes", len(mistakes)))

	content, err := a.call(ctx, cfg, buildAnalysisPrompt(mistakes))
	if err != nil {
		return "", err
	}
	return stripThinking(content), nil
}

func (a *OpenRouterAssistant) call(ctx context.Context, cfg domain.AIConfig, prompt string) (string, error) {
	model, err := a.newModel(cfg)
	if err != nil {
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			return "", err
		}
		return "", domain.NewUpstreamError(err)
	}

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	response, err := llms.GenerateFromSinglePrompt(ctx, model, prompt)
	if err != nil {
		logger.Get().Error("LLM call failed", zap.Error(err), zap.String("model", cfg.Model))
		return "", domain.NewUpstreamError(err)
	}
	return response, nil
}

func buildGeneratePrompt(terms []string) string {
	return fmt.Sprintf(`You are a vocabulary assistant. For the following English words, provide the Traditional Chinese definition and a simple English example sentence.

Words: %s

Return ONLY a raw JSON array of objects (no markdown formatting). Each object must have these keys:
- "term": The English word
- "definition": Traditional Chinese definition (keep it concise)
- "example": A simple English example sentence`, strings.Join(terms, ", "))
}

func buildAnalysisPrompt(mistakes []domain.MistakeDescriptor) string {
	descs := make([]string, len(mistakes))
	for i, m := range mistakes {
		descs[i] = fmt.Sprintf("Word: %s\nCorrect Definition: %s\nUser's Wrong Choice: %s", m.Term, m.Definition, m.WrongChoice)
	}

	return fmt.Sprintf(`The user took a vocabulary quiz and made the following mistakes.
Please analyze these mistakes and provide specific advice for improvement.
For each word, explain the nuance or why the user might have been confused.
Finally, give a short encouraging summary.

Mistakes:
%s

Output in Traditional Chinese (繁體中文).`, strings.Join(descs, "\n\n"))
}

// ParseGeneratedWords decodes the JSON array in an LLM reply. Markdown code fences
// and <think> blocks around the array are ignored.
func ParseGeneratedWords(raw string) ([]domain.GeneratedWord, error) {
	cleaned := stripThinking(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	start := strings.Index(cleaned, "[")
	end := strings.LastIndex(cleaned, "]")
	if start == -1 || end <= start {
		return nil, fmt.Errorf("no JSON array found in LLM response")
	}

	var words []domain.GeneratedWord
	if err := json.Unmarshal([]byte(cleaned[start:end+1]), &words); err != nil {
		return nil, fmt.Errorf("failed to unmarshal LLM response: %w", err)
	}
	for i := range words {
		words[i].Term = strings.TrimSpace(words[i].Term)
		words[i].Definition = strings.TrimSpace(words[i].Definition)
		words[i].Example = strings.TrimSpace(words[i].Example)
	}
	return words, nil
}

func stripThinking(s string) string {
	s = strings.TrimSpace(s)
	for {
		start := strings.Index(s, "<think>")
		if start == -1 {
			return s
		}
		end := strings.Index(s[start:], "</think>")
		if end == -1 {
			return s
		}
		s = strings.TrimSpace(s[:start] + s[start+end+len("</think>"):])
	}
}

var _ domain.VocabularyAssistant = (*OpenRouterAssistant)(nil)
