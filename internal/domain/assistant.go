package domain

import "context"

// GeneratedWord represents the data expected from the LLM for one term.
type GeneratedWord struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
	Example    string `json:"example"`
}

// Complete reports whether the entry can be stored as a Word.
func (g GeneratedWord) Complete() bool {
	return g.Term != "" && g.Definition != ""
}

// MistakeDescriptor describes one wrong answer for analysis.
type MistakeDescriptor struct {
	Term        string `json:"term"`
	Definition  string `json:"definition"`
	WrongChoice string `json:"wrong_choice"`
}

// VocabularyAssistant is the text-generation collaborator.
// Implementations return errors verbatim from upstream and never retry.
type VocabularyAssistant interface {
	// GenerateWords asks for a definition and example sentence for each term.
	GenerateWords(ctx context.Context, cfg AIConfig, terms []string) ([]GeneratedWord, error)
	// AnalyzeMistakes returns free-text advice about the given mistakes.
	AnalyzeMistakes(ctx context.Context, cfg AIConfig, mistakes []MistakeDescriptor) (string, error)
}

// GenerationResult is the outcome of an AI bulk import.
type GenerationResult struct {
	Count int
	Words []GeneratedWord
}
