package dto

import "vocab-master/internal/domain"

// GenerateWordsRequest is the body of POST /api/ai/generate
type GenerateWordsRequest struct {
	Words []string `json:"words" validate:"max=100"`
	SetID int64    `json:"set_id" validate:"gte=0"`
}

// GeneratedWordResponse is one entry produced by the AI assistant
type GeneratedWordResponse struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
	Example    string `json:"example"`
}

// GenerateWordsResponse reports how many generated words were stored
type GenerateWordsResponse struct {
	Status string                  `json:"status"`
	Count  int                     `json:"count"`
	Data   []GeneratedWordResponse `json:"data"`
}

// MistakeDescriptorRequest describes one wrong answer
type MistakeDescriptorRequest struct {
	Term        string `json:"term" validate:"required"`
	Definition  string `json:"definition"`
	WrongChoice string `json:"wrong_choice"`
}

// AnalyzeMistakesRequest is the body of POST /api/ai/analyze
type AnalyzeMistakesRequest struct {
	Mistakes []MistakeDescriptorRequest `json:"mistakes" validate:"max=50,dive"`
}

// AnalyzeMistakesResponse carries the assistant's advice
type AnalyzeMistakesResponse struct {
	Status   string `json:"status"`
	Analysis string `json:"analysis"`
}

func (r AnalyzeMistakesRequest) ToDomain() []domain.MistakeDescriptor {
	out := make([]domain.MistakeDescriptor, len(r.Mistakes))
	for i, m := range r.Mistakes {
		out[i] = domain.MistakeDescriptor{Term: m.Term, Definition: m.Definition, WrongChoice: m.WrongChoice}
	}
	return out
}

func NewGenerateWordsResponse(res *domain.GenerationResult) GenerateWordsResponse {
	data := make([]GeneratedWordResponse, len(res.Words))
	for i, w := range res.Words {
		data[i] = GeneratedWordResponse{Term: w.Term, Definition: w.Definition, Example: w.Example}
	}
	return GenerateWordsResponse{Status: "success", Count: res.Count, Data: data}
}
