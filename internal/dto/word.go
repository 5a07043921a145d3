package dto

import "vocab-master/internal/domain"

// WordSetResponse represents a word set
type WordSetResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CreateSetRequest is the body of POST /api/sets
type CreateSetRequest struct {
	Name string `json:"name" validate:"max=100"`
}

// WordResponse represents a stored word
type WordResponse struct {
	ID         int64  `json:"id"`
	Term       string `json:"term"`
	Definition string `json:"definition"`
	Example    string `json:"example"`
	SetID      int64  `json:"set_id"`
}

// WordInput is one word in an add request. Presence of term and definition is
// checked by the service so bulk imports can skip incomplete rows.
type WordInput struct {
	Term       string `json:"term" validate:"max=200"`
	Definition string `json:"definition" validate:"max=2000"`
	Example    string `json:"example" validate:"max=2000"`
}

// AddWordRequest is the body of POST /api/words
type AddWordRequest struct {
	WordInput
	SetID int64 `json:"set_id" validate:"gte=0"`
}

// BulkAddWordsRequest is the body of POST /api/words/bulk
type BulkAddWordsRequest struct {
	Words []WordInput `json:"words" validate:"dive"`
	SetID int64       `json:"set_id" validate:"gte=0"`
}

// ToDomain converts the request into a word; a zero set id selects the default set.
func (r AddWordRequest) ToDomain() *domain.Word {
	return domain.NewWord(r.Term, r.Definition, r.Example, r.SetID)
}

// ToDomain converts the submitted rows without filtering them.
func (r BulkAddWordsRequest) ToDomain() []domain.Word {
	words := make([]domain.Word, len(r.Words))
	for i, w := range r.Words {
		words[i] = domain.Word{Term: w.Term, Definition: w.Definition, Example: w.Example}
	}
	return words
}

func NewWordSetResponses(sets []domain.WordSet) []WordSetResponse {
	out := make([]WordSetResponse, len(sets))
	for i, s := range sets {
		out[i] = WordSetResponse{ID: s.ID, Name: s.Name}
	}
	return out
}

func NewWordResponses(words []domain.Word) []WordResponse {
	out := make([]WordResponse, len(words))
	for i, w := range words {
		out[i] = WordResponse{ID: w.ID, Term: w.Term, Definition: w.Definition, Example: w.Example, SetID: w.SetID}
	}
	return out
}
