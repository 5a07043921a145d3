package dto

import (
	"time"

	"vocab-master/internal/domain"
)

// QuizPromptResponse is the word being asked about
type QuizPromptResponse struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
	Example    string `json:"example"`
}

// QuizOptionResponse is one answer choice. Options never carry the example sentence.
type QuizOptionResponse struct {
	ID         int64  `json:"id"`
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

// QuizResponse represents a multiple-choice question
// @Description One quiz question with four shuffled options
type QuizResponse struct {
	Question  QuizPromptResponse   `json:"question"`
	Options   []QuizOptionResponse `json:"options"`
	CorrectID int64                `json:"correct_id"`
}

// RecordMistakeRequest represents a wrong answer reported by the client
// @Description Request body for recording a mistake
type RecordMistakeRequest struct {
	WordID *int64 `json:"word_id" validate:"required,gt=0"`
}

// MistakeResponse is one entry of the mistakes review pool
type MistakeResponse struct {
	WordID       int64     `json:"word_id"`
	Term         string    `json:"term"`
	Definition   string    `json:"definition"`
	Example      string    `json:"example"`
	SetID        int64     `json:"set_id"`
	Count        int       `json:"count"`
	LastReviewed time.Time `json:"last_reviewed"`
}

// StatusResponse acknowledges a write
type StatusResponse struct {
	Status string `json:"status"`
	Count  *int   `json:"count,omitempty"`
}

// Success returns the plain success acknowledgement.
func Success() StatusResponse {
	return StatusResponse{Status: "success"}
}

// SuccessWithCount returns a success acknowledgement carrying a count.
func SuccessWithCount(n int) StatusResponse {
	return StatusResponse{Status: "success", Count: &n}
}

// NewQuizResponse converts a generated question.
func NewQuizResponse(q *domain.QuizQuestion) QuizResponse {
	options := make([]QuizOptionResponse, len(q.Options))
	for i, o := range q.Options {
		options[i] = QuizOptionResponse{ID: o.ID, Term: o.Term, Definition: o.Definition}
	}
	return QuizResponse{
		Question: QuizPromptResponse{
			Term:       q.Question.Term,
			Definition: q.Question.Definition,
			Example:    q.Question.Example,
		},
		Options:   options,
		CorrectID: q.CorrectID,
	}
}

// NewMistakeResponses converts mistake entries, keeping their order.
func NewMistakeResponses(entries []domain.MistakeEntry) []MistakeResponse {
	out := make([]MistakeResponse, len(entries))
	for i, e := range entries {
		out[i] = MistakeResponse{
			WordID:       e.Word.ID,
			Term:         e.Word.Term,
			Definition:   e.Word.Definition,
			Example:      e.Word.Example,
			SetID:        e.Word.SetID,
			Count:        e.Count,
			LastReviewed: e.LastReviewed,
		}
	}
	return out
}
