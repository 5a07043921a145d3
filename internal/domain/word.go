package domain

import (
	"context"
	"strings"
	"time"
)

// DefaultSetID is the word set created by the initial migration; words without a set land here.
const DefaultSetID int64 = 1

// WordSet groups words under a unique name.
type WordSet struct {
	ID   int64
	Name string
}

// Validate validates the word set
func (s *WordSet) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return NewValidationError("Name is required")
	}
	return nil
}

// Word is one vocabulary entry. Words are never updated in place.
type Word struct {
	ID         int64
	Term       string
	Definition string
	Example    string
	SetID      int64
}

// NewWord creates a new Word, defaulting the set when setID is zero.
func NewWord(term, definition, example string, setID int64) *Word {
	if setID == 0 {
		setID = DefaultSetID
	}
	return &Word{
		Term:       strings.TrimSpace(term),
		Definition: strings.TrimSpace(definition),
		Example:    strings.TrimSpace(example),
		SetID:      setID,
	}
}

// Validate validates the word
func (w *Word) Validate() error {
	if w.Term == "" {
		return NewValidationError("term is required")
	}
	if w.Definition == "" {
		return NewValidationError("definition is required")
	}
	return nil
}

// MistakeEntry is a mistake row joined with its word.
type MistakeEntry struct {
	Word         Word
	Count        int
	LastReviewed time.Time
}

// WordRepository defines the word reads and writes the services need.
type WordRepository interface {
	// ListWords returns the words eligible for scope. For the mistakes scope the
	// order is least-recently-reviewed first.
	ListWords(ctx context.Context, scope Scope) ([]Word, error)
	// ListAllWords returns every word regardless of set.
	ListAllWords(ctx context.Context) ([]Word, error)
	// GetMistakeWords returns words with a mistake row ordered by last_reviewed ascending.
	GetMistakeWords(ctx context.Context) ([]Word, error)
	CreateWord(ctx context.Context, word *Word) error
	// CreateWords inserts all words atomically and returns how many were inserted.
	CreateWords(ctx context.Context, words []*Word) (int, error)
}

// MistakeRepository persists mistake counters.
type MistakeRepository interface {
	// UpsertMistake creates the row with count 1 or increments it, in one statement.
	UpsertMistake(ctx context.Context, wordID int64, at time.Time) error
	ListMistakes(ctx context.Context) ([]MistakeEntry, error)
	DeleteMistake(ctx context.Context, wordID int64) error
}

// WordSetRepository persists word sets.
type WordSetRepository interface {
	ListSets(ctx context.Context) ([]WordSet, error)
	GetSet(ctx context.Context, id int64) (*WordSet, error)
	CreateSet(ctx context.Context, set *WordSet) error
	// DeleteSet removes the set together with its words and their mistakes.
	DeleteSet(ctx context.Context, id int64) error
}

// TransactionManager runs fn inside a database transaction carried by ctx.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
