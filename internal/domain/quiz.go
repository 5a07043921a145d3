package domain

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// QuizOptionCount is the number of choices shown per question.
	QuizOptionCount = 4
	// QuizDistractorCount is the number of wrong choices per question.
	QuizDistractorCount = QuizOptionCount - 1
)

const (
	MsgInsufficientMistakes = "Not enough words in your mistakes notebook (need at least 4). Keep practicing to collect more!"
	MsgInsufficientPool     = "Not enough words to generate quiz (need at least 4)"
	MsgInsufficientUniverse = "Total database words too few for distractors"
)

// ScopeKind discriminates the quiz candidate pools.
type ScopeKind int

const (
	ScopeAll ScopeKind = iota
	ScopeSet
	ScopeMistakes
)

// Scope selects which words are eligible as the correct answer.
type Scope struct {
	Kind  ScopeKind
	SetID int64
}

func AllScope() Scope            { return Scope{Kind: ScopeAll} }
func MistakesScope() Scope       { return Scope{Kind: ScopeMistakes} }
func SetScope(id int64) Scope    { return Scope{Kind: ScopeSet, SetID: id} }
func (s Scope) IsMistakes() bool { return s.Kind == ScopeMistakes }

func (s Scope) String() string {
	switch s.Kind {
	case ScopeMistakes:
		return "mistakes"
	case ScopeSet:
		return strconv.FormatInt(s.SetID, 10)
	default:
		return "all"
	}
}

// ParseScope turns the set_id query value into a Scope. Empty and "all" select every word.
func ParseScope(raw string) (Scope, error) {
	raw = strings.TrimSpace(raw)
	switch strings.ToLower(raw) {
	case "", "all":
		return AllScope(), nil
	case "mistakes":
		return MistakesScope(), nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return Scope{}, NewValidationError(fmt.Sprintf("invalid set_id: %q", raw))
	}
	return SetScope(id), nil
}

// QuizPrompt is the word being asked about. It is the only place the example is exposed.
type QuizPrompt struct {
	Term       string
	Definition string
	Example    string
}

// QuizOption is one multiple-choice answer. It deliberately has no example field.
type QuizOption struct {
	ID         int64
	Term       string
	Definition string
}

// QuizQuestion is one generated multiple-choice question.
type QuizQuestion struct {
	Question  QuizPrompt
	Options   []QuizOption
	CorrectID int64
}

// OptionFromWord strips a word down to what an option may expose.
func OptionFromWord(w Word) QuizOption {
	return QuizOption{ID: w.ID, Term: w.Term, Definition: w.Definition}
}
