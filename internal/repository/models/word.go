package models

import (
	"database/sql"
	"time"
)

// WordSet maps the word_sets table.
type WordSet struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

// Word maps the words table. example is nullable.
type Word struct {
	ID         int64          `db:"id"`
	Term       string         `db:"term"`
	Definition string         `db:"definition"`
	Example    sql.NullString `db:"example"`
	SetID      int64          `db:"set_id"`
}

// Mistake maps the mistakes table.
type Mistake struct {
	WordID       int64     `db:"word_id"`
	Count        int       `db:"count"`
	LastReviewed time.Time `db:"last_reviewed"`
}

// MistakeWord is a mistake row joined with its word.
type MistakeWord struct {
	Word
	Count        int       `db:"count"`
	LastReviewed time.Time `db:"last_reviewed"`
}

// Setting maps the settings table.
type Setting struct {
	Key   string         `db:"key"`
	Value sql.NullString `db:"value"`
}
