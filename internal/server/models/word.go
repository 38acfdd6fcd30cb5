// Package models defines server-side data models persisted in the database.
package models

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dmitrijs2005/sensitivewords/internal/common"
	"github.com/google/uuid"
)

// MaxWordLength is the longest accepted word, in runes.
const MaxWordLength = 100

// now is a seam for tests. Postgres keeps microseconds, so timestamps are
// truncated to make a loaded row compare equal to the one that was written.
var now = func() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// SensitiveWord is a word or phrase masked by the sanitizer while active.
// Word is always stored trimmed and upper-cased.
type SensitiveWord struct {
	ID        string
	Word      string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NormalizeWord trims surrounding whitespace and upper-cases text.
func NormalizeWord(text string) string {
	return strings.ToUpper(strings.TrimSpace(text))
}

func validateWord(text string) (string, error) {
	w := NormalizeWord(text)
	if w == "" {
		return "", fmt.Errorf("%w: word must not be empty", common.ErrValidation)
	}
	if utf8.RuneCountInString(w) > MaxWordLength {
		return "", fmt.Errorf("%w: word must be at most %d characters", common.ErrValidation, MaxWordLength)
	}
	return w, nil
}

// NewSensitiveWord returns a new active word with a fresh ID.
func NewSensitiveWord(text string) (*SensitiveWord, error) {
	w, err := validateWord(text)
	if err != nil {
		return nil, err
	}
	ts := now()
	return &SensitiveWord{
		ID:        uuid.NewString(),
		Word:      w,
		IsActive:  true,
		CreatedAt: ts,
		UpdatedAt: ts,
	}, nil
}

// Rename replaces the word text. The receiver is left untouched on error.
func (w *SensitiveWord) Rename(text string) error {
	v, err := validateWord(text)
	if err != nil {
		return err
	}
	w.Word = v
	w.UpdatedAt = now()
	return nil
}

func (w *SensitiveWord) Activate() {
	w.IsActive = true
	w.UpdatedAt = now()
}

func (w *SensitiveWord) Deactivate() {
	w.IsActive = false
	w.UpdatedAt = now()
}
