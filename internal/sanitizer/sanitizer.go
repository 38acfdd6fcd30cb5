// Package sanitizer masks whole-word occurrences of sensitive words in text.
//
// Matching is case-insensitive (Unicode simple folding) and longest-first:
// candidates are applied in descending rune length, so a phrase such as
// "SELECT * FROM" is masked before the shorter "SELECT" gets a chance to
// match inside it. Every matched rune is replaced with a single '*', which
// keeps the rune count of the message unchanged.
package sanitizer

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Mask replaces every rune of a match.
const Mask = '*'

// Result is the outcome of a single Sanitize call.
type Result struct {
	Original  string
	Sanitized string
	Replaced  int
}

// Sanitize masks every whole-word, case-insensitive occurrence of words in
// message. Empty words are ignored; the words slice is not modified.
//
// Both ends of a match must sit on a word boundary: exactly one of the
// edge rune and its outside neighbour is a word rune (letter, digit, mark or
// connector punctuation), with the ends of the message counting as non-word.
// So "SELECT" does not match inside "SELECTED", and a punctuation-only
// candidate such as "*" never matches between spaces or inside a mask. Runes
// already masked by a longer candidate never take part in a later match.
func Sanitize(message string, words []string) Result {
	if message == "" {
		return Result{}
	}

	candidates := prepare(words)
	if len(candidates) == 0 {
		return Result{Original: message, Sanitized: message}
	}

	text := []rune(message)
	masked := make([]bool, len(text))
	total := 0

	for _, c := range candidates {
		total += maskAll(text, masked, c)
	}

	if total == 0 {
		return Result{Original: message, Sanitized: message}
	}

	return Result{
		Original:  message,
		Sanitized: render(message, masked),
		Replaced:  total,
	}
}

// prepare drops empty words and orders the rest by descending rune length.
// Equal lengths keep their input order.
func prepare(words []string) [][]rune {
	out := make([][]rune, 0, len(words))
	for _, w := range words {
		if w == "" {
			continue
		}
		out = append(out, []rune(w))
	}
	slices.SortStableFunc(out, func(a, b []rune) int {
		return len(b) - len(a)
	})
	return out
}

// maskAll masks every non-overlapping match of word in text, scanning left
// to right, and returns how many matches it found.
func maskAll(text []rune, masked []bool, word []rune) int {
	n := 0
	for i := 0; i+len(word) <= len(text); {
		if matchAt(text, masked, word, i) {
			for j := i; j < i+len(word); j++ {
				text[j] = Mask
				masked[j] = true
			}
			n++
			i += len(word)
			continue
		}
		i++
	}
	return n
}

func matchAt(text []rune, masked []bool, word []rune, at int) bool {
	for k, r := range word {
		if masked[at+k] || !equalFold(text[at+k], r) {
			return false
		}
	}

	return boundary(text, at-1, word[0]) && boundary(text, at+len(word), word[len(word)-1])
}

// boundary reports whether there is a word boundary between the candidate's
// edge rune and the rune at text[outside]. Positions outside text count as
// non-word runes, so a boundary needs exactly one side to be a word rune.
func boundary(text []rune, outside int, edge rune) bool {
	outer := outside >= 0 && outside < len(text) && isWordRune(text[outside])
	return outer != isWordRune(edge)
}

func equalFold(a, b rune) bool {
	if a == b {
		return true
	}
	for f := unicode.SimpleFold(a); f != a; f = unicode.SimpleFold(f) {
		if f == b {
			return true
		}
	}
	return false
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r) || unicode.Is(unicode.Pc, r)
}

// render rebuilds the message with masked runes replaced. Unmasked bytes are
// copied from the original as-is, including invalid UTF-8 sequences.
func render(message string, masked []bool) string {
	var b strings.Builder
	b.Grow(len(message))

	i := 0
	for pos := 0; pos < len(message); i++ {
		_, size := utf8.DecodeRuneInString(message[pos:])
		if masked[i] {
			b.WriteRune(Mask)
		} else {
			b.WriteString(message[pos : pos+size])
		}
		pos += size
	}
	return b.String()
}
