package sanitizer

import (
	"fmt"
	"sync"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name    string
		message string
		words   []string
		want    Result
	}{
		{
			name: "empty message no words",
			want: Result{},
		},
		{
			name:  "empty message with words",
			words: []string{"SELECT"},
			want:  Result{},
		},
		{
			name:    "no words",
			message: "SELECT * FROM table",
			want:    Result{"SELECT * FROM table", "SELECT * FROM table", 0},
		},
		{
			name:    "only empty words",
			message: "SELECT * FROM table",
			words:   []string{"", ""},
			want:    Result{"SELECT * FROM table", "SELECT * FROM table", 0},
		},
		{
			name:    "unmatched words",
			message: "Hello World",
			words:   []string{"SELECT", "DROP"},
			want:    Result{"Hello World", "Hello World", 0},
		},
		{
			name:    "whole word boundary",
			message: "SELECTED SELECTING",
			words:   []string{"SELECT"},
			want:    Result{"SELECTED SELECTING", "SELECTED SELECTING", 0},
		},
		{
			name:    "case insensitive",
			message: "select SELECT SeLeCt",
			words:   []string{"SELECT"},
			want:    Result{"select SELECT SeLeCt", "****** ****** ******", 3},
		},
		{
			name:    "longest phrase wins",
			message: "SELECT * FROM users",
			words:   []string{"SELECT * FROM", "SELECT"},
			want:    Result{"SELECT * FROM users", "************* users", 1},
		},
		{
			name:    "longest phrase wins regardless of input order",
			message: "SELECT * FROM users",
			words:   []string{"SELECT", "SELECT * FROM"},
			want:    Result{"SELECT * FROM users", "************* users", 1},
		},
		{
			name:    "mixed lengths",
			message: "A SELECT TRANSACTION",
			words:   []string{"A", "SELECT", "TRANSACTION"},
			want:    Result{"A SELECT TRANSACTION", "* ****** ***********", 3},
		},
		{
			name:    "shorter word still matches outside phrase",
			message: "SELECT * FROM users FROM",
			words:   []string{"FROM", "SELECT * FROM"},
			want:    Result{"SELECT * FROM users FROM", "************* users ****", 2},
		},
		{
			name:    "internal whitespace is literal",
			message: "SELECT  * FROM",
			words:   []string{"SELECT * FROM", "SELECT"},
			want:    Result{"SELECT  * FROM", "******  * FROM", 1},
		},
		{
			name:    "punctuation is a boundary",
			message: "drop, DROP! (Drop)",
			words:   []string{"DROP"},
			want:    Result{"drop, DROP! (Drop)", "****, ****! (****)", 3},
		},
		{
			name:    "underscore and digits glue words",
			message: "select_all SELECT1 1SELECT SELECT",
			words:   []string{"SELECT"},
			want:    Result{"select_all SELECT1 1SELECT SELECT", "select_all SELECT1 1SELECT ******", 1},
		},
		{
			name:    "non word edge followed by punctuation",
			message: "c++, x",
			words:   []string{"C++"},
			want:    Result{"c++, x", "c++, x", 0},
		},
		{
			name:    "non word edge followed by word rune",
			message: "C++11 x",
			words:   []string{"C++"},
			want:    Result{"C++11 x", "***11 x", 1},
		},
		{
			name:    "non word edge at end of message",
			message: "use c++",
			words:   []string{"C++"},
			want:    Result{"use c++", "use c++", 0},
		},
		{
			name:    "punctuation candidate between spaces",
			message: "a * b",
			words:   []string{"*"},
			want:    Result{"a * b", "a * b", 0},
		},
		{
			name:    "punctuation candidate glued to words",
			message: "a*b",
			words:   []string{"*"},
			want:    Result{"a*b", "a*b", 1},
		},
		{
			name:    "punctuation candidate on masked text",
			message: "************* users",
			words:   []string{"SELECT * FROM", "*"},
			want:    Result{"************* users", "************* users", 0},
		},
		{
			name:    "phrase masked and punctuation candidate ignored",
			message: "SELECT * FROM users",
			words:   []string{"SELECT * FROM", "*"},
			want:    Result{"SELECT * FROM users", "************* users", 1},
		},
		{
			name:    "duplicate words counted once",
			message: "drop table",
			words:   []string{"DROP", "DROP"},
			want:    Result{"drop table", "**** table", 1},
		},
		{
			name:    "adjacent matches",
			message: "DROP DROP",
			words:   []string{"DROP"},
			want:    Result{"DROP DROP", "**** ****", 2},
		},
		{
			name:    "cyrillic",
			message: "удалить Таблицу таблицу",
			words:   []string{"ТАБЛИЦУ"},
			want:    Result{"удалить Таблицу таблицу", "удалить ******* *******", 2},
		},
		{
			name:    "greek final sigma folds",
			message: "ΟΔΟΣ οδος",
			words:   []string{"ΟΔΟΣ"},
			want:    Result{"ΟΔΟΣ οδος", "**** ****", 2},
		},
		{
			name:    "accented letters glue words",
			message: "dropé drop",
			words:   []string{"DROP"},
			want:    Result{"dropé drop", "dropé ****", 1},
		},
		{
			name:    "invalid utf8 passes through",
			message: "DROP \xff table",
			words:   []string{"DROP"},
			want:    Result{"DROP \xff table", "**** \xff table", 1},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Sanitize(tc.message, tc.words)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("Sanitize() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSanitize_PreservesLength(t *testing.T) {
	words := []string{"SELECT * FROM", "SELECT", "DROP", "ТАБЛИЦУ", "A"}
	messages := []string{
		"SELECT * FROM users; DROP table",
		"a b c A",
		"удалить ТАБЛИЦУ",
		"\xffSELECT\xfe",
		"nothing to see here",
	}

	for _, m := range messages {
		res := Sanitize(m, words)
		assert.Equal(t, utf8.RuneCountInString(m), utf8.RuneCountInString(res.Sanitized), m)
		assert.Equal(t, m, res.Original)
	}

	ascii := Sanitize("SELECT * FROM users; DROP table", words)
	assert.Equal(t, len(ascii.Original), len(ascii.Sanitized))
}

func TestSanitize_FixedPoint(t *testing.T) {
	words := []string{"SELECT * FROM", "SELECT", "FROM", "DROP", "A", "*", "C++", "--"}
	messages := []string{
		"SELECT * FROM users",
		"a drop of DROP",
		"SELECT a FROM b",
		"a * b -- c++",
		"C++11 and ***",
	}

	for _, m := range messages {
		first := Sanitize(m, words)
		second := Sanitize(first.Sanitized, words)
		assert.Equal(t, 0, second.Replaced, m)
		assert.Equal(t, first.Sanitized, second.Sanitized, m)
	}
}

func TestSanitize_DoesNotMutateWords(t *testing.T) {
	words := []string{"A", "", "SELECT * FROM", "DROP"}
	orig := append([]string(nil), words...)

	_ = Sanitize("SELECT * FROM A DROP", words)

	require.Equal(t, orig, words)
}

func TestSanitize_Concurrent(t *testing.T) {
	words := []string{"SELECT", "DROP"}

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			msg := fmt.Sprintf("select %d drop", i)
			res := Sanitize(msg, words)
			assert.Equal(t, 2, res.Replaced)
			assert.Equal(t, fmt.Sprintf("****** %d ****", i), res.Sanitized)
		}(i)
	}
	wg.Wait()
}

func TestPrepare_StableOrder(t *testing.T) {
	got := prepare([]string{"AB", "", "XYZ", "CD", "E"})

	want := []string{"XYZ", "AB", "CD", "E"}
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i], string(got[i]))
	}
}

func TestEqualFold(t *testing.T) {
	assert.True(t, equalFold('a', 'A'))
	assert.True(t, equalFold('ς', 'Σ'))
	assert.True(t, equalFold('\u212A', 'k')) // Kelvin sign
	assert.False(t, equalFold('a', 'b'))
	assert.False(t, equalFold('*', 'A'))
}
