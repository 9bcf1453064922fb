package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "punctuation stripped and lowercased",
			input: "Hello, World! hello",
			want:  []string{"hello", "world"},
		},
		{
			name:  "empty input",
			input: "",
			want:  []string{},
		},
		{
			name:  "whitespace only",
			input: " \t\n  ",
			want:  []string{},
		},
		{
			name:  "punctuation only",
			input: "!?.,;:-",
			want:  []string{},
		},
		{
			name:  "digits kept",
			input: "HTTP 404 or 404 again",
			want:  []string{"http", "404", "or", "again"},
		},
		{
			name:  "first occurrence order preserved",
			input: "b a c a b",
			want:  []string{"b", "a", "c"},
		},
		{
			name:  "mixed whitespace runs",
			input: "one\t\ttwo\nthree   four",
			want:  []string{"one", "two", "three", "four"},
		},
		{
			name:  "apostrophes collapse words",
			input: "don't",
			want:  []string{"dont"},
		},
		{
			name:  "non-ascii runes dropped",
			input: "café résumé",
			want:  []string{"caf", "rsum"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			assert.Equal(t, tt.want, got)
			assert.NotNil(t, got)
		})
	}
}

func TestTokenizeDeterministic(t *testing.T) {
	input := "The quick brown fox jumps over the lazy dog, the QUICK fox."
	first := Tokenize(input)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Tokenize(input))
	}
}
