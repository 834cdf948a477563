package text_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"publishing-graph/internal/utils/text"
)

func TestCountRunes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{name: "ASCII", input: "Byte", expected: 4},
		{name: "ASCII with spaces", input: "A Title That Fits", expected: 17},
		{name: "accented", input: "Café", expected: 4},
		{name: "Japanese kanji", input: "日本語", expected: 3},
		{name: "emoji", input: "Hi👋", expected: 3},
		{name: "flag is two regional indicators", input: "🇯🇵", expected: 2},
		{name: "empty", input: "", expected: 0},
		{name: "whitespace only", input: " \t\n", expected: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, text.CountRunes(tt.input))
		})
	}
}

func TestRuneLengthBetween(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		lo, hi int
		want   bool
	}{
		{name: "below lower bound", input: "a", lo: 2, hi: 16, want: false},
		{name: "at lower bound", input: "ab", lo: 2, hi: 16, want: true},
		{name: "at upper bound", input: "abcdefghijklmnop", lo: 2, hi: 16, want: true},
		{name: "above upper bound", input: "abcdefghijklmnopq", lo: 2, hi: 16, want: false},
		{name: "multibyte counted as characters", input: "ééééé", lo: 5, hi: 5, want: true},
		{name: "empty with zero lower bound", input: "", lo: 0, hi: 3, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, text.RuneLengthBetween(tt.input, tt.lo, tt.hi))
		})
	}
}

func BenchmarkCountRunes(b *testing.B) {
	s := "A Title That Fits"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = text.CountRunes(s)
	}
}
