package abbrev

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevenshtein(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b     string
		expected int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"monster", "monsters", 1},
		{"ä", "a", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.expected, Levenshtein(tt.a, tt.b))
			assert.Equal(t, tt.expected, Levenshtein(tt.b, tt.a))
		})
	}
}

func TestSuggestDictionaryWords(t *testing.T) {
	t.Parallel()

	got := SuggestDictionaryWords("Monsters", 2, 3)
	require.NotEmpty(t, got)
	assert.Equal(t, Suggestion{Word: "monster", Abbreviation: "Mon", Distance: 1}, got[0])

	// Exact hits are not suggestions, and short keys are unreachable.
	assert.Empty(t, SuggestDictionaryWords("levels", 1, 0))
	assert.Empty(t, SuggestDictionaryWords("strength", 0, 0))

	got = SuggestDictionaryWords("multiplicatve", 3, 0)
	require.NotEmpty(t, got)
	assert.Equal(t, "multiplicative", got[0].Word)
}
