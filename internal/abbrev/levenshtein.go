package abbrev

import (
	"cmp"
	"slices"
	"strings"
)

// Levenshtein computes the Levenshtein distance (edit distance) between two strings.
// The distance is the minimum number of single-character edits (insertions, deletions,
// or substitutions) required to transform one string into the other.
//
// Time complexity: O(len(a) * len(b))
// Space complexity: O(min(len(a), len(b))).
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	ra, rb := []rune(a), []rune(b)

	if len(ra) == 0 {
		return len(rb)
	}

	if len(rb) == 0 {
		return len(ra)
	}

	// Ensure ra is the shorter string for space optimization
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		curr[0] = j

		for i := 1; i <= len(ra); i++ {
			cost := 0
			if ra[i-1] != rb[j-1] {
				cost = 1
			}

			curr[i] = min(
				prev[i]+1,      // deletion
				curr[i-1]+1,    // insertion
				prev[i-1]+cost, // substitution
			)
		}

		prev, curr = curr, prev
	}

	return prev[len(ra)]
}

// Suggestion is a dictionary word close to a word that missed the dictionary.
type Suggestion struct {
	Word         string
	Abbreviation string
	Distance     int
}

// SuggestDictionaryWords returns up to limit dictionary entries within
// maxDistance edits of word, closest first. Ties are ordered by word.
// Only entries long enough to be reachable by AbbreviateWord are considered.
func SuggestDictionaryWords(word string, maxDistance, limit int) []Suggestion {
	lower := strings.ToLower(word)

	var out []Suggestion

	for _, w := range DictionaryWords() {
		if len([]rune(w)) <= MaxKeepLength {
			continue
		}

		d := Levenshtein(lower, w)
		if d == 0 || d > maxDistance {
			continue
		}

		out = append(out, Suggestion{Word: w, Abbreviation: dictionary[w], Distance: d})
	}

	slices.SortFunc(out, func(x, y Suggestion) int {
		if c := cmp.Compare(x.Distance, y.Distance); c != 0 {
			return c
		}

		return strings.Compare(x.Word, y.Word)
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}

	return out
}
