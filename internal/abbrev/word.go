package abbrev

import "unicode/utf8"

// Length limits of the abbreviation cascade. Lengths count characters, not bytes.
const (
	// MaxKeepLength is the longest word returned untouched, and the length
	// heuristic fallbacks aim for.
	MaxKeepLength = 6
	// MaxHeaderLength caps every abbreviation.
	MaxHeaderLength = 8
	// vowelElisionMinLength is the shortest word vowel elision is tried on.
	vowelElisionMinLength = MaxHeaderLength + 1
)

// WordTrace records how a single word was abbreviated.
type WordTrace struct {
	// Word is the input word.
	Word string
	// Result is the abbreviated form.
	Result string
	// Rule is the cascade step that produced Result.
	Rule Rule
	// Digits is the numeric suffix split off the word, if any.
	Digits string
	// Base traces the abbreviation of the alphabetic base when the numeric
	// suffix rule recursed.
	Base *WordTrace
}

// AbbreviateWord shortens a single word.
//
// Words of MaxKeepLength characters or fewer are returned unchanged.
// Longer words go through the dictionary, then the numeric suffix rule,
// vowel elision (words longer than MaxHeaderLength only) and finally
// truncation to MaxKeepLength characters.
func AbbreviateWord(word string) string {
	return ExplainWord(word).Result
}

// ExplainWord abbreviates word and reports which rule fired.
func ExplainWord(word string) WordTrace {
	trace := WordTrace{Word: word}

	n := utf8.RuneCountInString(word)
	if n <= MaxKeepLength {
		trace.Result, trace.Rule = word, RuleUnchanged

		return trace
	}

	if abbr, ok := Lookup(word); ok {
		trace.Result, trace.Rule = abbr, RuleDictionary

		return trace
	}

	if base, digits := splitNumericSuffix(word); digits != "" {
		trace.Rule = RuleNumericSuffix
		trace.Digits = digits

		if utf8.RuneCountInString(base) <= MaxKeepLength {
			trace.Result = truncate(word, MaxHeaderLength)

			return trace
		}

		// base carries no trailing digits, so this recurses at most once.
		baseTrace := ExplainWord(base)
		trace.Base = &baseTrace
		trace.Result = truncate(baseTrace.Result+digits, MaxHeaderLength)

		return trace
	}

	if n >= vowelElisionMinLength {
		if elided := elideVowels(word); utf8.RuneCountInString(elided) <= MaxKeepLength {
			trace.Result, trace.Rule = elided, RuleVowelElision

			return trace
		}
	}

	trace.Result, trace.Rule = truncate(word, MaxKeepLength), RuleTruncate

	return trace
}

// splitNumericSuffix splits word into its prefix and the maximal run of
// trailing ASCII digits. digits is empty when word does not end in a digit.
func splitNumericSuffix(word string) (base, digits string) {
	i := len(word)
	for i > 0 && isDigit(word[i-1]) {
		i--
	}

	return word[:i], word[i:]
}

// elideVowels keeps the first and last characters of word and every
// character in between that is not a vowel.
func elideVowels(word string) string {
	runes := []rune(word)

	out := make([]rune, 0, len(runes))
	out = append(out, runes[0])

	last := len(runes) - 1
	for i := 1; i <= last; i++ {
		if i == last || !isVowel(runes[i]) {
			out = append(out, runes[i])
		}
	}

	return string(out)
}

// truncate returns the first n characters of s.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}

	return string([]rune(s)[:n])
}

func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'A', 'E', 'I', 'O', 'U':
		return true
	default:
		return false
	}
}
