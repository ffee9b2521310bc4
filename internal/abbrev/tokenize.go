package abbrev

import (
	"strings"
	"unicode"
)

// TokenizeHeader splits a header into its words.
// A boundary falls between a lowercase and a following uppercase ASCII
// letter; underscores, hyphens, parentheses and whitespace separate words
// and are dropped.
// Examples:
//   - "MinimumLevel" -> ["Minimum", "Level"]
//   - "min_level" -> ["min", "level"]
//   - "Dmg(Min)" -> ["Dmg", "Min"]
//   - "HPRegen" -> ["HPRegen"]
func TokenizeHeader(header string) []string {
	if header == "" {
		return nil
	}

	var tokens []string

	var current strings.Builder

	runes := []rune(header)
	for i, r := range runes {
		if isSeparator(r) {
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}

			continue
		}

		if i > 0 && isLowerASCII(runes[i-1]) && isUpperASCII(r) {
			tokens = append(tokens, current.String())
			current.Reset()
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}

// isSeparator returns true if the rune separates words in a header.
func isSeparator(r rune) bool {
	switch r {
	case '_', '-', '(', ')':
		return true
	default:
		return unicode.IsSpace(r)
	}
}

func isLowerASCII(r rune) bool {
	return 'a' <= r && r <= 'z'
}

func isUpperASCII(r rune) bool {
	return 'A' <= r && r <= 'Z'
}
