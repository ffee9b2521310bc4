package abbrev

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbbreviateWord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
		rule     Rule
	}{
		// Short words are never touched, even when the dictionary knows them
		{"level", "level", RuleUnchanged},
		{"LEVEL", "LEVEL", RuleUnchanged},
		{"param1", "param1", RuleUnchanged},
		{"", "", RuleUnchanged},

		// Dictionary hits win regardless of case
		{"strength", "Str", RuleDictionary},
		{"Strength", "Str", RuleDictionary},
		{"STRENGTH", "Str", RuleDictionary},
		{"Durability", "Dur", RuleDictionary},
		{"Stackable", "Stack", RuleDictionary},

		// Numeric suffix
		{"Parameter1", "Param1", RuleNumericSuffix},
		{"Parameter12", "Param12", RuleNumericSuffix},
		{"Mercenary7", "Merc7", RuleNumericSuffix},
		{"Automatic99", "Auto99", RuleNumericSuffix},
		{"Quality2", "Qualit2", RuleNumericSuffix},
		{"Bonusskill3", "Bonuss3", RuleNumericSuffix},
		{"1234567", "1234567", RuleNumericSuffix},

		// Vowel elision for words longer than eight characters
		{"Regeneration", "Rgnrtn", RuleVowelElision},
		{"Immunities", "Immnts", RuleVowelElision},
		{"Hitpoints", "Htpnts", RuleVowelElision},
		{"Bloodlust", "Bldlst", RuleVowelElision},
		{"Aaaaaaaaaaaa", "Aa", RuleVowelElision},

		// Elision still too long: truncate
		{"Transparency", "Transp", RuleTruncate},
		{"Chargedskill", "Charge", RuleTruncate},
		{"Invulnerable", "Invuln", RuleTruncate},
		{"Monstersound", "Monste", RuleTruncate},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			trace := ExplainWord(tt.input)
			assert.Equal(t, tt.expected, trace.Result)
			assert.Equal(t, tt.rule, trace.Rule)
			assert.Equal(t, tt.expected, AbbreviateWord(tt.input))
		})
	}
}

// Seven and eight character words that miss the dictionary skip vowel
// elision and are truncated; they are never returned unchanged.
func TestAbbreviateWord_SevenAndEightCharacterWords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"Quality", "Qualit"},
		{"Quantity", "Quanti"},
		{"levelreq", "levelr"},
		{"Mod1Min", "Mod1Mi"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			trace := ExplainWord(tt.input)
			assert.Equal(t, tt.expected, trace.Result)
			assert.Equal(t, RuleTruncate, trace.Rule)
		})
	}
}

func TestAbbreviateWord_NumericSuffixTrace(t *testing.T) {
	t.Parallel()

	trace := ExplainWord("Parameter12")
	assert.Equal(t, "12", trace.Digits)
	require.NotNil(t, trace.Base)
	assert.Equal(t, "Parameter", trace.Base.Word)
	assert.Equal(t, RuleDictionary, trace.Base.Rule)

	// A short base keeps the word as is and does not recurse.
	trace = ExplainWord("Stat123")
	assert.Nil(t, trace.Base)
	assert.Equal(t, "123", trace.Digits)
	assert.Equal(t, "Stat123", trace.Result)
}

func TestAbbreviateWord_LongNumericSuffixIsCapped(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Param123", AbbreviateWord("Parameter12345"))
	assert.Equal(t, "abcdef12", AbbreviateWord("abcdef123456"))
}

func TestAbbreviateWord_LengthBounds(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"a", "abcdef", "abcdefg", "abcdefgh", "abcdefghi",
		"Parameter123456789", "999999999999", "x1234567890",
		"Ünïcödéwörd", "ÄÖÜäöüßÄÖÜ", "Multiplicative",
		strings.Repeat("z", 64), strings.Repeat("ae", 40),
	}

	for _, in := range inputs {
		got := AbbreviateWord(in)
		assert.LessOrEqual(t, utf8.RuneCountInString(got), MaxHeaderLength, "AbbreviateWord(%q) = %q", in, got)

		if utf8.RuneCountInString(in) <= MaxKeepLength {
			assert.Equal(t, in, got)
		}
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	abbr, ok := Lookup("NIGHTMARE")
	assert.True(t, ok)
	assert.Equal(t, "NM", abbr)

	abbr, ok = Lookup("level")
	assert.True(t, ok)
	assert.Equal(t, "Lvl", abbr)

	_, ok = Lookup("quality")
	assert.False(t, ok)
}

func TestDictionaryWords(t *testing.T) {
	t.Parallel()

	words := DictionaryWords()
	assert.Len(t, words, 97)
	assert.IsNonDecreasing(t, words)

	for _, w := range words {
		assert.Equal(t, strings.ToLower(w), w)
	}
}

func TestRule_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Dictionary", RuleDictionary.String())
	assert.Equal(t, "VowelElision", RuleVowelElision.String())
	assert.Equal(t, "Rule(9)", Rule(9).String())
	assert.True(t, RuleTruncate.IsHeuristic())
	assert.False(t, RuleNumericSuffix.IsHeuristic())
}
