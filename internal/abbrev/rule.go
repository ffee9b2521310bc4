package abbrev

//go:generate go tool stringer -type=Rule -trimprefix=Rule -output=rule_string.go

// Rule identifies the step of the word cascade that produced a result.
type Rule int

const (
	RuleUnchanged     Rule = iota // short enough, returned as is
	RuleDictionary                // case-insensitive dictionary hit
	RuleNumericSuffix             // base abbreviated, trailing digits re-appended
	RuleVowelElision              // interior vowels dropped
	RuleTruncate                  // cut to MaxKeepLength characters
)

// IsHeuristic reports whether the rule lost information without guidance
// from the dictionary.
func (r Rule) IsHeuristic() bool {
	return r == RuleVowelElision || r == RuleTruncate
}
