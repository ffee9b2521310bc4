package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"header-abbrev/internal/abbrev"
)

const (
	suggestMaxDistance = 2
	suggestLimit       = 3
)

func explainCmd() *cobra.Command {
	var dump bool

	cmd := &cobra.Command{
		Use:   "explain HEADER...",
		Short: "Show how headers are abbreviated",
		Long: `explain prints the words of each header, the rule applied to every word
and the final label. Words that fell back to vowel elision or truncation
list the closest dictionary entries, as hints for extending the dictionary.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			for _, h := range args {
				trace := abbrev.ExplainHeader(h)
				if dump {
					spew.Fdump(out, trace)
					continue
				}

				writeTrace(out, trace)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&dump, "dump", false, "Dump the raw trace structure")

	return cmd
}

func writeTrace(w io.Writer, trace abbrev.HeaderTrace) {
	fmt.Fprintf(w, "%q -> %q\n", trace.Header, trace.Result)

	if len(trace.Tokens) == 0 {
		fmt.Fprintln(w, "  no words")
		return
	}

	for _, word := range trace.Words {
		fmt.Fprintf(w, "  %-16s %-8s %s\n", word.Word, word.Result, describeRule(word))

		if !word.Rule.IsHeuristic() {
			continue
		}

		for _, s := range abbrev.SuggestDictionaryWords(word.Word, suggestMaxDistance, suggestLimit) {
			fmt.Fprintf(w, "    close to %q (%s), distance %d\n", s.Word, s.Abbreviation, s.Distance)
		}
	}

	var steps []string
	if len(trace.Words) > 1 {
		steps = append(steps, "joined "+trace.Joined)
	}

	if trace.Initials {
		steps = append(steps, "initials")
	}

	if trace.Capped {
		steps = append(steps, fmt.Sprintf("capped at %d", abbrev.MaxHeaderLength))
	}

	if len(steps) > 0 {
		fmt.Fprintf(w, "  %s\n", strings.Join(steps, ", "))
	}
}

func describeRule(word abbrev.WordTrace) string {
	if word.Rule == abbrev.RuleNumericSuffix && word.Base != nil {
		return fmt.Sprintf("%s (base %s: %s)", word.Rule, word.Base.Word, word.Base.Rule)
	}

	return word.Rule.String()
}
