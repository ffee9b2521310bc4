package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"header-abbrev/internal/diagnostic"
	"header-abbrev/internal/gen"
	"header-abbrev/internal/mapping"
)

// errOutOfDate is returned by check when the committed artifact differs.
var errOutOfDate = errors.New("generated mapping is out of date; run gen")

func checkCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify the committed artifact matches the data files",
		Long: `check regenerates the mapping in memory and compares it with the
artifact at --output. YAML artifacts are compared entry by entry; other
formats byte for byte. The command fails when they differ.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := opts.load(cmd)
			if err != nil {
				return err
			}

			p := &pipeline{cfg: cfg, logger: logger}

			fresh, file, diags, err := p.render(cmd.Context())
			if err != nil {
				return err
			}

			format, _ := cfg.OutputFormat()
			if format == gen.FormatYAML {
				committed, err := mapping.LoadFileIfExists(cfg.Output)
				if err != nil {
					return err
				}

				diags.Merge(mapping.Diff(committed, fresh))
			} else {
				committed, err := os.ReadFile(cfg.Output)
				if err != nil && !errors.Is(err, os.ErrNotExist) {
					return fmt.Errorf("reading %s: %w", cfg.Output, err)
				}

				if !bytes.Equal(committed, file.Content) {
					diags.AddError(diagnostic.CodeChangedEntry, "artifact differs from a fresh generation", cfg.Output, "")
				}
			}

			printDiagnostics(cmd.ErrOrStderr(), diags)

			if diags.HasErrors() {
				return errOutOfDate
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s is up to date (%d mappings)\n", cfg.Output, fresh.Processed())

			return nil
		},
	}
}
