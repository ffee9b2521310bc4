package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"header-abbrev/internal/gen"
)

func genCmd(opts *options) *cobra.Command {
	var printTable bool

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate the header mapping artifact",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := opts.load(cmd)
			if err != nil {
				return err
			}

			p := &pipeline{cfg: cfg, logger: logger}

			m, diags, err := p.generate(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printDiagnostics(cmd.ErrOrStderr(), diags)

			if printTable {
				listing, err := gen.NewGenerator(gen.GeneratorConfig{Format: gen.FormatText}).Generate(m)
				if err != nil {
					return err
				}

				fmt.Fprintf(out, "Generated %d header mappings:\n\n", m.Processed())
				_, _ = out.Write(listing.Content)
				fmt.Fprintln(out)
			}

			fmt.Fprintf(out, "Mappings saved to %s\n", cfg.Output)

			return nil
		},
	}

	cmd.Flags().BoolVar(&printTable, "print", false, "Also print the mapping to stdout")

	return cmd
}
