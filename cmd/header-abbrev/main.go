// Package main provides the CLI entrypoint for header-abbrev.
//
// header-abbrev reads the header line of every tab-delimited data file in a
// directory and generates a lookup table from each header to a label of at
// most eight characters, for display in narrow table columns.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"header-abbrev/internal/config"
)

const (
	Version = "0.1.0"
	appName = "header-abbrev"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// options are the flags shared by every command.
type options struct {
	configPath  string
	logLevel    string
	inputDir    string
	pattern     string
	output      string
	format      string
	varName     string
	packageName string
}

func rootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Generate short column labels for data file headers",
		Long: `header-abbrev derives abbreviations of at most eight characters for the
headers found on the first line of tab-delimited .txt files.

Words are shortened through a fixed dictionary, then by keeping numeric
suffixes, dropping vowels or truncating. Multi-word headers keep their last
word and reduce the others to initials when the result would be too long.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Config file path (YAML)")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.StringVarP(&opts.inputDir, "input", "i", "", "Directory holding the data files")
	flags.StringVar(&opts.pattern, "pattern", "", "Glob selecting data files, e.g. **/*.txt")
	flags.StringVarP(&opts.output, "output", "o", "", "Path of the generated artifact")
	flags.StringVarP(&opts.format, "format", "f", "", "Artifact format (ts, go, yaml, text)")
	flags.StringVar(&opts.varName, "var-name", "", "Identifier the mapping is declared under")
	flags.StringVar(&opts.packageName, "package", "", "Package clause for Go output")

	cmd.AddCommand(
		genCmd(opts),
		checkCmd(opts),
		explainCmd(),
		watchCmd(opts),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
			},
		},
	)

	return cmd
}

// load reads the configuration and applies the flags the user set.
func (o *options) load(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, nil, err
	}

	flags := cmd.Flags()
	override := func(name string, dst *string, val string) {
		if flags.Changed(name) {
			*dst = val
		}
	}

	override("log-level", &cfg.LogLevel, o.logLevel)
	override("input", &cfg.InputDir, o.inputDir)
	override("pattern", &cfg.Pattern, o.pattern)
	override("output", &cfg.Output, o.output)
	override("format", &cfg.Format, o.format)
	override("var-name", &cfg.VarName, o.varName)
	override("package", &cfg.PackageName, o.packageName)

	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	level, _ := config.ParseLevel(cfg.LogLevel)
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	return cfg, logger, nil
}
