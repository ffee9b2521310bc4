package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"header-abbrev/internal/watch"
)

func watchCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Regenerate the artifact whenever a data file changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := opts.load(cmd)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			p := &pipeline{cfg: cfg, logger: logger}
			run := func(ctx context.Context) error {
				_, diags, err := p.generate(ctx)
				printDiagnostics(cmd.ErrOrStderr(), diags)

				return err
			}

			if err := run(ctx); err != nil {
				return err
			}

			w, err := watch.NewWatcher(watch.Config{
				Dir:      cfg.InputDir,
				Pattern:  cfg.Pattern,
				Debounce: cfg.Debounce,
				Logger:   logger,
			}, run)
			if err != nil {
				return err
			}

			return w.Run(ctx)
		},
	}
}
