// Package main provides the devsalary CLI: average developer salaries in
// Moscow per programming language, from HeadHunter and SuperJob.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/fr4nk3nst1ner/devsalary/internal/app"
	"github.com/fr4nk3nst1ner/devsalary/internal/config"
	"github.com/fr4nk3nst1ner/devsalary/internal/logger"
	"github.com/fr4nk3nst1ner/devsalary/internal/ui"
)

// Version is set at build time.
var Version = "0.1.0"

type flags struct {
	configFile string
	envFile    string
	workers    int
	progress   bool
	noColor    bool
	logLevel   string
	silence    bool
}

func newRootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "devsalary",
		Short: "Average developer salaries by programming language",
		Long: `devsalary queries the HeadHunter and SuperJob vacancy APIs for Moscow
developer postings, estimates a salary for each one and prints the average
per programming language, one table per source.

SUPERJOB_API_KEY must be set, in the environment or in a .env file.`,
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			cfg, err := config.Load(config.Options{
				ConfigFile: f.configFile,
				EnvFile:    f.envFile,
			})
			if err != nil {
				return err
			}
			if err := f.apply(cmd, cfg); err != nil {
				return err
			}
			return run(ctx, cfg, f.silence, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.configFile, "config", "", "config file (default: $DEVSALARY_CONFIG or ./devsalary.yaml)")
	fl.StringVar(&f.envFile, "env-file", "", "dotenv file (default: ./.env)")
	fl.IntVarP(&f.workers, "workers", "w", 1, "languages fetched concurrently per source")
	fl.BoolVarP(&f.progress, "progress", "p", false, "show a progress bar on stderr")
	fl.BoolVar(&f.noColor, "no-color", false, "disable colored output")
	fl.StringVar(&f.logLevel, "log-level", "", "log level (trace|debug|info|warn|error)")
	fl.BoolVarP(&f.silence, "silence", "s", false, "do not print the banner")

	_ = cmd.RegisterFlagCompletionFunc("log-level", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return logger.Levels, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// apply overrides loaded settings with flags the user set explicitly.
func (f flags) apply(cmd *cobra.Command, cfg *config.Config) error {
	changed := cmd.Flags().Changed
	if changed("workers") {
		cfg.Workers = f.workers
	}
	if changed("progress") {
		cfg.Progress = f.progress
	}
	if changed("no-color") {
		cfg.Color = !f.noColor
	}
	if changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	return cfg.Validate()
}

func run(ctx context.Context, cfg *config.Config, silence bool, stdout, stderr io.Writer) error {
	if !cfg.Color {
		pterm.DisableColor()
	}
	if err := ui.PrintBanner(stderr, silence); err != nil {
		return err
	}

	log, err := logger.New(cfg.Log.Level, stderr)
	if err != nil {
		return err
	}

	a, err := app.New(cfg, log, stdout, stderr)
	if err != nil {
		return err
	}
	return a.Run(ctx)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
