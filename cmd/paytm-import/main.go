package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/paytm-import/internal/categorizer"
	"github.com/example/paytm-import/internal/config"
	"github.com/example/paytm-import/internal/export"
	"github.com/example/paytm-import/internal/logger"
	"github.com/example/paytm-import/internal/processor"
)

// ErrUsage is returned when the export argument is missing or malformed.
var ErrUsage = errors.New("paytm-import <csv-file>")

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	var (
		cfgFile string
		debug   bool
	)

	cmd := &cobra.Command{
		Use:   "paytm-import <csv-file>",
		Short: "Convert a Paytm wallet export into ledger postings",
		Long: `Paytm Import reads a Paytm wallet transaction export (CSV) and prints
one ledger posting per settled transaction, categorized by counterparty.

Holds, refunds of held orders, unsettled transactions and top-ups from a
linked bank account are skipped.

The only input is the export path. --config points at a TOML file that
replaces the built-in account and category tables, and --debug logs each
skipped transaction to stderr. Without them the built-in defaults apply.`,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 || !strings.HasSuffix(args[0], ".csv") {
				return ErrUsage
			}
			return nil
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log := logger.New(cmd.ErrOrStderr(), debug)
			cmd.SetContext(logger.WithContext(cmd.Context(), log))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// past argument validation, failures are about the data
			cmd.SilenceUsage = true

			cfg := config.Default()
			if cfgFile != "" {
				loaded, err := config.LoadConfig(cfgFile)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			return run(cmd, cfg, args[0])
		},
	}

	cmd.Flags().StringVar(&cfgFile, "config", "", "TOML file with account and category tables")
	cmd.Flags().BoolVar(&debug, "debug", false, "log skipped transactions")

	return cmd
}

func run(cmd *cobra.Command, cfg *config.Config, path string) error {
	log := logger.FromContext(cmd.Context()).With().Str("file", path).Logger()

	records, err := export.ReadFile(path)
	if err != nil {
		return err
	}

	p := processor.New(categorizer.New(cfg), cfg)
	out := cmd.OutOrStdout()

	var processed, skipped int
	for _, rec := range records {
		outcome, err := p.Process(rec)
		if err != nil {
			return fmt.Errorf("transaction %q: %w", p.Identify(rec), err)
		}
		if outcome.Status == processor.Skipped {
			skipped++
			log.Debug().
				Str("id", p.Identify(rec)).
				Str("activity", rec.Activity).
				Str("reason", outcome.SkipReason).
				Msg("skipped transaction")
			continue
		}
		processed++
		fmt.Fprintln(out, p.Format(outcome))
	}

	log.Info().Int("processed", processed).Int("skipped", skipped).Msg("import complete")
	return nil
}
