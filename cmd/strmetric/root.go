package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

// cli holds state shared by all subcommands.
type cli struct {
	logLevel string
	logger   *slog.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{logger: slog.New(slog.DiscardHandler)}

	root := &cobra.Command{
		Use:   "strmetric",
		Short: "String metrics: cardinality, edit distance, similarity and entropy",
		Long: `strmetric - string metrics
  - cardinality: character-set diversity score
  - levenshtein: edit distance
  - jaro, jaro-winkler: similarity in [0, 1]
  - entropy: Shannon entropy in bits per symbol`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := parseLogLevel(c.logLevel)
			if err != nil {
				return err
			}
			c.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: level,
			}))
			return nil
		},
	}
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "warn", "log level: debug, info, warn or error")

	root.AddCommand(c.cardinalityCmd())
	root.AddCommand(c.levenshteinCmd())
	root.AddCommand(c.jaroCmd())
	root.AddCommand(c.jaroWinklerCmd())
	root.AddCommand(c.entropyCmd())
	root.AddCommand(c.benchCmd())
	return root
}

func parseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid --log-level %q: %w", s, err)
	}
	return level, nil
}
