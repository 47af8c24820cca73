package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/tamirms/strmetric"
)

func (c *cli) cardinalityCmd() *cobra.Command {
	var (
		configPath  string
		keepNUL     bool
		showClasses bool
		weights     = strmetric.DefaultCardinalityWeights()
	)

	cmd := &cobra.Command{
		Use:   "cardinality TEXT",
		Short: "Score the character-class diversity of TEXT",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.cardinalityOptions(cmd.Flags(), configPath, weights, keepNUL)
			if err != nil {
				return err
			}

			text := strmetric.FromString(args[0])
			score, err := strmetric.Cardinality(text, opts...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !showClasses {
				fmt.Fprintln(out, score)
				return nil
			}
			classes, err := strmetric.CardinalityClasses(text, opts...)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%d\t%s\n", score, classes)
			return nil
		},
	}

	f := cmd.Flags()
	f.IntVar(&weights.Lower, "lower", strmetric.DefaultLowerWeight, "weight of lowercase ASCII letters")
	f.IntVar(&weights.Upper, "upper", strmetric.DefaultUpperWeight, "weight of uppercase ASCII letters")
	f.IntVar(&weights.Digit, "digit", strmetric.DefaultDigitWeight, "weight of ASCII digits")
	f.IntVar(&weights.ASCII, "ascii", strmetric.DefaultASCIIWeight, "weight of other ASCII characters")
	f.IntVar(&weights.Unicode, "unicode", strmetric.DefaultUnicodeWeight, "weight of non-ASCII characters")
	f.StringVar(&configPath, "config", "", "YAML file with weights; flags override it")
	f.BoolVar(&keepNUL, "keep-nul", false, "scan past NUL characters instead of stopping")
	f.BoolVar(&showClasses, "classes", false, "also print the observed classes")
	return cmd
}

// cardinalityOptions layers the config file, then explicitly set flags.
func (c *cli) cardinalityOptions(flags *pflag.FlagSet, configPath string, w strmetric.CardinalityWeights, keepNUL bool) ([]strmetric.CardinalityOption, error) {
	var opts []strmetric.CardinalityOption
	if configPath != "" {
		cfg, err := loadCardinalityConfig(configPath)
		if err != nil {
			return nil, err
		}
		c.logger.Debug("loaded cardinality config", "path", configPath)
		opts = append(opts, cfg.Options()...)
	}

	overrides := []struct {
		flag string
		opt  func(int) strmetric.CardinalityOption
		val  int
	}{
		{"lower", strmetric.WithLowerWeight, w.Lower},
		{"upper", strmetric.WithUpperWeight, w.Upper},
		{"digit", strmetric.WithDigitWeight, w.Digit},
		{"ascii", strmetric.WithASCIIWeight, w.ASCII},
		{"unicode", strmetric.WithUnicodeWeight, w.Unicode},
	}
	for _, o := range overrides {
		if flags.Changed(o.flag) {
			opts = append(opts, o.opt(o.val))
		}
	}
	if keepNUL {
		opts = append(opts, strmetric.WithStopAtNUL(false))
	}
	return opts, nil
}

func (c *cli) levenshteinCmd() *cobra.Command {
	var explain bool
	cmd := &cobra.Command{
		Use:   "levenshtein A B",
		Short: "Print the edit distance between A and B",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b := strmetric.FromString(args[0]), strmetric.FromString(args[1])
			res := strmetric.LevenshteinExplain(a, b)
			c.logger.Debug("levenshtein", "len_a", a.Len(), "len_b", b.Len(), "algorithm", res.Algorithm.String())
			if explain {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", res.Distance, res.Algorithm)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Distance)
			return nil
		},
	}
	cmd.Flags().BoolVar(&explain, "explain", false, "also print the algorithm used")
	return cmd
}

func (c *cli) jaroCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "jaro A B",
		Short: "Print the Jaro similarity of A and B",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sim := strmetric.Jaro(strmetric.FromString(args[0]), strmetric.FromString(args[1]))
			fmt.Fprintln(cmd.OutOrStdout(), formatFloat(sim))
			return nil
		},
	}
}

func (c *cli) jaroWinklerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "jaro-winkler A B",
		Short: "Print the Jaro-Winkler similarity of A and B",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sim := strmetric.JaroWinkler(strmetric.FromString(args[0]), strmetric.FromString(args[1]))
			fmt.Fprintln(cmd.OutOrStdout(), formatFloat(sim))
			return nil
		},
	}
}

func (c *cli) entropyCmd() *cobra.Command {
	var explain bool
	cmd := &cobra.Command{
		Use:   "entropy TEXT",
		Short: "Print the Shannon entropy of TEXT in bits per symbol",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res := strmetric.ShannonEntropyExplain(strmetric.FromString(args[0]))
			if explain {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", formatFloat(res.Bits), res.Table)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatFloat(res.Bits))
			return nil
		},
	}
	cmd.Flags().BoolVar(&explain, "explain", false, "also print the frequency table used")
	return cmd
}

// formatFloat prints the shortest representation that round-trips.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
