package main

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"runtime"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/tamirms/strmetric"
)

// ctxCheckInterval is how many pairs a worker processes between
// cancellation checks.
const ctxCheckInterval = 1024

type benchConfig struct {
	corpus  string
	lines   int
	minLen  int
	maxLen  int
	pairs   int
	workers int
	seed    uint32
	cache   int
}

func defaultBenchConfig() benchConfig {
	return benchConfig{
		lines:   4096,
		minLen:  4,
		maxLen:  96,
		pairs:   100_000,
		workers: runtime.GOMAXPROCS(0),
		seed:    0x1234,
	}
}

func (cfg benchConfig) validate() error {
	switch {
	case cfg.pairs < 1:
		return fmt.Errorf("--pairs must be positive, got %d", cfg.pairs)
	case cfg.workers < 1:
		return fmt.Errorf("--workers must be positive, got %d", cfg.workers)
	case cfg.cache < 0:
		return fmt.Errorf("--cache must not be negative, got %d", cfg.cache)
	case cfg.corpus == "" && cfg.lines < 2:
		return fmt.Errorf("--lines must be at least 2, got %d", cfg.lines)
	case cfg.corpus == "" && (cfg.minLen < 0 || cfg.minLen > cfg.maxLen):
		return fmt.Errorf("invalid line length range %d..%d", cfg.minLen, cfg.maxLen)
	}
	return nil
}

// benchPhase is the timing of one metric over every pair.
type benchPhase struct {
	Metric  string
	Elapsed time.Duration
}

type benchReport struct {
	Lines   int
	Pairs   int
	Workers int
	Phases  []benchPhase
	// Digest folds every result in pair order. It depends only on the
	// corpus and pair count, never on the worker count or the cache.
	Digest uint64
}

// pairResult holds every metric for one pair. Cardinality is taken on the
// first text of the pair.
type pairResult struct {
	cardinality uint32
	distance    int
	jaroWinkler float64
	entropy     float64
}

type metricPhase struct {
	name string
	run  func(m strmetric.Metrics, a, b strmetric.Text, r *pairResult) error
}

var metricPhases = []metricPhase{
	{"cardinality", func(m strmetric.Metrics, a, _ strmetric.Text, r *pairResult) error {
		v, err := m.Cardinality(a)
		r.cardinality = v
		return err
	}},
	{"levenshtein", func(m strmetric.Metrics, a, b strmetric.Text, r *pairResult) error {
		r.distance = m.Levenshtein(a, b)
		return nil
	}},
	{"jaro-winkler", func(m strmetric.Metrics, a, b strmetric.Text, r *pairResult) error {
		r.jaroWinkler = m.JaroWinkler(a, b)
		return nil
	}},
	{"entropy", func(m strmetric.Metrics, a, _ strmetric.Text, r *pairResult) error {
		r.entropy = m.ShannonEntropy(a)
		return nil
	}},
}

func (c *cli) benchCmd() *cobra.Command {
	cfg := defaultBenchConfig()
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure metric throughput over a corpus of line pairs",
		Long: `Runs every metric over pairs of adjacent lines, either from a
UTF-8 corpus file (one string per line) or from a synthetic corpus
generated deterministically from --seed. The result digest is the
same for any --workers or --cache value.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			lines, err := c.benchCorpus(cfg)
			if err != nil {
				return err
			}
			m := strmetric.Default()
			if cfg.cache > 0 {
				m = strmetric.WithCache(m, cfg.cache)
			}
			report, err := runBench(cmd.Context(), m, lines, cfg.pairs, cfg.workers)
			if err != nil {
				if isCanceled(err) {
					c.logger.Warn("bench interrupted")
				}
				return err
			}
			c.logger.Info("bench finished", "digest", fmt.Sprintf("%016x", report.Digest))
			printReport(cmd.OutOrStdout(), report)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&cfg.corpus, "corpus", "", "corpus file, one string per line (default: synthetic)")
	f.IntVar(&cfg.lines, "lines", cfg.lines, "synthetic corpus size in lines")
	f.IntVar(&cfg.minLen, "min-len", cfg.minLen, "minimum synthetic line length in characters")
	f.IntVar(&cfg.maxLen, "max-len", cfg.maxLen, "maximum synthetic line length in characters")
	f.IntVar(&cfg.pairs, "pairs", cfg.pairs, "number of line pairs to measure")
	f.IntVar(&cfg.workers, "workers", cfg.workers, "number of parallel workers")
	f.Uint32Var(&cfg.seed, "seed", cfg.seed, "synthetic corpus seed")
	f.IntVar(&cfg.cache, "cache", 0, "result cache size, 0 disables caching")
	return cmd
}

func (c *cli) benchCorpus(cfg benchConfig) ([]strmetric.Text, error) {
	start := time.Now()
	if cfg.corpus != "" {
		lines, err := loadCorpus(cfg.corpus)
		if err != nil {
			return nil, err
		}
		c.logger.Info("corpus loaded", "path", cfg.corpus, "lines", len(lines), "elapsed", time.Since(start))
		return lines, nil
	}
	lines := syntheticCorpus(cfg.lines, cfg.minLen, cfg.maxLen, cfg.seed)
	c.logger.Info("corpus generated", "lines", len(lines), "seed", cfg.seed, "elapsed", time.Since(start))
	return lines, nil
}

// runBench computes every metric for pairs (lines[i%n], lines[(i+1)%n]),
// one metric at a time so each phase is timed on its own. Pairs are split
// into contiguous ranges, one per worker, and every worker writes only its
// own range of results.
func runBench(ctx context.Context, m strmetric.Metrics, lines []strmetric.Text, pairs, workers int) (benchReport, error) {
	if len(lines) < 2 {
		return benchReport{}, errEmptyCorpus
	}
	workers = max(min(workers, pairs), 1)
	results := make([]pairResult, pairs)
	report := benchReport{Lines: len(lines), Pairs: pairs, Workers: workers}

	for _, phase := range metricPhases {
		start := time.Now()
		g, gctx := errgroup.WithContext(ctx)
		for w := range workers {
			lo, hi := w*pairs/workers, (w+1)*pairs/workers
			g.Go(func() error {
				return runRange(gctx, m, phase, lines, results, lo, hi)
			})
		}
		if err := g.Wait(); err != nil {
			return benchReport{}, fmt.Errorf("%s: %w", phase.name, err)
		}
		report.Phases = append(report.Phases, benchPhase{Metric: phase.name, Elapsed: time.Since(start)})
	}

	report.Digest = digestResults(results)
	return report, nil
}

func runRange(ctx context.Context, m strmetric.Metrics, phase metricPhase, lines []strmetric.Text, results []pairResult, lo, hi int) error {
	n := len(lines)
	for i := lo; i < hi; i++ {
		if (i-lo)%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if err := phase.run(m, lines[i%n], lines[(i+1)%n], &results[i]); err != nil {
			return err
		}
	}
	return nil
}

func digestResults(results []pairResult) uint64 {
	d := xxhash.New()
	var buf [28]byte
	for _, r := range results {
		binary.LittleEndian.PutUint32(buf[0:], r.cardinality)
		binary.LittleEndian.PutUint64(buf[4:], uint64(r.distance))
		binary.LittleEndian.PutUint64(buf[12:], math.Float64bits(r.jaroWinkler))
		binary.LittleEndian.PutUint64(buf[20:], math.Float64bits(r.entropy))
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}

func printReport(w io.Writer, r benchReport) {
	fmt.Fprintf(w, "lines:   %d\n", r.Lines)
	fmt.Fprintf(w, "pairs:   %d\n", r.Pairs)
	fmt.Fprintf(w, "workers: %d\n", r.Workers)
	fmt.Fprintf(w, "%-14s %12s %14s\n", "metric", "elapsed", "pairs/s")
	for _, p := range r.Phases {
		rate := math.Inf(1)
		if p.Elapsed > 0 {
			rate = float64(r.Pairs) / p.Elapsed.Seconds()
		}
		fmt.Fprintf(w, "%-14s %12s %14.0f\n", p.Metric, p.Elapsed.Round(time.Microsecond), rate)
	}
	fmt.Fprintf(w, "digest:  %016x\n", r.Digest)
}

// isCanceled reports whether err came from context cancellation.
func isCanceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
