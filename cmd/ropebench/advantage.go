package main

import (
	"github.com/dshills/cartesian/internal/bench"
	"github.com/spf13/cobra"
)

type advantageFlags struct {
	trials      int
	chunks      int
	minLength   int
	maxLength   int
	threshold   int
	seed        uint64
	concurrency int
	metricsFile string
}

func newAdvantageCmd(root *rootOptions) *cobra.Command {
	f := &advantageFlags{}

	cmd := &cobra.Command{
		Use:   "advantage",
		Short: "Compare random rope layouts with the optimal layout",
		Long: `Build random ropes by concatenating many short ropes, rebuild each with
the cost-optimal layout and report how many times cheaper an average
element access becomes.

Flags override values from --config.

Examples:
  ropebench advantage
  ropebench advantage --trials 1000 --seed 7 --concurrency 1
  ropebench advantage --metrics-file bench.prom`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			f.apply(cmd, &cfg)

			metrics := bench.NewMetrics()
			runner, err := bench.NewRunner(cfg, bench.WithLogger(root.logger), bench.WithMetrics(metrics))
			if err != nil {
				return err
			}

			report, err := runner.Run(cmd.Context())
			if err != nil {
				return err
			}
			return report.WriteText(cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&f.trials, "trials", bench.DefaultTrials, "Number of ropes to measure")
	flags.IntVar(&f.chunks, "chunks", bench.DefaultChunks, "Ropes concatenated per trial")
	flags.IntVar(&f.minLength, "min", bench.DefaultMinLength, "Minimum length of each concatenated rope")
	flags.IntVar(&f.maxLength, "max", bench.DefaultMaxLength, "Maximum length (exclusive) of each concatenated rope")
	flags.IntVar(&f.threshold, "threshold", 0, "Direct copy threshold (default from config)")
	flags.Uint64Var(&f.seed, "seed", 0, "Seed for lengths and priorities (0 draws a random length seed and leaves priorities unseeded)")
	flags.IntVar(&f.concurrency, "concurrency", bench.DefaultConcurrency, "Trials run at once")
	flags.StringVar(&f.metricsFile, "metrics-file", "", "Write Prometheus metrics to this file")
	return cmd
}

// apply copies explicitly set flags over cfg.
func (f *advantageFlags) apply(cmd *cobra.Command, cfg *bench.Config) {
	flags := cmd.Flags()
	if flags.Changed("trials") {
		cfg.Trials = f.trials
	}
	if flags.Changed("chunks") {
		cfg.Chunks = f.chunks
	}
	if flags.Changed("min") {
		cfg.MinLength = f.minLength
	}
	if flags.Changed("max") {
		cfg.MaxLength = f.maxLength
	}
	if flags.Changed("threshold") {
		cfg.Threshold = f.threshold
	}
	if flags.Changed("seed") {
		cfg.Seed = f.seed
	}
	if flags.Changed("concurrency") {
		cfg.Concurrency = f.concurrency
	}
	if flags.Changed("metrics-file") {
		cfg.MetricsFile = f.metricsFile
	}
}
