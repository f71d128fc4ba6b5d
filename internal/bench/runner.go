package bench

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/dshills/cartesian/internal/engine/rope"
	"github.com/dshills/cartesian/internal/engine/treap"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Runner executes advantage trials.
type Runner struct {
	cfg     Config
	seed    uint64
	logger  *slog.Logger
	metrics *Metrics
}

// NewRunner creates a runner for cfg.
func NewRunner(cfg Config, opts ...Option) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	r := &Runner{
		cfg:    cfg,
		seed:   cfg.Seed,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	for r.seed == 0 {
		r.seed = rand.Uint64()
	}
	if cfg.MetricsFile != "" && r.metrics == nil {
		r.metrics = NewMetrics()
	}
	return r, nil
}

// Run executes all trials and summarizes them. The process-wide
// DirectCopyThreshold is set to the configured value for the duration of
// the run.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	runID := uuid.New()
	logger := r.logger.With("run_id", runID.String())

	prev := treap.SetDirectCopyThreshold(r.cfg.Threshold)
	defer treap.SetDirectCopyThreshold(prev)
	if r.cfg.Seed != 0 {
		treap.Seed(r.cfg.Seed)
	}

	logger.Info("advantage run starting",
		"trials", r.cfg.Trials,
		"chunks", r.cfg.Chunks,
		"min_length", r.cfg.MinLength,
		"max_length", r.cfg.MaxLength,
		"threshold", r.cfg.Threshold,
		"concurrency", r.cfg.Concurrency,
		"seed", r.seed)

	start := time.Now()
	ratios := make([]float64, r.cfg.Trials)

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Concurrency)

	for i := range ratios {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			result, err := r.Trial(i)
			if err != nil {
				return fmt.Errorf("trial %d: %w", i, err)
			}
			ratios[i] = result.Ratio()
			logger.Debug("trial finished", "trial", i, "ratio", ratios[i], "treap", result.Treap, "optimal", result.Optimal)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logger.Error("advantage run failed", "error", err)
		return nil, err
	}

	report := NewReport(runID, ratios, time.Since(start))
	report.Seed = r.seed
	logger.Info("advantage run finished",
		"min", report.Min,
		"max", report.Max,
		"mean", report.Mean,
		"median", report.Median,
		"elapsed", report.Elapsed)

	if r.cfg.MetricsFile != "" {
		if err := r.metrics.WriteTextfile(r.cfg.MetricsFile); err != nil {
			return report, fmt.Errorf("write metrics: %w", err)
		}
		logger.Info("metrics written", "path", r.cfg.MetricsFile)
	}
	return report, nil
}

// TrialResult holds the shapes measured by one trial.
type TrialResult struct {
	Treap    rope.Stats
	Optimal  rope.Stats
	Optimize time.Duration
}

// Ratio returns how many times cheaper the optimal layout is to access.
func (t TrialResult) Ratio() float64 {
	return t.Treap.AverageAccess / t.Optimal.AverageAccess
}

// Seed returns the seed for chunk lengths: the configured one, or a random
// seed drawn when none was configured.
func (r *Runner) Seed() uint64 {
	return r.seed
}

// Trial runs trial i. Chunk lengths are drawn from a generator seeded by
// the runner's seed and i, so a trial's input is stable across runs.
func (r *Runner) Trial(i int) (TrialResult, error) {
	rng := rand.New(rand.NewPCG(r.seed, uint64(i)))

	ropes := make([]rope.Rope[int], r.cfg.Chunks)
	for j := range ropes {
		n := r.cfg.MinLength + rng.IntN(r.cfg.MaxLength-r.cfg.MinLength)
		ropes[j] = rope.FromSlice(make([]int, n))
	}
	common := rope.Join(ropes...)

	start := time.Now()
	optimal := common.Optimized()
	elapsed := time.Since(start)

	// Exercise a split of the shared tree as well; its result is unused.
	if _, err := common.Range(rng.IntN(common.Len())); err != nil {
		return TrialResult{}, err
	}

	result := TrialResult{
		Treap:    common.Stats(),
		Optimal:  optimal.Stats(),
		Optimize: elapsed,
	}
	r.metrics.observeTrial(result.Treap.AverageAccess, result.Optimal.AverageAccess, elapsed)
	return result, nil
}
