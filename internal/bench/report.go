package bench

import (
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Report summarizes the advantage ratios of a run.
type Report struct {
	RunID   uuid.UUID
	Seed    uint64
	Ratios  []float64 // sorted ascending
	Min     float64
	Max     float64
	Mean    float64
	Median  float64
	Elapsed time.Duration
}

// NewReport summarizes ratios. The input slice is not modified.
func NewReport(runID uuid.UUID, ratios []float64, elapsed time.Duration) *Report {
	r := &Report{
		RunID:   runID,
		Ratios:  slices.Sorted(slices.Values(ratios)),
		Elapsed: elapsed,
	}
	if len(r.Ratios) == 0 {
		return r
	}

	r.Min = floats.Min(r.Ratios)
	r.Max = floats.Max(r.Ratios)
	r.Mean = stat.Mean(r.Ratios, nil)
	// Upper median for an even count.
	r.Median = r.Ratios[len(r.Ratios)/2]
	return r
}

// WriteText writes the human-readable summary.
func (r *Report) WriteText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Optimal is better in %.4f - %.4f times.\nAverage is %.4f, median is %.4f\n",
		r.Min, r.Max, r.Mean, r.Median)
	return err
}
