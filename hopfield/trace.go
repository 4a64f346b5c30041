// Package hopfield - energy-trace diagnostics.
//
// A finished run returns a route and a distance even when it never converged;
// the trace is the caller's only signal of run quality (spec'd behavior: "not
// globally optimal" is normal, not an error). Summarize condenses a trace
// into the handful of numbers worth reporting.
package hopfield

import (
	"math"

	"github.com/montanaflynn/stats"
)

// TraceSummary condenses an energy trace for reporting.
type TraceSummary struct {
	Len       int     // number of recorded iterations
	First     float64 // initial energy
	Last      float64 // final energy (compare against EnergyThreshold)
	Min       float64
	Max       float64
	Mean      float64
	Median    float64
	P90       float64
	LastDelta float64 // |E_last − E_prev|; 0 for a single-entry trace
}

// Summarize computes descriptive statistics over an energy trace.
//
// Errors: ErrEmptyTrace for an empty (or nil) trace.
//
// Complexity: O(len·log len) time (percentiles sort a copy), O(len) space.
func Summarize(trace []float64) (TraceSummary, error) {
	if len(trace) == 0 {
		return TraceSummary{}, ErrEmptyTrace
	}

	var (
		sum TraceSummary
		err error
	)
	sum.Len = len(trace)
	sum.First = trace[0]
	sum.Last = trace[len(trace)-1]
	if len(trace) > 1 {
		sum.LastDelta = math.Abs(trace[len(trace)-1] - trace[len(trace)-2])
	}

	data := stats.Float64Data(trace)
	if sum.Min, err = stats.Min(data); err != nil {
		return TraceSummary{}, ErrEmptyTrace
	}
	if sum.Max, err = stats.Max(data); err != nil {
		return TraceSummary{}, ErrEmptyTrace
	}
	if sum.Mean, err = stats.Mean(data); err != nil {
		return TraceSummary{}, ErrEmptyTrace
	}
	if sum.Median, err = stats.Median(data); err != nil {
		return TraceSummary{}, ErrEmptyTrace
	}
	if sum.P90, err = stats.Percentile(data, 90); err != nil {
		return TraceSummary{}, ErrEmptyTrace
	}

	return sum, nil
}
