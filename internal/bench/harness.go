package bench

import (
	"fmt"
	"math"
	"time"

	"SeqCompare/internal/compare"
)

// TrialRecord is one timed comparator execution.
type TrialRecord struct {
	Trial   int
	Elapsed time.Duration
}

// Summary aggregates one method's trials. Read-only once built.
type Summary struct {
	Method string
	Trials []TrialRecord
	Mean   time.Duration
	StdDev time.Duration
	Result compare.Result // verdict of the final trial
}

// Run executes fn exactly trials times, measuring wall-clock time per
// trial. A failing trial aborts the whole method; no partial summary is
// returned. Verdict agreement across methods is the caller's concern.
func Run(method string, trials int, fn func() (compare.Result, error)) (Summary, error) {
	if trials <= 0 {
		return Summary{}, fmt.Errorf("bench: trials must be positive, got %d", trials)
	}

	s := Summary{Method: method, Trials: make([]TrialRecord, 0, trials)}
	for i := 0; i < trials; i++ {
		start := time.Now()
		res, err := fn()
		elapsed := time.Since(start)
		if err != nil {
			return Summary{}, fmt.Errorf("bench: %s trial %d/%d: %w", method, i+1, trials, err)
		}
		s.Result = res
		s.Trials = append(s.Trials, TrialRecord{Trial: i, Elapsed: elapsed})
	}

	s.Mean = mean(s.Trials)
	s.StdDev = stddev(s.Trials, s.Mean)
	return s, nil
}

func mean(trials []TrialRecord) time.Duration {
	var total time.Duration
	for _, tr := range trials {
		total += tr.Elapsed
	}
	return total / time.Duration(len(trials))
}

// stddev is the sample standard deviation (n-1 denominator), zero for a
// single trial.
func stddev(trials []TrialRecord, mean time.Duration) time.Duration {
	if len(trials) < 2 {
		return 0
	}
	var sum float64
	for _, tr := range trials {
		d := float64(tr.Elapsed - mean)
		sum += d * d
	}
	return time.Duration(math.Sqrt(sum / float64(len(trials)-1)))
}
