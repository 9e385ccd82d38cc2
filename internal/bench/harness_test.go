package bench

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"SeqCompare/internal/compare"
)

func TestRun_ExecutesExactTrialCount(t *testing.T) {
	var calls int
	s, err := Run("Sequential", 3, func() (compare.Result, error) {
		calls++
		return compare.Result{Equal: true}, nil
	})
	require.NoError(t, err)
	require.Equal(t, 3, calls)
	require.Len(t, s.Trials, 3)
	require.Equal(t, "Sequential", s.Method)
	require.True(t, s.Result.Equal)

	for i, tr := range s.Trials {
		require.Equal(t, i, tr.Trial)
		require.GreaterOrEqual(t, tr.Elapsed, time.Duration(0))
	}
}

func TestRun_MeanConsistentWithTrials(t *testing.T) {
	s, err := Run("Parallel", 5, func() (compare.Result, error) {
		time.Sleep(time.Millisecond)
		return compare.Result{Equal: true}, nil
	})
	require.NoError(t, err)

	var total time.Duration
	for _, tr := range s.Trials {
		total += tr.Elapsed
	}
	require.Equal(t, total/5, s.Mean)
	require.GreaterOrEqual(t, s.Mean, time.Millisecond)
}

func TestRun_ErrorAbortsMethod(t *testing.T) {
	sentinel := errors.New("disk gone")
	var calls int
	s, err := Run("SHA-256", 3, func() (compare.Result, error) {
		calls++
		if calls == 2 {
			return compare.Result{}, sentinel
		}
		return compare.Result{Equal: true}, nil
	})
	require.ErrorIs(t, err, sentinel)
	require.Equal(t, 2, calls, "must not retry or continue after a failed trial")
	require.Empty(t, s.Trials, "no partial results for a failed method")
}

func TestRun_RejectsNonPositiveTrials(t *testing.T) {
	for _, trials := range []int{0, -1} {
		_, err := Run("Sequential", trials, func() (compare.Result, error) {
			return compare.Result{}, nil
		})
		require.Error(t, err)
	}
}

func TestStdDev(t *testing.T) {
	mk := func(durations ...time.Duration) []TrialRecord {
		trs := make([]TrialRecord, len(durations))
		for i, d := range durations {
			trs[i] = TrialRecord{Trial: i, Elapsed: d}
		}
		return trs
	}

	tests := []struct {
		name     string
		trials   []TrialRecord
		wantMean time.Duration
		wantStd  time.Duration
	}{
		{"single trial has zero stddev", mk(5 * time.Second), 5 * time.Second, 0},
		{"identical trials", mk(2*time.Second, 2*time.Second, 2*time.Second), 2 * time.Second, 0},
		{"one two three seconds", mk(1*time.Second, 2*time.Second, 3*time.Second), 2 * time.Second, 1 * time.Second},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			m := mean(tt.trials)
			require.Equal(t, tt.wantMean, m)
			require.Equal(t, tt.wantStd, stddev(tt.trials, m))
		})
	}
}
