package statistics

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCountsEveryTrial(t *testing.T) {
	report, err := Run(context.Background(), Options{Trials: 1001, Workers: 4, Seed: 42})
	require.NoError(t, err)

	assert.Equal(t, 1001, report.Trials)
	assert.Equal(t, 4, report.Workers)
	assert.Equal(t, 1001, report.First.Total())
	assert.Equal(t, 1001, report.Last.Total())
}

func TestRunIsDeterministic(t *testing.T) {
	opts := Options{Trials: 2000, Workers: 3, Seed: 7}

	a, err := Run(context.Background(), opts)
	require.NoError(t, err)
	b, err := Run(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestRunLooksUniform(t *testing.T) {
	const trials = 20000
	report, err := Run(context.Background(), Options{Trials: trials, Workers: 8, Seed: 1234})
	require.NoError(t, err)

	// 51 degrees of freedom; 110 is far beyond the 99.99th percentile.
	assert.Less(t, report.FirstChiSquare(), 110.0)
	assert.Less(t, report.LastChiSquare(), 110.0)

	assert.Greater(t, report.FirstNotTwoOfClubs, trials*9/10)
	assert.Greater(t, report.LastNotAce, trials*8/10)
}

func TestRunClampsWorkers(t *testing.T) {
	report, err := Run(context.Background(), Options{Trials: 3, Workers: 16})
	require.NoError(t, err)
	assert.Equal(t, 3, report.Workers)

	report, err = Run(context.Background(), Options{Trials: 3})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Workers)
}

func TestRunRejectsNoTrials(t *testing.T) {
	_, err := Run(context.Background(), Options{Trials: 0, Workers: 2})
	assert.Error(t, err)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, Options{Trials: 100, Workers: 2})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHistogram(t *testing.T) {
	var h Histogram
	assert.Zero(t, h.ChiSquare())
	assert.Zero(t, h.Max())

	for i := range h {
		h[i] = 10
	}
	assert.Equal(t, 520, h.Total())
	assert.InDelta(t, 0, h.ChiSquare(), 1e-9)

	h[0] = 20
	h[1] = 0
	// expected 10 per bucket: (10^2 + 10^2) / 10
	assert.InDelta(t, 20, h.ChiSquare(), 1e-9)
	assert.InDelta(t, 1, h.Max(), 1e-9)
}

func TestSaveReport(t *testing.T) {
	report, err := Run(context.Background(), Options{Trials: 100, Workers: 2, Seed: 3})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, SaveReport(path, report))

	loaded, err := LoadReport(path)
	require.NoError(t, err)
	assert.Equal(t, report, loaded)

	matches, err := filepath.Glob(path + ".tmp.*")
	require.NoError(t, err)
	assert.Empty(t, matches, "temporary files are cleaned up")
}
