// Package statistics samples many independent shuffles to check that the
// deck's Fisher-Yates shuffle produces a uniform permutation.
package statistics

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/lox/carddeck/deck"
	"github.com/lox/carddeck/internal/randutil"
)

// Options controls a sampling run.
type Options struct {
	Trials  int
	Workers int
	Seed    int64
}

// Histogram counts how often each card landed in a given position. Cards are
// indexed by their position in a freshly built, sorted deck.
type Histogram [deck.Size]int

// Total returns the number of observations.
func (h *Histogram) Total() int {
	total := 0
	for _, n := range h {
		total += n
	}
	return total
}

// ChiSquare returns Pearson's chi-square statistic against a uniform
// distribution over all 52 cards (51 degrees of freedom).
func (h *Histogram) ChiSquare() float64 {
	total := h.Total()
	if total == 0 {
		return 0
	}
	expected := float64(total) / deck.Size

	var chi float64
	for _, observed := range h {
		d := float64(observed) - expected
		chi += d * d / expected
	}
	return chi
}

// Max returns the largest deviation of any bucket from the uniform
// expectation, as a fraction of that expectation.
func (h *Histogram) Max() float64 {
	total := h.Total()
	if total == 0 {
		return 0
	}
	expected := float64(total) / deck.Size

	var worst float64
	for _, observed := range h {
		worst = math.Max(worst, math.Abs(float64(observed)-expected)/expected)
	}
	return worst
}

func (h *Histogram) merge(other *Histogram) {
	for i := range h {
		h[i] += other[i]
	}
}

// Report aggregates the results of a sampling run.
type Report struct {
	Trials  int   `json:"trials"`
	Workers int   `json:"workers"`
	Seed    int64 `json:"seed"`

	First Histogram `json:"first"`
	Last  Histogram `json:"last"`

	// FirstNotTwoOfClubs counts trials whose first card moved.
	FirstNotTwoOfClubs int `json:"first_not_two_of_clubs"`
	// LastNotAce counts trials whose last card was not an ace.
	LastNotAce int `json:"last_not_ace"`
}

// FirstChiSquare is the chi-square statistic of the first-position histogram.
func (r *Report) FirstChiSquare() float64 {
	return r.First.ChiSquare()
}

// LastChiSquare is the chi-square statistic of the last-position histogram.
func (r *Report) LastChiSquare() float64 {
	return r.Last.ChiSquare()
}

func (r *Report) merge(other *Report) {
	r.First.merge(&other.First)
	r.Last.merge(&other.Last)
	r.FirstNotTwoOfClubs += other.FirstNotTwoOfClubs
	r.LastNotAce += other.LastNotAce
}

// index maps each card to its position in a sorted deck.
var index = func() map[deck.Card]int {
	m := make(map[deck.Card]int, deck.Size)
	for i, c := range deck.New().Cards() {
		m[c] = i
	}
	return m
}()

// Run shuffles opts.Trials fresh decks across opts.Workers goroutines. Each
// worker owns its deck and a child generator split from opts.Seed, so the
// report only depends on the options.
func Run(ctx context.Context, opts Options) (*Report, error) {
	if opts.Trials <= 0 {
		return nil, errors.New("trials must be positive")
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = 1
	}
	workers = min(workers, opts.Trials)

	perWorker := opts.Trials / workers
	remainder := opts.Trials % workers

	parent := randutil.New(opts.Seed)
	partial := make([]Report, workers)

	g, ctx := errgroup.WithContext(ctx)
	for w := range workers {
		trials := perWorker
		if w < remainder {
			trials++
		}
		rng := randutil.Split(parent)

		g.Go(func() error {
			return sample(ctx, &partial[w], trials, rng)
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &Report{
		Trials:  opts.Trials,
		Workers: workers,
		Seed:    opts.Seed,
	}
	for i := range partial {
		report.merge(&partial[i])
	}
	return report, nil
}

func sample(ctx context.Context, r *Report, trials int, rng deck.Source) error {
	twoClubs := deck.MustCard(deck.Two, deck.Clubs)
	d := deck.New(deck.WithRand(rng))

	for i := range trials {
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		d.Reset()
		d.Shuffle()

		first, err := d.DealOneCard()
		if err != nil {
			return err
		}
		if err := d.Burn(deck.Size - 2); err != nil {
			return err
		}
		last, err := d.DealOneCard()
		if err != nil {
			return err
		}

		r.First[index[first]]++
		r.Last[index[last]]++
		if first != twoClubs {
			r.FirstNotTwoOfClubs++
		}
		if last.Rank() != deck.Ace {
			r.LastNotAce++
		}
	}
	return nil
}

// SaveReport writes r as JSON to path. The file is written to a temporary
// name and renamed so readers never observe a partial report.
func SaveReport(path string, r *Report) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp.*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if tmp != nil {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync report: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close report: %w", err)
	}
	tmp = nil

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename report: %w", err)
	}
	return nil
}

// LoadReport reads a report written by SaveReport.
func LoadReport(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to decode report %s: %w", path, err)
	}
	return &r, nil
}
