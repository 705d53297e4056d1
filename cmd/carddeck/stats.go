package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lox/carddeck/internal/statistics"
)

// StatsCmd samples many shuffles and reports how uniform they look.
type StatsCmd struct {
	Trials  int    `help:"Number of shuffles to sample (default from config)"`
	Workers int    `help:"Number of concurrent workers (default from config)"`
	Report  string `type:"path" help:"Write the full report as JSON to this path"`
}

// chiSquareCritical is the 99.9th percentile of chi-square with 51 degrees
// of freedom.
const chiSquareCritical = 87.97

func (cmd *StatsCmd) Run(a *app) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return cmd.run(ctx, a)
}

func (cmd *StatsCmd) run(ctx context.Context, a *app) error {
	opts := statistics.Options{
		Trials:  cmd.Trials,
		Workers: cmd.Workers,
		Seed:    a.seed,
	}
	if opts.Trials == 0 {
		opts.Trials = a.cfg.Stats.Trials
	}
	if opts.Workers == 0 {
		opts.Workers = a.cfg.Stats.Workers
	}

	a.logger.Info("Sampling shuffles", "trials", opts.Trials, "workers", opts.Workers, "seed", opts.Seed)
	start := time.Now()

	report, err := statistics.Run(ctx, opts)
	if err != nil {
		return fmt.Errorf("sampling shuffles: %w", err)
	}
	a.logger.Info("Sampling complete", "duration", time.Since(start).Round(time.Millisecond))

	first, last := report.FirstChiSquare(), report.LastChiSquare()
	fmt.Fprintln(a.out, a.printer.Label("Shuffle statistics"))
	fmt.Fprintf(a.out, "  trials:                 %d\n", report.Trials)
	fmt.Fprintf(a.out, "  first card moved:       %d (%.1f%%)\n", report.FirstNotTwoOfClubs, percent(report.FirstNotTwoOfClubs, report.Trials))
	fmt.Fprintf(a.out, "  last card not an ace:   %d (%.1f%%)\n", report.LastNotAce, percent(report.LastNotAce, report.Trials))
	fmt.Fprintf(a.out, "  chi-square first/last:  %.2f / %.2f %s\n", first, last,
		a.printer.Dim(fmt.Sprintf("(critical %.2f, 51 df)", chiSquareCritical)))

	if first > chiSquareCritical || last > chiSquareCritical {
		a.logger.Warn("Shuffle distribution looks skewed", "first", first, "last", last)
	}

	if cmd.Report != "" {
		if err := statistics.SaveReport(cmd.Report, report); err != nil {
			return err
		}
		a.logger.Info("Wrote report", "path", cmd.Report)
	}
	return nil
}

func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(n) / float64(total)
}
