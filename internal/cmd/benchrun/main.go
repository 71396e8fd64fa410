// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Command benchrun measures stock search, best buy/sell and stock sort at a
// series of input sizes and writes the results table that benchplot reads.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/petenewcomb/stockbench-go"
	"github.com/petenewcomb/stockbench-go/internal/runner"
	"github.com/petenewcomb/stockbench-go/internal/telemetry"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app = kingpin.New("benchrun", "Benchmark the stock market operations and write a results table.")

	outputPath   = app.Flag("output", "CSV results file to write.").Short('o').Default("benchmark_results.csv").Envar("BENCHRUN_OUTPUT").String()
	benchfmtPath = app.Flag("benchfmt", "Also write the results in Go benchmark format to this file.").Envar("BENCHRUN_BENCHFMT").String()
	sizes        = app.Flag("sizes", "Input size to measure. Repeat for several sizes.").Default("10", "50", "100", "500", "1000").Ints()
	repetitions  = app.Flag("repetitions", "Measured repetitions per case.").Default("5").Envar("BENCHRUN_REPETITIONS").Int()
	seed         = app.Flag("seed", "Seed for the generated market data.").Default("1").Envar("BENCHRUN_SEED").Uint64()
	logLevel     = app.Flag("log-level", "Log level: debug, info, warn or error. A progress bar is shown above info.").Default("warn").Envar("BENCHRUN_LOG_LEVEL").String()
	traceSpans   = app.Flag("trace", "Write trace spans to stdout.").Envar("BENCHRUN_TRACE").Bool()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	logger, err := telemetry.NewLogger(*logLevel, false)
	if err != nil {
		app.Fatalf("%v", err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, !logger.Core().Enabled(zapcore.InfoLevel)); err != nil {
		logger.Fatal("Benchmark run failed", zap.Error(err))
	}
}

func run(ctx context.Context, showProgress bool) (err error) {
	if *traceSpans {
		shutdown, traceErr := telemetry.StartTracing(os.Stdout)
		if traceErr != nil {
			return traceErr
		}
		defer func() {
			if shutdownErr := shutdown(context.Background()); err == nil {
				err = shutdownErr
			}
		}()
	}

	cfg := runner.Config{
		Sizes:       *sizes,
		Repetitions: *repetitions,
		Seed:        *seed,
	}
	benches := runner.DefaultBenchmarks()

	var obs runner.Observer
	if showProgress {
		p := newProgress(len(cfg.Sizes) * len(benches))
		defer p.finish()
		obs = p
	}

	results, err := runner.Run(ctx, cfg, benches, obs)
	if err != nil && len(results) == 0 {
		return err
	}
	if err != nil {
		zap.L().Warn("Benchmark run interrupted, saving partial results",
			zap.Int("cases", len(results)), zap.Error(err))
	}

	rows := runner.Rows(results)
	if saveErr := stockbench.SaveCSV(ctx, *outputPath, rows); saveErr != nil {
		return saveErr
	}
	zap.L().Info("Benchmark results saved", zap.String("path", *outputPath), zap.Int("rows", len(rows)))

	if *benchfmtPath != "" {
		if saveErr := saveBenchfmt(*benchfmtPath, rows); saveErr != nil {
			return saveErr
		}
		zap.L().Info("Benchmark results saved", zap.String("path", *benchfmtPath), zap.Int("rows", len(rows)))
	}
	return err
}

func saveBenchfmt(path string, rows []stockbench.Row) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating benchfmt results")
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = errors.Wrap(closeErr, "closing benchfmt results")
		}
	}()
	return stockbench.WriteBenchfmt(f, rows)
}
