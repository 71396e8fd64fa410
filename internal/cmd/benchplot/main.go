// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Command benchplot renders a results table as a figure comparing the time and
// memory of the stock search, best buy/sell and stock sort functions across
// input sizes. Run with no flags it reads benchmark_results.csv and writes
// benchmark_results.png, both in the working directory.
package main

import (
	"context"
	"os"

	"github.com/petenewcomb/stockbench-go"
	"github.com/petenewcomb/stockbench-go/chart"
	"github.com/petenewcomb/stockbench-go/internal/telemetry"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app = kingpin.New("benchplot", "Render stock market benchmark results as a grid of time and memory charts.")

	inputPath   = app.Flag("input", "Results file to read.").Short('i').Default("benchmark_results.csv").Envar("BENCHPLOT_INPUT").String()
	inputFormat = app.Flag("input-format", "Format of the results file: csv or benchfmt (go test -bench output).").Default("csv").Envar("BENCHPLOT_INPUT_FORMAT").Enum("csv", "benchfmt")
	outputPath  = app.Flag("output", "Image file to write. The extension selects png, jpg, tif, svg, pdf or eps.").Short('o').Default("benchmark_results.png").Envar("BENCHPLOT_OUTPUT").String()
	dpi         = app.Flag("dpi", "Resolution of raster images.").Default("300").Envar("BENCHPLOT_DPI").Int()
	title       = app.Flag("title", "Figure title.").Default(chart.DefaultLayout().Title).Envar("BENCHPLOT_TITLE").String()
	showSummary = app.Flag("summary", "Print a per-function summary table.").Default("true").Envar("BENCHPLOT_SUMMARY").Bool()
	slowestN    = app.Flag("slowest", "Number of slowest cases to list after the summary.").Default("3").Envar("BENCHPLOT_SLOWEST").Int()
	logLevel    = app.Flag("log-level", "Log level: debug, info, warn or error.").Default("info").Envar("BENCHPLOT_LOG_LEVEL").String()
	traceSpans  = app.Flag("trace", "Write trace spans to stdout.").Envar("BENCHPLOT_TRACE").Bool()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	logger, err := telemetry.NewLogger(*logLevel, false)
	if err != nil {
		app.Fatalf("%v", err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	if err := run(context.Background()); err != nil {
		logger.Fatal("Plotting failed", zap.Error(err))
	}
}

func run(ctx context.Context) (err error) {
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

	ctx, span := otel.Tracer("github.com/petenewcomb/stockbench-go/cmd/benchplot").Start(ctx, "benchplot")
	defer span.End()

	table, err := load(ctx)
	if err != nil {
		return err
	}

	if *showSummary {
		if err := printSummary(os.Stdout, table, *slowestN); err != nil {
			return err
		}
	}

	layout := chart.DefaultLayout()
	layout.Title = *title
	layout.DPI = *dpi
	for _, s := range layout.Series {
		if len(table.Filter(s.Function)) == 0 {
			zap.L().Warn("No results for function, its charts will be empty",
				zap.String("function", s.Function))
		}
	}

	fig := chart.New(table, layout)
	if err := chart.Save(ctx, fig, *outputPath); err != nil {
		return err
	}
	zap.L().Info("Benchmark visualization saved",
		zap.String("path", *outputPath),
		zap.Int("rows", table.Len()))
	return nil
}

func load(ctx context.Context) (*stockbench.Table, error) {
	if *inputFormat == "csv" {
		return stockbench.LoadCSV(ctx, *inputPath)
	}

	f, err := os.Open(*inputPath)
	if err != nil {
		return nil, errors.Wrap(err, "opening results")
	}
	defer f.Close()
	return stockbench.ReadBenchfmt(f, *inputPath)
}
