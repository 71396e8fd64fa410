// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Package runner measures the stock market operations at a series of input
// sizes and produces the rows of a results table. Cases run one at a time so
// that their timings and allocation counts do not overlap.
package runner

import (
	"context"
	"math/rand/v2"
	"runtime"
	"slices"
	"time"

	"github.com/petenewcomb/stockbench-go"
	"github.com/petenewcomb/stockbench-go/internal/cerr"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/perf/benchmath"
	"golang.org/x/perf/benchunit"
)

const ErrInvalidConfig = cerr.Error("invalid runner configuration")

// confidence is the interval reported alongside each median.
const confidence = 0.95

// Config controls a run.
type Config struct {
	// Sizes are the input sizes, in run order.
	Sizes []int
	// Repetitions is the number of measured repetitions per case; the row
	// records their median.
	Repetitions int
	// Seed makes fixtures reproducible.
	Seed uint64
}

// DefaultConfig returns sizes 10 through 1000 with five repetitions.
func DefaultConfig() Config {
	return Config{
		Sizes:       []int{10, 50, 100, 500, 1000},
		Repetitions: 5,
		Seed:        1,
	}
}

func (c Config) Validate() error {
	if len(c.Sizes) == 0 {
		return errors.Wrap(ErrInvalidConfig, "no input sizes")
	}
	for _, size := range c.Sizes {
		if size <= 0 {
			return errors.Wrapf(ErrInvalidConfig, "input size %d is not positive", size)
		}
	}
	if c.Repetitions < 1 {
		return errors.Wrapf(ErrInvalidConfig, "repetitions %d is less than one", c.Repetitions)
	}
	return nil
}

// Result is the outcome of one case. The embedded row carries the medians of
// the samples.
type Result struct {
	stockbench.Row
	Loops         int
	TimeSamples   []float64
	MemorySamples []float64
	TimeSummary   benchmath.Summary
	MemorySummary benchmath.Summary
}

// Observer is notified as cases start and finish. index counts from zero.
type Observer interface {
	CaseStarted(c Case, index, total int)
	CaseFinished(c Case, index, total int, res Result)
}

// Rows returns the rows of the results, in order.
func Rows(results []Result) []stockbench.Row {
	rows := make([]stockbench.Row, len(results))
	for i := range results {
		rows[i] = results[i].Row
	}
	return rows
}

// Run executes every benchmark at every configured size. On cancellation it
// returns the results completed so far together with the context's error.
func Run(ctx context.Context, cfg Config, benches []Benchmark, obs Observer) ([]Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ctx, span := otel.Tracer("github.com/petenewcomb/stockbench-go/runner").Start(ctx, "Run",
		trace.WithAttributes(
			attribute.IntSlice("sizes", cfg.Sizes),
			attribute.Int("repetitions", cfg.Repetitions),
		))
	defer span.End()

	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))
	plan := Plan(cfg.Sizes, benches)
	total := plan.Len()
	results := make([]Result, 0, total)

	for index := 0; plan.Len() > 0; index++ {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		c := plan.PopFront()
		if obs != nil {
			obs.CaseStarted(c, index, total)
		}
		res := runCase(ctx, c, cfg.Repetitions, rng)
		results = append(results, res)
		if obs != nil {
			obs.CaseFinished(c, index, total, res)
		}
	}
	return results, nil
}

func runCase(ctx context.Context, c Case, repetitions int, rng *rand.Rand) Result {
	_, span := otel.Tracer("github.com/petenewcomb/stockbench-go/runner").Start(ctx, c.Function(),
		trace.WithAttributes(attribute.Int("size", c.Size)))
	defer span.End()

	op := c.Benchmark.Setup(c.Size, rng)
	for i := range c.Benchmark.Warmup {
		op(i)
	}

	res := Result{
		Loops:         c.Benchmark.Loops,
		TimeSamples:   make([]float64, repetitions),
		MemorySamples: make([]float64, repetitions),
	}
	for r := range repetitions {
		res.TimeSamples[r], res.MemorySamples[r] = measure(op, c.Benchmark.Loops)
	}

	res.TimeSummary = summarize(res.TimeSamples)
	res.MemorySummary = summarize(res.MemorySamples)
	res.Row = stockbench.Row{
		Function:  c.Function(),
		InputSize: c.Size,
		TimeMs:    res.TimeSummary.Center,
		MemoryKB:  res.MemorySummary.Center,
	}

	zap.L().Info("Benchmark case finished",
		zap.String("function", res.Function),
		zap.Int("size", res.InputSize),
		zap.Int("loops", res.Loops),
		zap.String("time", benchunit.Scale(res.TimeMs/1e3, benchunit.Decimal)+"s"),
		zap.String("memory", benchunit.Scale(res.MemoryKB*1024, benchunit.Binary)+"B"))
	return res
}

// measure runs op loops times after a collection and returns the elapsed time
// in milliseconds and the bytes allocated in kilobytes.
func measure(op func(int), loops int) (float64, float64) {
	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)

	start := time.Now()
	for i := range loops {
		op(i)
	}
	elapsed := time.Since(start)

	runtime.ReadMemStats(&after)
	return float64(elapsed.Nanoseconds()) / 1e6, float64(after.TotalAlloc-before.TotalAlloc) / 1024
}

func summarize(values []float64) benchmath.Summary {
	sample := benchmath.NewSample(slices.Clone(values), &benchmath.DefaultThresholds)
	return benchmath.AssumeNothing.Summary(sample, confidence)
}
