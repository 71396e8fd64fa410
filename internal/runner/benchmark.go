// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package runner

import (
	"math/rand/v2"
	"slices"
	"strconv"

	"github.com/petenewcomb/stockbench-go"
	"github.com/petenewcomb/stockbench-go/internal/market"
)

// Benchmark describes how to measure one function. Setup builds the fixture
// for an input size and returns the operation to time; the operation receives
// the loop index.
type Benchmark struct {
	Function string
	Warmup   int
	Loops    int
	Setup    func(size int, rng *rand.Rand) func(i int)
}

// Results of measured operations are stored here so that the compiler cannot
// discard the calls.
var (
	stockSink *market.Stock
	tradeSink market.Trade
	sortSink  []market.Stock
)

// DefaultBenchmarks returns the stock search, best buy/sell and stock sort
// benchmarks with their warmup and measured loop counts.
func DefaultBenchmarks() []Benchmark {
	return []Benchmark{
		{
			Function: stockbench.StockSearch,
			Warmup:   100,
			Loops:    1000,
			Setup: func(size int, _ *rand.Rand) func(int) {
				stocks := market.GenerateMarket(size)
				return func(i int) {
					stockSink, _ = market.SearchByTicker(stocks, "STOCK"+strconv.Itoa(i%size))
				}
			},
		},
		{
			Function: stockbench.BestBuySell,
			Warmup:   10,
			Loops:    100,
			Setup: func(size int, rng *rand.Rand) func(int) {
				history := market.GenerateHistory(size, market.NewSimulator(rng))
				return func(int) {
					tradeSink, _ = market.BestBuySell(history)
				}
			},
		},
		{
			Function: stockbench.StockSort,
			Warmup:   10,
			Loops:    10,
			Setup: func(size int, rng *rand.Rand) func(int) {
				listing := market.GenerateListing(size, rng)
				return func(int) {
					stocks := slices.Clone(listing)
					market.SortByPrice(stocks, true)
					sortSink = stocks
				}
			},
		},
	}
}
