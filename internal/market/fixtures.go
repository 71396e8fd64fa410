// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package market

import (
	"math/rand/v2"
	"strconv"
)

const fixtureDate = "01-01-2025"

// GenerateMarket returns size stocks keyed by ticker, STOCK0 through
// STOCK<size-1>, with prices rising by one dollar per ticker.
func GenerateMarket(size int) map[string]*Stock {
	stocks := make(map[string]*Stock, size)
	for i := range size {
		ticker := "STOCK" + strconv.Itoa(i)
		stocks[ticker] = &Stock{
			Name:   "Company " + strconv.Itoa(i),
			Ticker: ticker,
			Date:   fixtureDate,
			High:   100 + float64(i),
			Low:    95 + float64(i),
		}
	}
	return stocks
}

// GenerateHistory returns size consecutive days of one stock's prices,
// starting at 100/95 and walking with sim.
func GenerateHistory(size int, sim *Simulator) []Stock {
	history := make([]Stock, 0, size)
	high, low := 100.0, 95.0
	for i := range size {
		history = append(history, Stock{
			Name:   "TestStock",
			Ticker: "TEST",
			Date:   "Day" + strconv.Itoa(i),
			High:   high,
			Low:    low,
		})
		high, low = sim.NextDay(high, low)
	}
	return history
}

// GenerateListing returns size stocks with uniformly random prices between 50
// and 550.
func GenerateListing(size int, rng *rand.Rand) []Stock {
	stocks := make([]Stock, 0, size)
	for i := range size {
		price := rng.Float64()*500 + 50
		stocks = append(stocks, Stock{
			Name:   "Company" + strconv.Itoa(i),
			Ticker: "STK" + strconv.Itoa(i),
			Date:   fixtureDate,
			High:   price,
			Low:    price * 0.95,
		})
	}
	return stocks
}
