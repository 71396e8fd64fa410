// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Package market implements the stock market operations measured by the
// benchmark runner: ticker lookup, best buy/sell day search, price sorting and
// day-to-day price simulation.
package market

import (
	"fmt"
	"strings"
)

// Stock is the price record of one company on one date.
type Stock struct {
	Name   string
	Ticker string
	Date   string
	High   float64
	Low    float64
}

// Avg returns the midpoint of the day's high and low prices.
func (s Stock) Avg() float64 {
	return (s.High + s.Low) / 2
}

func (s Stock) String() string {
	return fmt.Sprintf("%-20s %-8s %12s High: $%-8.2f Low: $%-8.2f", s.Name, s.Ticker, s.Date, s.High, s.Low)
}

// SearchByTicker looks a stock up by ticker. Tickers are stored upper case, so
// the lookup is case-insensitive.
func SearchByTicker(stocks map[string]*Stock, ticker string) (*Stock, bool) {
	s, ok := stocks[strings.ToUpper(ticker)]
	return s, ok
}
