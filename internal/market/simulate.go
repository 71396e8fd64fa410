// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package market

import (
	"math/rand/v2"
)

const (
	dailyVolatility = 0.02
	dailyDrift      = 0.0001
	minDailyChange  = -0.10
	maxDailyChange  = 0.10
	priceFloor      = 0.01
)

// Simulator produces a random walk of daily high and low prices.
type Simulator struct {
	rng *rand.Rand
}

// NewSimulator returns a simulator drawing from rng.
func NewSimulator(rng *rand.Rand) *Simulator {
	return &Simulator{rng: rng}
}

// NextDay derives the next day's high and low from the previous day's. The
// average price moves by a normally distributed change, clamped to +/-10%,
// and the spread between high and low is 1-4% of the previous average. Prices
// never fall below one cent and the high always exceeds the low.
func (s *Simulator) NextDay(high, low float64) (float64, float64) {
	avg := (high + low) / 2

	change := s.rng.NormFloat64()*dailyVolatility + dailyDrift
	change = max(minDailyChange, min(maxDailyChange, change))
	newAvg := avg * (1 + change)

	spread := avg * (0.01 + s.rng.Float64()*0.03)
	newLow := max(priceFloor, newAvg-spread/2)
	newHigh := max(newLow+priceFloor, newAvg+spread/2)
	return newHigh, newLow
}
