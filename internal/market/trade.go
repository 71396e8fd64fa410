// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package market

// Trade is the most profitable single buy followed by a single sell.
type Trade struct {
	BuyDay   int
	SellDay  int
	Profit   float64
	BuyDate  string
	SellDate string
}

// BestBuySell finds the trade over history that buys at a day's low and sells
// at a later day's high for the greatest profit, in a single pass. It reports
// false if history spans fewer than two days or no trade makes a profit.
func BestBuySell(history []Stock) (Trade, bool) {
	if len(history) < 2 {
		return Trade{}, false
	}

	minPrice := history[0].Low
	minPriceDay := 0
	var maxProfit float64
	var buyDay, sellDay int

	for i := 1; i < len(history); i++ {
		day := &history[i]
		if profit := day.High - minPrice; profit > maxProfit {
			maxProfit = profit
			buyDay = minPriceDay
			sellDay = i
		}
		if day.Low < minPrice {
			minPrice = day.Low
			minPriceDay = i
		}
	}

	if maxProfit <= 0 {
		return Trade{}, false
	}
	return Trade{
		BuyDay:   buyDay,
		SellDay:  sellDay,
		Profit:   maxProfit,
		BuyDate:  history[buyDay].Date,
		SellDate: history[sellDay].Date,
	}, true
}
