// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package market

// SortByPrice sorts stocks in place by high price using quicksort. The sort is
// not stable.
func SortByPrice(stocks []Stock, ascending bool) {
	if len(stocks) <= 1 {
		return
	}
	quickSort(stocks, 0, len(stocks)-1, ascending)
}

func quickSort(stocks []Stock, low, high int, ascending bool) {
	for low < high {
		p := partition(stocks, low, high, ascending)
		// Recurse into the smaller side to bound stack depth.
		if p-low < high-p {
			quickSort(stocks, low, p-1, ascending)
			low = p + 1
		} else {
			quickSort(stocks, p+1, high, ascending)
			high = p - 1
		}
	}
}

// partition places the last element of stocks[low:high+1] at its sorted
// position and returns that position.
func partition(stocks []Stock, low, high int, ascending bool) int {
	pivot := stocks[high].High
	i := low - 1
	for j := low; j < high; j++ {
		price := stocks[j].High
		if (ascending && price <= pivot) || (!ascending && price >= pivot) {
			i++
			stocks[i], stocks[j] = stocks[j], stocks[i]
		}
	}
	stocks[i+1], stocks[high] = stocks[high], stocks[i+1]
	return i + 1
}
