// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package stockbench_test

import (
	"cmp"
	"slices"
	"strings"
	"testing"

	"github.com/petenewcomb/stockbench-go"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestSummarize(t *testing.T) {
	chk := require.New(t)

	table, err := stockbench.ReadCSV(strings.NewReader(sampleCSV))
	chk.NoError(err)

	summaries, err := stockbench.Summarize(table)
	chk.NoError(err)
	chk.Len(summaries, 3)

	search := summaries[0]
	chk.Equal(stockbench.StockSearch, search.Function)
	chk.Equal(2, search.Rows)
	chk.Equal(10, search.MinSize)
	chk.Equal(50, search.MaxSize)
	chk.InDelta((0.1834+0.1530)/2, search.MeanTimeMs, 1e-12)
	chk.Equal(0.1834, search.MaxTimeMs)
	chk.InDelta(13.0, search.MeanMemoryKB, 1e-12)
	chk.Equal(14.0, search.MaxMemoryKB)
}

func TestSummarizeEmpty(t *testing.T) {
	summaries, err := stockbench.Summarize(&stockbench.Table{})
	require.NoError(t, err)
	require.Empty(t, summaries)
}

func TestSlowest(t *testing.T) {
	chk := require.New(t)

	table, err := stockbench.ReadCSV(strings.NewReader(sampleCSV))
	chk.NoError(err)

	slowest := stockbench.Slowest(table, 2)
	chk.Equal([]stockbench.Row{table.Rows[5], table.Rows[0]}, slowest)

	chk.Len(stockbench.Slowest(table, 100), table.Len())
	chk.Empty(stockbench.Slowest(table, 0))
}

func TestSlowestMatchesStableSort(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		rows := rapid.SliceOf(rapid.Custom(func(t *rapid.T) stockbench.Row {
			return stockbench.Row{
				Function:  rapid.SampledFrom(stockbench.Functions).Draw(t, "function"),
				InputSize: rapid.IntRange(1, 1000).Draw(t, "size"),
				// A small range of times forces ties.
				TimeMs: float64(rapid.IntRange(0, 5).Draw(t, "time")),
			}
		})).Draw(t, "rows")
		n := rapid.IntRange(1, 20).Draw(t, "n")
		table := &stockbench.Table{Rows: rows}

		model := slices.Clone(rows)
		slices.SortStableFunc(model, func(a, b stockbench.Row) int {
			return cmp.Compare(b.TimeMs, a.TimeMs)
		})
		if len(model) > n {
			model = model[:n]
		}
		if len(model) == 0 {
			model = nil
		}

		require.Equal(t, model, stockbench.Slowest(table, n))
	})
}
