// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package stockbench_test

import (
	"testing"

	"github.com/petenewcomb/stockbench-go"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func rowGenerator() *rapid.Generator[stockbench.Row] {
	return rapid.Custom(func(t *rapid.T) stockbench.Row {
		return stockbench.Row{
			Function:  rapid.SampledFrom([]string{stockbench.StockSearch, stockbench.BestBuySell, stockbench.StockSort, "Other"}).Draw(t, "function"),
			InputSize: rapid.IntRange(1, 1_000_000).Draw(t, "size"),
			TimeMs:    rapid.Float64Range(0, 1e6).Draw(t, "time"),
			MemoryKB:  rapid.Float64Range(0, 1e6).Draw(t, "memory"),
		}
	})
}

func TestFilterKeepsTableOrder(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		table := &stockbench.Table{Rows: rapid.SliceOf(rowGenerator()).Draw(t, "rows")}
		function := rapid.SampledFrom(stockbench.Functions).Draw(t, "filter")

		var model []stockbench.Row
		for _, row := range table.Rows {
			if row.Function == function {
				model = append(model, row)
			}
		}
		require.Equal(t, model, table.Filter(function))
	})
}

func TestFilterPartitionsTable(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		table := &stockbench.Table{Rows: rapid.SliceOf(rowGenerator()).Draw(t, "rows")}

		total := 0
		for _, function := range table.Functions() {
			rows := table.Filter(function)
			require.NotEmpty(t, rows)
			total += len(rows)
		}
		require.Equal(t, table.Len(), total)
	})
}

func TestFunctionsFirstSeenOrder(t *testing.T) {
	chk := require.New(t)

	table := &stockbench.Table{Rows: []stockbench.Row{
		{Function: stockbench.StockSort},
		{Function: stockbench.StockSearch},
		{Function: stockbench.StockSort},
		{Function: stockbench.BestBuySell},
	}}
	chk.Equal([]string{stockbench.StockSort, stockbench.StockSearch, stockbench.BestBuySell}, table.Functions())
}

func TestNilTable(t *testing.T) {
	chk := require.New(t)

	var table *stockbench.Table
	chk.Equal(0, table.Len())
	chk.Empty(table.Filter(stockbench.StockSort))
	chk.Empty(table.Functions())
}
