// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package stockbench_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/petenewcomb/stockbench-go"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `Function,InputSize,TimeMs,MemoryKB
StockSearch,10,0.1834,12
BestBuySell,10,0.0211,0
StockSort,10,0.0457,3
StockSearch,50,0.1530,14
BestBuySell,50,0.0480,0
StockSort,50,0.1921,18
`

func TestReadCSV(t *testing.T) {
	chk := require.New(t)

	table, err := stockbench.ReadCSV(strings.NewReader(sampleCSV))
	chk.NoError(err)
	chk.Equal(6, table.Len())
	chk.Equal(stockbench.Row{
		Function:  "StockSearch",
		InputSize: 10,
		TimeMs:    0.1834,
		MemoryKB:  12,
	}, table.Rows[0])
	chk.Equal(stockbench.Row{
		Function:  "StockSort",
		InputSize: 50,
		TimeMs:    0.1921,
		MemoryKB:  18,
	}, table.Rows[5])
}

func TestReadCSVColumnOrder(t *testing.T) {
	chk := require.New(t)

	input := "MemoryKB,Note,TimeMs,Function,InputSize\n" +
		"7,warm,1.5,StockSort,100\n"
	table, err := stockbench.ReadCSV(strings.NewReader(input))
	chk.NoError(err)
	chk.Equal([]stockbench.Row{{
		Function:  "StockSort",
		InputSize: 100,
		TimeMs:    1.5,
		MemoryKB:  7,
	}}, table.Rows)
}

func TestReadCSVHeaderOnly(t *testing.T) {
	chk := require.New(t)

	table, err := stockbench.ReadCSV(strings.NewReader("Function,InputSize,TimeMs,MemoryKB\n"))
	chk.NoError(err)
	chk.Equal(0, table.Len())
	chk.Empty(table.Filter(stockbench.StockSearch))
}

func TestReadCSVErrors(t *testing.T) {
	for name, tc := range map[string]struct {
		input string
		want  error
	}{
		"empty":          {"", stockbench.ErrMissingColumn},
		"missing column": {"Function,InputSize,TimeMs\nStockSort,1,2\n", stockbench.ErrMissingColumn},
		"bad size":       {"Function,InputSize,TimeMs,MemoryKB\nStockSort,ten,2,3\n", stockbench.ErrMalformedRow},
		"bad time":       {"Function,InputSize,TimeMs,MemoryKB\nStockSort,10,fast,3\n", stockbench.ErrMalformedRow},
		"bad memory":     {"Function,InputSize,TimeMs,MemoryKB\nStockSort,10,2,lots\n", stockbench.ErrMalformedRow},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := stockbench.ReadCSV(strings.NewReader(tc.input))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestReadCSVShortRow(t *testing.T) {
	_, err := stockbench.ReadCSV(strings.NewReader("Function,InputSize,TimeMs,MemoryKB\nStockSort,10\n"))
	require.Error(t, err)
}

func TestWriteCSV(t *testing.T) {
	chk := require.New(t)

	var buf bytes.Buffer
	err := stockbench.WriteCSV(&buf, []stockbench.Row{
		{Function: "StockSearch", InputSize: 10, TimeMs: 0.18344, MemoryKB: 12},
		{Function: "StockSort", InputSize: 1000, TimeMs: 12, MemoryKB: 40.5},
	})
	chk.NoError(err)
	chk.Equal("Function,InputSize,TimeMs,MemoryKB\n"+
		"StockSearch,10,0.1834,12\n"+
		"StockSort,1000,12.0000,40.5\n", buf.String())
}

func TestSaveAndLoadCSV(t *testing.T) {
	chk := require.New(t)
	ctx := context.Background()

	table, err := stockbench.ReadCSV(strings.NewReader(sampleCSV))
	chk.NoError(err)

	path := filepath.Join(t.TempDir(), "benchmark_results.csv")
	chk.NoError(stockbench.SaveCSV(ctx, path, table.Rows))

	loaded, err := stockbench.LoadCSV(ctx, path)
	chk.NoError(err)
	chk.Equal(table.Rows, loaded.Rows)
}

func TestLoadCSVMissingFile(t *testing.T) {
	_, err := stockbench.LoadCSV(context.Background(), filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)
	require.True(t, errors.Is(err, os.ErrNotExist))
}
