// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/petenewcomb/stockbench-go"
	"github.com/stretchr/testify/require"
)

func TestPrintSummary(t *testing.T) {
	chk := require.New(t)

	table, err := stockbench.ReadCSV(strings.NewReader(`Function,InputSize,TimeMs,MemoryKB
StockSearch,10,0.1834,12
StockSort,10,0.0457,3
StockSearch,1000,0.2011,20
StockSort,1000,2.8877,96
`))
	chk.NoError(err)

	var buf bytes.Buffer
	chk.NoError(printSummary(&buf, table, 1))
	out := buf.String()
	chk.Contains(out, "StockSearch")
	chk.Contains(out, "10-1000")
	chk.Contains(out, "2.8877")
	chk.Contains(out, "96.0")
	chk.NotContains(out, "BestBuySell")
}

func TestPrintSummaryEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printSummary(&buf, &stockbench.Table{}, 3))
}
