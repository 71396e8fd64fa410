// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package stockbench

// Names of the benchmarked functions, as they appear in the Function column.
const (
	StockSearch = "StockSearch"
	BestBuySell = "BestBuySell"
	StockSort   = "StockSort"
)

// Functions lists the benchmarked functions in the order they are charted.
var Functions = []string{StockSearch, BestBuySell, StockSort}

// Column names of the results table.
const (
	ColumnFunction  = "Function"
	ColumnInputSize = "InputSize"
	ColumnTimeMs    = "TimeMs"
	ColumnMemoryKB  = "MemoryKB"
)

// Header is the canonical column order written by WriteCSV.
var Header = []string{ColumnFunction, ColumnInputSize, ColumnTimeMs, ColumnMemoryKB}

// Row is a single benchmark measurement.
type Row struct {
	Function  string
	InputSize int
	TimeMs    float64
	MemoryKB  float64
}

// Table is an in-memory results table. Rows are kept in the order they were
// read.
type Table struct {
	Rows []Row
}

// Len returns the number of rows in the table.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// Filter returns the rows recorded for the given function, in table order.
func (t *Table) Filter(function string) []Row {
	var rows []Row
	if t == nil {
		return rows
	}
	for _, row := range t.Rows {
		if row.Function == function {
			rows = append(rows, row)
		}
	}
	return rows
}

// Functions returns the distinct function names in the order they first
// appear.
func (t *Table) Functions() []string {
	var names []string
	if t == nil {
		return names
	}
	seen := make(map[string]struct{})
	for _, row := range t.Rows {
		if _, ok := seen[row.Function]; ok {
			continue
		}
		seen[row.Function] = struct{}{}
		names = append(names, row.Function)
	}
	return names
}
