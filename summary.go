// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package stockbench

import (
	"cmp"
	"slices"

	"github.com/addrummond/heap"
	"github.com/montanaflynn/stats"
)

// FunctionSummary aggregates the rows recorded for one function.
type FunctionSummary struct {
	Function     string
	Rows         int
	MinSize      int
	MaxSize      int
	MeanTimeMs   float64
	MaxTimeMs    float64
	MeanMemoryKB float64
	MaxMemoryKB  float64
}

// Summarize returns one summary per function in the table, in first-seen
// order.
func Summarize(t *Table) ([]FunctionSummary, error) {
	var summaries []FunctionSummary
	for _, function := range t.Functions() {
		rows := t.Filter(function)
		times := make(stats.Float64Data, len(rows))
		memories := make(stats.Float64Data, len(rows))
		sizes := make([]int, len(rows))
		for i, row := range rows {
			times[i] = row.TimeMs
			memories[i] = row.MemoryKB
			sizes[i] = row.InputSize
		}

		s := FunctionSummary{
			Function: function,
			Rows:     len(rows),
			MinSize:  slices.Min(sizes),
			MaxSize:  slices.Max(sizes),
		}
		var err error
		if s.MeanTimeMs, err = stats.Mean(times); err != nil {
			return nil, err
		}
		if s.MaxTimeMs, err = stats.Max(times); err != nil {
			return nil, err
		}
		if s.MeanMemoryKB, err = stats.Mean(memories); err != nil {
			return nil, err
		}
		if s.MaxMemoryKB, err = stats.Max(memories); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, nil
}

type rankedRow struct {
	Row   Row
	Index int
}

// Orders by time; among equal times the later row ranks lower so that it is
// evicted first.
func (a *rankedRow) Cmp(b *rankedRow) int {
	if c := cmp.Compare(a.Row.TimeMs, b.Row.TimeMs); c != 0 {
		return c
	}
	return cmp.Compare(b.Index, a.Index)
}

// Slowest returns the n rows with the greatest TimeMs, slowest first. Rows
// with equal times keep table order.
func Slowest(t *Table, n int) []Row {
	if n <= 0 || t.Len() == 0 {
		return nil
	}

	var h heap.Heap[rankedRow, heap.Min]
	count := 0
	for i, row := range t.Rows {
		heap.PushOrderable(&h, rankedRow{Row: row, Index: i})
		count++
		if count > n {
			_, _ = heap.PopOrderable(&h)
			count--
		}
	}

	rows := make([]Row, count)
	for i := count - 1; i >= 0; i-- {
		ranked, ok := heap.PopOrderable(&h)
		if !ok {
			panic("heap drained early")
		}
		rows[i] = ranked.Row
	}
	return rows
}
